package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Minarsribabu/Eco-Cred/internal/models"
	"github.com/Minarsribabu/Eco-Cred/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler serves downloads of a user's activity history.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeaders = []string{"Category", "Type", "Quantity", "Unit", "CO2e (kg)", "Date"}

func (h *ExportHandler) userActivities(c *gin.Context) ([]models.Activity, bool) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "unauthorized")
		return nil, false
	}

	var activities []models.Activity
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC").
		Find(&activities).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list activities")
		return nil, false
	}
	return activities, true
}

func exportRow(a *models.Activity) []string {
	return []string{
		a.Category,
		a.Type,
		strconv.FormatFloat(a.Quantity, 'f', -1, 64),
		a.Unit,
		strconv.FormatFloat(a.CO2e, 'f', -1, 64),
		a.Date.Format("2006-01-02"),
	}
}

// ExportCSV streams the user's full activity history as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	activities, ok := h.userActivities(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"activities_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	writer.Write(exportHeaders)
	for i := range activities {
		writer.Write(exportRow(&activities[i]))
	}
	writer.Flush()
	// headers are already sent, so a write failure can only be logged
	if err := writer.Error(); err != nil {
		_ = c.Error(err)
	}
}

// ExportXLSX writes the user's full activity history as an XLSX sheet.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	activities, ok := h.userActivities(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	sheetName := "Activities"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	for i, hdr := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, hdr)
	}

	for idx := range activities {
		row := idx + 2
		for col, val := range exportRow(&activities[idx]) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	f.SetColWidth(sheetName, "A", "B", 15)
	f.SetColWidth(sheetName, "C", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"activities_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to export")
	}
}
