package handler

import (
	"net/http"

	"github.com/Minarsribabu/Eco-Cred/internal/models"
	"github.com/Minarsribabu/Eco-Cred/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TipHandler serves the static advisory tips.
type TipHandler struct {
	DB *gorm.DB
}

func NewTipHandler(db *gorm.DB) *TipHandler {
	return &TipHandler{DB: db}
}

type tipResp struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// List returns all enabled tips.
func (h *TipHandler) List(c *gin.Context) {
	var tips []models.Tip
	if err := h.DB.Where("enabled = ?", true).Find(&tips).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load tips")
		return
	}

	items := make([]tipResp, 0, len(tips))
	for _, t := range tips {
		items = append(items, tipResp{
			ID:       t.ID,
			Title:    t.Title,
			Body:     t.Body,
			Category: t.Category,
		})
	}

	util.Success(c, util.Response{
		"items": items,
	})
}
