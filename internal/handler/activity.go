package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Minarsribabu/Eco-Cred/internal/emission"
	"github.com/Minarsribabu/Eco-Cred/internal/models"
	"github.com/Minarsribabu/Eco-Cred/internal/util"

	"github.com/gin-gonic/gin"
)

// ActivityHandler serves activity submission and listing.
type ActivityHandler struct {
	Svc         *emission.Service
	RecentLimit int
}

func NewActivityHandler(svc *emission.Service, recentLimit int) *ActivityHandler {
	if recentLimit <= 0 {
		recentLimit = 50
	}
	return &ActivityHandler{Svc: svc, RecentLimit: recentLimit}
}

type createActivityReq struct {
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Date     string  `json:"date"`
}

type activityResp struct {
	ID       string    `json:"id"`
	Category string    `json:"category"`
	Type     string    `json:"type"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
	Date     time.Time `json:"date"`
	CO2e     float64   `json:"co2e"`
}

func toActivityResp(a *models.Activity) activityResp {
	return activityResp{
		ID:       a.ID,
		Category: a.Category,
		Type:     a.Type,
		Quantity: a.Quantity,
		Unit:     a.Unit,
		Date:     a.Date,
		CO2e:     a.CO2e,
	}
}

// Create submits one activity through the emission engine.
func (h *ActivityHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "unauthorized")
		return
	}

	var req createActivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid input")
		return
	}

	activity, err := h.Svc.Submit(user.ID, emission.SubmitInput{
		Category: req.Category,
		Type:     req.Type,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Date:     req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, emission.ErrInvalidInput):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid input")
		case errors.Is(err, emission.ErrInvalidDate):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid date")
		case errors.Is(err, emission.ErrNoFactor):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "no emission factor for this activity")
		default:
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save activity")
		}
		return
	}

	util.Success(c, util.Response{
		"activity": gin.H{
			"id":   activity.ID,
			"co2e": activity.CO2e,
		},
	})
}

// List returns the user's 50 most recent activities, newest first.
func (h *ActivityHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "unauthorized")
		return
	}

	activities, err := h.Svc.RecentActivities(user.ID, h.RecentLimit)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list activities")
		return
	}

	items := make([]activityResp, 0, len(activities))
	for i := range activities {
		items = append(items, toActivityResp(&activities[i]))
	}

	util.Success(c, util.Response{
		"items": items,
	})
}
