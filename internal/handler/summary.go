package handler

import (
	"net/http"
	"time"

	"github.com/Minarsribabu/Eco-Cred/internal/emission"
	"github.com/Minarsribabu/Eco-Cred/internal/util"

	"github.com/gin-gonic/gin"
)

// SummaryHandler serves the windowed emission summary and credit totals.
type SummaryHandler struct {
	Svc *emission.Service
}

func NewSummaryHandler(svc *emission.Service) *SummaryHandler {
	return &SummaryHandler{Svc: svc}
}

// Summary returns the current-window CO2e total and the trend against
// the previous window. Windows are UTC-fixed.
func (h *SummaryHandler) Summary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "unauthorized")
		return
	}

	period := emission.NormalizePeriod(c.DefaultQuery("period", "month"))

	summary, err := h.Svc.Summarize(user.ID, period, time.Now().UTC())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to compute summary")
		return
	}

	util.Success(c, util.Response{
		"total_co2e": summary.TotalCO2e,
		"trend":      summary.Trend,
	})
}

type creditResp struct {
	ID        string    `json:"id"`
	Reason    string    `json:"reason"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credits returns lifetime points and the most recent credit awards.
func (h *SummaryHandler) Credits(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "unauthorized")
		return
	}

	credits, err := h.Svc.Credits(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load credits")
		return
	}

	recent := make([]creditResp, 0, len(credits.Recent))
	for _, cr := range credits.Recent {
		recent = append(recent, creditResp{
			ID:        cr.ID,
			Reason:    cr.Reason,
			Points:    cr.Points,
			CreatedAt: cr.CreatedAt,
		})
	}

	util.Success(c, util.Response{
		"total_points": credits.TotalPoints,
		"recent":       recent,
	})
}
