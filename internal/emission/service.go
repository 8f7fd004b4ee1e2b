package emission

import (
	"fmt"
	"strings"
	"time"

	"github.com/Minarsribabu/Eco-Cred/internal/models"
	"github.com/Minarsribabu/Eco-Cred/internal/util"

	"gorm.io/gorm"
)

// Service is the activity intake and aggregation engine. It is
// request-scoped and stateless between calls; the only shared state is
// the read-only factor table behind the injected DB handle.
type Service struct {
	db      *gorm.DB
	catalog *Catalog
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		db:      db,
		catalog: NewCatalog(db),
	}
}

// SubmitInput is one raw activity submission, already parsed from JSON
// at the handler boundary.
type SubmitInput struct {
	Category string
	Type     string
	Quantity float64
	Unit     string
	Date     string
}

// Date layouts accepted for activity submissions. RFC 3339 covers the
// trailing-Z form the frontend sends.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Submit validates one activity, resolves its emission factor, computes
// CO2e and persists the activity plus any earned credit in a single
// transaction. Nothing is written when any step fails.
func (s *Service) Submit(userID string, in SubmitInput) (*models.Activity, error) {
	in.Category = strings.TrimSpace(in.Category)
	in.Type = strings.TrimSpace(in.Type)
	in.Unit = strings.TrimSpace(in.Unit)

	if in.Category == "" || in.Type == "" || in.Unit == "" || in.Date == "" || in.Quantity <= 0 {
		return nil, ErrInvalidInput
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	factor, effectiveQty, err := s.catalog.Resolve(in.Category, in.Type, in.Unit, in.Quantity)
	if err != nil {
		return nil, err
	}

	activity := &models.Activity{
		ID:       util.NewID("act"),
		UserID:   userID,
		Category: in.Category,
		Type:     in.Type,
		Quantity: effectiveQty,
		Unit:     in.Unit,
		Date:     date,
		CO2e:     CO2e(effectiveQty, factor),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(activity).Error; err != nil {
			return fmt.Errorf("create activity: %w", err)
		}
		if points := Points(in.Type); points > 0 {
			credit := &models.Credit{
				ID:         util.NewID("cred"),
				UserID:     userID,
				ActivityID: activity.ID,
				Reason:     models.CreditReasonLowCarbon,
				Points:     points,
			}
			if err := tx.Create(credit).Error; err != nil {
				return fmt.Errorf("create credit: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return activity, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// Summary is the windowed emission total with period-over-period trend.
// Trend is nil when the previous window had no emissions.
type Summary struct {
	TotalCO2e float64  `json:"total_co2e"`
	Trend     *float64 `json:"trend"`
}

// Summarize sums the user's CO2e over the window containing asOf and
// compares it against the immediately preceding window.
func (s *Service) Summarize(userID string, period Period, asOf time.Time) (*Summary, error) {
	asOf = asOf.UTC()
	start := windowStart(period, asOf)

	total, err := s.sumCO2e(userID, start, asOf)
	if err != nil {
		return nil, err
	}

	prevStart, prevEnd := previousWindow(period, start)
	prevTotal, err := s.sumCO2e(userID, prevStart, prevEnd)
	if err != nil {
		return nil, err
	}

	summary := &Summary{TotalCO2e: total}
	if prevTotal != 0 {
		trend := (total - prevTotal) / prevTotal
		summary.Trend = &trend
	}
	return summary, nil
}

func (s *Service) sumCO2e(userID string, from, to time.Time) (float64, error) {
	var total float64
	err := s.db.Model(&models.Activity{}).
		Select("COALESCE(SUM(co2e), 0)").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum co2e: %w", err)
	}
	return total, nil
}

// RecentActivities returns the user's most recent activities by activity
// date, newest first.
func (s *Service) RecentActivities(userID string, limit int) ([]models.Activity, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var activities []models.Activity
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// CreditSummary is the lifetime point total plus the most recent awards.
// Unlike emissions, credits are deliberately not windowed.
type CreditSummary struct {
	TotalPoints int             `json:"total_points"`
	Recent      []models.Credit `json:"recent"`
}

// Credits sums the user's all-time points and lists the 50 most recent
// credit records, newest first.
func (s *Service) Credits(userID string) (*CreditSummary, error) {
	var totalPoints int
	err := s.db.Model(&models.Credit{}).
		Select("COALESCE(SUM(points), 0)").
		Where("user_id = ?", userID).
		Scan(&totalPoints).Error
	if err != nil {
		return nil, fmt.Errorf("sum points: %w", err)
	}

	var recent []models.Credit
	err = s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&recent).Error
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}

	return &CreditSummary{TotalPoints: totalPoints, Recent: recent}, nil
}
