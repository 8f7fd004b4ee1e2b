package emission

import (
	"errors"
	"fmt"

	"github.com/Minarsribabu/Eco-Cred/internal/models"

	"gorm.io/gorm"
)

// MilesToKm is the fixed mi→km ratio used by the single unit-conversion
// rule in the catalog. Any other unit mismatch fails rather than converts.
const MilesToKm = 1.60934

// Catalog resolves emission factors against the seeded factor table.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// Resolve looks up the factor for (category, type, unit) and returns it
// together with the effective quantity. An exact match returns the
// quantity unchanged. If there is no exact match and the requested unit
// is "mi", the lookup is retried with "km" and the quantity converted.
// Returns ErrNoFactor when no applicable factor exists.
func (c *Catalog) Resolve(category, activityType, unit string, quantity float64) (*models.EmissionFactor, float64, error) {
	factor, err := c.lookup(category, activityType, unit)
	if err == nil {
		return factor, quantity, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, fmt.Errorf("lookup factor: %w", err)
	}

	if unit == "mi" {
		factor, err = c.lookup(category, activityType, "km")
		if err == nil {
			return factor, quantity * MilesToKm, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, fmt.Errorf("lookup factor: %w", err)
		}
	}

	return nil, 0, ErrNoFactor
}

func (c *Catalog) lookup(category, activityType, unit string) (*models.EmissionFactor, error) {
	var factor models.EmissionFactor
	err := c.db.
		Where("category = ? AND type = ? AND unit = ?", category, activityType, unit).
		First(&factor).Error
	if err != nil {
		return nil, err
	}
	return &factor, nil
}

// CO2e computes the emitted CO2-equivalent mass in kilograms for an
// already-resolved factor and effective quantity. Pure arithmetic, the
// stored value carries full float64 precision.
func CO2e(effectiveQuantity float64, factor *models.EmissionFactor) float64 {
	return effectiveQuantity * factor.FactorValue
}
