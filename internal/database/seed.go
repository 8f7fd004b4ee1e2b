package database

import (
	"fmt"

	"github.com/Minarsribabu/Eco-Cred/internal/models"
	"github.com/Minarsribabu/Eco-Cred/internal/util"

	"gorm.io/gorm"
)

// Seed inserts reference data (emission factors and tips) if the
// corresponding tables are empty. Safe to call on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.EmissionFactor{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count factors: %w", err)
	}
	if count == 0 {
		factors := []struct {
			category string
			typ      string
			unit     string
			value    float64
			valUnit  string
		}{
			{"transport", "car", "km", 0.171, "kgCO2e/km"},
			{"transport", "bus", "km", 0.089, "kgCO2e/km"},
			{"transport", "train", "km", 0.041, "kgCO2e/km"},
			{"transport", "flight", "km", 0.255, "kgCO2e/km"},
			{"transport", "bike", "km", 0.0, "kgCO2e/km"},
			{"transport", "walk", "km", 0.0, "kgCO2e/km"},
			{"electricity", "grid_electricity", "kWh", 0.475, "kgCO2e/kWh"},
		}
		for _, f := range factors {
			row := models.EmissionFactor{
				ID:          util.NewID("ef"),
				Category:    f.category,
				Type:        f.typ,
				Unit:        f.unit,
				FactorValue: f.value,
				FactorUnit:  f.valUnit,
				Source:      "seed",
				Version:     "2024",
			}
			if err := db.Create(&row).Error; err != nil {
				return fmt.Errorf("seed factor %s/%s: %w", f.category, f.typ, err)
			}
		}
	}

	if err := db.Model(&models.Tip{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count tips: %w", err)
	}
	if count == 0 {
		tips := []struct {
			key      string
			title    string
			body     string
			category string
		}{
			{"short-trips-bike", "Bike or walk short trips", "For trips under 3 km, consider biking or walking to avoid car emissions.", "transport"},
			{"public-transit", "Use public transit", "Buses and trains have lower emissions per passenger than cars.", "transport"},
			{"turn-off-standby", "Reduce standby power", "Unplug devices or use power strips to cut phantom loads.", "electricity"},
			{"led-bulbs", "Switch to LED bulbs", "LEDs use much less energy than incandescents.", "electricity"},
		}
		for _, tp := range tips {
			row := models.Tip{
				ID:       util.NewID("tip"),
				Key:      tp.key,
				Title:    tp.title,
				Body:     tp.body,
				Category: tp.category,
				Enabled:  true,
			}
			if err := db.Create(&row).Error; err != nil {
				return fmt.Errorf("seed tip %s: %w", tp.key, err)
			}
		}
	}

	return nil
}
