package models

// EmissionFactor maps (category, type, unit) to a CO2e multiplier.
// Reference data seeded at startup, never mutated by user actions.
// The unique index enforces one authoritative factor per triple.
type EmissionFactor struct {
	ID          string  `gorm:"primaryKey;size:40"`
	Category    string  `gorm:"size:32;uniqueIndex:idx_factor_key;not null"`
	Type        string  `gorm:"size:32;uniqueIndex:idx_factor_key;not null"`
	Unit        string  `gorm:"size:16;uniqueIndex:idx_factor_key;not null"` // quantity unit the factor expects
	FactorValue float64 `gorm:"not null"`                                    // kg CO2e per Unit
	FactorUnit  string  `gorm:"size:32;not null"`                            // e.g. "kgCO2e/km"
	Region      string  `gorm:"size:32"`
	Source      string  `gorm:"size:64"`
	Version     string  `gorm:"size:16"`
}
