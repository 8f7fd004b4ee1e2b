package models

import "time"

// Activity represents a single logged carbon-emitting activity.
// CO2e is computed once at creation time (kg CO2e) and never recomputed,
// even if the emission factor table changes later.
type Activity struct {
	ID        string    `gorm:"primaryKey;size:40"`
	UserID    string    `gorm:"size:40;index;not null"`
	Category  string    `gorm:"size:32;not null"` // transport / electricity
	Type      string    `gorm:"size:32;not null"` // car / bus / bike / ...
	Quantity  float64   `gorm:"not null"`         // amount in Unit
	Unit      string    `gorm:"size:16;not null"`
	Date      time.Time `gorm:"index;not null"` // when the activity happened, distinct from CreatedAt
	CO2e      float64   `gorm:"not null"`       // kilograms of CO2-equivalent
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
