package models

import "time"

// CreditReasonLowCarbon is the only credit reason awarded today.
const CreditReasonLowCarbon = "low_carbon_choice"

// Credit is a gamification award for a low-carbon activity choice.
// Only positive awards are stored; a zero-point activity produces no row.
// ActivityID links back to the originating activity for display purposes
// only, it is not an ownership edge.
type Credit struct {
	ID         string    `gorm:"primaryKey;size:40"`
	UserID     string    `gorm:"size:40;index;not null"`
	ActivityID string    `gorm:"size:40;index"`
	Reason     string    `gorm:"size:32;not null"`
	Points     int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"index"`

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
