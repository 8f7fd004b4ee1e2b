package models

import "time"

// User represents application user.
type User struct {
	ID           string    `gorm:"primaryKey;size:40"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	DisplayName  string    `gorm:"size:64"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Activities []Activity `gorm:"foreignKey:UserID"`
	Credits    []Credit   `gorm:"foreignKey:UserID"`
}
