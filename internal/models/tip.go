package models

// Tip is static advisory content shown to users, seeded at startup.
type Tip struct {
	ID       string `gorm:"primaryKey;size:40"`
	Key      string `gorm:"size:64;uniqueIndex;not null"`
	Title    string `gorm:"size:128;not null"`
	Body     string `gorm:"type:text;not null"`
	Category string `gorm:"size:32"`
	Enabled  bool   `gorm:"not null;default:true"`
}
