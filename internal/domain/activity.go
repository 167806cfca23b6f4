package domain

import "time"

// Activity is the parent resource todos are grouped under.
type Activity struct {
	ID        uint       `gorm:"primaryKey"`
	Title     string     `gorm:"not null"`
	Email     *string    `gorm:"size:255"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

func (Activity) TableName() string {
	return "activities"
}
