package domain

import "time"

// Default values applied to a todo when the client omits them on create.
const (
	DefaultPriority = "very-high"
	DefaultIsActive = true
)

// Todo is a single item belonging to an activity group.
// ActivityGroupID is not declared as a foreign key: deleting an activity
// leaves its todos in place.
type Todo struct {
	ID              uint       `gorm:"primaryKey"`
	Title           string     `gorm:"not null"`
	ActivityGroupID uint       `gorm:"not null;index"`
	IsActive        bool       `gorm:"not null"`
	Priority        string     `gorm:"size:32;not null"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       *time.Time `gorm:"autoUpdateTime:false"`
}

func (Todo) TableName() string {
	return "todos"
}
