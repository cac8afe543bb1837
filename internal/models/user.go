package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName    string         `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string         `gorm:"type:varchar(100);not null" json:"last_name"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CreatedTasks   []Task       `gorm:"foreignKey:CreatedBy" json:"-"`
	CompletedTasks []Task       `gorm:"foreignKey:CompletedBy" json:"-"`
	Assignments    []Assignment `gorm:"foreignKey:UserID" json:"-"`
}

// ProperName returns the display name, "First Last".
func (u User) ProperName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
