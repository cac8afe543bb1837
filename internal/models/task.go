package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "Pending"
	TaskStatusOverdue   TaskStatus = "Overdue"
	TaskStatusCompleted TaskStatus = "Completed"
)

type Task struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Priority    Priority       `gorm:"not null" json:"priority"`
	DueOn       *time.Time     `json:"due_on"`
	DueString   *string        `gorm:"-" json:"-"`
	Completed   bool           `gorm:"not null;default:false" json:"completed"`
	ProjectID   uint64         `gorm:"not null" json:"project_id"`
	CreatedBy   uint64         `gorm:"not null" json:"created_by"`
	CompletedBy *uint64        `json:"completed_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Project   Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Creator   User    `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Completer *User   `gorm:"foreignKey:CompletedBy" json:"completer,omitempty"`
}

// BeforeSave stores due_on in UTC so that SQL comparisons agree on every
// dialect, including SQLite where times are compared as text.
func (t *Task) BeforeSave(tx *gorm.DB) error {
	if t.DueOn != nil {
		due := t.DueOn.UTC()
		t.DueOn = &due
	}
	return nil
}

// Status derives the task state at now. A task due exactly at now, or
// with no due date, is Pending.
func (t Task) Status(now time.Time) TaskStatus {
	switch {
	case t.Completed:
		return TaskStatusCompleted
	case t.DueOn != nil && t.DueOn.Before(now):
		return TaskStatusOverdue
	default:
		return TaskStatusPending
	}
}
