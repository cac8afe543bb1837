package models

import "time"

type AssignmentRole string

const (
	RoleManager AssignmentRole = "manager"
	RoleMember  AssignmentRole = "member"
)

// Assignment places a user on a project. Tasks reach assignments only
// through their project.
type Assignment struct {
	ProjectID  uint64         `gorm:"primarykey" json:"project_id"`
	UserID     uint64         `gorm:"primarykey" json:"user_id"`
	Role       AssignmentRole `gorm:"type:varchar(20);not null" json:"role"`
	AssignedAt time.Time      `json:"assigned_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
