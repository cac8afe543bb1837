package dto

import (
	"time"

	"github.com/yukikurage/project-task-api/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	ManagerID   uint64     `json:"manager_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AssignmentDTO represents a user placed on a project
type AssignmentDTO struct {
	User       UserDTO               `json:"user"`
	Role       models.AssignmentRole `json:"role"`
	AssignedAt time.Time             `json:"assigned_at"`
}

// ProjectDetailDTO represents a project with its manager and assignments
type ProjectDetailDTO struct {
	ProjectDTO
	Manager     UserDTO         `json:"manager"`
	Assignments []AssignmentDTO `json:"assignments"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		ManagerID:   project.ManagerID,
		CreatedAt:   project.CreatedAt,
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}
	return items
}

// ToAssignmentDTO converts an assignment; the user must be preloaded
func ToAssignmentDTO(assignment models.Assignment) AssignmentDTO {
	return AssignmentDTO{
		User:       ToUserDTO(assignment.User),
		Role:       assignment.Role,
		AssignedAt: assignment.AssignedAt,
	}
}

// ToAssignmentDTOs converts a slice of assignments
func ToAssignmentDTOs(assignments []models.Assignment) []AssignmentDTO {
	items := make([]AssignmentDTO, len(assignments))
	for i, assignment := range assignments {
		items[i] = ToAssignmentDTO(assignment)
	}
	return items
}

// ToProjectDetailDTO converts a project with preloaded manager and assignments
func ToProjectDetailDTO(project models.Project) ProjectDetailDTO {
	return ProjectDetailDTO{
		ProjectDTO:  ToProjectDTO(project),
		Manager:     ToUserDTO(project.Manager),
		Assignments: ToAssignmentDTOs(project.Assignments),
	}
}
