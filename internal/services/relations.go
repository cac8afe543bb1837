package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/project-task-api/internal/models"
	"github.com/yukikurage/project-task-api/internal/repository"
	"gorm.io/gorm"
)

// TaskRelations resolves the entities a task points at.
type TaskRelations struct {
	projectRepo    repository.ProjectRepository
	userRepo       repository.UserRepository
	assignmentRepo repository.AssignmentRepository
}

// NewTaskRelations creates a new TaskRelations.
func NewTaskRelations(projectRepo repository.ProjectRepository, userRepo repository.UserRepository, assignmentRepo repository.AssignmentRepository) *TaskRelations {
	return &TaskRelations{
		projectRepo:    projectRepo,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
	}
}

// ProjectName returns the name of the task's project.
func (r *TaskRelations) ProjectName(task models.Task) (string, error) {
	project, err := r.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrProjectNotFound
		}
		return "", fmt.Errorf("failed to find project: %w", err)
	}
	return project.Name, nil
}

// CreatorProperName returns the display name of the user who created the task.
func (r *TaskRelations) CreatorProperName(task models.Task) (string, error) {
	return r.properName(task.CreatedBy)
}

// CompleterProperName returns the display name of the user who completed
// the task, or "" when nobody has.
func (r *TaskRelations) CompleterProperName(task models.Task) (string, error) {
	if task.CompletedBy == nil {
		return "", nil
	}
	return r.properName(*task.CompletedBy)
}

// Assignments returns the assignments of the task's project.
func (r *TaskRelations) Assignments(task models.Task) ([]models.Assignment, error) {
	assignments, err := r.assignmentRepo.ListByProject(task.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

func (r *TaskRelations) properName(userID uint64) (string, error) {
	user, err := r.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}
	return user.ProperName(), nil
}
