package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/project-task-api/internal/models"
	"github.com/yukikurage/project-task-api/internal/repository"
	"gorm.io/gorm"
)

// ProjectService provides business logic for projects and their assignments.
type ProjectService struct {
	projectRepo    repository.ProjectRepository
	assignmentRepo repository.AssignmentRepository
	userRepo       repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, assignmentRepo repository.AssignmentRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	ManagerID   uint64
}

// CreateProject creates a project managed by the caller.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProjectNameRequired
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, ErrInvalidProjectDates
	}

	project := &models.Project{
		Name:        name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		ManagerID:   input.ManagerID,
	}
	assignment := &models.Assignment{
		Role:       models.RoleManager,
		AssignedAt: time.Now(),
	}

	if err := s.projectRepo.CreateWithManager(project, assignment); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// ListProjectsForUser returns the projects the user is assigned to.
func (s *ProjectService) ListProjectsForUser(userID uint64) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns a project with its manager and assignments.
func (s *ProjectService) GetProject(projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID, "Manager", "Assignments", "Assignments.User")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// EnsureMember verifies that a user is assigned to a project.
func (s *ProjectService) EnsureMember(projectID, userID uint64) error {
	_, err := s.assignmentRepo.Find(projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotProjectMember
		}
		return fmt.Errorf("failed to verify project assignment: %w", err)
	}
	return nil
}

// ListAssignments returns the assignments of a project.
func (s *ProjectService) ListAssignments(projectID uint64) ([]models.Assignment, error) {
	assignments, err := s.assignmentRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// AssignUserInput represents a request to place a user on a project.
type AssignUserInput struct {
	ProjectID uint64
	ActorID   uint64
	UserID    uint64
	Role      models.AssignmentRole
}

// AssignUser adds a user to the project. Only the manager may do this.
func (s *ProjectService) AssignUser(input AssignUserInput) (*models.Assignment, error) {
	if input.Role == "" {
		input.Role = models.RoleMember
	}
	if input.Role != models.RoleMember && input.Role != models.RoleManager {
		return nil, ErrInvalidAssignmentRole
	}

	if err := s.ensureManager(input.ProjectID, input.ActorID); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.EnsureMember(input.ProjectID, input.UserID); err == nil {
		return nil, ErrAlreadyAssigned
	} else if !errors.Is(err, ErrNotProjectMember) {
		return nil, err
	}

	assignment := &models.Assignment{
		ProjectID:  input.ProjectID,
		UserID:     input.UserID,
		Role:       input.Role,
		AssignedAt: time.Now(),
	}
	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to assign user: %w", err)
	}

	return assignment, nil
}

// UnassignUser removes a user from the project. The manager cannot be removed.
func (s *ProjectService) UnassignUser(projectID, actorID, userID uint64) error {
	if err := s.ensureManager(projectID, actorID); err != nil {
		return err
	}
	if userID == actorID {
		return ErrCannotRemoveManager
	}

	if err := s.EnsureMember(projectID, userID); err != nil {
		if errors.Is(err, ErrNotProjectMember) {
			return ErrAssignmentNotFound
		}
		return err
	}

	if err := s.assignmentRepo.Delete(projectID, userID); err != nil {
		return fmt.Errorf("failed to unassign user: %w", err)
	}
	return nil
}

func (s *ProjectService) ensureManager(projectID, userID uint64) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}
	if project.ManagerID != userID {
		return ErrNotProjectManager
	}
	return nil
}
