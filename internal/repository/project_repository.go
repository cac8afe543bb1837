package repository

import (
	"errors"
	"fmt"

	"github.com/yukikurage/project-task-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrCreateProject is returned when creating a project fails inside the transaction.
	ErrCreateProject = errors.New("project repository: create project failed")
	// ErrCreateAssignment is returned when assigning the manager fails inside the transaction.
	ErrCreateAssignment = errors.New("project repository: create manager assignment failed")
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// CreateWithManager creates the project, then assigns its manager, in one transaction.
func (r *GormProjectRepository) CreateWithManager(project *models.Project, assignment *models.Assignment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(project).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateProject, err)
		}

		assignment.ProjectID = project.ID
		assignment.UserID = project.ManagerID

		if err := tx.Omit(clause.Associations).Create(assignment).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateAssignment, err)
		}

		return nil
	})
}

// FindByID finds a project by ID with optional preloading
func (r *GormProjectRepository) FindByID(id uint64, preload ...string) (*models.Project, error) {
	var project models.Project
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByUserID lists projects the user is assigned to
func (r *GormProjectRepository) ListByUserID(userID uint64) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Joins("JOIN assignments ON assignments.project_id = projects.id").
		Where("assignments.user_id = ?", userID).
		Order("projects.name ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}
