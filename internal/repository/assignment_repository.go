package repository

import (
	"github.com/yukikurage/project-task-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAssignmentRepository is a GORM implementation of AssignmentRepository
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Create adds a user to a project
func (r *GormAssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Omit(clause.Associations).Create(assignment).Error
}

// Delete removes a user from a project
func (r *GormAssignmentRepository) Delete(projectID, userID uint64) error {
	return r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.Assignment{}).Error
}

// Find finds a specific assignment
func (r *GormAssignmentRepository) Find(projectID, userID uint64) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListByProject lists assignments of a project with their users
func (r *GormAssignmentRepository) ListByProject(projectID uint64) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.Preload("User").
		Where("project_id = ?", projectID).
		Order("assigned_at ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListByUserID lists all assignments of a user
func (r *GormAssignmentRepository) ListByUserID(userID uint64) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.Where("user_id = ?", userID).Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}
