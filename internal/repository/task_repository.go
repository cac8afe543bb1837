package repository

import (
	"time"

	"github.com/yukikurage/project-task-api/internal/database"
	"github.com/yukikurage/project-task-api/internal/models"
	"github.com/yukikurage/project-task-api/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Omit(clause.Associations).Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// List retrieves tasks with filtering and pagination
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, int64, error) {
	var tasks []models.Task

	if len(filter.ProjectIDs) == 0 {
		return []models.Task{}, 0, nil
	}

	now := filter.Now
	if now.IsZero() {
		now = time.Now()
	}

	query := r.db.Model(&models.Task{}).Scopes(filterScopes(filter, now)...)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Scopes(sortScopes(filter.Sort)...)

	switch {
	case filter.Last > 0:
		listQuery = listQuery.Scopes(database.Last(filter.Last))
		if total > int64(filter.Last) {
			total = int64(filter.Last)
		}
	case filter.Page > 0 && filter.PageSize > 0:
		listQuery = listQuery.Scopes(database.Paginate(utils.NewPaginationParams(filter.Page, filter.PageSize)))
	}

	if err := listQuery.Preload("Project").Preload("Creator").Preload("Completer").Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

func filterScopes(filter TaskFilter, now time.Time) []database.Scope {
	scopes := []database.Scope{database.ForProjects(filter.ProjectIDs)}

	if filter.ProjectID != nil {
		scopes = append(scopes, database.ForProject(*filter.ProjectID))
	}
	if filter.CreatorID != nil {
		scopes = append(scopes, database.ForCreator(*filter.CreatorID))
	}
	if filter.CompleterID != nil {
		scopes = append(scopes, database.ForCompleter(*filter.CompleterID))
	}
	if filter.Priority != nil {
		scopes = append(scopes, database.WithPriority(*filter.Priority))
	}
	if filter.DueWithin != nil {
		scopes = append(scopes, database.InNextDays(now, *filter.DueWithin))
	}

	switch filter.State {
	case StateIncomplete:
		scopes = append(scopes, database.Incomplete)
	case StateCompleted:
		scopes = append(scopes, database.Completed)
	case StateOverdue:
		scopes = append(scopes, database.Overdue(now))
	case StateUpcoming:
		scopes = append(scopes, database.Upcoming(now))
	}

	return scopes
}

func sortScopes(sort TaskSort) []database.Scope {
	var order database.Scope
	switch sort {
	case SortChronological:
		order = database.Chronological
	case SortByCompletionDate:
		order = database.ByCompletionDate
	case SortByPriority:
		order = database.ByPriority
	case SortByName:
		order = database.ByName
	default:
		return []database.Scope{database.Order("tasks.created_at DESC"), database.Order("tasks.id DESC")}
	}
	return []database.Scope{order, database.Order("tasks.id ASC")}
}

// ListByProject loads every task of a project
func (r *GormTaskRepository) ListByProject(projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Scopes(database.ForProject(projectID)).Order("tasks.id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Omit(clause.Associations).Save(task).Error
}

// Delete soft deletes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}
