package repository

import (
	"time"

	"github.com/yukikurage/project-task-api/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks with filtering and pagination
	List(filter TaskFilter) ([]models.Task, int64, error)

	// ListByProject loads every task of a project
	ListByProject(projectID uint64) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete soft deletes a task
	Delete(id uint64) error
}

// TaskSort names an ordering of task lists
type TaskSort string

const (
	SortDefault          TaskSort = ""
	SortChronological    TaskSort = "chronological"
	SortByCompletionDate TaskSort = "by_completion_date"
	SortByPriority       TaskSort = "by_priority"
	SortByName           TaskSort = "by_name"
)

// TaskState narrows a task list by completion and due date
type TaskState string

const (
	StateAny        TaskState = ""
	StateIncomplete TaskState = "incomplete"
	StateCompleted  TaskState = "completed"
	StateOverdue    TaskState = "overdue"
	StateUpcoming   TaskState = "upcoming"
)

// TaskFilter holds filtering options for listing tasks. Every set field
// narrows the result.
type TaskFilter struct {
	ProjectIDs  []uint64
	ProjectID   *uint64
	CreatorID   *uint64
	CompleterID *uint64
	Priority    *models.Priority
	State       TaskState
	DueWithin   *int
	Sort        TaskSort
	Last        int
	Now         time.Time
	Page        int
	PageSize    int
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// CreateWithManager creates a project and its manager assignment atomically
	CreateWithManager(project *models.Project, assignment *models.Assignment) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// ListByUserID lists projects the user is assigned to
	ListByUserID(userID uint64) ([]models.Project, error)
}

// AssignmentRepository defines the interface for assignment data access
type AssignmentRepository interface {
	// Create adds a user to a project
	Create(assignment *models.Assignment) error

	// Delete removes a user from a project
	Delete(projectID, userID uint64) error

	// Find finds a specific assignment
	Find(projectID, userID uint64) (*models.Assignment, error)

	// ListByProject lists assignments of a project with their users
	ListByProject(projectID uint64) ([]models.Assignment, error)

	// ListByUserID lists all assignments of a user
	ListByUserID(userID uint64) ([]models.Assignment, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}
