package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/yukikurage/project-task-api/internal/models"
	"github.com/yukikurage/project-task-api/internal/utils"
)

// Scope is a reusable GORM query fragment.
type Scope = func(db *gorm.DB) *gorm.DB

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// Task orderings

// dueOnNullsLast sorts undated tasks after dated ones on every dialect.
const dueOnNullsLast = "CASE WHEN tasks.due_on IS NULL THEN 1 ELSE 0 END, tasks.due_on ASC"

func Chronological(db *gorm.DB) *gorm.DB {
	return db.Order(dueOnNullsLast)
}

func ByCompletionDate(db *gorm.DB) *gorm.DB {
	return db.Order("tasks.updated_at DESC")
}

func ByPriority(db *gorm.DB) *gorm.DB {
	return db.Order("tasks.priority ASC").Order(dueOnNullsLast)
}

func ByName(db *gorm.DB) *gorm.DB {
	return db.Order("tasks.name ASC")
}

// Last limits the result to the first n rows of the current ordering.
func Last(n int) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(n)
	}
}

// Task filters

// InNextDays selects tasks due between now and now+days, inclusive.
func InNextDays(now time.Time, days int) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tasks.due_on BETWEEN ? AND ?", now.UTC(), now.AddDate(0, 0, days).UTC())
	}
}

func Upcoming(now time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tasks.due_on > ?", now.UTC())
	}
}

func Incomplete(db *gorm.DB) *gorm.DB {
	return db.Where("tasks.completed = ?", false)
}

func Overdue(now time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tasks.due_on < ? AND tasks.completed = ?", now.UTC(), false)
	}
}

func Completed(db *gorm.DB) *gorm.DB {
	return db.Where("tasks.completed = ?", true)
}

func WithPriority(p models.Priority) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tasks.priority = ?", p)
	}
}

func HighPriority(db *gorm.DB) *gorm.DB {
	return WithPriority(models.PriorityHigh)(db)
}

func MedPriority(db *gorm.DB) *gorm.DB {
	return WithPriority(models.PriorityMed)(db)
}

func ForProject(projectID uint64) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tasks.project_id = ?", projectID)
	}
}

func ForProjects(projectIDs []uint64) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tasks.project_id IN ?", projectIDs)
	}
}

func ForCreator(userID uint64) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tasks.created_by = ?", userID)
	}
}

func ForCompleter(userID uint64) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tasks.completed_by = ?", userID)
	}
}

// Order appends a raw ORDER BY term, used to make orderings total.
func Order(expr string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(expr)
	}
}
