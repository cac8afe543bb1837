package query

import (
	"strings"
	"time"

	"github.com/yukikurage/project-task-api/internal/models"
)

// Time predicates never match a task without a due date.

// Upcoming matches tasks due after now.
func Upcoming(now time.Time) Predicate {
	return func(t models.Task) bool {
		return t.DueOn != nil && t.DueOn.After(now)
	}
}

// InNextDays matches tasks due between now and now+days, inclusive.
func InNextDays(now time.Time, days int) Predicate {
	end := now.AddDate(0, 0, days)
	return func(t models.Task) bool {
		return t.DueOn != nil && !t.DueOn.Before(now) && !t.DueOn.After(end)
	}
}

// Overdue matches incomplete tasks due before now.
func Overdue(now time.Time) Predicate {
	return func(t models.Task) bool {
		return !t.Completed && t.DueOn != nil && t.DueOn.Before(now)
	}
}

func Incomplete() Predicate {
	return func(t models.Task) bool { return !t.Completed }
}

func Completed() Predicate {
	return func(t models.Task) bool { return t.Completed }
}

func WithPriority(p models.Priority) Predicate {
	return func(t models.Task) bool { return t.Priority == p }
}

func HighPriority() Predicate { return WithPriority(models.PriorityHigh) }

func MedPriority() Predicate { return WithPriority(models.PriorityMed) }

func ForProject(projectID uint64) Predicate {
	return func(t models.Task) bool { return t.ProjectID == projectID }
}

func ForCreator(userID uint64) Predicate {
	return func(t models.Task) bool { return t.CreatedBy == userID }
}

func ForCompleter(userID uint64) Predicate {
	return func(t models.Task) bool { return t.CompletedBy != nil && *t.CompletedBy == userID }
}

// Orderings. Tasks without a due date sort after dated ones.

// DueOnAsc orders by due date, earliest first.
func DueOnAsc(a, b models.Task) bool {
	switch {
	case a.DueOn == nil:
		return false
	case b.DueOn == nil:
		return true
	default:
		return a.DueOn.Before(*b.DueOn)
	}
}

// UpdatedAtDesc orders by last update, most recent first.
func UpdatedAtDesc(a, b models.Task) bool {
	return a.UpdatedAt.After(b.UpdatedAt)
}

// PriorityAsc orders the most urgent first.
func PriorityAsc(a, b models.Task) bool {
	return a.Priority < b.Priority
}

// NameAsc orders names lexically.
func NameAsc(a, b models.Task) bool {
	return strings.Compare(a.Name, b.Name) < 0
}

// Named stages.

func Chronological() Stage { return OrderBy(DueOnAsc) }

func ByCompletionDate() Stage { return OrderBy(UpdatedAtDesc) }

func ByPriority() Stage { return OrderBy(PriorityAsc, DueOnAsc) }

func ByName() Stage { return OrderBy(NameAsc) }

// Last keeps the first n tasks of the current ordering.
func Last(n int) Stage { return Limit(n) }
