package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name      string
		dueOn     *time.Time
		completed bool
		want      TaskStatus
	}{
		{"past and incomplete", &past, false, TaskStatusOverdue},
		{"future and incomplete", &future, false, TaskStatusPending},
		{"due exactly now", &now, false, TaskStatusPending},
		{"no due date", nil, false, TaskStatusPending},
		{"completed past", &past, true, TaskStatusCompleted},
		{"completed future", &future, true, TaskStatusCompleted},
		{"completed without due date", nil, true, TaskStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{DueOn: tt.dueOn, Completed: tt.completed}
			assert.Equal(t, tt.want, task.Status(now))
		})
	}
}

func TestPriority(t *testing.T) {
	for _, p := range []Priority{1, 2, 3, 4} {
		assert.True(t, p.Valid(), "priority %d", p)
	}
	for _, p := range []Priority{-1, 0, 5, 100} {
		assert.False(t, p.Valid(), "priority %d", p)
		assert.Empty(t, p.Label())
	}

	assert.Equal(t, "Who cares?", PrioritySomeday.Label())

	options := Priorities()
	assert.Len(t, options, 4)
	assert.Equal(t, PriorityOption{Label: "High", Value: PriorityHigh}, options[0])
	assert.Equal(t, PriorityOption{Label: "Who cares?", Value: PrioritySomeday}, options[3])
}

func TestUserProperName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", User{FirstName: "Ada", LastName: "Lovelace"}.ProperName())
	assert.Equal(t, "Ada", User{FirstName: "Ada"}.ProperName())
}
