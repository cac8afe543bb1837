package database

import (
	"fmt"
	"log"

	"github.com/yukikurage/project-task-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds the indexes backing the task filters. Existing indexes
// are left alone.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   interface{}
		table   string
		name    string
		columns string
	}{
		{&models.Task{}, "tasks", "idx_tasks_project_id", "project_id"},
		{&models.Task{}, "tasks", "idx_tasks_created_by", "created_by"},
		{&models.Task{}, "tasks", "idx_tasks_completed_by", "completed_by"},
		{&models.Task{}, "tasks", "idx_tasks_due_on", "due_on"},
		{&models.Task{}, "tasks", "idx_tasks_priority_due_on", "priority, due_on"},
		{&models.Task{}, "tasks", "idx_tasks_completed", "completed"},

		{&models.Assignment{}, "assignments", "idx_assignments_user_id", "user_id"},
		{&models.Project{}, "projects", "idx_projects_manager_id", "manager_id"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
