// Package testutil holds database fixtures shared by package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-task-api/internal/database"
	"github.com/yukikurage/project-task-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Password is the plain-text password of every fixture user.
const Password = "supersecret"

// NewDB opens a migrated in-memory SQLite database that lives for the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a new database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, email, firstName, lastName string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateProject creates a project managed by managerID, including the
// manager's assignment.
func CreateProject(t *testing.T, db *gorm.DB, name string, managerID uint64) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:      name,
		ManagerID: managerID,
	}
	require.NoError(t, db.Omit(clause.Associations).Create(project).Error)
	Assign(t, db, project.ID, managerID, models.RoleManager)
	return project
}

func Assign(t *testing.T, db *gorm.DB, projectID, userID uint64, role models.AssignmentRole) *models.Assignment {
	t.Helper()

	assignment := &models.Assignment{
		ProjectID:  projectID,
		UserID:     userID,
		Role:       role,
		AssignedAt: time.Now(),
	}
	require.NoError(t, db.Omit(clause.Associations).Create(assignment).Error)
	return assignment
}

func CreateTask(t *testing.T, db *gorm.DB, task models.Task) *models.Task {
	t.Helper()

	if task.Priority == 0 {
		task.Priority = models.PriorityMed
	}
	require.NoError(t, db.Omit(clause.Associations).Create(&task).Error)
	return &task
}
