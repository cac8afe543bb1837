package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-task-api/internal/models"
	"github.com/yukikurage/project-task-api/internal/repository"
	"github.com/yukikurage/project-task-api/internal/testutil"
	"gorm.io/gorm"
)

func newProjectService(t *testing.T) (*ProjectService, *gorm.DB) {
	db := testutil.NewDB(t)
	return NewProjectService(
		repository.NewProjectRepository(db),
		repository.NewAssignmentRepository(db),
		repository.NewUserRepository(db),
	), db
}

func TestCreateProject(t *testing.T) {
	svc, db := newProjectService(t)
	manager := testutil.CreateUser(t, db, "manager@example.com", "Mia", "Manager")

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)
	project, err := svc.CreateProject(CreateProjectInput{
		Name:      "  Apollo ",
		StartDate: &start,
		EndDate:   &end,
		ManagerID: manager.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Apollo", project.Name)

	loaded, err := svc.GetProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, manager.ID, loaded.Manager.ID)
	require.Len(t, loaded.Assignments, 1)
	assert.Equal(t, models.RoleManager, loaded.Assignments[0].Role)
	assert.Equal(t, "manager@example.com", loaded.Assignments[0].User.Email)

	projects, err := svc.ListProjectsForUser(manager.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
}

func TestCreateProjectValidation(t *testing.T) {
	svc, db := newProjectService(t)
	manager := testutil.CreateUser(t, db, "manager@example.com", "Mia", "Manager")

	_, err := svc.CreateProject(CreateProjectInput{Name: " ", ManagerID: manager.ID})
	assert.ErrorIs(t, err, ErrProjectNameRequired)

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	_, err = svc.CreateProject(CreateProjectInput{Name: "Backwards", StartDate: &start, EndDate: &end, ManagerID: manager.ID})
	assert.ErrorIs(t, err, ErrInvalidProjectDates)
}

func TestGetProjectNotFound(t *testing.T) {
	svc, _ := newProjectService(t)

	_, err := svc.GetProject(42)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestAssignAndUnassignUser(t *testing.T) {
	svc, db := newProjectService(t)
	manager := testutil.CreateUser(t, db, "manager@example.com", "Mia", "Manager")
	member := testutil.CreateUser(t, db, "member@example.com", "Max", "Member")
	project := testutil.CreateProject(t, db, "Apollo", manager.ID)

	assignment, err := svc.AssignUser(AssignUserInput{ProjectID: project.ID, ActorID: manager.ID, UserID: member.ID})
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, assignment.Role)
	assert.NoError(t, svc.EnsureMember(project.ID, member.ID))

	_, err = svc.AssignUser(AssignUserInput{ProjectID: project.ID, ActorID: manager.ID, UserID: member.ID})
	assert.ErrorIs(t, err, ErrAlreadyAssigned)

	assignments, err := svc.ListAssignments(project.ID)
	require.NoError(t, err)
	assert.Len(t, assignments, 2)

	require.NoError(t, svc.UnassignUser(project.ID, manager.ID, member.ID))
	assert.ErrorIs(t, svc.EnsureMember(project.ID, member.ID), ErrNotProjectMember)
	assert.ErrorIs(t, svc.UnassignUser(project.ID, manager.ID, member.ID), ErrAssignmentNotFound)
}

func TestAssignUserRules(t *testing.T) {
	svc, db := newProjectService(t)
	manager := testutil.CreateUser(t, db, "manager@example.com", "Mia", "Manager")
	member := testutil.CreateUser(t, db, "member@example.com", "Max", "Member")
	project := testutil.CreateProject(t, db, "Apollo", manager.ID)
	testutil.Assign(t, db, project.ID, member.ID, models.RoleMember)

	tests := []struct {
		name  string
		input AssignUserInput
		want  error
	}{
		{"non manager", AssignUserInput{ProjectID: project.ID, ActorID: member.ID, UserID: manager.ID}, ErrNotProjectManager},
		{"unknown project", AssignUserInput{ProjectID: 999, ActorID: manager.ID, UserID: member.ID}, ErrProjectNotFound},
		{"unknown user", AssignUserInput{ProjectID: project.ID, ActorID: manager.ID, UserID: 999}, ErrUserNotFound},
		{"bad role", AssignUserInput{ProjectID: project.ID, ActorID: manager.ID, UserID: member.ID, Role: "owner"}, ErrInvalidAssignmentRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AssignUser(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.ErrorIs(t, svc.UnassignUser(project.ID, manager.ID, manager.ID), ErrCannotRemoveManager)
	assert.ErrorIs(t, svc.UnassignUser(project.ID, member.ID, manager.ID), ErrNotProjectManager)
}
