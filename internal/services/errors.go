package services

import "errors"

var (
	ErrTaskNotFound           = errors.New("task not found")
	ErrTaskPermissionDenied   = errors.New("only the task creator or project manager can perform this action")
	ErrTaskAlreadyCompleted   = errors.New("task is already completed")
	ErrTaskNotCompleted       = errors.New("task is not completed")
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAINoTasksGenerated     = errors.New("AI did not generate any tasks")
	ErrAINoValidTasks         = errors.New("no valid tasks could be created from AI output")
	ErrAITooManyTasks         = errors.New("AI generated too many tasks")
)

var (
	ErrProjectNotFound       = errors.New("project not found")
	ErrProjectNameRequired   = errors.New("project name cannot be empty")
	ErrInvalidProjectDates   = errors.New("project end date must not be before start date")
	ErrNotProjectMember      = errors.New("user is not assigned to the project")
	ErrNotProjectManager     = errors.New("only the project manager can perform this action")
	ErrAlreadyAssigned       = errors.New("user is already assigned to this project")
	ErrAssignmentNotFound    = errors.New("assignment not found")
	ErrCannotRemoveManager   = errors.New("the project manager cannot be removed from the project")
	ErrInvalidAssignmentRole = errors.New("invalid assignment role")
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrEmailRequired        = errors.New("email is required")
	ErrNameRequired         = errors.New("first and last name are required")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)
