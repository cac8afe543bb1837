package constants

// Session and context keys
const (
	SessionCookieName = "task_session"
	ContextKeyUserID  = "user_id"
	ContextKeyTask    = "task"
	ContextKeyProject = "project"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Auth
const (
	MinPasswordLength = 8
)

// Tasks
const (
	DefaultUpcomingDays = 7
	SummaryUpcomingSize = 5
	MaxAIGeneratedTasks = 20
)
