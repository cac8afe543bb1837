package dto

import (
	"time"

	"github.com/yukikurage/project-task-api/internal/models"
	"github.com/yukikurage/project-task-api/internal/services"
	"github.com/yukikurage/project-task-api/internal/utils"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64 `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Name      string `json:"name"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID            uint64            `json:"id"`
	Name          string            `json:"name"`
	Priority      models.Priority   `json:"priority"`
	PriorityLabel string            `json:"priority_label"`
	DueOn         *time.Time        `json:"due_on"`
	Completed     bool              `json:"completed"`
	Status        models.TaskStatus `json:"status"`
	ProjectID     uint64            `json:"project_id"`
	CreatedBy     uint64            `json:"created_by"`
	CompletedBy   *uint64           `json:"completed_by"`
	ProjectName   string            `json:"project_name,omitempty"`
	CreatorName   string            `json:"creator_name,omitempty"`
	CompleterName string            `json:"completer_name,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// TaskDetailDTO is a task with the assignments of its project
type TaskDetailDTO struct {
	TaskDTO
	Assignments []AssignmentDTO `json:"assignments"`
}

// TaskDraftDTO represents an unsaved task suggestion
type TaskDraftDTO struct {
	Name          string          `json:"name"`
	Priority      models.Priority `json:"priority"`
	PriorityLabel string          `json:"priority_label"`
	DueOn         *time.Time      `json:"due_on"`
	ProjectID     uint64          `json:"project_id"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO                `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ProjectSummaryDTO represents task counts for a project
type ProjectSummaryDTO struct {
	ProjectID  uint64    `json:"project_id"`
	Total      int       `json:"total"`
	Incomplete int       `json:"incomplete"`
	Completed  int       `json:"completed"`
	Overdue    int       `json:"overdue"`
	DueSoon    int       `json:"due_soon"`
	DueDays    int       `json:"due_days"`
	NextUp     []TaskDTO `json:"next_up"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Name:      user.ProperName(),
	}
}

// ToTaskDTO converts a Task model to TaskDTO. Names are filled from
// preloaded relations when present.
func ToTaskDTO(task models.Task, now time.Time) TaskDTO {
	dto := TaskDTO{
		ID:            task.ID,
		Name:          task.Name,
		Priority:      task.Priority,
		PriorityLabel: task.Priority.Label(),
		DueOn:         task.DueOn,
		Completed:     task.Completed,
		Status:        task.Status(now),
		ProjectID:     task.ProjectID,
		CreatedBy:     task.CreatedBy,
		CompletedBy:   task.CompletedBy,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}

	if task.Project.ID != 0 {
		dto.ProjectName = task.Project.Name
	}
	if task.Creator.ID != 0 {
		dto.CreatorName = task.Creator.ProperName()
	}
	if task.Completer != nil {
		dto.CompleterName = task.Completer.ProperName()
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task, now time.Time) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task, now)
	}
	return items
}

// ToTaskDetailDTO converts a resolved task detail
func ToTaskDetailDTO(detail services.TaskDetail, now time.Time) TaskDetailDTO {
	task := ToTaskDTO(detail.Task, now)
	task.ProjectName = detail.ProjectName
	task.CreatorName = detail.CreatorName
	task.CompleterName = detail.CompleterName

	return TaskDetailDTO{
		TaskDTO:     task,
		Assignments: ToAssignmentDTOs(detail.Assignments),
	}
}

// ToTaskDraftDTO converts an unsaved task
func ToTaskDraftDTO(task models.Task) TaskDraftDTO {
	return TaskDraftDTO{
		Name:          task.Name,
		Priority:      task.Priority,
		PriorityLabel: task.Priority.Label(),
		DueOn:         task.DueOn,
		ProjectID:     task.ProjectID,
	}
}

// ToTaskListResponse converts a page of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task, params utils.PaginationParams, total int64, now time.Time) TaskListResponse {
	return TaskListResponse{
		Tasks:      ToTaskDTOs(tasks, now),
		Pagination: utils.NewPaginationResponse(params, total),
	}
}

// ToProjectSummaryDTO converts a project summary
func ToProjectSummaryDTO(summary services.ProjectSummary, now time.Time) ProjectSummaryDTO {
	return ProjectSummaryDTO{
		ProjectID:  summary.ProjectID,
		Total:      summary.Total,
		Incomplete: summary.Incomplete,
		Completed:  summary.Completed,
		Overdue:    summary.Overdue,
		DueSoon:    summary.DueSoon,
		DueDays:    summary.DueDays,
		NextUp:     ToTaskDTOs(summary.NextUp, now),
	}
}
