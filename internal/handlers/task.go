package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-task-api/internal/dto"
	apierrors "github.com/yukikurage/project-task-api/internal/errors"
	"github.com/yukikurage/project-task-api/internal/middleware"
	"github.com/yukikurage/project-task-api/internal/models"
	"github.com/yukikurage/project-task-api/internal/repository"
	"github.com/yukikurage/project-task-api/internal/services"
	"github.com/yukikurage/project-task-api/internal/utils"
	"github.com/yukikurage/project-task-api/internal/validation"
)

const suggestTimeout = 60 * time.Second

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns tasks from the current user's projects.
// Query parameters map onto the named task filters.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	input, err := parseListTasksQuery(c)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	input.UserID = userID

	params := utils.GetPaginationParams(c)
	input.Page = params.Page
	input.PageSize = params.Limit

	tasks, total, err := h.taskService.ListTasks(input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, params, total, h.taskService.Now()))
}

// GetTask returns the task loaded by RequireTaskAccess with its relations
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	detail, err := h.taskService.GetTaskDetail(task.ID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDetailDTO(*detail, h.taskService.Now()))
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Name      string          `json:"name"`
		Priority  models.Priority `json:"priority"`
		DueOn     *time.Time      `json:"due_on"`
		DueString *string         `json:"due_string"`
		ProjectID uint64          `json:"project_id" binding:"required"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Name:      req.Name,
		Priority:  req.Priority,
		DueOn:     req.DueOn,
		DueString: req.DueString,
		ProjectID: req.ProjectID,
		CreatorID: userID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task, h.taskService.Now()))
}

// UpdateTask applies a partial update to a task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	type UpdateTaskRequest struct {
		Name      *string          `json:"name"`
		Priority  *models.Priority `json:"priority"`
		DueOn     *time.Time       `json:"due_on"`
		DueString *string          `json:"due_string"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.taskService.UpdateTask(task.ID, services.UpdateTaskInput{
		Name:      req.Name,
		Priority:  req.Priority,
		DueOn:     req.DueOn,
		DueString: req.DueString,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*updated, h.taskService.Now()))
}

// CompleteTask marks a task completed by the current user
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	completed, err := h.taskService.CompleteTask(task.ID, userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*completed, h.taskService.Now()))
}

// ReopenTask marks a completed task incomplete
func (h *TaskHandler) ReopenTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	reopened, err := h.taskService.ReopenTask(task.ID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*reopened, h.taskService.Now()))
}

// DeleteTask deletes a task
// Only the creator or the project manager can delete
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	if err := h.taskService.DeleteTask(task.ID, userID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// SuggestTasks drafts tasks from free text without saving them
func (h *TaskHandler) SuggestTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SuggestTasksRequest struct {
		ProjectID uint64 `json:"project_id" binding:"required"`
		Text      string `json:"text" binding:"required"`
	}

	var req SuggestTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), suggestTimeout)
	defer cancel()

	drafts, err := h.taskService.SuggestTasks(ctx, services.SuggestTasksInput{
		ProjectID: req.ProjectID,
		ActorID:   userID,
		Text:      req.Text,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	items := make([]dto.TaskDraftDTO, len(drafts))
	for i, draft := range drafts {
		items[i] = dto.ToTaskDraftDTO(draft)
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": items,
		"count": len(items),
	})
}

// ListPriorities returns the priority options in display order
func (h *TaskHandler) ListPriorities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"priorities": models.Priorities(),
	})
}

func parseListTasksQuery(c *gin.Context) (services.ListTasksInput, error) {
	var input services.ListTasksInput
	var err error

	if input.ProjectID, err = optionalID(c, "project_id"); err != nil {
		return input, err
	}
	if input.CreatorID, err = optionalID(c, "creator_id"); err != nil {
		return input, err
	}
	if input.CompleterID, err = optionalID(c, "completer_id"); err != nil {
		return input, err
	}

	switch state := repository.TaskState(c.Query("status")); state {
	case repository.StateAny, repository.StateIncomplete, repository.StateCompleted,
		repository.StateOverdue, repository.StateUpcoming:
		input.State = state
	default:
		return input, fmt.Errorf("invalid status %q", state)
	}

	switch c.Query("priority") {
	case "":
	case "high":
		p := models.PriorityHigh
		input.Priority = &p
	case "med":
		p := models.PriorityMed
		input.Priority = &p
	default:
		return input, fmt.Errorf("invalid priority %q", c.Query("priority"))
	}

	switch sort := repository.TaskSort(c.Query("sort")); sort {
	case repository.SortDefault, repository.SortChronological, repository.SortByCompletionDate,
		repository.SortByPriority, repository.SortByName:
		input.Sort = sort
	default:
		return input, fmt.Errorf("invalid sort %q", sort)
	}

	if raw := c.Query("due_within"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			return input, fmt.Errorf("due_within must be a non-negative integer")
		}
		input.DueWithin = &days
	}

	if raw := c.Query("last"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return input, fmt.Errorf("last must be a positive integer")
		}
		input.Last = n
	}

	return input, nil
}

func optionalID(c *gin.Context, name string) (*uint64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &id, nil
}

func respondTaskError(c *gin.Context, err error) {
	if verr, ok := validation.AsValidationError(err); ok {
		apierrors.ValidationFailed(c, verr)
		return
	}

	switch {
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotProjectMember),
		errors.Is(err, services.ErrTaskPermissionDenied):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTaskAlreadyCompleted),
		errors.Is(err, services.ErrTaskNotCompleted):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrAIServiceNotConfigured):
		apierrors.ServiceUnavailable(c, err.Error())
	case errors.Is(err, services.ErrAINoTasksGenerated),
		errors.Is(err, services.ErrAINoValidTasks),
		errors.Is(err, services.ErrAITooManyTasks):
		apierrors.BadGateway(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
