package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-task-api/internal/dto"
	apierrors "github.com/yukikurage/project-task-api/internal/errors"
	"github.com/yukikurage/project-task-api/internal/middleware"
	"github.com/yukikurage/project-task-api/internal/models"
	"github.com/yukikurage/project-task-api/internal/services"
)

// ProjectHandler serves project and assignment endpoints.
type ProjectHandler struct {
	projectService *services.ProjectService
	taskService    *services.TaskService
	upcomingDays   int
}

// NewProjectHandler creates a new ProjectHandler. upcomingDays is the
// default window of the project summary.
func NewProjectHandler(projectService *services.ProjectService, taskService *services.TaskService, upcomingDays int) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		taskService:    taskService,
		upcomingDays:   upcomingDays,
	}
}

// CreateProject creates a project managed by the current user.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateProjectRequest struct {
		Name        string     `json:"name" binding:"required,max=255"`
		Description string     `json:"description"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ManagerID:   userID,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// ListProjects returns the projects the current user is assigned to.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projects, err := h.projectService.ListProjectsForUser(userID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": dto.ToProjectDTOs(projects),
	})
}

// GetProject returns a project with its manager and assignments.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, ok := middleware.GetProjectID(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	project, err := h.projectService.GetProject(projectID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDetailDTO(*project))
}

// AssignUser places a user on the project.
func (h *ProjectHandler) AssignUser(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	projectID, ok := middleware.GetProjectID(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	type AssignUserRequest struct {
		UserID uint64                `json:"user_id" binding:"required"`
		Role   models.AssignmentRole `json:"role"`
	}

	var req AssignUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	assignment, err := h.projectService.AssignUser(services.AssignUserInput{
		ProjectID: projectID,
		ActorID:   userID,
		UserID:    req.UserID,
		Role:      req.Role,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"project_id":  assignment.ProjectID,
		"user_id":     assignment.UserID,
		"role":        assignment.Role,
		"assigned_at": assignment.AssignedAt,
	})
}

// UnassignUser removes a user from the project.
func (h *ProjectHandler) UnassignUser(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	projectID, ok := middleware.GetProjectID(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.projectService.UnassignUser(projectID, userID, targetID); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User removed from project",
	})
}

// GetSummary returns task counts for the project.
func (h *ProjectHandler) GetSummary(c *gin.Context) {
	projectID, ok := middleware.GetProjectID(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	days := h.upcomingDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			apierrors.BadRequest(c, "days must be a positive integer")
			return
		}
		days = parsed
	}

	summary, err := h.taskService.ProjectSummary(projectID, days)
	if err != nil {
		apierrors.InternalError(c, "Failed to summarize project")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectSummaryDTO(*summary, h.taskService.Now()))
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNameRequired),
		errors.Is(err, services.ErrInvalidProjectDates),
		errors.Is(err, services.ErrInvalidAssignmentRole),
		errors.Is(err, services.ErrCannotRemoveManager):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotProjectManager):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrAssignmentNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyAssigned):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
