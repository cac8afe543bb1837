package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-task-api/internal/constants"
	apierrors "github.com/yukikurage/project-task-api/internal/errors"
	"github.com/yukikurage/project-task-api/internal/services"
)

// RequireProjectAccess checks that the user is assigned to the project named
// by the :id parameter
func RequireProjectAccess(projectService *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, ok := ParseIDParam(c, "id")
		if !ok {
			apierrors.BadRequest(c, "Invalid project ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if err := projectService.EnsureMember(projectID, userID); err != nil {
			if errors.Is(err, services.ErrNotProjectMember) {
				apierrors.NotFound(c, "Project not found")
			} else {
				apierrors.InternalError(c, "Failed to verify project assignment")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyProject, projectID)
		c.Next()
	}
}

// GetProjectID returns the project ID checked by RequireProjectAccess
func GetProjectID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(constants.ContextKeyProject)
	if !exists {
		return 0, false
	}
	projectID, ok := value.(uint64)
	return projectID, ok
}
