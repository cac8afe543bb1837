package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-task-api/internal/middleware"
	"github.com/yukikurage/project-task-api/internal/services"
)

// Services bundles what the HTTP layer needs.
type Services struct {
	Auth         *services.AuthService
	Projects     *services.ProjectService
	Tasks        *services.TaskService
	UpcomingDays int
}

// RegisterRoutes mounts the health check and the /api routes. Session
// middleware must already be installed on r.
func RegisterRoutes(r *gin.Engine, svc Services) {
	authHandler := NewAuthHandler(svc.Auth)
	projectHandler := NewProjectHandler(svc.Projects, svc.Tasks, svc.UpcomingDays)
	taskHandler := NewTaskHandler(svc.Tasks)

	requireProject := middleware.RequireProjectAccess(svc.Projects)
	requireTask := middleware.RequireTaskAccess(svc.Tasks, svc.Projects)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Project Task API is running",
		})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		api.GET("/priorities", taskHandler.ListPriorities)

		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", requireProject, projectHandler.GetProject)
			projects.GET("/:id/summary", requireProject, projectHandler.GetSummary)
			projects.POST("/:id/assignments", requireProject, projectHandler.AssignUser)
			projects.DELETE("/:id/assignments/:user_id", requireProject, projectHandler.UnassignUser)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.POST("/suggest", taskHandler.SuggestTasks)
			tasks.GET("/:id", requireTask, taskHandler.GetTask)
			tasks.PATCH("/:id", requireTask, taskHandler.UpdateTask)
			tasks.DELETE("/:id", requireTask, taskHandler.DeleteTask)
			tasks.POST("/:id/complete", requireTask, taskHandler.CompleteTask)
			tasks.POST("/:id/reopen", requireTask, taskHandler.ReopenTask)
		}
	}
}
