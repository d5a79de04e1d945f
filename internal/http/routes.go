package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-manager-api.com/task-manager-api/internal/http/middlewares"
)

func Register(
	e *echo.Echo,
	taskHandler *TaskHandler,
	projectHandler *ProjectHandler,
	userHandler *UserHandler,
	tagHandler *TagHandler,
	commentHandler *CommentHandler,
	rateLimitPerMinute int,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/", serviceInfo)

	tasks := e.Group("/tasks")
	tasks.GET("", taskHandler.ListTasks)
	tasks.POST("", taskHandler.CreateTask)
	tasks.GET("/stats/summary", taskHandler.Stats)
	tasks.GET("/:id", taskHandler.GetTask)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)
	tasks.GET("/:id/subtasks", taskHandler.ListSubtasks)
	tasks.GET("/:id/comments", taskHandler.ListComments)

	projects := e.Group("/projects")
	projects.GET("", projectHandler.ListProjects)
	projects.POST("", projectHandler.CreateProject)
	projects.GET("/:id", projectHandler.GetProject)
	projects.PUT("/:id", projectHandler.UpdateProject)
	projects.DELETE("/:id", projectHandler.DeleteProject)

	users := e.Group("/users")
	users.GET("", userHandler.ListUsers)
	users.POST("", userHandler.CreateUser)
	users.GET("/:id", userHandler.GetUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	tags := e.Group("/tags")
	tags.GET("", tagHandler.ListTags)
	tags.POST("", tagHandler.CreateTag)
	tags.GET("/:id", tagHandler.GetTag)
	tags.PUT("/:id", tagHandler.UpdateTag)
	tags.DELETE("/:id", tagHandler.DeleteTag)

	comments := e.Group("/comments")
	comments.GET("", commentHandler.ListComments)
	comments.POST("", commentHandler.CreateComment)
	comments.GET("/:id", commentHandler.GetComment)
	comments.PUT("/:id", commentHandler.UpdateComment)
	comments.DELETE("/:id", commentHandler.DeleteComment)
}

func serviceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Welcome to Task Management API!",
		"features": []string{
			"User management",
			"Project management",
			"Task management with relationships",
			"Tags and comments",
			"Full CRUD operations",
		},
	})
}
