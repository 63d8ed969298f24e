package http

import (
	"net/http"

	"employee_task_api/internal/config"
	"employee_task_api/internal/http/handlers"
	"employee_task_api/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Task Management API",
			"version": version,
			"endpoints": gin.H{
				"employees": "/api/employees",
				"tasks":     "/api/tasks",
				"auth":      "/api/auth",
				"health":    "/health",
				"metrics":   "/metrics",
			},
		})
	})

	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))

	api.POST("/auth/login",
		middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow), h.Login)

	// Reads are always public
	api.GET("/employees", h.ListEmployees)
	api.GET("/employees/:id", h.GetEmployee)
	api.GET("/tasks", h.ListTasks)
	api.GET("/tasks/:id", h.GetTask)

	// Mutations optionally sit behind the bearer-token guard
	mutate := api.Group("")
	if cfg.AuthProtectWrites {
		mutate.Use(middleware.Auth())
	}
	{
		mutate.POST("/employees", h.CreateEmployee)
		mutate.PUT("/employees/:id", h.UpdateEmployee)
		mutate.DELETE("/employees/:id", h.DeleteEmployee)

		mutate.POST("/tasks", h.CreateTask)
		mutate.PUT("/tasks/:id", h.UpdateTask)
		mutate.DELETE("/tasks/:id", h.DeleteTask)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Endpoint not found",
		})
	})
}
