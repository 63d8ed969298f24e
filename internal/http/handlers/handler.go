package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"employee_task_api/internal/domain"
	"employee_task_api/internal/logger"
	"employee_task_api/internal/repository"
	"employee_task_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	Employees *service.EmployeeService
	Tasks     *service.TaskService
}

func NewHandler(db *pgxpool.Pool) *Handler {
	employeeRepo := repository.NewEmployeeRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	return &Handler{
		Employees: service.NewEmployeeService(employeeRepo),
		Tasks:     service.NewTaskService(taskRepo, employeeRepo),
	}
}

// respondError maps the domain error taxonomy onto the fixed HTTP contract:
// not-found kinds to 404, the email conflict to 400, everything else to a
// generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound), errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	default:
		logger.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}

func respondValidation(c *gin.Context, details ...string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  details,
	})
}

func bindError(c *gin.Context, err error) {
	respondValidation(c, err.Error())
}

// parseID reads the :id route param, rejecting anything that is not a
// positive integer.
func parseID(c *gin.Context, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondValidation(c, label+" ID must be a positive integer")
		return 0, false
	}
	return id, true
}
