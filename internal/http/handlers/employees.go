package handlers

import (
	"net/http"
	"strings"

	"employee_task_api/internal/domain"
	"employee_task_api/internal/service"

	"github.com/gin-gonic/gin"
)

type createEmployeeRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Role  string `json:"role" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
}

func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.Employees.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if employees == nil {
		employees = []domain.EmployeeWithTasks{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    employees,
		"count":   len(employees),
	})
}

func (h *Handler) GetEmployee(c *gin.Context) {
	id, ok := parseID(c, "Employee")
	if !ok {
		return
	}

	employee, err := h.Employees.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": employee})
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	employee, err := h.Employees.Create(c.Request.Context(),
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Role),
		normalizeEmail(req.Email),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Employee created successfully",
		"data":    employee,
	})
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c, "Employee")
	if !ok {
		return
	}

	var patch service.EmployeePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		bindError(c, err)
		return
	}
	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		patch.Email = &email
	}

	employee, err := h.Employees.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee updated successfully",
		"data":    employee,
	})
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c, "Employee")
	if !ok {
		return
	}

	if err := h.Employees.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee deleted successfully",
	})
}

// Emails are compared for uniqueness, so they are stored normalized.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
