package handlers

import (
	"net/http"
	"strconv"

	"employee_task_api/internal/domain"
	"employee_task_api/internal/service"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Title       string            `json:"title" binding:"required,min=1,max=200"`
	Description *string           `json:"description" binding:"omitempty,max=1000"`
	Status      domain.TaskStatus `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	EmployeeID  *int64            `json:"employeeId" binding:"omitempty,gt=0"`
}

func (h *Handler) ListTasks(c *gin.Context) {
	var f domain.TaskFilter
	applied := gin.H{}

	if v := c.Query("status"); v != "" {
		status := domain.TaskStatus(v)
		if !status.Valid() {
			respondValidation(c, "Status must be one of: PENDING, IN_PROGRESS, COMPLETED")
			return
		}
		f.Status = &status
		applied["status"] = status
	}
	if v := c.Query("employeeId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			respondValidation(c, "Employee ID must be a positive integer")
			return
		}
		f.EmployeeID = &id
		applied["employeeId"] = id
	}

	tasks, err := h.Tasks.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	if tasks == nil {
		tasks = []domain.TaskWithEmployee{}
	}

	// filters echoes what was applied, null when the listing was unfiltered
	var filters any
	if len(applied) > 0 {
		filters = applied
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tasks,
		"count":   len(tasks),
		"filters": filters,
	})
}

func (h *Handler) GetTask(c *gin.Context) {
	id, ok := parseID(c, "Task")
	if !ok {
		return
	}

	task, err := h.Tasks.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": task})
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), req.Title, req.Description, req.Status, req.EmployeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Task created successfully",
		"data":    task,
	})
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c, "Task")
	if !ok {
		return
	}

	var patch service.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		bindError(c, err)
		return
	}
	// presence-marked fields sit outside binding tags, validate by hand
	if patch.EmployeeID.Set && patch.EmployeeID.Valid && patch.EmployeeID.Int64 <= 0 {
		respondValidation(c, "Employee ID must be a positive integer")
		return
	}
	if patch.Description.Set && patch.Description.Valid && len(patch.Description.String) > 1000 {
		respondValidation(c, "Description must not exceed 1000 characters")
		return
	}

	task, err := h.Tasks.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task updated successfully",
		"data":    task,
	})
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c, "Task")
	if !ok {
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task deleted successfully",
	})
}
