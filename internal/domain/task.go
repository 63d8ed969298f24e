package domain

import "time"

type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Status      TaskStatus `json:"status" db:"status"`
	EmployeeID  *int64     `json:"employeeId" db:"employee_id"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// EmployeeBrief is the employee projection attached to tasks in responses.
type EmployeeBrief struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// TaskWithEmployee carries the assigned employee, nil when unassigned.
type TaskWithEmployee struct {
	Task
	Employee *EmployeeBrief `json:"employee"`
}

// TaskFilter narrows task listings. Nil fields match everything.
type TaskFilter struct {
	Status     *TaskStatus
	EmployeeID *int64
}
