package service

import (
	"context"

	"employee_task_api/internal/domain"
)

// EmployeeStore is the persistence port for employees. Implementations
// report missing rows as domain.ErrEmployeeNotFound and unique-email
// violations as domain.ErrEmailTaken.
type EmployeeStore interface {
	List(ctx context.Context) ([]domain.EmployeeWithTasks, error)
	Get(ctx context.Context, id int64) (*domain.EmployeeDetail, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) error
	Update(ctx context.Context, id int64, p EmployeePatch) (*domain.Employee, error)
	// Delete removes the employee and unassigns its tasks in one transaction.
	Delete(ctx context.Context, id int64) error
}

// TaskStore is the persistence port for tasks. Missing rows surface as
// domain.ErrTaskNotFound; a dangling employee reference rejected by the
// store surfaces as domain.ErrEmployeeNotFound.
type TaskStore interface {
	List(ctx context.Context, f domain.TaskFilter) ([]domain.TaskWithEmployee, error)
	Get(ctx context.Context, id int64) (*domain.TaskWithEmployee, error)
	Create(ctx context.Context, t *domain.Task) (*domain.TaskWithEmployee, error)
	Update(ctx context.Context, id int64, p TaskPatch) (*domain.TaskWithEmployee, error)
	Delete(ctx context.Context, id int64) error
}

// EmployeePatch carries the fields of a partial employee update.
// Nil means the field was omitted and keeps its current value.
type EmployeePatch struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=100"`
	Role  *string `json:"role" binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// TaskPatch carries the fields of a partial task update. Description and
// EmployeeID distinguish an omitted field from an explicit null: omitted
// keeps the current value, explicit null clears it.
type TaskPatch struct {
	Title       *string            `json:"title" binding:"omitempty,min=1,max=200"`
	Description domain.NullString  `json:"description"`
	Status      *domain.TaskStatus `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	EmployeeID  domain.NullInt64   `json:"employeeId"`
}
