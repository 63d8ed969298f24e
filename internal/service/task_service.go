package service

import (
	"context"

	"employee_task_api/internal/domain"
)

// TaskService guards task writes against dangling employee references.
// The check-then-write pair here is advisory; the FK constraint in the
// store closes the race for good (violations map to the same error).
type TaskService struct {
	tasks     TaskStore
	employees EmployeeStore
}

func NewTaskService(tasks TaskStore, employees EmployeeStore) *TaskService {
	return &TaskService{tasks: tasks, employees: employees}
}

func (s *TaskService) List(ctx context.Context, f domain.TaskFilter) ([]domain.TaskWithEmployee, error) {
	return s.tasks.List(ctx, f)
}

func (s *TaskService) Get(ctx context.Context, id int64) (*domain.TaskWithEmployee, error) {
	return s.tasks.Get(ctx, id)
}

func (s *TaskService) Create(ctx context.Context, title string, description *string, status domain.TaskStatus, employeeID *int64) (*domain.TaskWithEmployee, error) {
	if employeeID != nil {
		if _, err := s.employees.Get(ctx, *employeeID); err != nil {
			return nil, err
		}
	}

	if status == "" {
		status = domain.StatusPending
	}

	t := &domain.Task{
		Title:       title,
		Description: description,
		Status:      status,
		EmployeeID:  employeeID,
	}
	return s.tasks.Create(ctx, t)
}

func (s *TaskService) Update(ctx context.Context, id int64, p TaskPatch) (*domain.TaskWithEmployee, error) {
	if _, err := s.tasks.Get(ctx, id); err != nil {
		return nil, err
	}

	// Explicit null unassigns the task, so only a concrete id needs to exist.
	if p.EmployeeID.Set && p.EmployeeID.Valid {
		if _, err := s.employees.Get(ctx, p.EmployeeID.Int64); err != nil {
			return nil, err
		}
	}

	return s.tasks.Update(ctx, id, p)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.tasks.Delete(ctx, id)
}
