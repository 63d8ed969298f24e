package service

import (
	"context"
	"errors"

	"employee_task_api/internal/domain"
)

// EmployeeService enforces the business rules the schema does not express
// on its own: duplicate-email rejection with a typed error, and the
// not-found/conflict precedence the HTTP contract expects.
type EmployeeService struct {
	employees EmployeeStore
}

func NewEmployeeService(employees EmployeeStore) *EmployeeService {
	return &EmployeeService{employees: employees}
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.EmployeeWithTasks, error) {
	return s.employees.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.EmployeeDetail, error) {
	return s.employees.Get(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, name, role, email string) (*domain.Employee, error) {
	_, err := s.employees.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}

	e := &domain.Employee{Name: name, Role: role, Email: email}
	if err := s.employees.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int64, p EmployeePatch) (*domain.Employee, error) {
	if _, err := s.employees.Get(ctx, id); err != nil {
		return nil, err
	}

	// Updating to one's own current email is not a conflict.
	if p.Email != nil {
		existing, err := s.employees.GetByEmail(ctx, *p.Email)
		switch {
		case err == nil && existing.ID != id:
			return nil, domain.ErrEmailTaken
		case err != nil && !errors.Is(err, domain.ErrEmployeeNotFound):
			return nil, err
		}
	}

	return s.employees.Update(ctx, id, p)
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	return s.employees.Delete(ctx, id)
}
