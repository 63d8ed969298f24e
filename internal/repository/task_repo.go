package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"employee_task_api/internal/domain"
	"employee_task_api/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskSelect = `
	SELECT t.id, t.title, t.description, t.status, t.employee_id, t.created_at,
	       e.id, e.name, e.role, e.email
	FROM tasks t
	LEFT JOIN employees e ON e.id = t.employee_id`

func scanTask(row pgx.Row) (*domain.TaskWithEmployee, error) {
	var (
		t     domain.TaskWithEmployee
		eid   *int64
		name  *string
		role  *string
		email *string
	)
	if err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.EmployeeID, &t.CreatedAt,
		&eid, &name, &role, &email,
	); err != nil {
		return nil, err
	}
	if eid != nil {
		t.Employee = &domain.EmployeeBrief{ID: *eid, Name: *name, Role: *role, Email: *email}
	}
	return &t, nil
}

func (r *TaskRepository) List(ctx context.Context, f domain.TaskFilter) ([]domain.TaskWithEmployee, error) {
	rows, err := r.db.Query(ctx, taskSelect+`
		WHERE ($1::text IS NULL OR t.status = $1)
		  AND ($2::bigint IS NULL OR t.employee_id = $2)
		ORDER BY t.created_at DESC`,
		f.Status, f.EmployeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.TaskWithEmployee
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) Get(ctx context.Context, id int64) (*domain.TaskWithEmployee, error) {
	t, err := scanTask(r.db.QueryRow(ctx, taskSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) (*domain.TaskWithEmployee, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks (title, description, status, employee_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		t.Title, t.Description, t.Status, t.EmployeeID,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		if pgErrCode(err, codeFKViolation) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return r.Get(ctx, t.ID)
}

func (r *TaskRepository) Update(ctx context.Context, id int64, p service.TaskPatch) (*domain.TaskWithEmployee, error) {
	set := make([]string, 0, 4)
	args := []any{id}
	add := func(column string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Description.Set {
		add("description", p.Description.Ptr())
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.EmployeeID.Set {
		add("employee_id", p.EmployeeID.Ptr())
	}

	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	ct, err := r.db.Exec(ctx,
		`UPDATE tasks SET `+strings.Join(set, ", ")+` WHERE id = $1`, args...)
	if err != nil {
		if pgErrCode(err, codeFKViolation) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	if ct.RowsAffected() == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return r.Get(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
