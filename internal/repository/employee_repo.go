package repository

import (
	"context"
	"errors"

	"employee_task_api/internal/domain"
	"employee_task_api/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EmployeeRepository struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.EmployeeWithTasks, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, role, email, created_at FROM employees ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.EmployeeWithTasks
	for rows.Next() {
		var e domain.EmployeeWithTasks
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Email, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Tasks = []domain.TaskBrief{}
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	taskRows, err := r.db.Query(ctx,
		`SELECT id, employee_id, title, status
		 FROM tasks
		 WHERE employee_id IS NOT NULL
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer taskRows.Close()

	byEmployee := make(map[int64][]domain.TaskBrief)
	for taskRows.Next() {
		var (
			t   domain.TaskBrief
			eid int64
		)
		if err := taskRows.Scan(&t.ID, &eid, &t.Title, &t.Status); err != nil {
			return nil, err
		}
		byEmployee[eid] = append(byEmployee[eid], t)
	}
	if err := taskRows.Err(); err != nil {
		return nil, err
	}

	for i := range res {
		if tasks, ok := byEmployee[res[i].ID]; ok {
			res[i].Tasks = tasks
		}
	}
	return res, nil
}

func (r *EmployeeRepository) Get(ctx context.Context, id int64) (*domain.EmployeeDetail, error) {
	var e domain.EmployeeDetail
	err := r.db.QueryRow(ctx,
		`SELECT id, name, role, email, created_at FROM employees WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.Role, &e.Email, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, status, created_at
		 FROM tasks
		 WHERE employee_id = $1
		 ORDER BY created_at DESC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	e.Tasks = []domain.TaskEntry{}
	for rows.Next() {
		var t domain.TaskEntry
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		e.Tasks = append(e.Tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	var e domain.Employee
	err := r.db.QueryRow(ctx,
		`SELECT id, name, role, email, created_at FROM employees WHERE email = $1`, email,
	).Scan(&e.ID, &e.Name, &e.Role, &e.Email, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO employees (name, role, email) VALUES ($1, $2, $3) RETURNING id, created_at`,
		e.Name, e.Role, e.Email,
	).Scan(&e.ID, &e.CreatedAt)
	if pgErrCode(err, codeUniqueViolation) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *EmployeeRepository) Update(ctx context.Context, id int64, p service.EmployeePatch) (*domain.Employee, error) {
	var e domain.Employee
	err := r.db.QueryRow(ctx,
		`UPDATE employees
		 SET name  = COALESCE($2, name),
		     role  = COALESCE($3, role),
		     email = COALESCE($4, email)
		 WHERE id = $1
		 RETURNING id, name, role, email, created_at`,
		id, p.Name, p.Role, p.Email,
	).Scan(&e.ID, &e.Name, &e.Role, &e.Email, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		if pgErrCode(err, codeUniqueViolation) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return &e, nil
}

// Delete unassigns the employee's tasks and removes the row in one
// transaction, so no task is ever observed pointing at a deleted employee.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE tasks SET employee_id = NULL WHERE employee_id = $1`, id); err != nil {
		return err
	}

	ct, err := tx.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}

	return tx.Commit(ctx)
}
