package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"employee_task_api/internal/domain"
	"employee_task_api/internal/service"
)

// fakeStore is an in-memory stand-in for the Postgres repositories. It
// mirrors the store-level contract, including the constraints the schema
// enforces: unique emails, FK checks on employee_id, and the null-out of
// task assignments when an employee is deleted.
type fakeStore struct {
	mu sync.RWMutex

	nextEmployeeID int64
	nextTaskID     int64

	employees map[int64]domain.Employee
	tasks     map[int64]domain.Task
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextEmployeeID: 1,
		nextTaskID:     1,
		employees:      make(map[int64]domain.Employee),
		tasks:          make(map[int64]domain.Task),
	}
}

// fakeTasks adapts fakeStore to the task port; the employee and task ports
// share method names, so one type cannot implement both.
type fakeTasks struct{ *fakeStore }

func (f fakeTasks) List(ctx context.Context, filter domain.TaskFilter) ([]domain.TaskWithEmployee, error) {
	return f.fakeStore.ListTasks(ctx, filter)
}

func (f fakeTasks) Get(ctx context.Context, id int64) (*domain.TaskWithEmployee, error) {
	return f.fakeStore.GetTask(ctx, id)
}

func (f fakeTasks) Create(ctx context.Context, t *domain.Task) (*domain.TaskWithEmployee, error) {
	return f.fakeStore.CreateTask(ctx, t)
}

func (f fakeTasks) Update(ctx context.Context, id int64, p service.TaskPatch) (*domain.TaskWithEmployee, error) {
	return f.fakeStore.UpdateTask(ctx, id, p)
}

func (f fakeTasks) Delete(ctx context.Context, id int64) error {
	return f.fakeStore.DeleteTask(ctx, id)
}

var (
	_ service.EmployeeStore = (*fakeStore)(nil)
	_ service.TaskStore     = fakeTasks{}
)

// newServices wires both services over one shared fake store.
func newServices() (*fakeStore, *service.EmployeeService, *service.TaskService) {
	db := newFakeStore()
	return db, service.NewEmployeeService(db), service.NewTaskService(fakeTasks{db}, db)
}

// sortedEmployeeIDs returns ids newest-first; ids grow monotonically so
// this matches the created_at DESC ordering of the real store.
func (f *fakeStore) sortedEmployeeIDs() []int64 {
	ids := make([]int64, 0, len(f.employees))
	for id := range f.employees {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	return ids
}

func (f *fakeStore) sortedTaskIDs() []int64 {
	ids := make([]int64, 0, len(f.tasks))
	for id := range f.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	return ids
}

func (f *fakeStore) List(_ context.Context) ([]domain.EmployeeWithTasks, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var res []domain.EmployeeWithTasks
	for _, id := range f.sortedEmployeeIDs() {
		e := domain.EmployeeWithTasks{Employee: f.employees[id], Tasks: []domain.TaskBrief{}}
		for _, tid := range f.sortedTaskIDs() {
			t := f.tasks[tid]
			if t.EmployeeID != nil && *t.EmployeeID == id {
				e.Tasks = append(e.Tasks, domain.TaskBrief{ID: t.ID, Title: t.Title, Status: t.Status})
			}
		}
		res = append(res, e)
	}
	return res, nil
}

func (f *fakeStore) Get(_ context.Context, id int64) (*domain.EmployeeDetail, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	e, ok := f.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	detail := domain.EmployeeDetail{Employee: e, Tasks: []domain.TaskEntry{}}
	for _, tid := range f.sortedTaskIDs() {
		t := f.tasks[tid]
		if t.EmployeeID != nil && *t.EmployeeID == id {
			detail.Tasks = append(detail.Tasks, domain.TaskEntry{
				ID: t.ID, Title: t.Title, Description: t.Description,
				Status: t.Status, CreatedAt: t.CreatedAt,
			})
		}
	}
	return &detail, nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, e := range f.employees {
		if e.Email == email {
			out := e
			return &out, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (f *fakeStore) Create(_ context.Context, e *domain.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.employees {
		if existing.Email == e.Email {
			return domain.ErrEmailTaken
		}
	}

	e.ID = f.nextEmployeeID
	f.nextEmployeeID++
	e.CreatedAt = time.Now()
	f.employees[e.ID] = *e
	return nil
}

func (f *fakeStore) Update(_ context.Context, id int64, p service.EmployeePatch) (*domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	e, ok := f.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	if p.Email != nil {
		for oid, other := range f.employees {
			if oid != id && other.Email == *p.Email {
				return nil, domain.ErrEmailTaken
			}
		}
		e.Email = *p.Email
	}
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
	f.employees[id] = e
	return &e, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	for tid, t := range f.tasks {
		if t.EmployeeID != nil && *t.EmployeeID == id {
			t.EmployeeID = nil
			f.tasks[tid] = t
		}
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeStore) withEmployee(t domain.Task) domain.TaskWithEmployee {
	out := domain.TaskWithEmployee{Task: t}
	if t.EmployeeID != nil {
		if e, ok := f.employees[*t.EmployeeID]; ok {
			out.Employee = &domain.EmployeeBrief{ID: e.ID, Name: e.Name, Role: e.Role, Email: e.Email}
		}
	}
	return out
}

func (f *fakeStore) ListTasks(_ context.Context, filter domain.TaskFilter) ([]domain.TaskWithEmployee, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var res []domain.TaskWithEmployee
	for _, id := range f.sortedTaskIDs() {
		t := f.tasks[id]
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.EmployeeID != nil && (t.EmployeeID == nil || *t.EmployeeID != *filter.EmployeeID) {
			continue
		}
		res = append(res, f.withEmployee(t))
	}
	return res, nil
}

func (f *fakeStore) GetTask(_ context.Context, id int64) (*domain.TaskWithEmployee, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	t, ok := f.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	out := f.withEmployee(t)
	return &out, nil
}

func (f *fakeStore) CreateTask(_ context.Context, t *domain.Task) (*domain.TaskWithEmployee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t.EmployeeID != nil {
		if _, ok := f.employees[*t.EmployeeID]; !ok {
			return nil, domain.ErrEmployeeNotFound
		}
	}

	t.ID = f.nextTaskID
	f.nextTaskID++
	t.CreatedAt = time.Now()
	f.tasks[t.ID] = *t

	out := f.withEmployee(*t)
	return &out, nil
}

func (f *fakeStore) UpdateTask(_ context.Context, id int64, p service.TaskPatch) (*domain.TaskWithEmployee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, ok := f.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description.Set {
		t.Description = p.Description.Ptr()
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.EmployeeID.Set {
		if p.EmployeeID.Valid {
			if _, ok := f.employees[p.EmployeeID.Int64]; !ok {
				return nil, domain.ErrEmployeeNotFound
			}
		}
		t.EmployeeID = p.EmployeeID.Ptr()
	}
	f.tasks[id] = t

	out := f.withEmployee(t)
	return &out, nil
}

func (f *fakeStore) DeleteTask(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}
