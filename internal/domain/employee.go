package domain

import "time"

type Employee struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Role      string    `json:"role" db:"role"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// TaskBrief is the task projection attached to employees in list responses.
type TaskBrief struct {
	ID     int64      `json:"id"`
	Title  string     `json:"title"`
	Status TaskStatus `json:"status"`
}

// TaskEntry is the fuller task projection attached to a single employee.
type TaskEntry struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type EmployeeWithTasks struct {
	Employee
	Tasks []TaskBrief `json:"tasks"`
}

type EmployeeDetail struct {
	Employee
	Tasks []TaskEntry `json:"tasks"`
}
