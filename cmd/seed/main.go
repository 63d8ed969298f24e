package main

import (
	"context"
	"errors"
	"log"
	"os"

	"employee_task_api/internal/db"
	"employee_task_api/internal/domain"
	"employee_task_api/internal/repository"
)

func strPtr(s string) *string { return &s }

func main() {
	// expects DATABASE_URL env var
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	employees := repository.NewEmployeeRepository(pool)
	tasks := repository.NewTaskRepository(pool)
	ctx := context.Background()

	seedEmployees := []domain.Employee{
		{Name: "John Doe", Role: "Software Developer", Email: "john.doe@example.com"},
		{Name: "Jane Smith", Role: "Project Manager", Email: "jane.smith@example.com"},
		{Name: "Bob Johnson", Role: "QA Engineer", Email: "bob.johnson@example.com"},
	}

	ids := make(map[string]int64)
	for i := range seedEmployees {
		e := &seedEmployees[i]
		existing, err := employees.GetByEmail(ctx, e.Email)
		switch {
		case err == nil:
			ids[e.Email] = existing.ID
			log.Printf("employee already exists id=%d email=%s", existing.ID, e.Email)
		case errors.Is(err, domain.ErrEmployeeNotFound):
			if err := employees.Create(ctx, e); err != nil {
				log.Fatalf("create employee %s: %v", e.Email, err)
			}
			ids[e.Email] = e.ID
			log.Printf("employee created id=%d email=%s", e.ID, e.Email)
		default:
			log.Fatalf("lookup employee %s: %v", e.Email, err)
		}
	}

	existing, err := tasks.List(ctx, domain.TaskFilter{})
	if err != nil {
		log.Fatalf("list tasks: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("tasks already present (%d), skipping task seed", len(existing))
		return
	}

	john := ids["john.doe@example.com"]
	jane := ids["jane.smith@example.com"]
	bob := ids["bob.johnson@example.com"]

	seedTasks := []domain.Task{
		{
			Title:       "Implement user authentication",
			Description: strPtr("Add JWT-based authentication to the API"),
			Status:      domain.StatusInProgress,
			EmployeeID:  &john,
		},
		{
			Title:       "Design database schema",
			Description: strPtr("Create ERD and implement database migrations"),
			Status:      domain.StatusCompleted,
			EmployeeID:  &jane,
		},
		{
			Title:       "Write API documentation",
			Description: strPtr("Document all endpoints with examples"),
			Status:      domain.StatusPending,
			EmployeeID:  &john,
		},
		{
			Title:       "Setup CI/CD pipeline",
			Description: strPtr("Configure automated testing and deployment"),
			Status:      domain.StatusPending,
			EmployeeID:  nil, // unassigned
		},
		{
			Title:       "Perform security audit",
			Description: strPtr("Review code for security vulnerabilities"),
			Status:      domain.StatusInProgress,
			EmployeeID:  &bob,
		},
	}

	for i := range seedTasks {
		t := &seedTasks[i]
		if _, err := tasks.Create(ctx, t); err != nil {
			log.Fatalf("create task %q: %v", t.Title, err)
		}
		log.Printf("task created id=%d title=%q", t.ID, t.Title)
	}

	log.Println("database seeded successfully")
}
