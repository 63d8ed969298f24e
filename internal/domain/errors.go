package domain

import "errors"

var (
	ErrEmployeeNotFound = errors.New("Employee not found")
	ErrTaskNotFound     = errors.New("Task not found")
	ErrEmailTaken       = errors.New("Employee with this email already exists")
)
