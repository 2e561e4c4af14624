package ports

import (
	"context"

	"github.com/jumpman-cmd/ToDoTaskMaster/internal/core/domain"
)

type TaskRepository interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	// ListTasks returns tasks in insertion order, optionally scoped to a
	// user. Callers sort separately.
	ListTasks(ctx context.Context, userID *int64) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type TaskService interface {
	ListTasks(ctx context.Context, query domain.TaskListQuery) ([]domain.Task, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
