package service

import (
	"context"

	"github.com/jumpman-cmd/ToDoTaskMaster/internal/core/domain"
	"github.com/jumpman-cmd/ToDoTaskMaster/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

// ListTasks fetches tasks in insertion order, sorts when a sort option is
// present, then filters by completion status. Sort runs before filter so
// the retained subset keeps its sorted relative order.
func (s *TaskService) ListTasks(ctx context.Context, query domain.TaskListQuery) ([]domain.Task, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	if query.Sort != nil {
		tasks = domain.SortTasks(tasks, *query.Sort)
	}
	return domain.FilterTasks(tasks, query.Filter), nil
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	return s.taskRepository.GetTask(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	return s.taskRepository.CreateTask(ctx, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.UpdateTask(ctx, id, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	return s.taskRepository.DeleteTask(ctx, id)
}

var _ ports.TaskService = (*TaskService)(nil)
