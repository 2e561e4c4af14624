// Package store holds the authoritative in-memory task and user state.
// All state lives in process memory and is lost on restart.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/jumpman-cmd/ToDoTaskMaster/internal/core/domain"
	"github.com/jumpman-cmd/ToDoTaskMaster/internal/core/ports"
)

// Memory is a map-backed repository for tasks and users. Ids come from
// monotonic counters and are never reused within a process run, even after
// deletes. One mutex serializes mutations so the counter and uniqueness
// invariants hold under concurrent requests.
type Memory struct {
	mu         sync.RWMutex
	tasks      map[int64]domain.Task
	taskOrder  []int64
	users      map[int64]domain.User
	userOrder  []int64
	nextTaskID int64
	nextUserID int64
	now        func() time.Time
}

var (
	_ ports.TaskRepository = (*Memory)(nil)
	_ ports.UserRepository = (*Memory)(nil)
)

func New() *Memory {
	return &Memory{
		tasks:      make(map[int64]domain.Task),
		users:      make(map[int64]domain.User),
		nextTaskID: 1,
		nextUserID: 1,
		now:        time.Now,
	}
}

func (m *Memory) CreateTask(_ context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task := domain.Task{
		ID:          m.nextTaskID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Completed:   input.Completed,
		CreatedAt:   m.now(),
		UserID:      input.UserID,
	}
	m.nextTaskID++

	m.tasks[task.ID] = task
	m.taskOrder = append(m.taskOrder, task.ID)
	return task, nil
}

func (m *Memory) GetTask(_ context.Context, id int64) (domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	task, ok := m.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (m *Memory) ListTasks(_ context.Context, userID *int64) ([]domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(m.taskOrder))
	for _, id := range m.taskOrder {
		task := m.tasks[id]
		if userID != nil && (task.UserID == nil || *task.UserID != *userID) {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (m *Memory) UpdateTask(_ context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.DescriptionSet {
		task.Description = input.Description
	}
	if input.DueDateSet {
		task.DueDate = input.DueDate
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	m.tasks[id] = task
	return task, nil
}

func (m *Memory) DeleteTask(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(m.tasks, id)
	for i, orderedID := range m.taskOrder {
		if orderedID == id {
			m.taskOrder = append(m.taskOrder[:i], m.taskOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) CreateUser(_ context.Context, input domain.CreateUserInput) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user := domain.User{
		ID:       m.nextUserID,
		Username: input.Username,
		Password: input.Password,
	}
	m.nextUserID++

	m.users[user.ID] = user
	m.userOrder = append(m.userOrder, user.ID)
	return user, nil
}

func (m *Memory) GetUser(_ context.Context, id int64) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.userOrder {
		if m.users[id].Username == username {
			return m.users[id], nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

// Counts reports how many tasks and users are held, for health reporting.
func (m *Memory) Counts() (tasks, users int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tasks), len(m.users)
}
