package mapper

import (
	"time"

	"github.com/jumpman-cmd/ToDoTaskMaster/internal/adapter/http/dto"
	"github.com/jumpman-cmd/ToDoTaskMaster/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(domain.DueDateLayout)
		item.DueDate = &value
	}

	if task.UserID != nil {
		value := *task.UserID
		item.UserID = &value
	}

	return item
}
