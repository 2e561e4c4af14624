package store

import (
	"time"

	"github.com/jumpman-cmd/ToDoTaskMaster/internal/core/domain"
)

// SeedDemoTasks loads three demonstration tasks into an empty store. The
// task counter resumes above the seeded ids.
func (m *Memory) SeedDemoTasks() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	today := now.Truncate(24 * time.Hour)
	inTwoDays := today.AddDate(0, 0, 2)
	yesterday := today.AddDate(0, 0, -1)

	docsDescription := "Write up the final user guide and API documentation"
	meetingDescription := "Quarterly planning session with the development team"
	reviewDescription := ""

	seeds := []domain.Task{
		{
			ID:          1,
			Title:       "Complete project documentation",
			Description: &docsDescription,
			DueDate:     &inTwoDays,
			CreatedAt:   now,
		},
		{
			ID:          2,
			Title:       "Schedule team meeting",
			Description: &meetingDescription,
			DueDate:     &yesterday,
			Completed:   true,
			CreatedAt:   now.AddDate(0, 0, -2),
		},
		{
			ID:          3,
			Title:       "Review pull requests",
			Description: &reviewDescription,
			DueDate:     &today,
			CreatedAt:   now.AddDate(0, 0, -1),
		},
	}

	for _, task := range seeds {
		m.tasks[task.ID] = task
		m.taskOrder = append(m.taskOrder, task.ID)
		if task.ID >= m.nextTaskID {
			m.nextTaskID = task.ID + 1
		}
	}
}
