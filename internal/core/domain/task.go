package domain

import "time"

// DueDateLayout is the calendar-date wire format for due dates. Due dates
// carry no time component.
const DueDateLayout = "2006-01-02"

type Task struct {
	ID          int64
	Title       string
	Description *string
	DueDate     *time.Time
	Completed   bool
	CreatedAt   time.Time
	UserID      *int64
}

type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Completed   bool
	UserID      *int64
}

// UpdateTaskInput is a partial update. A nil pointer leaves the field
// unchanged unless the matching Set flag is true, in which case nil clears
// it. ID and CreatedAt are never updatable.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	DueDate        *time.Time
	DueDateSet     bool
	Completed      *bool
}

// TaskListQuery shapes a listing: optional user scoping, optional sort,
// completion filter. Sorting is applied before filtering.
type TaskListQuery struct {
	UserID *int64
	Sort   *SortOption
	Filter Filter
}

type User struct {
	ID       int64
	Username string
	Password string
}

type CreateUserInput struct {
	Username string
	Password string
}
