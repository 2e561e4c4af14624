package dto

// TaskItem is the wire shape of a task. Optional fields serialize as
// explicit null rather than being omitted.
type TaskItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"createdAt"`
	UserID      *int64  `json:"userId"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	DueDate     *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Completed   *bool   `json:"completed"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	DueDate     *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Completed   *bool   `json:"completed"`
}
