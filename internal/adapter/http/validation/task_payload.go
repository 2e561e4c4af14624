package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jumpman-cmd/ToDoTaskMaster/internal/adapter/http/dto"
	"github.com/jumpman-cmd/ToDoTaskMaster/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput turns a bound create request into a store input.
// The raw message map distinguishes fields sent as JSON null from fields
// left out: title and completed may not be null, while a null description
// or dueDate is treated as absent.
func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		DueDate:     dueDate,
		Completed:   completed,
	}, nil
}

// BuildUpdateTaskInput turns a bound patch request into a partial update.
// An empty body is a valid no-op patch. A null description or dueDate
// clears the stored value; an absent field leaves it untouched. Title and
// completed may not be null when present, and title may not be blank.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	var input domain.UpdateTaskInput

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Title = &value
	}

	if hasJSONField(raw, "description") {
		input.DescriptionSet = true
		if !isJSONNull(raw["description"]) {
			if req.Description == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			input.Description = req.Description
		}
	}

	if hasJSONField(raw, "dueDate") {
		input.DueDateSet = true
		if !isJSONNull(raw["dueDate"]) {
			if req.DueDate == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			dueDate, err := parseDueDate(req.DueDate)
			if err != nil {
				return domain.UpdateTaskInput{}, err
			}
			input.DueDate = dueDate
		}
	}

	if hasJSONField(raw, "completed") {
		if req.Completed == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Completed = req.Completed
	}

	return input, nil
}

func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := time.Parse(domain.DueDateLayout, *raw)
	if err != nil {
		return nil, ErrInvalidTaskPayload
	}
	return &parsed, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
