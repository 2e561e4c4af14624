package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jumpman-cmd/ToDoTaskMaster/internal/adapter/http/dto"
	"github.com/jumpman-cmd/ToDoTaskMaster/internal/adapter/http/validation"
)

func rawFields(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestBuildCreateTaskInput_Minimal(t *testing.T) {
	req := dto.CreateTaskRequest{Title: "  buy milk  "}
	input, err := validation.BuildCreateTaskInput(req, rawFields(t, `{"title":"  buy milk  "}`))
	require.NoError(t, err)

	require.Equal(t, "buy milk", input.Title)
	require.Nil(t, input.Description)
	require.Nil(t, input.DueDate)
	require.False(t, input.Completed)
}

func TestBuildCreateTaskInput_AllFields(t *testing.T) {
	description := "two liters"
	dueDate := "2099-01-01"
	completed := true
	req := dto.CreateTaskRequest{
		Title:       "buy milk",
		Description: &description,
		DueDate:     &dueDate,
		Completed:   &completed,
	}
	body := `{"title":"buy milk","description":"two liters","dueDate":"2099-01-01","completed":true}`

	input, err := validation.BuildCreateTaskInput(req, rawFields(t, body))
	require.NoError(t, err)
	require.Equal(t, "two liters", *input.Description)
	require.Equal(t, "2099-01-01", input.DueDate.Format("2006-01-02"))
	require.True(t, input.Completed)
}

func TestBuildCreateTaskInput_BlankTitle(t *testing.T) {
	req := dto.CreateTaskRequest{Title: "   "}
	_, err := validation.BuildCreateTaskInput(req, rawFields(t, `{"title":"   "}`))
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildCreateTaskInput_NullCompleted(t *testing.T) {
	req := dto.CreateTaskRequest{Title: "buy milk"}
	_, err := validation.BuildCreateTaskInput(req, rawFields(t, `{"title":"buy milk","completed":null}`))
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildUpdateTaskInput_EmptyBodyIsNoOp(t *testing.T) {
	input, err := validation.BuildUpdateTaskInput(dto.UpdateTaskRequest{}, rawFields(t, `{}`))
	require.NoError(t, err)

	require.Nil(t, input.Title)
	require.Nil(t, input.Completed)
	require.False(t, input.DescriptionSet)
	require.False(t, input.DueDateSet)
}

func TestBuildUpdateTaskInput_NullClearsOptionalFields(t *testing.T) {
	input, err := validation.BuildUpdateTaskInput(
		dto.UpdateTaskRequest{},
		rawFields(t, `{"description":null,"dueDate":null}`),
	)
	require.NoError(t, err)

	require.True(t, input.DescriptionSet)
	require.Nil(t, input.Description)
	require.True(t, input.DueDateSet)
	require.Nil(t, input.DueDate)
}

func TestBuildUpdateTaskInput_SetsProvidedFields(t *testing.T) {
	title := " renamed "
	dueDate := "2030-06-15"
	completed := true
	req := dto.UpdateTaskRequest{Title: &title, DueDate: &dueDate, Completed: &completed}
	body := `{"title":" renamed ","dueDate":"2030-06-15","completed":true}`

	input, err := validation.BuildUpdateTaskInput(req, rawFields(t, body))
	require.NoError(t, err)
	require.Equal(t, "renamed", *input.Title)
	require.True(t, input.DueDateSet)
	require.Equal(t, "2030-06-15", input.DueDate.Format("2006-01-02"))
	require.True(t, *input.Completed)
}

func TestBuildUpdateTaskInput_Rejections(t *testing.T) {
	cases := []struct {
		name string
		req  dto.UpdateTaskRequest
		body string
	}{
		{"null title", dto.UpdateTaskRequest{}, `{"title":null}`},
		{"blank title", dto.UpdateTaskRequest{Title: ptr("  ")}, `{"title":"  "}`},
		{"null completed", dto.UpdateTaskRequest{}, `{"completed":null}`},
		{"malformed due date", dto.UpdateTaskRequest{DueDate: ptr("15/06/2030")}, `{"dueDate":"15/06/2030"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validation.BuildUpdateTaskInput(tc.req, rawFields(t, tc.body))
			require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
		})
	}
}

func ptr(s string) *string {
	return &s
}
