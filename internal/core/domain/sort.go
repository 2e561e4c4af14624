package domain

import (
	"sort"
	"time"
)

type SortKey string

const (
	SortKeyDueDate      SortKey = "dueDate"
	SortKeyCreationDate SortKey = "creationDate"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortOption is a key+direction pair, e.g. "dueDate-asc" on the wire.
type SortOption struct {
	Key       SortKey
	Direction SortDirection
}

func (o SortOption) String() string {
	return string(o.Key) + "-" + string(o.Direction)
}

var sortOptions = map[string]SortOption{
	"dueDate-asc":       {SortKeyDueDate, SortAsc},
	"dueDate-desc":      {SortKeyDueDate, SortDesc},
	"creationDate-asc":  {SortKeyCreationDate, SortAsc},
	"creationDate-desc": {SortKeyCreationDate, SortDesc},
}

// ParseSortOption validates a raw sort query value. The boolean is false
// for anything outside the four supported options; callers fall back to
// insertion order.
func ParseSortOption(raw string) (SortOption, bool) {
	option, ok := sortOptions[raw]
	return option, ok
}

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

func ParseFilter(raw string) (Filter, bool) {
	switch Filter(raw) {
	case FilterAll, FilterActive, FilterCompleted:
		return Filter(raw), true
	}
	return "", false
}

// Tasks with no due date sort as if due at the maximum possible date:
// last ascending, first descending.
var maxDueDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// SortTasks returns a new ordered slice; the input is not mutated.
// Relative order of tasks with equal sort keys is unspecified.
func SortTasks(tasks []Task, option SortOption) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)

	sort.Slice(sorted, func(i, j int) bool {
		a := sortValue(sorted[i], option.Key)
		b := sortValue(sorted[j], option.Key)
		if option.Direction == SortDesc {
			return b.Before(a)
		}
		return a.Before(b)
	})

	return sorted
}

func sortValue(task Task, key SortKey) time.Time {
	if key == SortKeyDueDate {
		if task.DueDate == nil {
			return maxDueDate
		}
		return *task.DueDate
	}
	return task.CreatedAt
}

// FilterTasks keeps the subset matching the completion filter. FilterAll
// (and the zero value) return the input unchanged.
func FilterTasks(tasks []Task, filter Filter) []Task {
	switch filter {
	case FilterActive, FilterCompleted:
		wantCompleted := filter == FilterCompleted
		filtered := make([]Task, 0, len(tasks))
		for _, task := range tasks {
			if task.Completed == wantCompleted {
				filtered = append(filtered, task)
			}
		}
		return filtered
	}
	return tasks
}
