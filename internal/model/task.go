package model

import "time"

// Priority is the task priority level.
type Priority string

const (
	PriorityLow  Priority = "low"
	PriorityMed  Priority = "med"
	PriorityHigh Priority = "high"
)

// ValidPriority reports whether p is one of the three allowed levels.
func ValidPriority(p string) bool {
	switch Priority(p) {
	case PriorityLow, PriorityMed, PriorityHigh:
		return true
	}
	return false
}

// Task is a single entry on a day's list. Identity is ID, immutable after
// creation. Tags preserve insertion order and may contain duplicates.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Time      string    `json:"time,omitempty"` // HH:MM, optional
	Priority  Priority  `json:"priority"`
	Tags      []string  `json:"tags"`
	Notes     string    `json:"notes"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	c := t
	c.Tags = append([]string(nil), t.Tags...)
	return c
}

// CloneTasks returns a deep copy of a task list.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
