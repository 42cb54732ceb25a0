package http

import (
	"time"

	"dayplanner/internal/model"
	"dayplanner/internal/planner"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id" binding:"required,min=1,max=128"`
	Message   string `json:"message"    binding:"required,min=1,max=4000"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() planner.ChatInput {
	return planner.ChatInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

type replaceTasksReq struct {
	Date  string
	Tasks []taskPayload `json:"tasks" binding:"required"`
}

func (r replaceTasksReq) validate() error { return nil }

func (r replaceTasksReq) toTasks() []model.Task {
	tasks := make([]model.Task, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		tasks = append(tasks, t.toModel())
	}
	return tasks
}

// --- Shared DTOs ---

type taskPayload struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Time      string    `json:"time,omitempty"`
	Priority  string    `json:"priority"`
	Tags      []string  `json:"tags"`
	Notes     string    `json:"notes"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

func (p taskPayload) toModel() model.Task {
	return model.Task{
		ID:        p.ID,
		Text:      p.Text,
		Time:      p.Time,
		Priority:  model.Priority(p.Priority),
		Tags:      p.Tags,
		Notes:     p.Notes,
		Done:      p.Done,
		CreatedAt: p.CreatedAt,
	}
}

func newTaskPayload(t model.Task) taskPayload {
	return taskPayload{
		ID:        t.ID,
		Text:      t.Text,
		Time:      t.Time,
		Priority:  string(t.Priority),
		Tags:      t.Tags,
		Notes:     t.Notes,
		Done:      t.Done,
		CreatedAt: t.CreatedAt,
	}
}

type transcriptEntry struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

func newTranscriptEntries(entries []model.TranscriptEntry) []transcriptEntry {
	out := make([]transcriptEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, transcriptEntry{Role: string(e.Role), Text: e.Text})
	}
	return out
}

// --- Response DTOs ---

type chatResp struct {
	Replies    []transcriptEntry `json:"replies"`
	ActiveDate string            `json:"active_date"`
	Celebrate  bool              `json:"celebrate"`
}

func (h *handler) newChatResp(out planner.ChatOutput) chatResp {
	return chatResp{
		Replies:    newTranscriptEntries(out.Replies),
		ActiveDate: out.ActiveDate,
		Celebrate:  out.Celebrate,
	}
}

type listTasksResp struct {
	Date  string        `json:"date"`
	Tasks []taskPayload `json:"tasks"`
}

func (h *handler) newListTasksResp(date string, tasks []model.Task) listTasksResp {
	payloads := make([]taskPayload, 0, len(tasks))
	for _, t := range tasks {
		payloads = append(payloads, newTaskPayload(t))
	}
	return listTasksResp{Date: date, Tasks: payloads}
}

type transcriptResp struct {
	SessionID  string            `json:"session_id"`
	ActiveDate string            `json:"active_date"`
	Entries    []transcriptEntry `json:"entries"`
}

func (h *handler) newTranscriptResp(sessionID string, out planner.TranscriptOutput) transcriptResp {
	return transcriptResp{
		SessionID:  sessionID,
		ActiveDate: out.ActiveDate,
		Entries:    newTranscriptEntries(out.Entries),
	}
}
