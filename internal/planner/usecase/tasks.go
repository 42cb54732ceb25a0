package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"dayplanner/internal/model"
	"dayplanner/internal/planner"
	"dayplanner/pkg/datemath"
)

func (uc *implUseCase) ListTasks(ctx context.Context, dateID string) ([]model.Task, error) {
	if !datemath.ValidID(dateID) {
		return nil, planner.ErrInvalidDateID
	}
	return uc.repo.GetTasks(ctx, dateID)
}

// ReplaceTasks swaps in a full task list for a date. Incoming tasks are
// normalized the same way create is: blank entries dropped, missing IDs
// assigned, out-of-enum priorities reset to med.
func (uc *implUseCase) ReplaceTasks(ctx context.Context, dateID string, tasks []model.Task) error {
	if !datemath.ValidID(dateID) {
		return planner.ErrInvalidDateID
	}

	normalized := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		task.Text = strings.TrimSpace(task.Text)
		if task.Text == "" {
			continue
		}
		if task.ID == "" {
			task.ID = uuid.NewString()
		}
		if !model.ValidPriority(string(task.Priority)) {
			task.Priority = model.PriorityMed
		}
		if task.CreatedAt.IsZero() {
			task.CreatedAt = uc.now()
		}
		normalized = append(normalized, task)
	}

	return uc.repo.ReplaceTasks(ctx, dateID, normalized)
}

func (uc *implUseCase) Transcript(ctx context.Context, sessionID string) (planner.TranscriptOutput, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return planner.TranscriptOutput{}, planner.ErrEmptySessionID
	}

	sess, ok := uc.sessions.get(sessionID)
	if !ok {
		return planner.TranscriptOutput{}, planner.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	entries := make([]model.TranscriptEntry, len(sess.transcript))
	copy(entries, sess.transcript)

	return planner.TranscriptOutput{
		Entries:    entries,
		ActiveDate: sess.activeDate,
	}, nil
}
