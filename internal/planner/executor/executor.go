// Package executor validates tool-calls and applies them to a task snapshot.
// Apply is pure over its inputs: it returns the replacement list and leaves
// committing it to the caller, so a bad payload can never corrupt the store.
package executor

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dayplanner/internal/model"
	"dayplanner/internal/planner/match"
	"dayplanner/internal/planner/toolcall"
	"dayplanner/pkg/datemath"
)

// Result is the outcome of applying one tool-call.
type Result struct {
	OK         bool
	Message    string
	NextTasks  []model.Task // replacement list, valid only when Mutated
	Mutated    bool
	Celebrate  bool
	SwitchDate string      // non-empty when the active date should change
	Created    *model.Task // set on successful create, for downstream sync
}

type Executor struct {
	newID func() string
	now   func() time.Time
}

func New() *Executor {
	return &Executor{
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Apply validates the call against the snapshot and computes the outcome.
// Failures carry a user-facing message naming the missing field or quoting
// the unresolved query; the snapshot is never modified in place.
func (e *Executor) Apply(call toolcall.Call, tasks []model.Task) Result {
	if !call.Known {
		if call.RawTag == "" {
			return failure("I could not find a recognized action in that request.")
		}
		return failure(fmt.Sprintf("I do not know the action %q.", call.RawTag))
	}

	switch call.Action {
	case toolcall.ActionCreate:
		return e.create(call, tasks)
	case toolcall.ActionUpdate:
		return e.update(call, tasks)
	case toolcall.ActionComplete:
		return e.setDone(call, tasks, true)
	case toolcall.ActionUncomplete:
		return e.setDone(call, tasks, false)
	case toolcall.ActionDelete:
		return e.delete(call, tasks)
	case toolcall.ActionSwitchDate:
		return e.switchDate(call)
	default:
		return failure(fmt.Sprintf("I do not know the action %q.", call.RawTag))
	}
}

func (e *Executor) create(call toolcall.Call, tasks []model.Task) Result {
	text := strings.TrimSpace(call.Task.Text)
	if text == "" {
		return failure(`Cannot create a task: the "task.text" field is missing.`)
	}

	priority := model.PriorityMed
	if model.ValidPriority(call.Task.Priority) {
		priority = model.Priority(call.Task.Priority)
	}

	tags := make([]string, 0, len(call.Task.Tags))
	for _, tag := range call.Task.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	task := model.Task{
		ID:        e.newID(),
		Text:      text,
		Time:      call.Task.Time,
		Priority:  priority,
		Tags:      tags,
		Notes:     call.Task.Notes,
		Done:      call.Task.Done,
		CreatedAt: e.now(),
	}

	next := make([]model.Task, 0, len(tasks)+1)
	next = append(next, task)
	next = append(next, model.CloneTasks(tasks)...)

	return Result{
		OK:        true,
		Message:   messageOr(call, fmt.Sprintf("Added %q.", text)),
		NextTasks: next,
		Mutated:   true,
		Celebrate: task.Done,
		Created:   &task,
	}
}

func (e *Executor) update(call toolcall.Call, tasks []model.Task) Result {
	target, res, ok := resolve(call, tasks)
	if !ok {
		return res
	}

	next := model.CloneTasks(tasks)
	celebrate := false
	for i := range next {
		if next[i].ID != target.ID {
			continue
		}
		applyChanges(&next[i], call.Changes)
		if call.Changes.Done != nil && *call.Changes.Done && !target.Done {
			celebrate = true
		}
		break
	}

	return Result{
		OK:        true,
		Message:   messageOr(call, fmt.Sprintf("Updated %q.", target.Text)),
		NextTasks: next,
		Mutated:   true,
		Celebrate: celebrate,
	}
}

func applyChanges(task *model.Task, changes toolcall.ChangeFields) {
	if changes.Text != nil && strings.TrimSpace(*changes.Text) != "" {
		task.Text = strings.TrimSpace(*changes.Text)
	}
	if changes.Time != nil {
		task.Time = *changes.Time
	}
	if changes.Priority != nil && model.ValidPriority(*changes.Priority) {
		task.Priority = model.Priority(*changes.Priority)
	}
	if changes.Tags != nil {
		tags := make([]string, 0, len(*changes.Tags))
		for _, tag := range *changes.Tags {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		task.Tags = tags
	}
	if changes.Notes != nil {
		task.Notes = *changes.Notes
	}
	if changes.Done != nil {
		task.Done = *changes.Done
	}
}

func (e *Executor) setDone(call toolcall.Call, tasks []model.Task, done bool) Result {
	target, res, ok := resolve(call, tasks)
	if !ok {
		return res
	}

	if target.Done == done {
		state := "done"
		if !done {
			state = "not done"
		}
		return Result{
			OK:      true,
			Message: fmt.Sprintf("%q is already %s.", target.Text, state),
		}
	}

	next := model.CloneTasks(tasks)
	for i := range next {
		if next[i].ID == target.ID {
			next[i].Done = done
			break
		}
	}

	message := fmt.Sprintf("Nice, %q is done!", target.Text)
	if !done {
		message = fmt.Sprintf("Reopened %q.", target.Text)
	}

	return Result{
		OK:        true,
		Message:   messageOr(call, message),
		NextTasks: next,
		Mutated:   true,
		Celebrate: done,
	}
}

func (e *Executor) delete(call toolcall.Call, tasks []model.Task) Result {
	target, res, ok := resolve(call, tasks)
	if !ok {
		return res
	}

	next := make([]model.Task, 0, len(tasks)-1)
	for _, task := range model.CloneTasks(tasks) {
		if task.ID != target.ID {
			next = append(next, task)
		}
	}

	return Result{
		OK:        true,
		Message:   messageOr(call, fmt.Sprintf("Deleted %q.", target.Text)),
		NextTasks: next,
		Mutated:   true,
	}
}

func (e *Executor) switchDate(call toolcall.Call) Result {
	if call.Date == "" {
		return failure(`Cannot switch dates: the "date" field is missing.`)
	}
	if !datemath.ValidID(call.Date) {
		return failure(fmt.Sprintf("Dates must look like YYYY-MM-DD, got %q.", call.Date))
	}
	return Result{
		OK:         true,
		Message:    messageOr(call, fmt.Sprintf("Switched to %s.", call.Date)),
		SwitchDate: call.Date,
	}
}

// resolve looks up the matched task for the actions that need one. The third
// return is false when lookup failed and res already holds the failure.
func resolve(call toolcall.Call, tasks []model.Task) (model.Task, Result, bool) {
	query := strings.TrimSpace(call.Match)
	if query == "" {
		return model.Task{}, failure(`The "match.text" field is missing, so I do not know which task you mean.`), false
	}
	target, found := match.Find(tasks, query)
	if !found {
		return model.Task{}, failure(fmt.Sprintf("No task found matching %q.", query)), false
	}
	return target, Result{}, true
}

func messageOr(call toolcall.Call, fallback string) string {
	if msg := strings.TrimSpace(call.Message); msg != "" {
		return msg
	}
	return fallback
}

func failure(message string) Result {
	return Result{OK: false, Message: message}
}
