package usecase

import (
	"context"
	"fmt"
	"strings"

	"dayplanner/internal/model"
	"dayplanner/internal/planner/command"
	"dayplanner/internal/planner/executor"
	"dayplanner/internal/planner/toolcall"
	"dayplanner/pkg/datemath"
)

// runCommand executes one parsed deterministic command against the session's
// active date and returns the assistant reply plus the celebration signal.
func (uc *implUseCase) runCommand(ctx context.Context, sess *session, cmd command.Command) (string, bool) {
	switch cmd.Kind {
	case command.KindHelp:
		return helpText, false
	case command.KindGreeting:
		return fmt.Sprintf("Hi! You're planning %s. Say \"help\" to see what I can do.", sess.activeDate), false
	case command.KindList:
		return uc.listTasks(ctx, sess, cmd.Filter), false
	case command.KindClearDone:
		return uc.clearDone(ctx, sess), false
	case command.KindCarryForward:
		return uc.carryForward(ctx, sess), false
	case command.KindSwitchDate:
		return uc.switchDate(sess, cmd.Date), false
	case command.KindToday:
		date := uc.dateMath.Today(uc.now())
		sess.activeDate = date
		return fmt.Sprintf("Switched to today, %s.", date), false
	case command.KindTomorrow:
		date := uc.dateMath.Tomorrow(uc.now())
		sess.activeDate = date
		return fmt.Sprintf("Switched to tomorrow, %s.", date), false
	case command.KindDone:
		return uc.markDone(ctx, sess, cmd.Query)
	case command.KindDelete:
		return uc.deleteTask(ctx, sess, cmd.Query), false
	case command.KindAdd:
		return uc.addTask(ctx, sess, cmd.Add)
	default:
		return "I did not understand that.", false
	}
}

func (uc *implUseCase) listTasks(ctx context.Context, sess *session, filter command.ListFilter) string {
	tasks, err := uc.repo.GetTasks(ctx, sess.activeDate)
	if err != nil {
		uc.l.Errorf(ctx, "planner.listTasks: get tasks: %v", err)
		return "I could not read the task list right now."
	}

	var shown []model.Task
	for _, task := range tasks {
		switch filter {
		case command.ListUndone:
			if !task.Done {
				shown = append(shown, task)
			}
		case command.ListDone:
			if task.Done {
				shown = append(shown, task)
			}
		default:
			shown = append(shown, task)
		}
	}

	if len(shown) == 0 {
		switch filter {
		case command.ListUndone:
			return fmt.Sprintf("Nothing left to do for %s!", sess.activeDate)
		case command.ListDone:
			return fmt.Sprintf("Nothing is done yet for %s.", sess.activeDate)
		default:
			return fmt.Sprintf("Nothing on the list for %s.", sess.activeDate)
		}
	}

	lines := make([]string, 0, len(shown)+1)
	lines = append(lines, fmt.Sprintf("Tasks for %s:", sess.activeDate))
	for _, task := range shown {
		lines = append(lines, renderTask(task))
	}
	return strings.Join(lines, "\n")
}

func (uc *implUseCase) clearDone(ctx context.Context, sess *session) string {
	tasks, err := uc.repo.GetTasks(ctx, sess.activeDate)
	if err != nil {
		uc.l.Errorf(ctx, "planner.clearDone: get tasks: %v", err)
		return "I could not read the task list right now."
	}

	remaining := make([]model.Task, 0, len(tasks))
	removed := 0
	for _, task := range tasks {
		if task.Done {
			removed++
			continue
		}
		remaining = append(remaining, task)
	}

	if removed == 0 {
		return "No completed tasks to clear."
	}
	if err := uc.repo.ReplaceTasks(ctx, sess.activeDate, remaining); err != nil {
		uc.l.Errorf(ctx, "planner.clearDone: replace tasks: %v", err)
		return "I could not update the task list right now."
	}
	return fmt.Sprintf("Cleared %d completed %s.", removed, plural(removed, "task", "tasks"))
}

// carryForward copies the undone tasks of the active date to the front of
// the next day's list. The source date keeps them; the reported count and
// the copied tasks come from the same snapshot.
func (uc *implUseCase) carryForward(ctx context.Context, sess *session) string {
	next, err := uc.dateMath.NextDay(sess.activeDate)
	if err != nil {
		return fmt.Sprintf("I cannot work out the day after %s.", sess.activeDate)
	}

	tasks, err := uc.repo.GetTasks(ctx, sess.activeDate)
	if err != nil {
		uc.l.Errorf(ctx, "planner.carryForward: get tasks: %v", err)
		return "I could not read the task list right now."
	}

	var undone []model.Task
	for _, task := range tasks {
		if !task.Done {
			undone = append(undone, task)
		}
	}
	if len(undone) == 0 {
		return "Nothing to carry forward, everything is done!"
	}

	nextTasks, err := uc.repo.GetTasks(ctx, next)
	if err != nil {
		uc.l.Errorf(ctx, "planner.carryForward: get next day tasks: %v", err)
		return "I could not read the task list right now."
	}
	if err := uc.repo.ReplaceTasks(ctx, next, append(undone, nextTasks...)); err != nil {
		uc.l.Errorf(ctx, "planner.carryForward: replace tasks: %v", err)
		return "I could not update the task list right now."
	}

	return fmt.Sprintf("Carried %d %s forward to %s.", len(undone), plural(len(undone), "task", "tasks"), next)
}

func (uc *implUseCase) switchDate(sess *session, arg string) string {
	if !datemath.ValidID(arg) {
		return fmt.Sprintf("Dates must look like YYYY-MM-DD, got %q.", arg)
	}
	sess.activeDate = arg
	return fmt.Sprintf("Switched to %s.", arg)
}

func (uc *implUseCase) markDone(ctx context.Context, sess *session, query string) (string, bool) {
	res := uc.applyCall(ctx, sess, toolcall.Call{
		Action: toolcall.ActionComplete,
		Known:  true,
		Match:  query,
	})
	return res.Message, res.Celebrate
}

func (uc *implUseCase) deleteTask(ctx context.Context, sess *session, query string) string {
	res := uc.applyCall(ctx, sess, toolcall.Call{
		Action: toolcall.ActionDelete,
		Known:  true,
		Match:  query,
	})
	return res.Message
}

func (uc *implUseCase) addTask(ctx context.Context, sess *session, fields command.AddFields) (string, bool) {
	if strings.TrimSpace(fields.Text) == "" {
		return "I need a task title. Try: add buy milk time 17:00.", false
	}
	res := uc.applyCall(ctx, sess, toolcall.Call{
		Action: toolcall.ActionCreate,
		Known:  true,
		Task: toolcall.TaskFields{
			Text:     fields.Text,
			Time:     fields.Time,
			Priority: fields.Priority,
			Tags:     fields.Tags,
			Notes:    fields.Notes,
		},
	})
	return res.Message, res.Celebrate
}

// applyCall runs one tool-call through the executor against a fresh snapshot
// and commits the result. Shared by the deterministic commands and the
// language-model fallback so both paths confirm and fail identically.
func (uc *implUseCase) applyCall(ctx context.Context, sess *session, call toolcall.Call) executor.Result {
	tasks, err := uc.repo.GetTasks(ctx, sess.activeDate)
	if err != nil {
		uc.l.Errorf(ctx, "planner.applyCall: get tasks: %v", err)
		return executor.Result{Message: "I could not read the task list right now."}
	}

	res := uc.exec.Apply(call, tasks)
	if res.Mutated {
		if err := uc.repo.ReplaceTasks(ctx, sess.activeDate, res.NextTasks); err != nil {
			uc.l.Errorf(ctx, "planner.applyCall: replace tasks: %v", err)
			return executor.Result{Message: "I could not update the task list right now."}
		}
		if res.Created != nil {
			uc.syncCalendar(ctx, sess.activeDate, *res.Created)
		}
	}
	if res.SwitchDate != "" {
		sess.activeDate = res.SwitchDate
	}
	return res
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
