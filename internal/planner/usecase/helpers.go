package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dayplanner/internal/model"
	"dayplanner/pkg/gcalendar"
)

// buildContext assembles the system instruction for a bridge request: the
// active date, a bounded task summary and the tool-call contract.
func (uc *implUseCase) buildContext(activeDate string, tasks []model.Task) string {
	var b strings.Builder
	b.WriteString("You are a friendly daily task planner assistant.\n")
	fmt.Fprintf(&b, "The user is planning %s.\n\n", activeDate)

	if len(tasks) == 0 {
		b.WriteString("The task list is currently empty.\n")
	} else {
		fmt.Fprintf(&b, "Current tasks (%d):\n", len(tasks))
		shown := tasks
		if uc.summaryMax > 0 && len(shown) > uc.summaryMax {
			shown = shown[:uc.summaryMax]
		}
		for _, task := range shown {
			b.WriteString(renderTask(task))
			b.WriteString("\n")
		}
		if hidden := len(tasks) - len(shown); hidden > 0 {
			fmt.Fprintf(&b, "...and %d more.\n", hidden)
		}
	}

	b.WriteString("\n")
	b.WriteString(schemaInstruction)
	return b.String()
}

// renderTask formats one task as a transcript line.
func renderTask(task model.Task) string {
	var b strings.Builder
	if task.Done {
		b.WriteString("[x] ")
	} else {
		b.WriteString("[ ] ")
	}
	b.WriteString(task.Text)

	var extras []string
	if task.Time != "" {
		extras = append(extras, task.Time)
	}
	if task.Priority != "" && task.Priority != model.PriorityMed {
		extras = append(extras, string(task.Priority))
	}
	if len(task.Tags) > 0 {
		extras = append(extras, "#"+strings.Join(task.Tags, " #"))
	}
	if len(extras) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(extras, ", "))
	}
	return b.String()
}

// syncCalendar mirrors a newly created timed task to Google Calendar.
// Best effort: failures are logged and never affect the chat flow.
func (uc *implUseCase) syncCalendar(ctx context.Context, dateID string, task model.Task) {
	if uc.calendar == nil || task.Time == "" {
		return
	}

	start, err := uc.dateMath.At(dateID, task.Time)
	if err != nil {
		uc.l.Warnf(ctx, "planner.syncCalendar: bad start time for %q: %v", task.Text, err)
		return
	}

	_, err = uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     task.Text,
		Description: task.Notes,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Timezone:    uc.dateMath.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "planner.syncCalendar: create event for %q: %v", task.Text, err)
		return
	}
	uc.l.Infof(ctx, "planner.syncCalendar: created event for %q at %s %s", task.Text, dateID, task.Time)
}
