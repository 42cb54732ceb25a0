package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dayplanner/internal/model"
	"dayplanner/internal/planner"
)

func TestBridgeCreatesTaskFromFencedPayload(t *testing.T) {
	provider := textProvider("Sure thing!\n```json\n{\"action\": \"create\", \"task\": {\"text\": \"call dentist\", \"time\": \"10:30\"}, \"message\": \"Booked it in.\"}\n```\nAnything else?")
	uc := newTestUseCase(provider)

	out := chat(t, uc, "s1", "please remind me to phone the dentist at half past ten")
	reply := assistantText(t, out)
	if !strings.Contains(reply, "Booked it in.") {
		t.Errorf("reply = %q", reply)
	}
	if !strings.Contains(reply, "Anything else?") {
		t.Errorf("remainder should trail the confirmation: %q", reply)
	}

	tasks, _ := uc.ListTasks(context.Background(), out.ActiveDate)
	if len(tasks) != 1 || tasks[0].Text != "call dentist" || tasks[0].Time != "10:30" {
		t.Errorf("tasks = %+v", tasks)
	}
}

func TestBridgeCompleteCelebrates(t *testing.T) {
	provider := textProvider(`{"action": "complete", "match": {"text": "morning run"}}`)
	uc := newTestUseCase(provider)
	chat(t, uc, "s1", "add morning run")

	out := chat(t, uc, "s1", "I just finished my run")
	if !out.Celebrate {
		t.Error("expected celebration")
	}
	tasks, _ := uc.ListTasks(context.Background(), out.ActiveDate)
	if !tasks[0].Done {
		t.Errorf("tasks = %+v", tasks)
	}
}

func TestBridgePlainReply(t *testing.T) {
	provider := textProvider("You have a pretty light day, enjoy it!")
	uc := newTestUseCase(provider)

	out := chat(t, uc, "s1", "how does my day look?")
	if got := assistantText(t, out); got != "You have a pretty light day, enjoy it!" {
		t.Errorf("reply = %q", got)
	}
	tasks, _ := uc.ListTasks(context.Background(), out.ActiveDate)
	if len(tasks) != 0 {
		t.Errorf("tasks = %+v", tasks)
	}
}

func TestBridgeMalformedPayloadDegradesToPlainReply(t *testing.T) {
	provider := textProvider("I think you mean {something like this")
	uc := newTestUseCase(provider)

	out := chat(t, uc, "s1", "do the thing")
	if got := assistantText(t, out); got != "I think you mean {something like this" {
		t.Errorf("reply = %q", got)
	}
}

func TestBridgeFailureIsIsolated(t *testing.T) {
	uc := newTestUseCase(failingProvider(errors.New("connection refused")))
	chat(t, uc, "s1", "add buy milk")

	out := chat(t, uc, "s1", "what should I do first?")
	reply := assistantText(t, out)
	if !strings.Contains(reply, "could not reach") {
		t.Errorf("reply = %q", reply)
	}
	if out.Celebrate {
		t.Error("no celebration on failure")
	}

	// The list survives untouched and the transcript still grew.
	tasks, _ := uc.ListTasks(context.Background(), out.ActiveDate)
	if len(tasks) != 1 {
		t.Errorf("tasks = %+v", tasks)
	}
	tr, err := uc.Transcript(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(tr.Entries) != 4 {
		t.Errorf("transcript = %d entries", len(tr.Entries))
	}
}

func TestBridgeUnknownActionReported(t *testing.T) {
	provider := textProvider(`{"action": "archive", "match": {"text": "buy milk"}}`)
	uc := newTestUseCase(provider)
	chat(t, uc, "s1", "add buy milk")

	out := chat(t, uc, "s1", "put the milk away")
	if !strings.Contains(assistantText(t, out), `"archive"`) {
		t.Errorf("reply = %q", out.Replies[1].Text)
	}
	tasks, _ := uc.ListTasks(context.Background(), out.ActiveDate)
	if len(tasks) != 1 || tasks[0].Done {
		t.Errorf("tasks = %+v", tasks)
	}
}

func TestBridgeContextCarriesDateSummaryAndHistory(t *testing.T) {
	provider := textProvider("ok")
	uc := newTestUseCase(provider)
	chat(t, uc, "s1", "add buy milk time 17:00")

	chat(t, uc, "s1", "what else should I get?")
	req := provider.lastReq
	if req == nil {
		t.Fatal("provider was not called")
	}
	if !strings.Contains(req.SystemInstruction, "2025-03-14") {
		t.Error("system instruction should name the active date")
	}
	if !strings.Contains(req.SystemInstruction, "buy milk") {
		t.Error("system instruction should summarize tasks")
	}
	if !strings.Contains(req.SystemInstruction, `"action"`) {
		t.Error("system instruction should describe the tool-call format")
	}
	last := req.Messages[len(req.Messages)-1]
	if last.Role != "user" || last.Text != "what else should I get?" {
		t.Errorf("last message = %+v", last)
	}
	if len(req.Messages) < 3 {
		t.Errorf("prior turns missing, messages = %d", len(req.Messages))
	}
}

func TestBridgeSummaryIsTruncated(t *testing.T) {
	provider := textProvider("ok")
	uc := newTestUseCase(provider)
	uc.summaryMax = 2

	ctx := context.Background()
	tasks := []model.Task{
		{Text: "one"}, {Text: "two"}, {Text: "three"}, {Text: "four"},
	}
	if err := uc.ReplaceTasks(ctx, "2025-03-14", tasks); err != nil {
		t.Fatal(err)
	}

	chat(t, uc, "s1", "anything urgent?")
	instr := provider.lastReq.SystemInstruction
	if !strings.Contains(instr, "one") || !strings.Contains(instr, "two") {
		t.Errorf("instruction = %q", instr)
	}
	if strings.Contains(instr, "[ ] three") {
		t.Error("summary should stop at summaryMax tasks")
	}
	if !strings.Contains(instr, "2 more") {
		t.Errorf("instruction should count hidden tasks: %q", instr)
	}
}

func TestTranscript(t *testing.T) {
	uc := newTestUseCase(textProvider("hello!"))

	t.Run("unknown session", func(t *testing.T) {
		if _, err := uc.Transcript(context.Background(), "nope"); err != planner.ErrSessionNotFound {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("entries are appended in order", func(t *testing.T) {
		chat(t, uc, "s1", "add buy milk")
		chat(t, uc, "s1", "list")

		tr, err := uc.Transcript(context.Background(), "s1")
		if err != nil {
			t.Fatal(err)
		}
		if len(tr.Entries) != 4 {
			t.Fatalf("entries = %d", len(tr.Entries))
		}
		wantRoles := []model.Role{model.RoleUser, model.RoleAssistant, model.RoleUser, model.RoleAssistant}
		for i, entry := range tr.Entries {
			if entry.Role != wantRoles[i] {
				t.Errorf("entry %d role = %s", i, entry.Role)
			}
		}
		if tr.Entries[0].Text != "add buy milk" {
			t.Errorf("entry 0 = %q", tr.Entries[0].Text)
		}
	})
}

func TestListTasksValidatesDate(t *testing.T) {
	uc := newTestUseCase(textProvider(""))
	if _, err := uc.ListTasks(context.Background(), "03/14/2025"); err != planner.ErrInvalidDateID {
		t.Errorf("err = %v", err)
	}
}

func TestReplaceTasksNormalizes(t *testing.T) {
	uc := newTestUseCase(textProvider(""))
	ctx := context.Background()

	in := []model.Task{
		{Text: "  buy milk  ", Priority: "urgent"},
		{Text: "   "},
		{ID: "keep-me", Text: "morning run", Priority: model.PriorityHigh},
	}
	if err := uc.ReplaceTasks(ctx, "2025-03-14", in); err != nil {
		t.Fatal(err)
	}

	out, _ := uc.ListTasks(ctx, "2025-03-14")
	if len(out) != 2 {
		t.Fatalf("tasks = %+v", out)
	}
	if out[0].Text != "buy milk" || out[0].Priority != model.PriorityMed || out[0].ID == "" {
		t.Errorf("task 0 = %+v", out[0])
	}
	if out[1].ID != "keep-me" || out[1].Priority != model.PriorityHigh {
		t.Errorf("task 1 = %+v", out[1])
	}

	if err := uc.ReplaceTasks(ctx, "bad-date", in); err != planner.ErrInvalidDateID {
		t.Errorf("err = %v", err)
	}
}
