package command_test

import (
	"reflect"
	"testing"

	"dayplanner/internal/planner/command"
)

func TestParseKeywordCommands(t *testing.T) {
	cases := []struct {
		in   string
		want command.Command
	}{
		{"help", command.Command{Kind: command.KindHelp}},
		{"commands", command.Command{Kind: command.KindHelp}},
		{"HELP", command.Command{Kind: command.KindHelp}},
		{"list", command.Command{Kind: command.KindList, Filter: command.ListAll}},
		{"what's left", command.Command{Kind: command.KindList, Filter: command.ListUndone}},
		{"whats left", command.Command{Kind: command.KindList, Filter: command.ListUndone}},
		{"show done", command.Command{Kind: command.KindList, Filter: command.ListDone}},
		{"clear done", command.Command{Kind: command.KindClearDone}},
		{"carry forward", command.Command{Kind: command.KindCarryForward}},
		{"  carry   forward  ", command.Command{Kind: command.KindCarryForward}},
		{"today", command.Command{Kind: command.KindToday}},
		{"tomorrow", command.Command{Kind: command.KindTomorrow}},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := command.Parse(tc.in)
			if !ok {
				t.Fatalf("Parse(%q) not recognized", tc.in)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseArgumentCommands(t *testing.T) {
	t.Run("switch keeps raw date argument", func(t *testing.T) {
		got, ok := command.Parse("switch 2025-02-30")
		if !ok || got.Kind != command.KindSwitchDate {
			t.Fatalf("Parse = %+v %v", got, ok)
		}
		if got.Date != "2025-02-30" {
			t.Errorf("Date = %q", got.Date)
		}
	})

	t.Run("switch with garbage argument still parses", func(t *testing.T) {
		got, ok := command.Parse("switch nextweek")
		if !ok || got.Date != "nextweek" {
			t.Fatalf("Parse = %+v %v", got, ok)
		}
	})

	t.Run("done keeps query casing", func(t *testing.T) {
		got, ok := command.Parse("DONE Buy Milk")
		if !ok || got.Kind != command.KindDone {
			t.Fatalf("Parse = %+v %v", got, ok)
		}
		if got.Query != "Buy Milk" {
			t.Errorf("Query = %q", got.Query)
		}
	})

	t.Run("delete", func(t *testing.T) {
		got, ok := command.Parse("delete run 5k")
		if !ok || got.Kind != command.KindDelete || got.Query != "run 5k" {
			t.Fatalf("Parse = %+v %v", got, ok)
		}
	})
}

func TestParseAdd(t *testing.T) {
	t.Run("all keyed fields", func(t *testing.T) {
		got, ok := command.Parse("add buy milk time 17:00 priority high tags groceries,errand")
		if !ok || got.Kind != command.KindAdd {
			t.Fatalf("Parse = %+v %v", got, ok)
		}
		want := command.AddFields{
			Text:     "buy milk",
			Time:     "17:00",
			Priority: "high",
			Tags:     []string{"groceries", "errand"},
		}
		if !reflect.DeepEqual(got.Add, want) {
			t.Errorf("Add = %+v, want %+v", got.Add, want)
		}
	})

	t.Run("fields in any position", func(t *testing.T) {
		got, _ := command.Parse("add priority low water the plants time 08:15")
		if got.Add.Text != "water the plants" {
			t.Errorf("Text = %q", got.Add.Text)
		}
		if got.Add.Priority != "low" || got.Add.Time != "08:15" {
			t.Errorf("fields = %+v", got.Add)
		}
	})

	t.Run("notes consume the rest", func(t *testing.T) {
		got, _ := command.Parse("add call dentist notes ask about friday slot")
		if got.Add.Text != "call dentist" {
			t.Errorf("Text = %q", got.Add.Text)
		}
		if got.Add.Notes != "ask about friday slot" {
			t.Errorf("Notes = %q", got.Add.Notes)
		}
	})

	t.Run("keyed fields extracted before notes", func(t *testing.T) {
		got, _ := command.Parse("add pack bags notes remember charger priority high")
		if got.Add.Priority != "high" {
			t.Errorf("Priority = %q", got.Add.Priority)
		}
		if got.Add.Notes != "remember charger" {
			t.Errorf("Notes = %q", got.Add.Notes)
		}
		if got.Add.Text != "pack bags" {
			t.Errorf("Text = %q", got.Add.Text)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		got, ok := command.Parse("add time 09:00 priority med")
		if !ok || got.Kind != command.KindAdd {
			t.Fatalf("Parse = %+v %v", got, ok)
		}
		if got.Add.Text != "" {
			t.Errorf("Text = %q, want empty", got.Add.Text)
		}
	})

	t.Run("invalid priority value left in title", func(t *testing.T) {
		got, _ := command.Parse("add fix bug priority urgent")
		if got.Add.Priority != "" {
			t.Errorf("Priority = %q, want empty", got.Add.Priority)
		}
		if got.Add.Text != "fix bug priority urgent" {
			t.Errorf("Text = %q", got.Add.Text)
		}
	})

	t.Run("empty tag entries dropped", func(t *testing.T) {
		got, _ := command.Parse("add shop tags a,,b,")
		if !reflect.DeepEqual(got.Add.Tags, []string{"a", "b"}) {
			t.Errorf("Tags = %v", got.Add.Tags)
		}
	})
}

func TestParseGreetingAndFallthrough(t *testing.T) {
	for _, in := range []string{"hi", "Hello there", "hey planner"} {
		got, ok := command.Parse(in)
		if !ok || got.Kind != command.KindGreeting {
			t.Errorf("Parse(%q) = %+v %v, want greeting", in, got, ok)
		}
	}

	// "highlight" starts with "hi" but is not a greeting word.
	if _, ok := command.Parse("highlight the report"); ok {
		t.Error("non-greeting text recognized as command")
	}

	for _, in := range []string{"", "   ", "remind me to stretch", "what should i do first?"} {
		if _, ok := command.Parse(in); ok {
			t.Errorf("Parse(%q) unexpectedly recognized", in)
		}
	}
}

func TestParsePriorityOrder(t *testing.T) {
	// "done" with no argument is not the done command; it falls through.
	if _, ok := command.Parse("done"); ok {
		t.Error("bare done should not parse")
	}

	// A task named "tomorrow" must still be completable.
	got, ok := command.Parse("done tomorrow")
	if !ok || got.Kind != command.KindDone || got.Query != "tomorrow" {
		t.Errorf("Parse = %+v %v", got, ok)
	}
}
