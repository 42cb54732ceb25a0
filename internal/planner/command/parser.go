// Package command recognizes the planner's deterministic chat commands.
//
// Patterns are checked in a fixed priority order and the first match wins.
// Anything unrecognized returns no command and is delegated to the
// language-model fallback by the caller.
package command

import (
	"regexp"
	"strings"
)

var (
	timeField     = regexp.MustCompile(`(?i)\btime\s+(\d{1,2}:\d{2})\b`)
	priorityField = regexp.MustCompile(`(?i)\bpriority\s+(low|med|high)\b`)
	tagsField     = regexp.MustCompile(`(?i)\btags\s+(\S+)`)
	notesField    = regexp.MustCompile(`(?i)\bnotes\s+(.+)$`)
	greeting      = regexp.MustCompile(`(?i)^(hi|hello|hey)\b`)
)

// Parse recognizes a deterministic command in rawInput.
// Input is whitespace-normalized; keywords are case-insensitive but argument
// text keeps its original casing.
func Parse(rawInput string) (Command, bool) {
	normalized := strings.Join(strings.Fields(rawInput), " ")
	if normalized == "" {
		return Command{}, false
	}
	lower := strings.ToLower(normalized)

	switch lower {
	case "help", "commands":
		return Command{Kind: KindHelp}, true
	case "list":
		return Command{Kind: KindList, Filter: ListAll}, true
	case "what's left", "whats left":
		return Command{Kind: KindList, Filter: ListUndone}, true
	case "show done":
		return Command{Kind: KindList, Filter: ListDone}, true
	case "clear done":
		return Command{Kind: KindClearDone}, true
	case "carry forward":
		return Command{Kind: KindCarryForward}, true
	case "today":
		return Command{Kind: KindToday}, true
	case "tomorrow":
		return Command{Kind: KindTomorrow}, true
	}

	if arg, ok := argAfter(normalized, lower, "switch "); ok {
		return Command{Kind: KindSwitchDate, Date: arg}, true
	}

	if arg, ok := argAfter(normalized, lower, "done "); ok {
		return Command{Kind: KindDone, Query: arg}, true
	}

	if arg, ok := argAfter(normalized, lower, "delete "); ok {
		return Command{Kind: KindDelete, Query: arg}, true
	}

	if arg, ok := argAfter(normalized, lower, "add "); ok {
		return Command{Kind: KindAdd, Add: parseAddFields(arg)}, true
	}

	if greeting.MatchString(normalized) {
		return Command{Kind: KindGreeting}, true
	}

	return Command{}, false
}

// argAfter returns the argument following a command keyword prefix.
func argAfter(normalized, lower, prefix string) (string, bool) {
	if !strings.HasPrefix(lower, prefix) {
		return "", false
	}
	arg := strings.TrimSpace(normalized[len(prefix):])
	return arg, true
}

// parseAddFields extracts the optional keyed fields of an add command.
// The keyed fields (time, priority, tags) may appear in any position and are
// stripped from the text; notes consumes everything after the notes keyword.
// Whatever remains is the task title.
func parseAddFields(arg string) AddFields {
	fields := AddFields{}
	rest := arg

	if m := timeField.FindStringSubmatch(rest); m != nil {
		fields.Time = m[1]
		rest = strings.Replace(rest, m[0], "", 1)
	}

	if m := priorityField.FindStringSubmatch(rest); m != nil {
		fields.Priority = strings.ToLower(m[1])
		rest = strings.Replace(rest, m[0], "", 1)
	}

	if m := tagsField.FindStringSubmatch(rest); m != nil {
		for _, tag := range strings.Split(m[1], ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				fields.Tags = append(fields.Tags, tag)
			}
		}
		rest = strings.Replace(rest, m[0], "", 1)
	}

	rest = strings.Join(strings.Fields(rest), " ")

	if m := notesField.FindStringSubmatch(rest); m != nil {
		fields.Notes = strings.TrimSpace(m[1])
		rest = strings.Replace(rest, m[0], "", 1)
	}

	fields.Text = strings.Join(strings.Fields(rest), " ")
	return fields
}
