// Package toolcall defines the tagged-union action payload the language model
// is asked to emit, and recovers such payloads from raw reply text.
package toolcall

// Action is the discriminant tag of a tool-call payload.
type Action string

const (
	ActionCreate     Action = "create"
	ActionUpdate     Action = "update"
	ActionDelete     Action = "delete"
	ActionComplete   Action = "complete"
	ActionUncomplete Action = "uncomplete"
	ActionSwitchDate Action = "switch_date"
)

// Call is a decoded tool-call. Only the fields belonging to Action carry
// meaning; required-field enforcement is the executor's job so that missing
// fields produce user-facing messages instead of decode errors.
type Call struct {
	Action  Action
	Known   bool   // false when the action tag is missing or unrecognized
	RawTag  string // the unrecognized tag, for failure messages
	Task    TaskFields
	Match   string // match.text for update/delete/complete/uncomplete
	Changes ChangeFields
	Date    string // switch_date
	Message string
}

// TaskFields holds the task body of a create call.
type TaskFields struct {
	Text     string
	Time     string
	Priority string
	Tags     []string
	Notes    string
	Done     bool
}

// ChangeFields is the sparse patch of an update call. Nil means the field was
// absent or carried a value of the wrong type; such fields are dropped, never
// defaulted.
type ChangeFields struct {
	Text     *string
	Time     *string
	Priority *string
	Tags     *[]string
	Notes    *string
	Done     *bool
}

// Decode maps an untrusted generic JSON object into a typed Call.
// Wrong-typed fields are dropped rather than rejected; unknown keys are
// ignored. Decode never fails: an unrecognizable action tag yields
// Known=false and the executor reports it.
func Decode(payload map[string]any) Call {
	call := Call{Message: stringAt(payload, "message")}

	tag, _ := payload["action"].(string)
	call.RawTag = tag

	switch Action(tag) {
	case ActionCreate, ActionUpdate, ActionDelete, ActionComplete, ActionUncomplete, ActionSwitchDate:
		call.Action = Action(tag)
		call.Known = true
	default:
		return call
	}

	switch call.Action {
	case ActionCreate:
		if task, ok := payload["task"].(map[string]any); ok {
			call.Task = decodeTaskFields(task)
		}
	case ActionUpdate:
		call.Match = matchText(payload)
		if changes, ok := payload["changes"].(map[string]any); ok {
			call.Changes = decodeChangeFields(changes)
		}
	case ActionDelete, ActionComplete, ActionUncomplete:
		call.Match = matchText(payload)
	case ActionSwitchDate:
		call.Date = stringAt(payload, "date")
	}

	return call
}

func matchText(payload map[string]any) string {
	m, ok := payload["match"].(map[string]any)
	if !ok {
		return ""
	}
	return stringAt(m, "text")
}

func decodeTaskFields(m map[string]any) TaskFields {
	fields := TaskFields{
		Text:     stringAt(m, "text"),
		Time:     stringAt(m, "time"),
		Priority: stringAt(m, "priority"),
		Notes:    stringAt(m, "notes"),
	}
	if done, ok := m["done"].(bool); ok {
		fields.Done = done
	}
	if tags, ok := m["tags"].([]any); ok {
		fields.Tags = stringSlice(tags)
	}
	return fields
}

func decodeChangeFields(m map[string]any) ChangeFields {
	var changes ChangeFields
	if v, ok := m["text"].(string); ok {
		changes.Text = &v
	}
	if v, ok := m["time"].(string); ok {
		changes.Time = &v
	}
	if v, ok := m["priority"].(string); ok {
		changes.Priority = &v
	}
	if v, ok := m["notes"].(string); ok {
		changes.Notes = &v
	}
	if v, ok := m["done"].(bool); ok {
		changes.Done = &v
	}
	if raw, ok := m["tags"].([]any); ok {
		tags := stringSlice(raw)
		changes.Tags = &tags
	}
	return changes
}

// stringSlice keeps only the string entries, preserving order.
func stringSlice(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
