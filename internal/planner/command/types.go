package command

// Kind identifies a recognized deterministic command.
type Kind string

const (
	KindHelp         Kind = "help"
	KindList         Kind = "list"
	KindClearDone    Kind = "clear_done"
	KindCarryForward Kind = "carry_forward"
	KindSwitchDate   Kind = "switch_date"
	KindToday        Kind = "today"
	KindTomorrow     Kind = "tomorrow"
	KindDone         Kind = "done"
	KindDelete       Kind = "delete"
	KindAdd          Kind = "add"
	KindGreeting     Kind = "greeting"
)

// ListFilter selects which tasks a list command shows.
type ListFilter string

const (
	ListAll    ListFilter = "all"
	ListUndone ListFilter = "undone"
	ListDone   ListFilter = "done"
)

// Command is a parsed deterministic command.
// Only the fields relevant to Kind are populated.
type Command struct {
	Kind   Kind
	Filter ListFilter // list
	Query  string     // done, delete
	Date   string     // switch_date, raw argument (shape validated by the caller)
	Add    AddFields  // add
}

// AddFields holds the parsed parts of an add command.
type AddFields struct {
	Text     string
	Time     string
	Priority string
	Tags     []string
	Notes    string
}
