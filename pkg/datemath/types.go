package datemath

// DateIDFormat is the canonical YYYY-MM-DD layout used to key daily task lists.
const DateIDFormat = "2006-01-02"

// TimeOfDayFormat is the HH:MM layout carried on timed tasks.
const TimeOfDayFormat = "15:04"
