package datemath

import (
	"fmt"
	"regexp"
	"time"
)

// dateIDShape matches the YYYY-MM-DD shape. It is deliberately a shape check
// only: "2025-02-30" passes. Calendar validity is not this package's contract.
var dateIDShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// timeOfDayShape matches the HH:MM shape with a valid 24h clock range.
var timeOfDayShape = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Parser resolves date IDs relative to a fixed IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a date parser for the given IANA timezone string,
// e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// ValidID reports whether s has the YYYY-MM-DD shape.
func ValidID(s string) bool {
	return dateIDShape.MatchString(s)
}

// ValidTimeOfDay reports whether s is a well-formed HH:MM clock time.
func ValidTimeOfDay(s string) bool {
	return timeOfDayShape.MatchString(s)
}

// Today returns the date ID for baseTime in the parser's timezone.
func (p *Parser) Today(baseTime time.Time) string {
	return baseTime.In(p.location).Format(DateIDFormat)
}

// Tomorrow returns the date ID one calendar day after baseTime.
func (p *Parser) Tomorrow(baseTime time.Time) string {
	return baseTime.In(p.location).AddDate(0, 0, 1).Format(DateIDFormat)
}

// NextDay returns the date ID one calendar day after dateID.
// Fails when dateID is not a parseable calendar date (shape-valid IDs such as
// "2025-02-30" have no well-defined successor).
func (p *Parser) NextDay(dateID string) (string, error) {
	t, err := time.ParseInLocation(DateIDFormat, dateID, p.location)
	if err != nil {
		return "", fmt.Errorf("not a calendar date %q: %w", dateID, err)
	}
	return t.AddDate(0, 0, 1).Format(DateIDFormat), nil
}

// At combines a date ID and an HH:MM clock time into an absolute time
// in the parser's timezone.
func (p *Parser) At(dateID, timeOfDay string) (time.Time, error) {
	t, err := time.ParseInLocation(DateIDFormat+" "+TimeOfDayFormat, dateID+" "+timeOfDay, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", dateID, timeOfDay, err)
	}
	return t, nil
}

// StartOfDay returns midnight at the start of dateID in the parser's timezone.
func (p *Parser) StartOfDay(dateID string) (time.Time, error) {
	t, err := time.ParseInLocation(DateIDFormat, dateID, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("not a calendar date %q: %w", dateID, err)
	}
	return t, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}
