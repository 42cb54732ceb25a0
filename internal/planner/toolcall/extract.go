package toolcall

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedBlock = regexp.MustCompile("(?s)```(?i:json)?\\s*(.+?)\\s*```")

// Extract recovers at most one JSON object from a model reply.
//
// A fenced code block takes precedence, with an optional case-insensitive
// "json" label: its contents must parse as a JSON
// object or extraction gives up entirely, without falling back to brace
// scanning. Absent a fence, the span from the first "{" to the last "}" is
// tried, again strictly. The returned remainder is the reply with the
// extracted span removed and whitespace trimmed; when nothing extracts, the
// remainder is the original text unchanged.
func Extract(text string) (map[string]any, string) {
	if loc := fencedBlock.FindStringSubmatchIndex(text); loc != nil {
		inner := text[loc[2]:loc[3]]
		payload := parseObject(inner)
		if payload == nil {
			return nil, text
		}
		remainder := strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
		return payload, remainder
	}

	open := strings.Index(text, "{")
	close := strings.LastIndex(text, "}")
	if open == -1 || close == -1 || close < open {
		return nil, text
	}
	payload := parseObject(text[open : close+1])
	if payload == nil {
		return nil, text
	}
	remainder := strings.TrimSpace(text[:open] + text[close+1:])
	return payload, remainder
}

func parseObject(candidate string) map[string]any {
	var payload map[string]any
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return nil
	}
	return payload
}
