package model

// Role identifies the author of a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// TranscriptEntry is one line of a session's conversation.
// Entries are append-only: once written they are never mutated or removed.
type TranscriptEntry struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
