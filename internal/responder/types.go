package responder

import "github.com/rappel-app/rappel/internal/extractor"

// Response kinds, mirrored verbatim in the HTTP payload.
const (
	TypeQuestion      = "question"
	TypeSuggestion    = "suggestion"
	TypeConfirmation  = "confirmation"
	TypeMultipleTasks = "multiple_tasks"
)

// Turn is one entry of the caller-supplied conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse is the responder's answer for one turn.
type ChatResponse struct {
	Response        string                     `json:"response"`
	Type            string                     `json:"type"`
	Suggestions     []string                   `json:"suggestions,omitempty"`
	ParsedReminders []extractor.ParsedReminder `json:"parsed_reminders,omitempty"`
}
