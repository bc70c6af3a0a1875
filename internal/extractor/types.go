package extractor

// ParsedReminder is the structured guess the model produces from a free-form
// French message. It is transient: shown to the caller or used to build a
// stored reminder, never persisted itself.
type ParsedReminder struct {
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	Date            *string `json:"date"`     // YYYY-MM-DD
	Time            *string `json:"time"`     // HH:MM
	DatetimeISO     *string `json:"datetime_iso"`
	Timezone        string  `json:"timezone"`
	IsAmbiguous     bool    `json:"is_ambiguous"`
	AmbiguityReason *string `json:"ambiguity_reason"`
}
