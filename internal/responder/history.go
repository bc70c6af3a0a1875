package responder

import (
	"regexp"
	"strings"
)

// How many history turns the scan looks back over. Enough to cover a
// question/answer pair for both the date and the time.
const historyWindow = 6

type pendingState int

const (
	stateNone pendingState = iota
	awaitingDate
	awaitingTime
)

// historyContext is what the responder can recover from the caller-supplied
// history. There is no session store: this is rebuilt from scratch on every
// call by re-scanning the last few turns.
type historyContext struct {
	state pendingState
	task  string
	date  string
}

var (
	bareTimeRe    = regexp.MustCompile(`^(?:à\s+)?(\d{1,2}h\d{0,2}|\d{1,2}:\d{2})$`)
	inNDaysRe     = regexp.MustCompile(`^dans\s+\d+\s+jours?$`)
	bareDateWords = map[string]bool{
		"aujourd'hui":    true,
		"demain":         true,
		"après-demain":   true,
		"ce soir":        true,
		"ce matin":       true,
		"cet après-midi": true,
		"lundi":          true,
		"mardi":          true,
		"mercredi":       true,
		"jeudi":          true,
		"vendredi":       true,
		"samedi":         true,
		"dimanche":       true,
	}
)

// isBareTime reports whether the message is nothing but a time value,
// e.g. "15h", "15h30", "à 15:00".
func isBareTime(msg string) bool {
	return bareTimeRe.MatchString(strings.ToLower(strings.TrimSpace(msg)))
}

// isBareDate reports whether the message is nothing but a relative date
// word, e.g. "demain" or "dans 2 jours".
func isBareDate(msg string) bool {
	lower := strings.ToLower(strings.TrimSpace(msg))
	return bareDateWords[lower] || inNDaysRe.MatchString(lower)
}

// scanHistory rebuilds the conversation context from the last few turns:
// which field the assistant asked for last, plus any task text and date
// answer recoverable from earlier user turns.
func scanHistory(history []Turn) historyContext {
	var hc historyContext

	start := 0
	if len(history) > historyWindow {
		start = len(history) - historyWindow
	}
	window := history[start:]

	for i := len(window) - 1; i >= 0; i-- {
		turn := window[i]
		lower := strings.ToLower(turn.Content)

		switch turn.Role {
		case "assistant":
			if hc.state == stateNone {
				switch {
				case strings.Contains(lower, "quelle heure"):
					hc.state = awaitingTime
				case strings.Contains(lower, "pour quand") || strings.Contains(lower, "quel jour"):
					hc.state = awaitingDate
				}
			}
		case "user":
			switch {
			case isBareDate(turn.Content):
				if hc.date == "" {
					hc.date = strings.TrimSpace(turn.Content)
				}
			case isBareTime(turn.Content):
				// a previous time answer; nothing to recover from it
			default:
				if hc.task == "" {
					hc.task = strings.TrimSpace(turn.Content)
				}
			}
		}
	}

	return hc
}
