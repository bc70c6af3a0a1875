// Package heuristics provides the keyword and regex gates that decide
// whether a French message carries enough information to attempt extraction.
package heuristics

import (
	"regexp"
	"strings"
)

// Keyword-based date references. Membership tests only: "et" inside a
// proper noun or "mardi" inside "Mardi Gras" still counts. That is a
// known limitation of the keyword approach, kept on purpose.
var dateKeywords = []string{
	"aujourd'hui",
	"demain",
	"après-demain",
	"ce soir",
	"ce matin",
	"cet après-midi",
	"lundi",
	"mardi",
	"mercredi",
	"jeudi",
	"vendredi",
	"samedi",
	"dimanche",
	"semaine prochaine",
}

var (
	// "12/11" or "3/1"
	numericDateRe = regexp.MustCompile(`\b\d{1,2}/\d{1,2}\b`)
	// "20 novembre"
	monthDateRe = regexp.MustCompile(`\b\d{1,2}\s+(janvier|février|mars|avril|mai|juin|juillet|août|septembre|octobre|novembre|décembre)`)
	// "15h", "15h30" or "15:30"
	timeRe = regexp.MustCompile(`\b\d{1,2}h\d{0,2}\b|\b\d{1,2}:\d{2}\b`)
	// task separators, also used by SplitTasks
	separatorRe = regexp.MustCompile(`(?i)\s+et\s+|,|\s+puis\s+|\s+après\s+|\s+ensuite\s+|\s+aussi\s+`)
)

const (
	multiTaskWordThreshold = 5
	minFragmentLen         = 4
)

// HasDate reports whether the text contains a relative-date keyword or a
// date-like numeric pattern.
func HasDate(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range dateKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return numericDateRe.MatchString(lower) || monthDateRe.MatchString(lower)
}

// HasTime reports whether the text contains an hour pattern such as
// "15h", "15h30" or "15:30".
func HasTime(text string) bool {
	return timeRe.MatchString(strings.ToLower(text))
}

// HasMultipleTasks reports whether the text looks like it encodes more than
// one task: a separator word or comma is present and the message is longer
// than a few words.
func HasMultipleTasks(text string) bool {
	if !separatorRe.MatchString(text) {
		return false
	}
	return len(strings.Fields(text)) > multiTaskWordThreshold
}

// SplitTasks segments the text on the task separators and returns the
// fragments, discarding anything shorter than four characters. Fragments are
// not validated as well-formed tasks.
func SplitTasks(text string) []string {
	var tasks []string
	for _, part := range separatorRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		if len([]rune(part)) < minFragmentLen {
			continue
		}
		tasks = append(tasks, part)
	}
	return tasks
}
