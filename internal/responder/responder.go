// Package responder turns one user message plus the caller-supplied
// conversation history into a single chat reply: a clarifying question, a
// multi-task split proposal, or a parsed confirmation. It holds no state
// between calls and never returns an error to its caller.
package responder

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/rappel-app/rappel/internal/extractor"
	"github.com/rappel-app/rappel/internal/heuristics"
)

type Responder struct {
	extractor *extractor.Extractor
	logger    *slog.Logger
	now       func() time.Time
	pick      func(n int) int
}

func New(ext *extractor.Extractor, logger *slog.Logger) *Responder {
	return &Responder{
		extractor: ext,
		logger:    logger,
		now:       time.Now,
		pick:      rand.Intn,
	}
}

// Respond evaluates the rule cascade for one turn. Rules are checked in a
// fixed order; the first match wins. Any failure along the way falls back to
// a fixed apologetic question so the conversation never breaks.
func (r *Responder) Respond(ctx context.Context, message string, history []Turn) ChatResponse {
	now := r.now()
	hc := scanHistory(history)

	// 1. Bare time answer to our own "à quelle heure ?" — combine with the
	// task and date recovered from history and parse the whole thing.
	if hc.state == awaitingTime && isBareTime(message) && hc.task != "" && hc.date != "" {
		full := hc.task + " " + hc.date + " " + strings.TrimSpace(message)
		r.logger.Info("combining history into full message", "message", full)
		return r.confirm(ctx, full, now)
	}

	// 2. Bare date answer to our own "pour quand ?" — ask for the time next.
	if hc.state == awaitingDate && isBareDate(message) {
		return ChatResponse{
			Response:    askTimeText,
			Type:        TypeQuestion,
			Suggestions: askTimeSuggestions,
		}
	}

	// 3. Several tasks in one message — propose a split.
	if heuristics.HasMultipleTasks(message) {
		if tasks := heuristics.SplitTasks(message); len(tasks) > 1 {
			return ChatResponse{
				Response:    multiTaskText(tasks),
				Type:        TypeMultipleTasks,
				Suggestions: multiTaskSuggestions,
			}
		}
	}

	// 4–5. Missing date or time — one question at a time.
	if !heuristics.HasDate(message) {
		return ChatResponse{
			Response:    askDateText,
			Type:        TypeQuestion,
			Suggestions: askDateSuggestions(now),
		}
	}
	if !heuristics.HasTime(message) {
		return ChatResponse{
			Response:    askTimeText,
			Type:        TypeQuestion,
			Suggestions: askTimeSuggestions,
		}
	}

	// 6. Date and time both present — extract and confirm.
	return r.confirm(ctx, message, now)
}

func (r *Responder) confirm(ctx context.Context, message string, now time.Time) ChatResponse {
	parsed, err := r.extractor.Extract(ctx, message, now)
	if err != nil {
		// 7. Fallback: swallow the error, keep the conversation going.
		r.logger.Error("extraction failed, falling back", "error", err)
		return ChatResponse{
			Response:    fallbackText,
			Type:        TypeQuestion,
			Suggestions: fallbackSuggestions,
		}
	}

	enc := encouragements[r.pick(len(encouragements))]
	return ChatResponse{
		Response:        confirmationText(enc, parsed.Title, orUnknown(parsed.Date), orUnknown(parsed.Time)),
		Type:            TypeConfirmation,
		Suggestions:     confirmSuggestions,
		ParsedReminders: []extractor.ParsedReminder{*parsed},
	}
}

func orUnknown(s *string) string {
	if s == nil || *s == "" {
		return "?"
	}
	return *s
}
