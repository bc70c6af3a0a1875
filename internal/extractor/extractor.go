package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rappel-app/rappel/internal/openai"
)

// ErrMalformedReply means the model's reply could not be decoded into a
// ParsedReminder, even after stripping fences and extracting the JSON span.
var ErrMalformedReply = errors.New("extractor: malformed model reply")

const defaultTimezone = "Europe/Paris"

type Extractor struct {
	llm    *openai.Client
	logger *slog.Logger
}

func New(llm *openai.Client, logger *slog.Logger) *Extractor {
	return &Extractor{llm: llm, logger: logger}
}

// Extract sends the message to the model with a prompt anchored at now and
// decodes the reply into a ParsedReminder. One attempt only: a failed parse
// surfaces as an error, there is no retry and no caching.
func (e *Extractor) Extract(ctx context.Context, message string, now time.Time) (*ParsedReminder, error) {
	system, user := buildPrompts(message, now)

	e.logger.Info("extracting reminder", "message_len", len(message))

	raw, err := e.llm.Complete(ctx, system, user, 1024)
	if err != nil {
		return nil, fmt.Errorf("llm extraction: %w", err)
	}

	cleaned := cleanReply(raw)
	if cleaned == "" {
		e.logger.Error("no JSON object in model reply", "raw", raw)
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedReply)
	}

	var parsed ParsedReminder
	dec := json.NewDecoder(bytes.NewReader([]byte(cleaned)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&parsed); err != nil {
		e.logger.Error("failed to decode model reply", "error", err, "raw", raw)
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	if parsed.Title == "" {
		return nil, fmt.Errorf("%w: missing title", ErrMalformedReply)
	}
	if parsed.Timezone == "" {
		parsed.Timezone = defaultTimezone
	}

	e.logger.Info("extraction complete",
		"title", parsed.Title,
		"ambiguous", parsed.IsAmbiguous,
	)

	return &parsed, nil
}
