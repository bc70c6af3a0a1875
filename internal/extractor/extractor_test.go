package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rappel-app/rappel/internal/openai"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeModel returns an httptest server that always replies with the given
// text as the assistant message.
func fakeModel(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": reply}, "finish_reason": "stop"},
			},
		})
	}))
}

var testNow = time.Date(2024, 11, 18, 14, 30, 0, 0, time.UTC) // a Monday

func TestExtract_Success(t *testing.T) {
	server := fakeModel(t, `{
		"title": "appeler Paul",
		"description": null,
		"date": "2024-11-19",
		"time": "15:00",
		"datetime_iso": "2024-11-19T15:00:00+01:00",
		"timezone": "Europe/Paris",
		"is_ambiguous": false,
		"ambiguity_reason": null
	}`)
	defer server.Close()

	llm := openai.NewClient("test-key", "test-model")
	llm.SetTestTransport(server.URL)

	ext := New(llm, discardLogger())
	parsed, err := ext.Extract(context.Background(), "demain 15h appeler Paul", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if parsed.Title != "appeler Paul" {
		t.Errorf("title = %q", parsed.Title)
	}
	if parsed.Date == nil || *parsed.Date != "2024-11-19" {
		t.Errorf("date = %v", parsed.Date)
	}
	if parsed.DatetimeISO == nil || *parsed.DatetimeISO != "2024-11-19T15:00:00+01:00" {
		t.Errorf("datetime_iso = %v", parsed.DatetimeISO)
	}
	if parsed.IsAmbiguous {
		t.Error("expected unambiguous result")
	}
}

func TestExtract_StripsMarkdownFences(t *testing.T) {
	server := fakeModel(t, "```json\n{\"title\": \"acheter du pain\", \"timezone\": \"Europe/Paris\", \"is_ambiguous\": true, \"ambiguity_reason\": \"pas d'heure\", \"description\": null, \"date\": null, \"time\": null, \"datetime_iso\": null}\n```")
	defer server.Close()

	llm := openai.NewClient("test-key", "test-model")
	llm.SetTestTransport(server.URL)

	ext := New(llm, discardLogger())
	parsed, err := ext.Extract(context.Background(), "acheter du pain", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Title != "acheter du pain" {
		t.Errorf("title = %q", parsed.Title)
	}
	if !parsed.IsAmbiguous {
		t.Error("expected ambiguous result")
	}
}

func TestExtract_SurroundingProse(t *testing.T) {
	server := fakeModel(t, `Voici le résultat: {"title": "rdv médecin", "description": null, "date": null, "time": null, "datetime_iso": null, "timezone": "", "is_ambiguous": true, "ambiguity_reason": null} J'espère que ça aide!`)
	defer server.Close()

	llm := openai.NewClient("test-key", "test-model")
	llm.SetTestTransport(server.URL)

	ext := New(llm, discardLogger())
	parsed, err := ext.Extract(context.Background(), "rdv médecin", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Title != "rdv médecin" {
		t.Errorf("title = %q", parsed.Title)
	}
	if parsed.Timezone != "Europe/Paris" {
		t.Errorf("expected default timezone, got %q", parsed.Timezone)
	}
}

func TestExtract_MalformedReply(t *testing.T) {
	server := fakeModel(t, "désolé, je n'ai pas compris")
	defer server.Close()

	llm := openai.NewClient("test-key", "test-model")
	llm.SetTestTransport(server.URL)

	ext := New(llm, discardLogger())
	_, err := ext.Extract(context.Background(), "demain 15h appeler Paul", testNow)
	if !errors.Is(err, ErrMalformedReply) {
		t.Fatalf("expected ErrMalformedReply, got %v", err)
	}
}

func TestExtract_UnknownFieldFailsClosed(t *testing.T) {
	server := fakeModel(t, `{"title": "x y z", "surprise": true}`)
	defer server.Close()

	llm := openai.NewClient("test-key", "test-model")
	llm.SetTestTransport(server.URL)

	ext := New(llm, discardLogger())
	_, err := ext.Extract(context.Background(), "test", testNow)
	if !errors.Is(err, ErrMalformedReply) {
		t.Fatalf("expected ErrMalformedReply for unknown field, got %v", err)
	}
}

func TestExtract_MissingTitle(t *testing.T) {
	server := fakeModel(t, `{"title": "", "description": null, "date": null, "time": null, "datetime_iso": null, "timezone": "Europe/Paris", "is_ambiguous": true, "ambiguity_reason": null}`)
	defer server.Close()

	llm := openai.NewClient("test-key", "test-model")
	llm.SetTestTransport(server.URL)

	ext := New(llm, discardLogger())
	_, err := ext.Extract(context.Background(), "test", testNow)
	if !errors.Is(err, ErrMalformedReply) {
		t.Fatalf("expected ErrMalformedReply for empty title, got %v", err)
	}
}

func TestExtract_NoCredential(t *testing.T) {
	llm := openai.NewClient("", "test-model")
	ext := New(llm, discardLogger())

	_, err := ext.Extract(context.Background(), "demain 15h appeler Paul", testNow)
	if !errors.Is(err, openai.ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
}
