package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/rappel-app/rappel/internal/extractor"
	"github.com/rappel-app/rappel/internal/responder"
	"github.com/rappel-app/rappel/internal/store"
)

// ReminderStore is the persistence surface the handlers need.
type ReminderStore interface {
	Create(ctx context.Context, nr store.NewReminder) (*store.Reminder, error)
	List(ctx context.Context, status string) ([]store.Reminder, error)
	Get(ctx context.Context, id uuid.UUID) (*store.Reminder, error)
	Update(ctx context.Context, id uuid.UUID, patch store.ReminderPatch) (*store.Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MessageParser extracts a structured reminder from free-form text.
type MessageParser interface {
	Extract(ctx context.Context, message string, now time.Time) (*extractor.ParsedReminder, error)
}

// Chatter produces one conversational reply per turn.
type Chatter interface {
	Respond(ctx context.Context, message string, history []responder.Turn) responder.ChatResponse
}

// Publisher announces reminder lifecycle events. May be nil (disabled).
type Publisher interface {
	Publish(subject string, data any) error
}

type Server struct {
	router  *chi.Mux
	port    int
	store   ReminderStore
	parser  MessageParser
	chatter Chatter
	events  Publisher
	logger  *slog.Logger
}

func NewServer(port int, st ReminderStore, parser MessageParser, chatter Chatter, events Publisher, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:  router,
		port:    port,
		store:   st,
		parser:  parser,
		chatter: chatter,
		events:  events,
		logger:  logger,
	}

	router.Get("/health", s.health)
	router.Route("/api", func(r chi.Router) {
		r.Get("/", s.root)
		r.Post("/parse-message", s.parseMessage)
		r.Post("/chat", s.chat)
		r.Route("/reminders", func(r chi.Router) {
			r.Post("/", s.createReminder)
			r.Get("/", s.listReminders)
			r.Get("/{id}", s.getReminder)
			r.Patch("/{id}", s.updateReminder)
			r.Delete("/{id}", s.deleteReminder)
		})
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "API de rappels par message IA"})
}

// publish sends a lifecycle event when events are configured. Failures are
// logged, never surfaced to the request.
func (s *Server) publish(subject string, data any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(subject, data); err != nil {
		s.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
