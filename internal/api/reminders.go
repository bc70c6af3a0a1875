package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rappel-app/rappel/internal/events"
	"github.com/rappel-app/rappel/internal/store"
)

// ReminderCreateRequest is the create body. Id, status and timestamps are
// assigned server-side.
type ReminderCreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DatetimeISO string  `json:"datetime_iso"`
	Timezone    string  `json:"timezone"`
	Recurrence  *string `json:"recurrence"`
}

// ReminderUpdateRequest is a partial update; absent fields stay untouched.
type ReminderUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DatetimeISO *string `json:"datetime_iso"`
	Status      *string `json:"status"`
	Recurrence  *string `json:"recurrence"`
}

func (s *Server) createReminder(w http.ResponseWriter, r *http.Request) {
	var req ReminderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("corps de requête invalide: %v", err))
		return
	}
	if req.Title == "" || req.DatetimeISO == "" {
		writeError(w, http.StatusBadRequest, "title et datetime_iso sont requis")
		return
	}

	reminder, err := s.store.Create(r.Context(), store.NewReminder{
		Title:       req.Title,
		Description: req.Description,
		DatetimeISO: req.DatetimeISO,
		Timezone:    req.Timezone,
		Recurrence:  req.Recurrence,
	})
	if err != nil {
		s.logger.Error("failed to create reminder", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Erreur lors de la création: %v", err))
		return
	}

	s.publish(events.SubjectReminderCreated,
		events.NewReminderEvent(reminder.ID.String(), reminder.Title, reminder.DatetimeISO, reminder.Status))

	writeJSON(w, http.StatusOK, reminder)
}

func (s *Server) listReminders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	reminders, err := s.store.List(r.Context(), status)
	if err != nil {
		s.logger.Error("failed to list reminders", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Erreur lors de la récupération: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, reminders)
}

func (s *Server) getReminder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Rappel non trouvé")
		return
	}

	reminder, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Rappel non trouvé")
		return
	}
	if err != nil {
		s.logger.Error("failed to get reminder", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Erreur lors de la récupération: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, reminder)
}

func (s *Server) updateReminder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Rappel non trouvé")
		return
	}

	var req ReminderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("corps de requête invalide: %v", err))
		return
	}

	reminder, err := s.store.Update(r.Context(), id, store.ReminderPatch{
		Title:       req.Title,
		Description: req.Description,
		DatetimeISO: req.DatetimeISO,
		Status:      req.Status,
		Recurrence:  req.Recurrence,
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Rappel non trouvé")
		return
	}
	if err != nil {
		s.logger.Error("failed to update reminder", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Erreur lors de la mise à jour: %v", err))
		return
	}

	s.publish(events.SubjectReminderUpdated,
		events.NewReminderEvent(reminder.ID.String(), reminder.Title, reminder.DatetimeISO, reminder.Status))

	writeJSON(w, http.StatusOK, reminder)
}

func (s *Server) deleteReminder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Rappel non trouvé")
		return
	}

	err = s.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Rappel non trouvé")
		return
	}
	if err != nil {
		s.logger.Error("failed to delete reminder", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Erreur lors de la suppression: %v", err))
		return
	}

	s.publish(events.SubjectReminderDeleted, events.NewReminderEvent(id.String(), "", "", ""))

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Rappel supprimé avec succès",
		"id":      id.String(),
	})
}
