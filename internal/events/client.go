package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// Subjects for reminder lifecycle events.
const (
	SubjectReminderCreated = "rappel.reminder.created"
	SubjectReminderUpdated = "rappel.reminder.updated"
	SubjectReminderDeleted = "rappel.reminder.deleted"
)

// ReminderEvent is the payload published on every store mutation. It
// announces the change only — nothing subscribes to deliver reminders.
type ReminderEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	DatetimeISO string `json:"datetime_iso,omitempty"`
	Status      string `json:"status,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// NewReminderEvent builds an event payload stamped with the current time.
func NewReminderEvent(id, title, datetimeISO, status string) ReminderEvent {
	return ReminderEvent{
		ID:          id,
		Title:       title,
		DatetimeISO: datetimeISO,
		Status:      status,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}

type Client struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewClient(url, token string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, logger: logger}, nil
}

func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

func (c *Client) Close() {
	c.conn.Close()
}
