package extractor

import (
	"strings"
	"testing"
	"time"
)

func TestFrenchDate(t *testing.T) {
	d := time.Date(2024, 11, 18, 0, 0, 0, 0, time.UTC) // a Monday
	if got := frenchDate(d); got != "lundi 18 novembre 2024" {
		t.Errorf("frenchDate = %q", got)
	}

	d = time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC) // a Sunday
	if got := frenchDate(d); got != "dimanche 31 août 2025" {
		t.Errorf("frenchDate = %q", got)
	}
}

func TestBuildPrompts_RelativeDateMappings(t *testing.T) {
	now := time.Date(2024, 11, 18, 14, 30, 0, 0, time.UTC)
	system, user := buildPrompts("demain 15h appeler Paul", now)

	if !strings.Contains(system, "lundi 18 novembre 2024") {
		t.Error("system prompt missing today's date")
	}
	if !strings.Contains(system, "14:30") {
		t.Error("system prompt missing current time")
	}
	if !strings.Contains(system, `"demain" = 2024-11-19`) {
		t.Error("system prompt missing demain mapping")
	}
	if !strings.Contains(system, `"dans 2 jours" = 2024-11-20`) {
		t.Error("system prompt missing dans-2-jours mapping")
	}
	if !strings.Contains(user, `Message: "demain 15h appeler Paul"`) {
		t.Error("user prompt missing the message")
	}
}

func TestBuildPrompts_MonthRollover(t *testing.T) {
	now := time.Date(2024, 11, 30, 9, 0, 0, 0, time.UTC)
	system, _ := buildPrompts("demain", now)
	if !strings.Contains(system, `"demain" = 2024-12-01`) {
		t.Error("expected demain mapping to cross the month boundary")
	}
}
