package extractor

import (
	"fmt"
	"time"
)

const systemPromptTemplate = `Tu es un assistant spécialisé dans l'extraction d'informations de rappels depuis des messages en français.

CONTEXTE TEMPOREL:
- Aujourd'hui: %s
- Heure actuelle: %s
- Année: %d

INSTRUCTIONS:
1. Extrais le titre du rappel (l'action principale)
2. Extrais la description si présente (détails optionnels)
3. Convertis TOUTES les dates relatives en dates absolues (format: YYYY-MM-DD)
   - "demain" = %s
   - "dans 2 jours" = %s
4. Si l'heure est spécifiée, extrais-la au format HH:MM
5. Si l'heure n'est PAS spécifiée, marque is_ambiguous=true
6. Crée datetime_iso en combinant date et heure au format ISO 8601 avec timezone +01:00

RÉPONDS UNIQUEMENT AVEC UN OBJET JSON, SANS TEXTE AVANT OU APRÈS:`

const userPromptTemplate = `Message: "%s"

Retourne UN SEUL objet JSON avec cette structure exacte:
{
  "title": "action principale",
  "description": null,
  "date": "YYYY-MM-DD",
  "time": "HH:MM",
  "datetime_iso": "YYYY-MM-DDTHH:MM:00+01:00",
  "timezone": "Europe/Paris",
  "is_ambiguous": false,
  "ambiguity_reason": null
}`

var frenchWeekdays = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// frenchDate renders t as e.g. "lundi 18 novembre 2024". The model is
// prompted in French, so the date context has to be French too — the
// stdlib has no locale support for this.
func frenchDate(t time.Time) string {
	return fmt.Sprintf("%s %d %s %d",
		frenchWeekdays[t.Weekday()], t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// buildPrompts produces the system and user prompts for one extraction call.
// The prompt carries the reference time and explicit relative-date mappings
// so the model never needs its own notion of "now".
func buildPrompts(message string, now time.Time) (system, user string) {
	system = fmt.Sprintf(systemPromptTemplate,
		frenchDate(now),
		now.Format("15:04"),
		now.Year(),
		now.AddDate(0, 0, 1).Format("2006-01-02"),
		now.AddDate(0, 0, 2).Format("2006-01-02"),
	)
	user = fmt.Sprintf(userPromptTemplate, message)
	return system, user
}
