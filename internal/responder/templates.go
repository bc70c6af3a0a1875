package responder

import (
	"fmt"
	"strings"
	"time"
)

// Canned French response texts. The tone (light, encouraging, occasional
// emoji) is part of the product: the assistant talks to ADHD users and
// never scolds.

var encouragements = []string{
	"Super initiative !",
	"C'est noté, bravo !",
	"Excellente idée !",
	"Top, on s'organise ! 💪",
	"Bien joué de t'y prendre à l'avance !",
}

const (
	askDateText = "Super ! Et c'est pour quand ce rappel ? 📅"
	askTimeText = "Parfait ! Et à quelle heure ? ⏰"

	fallbackText = "Oups, mon cerveau a buggé ! 😅 Peux-tu reformuler ta demande ?"
)

var askTimeSuggestions = []string{"9h", "14h", "18h"}

var fallbackSuggestions = []string{
	"Réessaye avec une date précise",
	"Ex: demain 15h appeler Paul",
}

var confirmSuggestions = []string{"Confirmer", "Modifier", "Annuler"}

var multiTaskSuggestions = []string{
	"Créer un rappel pour chacune",
	"Garder une seule tâche",
	"Annuler",
}

func askDateSuggestions(now time.Time) []string {
	return []string{
		fmt.Sprintf("Demain (%s)", now.AddDate(0, 0, 1).Format("02/01")),
		"Aujourd'hui",
		"Dans 2 jours",
	}
}

func multiTaskText(tasks []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "J'ai repéré %d tâches distinctes ! 🎯\n", len(tasks))
	for i, task := range tasks {
		fmt.Fprintf(&b, "%d. %s\n", i+1, task)
	}
	b.WriteString("Je te propose de créer un rappel séparé pour chacune, ok ?")
	return b.String()
}

func confirmationText(encouragement, title, date, hour string) string {
	return fmt.Sprintf("%s J'ai compris : « %s » le %s à %s. On confirme ?",
		encouragement, title, date, hour)
}
