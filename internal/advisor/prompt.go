package advisor

import (
	"fmt"
	"strings"

	"mbeck/finance-analyzer/internal/models"
	"mbeck/finance-analyzer/internal/pipeline"
)

// defaultQuestion is used when the caller supplies no question of their own.
const defaultQuestion = "Analysiere diese Daten. Wo gibt es Sparpotential? Gibt es ungewöhnlich hohe Ausgaben? Gib eine kurze, motivierende Zusammenfassung."

// BuildPrompt renders the system context, the category breakdown, the outlier
// transactions and the user question into one generation prompt.
func BuildPrompt(summaries []pipeline.CategorySummary, topOutflows []models.Transaction, userPrompt string) string {
	var b strings.Builder

	b.WriteString("Du bist ein persönlicher Finanzassistent namens 'Finance Analyzer AI'.\n")
	b.WriteString("Analysiere die Finanzdaten des Nutzers und gib eine kurze, knackige Analyse (max. 150-200 Wörter).\n")
	b.WriteString("Antworte IMMER auf DEUTSCH und verwende exakt diese Struktur:\n\n")
	b.WriteString("1. **Zusammenfassung**: Ein kurzer Satz zum Gesamtzustand der Finanzen.\n")
	b.WriteString("2. **Top-Sparpotenzial**: Identifiziere die 2 größten Ausgaben-Kategorien und gib jeweils einen konkreten, praktischen Tipp zum Sparen.\n")
	b.WriteString("3. **Auffälligkeiten**: Erwähne ungewöhnlich hohe Einzelbeträge aus den Top-Transaktionen.\n")
	b.WriteString("4. **Motivation**: Ein kurzer, positiver Abschlusssatz.\n\n")
	b.WriteString("Nutze Markdown (Fett, Listen) für eine gute Lesbarkeit.\n\n")

	b.WriteString("### Kategorien-Zusammenfassung:\n")
	for _, cat := range summaries {
		fmt.Fprintf(&b, "- %s: %s € (%d Transaktionen)\n", cat.Name, cat.Amount.StringFixed(2), cat.Count)
	}

	b.WriteString("\n### Top Einzeltransaktionen (potenzielle Ausreißer):\n")
	for _, tx := range topOutflows {
		fmt.Fprintf(&b, "- %s: %s | %s € | %s\n", tx.BookingDate, tx.Recipient, tx.Amount.StringFixed(2), tx.Purpose)
	}

	b.WriteString("\n### Frage:\n")
	if userPrompt == "" {
		userPrompt = defaultQuestion
	}
	b.WriteString(userPrompt)
	b.WriteString("\n")

	return b.String()
}
