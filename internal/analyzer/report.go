package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/interviewlens/interviewlens/internal/lexicon"
	"github.com/interviewlens/interviewlens/internal/models"
)

// FormatReport renders a result for the terminal. The default form is the
// short human-readable summary; verbose mode dumps the full indented JSON
// document plus the lexicon cross-check.
func FormatReport(result models.AnalysisResult, verbose bool) (string, error) {
	if verbose {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal result: %w", err)
		}
		var b strings.Builder
		b.Write(data)
		b.WriteString("\n")
		b.WriteString(formatLexiconChecks(result))
		return b.String(), nil
	}

	var b strings.Builder
	b.WriteString("Analysis completed successfully!\n")
	fmt.Fprintf(&b, "Total questions: %d\n", result.TotalQuestions)
	fmt.Fprintf(&b, "Critical questions: %d\n", result.CriticalQuestions)
	fmt.Fprintf(&b, "Confirming questions: %d\n", result.ConfirmingQuestions)
	fmt.Fprintf(&b, "Biased adjectives found: %d\n", len(result.BiasedAdjectives))
	fmt.Fprintf(&b, "Entities analyzed: %d\n", len(result.EntitySentiments))
	fmt.Fprintf(&b, "\nSummary:\n%s\n", result.Summary)
	return b.String(), nil
}

func formatLexiconChecks(result models.AnalysisResult) string {
	checks := lexicon.CheckQuotes(result.EntitySentiments)
	if len(checks) == 0 {
		return ""
	}

	agreeing := 0
	for _, c := range checks {
		if c.Agrees {
			agreeing++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nLexicon cross-check: %d/%d entities agree with VADER\n", agreeing, len(checks))
	for _, c := range checks {
		marker := "agree"
		if !c.Agrees {
			marker = "DISAGREE"
		}
		fmt.Fprintf(&b, "  %-8s %s: model=%s lexicon=%s (compound %.2f)\n",
			marker, c.EntityName, c.LLMLabel, c.Lexicon, c.Compound)
	}
	return b.String()
}

// SaveJSON writes the result as an indented JSON document. The field layout
// is the persisted compatibility surface.
func SaveJSON(result models.AnalysisResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
