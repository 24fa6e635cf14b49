// Package lexicon gives the analyzer a local second opinion on entity
// sentiment. The LLM verdict is authoritative; VADER only scores the
// supporting quotes so obvious disagreements can be logged and reported.
package lexicon

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/interviewlens/interviewlens/internal/models"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// RemoveLinks strips markdown links (keeping their text) and bare URLs.
func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// MarkdownToText flattens markdown to plain text so URL syntax and emphasis
// markers do not skew the lexicon scores.
func MarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := strings.Join(strings.Fields(string(output)), " ")
	return RemoveLinks(plain)
}

// Score returns the VADER compound score and polarity label for a text.
func Score(text string) (float64, models.SentimentType) {
	scores := analyzer.PolarityScores(MarkdownToText(text))
	return scores.Compound, labelFor(scores.Compound)
}

func labelFor(compound float64) models.SentimentType {
	switch {
	case compound >= 0.20:
		return models.SentimentPositive
	case compound <= -0.20:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// QuoteCheck is the lexicon verdict over one record's supporting quotes.
type QuoteCheck struct {
	EntityName string
	LLMLabel   models.SentimentType
	Lexicon    models.SentimentType
	Compound   float64
	Agrees     bool
}

// CheckQuotes scores the joined supporting quotes of each entity sentiment.
// Records without quotes are skipped; there is nothing local to score. A
// "mixed" LLM verdict is never counted as disagreement, the lexicon has no
// such label.
func CheckQuotes(sentiments []models.EntitySentiment) []QuoteCheck {
	var checks []QuoteCheck
	for _, s := range sentiments {
		if len(s.SupportingQuotes) == 0 {
			continue
		}
		compound, label := Score(strings.Join(s.SupportingQuotes, " "))
		agrees := label == s.Sentiment || s.Sentiment == models.SentimentMixed
		checks = append(checks, QuoteCheck{
			EntityName: s.EntityName,
			LLMLabel:   s.Sentiment,
			Lexicon:    label,
			Compound:   compound,
			Agrees:     agrees,
		})
	}
	return checks
}
