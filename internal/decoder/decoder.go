// Package decoder imposes the response contract on otherwise-unstructured
// completion output: strip wrapper noise, parse the JSON envelope, and build
// typed records entry by entry so one bad entry never discards the batch.
package decoder

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/interviewlens/interviewlens/internal/models"
)

// Top-level keys the completion replies are expected to carry.
const (
	KeyQuestions        = "questions"
	KeyBiasedAdjectives = "biased_adjectives"
	KeyEntitySentiments = "entity_sentiments"
)

// Decoder converts raw completion text into typed records. It carries its
// own diagnostics handle instead of relying on the package-global logger.
type Decoder struct {
	logger *slog.Logger
}

// New returns a Decoder logging through the given handle. A nil logger
// falls back to slog.Default.
func New(logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Decoder{logger: logger}
}

// wire formats as the model emits them. Field names differ from the typed
// records for questions ("question"/"type"), so these stay separate from the
// models package.
type questionEntry struct {
	Question   string  `json:"question"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
	Context    string  `json:"context"`
}

type biasEntry struct {
	Adjective    string  `json:"adjective"`
	TargetPerson string  `json:"target_person"`
	BiasType     string  `json:"bias_type"`
	Confidence   float64 `json:"confidence"`
	Reasoning    string  `json:"reasoning"`
	Context      string  `json:"context"`
}

type sentimentEntry struct {
	EntityName       string   `json:"entity_name"`
	EntityType       string   `json:"entity_type"`
	Sentiment        string   `json:"sentiment"`
	Confidence       float64  `json:"confidence"`
	Reasoning        string   `json:"reasoning"`
	Context          string   `json:"context"`
	SupportingQuotes []string `json:"supporting_quotes"`
}

// Questions decodes the "questions" array. Entries whose type tag is not one
// of the four known classes are skipped; everything else survives.
func (d *Decoder) Questions(raw string) []models.QuestionAnalysis {
	entries := d.arrayEntries(raw, KeyQuestions)

	questions := make([]models.QuestionAnalysis, 0, len(entries))
	for i, entry := range entries {
		var q questionEntry
		if err := json.Unmarshal(entry, &q); err != nil {
			d.skipEntry(KeyQuestions, i, err)
			continue
		}
		qType, err := models.ParseQuestionType(q.Type)
		if err != nil {
			d.skipEntry(KeyQuestions, i, err)
			continue
		}
		questions = append(questions, models.QuestionAnalysis{
			QuestionText: q.Question,
			QuestionType: qType,
			Confidence:   q.Confidence,
			Reasoning:    q.Reasoning,
			Context:      q.Context,
		})
	}
	return questions
}

// Biases decodes the "biased_adjectives" array. The bias type is free-form
// text, so there is no tag to reject on; only malformed entries are skipped.
func (d *Decoder) Biases(raw string) []models.BiasAnalysis {
	entries := d.arrayEntries(raw, KeyBiasedAdjectives)

	biases := make([]models.BiasAnalysis, 0, len(entries))
	for i, entry := range entries {
		var b biasEntry
		if err := json.Unmarshal(entry, &b); err != nil {
			d.skipEntry(KeyBiasedAdjectives, i, err)
			continue
		}
		biases = append(biases, models.BiasAnalysis{
			Adjective:    b.Adjective,
			TargetPerson: b.TargetPerson,
			BiasType:     b.BiasType,
			Confidence:   b.Confidence,
			Reasoning:    b.Reasoning,
			Context:      b.Context,
		})
	}
	return biases
}

// Sentiments decodes the "entity_sentiments" array. Unknown polarity tags
// skip the entry; missing supporting_quotes default to an empty slice.
func (d *Decoder) Sentiments(raw string) []models.EntitySentiment {
	entries := d.arrayEntries(raw, KeyEntitySentiments)

	sentiments := make([]models.EntitySentiment, 0, len(entries))
	for i, entry := range entries {
		var s sentimentEntry
		if err := json.Unmarshal(entry, &s); err != nil {
			d.skipEntry(KeyEntitySentiments, i, err)
			continue
		}
		polarity, err := models.ParseSentimentType(s.Sentiment)
		if err != nil {
			d.skipEntry(KeyEntitySentiments, i, err)
			continue
		}
		quotes := s.SupportingQuotes
		if quotes == nil {
			quotes = []string{}
		}
		sentiments = append(sentiments, models.EntitySentiment{
			EntityName:       s.EntityName,
			EntityType:       s.EntityType,
			Sentiment:        polarity,
			Confidence:       s.Confidence,
			Reasoning:        s.Reasoning,
			Context:          s.Context,
			SupportingQuotes: quotes,
		})
	}
	return sentiments
}

// arrayEntries extracts the array under the expected top-level key. An empty
// body, a parse failure or a missing key all degrade to zero entries; only
// the parse failure is worth a log line.
func (d *Decoder) arrayEntries(raw, key string) []json.RawMessage {
	cleaned := CleanResponse(raw)
	if cleaned == "" {
		return nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		d.logger.Warn("[Decoder] Response is not valid JSON, treating as no findings",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil
	}

	arrayRaw, ok := envelope[key]
	if !ok {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(arrayRaw, &entries); err != nil {
		d.logger.Warn("[Decoder] Expected key does not hold an array",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil
	}
	return entries
}

func (d *Decoder) skipEntry(key string, index int, err error) {
	d.logger.Warn("[Decoder] Skipping malformed entry",
		slog.String("key", key),
		slog.Int("index", index),
		slog.String("error", err.Error()))
}

// CleanResponse strips the wrapper noise models like to add around JSON:
// surrounding whitespace, markdown code fences and curly quote variants.
func CleanResponse(response string) string {
	response = strings.TrimSpace(response)

	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	response = strings.ReplaceAll(response, "“", `"`)
	response = strings.ReplaceAll(response, "”", `"`)

	return strings.TrimSpace(response)
}
