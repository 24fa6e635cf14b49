package models

import (
	"fmt"
	"strings"
)

// QuestionType classifies a question found in an interview transcript.
type QuestionType string

const (
	QuestionCritical   QuestionType = "critical"
	QuestionConfirming QuestionType = "confirming"
	QuestionFollowUp   QuestionType = "follow_up"
	QuestionNeutral    QuestionType = "neutral"
)

// ParseQuestionType coerces a model-supplied tag into a QuestionType.
// Casing and surrounding whitespace are forgiven; anything else is rejected.
func ParseQuestionType(s string) (QuestionType, error) {
	switch QuestionType(strings.ToLower(strings.TrimSpace(s))) {
	case QuestionCritical:
		return QuestionCritical, nil
	case QuestionConfirming:
		return QuestionConfirming, nil
	case QuestionFollowUp:
		return QuestionFollowUp, nil
	case QuestionNeutral:
		return QuestionNeutral, nil
	}
	return "", fmt.Errorf("unknown question type %q", s)
}

// SentimentType classifies the polarity of statements about an entity.
type SentimentType string

const (
	SentimentPositive SentimentType = "positive"
	SentimentNegative SentimentType = "negative"
	SentimentNeutral  SentimentType = "neutral"
	SentimentMixed    SentimentType = "mixed"
)

// ParseSentimentType coerces a model-supplied tag into a SentimentType.
func ParseSentimentType(s string) (SentimentType, error) {
	switch SentimentType(strings.ToLower(strings.TrimSpace(s))) {
	case SentimentPositive:
		return SentimentPositive, nil
	case SentimentNegative:
		return SentimentNegative, nil
	case SentimentNeutral:
		return SentimentNeutral, nil
	case SentimentMixed:
		return SentimentMixed, nil
	}
	return "", fmt.Errorf("unknown sentiment type %q", s)
}

// QuestionAnalysis is one classified question.
type QuestionAnalysis struct {
	QuestionText string       `json:"question_text"`
	QuestionType QuestionType `json:"question_type"`
	Confidence   float64      `json:"confidence"`
	Reasoning    string       `json:"reasoning"`
	Context      string       `json:"context"`
}

// BiasAnalysis is one non-neutral adjective aimed at a person. BiasType is
// free-form model output ("positief", "pejoratief", ...), not an enum.
type BiasAnalysis struct {
	Adjective    string  `json:"adjective"`
	TargetPerson string  `json:"target_person"`
	BiasType     string  `json:"bias_type"`
	Confidence   float64 `json:"confidence"`
	Reasoning    string  `json:"reasoning"`
	Context      string  `json:"context"`
}

// EntitySentiment is the polarity of statements about one person, company or
// party, with the quotes the model based its judgement on.
type EntitySentiment struct {
	EntityName       string        `json:"entity_name"`
	EntityType       string        `json:"entity_type"`
	Sentiment        SentimentType `json:"sentiment"`
	Confidence       float64       `json:"confidence"`
	Reasoning        string        `json:"reasoning"`
	Context          string        `json:"context"`
	SupportingQuotes []string      `json:"supporting_quotes"`
}

// AnalysisResult bundles all facets of one analysis run. The JSON layout is a
// compatibility surface; field names must not change.
type AnalysisResult struct {
	TextFilePath        string             `json:"text_file_path"`
	TotalQuestions      int                `json:"total_questions"`
	CriticalQuestions   int                `json:"critical_questions"`
	ConfirmingQuestions int                `json:"confirming_questions"`
	BiasedAdjectives    []BiasAnalysis     `json:"biased_adjectives"`
	EntitySentiments    []EntitySentiment  `json:"entity_sentiments"`
	QuestionAnalysis    []QuestionAnalysis `json:"question_analysis"`
	Summary             string             `json:"summary"`
	Metadata            map[string]any     `json:"metadata"`
}

// NewAnalysisResult derives the question counters from the question list, so
// counts and list contents cannot drift apart. Nil slices are normalized to
// empty ones to keep the serialized form stable.
func NewAnalysisResult(
	source string,
	questions []QuestionAnalysis,
	biases []BiasAnalysis,
	sentiments []EntitySentiment,
	summary string,
	metadata map[string]any,
) AnalysisResult {
	if questions == nil {
		questions = []QuestionAnalysis{}
	}
	if biases == nil {
		biases = []BiasAnalysis{}
	}
	if sentiments == nil {
		sentiments = []EntitySentiment{}
	}
	if metadata == nil {
		metadata = map[string]any{}
	}

	critical, confirming := 0, 0
	for _, q := range questions {
		switch q.QuestionType {
		case QuestionCritical:
			critical++
		case QuestionConfirming:
			confirming++
		}
	}

	return AnalysisResult{
		TextFilePath:        source,
		TotalQuestions:      len(questions),
		CriticalQuestions:   critical,
		ConfirmingQuestions: confirming,
		BiasedAdjectives:    biases,
		EntitySentiments:    sentiments,
		QuestionAnalysis:    questions,
		Summary:             summary,
		Metadata:            metadata,
	}
}
