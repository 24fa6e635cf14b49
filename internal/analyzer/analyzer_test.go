package analyzer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interviewlens/interviewlens/internal/models"
)

// stubClient serves canned replies keyed by a substring of the prompt, so
// each facet can be scripted independently.
type stubClient struct {
	replies map[string]string
	err     error
	panics  bool
	calls   []string
}

func (s *stubClient) Complete(_ context.Context, _ string, prompt string, _ float64) (string, error) {
	s.calls = append(s.calls, prompt)
	if s.panics {
		panic("stub exploded")
	}
	if s.err != nil {
		return "", s.err
	}
	for marker, reply := range s.replies {
		if strings.Contains(prompt, marker) {
			return reply, nil
		}
	}
	return "", nil
}

// Facet prompts are told apart by their expected top-level key; the summary
// prompt is the only one that never mentions one.
const summaryMarker = "Give a concise summary"

func newTestAnalyzer(t *testing.T, client CompletionClient) *Analyzer {
	t.Helper()
	a, err := New(client, "gpt-4", "English", 0.1)
	require.NoError(t, err)
	return a
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, "gpt-4", "English", 0.1)
	assert.Error(t, err)

	_, err = New(&stubClient{}, "gpt-4", "English", 3.0)
	assert.Error(t, err)

	a, err := New(&stubClient{}, "", "", 0.1)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4", a.model)
	assert.Equal(t, "Dutch", a.language)
}

func TestAnalyzeText_EmptyQuestionsIsNotAnError(t *testing.T) {
	client := &stubClient{replies: map[string]string{
		`"questions"`:         `{"questions": []}`,
		`"biased_adjectives"`: `{"biased_adjectives": []}`,
		`"entity_sentiments"`: `{"entity_sentiments": []}`,
		summaryMarker:         "Nothing noteworthy found.",
	}}

	result := newTestAnalyzer(t, client).AnalyzeText(context.Background(), "some text")

	assert.Equal(t, DirectInputSource, result.TextFilePath)
	assert.Zero(t, result.TotalQuestions)
	assert.Equal(t, "Nothing noteworthy found.", result.Summary)
	assert.NotContains(t, result.Metadata, "error")
}

func TestAnalyzeText_FullRun(t *testing.T) {
	client := &stubClient{replies: map[string]string{
		`"questions"`: `{"questions": [
			{"question": "Why?", "type": "critical", "confidence": 0.9},
			{"question": "Agreed?", "type": "confirming", "confidence": 0.8},
			{"question": "When?", "type": "neutral", "confidence": 0.7}
		]}`,
		`"biased_adjectives"`: `{"biased_adjectives": [
			{"adjective": "reckless", "target_person": "Smith", "bias_type": "negative"}
		]}`,
		`"entity_sentiments"`: `{"entity_sentiments": [
			{"entity_name": "Acme", "entity_type": "company", "sentiment": "negative",
			 "supporting_quotes": ["a terrible awful failure"]}
		]}`,
		summaryMarker: "The interview was adversarial.",
	}}

	result := newTestAnalyzer(t, client).AnalyzeText(context.Background(), "interview transcript")

	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, 1, result.CriticalQuestions)
	assert.Equal(t, 1, result.ConfirmingQuestions)
	assert.Len(t, result.BiasedAdjectives, 1)
	assert.Len(t, result.EntitySentiments, 1)
	assert.Equal(t, "The interview was adversarial.", result.Summary)
	assert.Equal(t, "gpt-4", result.Metadata["model_used"])
	assert.Equal(t, "English", result.Metadata["language"])
	assert.Equal(t, 0.1, result.Metadata["temperature"])

	// Three facets plus the summary, sequentially.
	assert.Len(t, client.calls, 4)
}

func TestAnalyzeText_ProseReplyDegradesFacetOnly(t *testing.T) {
	client := &stubClient{replies: map[string]string{
		`"questions"`:         "Sorry, I cannot help.",
		`"biased_adjectives"`: `{"biased_adjectives": [{"adjective": "bold", "target_person": "X", "bias_type": "positive"}]}`,
		`"entity_sentiments"`: `{"entity_sentiments": []}`,
		summaryMarker:         "done",
	}}

	result := newTestAnalyzer(t, client).AnalyzeText(context.Background(), "text")

	// The malformed questions reply yields no findings, but orchestration
	// continued through the remaining facets.
	assert.Zero(t, result.TotalQuestions)
	assert.Len(t, result.BiasedAdjectives, 1)
	assert.Equal(t, "done", result.Summary)
	assert.NotContains(t, result.Metadata, "error")
}

func TestAnalyzeText_TransportErrorDegradesToEmptyFacets(t *testing.T) {
	client := &stubClient{err: errors.New("connection refused")}

	result := newTestAnalyzer(t, client).AnalyzeText(context.Background(), "text")

	assert.Zero(t, result.TotalQuestions)
	assert.Empty(t, result.BiasedAdjectives)
	assert.Empty(t, result.EntitySentiments)
	assert.Equal(t, summaryFallback, result.Summary)
	// Degraded, not degenerate: every guard held, so no error key.
	assert.NotContains(t, result.Metadata, "error")
}

func TestAnalyzeText_PanicYieldsDegenerateResult(t *testing.T) {
	client := &stubClient{panics: true}

	result := newTestAnalyzer(t, client).AnalyzeText(context.Background(), "text")

	assert.Zero(t, result.TotalQuestions)
	assert.Zero(t, result.CriticalQuestions)
	assert.Zero(t, result.ConfirmingQuestions)
	assert.Equal(t, len(result.QuestionAnalysis), result.TotalQuestions)
	assert.Contains(t, result.Summary, "Analysis failed")
	assert.Contains(t, result.Metadata["error"], "stub exploded")
}

func TestAnalyzeFile(t *testing.T) {
	client := &stubClient{replies: map[string]string{summaryMarker: "summary"}}
	a := newTestAnalyzer(t, client)

	_, err := a.AnalyzeFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "interview.txt")
	require.NoError(t, os.WriteFile(path, []byte("some statement"), 0644))

	result, err := a.AnalyzeFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, result.TextFilePath)
}

func TestFormatReport(t *testing.T) {
	result := models.NewAnalysisResult("interview.txt",
		[]models.QuestionAnalysis{{QuestionText: "Why?", QuestionType: models.QuestionCritical}},
		nil, nil, "A short summary.", map[string]any{"model_used": "gpt-4"})

	short, err := FormatReport(result, false)
	require.NoError(t, err)
	assert.Contains(t, short, "Total questions: 1")
	assert.Contains(t, short, "Critical questions: 1")
	assert.Contains(t, short, "A short summary.")

	verbose, err := FormatReport(result, true)
	require.NoError(t, err)
	assert.Contains(t, verbose, `"text_file_path": "interview.txt"`)
	assert.Contains(t, verbose, `"total_questions": 1`)
}

func TestSaveJSON_PersistedFieldNames(t *testing.T) {
	result := models.NewAnalysisResult("interview.txt", nil, nil, nil, "s", nil)
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, SaveJSON(result, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, field := range []string{
		"text_file_path", "total_questions", "critical_questions",
		"confirming_questions", "biased_adjectives", "entity_sentiments",
		"question_analysis", "summary", "metadata",
	} {
		assert.Contains(t, string(data), `"`+field+`"`)
	}
}
