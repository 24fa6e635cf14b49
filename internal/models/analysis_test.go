package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionType(t *testing.T) {
	tests := []struct {
		in      string
		want    QuestionType
		wantErr bool
	}{
		{in: "critical", want: QuestionCritical},
		{in: "confirming", want: QuestionConfirming},
		{in: "follow_up", want: QuestionFollowUp},
		{in: "neutral", want: QuestionNeutral},
		{in: "CRITICAL", want: QuestionCritical},
		{in: "  neutral ", want: QuestionNeutral},
		{in: "rhetorical", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseQuestionType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSentimentType(t *testing.T) {
	tests := []struct {
		in      string
		want    SentimentType
		wantErr bool
	}{
		{in: "positive", want: SentimentPositive},
		{in: "negative", want: SentimentNegative},
		{in: "neutral", want: SentimentNeutral},
		{in: "mixed", want: SentimentMixed},
		{in: "Mixed", want: SentimentMixed},
		{in: "ambivalent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSentimentType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewAnalysisResult_DerivesCounts(t *testing.T) {
	questions := []QuestionAnalysis{
		{QuestionText: "a", QuestionType: QuestionCritical},
		{QuestionText: "b", QuestionType: QuestionCritical},
		{QuestionText: "c", QuestionType: QuestionConfirming},
		{QuestionText: "d", QuestionType: QuestionNeutral},
		{QuestionText: "e", QuestionType: QuestionFollowUp},
	}

	result := NewAnalysisResult("interview.txt", questions, nil, nil, "summary", nil)

	assert.Equal(t, len(result.QuestionAnalysis), result.TotalQuestions)
	assert.Equal(t, 5, result.TotalQuestions)
	assert.Equal(t, 2, result.CriticalQuestions)
	assert.Equal(t, 1, result.ConfirmingQuestions)
}

func TestNewAnalysisResult_DegenerateCase(t *testing.T) {
	result := NewAnalysisResult("interview.txt", nil, nil, nil, "Analysis failed", map[string]any{"error": "boom"})

	assert.Zero(t, result.TotalQuestions)
	assert.Zero(t, result.CriticalQuestions)
	assert.Zero(t, result.ConfirmingQuestions)
	assert.Equal(t, len(result.QuestionAnalysis), result.TotalQuestions)

	// Nil inputs are normalized so the serialized form stays stable.
	assert.NotNil(t, result.QuestionAnalysis)
	assert.NotNil(t, result.BiasedAdjectives)
	assert.NotNil(t, result.EntitySentiments)
	assert.Equal(t, "boom", result.Metadata["error"])
}
