package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interviewlens/interviewlens/internal/models"
)

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "see the report",
		RemoveLinks("see [the report](https://example.com/report)"))
	assert.Equal(t, "visit ",
		RemoveLinks("visit https://example.com/page"))
}

func TestMarkdownToText(t *testing.T) {
	out := MarkdownToText("# Heading\n\nSome **bold** text with [a link](https://example.com).")
	assert.NotContains(t, out, "#")
	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "https://")
	assert.Contains(t, out, "bold")
}

func TestScore_Labels(t *testing.T) {
	_, label := Score("This is wonderful, fantastic, truly great news!")
	assert.Equal(t, models.SentimentPositive, label)

	_, label = Score("This is horrible, terrible, an awful disaster.")
	assert.Equal(t, models.SentimentNegative, label)

	_, label = Score("The meeting is on Tuesday.")
	assert.Equal(t, models.SentimentNeutral, label)
}

func TestCheckQuotes(t *testing.T) {
	sentiments := []models.EntitySentiment{
		{
			EntityName:       "Acme",
			Sentiment:        models.SentimentNegative,
			SupportingQuotes: []string{"a horrible, awful failure"},
		},
		{
			EntityName:       "Beta",
			Sentiment:        models.SentimentNegative,
			SupportingQuotes: []string{"wonderful, fantastic, great work"},
		},
		{
			EntityName: "NoQuotes",
			Sentiment:  models.SentimentPositive,
			// Nothing local to score.
		},
		{
			EntityName:       "Mixed Co",
			Sentiment:        models.SentimentMixed,
			SupportingQuotes: []string{"great service but a horrible price"},
		},
	}

	checks := CheckQuotes(sentiments)
	require.Len(t, checks, 3)

	assert.Equal(t, "Acme", checks[0].EntityName)
	assert.True(t, checks[0].Agrees)

	assert.Equal(t, "Beta", checks[1].EntityName)
	assert.False(t, checks[1].Agrees)
	assert.Equal(t, models.SentimentPositive, checks[1].Lexicon)

	// "mixed" has no lexicon counterpart and never counts as disagreement.
	assert.Equal(t, "Mixed Co", checks[2].EntityName)
	assert.True(t, checks[2].Agrees)
}
