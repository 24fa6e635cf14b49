// Package prompts holds the fixed instruction templates sent to the
// completion endpoint. The input text is interpolated verbatim; the strict
// output-format block is what makes the replies machine-decodable.
package prompts

import "fmt"

const questionTemplate = `Analyze the following text, written in %s, and identify every question it contains.
Classify each question as:
- "critical": critical counter-questions that challenge or cast doubt
- "confirming": affirming follow-up questions that confirm
- "follow_up": neutral follow-up questions asking for clarification
- "neutral": ordinary neutral questions

Text:
%s

### STRICT OUTPUT FORMAT
You MUST return only valid JSON, with no extra text before or after it:
{
    "questions": [
        {
            "question": "the question text",
            "type": "critical|confirming|follow_up|neutral",
            "confidence": 0.95,
            "reasoning": "why this classification",
            "context": "context around the question"
        }
    ]
}

If no questions are found, return: {"questions": []}`

const biasTemplate = `Analyze the following text, written in %s, and identify every non-neutral,
qualifying adjective used to describe a person. Look for words that express a
judgement, prejudice or bias.

Text:
%s

### STRICT OUTPUT FORMAT
You MUST return only valid JSON, with no extra text before or after it:
{
    "biased_adjectives": [
        {
            "adjective": "the adjective",
            "target_person": "name of the person",
            "bias_type": "positive/negative/pejorative/etc",
            "confidence": 0.95,
            "reasoning": "why this is biased",
            "context": "context of use"
        }
    ]
}

If no biased adjectives are found, return: {"biased_adjectives": []}`

const sentimentTemplate = `Analyze the following text, written in %s, and identify every statement made
about companies, parties and persons. Decide whether each entity is spoken
about positively, negatively or neutrally.

Text:
%s

### STRICT OUTPUT FORMAT
You MUST return only valid JSON, with no extra text before or after it:
{
    "entity_sentiments": [
        {
            "entity_name": "name of the entity",
            "entity_type": "person|company|party",
            "sentiment": "positive|negative|neutral|mixed",
            "confidence": 0.95,
            "reasoning": "why this sentiment",
            "context": "context of the statement",
            "supporting_quotes": ["quote 1", "quote 2"]
        }
    ]
}

If no entities are found, return: {"entity_sentiments": []}`

const summaryTemplate = `Write a summary, in %s, of the following analysis results:

Question analysis:
- Total questions: %d
- Critical questions: %d
- Confirming questions: %d

Bias analysis:
- Biased adjectives found: %d

Sentiment analysis:
- Entities analyzed: %d

Give a concise summary of the most important findings and patterns in this text.`

// QuestionAnalysis renders the question-classification instruction.
func QuestionAnalysis(text, language string) string {
	return fmt.Sprintf(questionTemplate, language, text)
}

// BiasAnalysis renders the biased-adjective instruction.
func BiasAnalysis(text, language string) string {
	return fmt.Sprintf(biasTemplate, language, text)
}

// SentimentAnalysis renders the entity-sentiment instruction.
func SentimentAnalysis(text, language string) string {
	return fmt.Sprintf(sentimentTemplate, language, text)
}

// SummaryCounts carries the facet counts the summary prompt consumes instead
// of raw text.
type SummaryCounts struct {
	TotalQuestions      int
	CriticalQuestions   int
	ConfirmingQuestions int
	BiasedAdjectives    int
	EntitySentiments    int
}

// Summary renders the summary instruction over the counts of the three
// preceding facets.
func Summary(counts SummaryCounts, language string) string {
	return fmt.Sprintf(summaryTemplate,
		language,
		counts.TotalQuestions,
		counts.CriticalQuestions,
		counts.ConfirmingQuestions,
		counts.BiasedAdjectives,
		counts.EntitySentiments,
	)
}
