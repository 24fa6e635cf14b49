// Package analyzer orchestrates the four analysis facets over one piece of
// political text: questions, bias, sentiment, then a summary derived from
// the first three. Facet failures degrade to "no findings"; nothing escapes
// the top-level entry points except input errors.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/interviewlens/interviewlens/config"
	"github.com/interviewlens/interviewlens/internal/cache"
	"github.com/interviewlens/interviewlens/internal/decoder"
	"github.com/interviewlens/interviewlens/internal/lexicon"
	"github.com/interviewlens/interviewlens/internal/models"
	"github.com/interviewlens/interviewlens/internal/prompts"
)

// DirectInputSource marks results produced from text passed in directly
// rather than read from a file.
const DirectInputSource = "direct_text_input"

const summaryFallback = "Could not generate a summary due to an error."

// CompletionClient is the completion gateway as the orchestrator sees it.
type CompletionClient interface {
	Complete(ctx context.Context, model, prompt string, temperature float64) (string, error)
}

// Analyzer runs the full analysis sequence. Configuration is captured at
// construction and read-only afterwards.
type Analyzer struct {
	model       string
	language    string
	temperature float64

	client CompletionClient
	cache  *cache.ResponseCache
	dec    *decoder.Decoder
	logger *slog.Logger
}

// Option tweaks an Analyzer at construction time.
type Option func(*Analyzer)

// WithCache attaches an optional completion-response cache.
func WithCache(c *cache.ResponseCache) Option {
	return func(a *Analyzer) { a.cache = c }
}

// WithLogger routes diagnostics through the given handle instead of the
// process default.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// New builds an Analyzer. Empty model or language fall back to the package
// defaults; the temperature must be in the endpoint's accepted range.
func New(client CompletionClient, model, language string, temperature float64, opts ...Option) (*Analyzer, error) {
	if client == nil {
		return nil, fmt.Errorf("analyzer: completion client is required")
	}
	if err := config.ValidateTemperature(temperature); err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	if model == "" {
		model = config.DefaultModel
	}
	if language == "" {
		language = config.DefaultLanguage
	}

	a := &Analyzer{
		model:       model,
		language:    language,
		temperature: temperature,
		client:      client,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.dec = decoder.New(a.logger)
	return a, nil
}

// AnalyzeFile reads a UTF-8 text file and analyzes its content. Input errors
// (missing file, unreadable path) are returned; analysis failures are not.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (models.AnalysisResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("read input file: %w", err)
	}

	a.logger.Info("[Analyzer] Analyzing text file", slog.String("path", path))
	return a.analyze(ctx, path, string(content)), nil
}

// AnalyzeText analyzes text content directly. It never fails: the worst
// outcome is a degenerate result that self-reports the error.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) models.AnalysisResult {
	a.logger.Info("[Analyzer] Analyzing provided text content")
	return a.analyze(ctx, DirectInputSource, text)
}

func (a *Analyzer) analyze(ctx context.Context, source, text string) (result models.AnalysisResult) {
	// Outer boundary: per-facet guards should make this unreachable, but a
	// caller must never see a panic, only a result that says what happened.
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("[Analyzer] Unexpected failure, returning degenerate result",
				slog.Any("panic", r))
			md := a.metadata()
			md["error"] = fmt.Sprint(r)
			result = models.NewAnalysisResult(source, nil, nil, nil,
				fmt.Sprintf("Analysis failed: %v", r), md)
		}
	}()

	questions := a.analyzeQuestions(ctx, text)
	biases := a.analyzeBias(ctx, text)
	sentiments := a.analyzeSentiment(ctx, text)

	a.crossCheckSentiments(sentiments)

	counts := prompts.SummaryCounts{
		TotalQuestions:      len(questions),
		CriticalQuestions:   countQuestions(questions, models.QuestionCritical),
		ConfirmingQuestions: countQuestions(questions, models.QuestionConfirming),
		BiasedAdjectives:    len(biases),
		EntitySentiments:    len(sentiments),
	}
	summary := a.createSummary(ctx, counts)

	return models.NewAnalysisResult(source, questions, biases, sentiments, summary, a.metadata())
}

func (a *Analyzer) analyzeQuestions(ctx context.Context, text string) []models.QuestionAnalysis {
	raw := a.facetResponse(ctx, decoder.KeyQuestions, prompts.QuestionAnalysis(text, a.language))
	return a.dec.Questions(raw)
}

func (a *Analyzer) analyzeBias(ctx context.Context, text string) []models.BiasAnalysis {
	raw := a.facetResponse(ctx, decoder.KeyBiasedAdjectives, prompts.BiasAnalysis(text, a.language))
	return a.dec.Biases(raw)
}

func (a *Analyzer) analyzeSentiment(ctx context.Context, text string) []models.EntitySentiment {
	raw := a.facetResponse(ctx, decoder.KeyEntitySentiments, prompts.SentimentAnalysis(text, a.language))
	return a.dec.Sentiments(raw)
}

func (a *Analyzer) createSummary(ctx context.Context, counts prompts.SummaryCounts) string {
	summary, err := a.client.Complete(ctx, a.model, prompts.Summary(counts, a.language), a.temperature)
	if err != nil {
		a.logger.Error("[Analyzer] Summary generation failed",
			slog.String("error", err.Error()))
		return summaryFallback
	}
	return summary
}

// facetResponse performs the single request/response exchange for one facet,
// consulting the optional cache first. Transport errors are logged here and
// degrade the facet to an empty reply; they never propagate.
func (a *Analyzer) facetResponse(ctx context.Context, facet, prompt string) string {
	key := cache.Key(facet, a.model, a.language, a.temperature, prompt)
	if raw, ok := a.cache.Get(ctx, key); ok {
		a.logger.Debug("[Analyzer] Cache hit", slog.String("facet", facet))
		return raw
	}

	raw, err := a.client.Complete(ctx, a.model, prompt, a.temperature)
	if err != nil {
		a.logger.Error("[Analyzer] Facet completion failed",
			slog.String("facet", facet),
			slog.String("error", err.Error()))
		return ""
	}

	a.cache.Set(ctx, key, raw)
	return raw
}

// crossCheckSentiments scores supporting quotes with the local lexicon and
// logs LLM/lexicon disagreements. The records themselves are left alone.
func (a *Analyzer) crossCheckSentiments(sentiments []models.EntitySentiment) {
	for _, check := range lexicon.CheckQuotes(sentiments) {
		if check.Agrees {
			continue
		}
		a.logger.Warn("[Analyzer] Lexicon disagrees with model sentiment",
			slog.String("entity", check.EntityName),
			slog.String("model_label", string(check.LLMLabel)),
			slog.String("lexicon_label", string(check.Lexicon)),
			slog.Float64("compound", check.Compound))
	}
}

func (a *Analyzer) metadata() map[string]any {
	return map[string]any{
		"model_used":  a.model,
		"language":    a.language,
		"temperature": a.temperature,
	}
}

func countQuestions(questions []models.QuestionAnalysis, t models.QuestionType) int {
	n := 0
	for _, q := range questions {
		if q.QuestionType == t {
			n++
		}
	}
	return n
}
