package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/interviewlens/interviewlens/config"
	"github.com/interviewlens/interviewlens/internal/analyzer"
	"github.com/interviewlens/interviewlens/internal/cache"
	"github.com/interviewlens/interviewlens/internal/clients"
	"github.com/interviewlens/interviewlens/internal/logging"
	"github.com/interviewlens/interviewlens/internal/models"
	"github.com/interviewlens/interviewlens/internal/subtitles"
)

const usage = `Usage: analyzer <command> [options]

Commands:
  analyze-file <path>   Analyze a text or .srt file
  analyze-text <text>   Analyze text directly
  list-models           List supported LLM models
  list-languages        List supported analysis languages

Options (analyze-file, analyze-text):
  -m, --model        LLM model to use
  -l, --language     Language for analysis
  -t, --temperature  Temperature for LLM responses
  -o, --output       Output file for results (JSON)
  -v, --verbose      Verbose output
`

type analyzeFlags struct {
	model       string
	language    string
	temperature float64
	output      string
	verbose     bool
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "analyze-file", "analyze-text":
		runAnalyze(os.Args[1], os.Args[2:])
	case "list-models":
		logging.InitLogger(false)
		fmt.Println("Supported LLM models:")
		for _, m := range config.SupportedModels() {
			fmt.Printf("  - %s\n", m)
		}
	case "list-languages":
		logging.InitLogger(false)
		fmt.Println("Supported languages:")
		for _, l := range config.SupportedLanguages() {
			fmt.Printf("  - %s\n", l)
		}
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runAnalyze(command string, args []string) {
	model, language, temperature, err := config.FromEnv()
	if err != nil {
		fail(false, err)
	}

	flags := analyzeFlags{model: model, language: language, temperature: temperature}
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	fs.StringVar(&flags.model, "model", flags.model, "LLM model to use")
	fs.StringVar(&flags.model, "m", flags.model, "LLM model to use (shorthand)")
	fs.StringVar(&flags.language, "language", flags.language, "Language for analysis")
	fs.StringVar(&flags.language, "l", flags.language, "Language for analysis (shorthand)")
	fs.Float64Var(&flags.temperature, "temperature", flags.temperature, "Temperature for LLM responses")
	fs.Float64Var(&flags.temperature, "t", flags.temperature, "Temperature for LLM responses (shorthand)")
	fs.StringVar(&flags.output, "output", "", "Output file for results (JSON)")
	fs.StringVar(&flags.output, "o", "", "Output file for results (JSON, shorthand)")
	fs.BoolVar(&flags.verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&flags.verbose, "v", false, "Verbose output (shorthand)")
	fs.Parse(args)

	logging.InitLogger(flags.verbose)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: %s requires an argument\n", command)
		os.Exit(1)
	}
	target := fs.Arg(0)

	a := buildAnalyzer(flags)
	ctx := context.Background()

	var result models.AnalysisResult
	switch command {
	case "analyze-file":
		if _, err := os.Stat(target); err != nil {
			fail(flags.verbose, fmt.Errorf("file not found: %s", target))
		}
		if strings.EqualFold(filepath.Ext(target), ".srt") {
			text, err := subtitles.ExtractFile(target)
			if err != nil {
				fail(flags.verbose, err)
			}
			result = a.AnalyzeText(ctx, text)
			result.TextFilePath = target
		} else {
			var err error
			result, err = a.AnalyzeFile(ctx, target)
			if err != nil {
				fail(flags.verbose, err)
			}
		}
	case "analyze-text":
		result = a.AnalyzeText(ctx, target)
	}

	report, err := analyzer.FormatReport(result, flags.verbose)
	if err != nil {
		fail(flags.verbose, err)
	}
	fmt.Print(report)

	if flags.output != "" {
		if err := analyzer.SaveJSON(result, flags.output); err != nil {
			fail(flags.verbose, err)
		}
		fmt.Printf("Results saved to: %s\n", flags.output)
	}
}

func buildAnalyzer(flags analyzeFlags) *analyzer.Analyzer {
	client, err := clients.NewOpenAIClient()
	if err != nil {
		fail(flags.verbose, err)
	}

	opts := []analyzer.Option{}
	responseCache, err := cache.NewFromEnv(slog.Default())
	if err != nil {
		slog.Warn("[Analyzer] Response cache unavailable, continuing without",
			slog.String("error", err.Error()))
	} else if responseCache != nil {
		opts = append(opts, analyzer.WithCache(responseCache))
	}

	a, err := analyzer.New(client, flags.model, flags.language, flags.temperature, opts...)
	if err != nil {
		fail(flags.verbose, err)
	}
	return a
}

func fail(verbose bool, err error) {
	if verbose {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
