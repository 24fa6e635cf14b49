package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults for the analyzer. The original tooling was built for Dutch
// political interviews, hence the default language.
const (
	DefaultModel       = "gpt-4"
	DefaultTemperature = 0.1
	DefaultLanguage    = "Dutch"
)

// Environment variable names recognized by the analyzer CLI.
const (
	EnvAPIKey      = "OPENAI_API_KEY"
	EnvBaseURL     = "OPENAI_BASE_URL"
	EnvModel       = "ANALYSIS_MODEL"
	EnvTemperature = "ANALYSIS_TEMPERATURE"
	EnvLanguage    = "ANALYSIS_LANGUAGE"
)

// SupportedModels lists the completion models the CLI advertises. Any model
// id is accepted when pointing at a local endpoint via OPENAI_BASE_URL.
func SupportedModels() []string {
	return []string{
		"gpt-4",
		"gpt-4-turbo",
		"gpt-4o",
		"gpt-4o-mini",
		"gpt-3.5-turbo",
		"local-model",
	}
}

// SupportedLanguages lists the analysis languages the CLI advertises.
func SupportedLanguages() []string {
	return []string{
		"Dutch",
		"English",
		"German",
		"French",
		"Spanish",
	}
}

// FromEnv returns model, language and temperature, preferring environment
// variables over the built-in defaults.
func FromEnv() (model, language string, temperature float64, err error) {
	model = DefaultModel
	language = DefaultLanguage
	temperature = DefaultTemperature

	if v := os.Getenv(EnvModel); v != "" {
		model = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		language = v
	}
	if v := os.Getenv(EnvTemperature); v != "" {
		temperature, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return "", "", 0, fmt.Errorf("parse %s: %w", EnvTemperature, err)
		}
	}

	if err := ValidateTemperature(temperature); err != nil {
		return "", "", 0, err
	}
	return model, language, temperature, nil
}

// ValidateTemperature rejects sampling temperatures outside the range the
// completion endpoint accepts.
func ValidateTemperature(t float64) error {
	if t < 0.0 || t > 2.0 {
		return fmt.Errorf("temperature %.2f out of range [0.0, 2.0]", t)
	}
	return nil
}
