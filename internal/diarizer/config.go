package diarizer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the diarizer defaults loaded from a YAML file.
type Config struct {
	InstallPath string        `yaml:"install_path"`
	Whisper     WhisperConfig `yaml:"whisper"`
	Audio       AudioConfig   `yaml:"audio"`
}

type WhisperConfig struct {
	Model            string `yaml:"model"`
	Language         string `yaml:"language"`
	SuppressNumerals bool   `yaml:"suppress_numerals"`
}

type AudioConfig struct {
	Device     string `yaml:"device"`
	BatchSize  int    `yaml:"batch_size"`
	SampleRate int    `yaml:"sample_rate"`
}

// DefaultConfig mirrors the upstream tool's defaults.
func DefaultConfig() Config {
	return Config{
		Whisper: WhisperConfig{
			Model:            "medium.en",
			SuppressNumerals: true,
		},
		Audio: AudioConfig{
			Device:     "auto",
			BatchSize:  0,
			SampleRate: 16000,
		},
	}
}

// LoadConfig reads a YAML defaults file over DefaultConfig, so absent keys
// keep their defaults and present keys override them.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the upstream tool would choke on.
func (c *Config) Validate() error {
	if c.Whisper.Model == "" {
		return fmt.Errorf("whisper.model is required")
	}
	switch c.Audio.Device {
	case "cpu", "cuda", "auto":
	default:
		return fmt.Errorf("audio.device must be cpu, cuda or auto, got %q", c.Audio.Device)
	}
	if c.Audio.BatchSize < 0 {
		return fmt.Errorf("audio.batch_size must not be negative")
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 16000
	}
	return nil
}

// Options converts the config into per-run options.
func (c *Config) Options() Options {
	return Options{
		WhisperModel:     c.Whisper.Model,
		Device:           c.Audio.Device,
		BatchSize:        c.Audio.BatchSize,
		SuppressNumerals: c.Whisper.SuppressNumerals,
		Language:         c.Whisper.Language,
	}
}
