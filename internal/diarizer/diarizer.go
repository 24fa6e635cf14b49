// Package diarizer wraps the external whisper-diarization repository: it
// locates the checkout, extracts audio from video containers via ffmpeg and
// invokes diarize.py as a subprocess.
package diarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/interviewlens/interviewlens/internal/models"
	"github.com/interviewlens/interviewlens/pkg/executor"
)

// ErrInstallNotFound means no whisper-diarization checkout was found at any
// candidate location.
var ErrInstallNotFound = errors.New("whisper-diarization installation not found")

// ErrVideoUnavailable means a video file was given but ffmpeg is missing.
var ErrVideoUnavailable = errors.New("video processing unavailable: ffmpeg is required")

// markerFiles must all exist in a directory for it to count as a
// whisper-diarization checkout.
var markerFiles = []string{"diarize.py", "requirements.txt", "helpers.py"}

const installDirName = "whisper-diarization"

// Diarizer invokes the external diarization tool.
type Diarizer struct {
	installPath string
	runner      executor.Runner
	logger      *slog.Logger
	python      string
}

// Option tweaks a Diarizer at construction time.
type Option func(*Diarizer)

// WithRunner substitutes the subprocess runner (used by tests).
func WithRunner(r executor.Runner) Option {
	return func(d *Diarizer) { d.runner = r }
}

// WithLogger routes diagnostics through the given handle.
func WithLogger(l *slog.Logger) Option {
	return func(d *Diarizer) { d.logger = l }
}

// New builds a Diarizer rooted at installPath. An empty path triggers
// discovery: the working directory, its parent and the executable's
// directory are probed, in that order, for a checkout carrying the marker
// files. No match is ErrInstallNotFound; there is no silent fallback.
func New(installPath string, opts ...Option) (*Diarizer, error) {
	d := &Diarizer{
		runner: executor.New(),
		logger: slog.Default(),
		python: "python3",
	}
	for _, opt := range opts {
		opt(d)
	}

	if installPath == "" {
		found, err := discoverInstall()
		if err != nil {
			return nil, err
		}
		installPath = found
	} else if err := validateInstall(installPath); err != nil {
		return nil, err
	}

	d.installPath = installPath
	return d, nil
}

// InstallPath returns the resolved checkout directory.
func (d *Diarizer) InstallPath() string {
	return d.installPath
}

func discoverInstall() (string, error) {
	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates,
			filepath.Join(cwd, installDirName),
			filepath.Join(filepath.Dir(cwd), installDirName),
		)
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), installDirName))
	}

	for _, candidate := range candidates {
		if validateInstall(candidate) == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w (probed %s)", ErrInstallNotFound, strings.Join(candidates, ", "))
}

func validateInstall(dir string) error {
	for _, marker := range markerFiles {
		if _, err := os.Stat(filepath.Join(dir, marker)); err != nil {
			return fmt.Errorf("%w: missing %s in %s", ErrInstallNotFound, marker, dir)
		}
	}
	return nil
}

// Options selects how one diarization run is performed.
type Options struct {
	WhisperModel     string
	Device           string
	BatchSize        int
	SuppressNumerals bool
	Language         string
}

// DefaultOptions mirrors the upstream tool's defaults.
func DefaultOptions() Options {
	return Options{
		WhisperModel:     "medium.en",
		Device:           "auto",
		BatchSize:        0,
		SuppressNumerals: true,
	}
}

// Diarize runs the external tool against an audio or video file. Video input
// is first converted to a temporary 16kHz mono WAV, which is removed on
// every exit path. A nonzero subprocess exit is fatal and carries the
// captured stderr.
func (d *Diarizer) Diarize(ctx context.Context, file string, opts Options) (models.DiarizationResult, error) {
	if _, err := os.Stat(file); err != nil {
		return models.DiarizationResult{}, fmt.Errorf("input file: %w", err)
	}

	processing := file
	if IsVideoFile(file) {
		if !d.VideoProcessingAvailable(ctx) {
			return models.DiarizationResult{}, ErrVideoUnavailable
		}

		d.logger.Info("[Diarizer] Detected video file, extracting audio",
			slog.String("file", file))
		tempAudio, err := d.extractAudio(ctx, file)
		if err != nil {
			return models.DiarizationResult{}, err
		}
		defer func() {
			if err := os.Remove(tempAudio); err == nil {
				d.logger.Debug("[Diarizer] Removed temporary audio file",
					slog.String("file", tempAudio))
			}
		}()
		processing = tempAudio
	}

	args := buildArgs(processing, opts)
	d.logger.Info("[Diarizer] Running diarization",
		slog.String("file", processing),
		slog.String("model", opts.WhisperModel))

	stdout, err := d.runner.RunInDir(ctx, d.installPath, d.python, args...)
	if err != nil {
		return models.DiarizationResult{}, fmt.Errorf("diarization failed: %w", err)
	}

	return d.parseRunOutput(stdout, file, opts), nil
}

func buildArgs(file string, opts Options) []string {
	args := []string{
		"diarize.py",
		"-a", file,
		"--whisper-model", opts.WhisperModel,
		"--device", opts.Device,
		"--batch-size", strconv.Itoa(opts.BatchSize),
	}
	if opts.SuppressNumerals {
		args = append(args, "--suppress_numerals")
	}
	if opts.Language != "" {
		args = append(args, "--language", opts.Language)
	}
	return args
}

// parseRunOutput is a known gap: the upstream script prints human-oriented
// text, so no speaker or transcription segments are populated. The result is
// structurally valid but empty.
func (d *Diarizer) parseRunOutput(_ string, file string, opts Options) models.DiarizationResult {
	return models.DiarizationResult{
		AudioFile:     file,
		Speakers:      []models.SpeakerSegment{},
		Transcription: []models.TranscriptionSegment{},
		Metadata: map[string]any{
			"whisper_model": opts.WhisperModel,
			"num_speakers":  0,
		},
	}
}

// extractAudio converts a video file to a temporary mono 16kHz PCM WAV, the
// input format the upstream tool expects. The caller owns the returned path.
func (d *Diarizer) extractAudio(ctx context.Context, videoFile string) (string, error) {
	tempFile, err := os.CreateTemp("", "diarize-*.wav")
	if err != nil {
		return "", fmt.Errorf("create temp audio file: %w", err)
	}
	tempPath := tempFile.Name()
	tempFile.Close()

	args := []string{
		"-i", videoFile,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		"-y",
		tempPath,
	}
	if _, err := d.runner.Run(ctx, "ffmpeg", args...); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("extract audio from video: %w", err)
	}

	d.logger.Info("[Diarizer] Audio extracted", slog.String("file", tempPath))
	return tempPath, nil
}

// VideoProcessingAvailable reports whether ffmpeg can be invoked.
func (d *Diarizer) VideoProcessingAvailable(ctx context.Context) bool {
	_, err := d.runner.Run(ctx, "ffmpeg", "-version")
	return err == nil
}

// IsVideoFile reports whether the path has a known video-container
// extension.
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, v := range VideoFormats() {
		if ext == v {
			return true
		}
	}
	return false
}

// VideoFormats lists the video-container extensions handled via ffmpeg.
func VideoFormats() []string {
	return []string{".mp4", ".avi", ".mov", ".mkv", ".wmv", ".flv", ".webm", ".m4v", ".3gp"}
}
