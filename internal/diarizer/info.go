package diarizer

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
)

var (
	durationPattern   = regexp.MustCompile(`Duration: (\d{2}):(\d{2}):(\d{2})\.(\d{2})`)
	resolutionPattern = regexp.MustCompile(`(\d{3,4})x(\d{3,4})`)
	audioPattern      = regexp.MustCompile(`Audio: (\w+)`)
	videoPattern      = regexp.MustCompile(`Video: (\w+)`)
)

// VideoInfo holds the basics ffmpeg reports about a container.
type VideoInfo struct {
	DurationSeconds float64
	Width           int
	Height          int
	AudioCodec      string
	VideoCodec      string
}

// ProbeVideo extracts duration, resolution and codecs from ffmpeg's probe
// output. ffmpeg prints this on stderr even on success, hence the merged
// stream. Fields ffmpeg did not report stay zero.
func (d *Diarizer) ProbeVideo(ctx context.Context, videoFile string) (VideoInfo, error) {
	if !d.VideoProcessingAvailable(ctx) {
		return VideoInfo{}, ErrVideoUnavailable
	}
	if _, err := os.Stat(videoFile); err != nil {
		return VideoInfo{}, fmt.Errorf("video file: %w", err)
	}

	// Decoding to the null muxer exits zero while still printing the
	// stream summary; the exit status is irrelevant as long as it parses.
	output, _ := d.runner.RunMerged(ctx, "ffmpeg", "-i", videoFile, "-f", "null", "-")

	var info VideoInfo
	if m := durationPattern.FindStringSubmatch(output); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.Atoi(m[3])
		centis, _ := strconv.Atoi(m[4])
		info.DurationSeconds = float64(hours*3600+minutes*60+seconds) + float64(centis)/100
	}
	if m := resolutionPattern.FindStringSubmatch(output); m != nil {
		info.Width, _ = strconv.Atoi(m[1])
		info.Height, _ = strconv.Atoi(m[2])
	}
	if m := audioPattern.FindStringSubmatch(output); m != nil {
		info.AudioCodec = m[1]
	}
	if m := videoPattern.FindStringSubmatch(output); m != nil {
		info.VideoCodec = m[1]
	}
	return info, nil
}

// AvailableModels lists the whisper model names the upstream tool accepts.
func AvailableModels() []string {
	return []string{
		"tiny.en", "tiny", "base.en", "base", "small.en", "small",
		"medium.en", "medium", "large-v1", "large-v2", "large-v3",
	}
}

// SupportedLanguages lists the whisper language codes.
func SupportedLanguages() []string {
	return []string{
		"en", "zh", "de", "es", "ru", "ko", "fr", "ja", "pt", "tr",
		"pl", "ca", "nl", "ar", "sv", "it", "id", "hi", "fi", "vi",
		"he", "uk", "el", "ms", "cs", "ro", "da", "hu", "ta", "no",
		"th", "ur", "hr", "bg", "lt", "la", "mi", "ml", "cy", "sk",
		"te", "fa", "lv", "bn", "sr", "az", "sl", "kn", "et", "mk",
		"br", "eu", "is", "hy", "ne", "mn", "bs", "kk", "sq", "sw",
		"gl", "mr", "pa", "si", "km", "sn", "yo", "so", "af", "oc",
		"ka", "be", "tg", "sd", "gu", "am", "yi", "lo", "uz", "fo",
		"ht", "ps", "tk", "nn", "mt", "sa", "lb", "my", "bo", "tl",
		"mg", "as", "tt", "haw", "ln", "ha", "ba", "jw", "su",
	}
}
