package models

import (
	"strings"
	"time"
)

// SpeakerSegment is a stretch of audio attributed to one speaker.
type SpeakerSegment struct {
	SpeakerID  string  `json:"speaker_id"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	Confidence float64 `json:"confidence"`
	Text       string  `json:"text"`
}

// Duration returns the segment length in seconds.
func (s SpeakerSegment) Duration() float64 {
	return s.EndTime - s.StartTime
}

// Start returns the segment start as a time.Duration.
func (s SpeakerSegment) Start() time.Duration {
	return time.Duration(s.StartTime * float64(time.Second))
}

// End returns the segment end as a time.Duration.
func (s SpeakerSegment) End() time.Duration {
	return time.Duration(s.EndTime * float64(time.Second))
}

// TranscriptionSegment is a transcribed stretch of audio with timing.
type TranscriptionSegment struct {
	Text       string  `json:"text"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language,omitempty"`
}

// Duration returns the segment length in seconds.
func (s TranscriptionSegment) Duration() float64 {
	return s.EndTime - s.StartTime
}

// DiarizationResult is the full outcome of one diarization run.
//
// The upstream diarization script prints human-oriented text, so Speakers and
// Transcription are currently always empty; see the diarizer package docs.
type DiarizationResult struct {
	AudioFile     string                 `json:"audio_file"`
	Speakers      []SpeakerSegment       `json:"speakers"`
	Transcription []TranscriptionSegment `json:"transcription"`
	Metadata      map[string]any         `json:"metadata"`
}

// TotalDuration returns the end of the last transcription segment.
func (r DiarizationResult) TotalDuration() float64 {
	var max float64
	for _, seg := range r.Transcription {
		if seg.EndTime > max {
			max = seg.EndTime
		}
	}
	return max
}

// UniqueSpeakers returns the distinct speaker ids, in first-seen order.
func (r DiarizationResult) UniqueSpeakers() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, seg := range r.Speakers {
		if _, ok := seen[seg.SpeakerID]; ok {
			continue
		}
		seen[seg.SpeakerID] = struct{}{}
		ids = append(ids, seg.SpeakerID)
	}
	return ids
}

// SpeakerSegments returns all segments attributed to one speaker.
func (r DiarizationResult) SpeakerSegments(speakerID string) []SpeakerSegment {
	var segs []SpeakerSegment
	for _, seg := range r.Speakers {
		if seg.SpeakerID == speakerID {
			segs = append(segs, seg)
		}
	}
	return segs
}

// SpeakerText joins everything one speaker said into a single string.
func (r DiarizationResult) SpeakerText(speakerID string) string {
	var parts []string
	for _, seg := range r.SpeakerSegments(speakerID) {
		parts = append(parts, seg.Text)
	}
	return strings.Join(parts, " ")
}
