package subtitles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name: "two blocks",
			lines: []string{
				"1",
				"00:00:01,000 --> 00:00:02,000",
				"Hello world",
				"",
				"2",
				"00:00:02,000 --> 00:00:03,000",
				"Foo bar",
				"",
			},
			want: "Hello world Foo bar",
		},
		{
			name: "multi-line cue text",
			lines: []string{
				"1",
				"00:00:01,000 --> 00:00:04,000",
				"First line",
				"second line",
				"",
			},
			want: "First line second line",
		},
		{
			name:  "empty input",
			lines: nil,
			want:  "",
		},
		{
			name: "text that is only digits stays out",
			lines: []string{
				"1",
				"00:00:01,000 --> 00:00:02,000",
				"2024",
				"",
			},
			// An all-digit cue line is indistinguishable from an index
			// line; the format gives no way to keep it.
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLines(tt.lines))
		})
	}
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interview.srt")
	content := "1\n00:00:01,000 --> 00:00:02,000\nHello world\n\n2\n00:00:02,000 --> 00:00:03,000\nFoo bar\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	text, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello world Foo bar", text)
}

func TestExtractFile_Latin1Fallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin1.srt")
	// "café" in Latin-1: 0xE9 is not valid UTF-8 on its own.
	content := []byte("1\n00:00:01,000 --> 00:00:02,000\ncaf\xe9\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	text, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "café", text)
}

func TestExtractFile_Missing(t *testing.T) {
	_, err := ExtractFile(filepath.Join(t.TempDir(), "nope.srt"))
	assert.Error(t, err)
}
