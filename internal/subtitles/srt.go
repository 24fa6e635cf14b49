// Package subtitles extracts plain text from sequential-block subtitle
// files (SRT): index line, time-range line, one or more text lines, blank
// separator. Only the text lines survive.
package subtitles

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ExtractFile reads a subtitle file and returns its spoken text as one
// space-joined string. Files are decoded as UTF-8, falling back to Latin-1
// when the bytes are not valid UTF-8.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read subtitle file: %w", err)
	}
	return ExtractLines(splitLines(decode(data))), nil
}

// ExtractLines filters subtitle block lines down to the spoken text and
// joins it with single spaces. Index lines (digits only), time-range lines
// (containing "-->") and blank separators are discarded.
func ExtractLines(lines []string) string {
	var text []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isIndexLine(line) {
			continue
		}
		if strings.Contains(line, "-->") {
			continue
		}
		text = append(text, line)
	}
	return strings.Join(text, " ")
}

func isIndexLine(line string) bool {
	for _, r := range line {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(line) > 0
}

// decode interprets the raw bytes as UTF-8 when valid, otherwise as Latin-1
// (every byte maps to the code point of the same value).
func decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
