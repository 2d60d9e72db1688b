package textanalysis

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Bullet is the marker prefixed to bullet items.
const Bullet = "• "

const longLineThreshold = 60

var bulletMarkers = []string{"•", "- ", "* "}

// IsBulleted reports whether line already starts with a bullet marker.
func IsBulleted(line string) bool {
	line = strings.TrimSpace(line)
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return line == "-" || line == "*"
}

// StripBullet removes a leading bullet marker from line.
func StripBullet(line string) string {
	line = strings.TrimSpace(line)
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return strings.TrimSpace(strings.TrimPrefix(line, m))
		}
	}
	return line
}

// FormatAsBulletPoints turns content into bullet lines.
//
// A single line longer than 60 characters is split into sentences. Multi-line
// content gets a bullet on every non-empty line that has none yet. Anything
// else is returned unchanged.
func FormatAsBulletPoints(content string) string {
	if !strings.Contains(content, "\n") {
		if utf8.RuneCountInString(content) <= longLineThreshold {
			return content
		}
		var items []string
		for _, s := range SplitSentences(content) {
			items = append(items, Bullet+s)
		}
		return strings.Join(items, "\n")
	}

	var items []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !IsBulleted(line) {
			line = Bullet + line
		}
		items = append(items, line)
	}
	return strings.Join(items, "\n")
}

// SplitSentences splits text on '.', '!' and '?' and returns the trimmed,
// non-empty fragments.
func SplitSentences(text string) []string {
	return splitTrimmed(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

// SplitLines splits text on sentence punctuation and line breaks and returns
// the trimmed, non-empty fragments.
func SplitLines(text string) []string {
	return splitTrimmed(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n' || r == '\r'
	})
}

func splitTrimmed(text string, sep func(rune) bool) []string {
	var out []string
	for _, f := range strings.FieldsFunc(text, sep) {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
