// Package slideparser splits "Slide N: Title" formatted text into slides.
package slideparser

import (
	"regexp"
	"strings"

	"github.com/dtroode/deckhub-server/internal/model"
	"github.com/dtroode/deckhub-server/internal/textanalysis"
)

var marker = regexp.MustCompile(`(?im)^[ \t]*slide[ \t]+(\d+)[ \t]*:[ \t]*(.*)$`)

// ParseSlideBySlide returns one slide per "Slide <n>: <title>" marker in text,
// in input order. The body of a slide runs up to the next marker or the end of
// input. Text without markers yields no slides.
func ParseSlideBySlide(text string) []model.Slide {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	matches := marker.FindAllStringSubmatchIndex(text, -1)
	slides := make([]model.Slide, 0, len(matches))

	for i, m := range matches {
		bodyEnd := len(text)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}

		title := strings.TrimSpace(text[m[4]:m[5]])
		if title == "" {
			title = "Slide " + text[m[2]:m[3]]
		}

		slides = append(slides, model.Slide{
			Title:   title,
			Content: formatBody(strings.TrimSpace(text[m[1]:bodyEnd])),
		})
	}

	return slides
}

func formatBody(body string) string {
	if body == "" {
		return ""
	}

	lines := strings.Split(body, "\n")
	bulleted := false
	for _, l := range lines {
		if textanalysis.IsBulleted(l) {
			bulleted = true
			break
		}
	}

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		switch {
		case textanalysis.IsBulleted(l):
			l = textanalysis.Bullet + textanalysis.StripBullet(l)
		case !bulleted:
			l = textanalysis.Bullet + l
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}
