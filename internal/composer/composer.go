// Package composer builds styled slide sequences from generation requests.
package composer

import (
	"strings"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/model"
	"github.com/dtroode/deckhub-server/internal/slideparser"
	"github.com/dtroode/deckhub-server/internal/textanalysis"
)

const (
	// TitleCaption is the content of the title slide.
	TitleCaption = "Created with AI"

	overviewTitle   = "Overview"
	takeawaysTitle  = "Key Takeaways"
	overviewSize    = 5
	topicKeywords   = 20
	clusterSize     = 3
	maxClusters     = 4
	takeawaysSize   = 4
	slideKeywords   = 5
)

// Composer turns request text into slides and assigns imagery and styles.
type Composer struct {
	images map[model.Topic][]string
	styles []model.SlideStyle
}

// New creates a Composer with the default image pools and style palette.
func New() *Composer {
	return NewWithPalette(DefaultImages, DefaultStyles)
}

// NewWithPalette creates a Composer with custom image pools and styles.
// The pools must contain a non-empty general entry and styles must not be empty.
func NewWithPalette(images map[model.Topic][]string, styles []model.SlideStyle) *Composer {
	return &Composer{images: images, styles: styles}
}

// Compose builds the slides for req in the request's mode.
func (c *Composer) Compose(req model.GenerationRequest) ([]model.Slide, error) {
	if req.SlideBySlide() {
		return c.composeSlideBySlide(req.Content)
	}
	return c.composeFreeForm(req.Title, req.Content), nil
}

// ComposeText interprets text produced by a generative backend: slide markers
// are honoured when present, otherwise the text is composed free-form.
func (c *Composer) ComposeText(title, text string) []model.Slide {
	if slides, err := c.composeSlideBySlide(text); err == nil {
		return slides
	}
	return c.composeFreeForm(title, text)
}

// ImageFor picks an image for a slide. Only the slide index and topic drive
// the choice; seed is accepted for content-aware picking but not used yet.
func (c *Composer) ImageFor(seed string, slideIndex int, topic model.Topic) string {
	_ = seed
	pool, ok := c.images[topic]
	if !ok || len(pool) == 0 {
		pool = c.images[model.TopicGeneral]
	}
	if len(pool) == 0 {
		return ""
	}
	return pool[slideIndex%len(pool)]
}

// StyleAt returns a copy of the palette entry for a slide index.
func (c *Composer) StyleAt(slideIndex int) *model.SlideStyle {
	if len(c.styles) == 0 {
		return nil
	}
	style := c.styles[slideIndex%len(c.styles)]
	return &style
}

func (c *Composer) composeSlideBySlide(content string) ([]model.Slide, error) {
	raw := slideparser.ParseSlideBySlide(content)
	if len(raw) == 0 {
		return nil, apierrors.NewErrParseEmpty()
	}

	topic := textanalysis.ClassifyTopic(content)
	slides := make([]model.Slide, 0, len(raw))
	for i, s := range raw {
		keywords := textanalysis.ExtractKeywords(s.Content, slideKeywords)
		seed := strings.TrimSpace(s.Title + " " + strings.Join(keywords, " "))
		s.ImageURL = c.ImageFor(seed, i, topic)
		s.Style = c.StyleAt(i)
		slides = append(slides, s)
	}
	return slides, nil
}

func (c *Composer) composeFreeForm(title, content string) []model.Slide {
	topic := textanalysis.ClassifyTopic(content)
	lines := textanalysis.SplitLines(content)

	slides := []model.Slide{{
		Title:    title,
		Content:  TitleCaption,
		ImageURL: c.ImageFor(title, 0, topic),
		Style:    c.StyleAt(0),
	}}

	if len(lines) > 0 {
		overview := textanalysis.ExtractKeywords(content, overviewSize)
		if len(overview) == 0 {
			overview = head(lines, overviewSize)
		}
		slides = append(slides, model.Slide{
			Title:    overviewTitle,
			Content:  bulletFormat(overview),
			ImageURL: c.ImageFor(content, 1, topic),
			Style:    c.StyleAt(1),
		})
	}

	keywords := textanalysis.ExtractKeywords(content, topicKeywords)
	for _, cluster := range head(chunk(keywords, clusterSize), maxClusters) {
		body := matchingLines(lines, cluster)
		if len(body) == 0 {
			body = cluster
		}
		idx := len(slides)
		slides = append(slides, model.Slide{
			Title:    textanalysis.Capitalize(cluster[0]),
			Content:  bulletFormat(body),
			ImageURL: c.ImageFor(strings.Join(cluster, " "), idx, topic),
			Style:    c.StyleAt(idx),
		})
	}

	takeaways := "Key takeaways from " + title
	if top := head(keywords, takeawaysSize); len(top) > 0 {
		capitalized := make([]string, len(top))
		for i, k := range top {
			capitalized[i] = textanalysis.Capitalize(k)
		}
		takeaways = bulletFormat(capitalized)
	}
	idx := len(slides)
	slides = append(slides, model.Slide{
		Title:    takeawaysTitle,
		Content:  takeaways,
		ImageURL: c.ImageFor("conclusion", idx, topic),
		Style:    c.StyleAt(idx),
	})

	return slides
}

// bulletFormat joins items one per line and bullets them.
func bulletFormat(items []string) string {
	return textanalysis.FormatAsBulletPoints(strings.Join(items, "\n"))
}

// matchingLines returns the lines mentioning any keyword.
func matchingLines(lines, keywords []string) []string {
	var out []string
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, k := range keywords {
			if strings.Contains(lower, k) {
				out = append(out, line)
				break
			}
		}
	}
	return out
}

func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
