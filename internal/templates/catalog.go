// Package templates holds the fixed catalog of ready-made decks.
package templates

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/model"
)

// CategoryAll matches every template.
const CategoryAll = "All"

// Categories lists the filter tabs in display order.
var Categories = []string{CategoryAll, "Business", "Education", "Marketing", "Design", "Science", "Creative"}

// Catalog looks up and instantiates templates.
type Catalog struct {
	templates []model.Template
	now       func() time.Time
}

// New creates a Catalog with the default templates.
func New() *Catalog {
	return NewWithTemplates(defaultTemplates)
}

// NewWithTemplates creates a Catalog over the given templates.
func NewWithTemplates(templates []model.Template) *Catalog {
	return &Catalog{templates: templates, now: time.Now}
}

// Filter returns templates in the category whose title contains query,
// ignoring case. An empty category or CategoryAll matches any category.
func (c *Catalog) Filter(category, query string) []model.Template {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]model.Template, 0, len(c.templates))
	for _, t := range c.templates {
		if category != "" && category != CategoryAll && t.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(t.Title), query) {
			continue
		}
		out = append(out, clone(t))
	}
	return out
}

// Get returns a template by id.
func (c *Catalog) Get(id string) (model.Template, error) {
	for _, t := range c.templates {
		if t.ID == id {
			return clone(t), nil
		}
	}
	return model.Template{}, apierrors.NewErrTemplateNotFound(id)
}

// Instantiate turns a template into a new deck with its own id, so one
// template can be used any number of times.
func (c *Catalog) Instantiate(id string) (model.Deck, error) {
	t, err := c.Get(id)
	if err != nil {
		return model.Deck{}, err
	}

	return model.Deck{
		ID:        uuid.NewString(),
		Title:     t.Title,
		CreatedAt: c.now().UTC().Format(time.RFC3339),
		Slides:    t.Slides,
	}, nil
}

func clone(t model.Template) model.Template {
	t.Slides = model.Deck{Slides: t.Slides}.Clone().Slides
	return t
}

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + "?auto=format&fit=crop&w=800&q=80"
}

var defaultTemplates = []model.Template{
	{
		ID:           "template-1",
		Title:        "Business Proposal",
		Category:     "Business",
		ThumbnailURL: unsplash("photo-1551288049-bebda4e38f71"),
		Popularity:   4.8,
		Slides: []model.Slide{
			{Title: "Executive Summary", Content: "Overview of the business proposal", ImageURL: unsplash("photo-1454165804606-c3d57bc86b40")},
			{Title: "Market Analysis", Content: "Analysis of the target market and competition", ImageURL: unsplash("photo-1551288049-bebda4e38f71")},
			{Title: "Financial Projections", Content: "Overview of expected costs and revenues", ImageURL: unsplash("photo-1554224155-6726b3ff858f")},
		},
	},
	{
		ID:           "template-2",
		Title:        "Course Lecture",
		Category:     "Education",
		ThumbnailURL: unsplash("photo-1509062522246-3755977927d7"),
		Popularity:   4.5,
		Slides: []model.Slide{
			{Title: "Introduction", Content: "Course overview and objectives", ImageURL: unsplash("photo-1509062522246-3755977927d7")},
			{Title: "Key Concepts", Content: "The fundamental concepts covered in this lecture", ImageURL: unsplash("photo-1488190211105-8b0e65b80b4e")},
			{Title: "Practical Applications", Content: "Real-world applications of the concepts", ImageURL: unsplash("photo-1516321318423-f06f85e504b3")},
		},
	},
	{
		ID:           "template-3",
		Title:        "Marketing Campaign",
		Category:     "Marketing",
		ThumbnailURL: unsplash("photo-1563986768609-322da13575f3"),
		Popularity:   4.7,
		Slides: []model.Slide{
			{Title: "Campaign Overview", Content: "Marketing campaign goals and strategy", ImageURL: unsplash("photo-1563986768609-322da13575f3")},
			{Title: "Target Audience", Content: "Detailed description of the target demographic", ImageURL: unsplash("photo-1552581234-26160f608093")},
			{Title: "Performance Metrics", Content: "KPIs and success measures for the campaign", ImageURL: unsplash("photo-1526628953301-3e589a6a8b74")},
		},
	},
	{
		ID:           "template-4",
		Title:        "Product Design",
		Category:     "Design",
		ThumbnailURL: unsplash("photo-1581291518633-83b4ebd1d83e"),
		Popularity:   4.6,
		Slides: []model.Slide{
			{Title: "Design Brief", Content: "Overview of the product design challenge", ImageURL: unsplash("photo-1581291518633-83b4ebd1d83e")},
			{Title: "User Research", Content: "Insights from user interviews and testing", ImageURL: unsplash("photo-1576153192396-180ecef2a715")},
			{Title: "Final Concept", Content: "Presentation of the final design solution", ImageURL: unsplash("photo-1508144753681-9986d4df99b3")},
		},
	},
}
