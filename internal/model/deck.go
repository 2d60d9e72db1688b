package model

import (
	"context"

	"github.com/google/uuid"
)

// DeckStore persists decks of a single owner as one ordered collection.
type DeckStore interface {
	List(ctx context.Context, ownerID uuid.UUID) []Deck
	Get(ctx context.Context, ownerID uuid.UUID, deckID string) (Deck, error)
	Upsert(ctx context.Context, ownerID uuid.UUID, deck Deck) error
	Delete(ctx context.Context, ownerID uuid.UUID, deckID string) error
}

// Deck is a complete presentation: a title and its ordered slides.
type Deck struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	CreatedAt string  `json:"createdAt"`
	Slides    []Slide `json:"slides"`
}

// Slide is one titled content unit of a deck.
type Slide struct {
	Title    string      `json:"title"`
	Content  string      `json:"content"`
	ImageURL string      `json:"imageUrl,omitempty"`
	Style    *SlideStyle `json:"style,omitempty"`
}

// SlideStyle is a presentational hint. It never affects slide content.
type SlideStyle struct {
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	Gradient        string    `json:"gradient,omitempty"`
	TextColor       string    `json:"textColor,omitempty"`
	FontSize        FontSize  `json:"fontSize,omitempty"`
	Alignment       Alignment `json:"alignment,omitempty"`
}

// FontSize enumerates font-size tiers.
type FontSize string

const (
	FontSizeNormal FontSize = "normal"
	FontSizeLarge  FontSize = "large"
)

// Alignment enumerates text alignments.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// SlideEdit is the editable part of a slide.
type SlideEdit struct {
	Title   string
	Content string
}

// DeckEdit replaces the editable fields of a stored deck.
type DeckEdit struct {
	ID     string
	Title  string
	Slides []SlideEdit
}

// Clone returns a deep copy of the deck.
func (d Deck) Clone() Deck {
	out := d
	if d.Slides != nil {
		out.Slides = make([]Slide, len(d.Slides))
		for i, s := range d.Slides {
			out.Slides[i] = s
			if s.Style != nil {
				style := *s.Style
				out.Slides[i].Style = &style
			}
		}
	}
	return out
}
