package generator

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/logger"
	"github.com/dtroode/deckhub-server/internal/model"
)

var _ model.Generator = (*Gateway)(nil)

// Gateway validates generation requests, delegates to a strategy and stamps
// the resulting deck.
type Gateway struct {
	strategy model.Generator
	logger   *logger.Logger
	now      func() time.Time
}

// NewGateway creates new Gateway.
func NewGateway(strategy model.Generator, logger *logger.Logger) *Gateway {
	return &Gateway{
		strategy: strategy,
		logger:   logger,
		now:      time.Now,
	}
}

// Validate checks the fields a generation request must carry.
func Validate(req model.GenerationRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return apierrors.NewErrValidation("title", "Please enter a title for your presentation")
	}
	if strings.TrimSpace(req.Content) == "" {
		return apierrors.NewErrValidation("content", "Please enter some content for your presentation")
	}
	if !req.Consent {
		return apierrors.NewErrValidation("consent", "Please agree to the terms and conditions")
	}
	switch req.Mode {
	case "", model.ModeFreeForm, model.ModeSlideBySlide:
	default:
		return apierrors.NewErrValidation("mode", "unsupported generation mode "+string(req.Mode))
	}
	return nil
}

// Generate produces a new deck. The returned deck always carries an id and a
// creation timestamp and never contains the request credential.
func (g *Gateway) Generate(ctx context.Context, req model.GenerationRequest) (model.Deck, error) {
	if err := Validate(req); err != nil {
		return model.Deck{}, err
	}
	if req.Mode == "" {
		req.Mode = model.ModeFreeForm
	}

	log := g.logger.With("title", req.Title, "mode", string(req.Mode), "credential", logger.Mask(req.Credential))

	started := g.now()
	deck, err := g.strategy.Generate(ctx, req)
	if err != nil {
		log.Error("Generation gateway: failed to generate presentation", "error", err)
		if _, ok := apierrors.As(err); ok {
			return model.Deck{}, err
		}
		return model.Deck{}, apierrors.NewErrGenerationFailed("", err)
	}

	if len(deck.Slides) == 0 {
		log.Error("Generation gateway: strategy returned no slides")
		return model.Deck{}, apierrors.NewErrGenerationFailed("The generated presentation has no slides", nil)
	}

	if deck.ID == "" {
		deck.ID = uuid.NewString()
	}
	if deck.CreatedAt == "" {
		deck.CreatedAt = g.now().UTC().Format(time.RFC3339)
	}
	if deck.Title == "" {
		deck.Title = req.Title
	}
	deck = redact(deck, req.Credential)

	log.Info("Generation gateway: presentation generated",
		"deckID", deck.ID, "slides", len(deck.Slides), "took", g.now().Sub(started))

	return deck, nil
}

// redact removes any occurrence of the credential from the deck text.
func redact(deck model.Deck, credential string) model.Deck {
	if credential == "" {
		return deck
	}
	deck = deck.Clone()
	scrub := func(s string) string { return strings.ReplaceAll(s, credential, "") }
	deck.Title = scrub(deck.Title)
	for i := range deck.Slides {
		deck.Slides[i].Title = scrub(deck.Slides[i].Title)
		deck.Slides[i].Content = scrub(deck.Slides[i].Content)
		deck.Slides[i].ImageURL = scrub(deck.Slides[i].ImageURL)
	}
	return deck
}
