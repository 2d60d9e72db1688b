// Package generator provides deck generation strategies and the gateway that
// fronts them.
package generator

import (
	"context"
	"time"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/composer"
	"github.com/dtroode/deckhub-server/internal/model"
)

var _ model.Generator = (*Local)(nil)

// Local composes decks in-process after a simulated delay.
type Local struct {
	composer *composer.Composer
	delay    time.Duration
}

// NewLocal creates new Local generator.
func NewLocal(composer *composer.Composer, delay time.Duration) *Local {
	return &Local{
		composer: composer,
		delay:    delay,
	}
}

// Generate waits for the configured delay and composes the deck.
func (g *Local) Generate(ctx context.Context, req model.GenerationRequest) (model.Deck, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return model.Deck{}, apierrors.NewErrGenerationFailed("Generation was cancelled", ctx.Err())
		case <-timer.C:
		}
	}

	slides, err := g.composer.Compose(req)
	if err != nil {
		return model.Deck{}, err
	}

	return model.Deck{Title: req.Title, Slides: slides}, nil
}
