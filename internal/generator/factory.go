package generator

import (
	"fmt"
	"time"

	"github.com/dtroode/deckhub-server/internal/composer"
	"github.com/dtroode/deckhub-server/internal/model"
)

const (
	StrategyLocal = "local"
	StrategyRelay = "relay"
)

// Options configure strategy selection.
type Options struct {
	Strategy string
	Delay    time.Duration
	RelayURL string
	// RelayCompose asks the relay for structured decks.
	RelayCompose bool
	Timeout      time.Duration
}

// New creates the generation strategy named by opts.Strategy.
func New(opts Options, composer *composer.Composer) (model.Generator, error) {
	switch opts.Strategy {
	case StrategyLocal, "":
		return NewLocal(composer, opts.Delay), nil

	case StrategyRelay:
		if opts.RelayURL == "" {
			return nil, fmt.Errorf("relay generation requires a relay URL")
		}
		return NewRelay(opts.RelayURL, opts.Timeout, opts.RelayCompose, composer), nil

	default:
		return nil, fmt.Errorf("unsupported generation mode: %s (supported: local, relay)", opts.Strategy)
	}
}
