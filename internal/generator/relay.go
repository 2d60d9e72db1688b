package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/composer"
	"github.com/dtroode/deckhub-server/internal/model"
	"github.com/dtroode/deckhub-server/internal/relay"
)

const presentationPath = "/api/presentation"

// maxResponseSize bounds the relay response body.
const maxResponseSize = 4 << 20

var _ model.Generator = (*Relay)(nil)

// Relay forwards requests to the generation relay over HTTP.
type Relay struct {
	baseURL  string
	client   *http.Client
	compose  bool
	composer *composer.Composer
}

// NewRelay creates new Relay generator. With compose set the relay is asked
// to build the slides itself; otherwise its text answer is composed locally.
func NewRelay(baseURL string, timeout time.Duration, compose bool, composer *composer.Composer) *Relay {
	return &Relay{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		compose:  compose,
		composer: composer,
	}
}

// Generate posts the request to the relay and turns the answer into a deck.
// It is attempted once.
func (g *Relay) Generate(ctx context.Context, req model.GenerationRequest) (model.Deck, error) {
	body, err := json.Marshal(relay.PresentationRequest{
		Title:        req.Title,
		Content:      req.Content,
		SlideBySlide: req.SlideBySlide(),
		APIKey:       req.Credential,
		Compose:      g.compose,
	})
	if err != nil {
		return model.Deck{}, fmt.Errorf("failed to marshal relay request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+presentationPath, bytes.NewReader(body))
	if err != nil {
		return model.Deck{}, fmt.Errorf("failed to create relay request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if req.Credential != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Credential)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return model.Deck{}, apierrors.NewErrGenerationFailed("", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return model.Deck{}, apierrors.NewErrGenerationFailed("", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp relay.ErrorResponse
		_ = json.Unmarshal(raw, &errResp)
		return model.Deck{}, apierrors.NewErrGenerationFailed(errResp.Error, fmt.Errorf("relay responded with status %d", resp.StatusCode))
	}

	var out relay.Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return model.Deck{}, apierrors.NewErrGenerationFailed("", fmt.Errorf("failed to decode relay response: %w", err))
	}

	if out.Presentation != nil {
		return *out.Presentation, nil
	}

	return model.Deck{
		Title:  req.Title,
		Slides: g.composer.ComposeText(req.Title, out.Result),
	}, nil
}
