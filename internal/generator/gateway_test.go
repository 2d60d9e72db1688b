package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/mocks"
	"github.com/dtroode/deckhub-server/internal/model"
	"github.com/dtroode/deckhub-server/internal/testutil"
)

func validRequest() model.GenerationRequest {
	return model.GenerationRequest{
		Title:      "Demo",
		Content:    "Some content",
		Credential: "sk-secret-credential-value",
		Consent:    true,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *model.GenerationRequest)
		field  string
	}{
		{name: "missing title", modify: func(r *model.GenerationRequest) { r.Title = "  " }, field: "title"},
		{name: "missing content", modify: func(r *model.GenerationRequest) { r.Content = "" }, field: "content"},
		{name: "no consent", modify: func(r *model.GenerationRequest) { r.Consent = false }, field: "consent"},
		{name: "unknown mode", modify: func(r *model.GenerationRequest) { r.Mode = "poem" }, field: "mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)

			err := Validate(req)
			require.Error(t, err)
			assert.ErrorIs(t, err, apierrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.field)
		})
	}

	assert.NoError(t, Validate(validRequest()))
}

func TestGateway_Generate_ValidationSkipsStrategy(t *testing.T) {
	strategy := mocks.NewGenerator(t)
	g := NewGateway(strategy, testutil.MakeNoopLogger())

	req := validRequest()
	req.Consent = false

	_, err := g.Generate(context.Background(), req)
	assert.ErrorIs(t, err, apierrors.ErrValidation)
	strategy.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGateway_Generate_StampsDeck(t *testing.T) {
	strategy := mocks.NewGenerator(t)
	g := NewGateway(strategy, testutil.MakeNoopLogger())
	g.now = func() time.Time { return time.Date(2024, 5, 1, 10, 30, 0, 0, time.FixedZone("X", 3600)) }

	strategy.On("Generate", mock.Anything, mock.MatchedBy(func(r model.GenerationRequest) bool {
		return r.Mode == model.ModeFreeForm
	})).Return(model.Deck{Slides: []model.Slide{{Title: "Demo", Content: "Created with AI"}}}, nil)

	deck, err := g.Generate(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uuid.Parse(deck.ID)
	assert.NoError(t, err)
	assert.Equal(t, "2024-05-01T09:30:00Z", deck.CreatedAt)
	assert.Equal(t, "Demo", deck.Title)
}

func TestGateway_Generate_KeepsExistingIdentity(t *testing.T) {
	strategy := mocks.NewGenerator(t)
	g := NewGateway(strategy, testutil.MakeNoopLogger())

	strategy.On("Generate", mock.Anything, mock.Anything).Return(model.Deck{
		ID:        "relay-id",
		Title:     "Relay title",
		CreatedAt: "2023-01-01T00:00:00Z",
		Slides:    []model.Slide{{Title: "A"}},
	}, nil)

	deck, err := g.Generate(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "relay-id", deck.ID)
	assert.Equal(t, "Relay title", deck.Title)
	assert.Equal(t, "2023-01-01T00:00:00Z", deck.CreatedAt)
}

func TestGateway_Generate_NeverEmbedsCredential(t *testing.T) {
	strategy := mocks.NewGenerator(t)
	log, buf := testutil.MakeBufferLogger()
	g := NewGateway(strategy, log)

	req := validRequest()
	strategy.On("Generate", mock.Anything, mock.Anything).Return(model.Deck{
		Slides: []model.Slide{{Title: "Key " + req.Credential, Content: "echo: " + req.Credential}},
	}, nil)

	deck, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.NotContains(t, deck.Slides[0].Title, req.Credential)
	assert.NotContains(t, deck.Slides[0].Content, req.Credential)
	assert.NotContains(t, buf.String(), req.Credential)
}

func TestGateway_Generate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		deck    model.Deck
		err     error
		wantErr error
	}{
		{name: "api error passes through", err: apierrors.NewErrParseEmpty(), wantErr: apierrors.ErrParseEmpty},
		{name: "plain error becomes generation failure", err: errors.New("socket closed"), wantErr: apierrors.ErrGenerationFailed},
		{name: "empty deck", deck: model.Deck{}, wantErr: apierrors.ErrGenerationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := mocks.NewGenerator(t)
			g := NewGateway(strategy, testutil.MakeNoopLogger())
			strategy.On("Generate", mock.Anything, mock.Anything).Return(tt.deck, tt.err)

			_, err := g.Generate(context.Background(), validRequest())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
