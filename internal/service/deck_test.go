package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/deckstore"
	"github.com/dtroode/deckhub-server/internal/mocks"
	"github.com/dtroode/deckhub-server/internal/model"
	"github.com/dtroode/deckhub-server/internal/storage/file"
	"github.com/dtroode/deckhub-server/internal/templates"
	"github.com/dtroode/deckhub-server/internal/testutil"
	"github.com/dtroode/deckhub-server/internal/workspace"
)

func newTestDeckService(t *testing.T) (*Deck, *mocks.Generator, *deckstore.Store) {
	t.Helper()
	fs, err := file.New(t.TempDir())
	require.NoError(t, err)
	store := deckstore.New(fs, testutil.MakeNoopLogger())
	gen := mocks.NewGenerator(t)
	registry := workspace.NewRegistry(gen, store, testutil.MakeNoopLogger())
	return NewDeck(registry, templates.New(), testutil.MakeNoopLogger()), gen, store
}

func twoSlideDeck(id string) model.Deck {
	return model.Deck{
		ID:        id,
		Title:     "Team Sync",
		CreatedAt: "2024-01-01T00:00:00Z",
		Slides:    []model.Slide{{Title: "Team Sync", Content: "Created with AI"}, {Title: "Key Takeaways", Content: "• Sync"}},
	}
}

func TestDeckService_GenerateListGet(t *testing.T) {
	ctx := context.Background()
	svc, gen, store := newTestDeckService(t)
	owner := uuid.New()

	req := model.GenerationRequest{Title: "Team Sync", Content: "notes", Consent: true}
	gen.On("Generate", mock.Anything, req).Return(twoSlideDeck("d1"), nil).Once()

	deck, err := svc.Generate(ctx, owner, req)
	require.NoError(t, err)
	assert.Equal(t, "d1", deck.ID)

	assert.Len(t, svc.List(ctx, owner), 1)
	assert.Len(t, store.List(ctx, owner), 1)

	got, err := svc.Get(ctx, owner, "d1")
	require.NoError(t, err)
	assert.Equal(t, deck, got)

	_, err = svc.Get(ctx, uuid.New(), "d1")
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
}

func TestDeckService_Save(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newTestDeckService(t)
	owner := uuid.New()
	require.NoError(t, store.Upsert(ctx, owner, twoSlideDeck("d1")))

	saved, err := svc.Save(ctx, owner, model.DeckEdit{
		ID:    "d1",
		Title: "Renamed",
		Slides: []model.SlideEdit{
			{Title: "Renamed", Content: "Created with AI"},
			{Title: "Wrap up", Content: "• Done"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", saved.Title)
	assert.Equal(t, "Wrap up", saved.Slides[1].Title)
	assert.Equal(t, "2024-01-01T00:00:00Z", saved.CreatedAt)

	stored, err := store.Get(ctx, owner, "d1")
	require.NoError(t, err)
	assert.Equal(t, saved, stored)
}

func TestDeckService_Save_SlideCountMismatch(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newTestDeckService(t)
	owner := uuid.New()
	require.NoError(t, store.Upsert(ctx, owner, twoSlideDeck("d1")))

	_, err := svc.Save(ctx, owner, model.DeckEdit{ID: "d1", Title: "x", Slides: []model.SlideEdit{{Title: "only"}}})
	assert.ErrorIs(t, err, apierrors.ErrValidation)

	stored, err := store.Get(ctx, owner, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Team Sync", stored.Title)
}

func TestDeckService_Save_BlankTitle(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newTestDeckService(t)
	owner := uuid.New()
	require.NoError(t, store.Upsert(ctx, owner, twoSlideDeck("d1")))

	_, err := svc.Save(ctx, owner, model.DeckEdit{
		ID:    "d1",
		Title: "  ",
		Slides: []model.SlideEdit{
			{Title: "Team Sync", Content: "Created with AI"},
			{Title: "Key Takeaways", Content: "• Sync"},
		},
	})
	assert.ErrorIs(t, err, apierrors.ErrValidation)

	stored, err := store.Get(ctx, owner, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Team Sync", stored.Title)
}

func TestDeckService_DeleteAndExport(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newTestDeckService(t)
	owner := uuid.New()
	require.NoError(t, store.Upsert(ctx, owner, twoSlideDeck("d1")))

	data, name, err := svc.Export(ctx, owner, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Team_Sync.json", name)

	var decoded model.Deck
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "d1", decoded.ID)

	require.NoError(t, svc.Delete(ctx, owner, "d1"))
	require.NoError(t, svc.Delete(ctx, owner, "d1"))
	assert.Empty(t, svc.List(ctx, owner))

	_, _, err = svc.Export(ctx, owner, "d1")
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
}

func TestDeckService_SignOutReleasesWorkspace(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newTestDeckService(t)
	owner := uuid.New()

	assert.Empty(t, svc.List(ctx, owner))

	require.NoError(t, store.Upsert(ctx, owner, twoSlideDeck("d1")))
	assert.Empty(t, svc.List(ctx, owner), "open workspace keeps its loaded list")

	svc.OnAuthEvent(model.AuthEvent{Identity: model.Identity{UserID: owner}, SignedIn: false})
	assert.Len(t, svc.List(ctx, owner), 1)
}

func TestDeckService_Templates(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newTestDeckService(t)
	owner := uuid.New()

	listed := svc.ListTemplates("Marketing", "")
	require.Len(t, listed, 1)
	assert.Equal(t, "template-3", listed[0].ID)

	deck, err := svc.UseTemplate(ctx, owner, "template-3")
	require.NoError(t, err)
	assert.Equal(t, "Marketing Campaign", deck.Title)
	assert.NotEqual(t, "template-3", deck.ID)

	stored, err := store.Get(ctx, owner, deck.ID)
	require.NoError(t, err)
	assert.Equal(t, deck, stored)
	assert.Len(t, svc.List(ctx, owner), 1)

	_, err = svc.UseTemplate(ctx, owner, "missing")
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
}
