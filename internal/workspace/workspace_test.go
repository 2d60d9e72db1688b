package workspace

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/deckstore"
	"github.com/dtroode/deckhub-server/internal/editor"
	"github.com/dtroode/deckhub-server/internal/mocks"
	"github.com/dtroode/deckhub-server/internal/model"
	"github.com/dtroode/deckhub-server/internal/storage/file"
	"github.com/dtroode/deckhub-server/internal/testutil"
)

func generated(id string) model.Deck {
	return model.Deck{ID: id, Title: "Demo", CreatedAt: "2024-01-01T00:00:00Z", Slides: []model.Slide{{Title: "Demo"}, {Title: "Key Takeaways"}}}
}

func request() model.GenerationRequest {
	return model.GenerationRequest{Title: "Demo", Content: "text", Consent: true}
}

func newFileBacked(t *testing.T, gen model.Generator, notifier model.Notifier) (*Workspace, *deckstore.Store, uuid.UUID) {
	t.Helper()
	fs, err := file.New(t.TempDir())
	require.NoError(t, err)
	store := deckstore.New(fs, testutil.MakeNoopLogger())
	owner := uuid.New()
	return New(owner, gen, store, notifier, testutil.MakeNoopLogger()), store, owner
}

func TestWorkspace_ClosedRejectsOperations(t *testing.T) {
	ws, _, _ := newFileBacked(t, mocks.NewGenerator(t), mocks.NewNotifier(t))

	_, err := ws.Generate(context.Background(), request())
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, ws.Select("x"), ErrClosed)
	assert.ErrorIs(t, ws.Delete(context.Background(), "x"), ErrClosed)
}

func TestWorkspace_OpenLoadsStoredDecks(t *testing.T) {
	ws, store, owner := newFileBacked(t, mocks.NewGenerator(t), mocks.NewNotifier(t))
	require.NoError(t, store.Upsert(context.Background(), owner, generated("a")))

	ws.Open(context.Background())

	require.Len(t, ws.Decks(), 1)
	assert.Equal(t, "a", ws.Decks()[0].ID)

	ws.Close()
	assert.False(t, ws.IsOpen())
	assert.Empty(t, ws.Decks())
}

func TestWorkspace_Generate(t *testing.T) {
	gen := mocks.NewGenerator(t)
	notifier := mocks.NewNotifier(t)
	ws, store, owner := newFileBacked(t, gen, notifier)
	ws.Open(context.Background())

	gen.On("Generate", mock.Anything, request()).Return(generated("new"), nil).Once()
	notifier.On("Notify", createdNotification).Once()

	deck, err := ws.Generate(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, "new", deck.ID)
	assert.False(t, ws.Busy())

	require.NotNil(t, ws.current)
	assert.Equal(t, "new", ws.current.Deck().ID)
	assert.Len(t, ws.Decks(), 1)
	assert.Len(t, store.List(context.Background(), owner), 1)
}

func TestWorkspace_Add(t *testing.T) {
	ws, store, owner := newFileBacked(t, mocks.NewGenerator(t), mocks.NewNotifier(t))

	_, err := ws.Add(context.Background(), generated("tmpl"))
	assert.ErrorIs(t, err, ErrClosed)

	ws.Open(context.Background())
	deck, err := ws.Add(context.Background(), generated("tmpl"))
	require.NoError(t, err)
	assert.Equal(t, "tmpl", deck.ID)

	require.NotNil(t, ws.current)
	assert.Equal(t, "tmpl", ws.current.Deck().ID)
	assert.Len(t, ws.Decks(), 1)

	stored, err := store.Get(context.Background(), owner, "tmpl")
	require.NoError(t, err)
	assert.Equal(t, generated("tmpl"), stored)
}

func TestWorkspace_GenerateFailureClearsBusy(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "generation failed", err: apierrors.NewErrGenerationFailed("", errors.New("down"))},
		{name: "parse empty", err: apierrors.NewErrParseEmpty()},
		{name: "validation", err: apierrors.NewErrValidation("title", "required")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := mocks.NewGenerator(t)
			notifier := mocks.NewNotifier(t)
			ws, _, _ := newFileBacked(t, gen, notifier)
			ws.Open(context.Background())

			gen.On("Generate", mock.Anything, mock.Anything).Return(model.Deck{}, tt.err).Once()
			notifier.On("Notify", mock.MatchedBy(func(n model.Notification) bool {
				return n.Level == model.NotificationError
			})).Once()

			_, err := ws.Generate(context.Background(), request())
			assert.ErrorIs(t, err, tt.err)
			assert.False(t, ws.Busy())
			assert.Empty(t, ws.Decks())
		})
	}
}

func TestWorkspace_GenerateRejectsWhileBusy(t *testing.T) {
	gen := mocks.NewGenerator(t)
	notifier := mocks.NewNotifier(t)
	ws, _, _ := newFileBacked(t, gen, notifier)
	ws.Open(context.Background())

	started := make(chan struct{})
	release := make(chan struct{})
	gen.On("Generate", mock.Anything, mock.Anything).Return(func(context.Context, model.GenerationRequest) (model.Deck, error) {
		close(started)
		<-release
		return generated("slow"), nil
	}).Once()
	notifier.On("Notify", createdNotification).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := ws.Generate(context.Background(), request())
		assert.NoError(t, err)
	}()

	<-started
	assert.True(t, ws.Busy())
	_, err := ws.Generate(context.Background(), request())
	assert.ErrorIs(t, err, apierrors.ErrBusy)

	close(release)
	wg.Wait()
	assert.False(t, ws.Busy())
}

func TestWorkspace_GeneratePersistenceFailure(t *testing.T) {
	gen := mocks.NewGenerator(t)
	notifier := mocks.NewNotifier(t)
	store := mocks.NewDeckStore(t)
	owner := uuid.New()
	ws := New(owner, gen, store, notifier, testutil.MakeNoopLogger())

	store.On("List", mock.Anything, owner).Return([]model.Deck{})
	ws.Open(context.Background())

	gen.On("Generate", mock.Anything, mock.Anything).Return(generated("kept"), nil).Once()
	store.On("Upsert", mock.Anything, owner, generated("kept")).Return(apierrors.NewErrPersistence(assert.AnError)).Once()
	notifier.On("Notify", model.Notification{Level: model.NotificationError, Title: "Error", Description: "Failed to save presentation"}).Once()

	deck, err := ws.Generate(context.Background(), request())
	assert.ErrorIs(t, err, apierrors.ErrPersistence)
	assert.Equal(t, "kept", deck.ID)
	assert.Len(t, ws.Decks(), 1, "deck stays in memory")
	assert.False(t, ws.Busy())
}

func TestWorkspace_EditAndDelete(t *testing.T) {
	notifier := mocks.NewNotifier(t)
	ws, store, owner := newFileBacked(t, mocks.NewGenerator(t), notifier)
	ctx := context.Background()
	require.NoError(t, store.Upsert(ctx, owner, generated("a")))
	require.NoError(t, store.Upsert(ctx, owner, generated("b")))
	ws.Open(ctx)

	notifier.On("Notify", mock.MatchedBy(func(n model.Notification) bool {
		return n.Level == model.NotificationSuccess
	})).Once()

	deck, err := ws.Edit("a", func(e *editor.Editor) error {
		e.StartEditing()
		if err := e.SetTitle("Renamed"); err != nil {
			return err
		}
		return e.Save(ctx)
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", deck.Title)

	got, err := ws.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	stored, err := store.Get(ctx, owner, "a")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Title)

	require.NoError(t, ws.Delete(ctx, "a"))
	_, err = ws.Get("a")
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
	assert.Nil(t, ws.current)
	assert.Len(t, store.List(ctx, owner), 1)

	_, err = ws.Edit("missing", func(*editor.Editor) error { return nil })
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
}

func TestRegistry_AcquireRelease(t *testing.T) {
	fs, err := file.New(t.TempDir())
	require.NoError(t, err)
	store := deckstore.New(fs, testutil.MakeNoopLogger())
	r := NewRegistry(mocks.NewGenerator(t), store, testutil.MakeNoopLogger())
	owner := uuid.New()

	ws := r.Acquire(context.Background(), owner)
	assert.True(t, ws.IsOpen())
	assert.Same(t, ws, r.Acquire(context.Background(), owner))

	r.Release(owner)
	assert.False(t, ws.IsOpen())
	assert.NotSame(t, ws, r.Acquire(context.Background(), owner))
}

func TestLogNotifier(t *testing.T) {
	log, buf := testutil.MakeBufferLogger()
	n := NewLogNotifier(log)

	n.Notify(model.Notification{Level: model.NotificationError, Title: "Error", Description: "Failed to save presentation"})

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "Failed to save presentation")
}
