package deckstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/mocks"
	"github.com/dtroode/deckhub-server/internal/model"
	"github.com/dtroode/deckhub-server/internal/storage/file"
	"github.com/dtroode/deckhub-server/internal/testutil"
)

func newFileStore(t *testing.T) (*Store, *file.Store) {
	t.Helper()
	fs, err := file.New(t.TempDir())
	require.NoError(t, err)
	return New(fs, testutil.MakeNoopLogger()), fs
}

func deck(id, title string) model.Deck {
	return model.Deck{ID: id, Title: title, CreatedAt: "2024-01-01T00:00:00Z", Slides: []model.Slide{{Title: title}}}
}

func ids(decks []model.Deck) []string {
	out := make([]string, len(decks))
	for i, d := range decks {
		out[i] = d.ID
	}
	return out
}

func TestKey(t *testing.T) {
	owner := uuid.MustParse("6f1c1c2e-2f4b-4c59-9a55-0b7e6e0e9a11")
	assert.Equal(t, "6f1c1c2e-2f4b-4c59-9a55-0b7e6e0e9a11/saved_presentations.json", Key(owner))
}

func TestStore_ListEmpty(t *testing.T) {
	s, _ := newFileStore(t)

	decks := s.List(context.Background(), uuid.New())
	assert.NotNil(t, decks)
	assert.Empty(t, decks)
}

func TestStore_UpsertReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileStore(t)
	owner := uuid.New()

	require.NoError(t, s.Upsert(ctx, owner, deck("a", "A")))
	require.NoError(t, s.Upsert(ctx, owner, deck("b", "B")))
	require.NoError(t, s.Upsert(ctx, owner, deck("a", "A2")))

	decks := s.List(ctx, owner)
	assert.Equal(t, []string{"a", "b"}, ids(decks))
	assert.Equal(t, "A2", decks[0].Title)

	got, err := s.Get(ctx, owner, "a")
	require.NoError(t, err)
	assert.Equal(t, deck("a", "A2"), got)
}

func TestStore_OwnersAreIsolated(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileStore(t)
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, s.Upsert(ctx, alice, deck("a", "A")))

	assert.Empty(t, s.List(ctx, bob))
	_, err := s.Get(ctx, bob, "a")
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileStore(t)
	owner := uuid.New()

	require.NoError(t, s.Upsert(ctx, owner, deck("a", "A")))
	require.NoError(t, s.Upsert(ctx, owner, deck("b", "B")))

	require.NoError(t, s.Delete(ctx, owner, "a"))
	assert.Equal(t, []string{"b"}, ids(s.List(ctx, owner)))

	require.NoError(t, s.Delete(ctx, owner, "missing"))
	assert.Equal(t, []string{"b"}, ids(s.List(ctx, owner)))
}

func TestStore_CorruptCollection(t *testing.T) {
	ctx := context.Background()
	s, fs := newFileStore(t)
	owner := uuid.New()

	require.NoError(t, fs.Upload(ctx, Key(owner), strings.NewReader("{not json")))

	assert.Empty(t, s.List(ctx, owner))

	err := s.Upsert(ctx, owner, deck("a", "A"))
	assert.ErrorIs(t, err, apierrors.ErrPersistence)

	rc, err := fs.Download(ctx, Key(owner))
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "{not json", string(data), "failed save must leave stored state unchanged")
}

func TestStore_UploadFailure(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewStorage(t)
	s := New(storage, testutil.MakeNoopLogger())
	owner := uuid.New()

	storage.On("Download", mock.Anything, Key(owner)).Return(nil, model.ErrNotFound)
	storage.On("Upload", mock.Anything, Key(owner), mock.Anything).Return(errors.New("disk full"))

	err := s.Upsert(ctx, owner, deck("a", "A"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apierrors.ErrPersistence)
	assert.Contains(t, err.Error(), "disk full")
}

func TestStore_UnreadableStorage(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewStorage(t)
	s := New(storage, testutil.MakeNoopLogger())
	owner := uuid.New()

	storage.On("Download", mock.Anything, Key(owner)).Return(nil, errors.New("connection refused"))

	assert.Empty(t, s.List(ctx, owner))
	assert.ErrorIs(t, s.Upsert(ctx, owner, deck("a", "A")), apierrors.ErrPersistence)
	assert.ErrorIs(t, s.Delete(ctx, owner, "a"), apierrors.ErrPersistence)
}

func TestStore_UpsertRequiresID(t *testing.T) {
	s, _ := newFileStore(t)

	err := s.Upsert(context.Background(), uuid.New(), model.Deck{Title: "no id"})
	assert.ErrorIs(t, err, apierrors.ErrValidation)
}

func TestStore_ConcurrentUpserts(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileStore(t)
	owner := uuid.New()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Upsert(ctx, owner, deck(fmt.Sprintf("d%d", i), "T")))
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.List(ctx, owner), n)
}
