// Package deckstore keeps each owner's decks as one JSON array in blob storage.
package deckstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/logger"
	"github.com/dtroode/deckhub-server/internal/model"
)

// collectionName is the fixed object name of an owner's collection.
const collectionName = "saved_presentations.json"

var _ model.DeckStore = (*Store)(nil)

// Store implements model.DeckStore over model.Storage.
type Store struct {
	storage model.Storage
	logger  *logger.Logger

	mu     sync.Mutex
	owners map[uuid.UUID]*sync.Mutex
}

// New creates new deck store.
func New(storage model.Storage, logger *logger.Logger) *Store {
	return &Store{
		storage: storage,
		logger:  logger,
		owners:  make(map[uuid.UUID]*sync.Mutex),
	}
}

// Key returns the storage key of the owner's collection.
func Key(ownerID uuid.UUID) string {
	return ownerID.String() + "/" + collectionName
}

func (s *Store) lock(ownerID uuid.UUID) func() {
	s.mu.Lock()
	m, ok := s.owners[ownerID]
	if !ok {
		m = &sync.Mutex{}
		s.owners[ownerID] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// List returns the owner's decks in stored order. Storage failures are
// logged and yield an empty list.
func (s *Store) List(ctx context.Context, ownerID uuid.UUID) []model.Deck {
	decks, err := s.load(ctx, ownerID)
	if err != nil {
		s.logger.Error("Deck store: failed to load presentations", "owner", ownerID, "error", err)
		return []model.Deck{}
	}
	return decks
}

// Get returns a single deck by id.
func (s *Store) Get(ctx context.Context, ownerID uuid.UUID, deckID string) (model.Deck, error) {
	for _, d := range s.List(ctx, ownerID) {
		if d.ID == deckID {
			return d, nil
		}
	}
	return model.Deck{}, apierrors.NewErrDeckNotFound(deckID)
}

// Upsert replaces the deck with the same id in place or appends it, then
// writes the whole collection. On failure the stored collection is unchanged.
func (s *Store) Upsert(ctx context.Context, ownerID uuid.UUID, deck model.Deck) error {
	if deck.ID == "" {
		return apierrors.NewErrValidation("id", "presentation id is required")
	}

	unlock := s.lock(ownerID)
	defer unlock()

	decks, err := s.load(ctx, ownerID)
	if err != nil {
		s.logger.Error("Deck store: failed to load presentations before save", "owner", ownerID, "error", err)
		return apierrors.NewErrPersistence(err)
	}

	replaced := false
	for i := range decks {
		if decks[i].ID == deck.ID {
			decks[i] = deck
			replaced = true
			break
		}
	}
	if !replaced {
		decks = append(decks, deck)
	}

	if err := s.save(ctx, ownerID, decks); err != nil {
		s.logger.Error("Deck store: failed to save presentations", "owner", ownerID, "deckID", deck.ID, "error", err)
		return apierrors.NewErrPersistence(err)
	}

	s.logger.Debug("Deck store: presentation saved", "owner", ownerID, "deckID", deck.ID, "replaced", replaced)
	return nil
}

// Delete removes the deck if present.
func (s *Store) Delete(ctx context.Context, ownerID uuid.UUID, deckID string) error {
	unlock := s.lock(ownerID)
	defer unlock()

	decks, err := s.load(ctx, ownerID)
	if err != nil {
		s.logger.Error("Deck store: failed to load presentations before delete", "owner", ownerID, "error", err)
		return apierrors.NewErrPersistence(err)
	}

	kept := decks[:0]
	for _, d := range decks {
		if d.ID != deckID {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(decks) {
		return nil
	}

	if err := s.save(ctx, ownerID, kept); err != nil {
		s.logger.Error("Deck store: failed to save presentations after delete", "owner", ownerID, "deckID", deckID, "error", err)
		return apierrors.NewErrPersistence(err)
	}
	return nil
}

// load reads the collection. A missing collection is empty.
func (s *Store) load(ctx context.Context, ownerID uuid.UUID) ([]model.Deck, error) {
	rc, err := s.storage.Download(ctx, Key(ownerID))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return []model.Deck{}, nil
		}
		return nil, fmt.Errorf("failed to download collection: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []model.Deck{}, nil
	}

	var decks []model.Deck
	if err := json.Unmarshal(data, &decks); err != nil {
		return nil, fmt.Errorf("failed to decode collection: %w", err)
	}
	if decks == nil {
		decks = []model.Deck{}
	}
	return decks, nil
}

func (s *Store) save(ctx context.Context, ownerID uuid.UUID, decks []model.Deck) error {
	data, err := json.Marshal(decks)
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}
	if err := s.storage.Upload(ctx, Key(ownerID), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload collection: %w", err)
	}
	return nil
}
