// Package workspace is the per-owner session that ties generation, storage
// and editing together.
package workspace

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/editor"
	"github.com/dtroode/deckhub-server/internal/logger"
	"github.com/dtroode/deckhub-server/internal/model"
)

// ErrClosed is returned by operations on a workspace that is not open.
var ErrClosed = errors.New("workspace is not open")

var createdNotification = model.Notification{
	Level:       model.NotificationSuccess,
	Title:       "Presentation created!",
	Description: "Your AI-powered presentation has been generated successfully",
}

// Workspace holds the decks of one owner and the deck open for viewing.
type Workspace struct {
	ownerID   uuid.UUID
	generator model.Generator
	store     model.DeckStore
	notifier  model.Notifier
	logger    *logger.Logger

	mu      sync.Mutex
	open    bool
	busy    bool
	decks   []model.Deck
	current *editor.Editor
}

// New creates a closed workspace for ownerID.
func New(ownerID uuid.UUID, generator model.Generator, store model.DeckStore, notifier model.Notifier, logger *logger.Logger) *Workspace {
	return &Workspace{
		ownerID:   ownerID,
		generator: generator,
		store:     store,
		notifier:  notifier,
		logger:    logger.With("owner", ownerID),
	}
}

// Open loads the owner's decks. Opening an open workspace reloads them.
func (w *Workspace) Open(ctx context.Context) {
	decks := w.store.List(ctx, w.ownerID)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.decks = decks
	w.open = true
	w.current = nil
}

// Close drops all in-memory state.
func (w *Workspace) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.open = false
	w.decks = nil
	w.current = nil
}

// IsOpen reports whether Open was called since the last Close.
func (w *Workspace) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// Busy reports whether a generation is in flight.
func (w *Workspace) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

// Generate runs one generation. Only one generation may run at a time; a
// second call while busy fails with ErrBusy. The new deck is stored, added to
// the list and selected. A storage failure is reported but the deck is kept
// in memory and returned with the error.
func (w *Workspace) Generate(ctx context.Context, req model.GenerationRequest) (model.Deck, error) {
	w.mu.Lock()
	if !w.open {
		w.mu.Unlock()
		return model.Deck{}, ErrClosed
	}
	if w.busy {
		w.mu.Unlock()
		return model.Deck{}, apierrors.NewErrBusy()
	}
	w.busy = true
	w.mu.Unlock()

	deck, err := w.generator.Generate(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false

	if err != nil {
		w.notifyError(err)
		return model.Deck{}, err
	}

	if err := w.addLocked(ctx, deck); err != nil {
		return deck, err
	}
	w.notify(createdNotification)
	return deck, nil
}

// Add stores a ready-made deck, adds it to the list and selects it. Like
// Generate, a storage failure keeps the deck in memory and returns it with
// the error.
func (w *Workspace) Add(ctx context.Context, deck model.Deck) (model.Deck, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.open {
		return model.Deck{}, ErrClosed
	}
	if err := w.addLocked(ctx, deck); err != nil {
		return deck, err
	}
	return deck, nil
}

func (w *Workspace) addLocked(ctx context.Context, deck model.Deck) error {
	w.put(deck)
	w.current = editor.New(deck, w.ownerID, w.store, w.notifier)

	if err := w.store.Upsert(ctx, w.ownerID, deck); err != nil {
		w.logger.Error("Workspace: failed to persist presentation", "deckID", deck.ID, "error", err)
		w.notifyError(err)
		return err
	}
	return nil
}

// Decks returns a copy of the owner's decks.
func (w *Workspace) Decks() []model.Deck {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]model.Deck, len(w.decks))
	for i, d := range w.decks {
		out[i] = d.Clone()
	}
	return out
}

// Get returns a deck by id.
func (w *Workspace) Get(id string) (model.Deck, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.open {
		return model.Deck{}, ErrClosed
	}
	i := w.indexOf(id)
	if i < 0 {
		return model.Deck{}, apierrors.NewErrDeckNotFound(id)
	}
	return w.decks[i].Clone(), nil
}

// Select opens a deck by id in a fresh editor.
func (w *Workspace) Select(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selectLocked(id)
}

func (w *Workspace) selectLocked(id string) error {
	if !w.open {
		return ErrClosed
	}
	i := w.indexOf(id)
	if i < 0 {
		return apierrors.NewErrDeckNotFound(id)
	}
	w.current = editor.New(w.decks[i].Clone(), w.ownerID, w.store, w.notifier)
	return nil
}

// Edit selects deck id and runs fn with its editor while holding the
// workspace lock. The committed deck of the editor replaces the listed one
// afterwards, including when fn fails after a commit.
func (w *Workspace) Edit(id string, fn func(e *editor.Editor) error) (model.Deck, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.selectLocked(id); err != nil {
		return model.Deck{}, err
	}

	err := fn(w.current)
	committed := w.current.Committed()
	w.put(committed)

	return committed, err
}

// Delete removes the deck from storage and from the list.
func (w *Workspace) Delete(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.open {
		return ErrClosed
	}

	if err := w.store.Delete(ctx, w.ownerID, id); err != nil {
		w.notifyError(err)
		return err
	}

	if i := w.indexOf(id); i >= 0 {
		w.decks = append(w.decks[:i], w.decks[i+1:]...)
	}
	if w.current != nil && w.current.Committed().ID == id {
		w.current = nil
	}
	return nil
}

// put replaces the deck with the same id or appends it.
func (w *Workspace) put(deck model.Deck) {
	if i := w.indexOf(deck.ID); i >= 0 {
		w.decks[i] = deck
		return
	}
	w.decks = append(w.decks, deck)
}

func (w *Workspace) indexOf(id string) int {
	for i := range w.decks {
		if w.decks[i].ID == id {
			return i
		}
	}
	return -1
}

func (w *Workspace) notify(n model.Notification) {
	if w.notifier != nil {
		w.notifier.Notify(n)
	}
}

func (w *Workspace) notifyError(err error) {
	msg := err.Error()
	if apiErr, ok := apierrors.As(err); ok {
		msg = apiErr.Message
	}
	w.notify(model.Notification{Level: model.NotificationError, Title: "Error", Description: msg})
}
