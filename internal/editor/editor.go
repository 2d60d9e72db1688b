// Package editor implements the view and edit state machine of an open deck.
package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/model"
)

// State is the editor mode.
type State int

const (
	Viewing State = iota
	Editing
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "viewing"
}

var (
	ErrNotEditing      = errors.New("presentation is not being edited")
	ErrSlideOutOfRange = errors.New("slide index out of range")
)

var whitespaceRun = regexp.MustCompile(`\s+`)

var savedNotification = model.Notification{
	Level:       model.NotificationSuccess,
	Title:       "Presentation saved",
	Description: "Your changes have been saved",
}

// Editor holds one open deck. The committed deck is only replaced on Save;
// edits go to a scratch copy.
type Editor struct {
	store    model.DeckStore
	notifier model.Notifier
	ownerID  uuid.UUID

	deck    model.Deck
	scratch *model.Deck
	current int
}

// New opens deck in the Viewing state on its first slide.
func New(deck model.Deck, ownerID uuid.UUID, store model.DeckStore, notifier model.Notifier) *Editor {
	return &Editor{
		store:    store,
		notifier: notifier,
		ownerID:  ownerID,
		deck:     deck,
	}
}

// State returns the current mode.
func (e *Editor) State() State {
	if e.scratch != nil {
		return Editing
	}
	return Viewing
}

// Deck returns the displayed deck: the scratch copy while editing.
func (e *Editor) Deck() model.Deck {
	if e.scratch != nil {
		return e.scratch.Clone()
	}
	return e.deck.Clone()
}

// Committed returns the last committed deck.
func (e *Editor) Committed() model.Deck {
	return e.deck.Clone()
}

// Current returns the index of the displayed slide.
func (e *Editor) Current() int {
	return e.current
}

// StartEditing clones the committed deck into a scratch copy. The slide
// cursor is kept. Calling it while already editing keeps the scratch copy.
func (e *Editor) StartEditing() {
	if e.scratch != nil {
		return
	}
	scratch := e.deck.Clone()
	e.scratch = &scratch
}

// SetTitle changes the scratch deck title. A blank title is rejected.
func (e *Editor) SetTitle(title string) error {
	if e.scratch == nil {
		return ErrNotEditing
	}
	if strings.TrimSpace(title) == "" {
		return apierrors.NewErrValidation("title", "must not be empty")
	}
	e.scratch.Title = title
	return nil
}

// SetSlideTitle changes a scratch slide title.
func (e *Editor) SetSlideTitle(index int, title string) error {
	slide, err := e.scratchSlide(index)
	if err != nil {
		return err
	}
	slide.Title = title
	return nil
}

// SetSlideContent changes a scratch slide content.
func (e *Editor) SetSlideContent(index int, content string) error {
	slide, err := e.scratchSlide(index)
	if err != nil {
		return err
	}
	slide.Content = content
	return nil
}

func (e *Editor) scratchSlide(index int) (*model.Slide, error) {
	if e.scratch == nil {
		return nil, ErrNotEditing
	}
	if index < 0 || index >= len(e.scratch.Slides) {
		return nil, fmt.Errorf("%w: %d", ErrSlideOutOfRange, index)
	}
	return &e.scratch.Slides[index], nil
}

// Save commits the scratch copy and persists it. The editor returns to
// Viewing even when persisting fails; the committed deck stays in memory and
// the failure is reported through the notifier and the returned error.
func (e *Editor) Save(ctx context.Context) error {
	if e.scratch == nil {
		return ErrNotEditing
	}

	e.deck = *e.scratch
	e.scratch = nil
	e.clamp()

	if err := e.store.Upsert(ctx, e.ownerID, e.deck.Clone()); err != nil {
		e.notify(model.Notification{
			Level:       model.NotificationError,
			Title:       "Error",
			Description: describe(err),
		})
		return err
	}

	e.notify(savedNotification)
	return nil
}

// Discard drops the scratch copy.
func (e *Editor) Discard() {
	e.scratch = nil
	e.clamp()
}

// Previous moves to the previous slide, stopping at the first one.
func (e *Editor) Previous() {
	e.JumpTo(e.current - 1)
}

// Next moves to the next slide, stopping at the last one.
func (e *Editor) Next() {
	e.JumpTo(e.current + 1)
}

// JumpTo moves to slide i clamped to the deck bounds.
func (e *Editor) JumpTo(i int) {
	e.current = i
	e.clamp()
}

func (e *Editor) clamp() {
	n := len(e.Deck().Slides)
	if e.current >= n {
		e.current = n - 1
	}
	if e.current < 0 {
		e.current = 0
	}
}

// Export returns the displayed deck as JSON along with a download file name
// derived from its title.
func (e *Editor) Export() ([]byte, string, error) {
	deck := e.Deck()
	data, err := json.Marshal(deck)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal presentation: %w", err)
	}
	return data, ExportFileName(deck.Title), nil
}

// ExportFileName replaces each whitespace run in title with "_" and appends
// the .json extension.
func ExportFileName(title string) string {
	name := whitespaceRun.ReplaceAllString(title, "_")
	if name == "" {
		name = "presentation"
	}
	return name + ".json"
}

func (e *Editor) notify(n model.Notification) {
	if e.notifier != nil {
		e.notifier.Notify(n)
	}
}

func describe(err error) string {
	if apiErr, ok := apierrors.As(err); ok {
		return apiErr.Message
	}
	return err.Error()
}
