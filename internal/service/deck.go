package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/deckhub-server/internal/apierrors"
	"github.com/dtroode/deckhub-server/internal/editor"
	"github.com/dtroode/deckhub-server/internal/logger"
	"github.com/dtroode/deckhub-server/internal/model"
	"github.com/dtroode/deckhub-server/internal/templates"
	"github.com/dtroode/deckhub-server/internal/workspace"
)

// Deck serves deck operations of authenticated owners.
type Deck struct {
	workspaces *workspace.Registry
	catalog    *templates.Catalog
	logger     *logger.Logger
}

func NewDeck(workspaces *workspace.Registry, catalog *templates.Catalog, logger *logger.Logger) *Deck {
	return &Deck{
		workspaces: workspaces,
		catalog:    catalog,
		logger:     logger,
	}
}

// OnAuthEvent drops the owner's workspace on sign-out.
func (s *Deck) OnAuthEvent(event model.AuthEvent) {
	if !event.SignedIn {
		s.workspaces.Release(event.Identity.UserID)
	}
}

// Generate creates, stores and returns a new deck.
func (s *Deck) Generate(ctx context.Context, ownerID uuid.UUID, req model.GenerationRequest) (model.Deck, error) {
	ws := s.workspaces.Acquire(ctx, ownerID)

	deck, err := ws.Generate(ctx, req)
	if err != nil {
		s.logger.Info("Deck service: generation did not complete", "owner", ownerID, "error", err.Error())
		return deck, err
	}

	s.logger.Info("Deck service: presentation created", "owner", ownerID, "deckID", deck.ID)
	return deck, nil
}

// List returns the owner's decks.
func (s *Deck) List(ctx context.Context, ownerID uuid.UUID) []model.Deck {
	return s.workspaces.Acquire(ctx, ownerID).Decks()
}

// Get returns one deck.
func (s *Deck) Get(ctx context.Context, ownerID uuid.UUID, deckID string) (model.Deck, error) {
	return s.workspaces.Acquire(ctx, ownerID).Get(deckID)
}

// Save applies edit through an editor session and persists the result.
// Slides can be retitled and rewritten but not added or removed.
func (s *Deck) Save(ctx context.Context, ownerID uuid.UUID, edit model.DeckEdit) (model.Deck, error) {
	ws := s.workspaces.Acquire(ctx, ownerID)

	deck, err := ws.Edit(edit.ID, func(e *editor.Editor) error {
		if n := len(e.Committed().Slides); len(edit.Slides) != n {
			return apierrors.NewErrValidation("slides", fmt.Sprintf("expected %d slides, got %d", n, len(edit.Slides)))
		}

		e.StartEditing()
		if err := e.SetTitle(edit.Title); err != nil {
			e.Discard()
			return err
		}
		for i, slide := range edit.Slides {
			if err := e.SetSlideTitle(i, slide.Title); err != nil {
				e.Discard()
				return err
			}
			if err := e.SetSlideContent(i, slide.Content); err != nil {
				e.Discard()
				return err
			}
		}
		return e.Save(ctx)
	})
	if err != nil {
		s.logger.Info("Deck service: save did not complete", "owner", ownerID, "deckID", edit.ID, "error", err.Error())
		return deck, err
	}

	s.logger.Info("Deck service: presentation saved", "owner", ownerID, "deckID", deck.ID)
	return deck, nil
}

// Delete removes one deck. Deleting an unknown deck is a no-op.
func (s *Deck) Delete(ctx context.Context, ownerID uuid.UUID, deckID string) error {
	return s.workspaces.Acquire(ctx, ownerID).Delete(ctx, deckID)
}

// Export returns the deck as a downloadable JSON document.
func (s *Deck) Export(ctx context.Context, ownerID uuid.UUID, deckID string) ([]byte, string, error) {
	ws := s.workspaces.Acquire(ctx, ownerID)

	var (
		data []byte
		name string
	)
	_, err := ws.Edit(deckID, func(e *editor.Editor) error {
		var err error
		data, name, err = e.Export()
		return err
	})
	if err != nil {
		return nil, "", err
	}
	return data, name, nil
}

// ListTemplates returns catalog templates matching category and title query.
func (s *Deck) ListTemplates(category, query string) []model.Template {
	return s.catalog.Filter(category, query)
}

// UseTemplate copies a template into a new deck of the owner.
func (s *Deck) UseTemplate(ctx context.Context, ownerID uuid.UUID, templateID string) (model.Deck, error) {
	deck, err := s.catalog.Instantiate(templateID)
	if err != nil {
		return model.Deck{}, err
	}

	deck, err = s.workspaces.Acquire(ctx, ownerID).Add(ctx, deck)
	if err != nil {
		s.logger.Error("Deck service: failed to add template presentation", "owner", ownerID, "templateID", templateID, "error", err.Error())
		return deck, err
	}

	s.logger.Info("Deck service: presentation created from template", "owner", ownerID, "templateID", templateID, "deckID", deck.ID)
	return deck, nil
}
