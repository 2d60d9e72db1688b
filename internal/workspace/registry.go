package workspace

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/deckhub-server/internal/logger"
	"github.com/dtroode/deckhub-server/internal/model"
)

// Registry keeps one open workspace per owner.
type Registry struct {
	generator model.Generator
	store     model.DeckStore
	logger    *logger.Logger

	mu         sync.Mutex
	workspaces map[uuid.UUID]*Workspace
}

// NewRegistry creates new workspace registry.
func NewRegistry(generator model.Generator, store model.DeckStore, logger *logger.Logger) *Registry {
	return &Registry{
		generator:  generator,
		store:      store,
		logger:     logger,
		workspaces: make(map[uuid.UUID]*Workspace),
	}
}

// Acquire returns the owner's workspace, opening it on first use.
func (r *Registry) Acquire(ctx context.Context, ownerID uuid.UUID) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, ok := r.workspaces[ownerID]
	if !ok {
		ws = New(ownerID, r.generator, r.store, NewLogNotifier(r.logger.With("owner", ownerID)), r.logger)
		ws.Open(ctx)
		r.workspaces[ownerID] = ws
	}
	return ws
}

// Release closes and forgets the owner's workspace.
func (r *Registry) Release(ownerID uuid.UUID) {
	r.mu.Lock()
	ws, ok := r.workspaces[ownerID]
	delete(r.workspaces, ownerID)
	r.mu.Unlock()

	if ok {
		ws.Close()
	}
}
