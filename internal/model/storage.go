package model

import (
	"context"
	"io"
)

// Storage is a durable blob store for serialized decks.
// Download returns ErrNotFound for keys that were never written.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
