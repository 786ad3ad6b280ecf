package services

import (
	"context"

	"github.com/dmitrijs2005/listen/internal/storage"
)

// Store is the persistence port of the services.
type Store interface {
	storage.Reader
	Put(ctx context.Context, key string, value []byte) storage.WriteResult
	Remove(ctx context.Context, keys ...string) storage.WriteResult
}

// Reloader asks the widget host to refresh the given widget kind. It is
// best-effort and must not block for long.
type Reloader interface {
	Reload(ctx context.Context, kind string)
}

// NopReloader drops every request.
type NopReloader struct{}

func (NopReloader) Reload(context.Context, string) {}
