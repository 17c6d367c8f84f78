package repository

import (
	"context"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessStore resolves and mutates one concrete kind of reviewable entity.
// Reviews and reservations carry a tagged BusinessRef; the registry maps the
// tag to the store instead of resolving reference paths dynamically.
type BusinessStore interface {
	// Kind identifies which business kind this store serves.
	Kind() entity.BusinessKind

	// Exists reports whether the referenced entity is present.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// UpdateRating overwrites the aggregate rating of the referenced entity.
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error
}

// BusinessRegistry is the explicit lookup table from business kind to store.
type BusinessRegistry struct {
	stores map[entity.BusinessKind]BusinessStore
}

// NewBusinessRegistry builds a registry from the given stores.
func NewBusinessRegistry(stores ...BusinessStore) *BusinessRegistry {
	registry := &BusinessRegistry{stores: make(map[entity.BusinessKind]BusinessStore, len(stores))}
	for _, store := range stores {
		registry.stores[store.Kind()] = store
	}

	return registry
}

// Lookup returns the store serving a business kind.
func (r *BusinessRegistry) Lookup(kind entity.BusinessKind) (BusinessStore, bool) {
	store, ok := r.stores[kind]

	return store, ok
}
