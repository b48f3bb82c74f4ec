package collections

import (
	"context"
	"sync"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	portsrepo "github.com/SscSPs/offering_tracker/internal/core/ports/repositories"
)

// Collection caches one stored collection and serializes its updates.
// The cached value is replaced only after the store accepted the new value, so a failed save
// leaves both the store and the cache at the previous state.
type Collection[T any] struct {
	store    portsrepo.CollectionStore
	key      string
	defaults func() T
	clone    func(T) T

	mu     sync.Mutex
	loaded bool
	value  T
}

// NewCollection creates a collection bound to key. defaults seeds the value when the store has
// nothing under key; clone copies values handed in and out of the cache.
func NewCollection[T any](store portsrepo.CollectionStore, key string, defaults func() T, clone func(T) T) *Collection[T] {
	return &Collection[T]{store: store, key: key, defaults: defaults, clone: clone}
}

// Load reads the collection from the store if it has not been read yet.
func (c *Collection[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ensureLoaded(ctx)
}

// Get returns a copy of the current value.
func (c *Collection[T]) Get(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		var zero T
		return zero, err
	}
	return c.clone(c.value), nil
}

// Update applies fn to a copy of the current value and saves the result.
func (c *Collection[T]) Update(ctx context.Context, fn func(T) (T, error)) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return zero, err
	}

	next, err := fn(c.clone(c.value))
	if err != nil {
		return zero, err
	}
	if err := c.store.SaveCollection(ctx, c.key, next); err != nil {
		return zero, apperrors.NewPersistenceError("save", c.key, err)
	}
	c.value = c.clone(next)
	return c.clone(next), nil
}

func (c *Collection[T]) ensureLoaded(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	var v T
	found, err := c.store.LoadCollection(ctx, c.key, &v)
	if err != nil {
		return apperrors.NewPersistenceError("load", c.key, err)
	}
	if !found {
		v = c.defaults()
	}
	c.value = v
	c.loaded = true
	return nil
}
