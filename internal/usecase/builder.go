// Package usecase holds the application services: the builder that owns
// the working record and the exporter that turns it into artifacts.
package usecase

import (
	"context"
	"errors"
	"sync"

	"resume-builder/internal/domain"
	"resume-builder/internal/storage"
)

// Builder is the single working copy of the resume. All mutations go
// through Update, which replaces the record wholesale and persists the
// new snapshot before releasing the lock.
type Builder struct {
	store storage.Store

	mu     sync.RWMutex
	rec    domain.Resume
	loaded bool
}

func NewBuilder(store storage.Store) *Builder {
	return &Builder{store: store}
}

// Load hydrates the builder from the store. A missing resume slot yields
// the empty default record; the theme slot is applied on top either way
// so the color preference survives a cleared record.
func (b *Builder) Load(ctx context.Context) error {
	rec, err := b.store.LoadResume(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		rec = domain.NewResume()
	} else if err != nil {
		return err
	}
	if t, err := b.store.LoadTheme(ctx); err == nil {
		rec.ThemeSettings = t
	}

	b.mu.Lock()
	b.rec = rec
	b.loaded = true
	b.mu.Unlock()
	return nil
}

// Current returns a copy of the working record. ok is false until Load
// has run.
func (b *Builder) Current() (domain.Resume, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rec, b.loaded
}

// Update applies fn to the working record and persists the result. The
// record is only replaced if both fn and the save succeed.
func (b *Builder) Update(ctx context.Context, fn func(domain.Resume) (domain.Resume, error)) (domain.Resume, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next, err := fn(b.rec)
	if err != nil {
		return b.rec, err
	}
	if err := b.store.SaveResume(ctx, next); err != nil {
		return b.rec, err
	}
	b.rec = next
	b.loaded = true
	return next, nil
}

// SetTheme updates the record and the standalone theme slot together.
func (b *Builder) SetTheme(ctx context.Context, t domain.ThemeSettings) (domain.Resume, error) {
	rec, err := b.Update(ctx, func(r domain.Resume) (domain.Resume, error) {
		return r.WithTheme(t), nil
	})
	if err != nil {
		return rec, err
	}
	if err := b.store.SaveTheme(ctx, t); err != nil {
		return rec, err
	}
	return rec, nil
}

// Clear removes the persisted resume slot. The working record is left
// in place; it reverts to the empty default on the next Load. The theme
// slot survives either way.
func (b *Builder) Clear(ctx context.Context) error {
	return b.store.ClearResume(ctx)
}
