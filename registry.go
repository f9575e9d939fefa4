package gowrites

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// writerKey is a unique key per type parameter T for registry storage.
type writerKey[T any] struct{}

// ErrWriterConflict indicates a second writer was registered for a type that
// already has one. Ambiguity is rejected at registration time, never resolved
// by priority.
var ErrWriterConflict = errors.New("gowrites: writer already registered for type")

// Registry maps static types to writer instances for call sites where the
// writer cannot be threaded through as a value (plugin seams, wiring tables).
// It is populated once at startup; Register rejects duplicates so resolution
// stays unambiguous. Lookups after wiring are cheap and concurrent-safe.
type Registry struct {
	mu      sync.RWMutex
	writers map[any]any
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{writers: map[any]any{}}
}

// Register binds w as the writer for T. A second registration for the same T
// returns ErrWriterConflict.
func Register[T any](r *Registry, w Writer[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.writers[writerKey[T]{}]; ok {
		return fmt.Errorf("%w: %s", ErrWriterConflict, reflect.TypeOf((*T)(nil)).Elem())
	}
	r.writers[writerKey[T]{}] = w
	return nil
}

// MustRegister is Register that panics on conflict, for static wiring blocks.
func MustRegister[T any](r *Registry, w Writer[T]) {
	if err := Register(r, w); err != nil {
		panic(err)
	}
}

// WriterOf returns the writer registered for T, if any.
func WriterOf[T any](r *Registry) (Writer[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.writers[writerKey[T]{}]
	if !ok {
		return nil, false
	}
	tw, ok := w.(Writer[T])
	return tw, ok
}

// MustWriterOf is WriterOf that panics when no writer is registered for T.
func MustWriterOf[T any](r *Registry) Writer[T] {
	w, ok := WriterOf[T](r)
	if !ok {
		panic(fmt.Sprintf("gowrites: no writer registered for %s", reflect.TypeOf((*T)(nil)).Elem()))
	}
	return w
}
