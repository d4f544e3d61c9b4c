package repos

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/pkg/dbctx"
)

// FakeDocumentRepo is an in-memory DocumentRepo for tests. Aggregates are
// stored by the value of their exported ID field, supplied via the keyFn.
type FakeDocumentRepo[T any] struct {
	mu    sync.Mutex
	docs  map[uuid.UUID]*T
	keyFn func(*T) uuid.UUID

	// FailNext causes the next call to fail, simulating a storage fault.
	FailNext bool
}

func NewFakeDocumentRepo[T any](keyFn func(*T) uuid.UUID) *FakeDocumentRepo[T] {
	return &FakeDocumentRepo[T]{
		docs:  make(map[uuid.UUID]*T),
		keyFn: keyFn,
	}
}

func (r *FakeDocumentRepo[T]) failure() error {
	if r.FailNext {
		r.FailNext = false
		return fmt.Errorf("simulated repository failure")
	}
	return nil
}

func (r *FakeDocumentRepo[T]) Get(_ dbctx.Context, id uuid.UUID) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failure(); err != nil {
		return nil, err
	}
	doc, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (r *FakeDocumentRepo[T]) GetAll(_ dbctx.Context) ([]*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failure(); err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(r.docs))
	for _, doc := range r.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (r *FakeDocumentRepo[T]) Upsert(_ dbctx.Context, doc *T) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failure(); err != nil {
		return nil, err
	}
	r.docs[r.keyFn(doc)] = doc
	return doc, nil
}

func (r *FakeDocumentRepo[T]) Delete(_ dbctx.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failure(); err != nil {
		return err
	}
	delete(r.docs, id)
	return nil
}
