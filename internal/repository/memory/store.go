// FILE: internal/repository/memory/store.go
// In-memory catalog store implementing the same unit-of-work contracts as
// the GORM implementation. Used by unit tests and local experiments where
// no Postgres instance is available.
package memory

import (
	"context"
	"sync"

	"template-catalog-be/internal/entity"
	"template-catalog-be/internal/repository/unitofwork"
)

type catalogState struct {
	templates map[uint64]entity.Template
	features  map[uint64]entity.Feature
	links     map[uint64]entity.Link

	templateSeq uint64
	featureSeq  uint64
	linkSeq     uint64
}

func newCatalogState() *catalogState {
	return &catalogState{
		templates: make(map[uint64]entity.Template),
		features:  make(map[uint64]entity.Feature),
		links:     make(map[uint64]entity.Link),
	}
}

func (s *catalogState) clone() *catalogState {
	c := newCatalogState()
	for k, v := range s.templates {
		c.templates[k] = v
	}
	for k, v := range s.features {
		c.features[k] = v
	}
	for k, v := range s.links {
		c.links[k] = v
	}
	c.templateSeq = s.templateSeq
	c.featureSeq = s.featureSeq
	c.linkSeq = s.linkSeq
	return c
}

// Store holds the shared mutable state behind all memory repositories.
type Store struct {
	mu    sync.Mutex
	state *catalogState
}

func NewStore() *Store {
	return &Store{state: newCatalogState()}
}

// RepositoryFactory produces memory-backed units of work over one Store.
type RepositoryFactory struct {
	store *Store
}

func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &RepositoryFactory{store: store}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

// unitOfWork snapshots the whole state on Begin so Rollback can restore it.
// Catalog state is small, a full copy is cheaper than a write log.
type unitOfWork struct {
	store    *Store
	snapshot *catalogState
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.snapshot = u.store.state.clone()
	return nil
}

func (u *unitOfWork) Commit() error {
	u.snapshot = nil
	return nil
}

func (u *unitOfWork) Rollback() error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	if u.snapshot != nil {
		u.store.state = u.snapshot
		u.snapshot = nil
	}
	return nil
}
