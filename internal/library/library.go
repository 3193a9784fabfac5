// SPDX-License-Identifier: MPL-2.0

// Package library ties the domain registry to the persistence gateway with
// write-through semantics: every mutating operation is durably saved before
// it returns, and a failed save leaves the in-memory registry exactly as it
// was. Callers therefore never observe an unsaved mutation.
package library

import (
	"github.com/charmbracelet/log"

	"cardbox/internal/deck"
	"cardbox/internal/store"
)

// Library owns the registry for the lifetime of the process. It is not safe
// for concurrent use; the program is single-user and strictly sequential.
type Library struct {
	reg    *deck.Registry
	store  store.Store
	logger *log.Logger
}

// Open hydrates a library from the store. Corrupt or missing storage comes
// back as an empty registry (the store's lenient-load contract).
func Open(s store.Store, logger *log.Logger) (*Library, error) {
	reg, err := s.Load()
	if err != nil {
		return nil, err
	}
	logger.Debug("library opened", "collections", reg.Len())
	return &Library{reg: reg, store: s, logger: logger}, nil
}

// mutate runs op against a clone of the registry, saves the clone, and only
// swaps it in when the save succeeds. One helper gives every mutation the
// same no-partial-state and write-through guarantees.
func (l *Library) mutate(op func(*deck.Registry) error) error {
	next := l.reg.Clone()
	if err := op(next); err != nil {
		return err
	}
	if err := l.store.Save(next); err != nil {
		l.logger.Debug("save failed, mutation discarded", "err", err)
		return err
	}
	l.reg = next
	return nil
}

// CollectionNames returns all collection names, sorted.
func (l *Library) CollectionNames() []string { return l.reg.Names() }

// CollectionCount returns the number of collections.
func (l *Library) CollectionCount() int { return l.reg.Len() }

// Collection returns the named collection for reading. Callers must not
// mutate it directly; mutations go through the Library so they persist.
func (l *Library) Collection(name string) (*deck.Collection, error) {
	return l.reg.Collection(name)
}

// CreateCollection creates an empty collection and persists the registry.
func (l *Library) CreateCollection(name string) error {
	err := l.mutate(func(r *deck.Registry) error {
		return r.Create(name)
	})
	if err == nil {
		l.logger.Debug("collection created", "name", name)
	}
	return err
}

// DeleteCollection removes a collection and all its cards, then persists.
func (l *Library) DeleteCollection(name string) error {
	err := l.mutate(func(r *deck.Registry) error {
		return r.Delete(name)
	})
	if err == nil {
		l.logger.Debug("collection deleted", "name", name)
	}
	return err
}

// AddCard appends a new card to the named collection and persists.
func (l *Library) AddCard(collection, front, back string) (deck.Card, error) {
	var card deck.Card
	err := l.mutate(func(r *deck.Registry) error {
		col, err := r.Collection(collection)
		if err != nil {
			return err
		}
		card, err = col.AddCard(front, back)
		return err
	})
	if err != nil {
		return deck.Card{}, err
	}
	l.logger.Debug("card added", "collection", collection, "id", card.ID)
	return card, nil
}

// EditCard applies a partial update to a card and persists. Blank fields
// keep their current value.
func (l *Library) EditCard(collection, id, newFront, newBack string) error {
	return l.mutate(func(r *deck.Registry) error {
		col, err := r.Collection(collection)
		if err != nil {
			return err
		}
		return col.EditCard(id, newFront, newBack)
	})
}

// DeleteCard removes a card and persists.
func (l *Library) DeleteCard(collection, id string) error {
	return l.mutate(func(r *deck.Registry) error {
		col, err := r.Collection(collection)
		if err != nil {
			return err
		}
		return col.DeleteCard(id)
	})
}

// SearchCards returns the cards in the named collection matching the query.
func (l *Library) SearchCards(collection, query string) ([]deck.Card, error) {
	col, err := l.reg.Collection(collection)
	if err != nil {
		return nil, err
	}
	return col.Search(query), nil
}

// Snapshot returns an independent copy of a collection's cards for a drill
// session.
func (l *Library) Snapshot(collection string) ([]deck.Card, error) {
	col, err := l.reg.Collection(collection)
	if err != nil {
		return nil, err
	}
	return col.Snapshot(), nil
}
