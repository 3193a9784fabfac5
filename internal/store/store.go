// SPDX-License-Identifier: MPL-2.0

// Package store persists the flashcard registry as a single JSON document.
// The on-disk shape is the compatibility contract shared with other
// implementations of the same store:
//
//	{"collections": {"<name>": {"cards": [{"id": "...", "front": "...", "back": "..."}]}}}
//
// Loading is deliberately lenient: a missing, unreadable, or structurally
// invalid file hydrates an empty registry instead of failing the program.
// Saving is strict: failures surface as actionable errors.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"cardbox/internal/deck"
	"cardbox/internal/issue"
)

// Store is the persistence gateway the rest of the program depends on.
type Store interface {
	Load() (*deck.Registry, error)
	Save(*deck.Registry) error
}

// FileStore reads and writes the registry document at a fixed path.
type FileStore struct {
	path string
}

// document mirrors the wire shape. Decoding into explicit record types
// rejects shapes the loosely-typed contract would otherwise let through.
type document struct {
	Collections map[string]collectionDoc `json:"collections"`
}

type collectionDoc struct {
	Cards []cardDoc `json:"cards"`
}

type cardDoc struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// NewFileStore returns a store backed by the JSON document at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string { return s.path }

// Load hydrates a registry from disk. Absent or corrupt storage yields an
// empty registry and a nil error; the unreadable state is lost, the program
// keeps running.
func (s *FileStore) Load() (*deck.Registry, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return deck.NewRegistry(), nil
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return deck.NewRegistry(), nil
	}
	if doc.Collections == nil {
		// Valid JSON but not our document shape.
		return deck.NewRegistry(), nil
	}

	reg := deck.NewRegistry()
	for name, cd := range doc.Collections {
		if name == "" {
			continue
		}
		col := &deck.Collection{Name: name}
		for _, c := range cd.Cards {
			// Boundary validation: a card missing any field does not
			// satisfy the domain invariants and is dropped.
			if c.ID == "" || c.Front == "" || c.Back == "" {
				continue
			}
			col.Cards = append(col.Cards, deck.Card{ID: c.ID, Front: c.Front, Back: c.Back})
		}
		reg.Put(col)
	}
	return reg, nil
}

// Save serializes the full registry and replaces the document atomically,
// writing to a temp file in the same directory and renaming it over the
// target. I/O failures are surfaced, never swallowed.
func (s *FileStore) Save(reg *deck.Registry) error {
	doc := document{Collections: make(map[string]collectionDoc, reg.Len())}
	for _, name := range reg.Names() {
		col, err := reg.Collection(name)
		if err != nil {
			return err
		}
		cards := make([]cardDoc, 0, col.Len())
		for _, c := range col.Cards {
			cards = append(cards, cardDoc{ID: c.ID, Front: c.Front, Back: c.Back})
		}
		doc.Collections[name] = collectionDoc{Cards: cards}
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return s.saveError(err)
	}
	raw = append(raw, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return s.saveError(err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return s.saveError(err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return s.saveError(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return s.saveError(err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return s.saveError(err)
	}
	return nil
}

func (s *FileStore) saveError(cause error) error {
	return issue.NewErrorContext().
		WithOperation("save flashcards").
		WithResource(s.path).
		WithSuggestion("Check that the data directory exists and is writable").
		WithSuggestion("Pass --data to use a different data file").
		Wrap(cause).
		Build()
}

// IsPersistenceError reports whether err came from the persistence layer.
func IsPersistenceError(err error) bool {
	var ae *issue.ActionableError
	return errors.As(err, &ae)
}
