// SPDX-License-Identifier: MPL-2.0

package deck

import "strings"

// Collection is a named, ordered set of cards. The name is the lookup key in
// the Registry; the slice order is the authoritative listing and "in order"
// drill order.
type Collection struct {
	Name  string `json:"-"`
	Cards []Card `json:"cards"`
}

// AddCard validates and appends a new card, assigning it a fresh ID.
// Surrounding whitespace is trimmed; an empty front or back after trimming
// is rejected with ErrEmptyField.
func (c *Collection) AddCard(front, back string) (Card, error) {
	front = strings.TrimSpace(front)
	back = strings.TrimSpace(back)
	if front == "" || back == "" {
		return Card{}, ErrEmptyField
	}

	id := NewCardID()
	for c.findIndex(id) >= 0 {
		id = NewCardID()
	}

	card := Card{ID: id, Front: front, Back: back}
	c.Cards = append(c.Cards, card)
	return card, nil
}

// FindCard returns a pointer to the card with the given ID, or ErrNotFound.
// The pointer is only valid until the next mutation of the collection.
func (c *Collection) FindCard(id string) (*Card, error) {
	i := c.findIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	return &c.Cards[i], nil
}

// EditCard applies a partial update to the card with the given ID. Each of
// newFront/newBack replaces the existing value only when non-empty after
// trimming; a blank input keeps the old value, so an edit can never clear a
// field. The card's ID and position are unchanged.
func (c *Collection) EditCard(id, newFront, newBack string) error {
	card, err := c.FindCard(id)
	if err != nil {
		return err
	}
	if f := strings.TrimSpace(newFront); f != "" {
		card.Front = f
	}
	if b := strings.TrimSpace(newBack); b != "" {
		card.Back = b
	}
	return nil
}

// DeleteCard removes the card with the given ID, preserving the relative
// order of the remaining cards.
func (c *Collection) DeleteCard(id string) error {
	i := c.findIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	c.Cards = append(c.Cards[:i], c.Cards[i+1:]...)
	return nil
}

// Search returns the cards whose front or back contains the query,
// case-insensitively, in stored order. An empty query matches every card;
// that is the literal substring contract, not an accident.
func (c *Collection) Search(query string) []Card {
	var hits []Card
	for _, card := range c.Cards {
		if card.matches(query) {
			hits = append(hits, card)
		}
	}
	return hits
}

// Snapshot returns an independent copy of the card sequence, so a drill
// session is unaffected by later edits to the collection.
func (c *Collection) Snapshot() []Card {
	out := make([]Card, len(c.Cards))
	copy(out, c.Cards)
	return out
}

// Len returns the number of cards.
func (c *Collection) Len() int { return len(c.Cards) }

func (c *Collection) findIndex(id string) int {
	for i := range c.Cards {
		if c.Cards[i].ID == id {
			return i
		}
	}
	return -1
}
