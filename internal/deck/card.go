// SPDX-License-Identifier: MPL-2.0

// Package deck holds the flashcard domain model: cards, named collections,
// and the registry that owns them. All operations validate their inputs and
// leave state untouched on failure; persistence is the caller's concern
// (see internal/library).
package deck

import "strings"

// Card is a single flashcard. The ID is assigned on creation and never
// changes; Front and Back are always non-empty.
type Card struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// matches reports whether the card matches a case-insensitive substring
// query against either side. The empty query matches every card.
func (c Card) matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Front), q) ||
		strings.Contains(strings.ToLower(c.Back), q)
}
