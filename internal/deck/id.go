// SPDX-License-Identifier: MPL-2.0

package deck

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	// idAlphabet is the character set for card IDs. Hex keeps IDs easy to
	// read back over the phone and to type at the manage-cards prompt.
	idAlphabet = "0123456789abcdef"
	// idLength is the number of characters in a card ID.
	idLength = 8
)

// NewCardID returns a short random identifier for a card. IDs only need to
// be unique within one collection; AddCard re-generates on collision.
func NewCardID() string {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		// gonanoid only fails when the OS random source is broken, at
		// which point nothing else in the process works either.
		panic(err)
	}
	return id
}
