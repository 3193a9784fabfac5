// SPDX-License-Identifier: MPL-2.0

package deck

import (
	"errors"
	"testing"
)

func newTestCollection(t *testing.T, pairs ...[2]string) *Collection {
	t.Helper()
	c := &Collection{Name: "test"}
	for _, p := range pairs {
		if _, err := c.AddCard(p[0], p[1]); err != nil {
			t.Fatalf("AddCard(%q, %q): %v", p[0], p[1], err)
		}
	}
	return c
}

func TestCollection_AddCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		front   string
		back    string
		wantErr error
	}{
		{name: "valid", front: "hola", back: "hello"},
		{name: "trims whitespace", front: "  hola  ", back: "\thello\n"},
		{name: "empty front", front: "", back: "hello", wantErr: ErrEmptyField},
		{name: "empty back", front: "hola", back: "", wantErr: ErrEmptyField},
		{name: "whitespace only front", front: "   ", back: "hello", wantErr: ErrEmptyField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &Collection{Name: "test"}
			card, err := c.AddCard(tt.front, tt.back)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddCard error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if c.Len() != 0 {
					t.Errorf("Len() = %d after rejected add, want 0", c.Len())
				}
				return
			}
			if len(card.ID) != idLength {
				t.Errorf("card ID %q length = %d, want %d", card.ID, len(card.ID), idLength)
			}
			if card.Front != "hola" || card.Back != "hello" {
				t.Errorf("card = %+v, want trimmed hola/hello", card)
			}
		})
	}
}

func TestCollection_AddCard_PreservesOrder(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t, [2]string{"uno", "one"}, [2]string{"dos", "two"}, [2]string{"tres", "three"})
	want := []string{"uno", "dos", "tres"}
	for i, w := range want {
		if c.Cards[i].Front != w {
			t.Errorf("Cards[%d].Front = %q, want %q", i, c.Cards[i].Front, w)
		}
	}
}

func TestCollection_FindCard(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t, [2]string{"hola", "hello"})
	id := c.Cards[0].ID

	card, err := c.FindCard(id)
	if err != nil {
		t.Fatalf("FindCard: %v", err)
	}
	if card.Front != "hola" {
		t.Errorf("Front = %q, want hola", card.Front)
	}

	if _, err := c.FindCard("ffffffff"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindCard missing error = %v, want ErrNotFound", err)
	}
}

func TestCollection_EditCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		newFront  string
		newBack   string
		wantFront string
		wantBack  string
	}{
		{name: "both blank keeps card identical", newFront: "", newBack: "", wantFront: "hola", wantBack: "hello"},
		{name: "only back", newFront: "", newBack: "hi", wantFront: "hola", wantBack: "hi"},
		{name: "only front", newFront: "buenas", newBack: "", wantFront: "buenas", wantBack: "hello"},
		{name: "both", newFront: "buenas", newBack: "hi", wantFront: "buenas", wantBack: "hi"},
		{name: "whitespace input keeps old value", newFront: "  ", newBack: " \t", wantFront: "hola", wantBack: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestCollection(t, [2]string{"hola", "hello"}, [2]string{"gato", "cat"})
			id := c.Cards[0].ID

			if err := c.EditCard(id, tt.newFront, tt.newBack); err != nil {
				t.Fatalf("EditCard: %v", err)
			}

			card := c.Cards[0]
			if card.ID != id {
				t.Errorf("ID changed: %q -> %q", id, card.ID)
			}
			if card.Front != tt.wantFront || card.Back != tt.wantBack {
				t.Errorf("card = %q/%q, want %q/%q", card.Front, card.Back, tt.wantFront, tt.wantBack)
			}
			// Position must not move on edit.
			if c.Cards[1].Front != "gato" {
				t.Errorf("second card moved: %+v", c.Cards[1])
			}
		})
	}
}

func TestCollection_EditCard_NotFound(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t, [2]string{"hola", "hello"})
	if err := c.EditCard("ffffffff", "x", "y"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("EditCard error = %v, want ErrNotFound", err)
	}
}

func TestCollection_DeleteCard(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t,
		[2]string{"uno", "one"},
		[2]string{"dos", "two"},
		[2]string{"tres", "three"},
	)

	if err := c.DeleteCard(c.Cards[1].ID); err != nil {
		t.Fatalf("DeleteCard: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	// Relative order of the survivors is preserved.
	if c.Cards[0].Front != "uno" || c.Cards[1].Front != "tres" {
		t.Errorf("cards after delete = %q, %q; want uno, tres", c.Cards[0].Front, c.Cards[1].Front)
	}

	if err := c.DeleteCard("ffffffff"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteCard missing error = %v, want ErrNotFound", err)
	}
}

func TestCollection_Search(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t,
		[2]string{"hola", "hello"},
		[2]string{"gato", "cat"},
		[2]string{"perro", "dog"},
	)

	tests := []struct {
		name  string
		query string
		want  []string // fronts, in stored order
	}{
		{name: "matches back", query: "cat", want: []string{"gato"}},
		{name: "matches front", query: "perr", want: []string{"perro"}},
		{name: "case insensitive", query: "HeLLo", want: []string{"hola"}},
		{name: "empty query matches all", query: "", want: []string{"hola", "gato", "perro"}},
		{name: "no matches", query: "zebra", want: nil},
		{name: "substring across cards", query: "o", want: []string{"hola", "gato", "perro"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hits := c.Search(tt.query)
			if len(hits) != len(tt.want) {
				t.Fatalf("Search(%q) returned %d cards, want %d", tt.query, len(hits), len(tt.want))
			}
			for i, w := range tt.want {
				if hits[i].Front != w {
					t.Errorf("Search(%q)[%d].Front = %q, want %q", tt.query, i, hits[i].Front, w)
				}
			}
		})
	}
}

func TestCollection_Snapshot_Independent(t *testing.T) {
	t.Parallel()

	c := newTestCollection(t, [2]string{"hola", "hello"})
	snap := c.Snapshot()

	if err := c.EditCard(c.Cards[0].ID, "buenas", ""); err != nil {
		t.Fatalf("EditCard: %v", err)
	}
	if snap[0].Front != "hola" {
		t.Errorf("snapshot changed by later edit: %+v", snap[0])
	}
}
