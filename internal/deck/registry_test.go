// SPDX-License-Identifier: MPL-2.0

package deck

import (
	"errors"
	"testing"
)

func TestRegistry_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		colName string
		wantErr error
	}{
		{name: "valid name", colName: "Spanish"},
		{name: "name is trimmed", colName: "  French  "},
		{name: "empty name", colName: "", wantErr: ErrEmptyField},
		{name: "whitespace name", colName: "   ", wantErr: ErrEmptyField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewRegistry()
			err := r.Create(tt.colName)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create(%q) error = %v, want %v", tt.colName, err, tt.wantErr)
			}
			if tt.wantErr == nil && r.Len() != 1 {
				t.Errorf("Len() = %d, want 1", r.Len())
			}
		})
	}
}

func TestRegistry_Create_Duplicate(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if err := r.Create("Spanish"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := r.Create("Spanish")
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("Create duplicate error = %v, want ErrDuplicateName", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d after rejected duplicate, want 1", r.Len())
	}
}

func TestRegistry_Create_CaseSensitive(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if err := r.Create("spanish"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Names match case-sensitively, so this is a distinct collection.
	if err := r.Create("Spanish"); err != nil {
		t.Fatalf("Create with different case: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestRegistry_Names_Sorted(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	for _, name := range []string{"zoology", "algebra", "music"} {
		if err := r.Create(name); err != nil {
			t.Fatalf("Create(%q): %v", name, err)
		}
	}

	got := r.Names()
	want := []string{"algebra", "music", "zoology"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistry_Delete(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if err := r.Create("Spanish"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := r.Create("French"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	spanish, err := r.Collection("Spanish")
	if err != nil {
		t.Fatalf("Collection: %v", err)
	}
	if _, err := spanish.AddCard("hola", "hello"); err != nil {
		t.Fatalf("AddCard: %v", err)
	}

	// Deleting cascades to the contained cards and leaves other
	// collections alone.
	if err := r.Delete("Spanish"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := r.Collection("Spanish"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Collection after delete error = %v, want ErrNotFound", err)
	}
	if _, err := r.Collection("French"); err != nil {
		t.Errorf("sibling collection affected by delete: %v", err)
	}
}

func TestRegistry_Delete_NotFound(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if err := r.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete error = %v, want ErrNotFound", err)
	}
}

func TestRegistry_Clone_Independent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if err := r.Create("Spanish"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	col, _ := r.Collection("Spanish")
	if _, err := col.AddCard("hola", "hello"); err != nil {
		t.Fatalf("AddCard: %v", err)
	}

	clone := r.Clone()
	if !r.Equal(clone) {
		t.Fatal("clone not equal to original")
	}

	cloneCol, _ := clone.Collection("Spanish")
	if _, err := cloneCol.AddCard("gato", "cat"); err != nil {
		t.Fatalf("AddCard on clone: %v", err)
	}
	if col.Len() != 1 {
		t.Errorf("original collection Len() = %d after mutating clone, want 1", col.Len())
	}
}
