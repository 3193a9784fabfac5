// SPDX-License-Identifier: MPL-2.0

package deck

import "errors"

var (
	// ErrDuplicateName is returned when creating a collection whose name is already taken.
	ErrDuplicateName = errors.New("collection name already exists")
	// ErrNotFound is returned when a collection or card does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmptyField is returned when a required text field is empty after trimming.
	ErrEmptyField = errors.New("field cannot be empty")
)
