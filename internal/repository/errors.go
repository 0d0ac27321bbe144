// Package repository implements MySQL persistence for the portfolio
// entities. Sentinel and typed errors defined here let handlers and the
// centralized error responder distinguish failure modes without string
// matching at the HTTP layer.
package repository

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a row does not exist. Handlers translate
// it into an entity-specific 404.
var ErrNotFound = errors.New("record not found")

// DuplicateError is returned when an insert or update violates a unique
// constraint. Field names the offending column so the responder can
// produce a "Duplicate <field> Entered" message.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s", e.Field)
}

// isDuplicate reports whether err is a MySQL duplicate-key violation
// (error number 1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
