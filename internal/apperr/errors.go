// FILE: internal/apperr/errors.go
// Shared outcome kinds for catalog store operations. Callers branch with
// errors.Is instead of parsing message text.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks operations that target an entity id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEntity marks inserts rejected by a uniqueness constraint.
	ErrDuplicateEntity = errors.New("duplicate entity")

	// ErrStillReferenced marks deletes refused because link rows still
	// point at the entity.
	ErrStillReferenced = errors.New("still referenced")
)

// NotFoundf wraps ErrNotFound with entity context, e.g. NotFoundf("template %d", id).
func NotFoundf(format string, args ...any) error {
	args = append(args, ErrNotFound)
	return fmt.Errorf(format+": %w", args...)
}

// Duplicatef wraps ErrDuplicateEntity with entity context.
func Duplicatef(format string, args ...any) error {
	args = append(args, ErrDuplicateEntity)
	return fmt.Errorf(format+": %w", args...)
}

// StillReferencedf wraps ErrStillReferenced with entity context.
func StillReferencedf(format string, args ...any) error {
	args = append(args, ErrStillReferenced)
	return fmt.Errorf(format+": %w", args...)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateEntity)
}

func IsStillReferenced(err error) bool {
	return errors.Is(err, ErrStillReferenced)
}
