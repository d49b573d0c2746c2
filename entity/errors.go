package entity

import (
	"errors"
	"fmt"
)

// IdentityMissingError indicates an object's identity could not be derived
// deterministically. Resolution fails rather than synthesizing a random id,
// because a synthesized id would silently break entry deduplication.
type IdentityMissingError struct {
	ClassID string
}

func (e *IdentityMissingError) Error() string {
	return fmt.Sprintf("cannot derive identity for object of class %q", e.ClassID)
}

// NewIdentityMissingError builds an IdentityMissingError for the given class.
func NewIdentityMissingError(classID string) error {
	return &IdentityMissingError{ClassID: classID}
}

// IsIdentityMissing returns true if the error is an IdentityMissingError.
func IsIdentityMissing(err error) bool {
	var im *IdentityMissingError
	return errors.As(err, &im)
}
