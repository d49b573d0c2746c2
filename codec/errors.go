package codec

import (
	"errors"
	"fmt"
)

// MalformedDocumentError indicates an import node violates the document
// structure the codec requires, such as a @graph node without an @id.
// Import aborts immediately; the document is a caller/input defect.
type MalformedDocumentError struct {
	Reason string
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed document: %s", e.Reason)
}

// NewMalformedDocumentError builds a MalformedDocumentError.
func NewMalformedDocumentError(format string, args ...any) error {
	return &MalformedDocumentError{Reason: fmt.Sprintf(format, args...)}
}

// IsMalformedDocument returns true if the error is a MalformedDocumentError.
func IsMalformedDocument(err error) bool {
	var md *MalformedDocumentError
	return errors.As(err, &md)
}
