package usecase

import (
	"errors"
	"fmt"
	"strings"

	"domeo_docs/internal/domain/entities"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrParentNotFound   = errors.New("parent document not found")
)

// ValidationError reports malformed or missing request fields. Callers can
// correct the input and retry.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// ConflictError reports a violated relation or cardinality rule, e.g. a
// second invoice for an order that already has one.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InvalidTransitionError reports a status change absent from the document
// type's transition table.
type InvalidTransitionError struct {
	Type entities.DocumentType
	From entities.DocumentStatus
	To   entities.DocumentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s status transition: %s -> %s", e.Type, e.From, e.To)
}

// PreconditionError reports a transition whose target is reachable in the
// table but whose guard failed, e.g. a missing project file.
type PreconditionError struct {
	Type   entities.DocumentType
	Target entities.DocumentStatus
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed for %s -> %s: %s", e.Type, e.Target, e.Reason)
}
