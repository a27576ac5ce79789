package usecase

import (
	"context"
	"fmt"

	"domeo_docs/internal/domain/entities"
)

// validateRelations enforces the legal parent/child pairings and cardinality
// limits before a new document row is written.
//
// Rules:
//   - a root type (order) must not reference a parent
//   - the parent must exist and be of the single legal parent type
//   - an order may carry at most one invoice child
func (u *DocumentUseCase) validateRelations(ctx context.Context, t entities.DocumentType, parentDocumentID string) error {
	if parentDocumentID == "" {
		return nil
	}

	required, allowed := entities.RequiredParentType(t)
	if !allowed {
		return &ConflictError{Message: fmt.Sprintf("%s documents cannot have a parent document", t)}
	}

	parent, err := u.documents.GetByID(ctx, parentDocumentID)
	if err != nil {
		return err
	}
	if parent.ID == "" {
		return ErrParentNotFound
	}
	if parent.Type != required {
		return &ConflictError{Message: fmt.Sprintf("%s must descend from %s, got %s %s", t, required, parent.Type, parent.ID)}
	}

	if limit := entities.MaxChildren(parent.Type, t); limit > 0 {
		siblings, err := u.documents.ListByParent(ctx, parent.ID, t)
		if err != nil {
			return err
		}
		if len(siblings) >= limit {
			return &ConflictError{Message: fmt.Sprintf("%s %s already has %s %s", parent.Type, parent.ID, t, siblings[0].Number)}
		}
	}

	return nil
}
