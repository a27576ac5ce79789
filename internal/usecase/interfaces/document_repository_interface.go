package interfaces

import (
	"context"
	"errors"

	"domeo_docs/internal/domain/entities"
)

// ErrDedupKeyExists is returned by Create when the transactional write loses
// the race on the document's dedup key. The caller resolves the winner via
// GetByDedupKey.
var ErrDedupKeyExists = errors.New("document with the same dedup key already exists")

// IDocumentRepository abstracts DynamoDB persistence for Document.
//
// The lifecycle engine must be able to:
//   - create a document atomically together with its dedup-key marker
//   - resolve a document by id or by dedup key
//   - list a client's documents and a parent's children (lineage + cardinality)
//   - update status (optionally with new notes) / project file reference in place
//
// Lookup methods return the zero Document (ID == "") when nothing matches.

type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	GetByDedupKey(ctx context.Context, dedupKey string) (entities.Document, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Document, error)
	ListByParent(ctx context.Context, parentDocumentID string, t entities.DocumentType) ([]entities.Document, error)
	UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus, notes string) (entities.Document, error)
	SetProjectFile(ctx context.Context, id string, fileURL string) (entities.Document, error)
}
