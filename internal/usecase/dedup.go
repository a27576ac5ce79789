package usecase

import (
	"context"
	"math"

	"domeo_docs/internal/domain/entities"

	log "github.com/sirupsen/logrus"
)

const (
	// Monetary totals are compared with a one-cent tolerance.
	totalAmountTolerance = 0.01
	// Fallback content matching inspects at most this many recent candidates.
	dedupCandidateLimit = 20
)

// findExisting locates a stored document that represents the same submitted
// content, so the caller can answer idempotently instead of creating a row.
//
// Stage 1 resolves the exact dedup key (type, parent, cart key, client) and
// confirms the hit by content fingerprint. Stage 2 falls back to scanning the
// client's recent documents of the same type and parent whose total is within
// tolerance, comparing recomputed fingerprints. The zero Document means no
// match.
func (u *DocumentUseCase) findExisting(
	ctx context.Context,
	t entities.DocumentType,
	parentDocumentID string,
	cartKey string,
	clientID string,
	items []entities.DocumentItem,
	totalAmount float64,
) (entities.Document, error) {
	want := Fingerprint(clientID, items, totalAmount)

	key := DedupKey(t, parentDocumentID, cartKey, clientID)
	existing, err := u.documents.GetByDedupKey(ctx, key)
	if err != nil {
		return entities.Document{}, err
	}
	if existing.ID != "" && documentFingerprint(existing) == want {
		log.WithFields(log.Fields{
			"document_id": existing.ID,
			"number":      existing.Number,
			"stage":       "dedup_key",
		}).Debug("existing document matched")
		return existing, nil
	}

	candidates, err := u.documents.ListByClient(ctx, clientID)
	if err != nil {
		return entities.Document{}, err
	}

	checked := 0
	// ListByClient returns newest first; the most recent duplicates win.
	for _, candidate := range candidates {
		if candidate.Type != t || candidate.ParentDocumentID != parentDocumentID {
			continue
		}
		if math.Abs(candidate.TotalAmount-totalAmount) > totalAmountTolerance {
			continue
		}
		if checked++; checked > dedupCandidateLimit {
			break
		}
		if documentFingerprint(candidate) == want {
			log.WithFields(log.Fields{
				"document_id": candidate.ID,
				"number":      candidate.Number,
				"stage":       "content",
			}).Debug("existing document matched")
			return candidate, nil
		}
	}

	return entities.Document{}, nil
}

// documentFingerprint recomputes the content fingerprint of a stored
// document from its persisted items and total.
func documentFingerprint(d entities.Document) string {
	return Fingerprint(d.ClientID, d.Items, d.TotalAmount)
}
