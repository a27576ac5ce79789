package usecase

import (
	"context"
	"sort"

	"domeo_docs/internal/domain/entities"

	log "github.com/sirupsen/logrus"
)

// GetChain reconstructs the full lineage of documentID: the document itself,
// its ancestors and every descendant reachable through parent references,
// across all four document types. Read-only.
//
// The lineage is materialized as an in-memory adjacency view over the owning
// client's documents, built once per call. Entries come back sorted by
// position with the requested document at position 0 and earlier lineage
// members at negative positions; any two documents of the same lineage yield
// the same set in the same relative order.
func (u *DocumentUseCase) GetChain(ctx context.Context, documentID string) ([]entities.ChainEntry, error) {
	start, err := u.documents.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if start.ID == "" {
		return nil, ErrDocumentNotFound
	}

	clientID, err := u.resolveOwningClient(ctx, start)
	if err != nil {
		return nil, err
	}
	if clientID == "" {
		// No resolvable owner: the document stands alone.
		return []entities.ChainEntry{{Document: start}}, nil
	}

	all, err := u.documents.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]entities.Document, len(all)+1)
	for _, d := range all {
		byID[d.ID] = d
	}
	byID[start.ID] = start

	children := buildAdjacency(byID)
	root := findLineageRoot(byID, start)
	ordered := preorder(byID, children, root)
	pathChild := pathToward(byID, start, root)

	startIdx := 0
	for i, d := range ordered {
		if d.ID == start.ID {
			startIdx = i
			break
		}
	}

	chain := make([]entities.ChainEntry, 0, len(ordered))
	for i, d := range ordered {
		entry := entities.ChainEntry{
			Document: d,
			Position: i - startIdx,
		}
		if d.ParentDocumentID != "" {
			if _, ok := byID[d.ParentDocumentID]; ok {
				entry.ParentID = d.ParentDocumentID
			}
		}
		if next, ok := pathChild[d.ID]; ok {
			entry.ChildID = next
		}
		chain = append(chain, entry)
	}

	log.WithFields(log.Fields{
		"document_id": documentID,
		"client_id":   clientID,
		"chain_len":   len(chain),
	}).Debug("document chain built")

	return chain, nil
}

// resolveOwningClient returns the client owning d. Supplier orders persisted
// without a client reference resolve it transitively through their parent
// invoice and order. The visited set keeps malformed cyclic data from
// looping.
func (u *DocumentUseCase) resolveOwningClient(ctx context.Context, d entities.Document) (string, error) {
	visited := map[string]bool{d.ID: true}
	current := d
	for current.ClientID == "" && current.ParentDocumentID != "" {
		parent, err := u.documents.GetByID(ctx, current.ParentDocumentID)
		if err != nil {
			return "", err
		}
		if parent.ID == "" || visited[parent.ID] {
			return "", nil
		}
		visited[parent.ID] = true
		current = parent
	}
	return current.ClientID, nil
}

// buildAdjacency maps each document id to its children, restricted to the
// legal child types for the parent's type and ordered by creation time.
func buildAdjacency(byID map[string]entities.Document) map[string][]entities.Document {
	children := make(map[string][]entities.Document)
	for _, d := range byID {
		if d.ParentDocumentID == "" {
			continue
		}
		parent, ok := byID[d.ParentDocumentID]
		if !ok || !isLegalChild(parent.Type, d.Type) {
			continue
		}
		children[parent.ID] = append(children[parent.ID], d)
	}
	for id := range children {
		kids := children[id]
		sort.Slice(kids, func(i, j int) bool {
			if !kids[i].CreatedAt.Equal(kids[j].CreatedAt) {
				return kids[i].CreatedAt.Before(kids[j].CreatedAt)
			}
			return kids[i].ID < kids[j].ID
		})
		children[id] = kids
	}
	return children
}

func isLegalChild(parent, child entities.DocumentType) bool {
	for _, t := range entities.LegalChildTypes(parent) {
		if t == child {
			return true
		}
	}
	return false
}

// findLineageRoot climbs parent references from start until a document with
// no known parent is reached. The visited set guarantees termination on
// malformed cycles.
func findLineageRoot(byID map[string]entities.Document, start entities.Document) entities.Document {
	visited := map[string]bool{start.ID: true}
	current := start
	for current.ParentDocumentID != "" {
		parent, ok := byID[current.ParentDocumentID]
		if !ok || visited[parent.ID] || !isLegalChild(parent.Type, current.Type) {
			break
		}
		visited[parent.ID] = true
		current = parent
	}
	return current
}

// preorder walks the lineage tree depth first from root, children in
// creation order. Each node is visited at most once.
func preorder(byID map[string]entities.Document, children map[string][]entities.Document, root entities.Document) []entities.Document {
	ordered := make([]entities.Document, 0, len(byID))
	visited := make(map[string]bool, len(byID))

	var walk func(d entities.Document)
	walk = func(d entities.Document) {
		if visited[d.ID] {
			return
		}
		visited[d.ID] = true
		ordered = append(ordered, d)
		for _, child := range children[d.ID] {
			walk(child)
		}
	}
	walk(root)
	return ordered
}

// pathToward maps each ancestor of start (excluding start itself) to the next
// document id on the path from that ancestor down to start.
func pathToward(byID map[string]entities.Document, start, root entities.Document) map[string]string {
	path := make(map[string]string)
	visited := map[string]bool{start.ID: true}
	current := start
	for current.ID != root.ID && current.ParentDocumentID != "" {
		parent, ok := byID[current.ParentDocumentID]
		if !ok || visited[parent.ID] {
			break
		}
		path[parent.ID] = current.ID
		visited[parent.ID] = true
		current = parent
	}
	return path
}
