package response

import (
	"time"

	"domeo_docs/internal/domain/entities"
	"domeo_docs/internal/usecase"
)

type DocumentResponse struct {
	ID               string                  `json:"id"`
	Type             string                  `json:"type"`
	Number           string                  `json:"number"`
	ParentDocumentID string                  `json:"parent_document_id,omitempty"`
	CartSessionID    string                  `json:"cart_session_id,omitempty"`
	ClientID         string                  `json:"client_id"`
	Items            []entities.DocumentItem `json:"items,omitempty"`
	TotalAmount      float64                 `json:"total_amount"`
	Subtotal         float64                 `json:"subtotal,omitempty"`
	TaxAmount        float64                 `json:"tax_amount,omitempty"`
	Notes            string                  `json:"notes,omitempty"`
	SupplierName     string                  `json:"supplier_name,omitempty"`
	ProjectFileURL   string                  `json:"project_file_url,omitempty"`
	Status           string                  `json:"status"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

func FromDocument(d entities.Document) DocumentResponse {
	return DocumentResponse{
		ID:               d.ID,
		Type:             string(d.Type),
		Number:           d.Number,
		ParentDocumentID: d.ParentDocumentID,
		CartSessionID:    d.CartSessionID,
		ClientID:         d.ClientID,
		Items:            d.Items,
		TotalAmount:      d.TotalAmount,
		Subtotal:         d.Subtotal,
		TaxAmount:        d.TaxAmount,
		Notes:            d.Notes,
		SupplierName:     d.SupplierName,
		ProjectFileURL:   d.ProjectFileURL,
		Status:           string(d.Status),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// CreateDocumentResponse mirrors the creation contract: the stored document
// plus whether this request created it.
type CreateDocumentResponse struct {
	DocumentResponse
	IsNew bool `json:"is_new"`
}

func FromCreateResult(res usecase.CreateDocumentResponse) CreateDocumentResponse {
	return CreateDocumentResponse{
		DocumentResponse: FromDocument(res.Document),
		IsNew:            res.IsNew,
	}
}

type ChainEntryResponse struct {
	Document DocumentResponse `json:"document"`
	Position int              `json:"position"`
	Level    int              `json:"level"`
	ParentID string           `json:"parent_id,omitempty"`
	ChildID  string           `json:"child_id,omitempty"`
}

type ChainResponse struct {
	Chain []ChainEntryResponse `json:"chain"`
	Total int                  `json:"total"`
}

func FromChain(entries []entities.ChainEntry) ChainResponse {
	chain := make([]ChainEntryResponse, 0, len(entries))
	for _, e := range entries {
		chain = append(chain, ChainEntryResponse{
			Document: FromDocument(e.Document),
			Position: e.Position,
			Level:    e.Level,
			ParentID: e.ParentID,
			ChildID:  e.ChildID,
		})
	}
	return ChainResponse{Chain: chain, Total: len(chain)}
}
