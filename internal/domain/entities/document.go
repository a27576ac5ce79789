package entities

import "time"

// DocumentType identifies the four business documents in the sales
// paperwork trail.
//
// Domain notes:
//   - quote, invoice and order belong to a client directly.
//   - supplier_order may reference its client only through its parent
//     invoice (legacy rows); new rows carry the client id denormalized.

type DocumentType string

const (
	DocumentTypeQuote         DocumentType = "quote"
	DocumentTypeInvoice       DocumentType = "invoice"
	DocumentTypeOrder         DocumentType = "order"
	DocumentTypeSupplierOrder DocumentType = "supplier_order"
)

// IsValid reports whether t is one of the four known document types.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeQuote, DocumentTypeInvoice, DocumentTypeOrder, DocumentTypeSupplierOrder:
		return true
	}
	return false
}

// NumberPrefix is the human-readable prefix used when generating a
// document number for this type.
func (t DocumentType) NumberPrefix() string {
	switch t {
	case DocumentTypeQuote:
		return "QUO"
	case DocumentTypeInvoice:
		return "INV"
	case DocumentTypeOrder:
		return "ORD"
	case DocumentTypeSupplierOrder:
		return "SUP"
	}
	return "DOC"
}

// DocumentItem is one priced cart line. The lifecycle engine never prices
// items; they arrive pre-priced and are only normalized and hashed for
// deduplication.
type DocumentItem struct {
	SKU           string  `json:"sku"`
	Model         string  `json:"model"`
	Style         string  `json:"style"`
	Type          string  `json:"type"`
	Finish        string  `json:"finish"`
	Color         string  `json:"color"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	Price         float64 `json:"price"`
	HardwareKitID string  `json:"hardware_kit_id"`
	HandleID      string  `json:"handle_id"`
}

// Document is the persisted business document (quote, invoice, order or
// supplier order).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//   - GSI2 (parent_document_id-index): parent_document_id
//
// ParentDocumentID is a weak reference set once at creation; DedupKey is the
// uniqueness key of the idempotent creation path, derived from
// (type, parent, cart key, client).
type Document struct {
	ID               string         `json:"id"`
	Type             DocumentType   `json:"type"`
	Number           string         `json:"number"`
	ParentDocumentID string         `json:"parent_document_id,omitempty"`
	CartSessionID    string         `json:"cart_session_id,omitempty"`
	ClientID         string         `json:"client_id"`
	Items            []DocumentItem `json:"items"`
	TotalAmount      float64        `json:"total_amount"`
	Subtotal         float64        `json:"subtotal"`
	TaxAmount        float64        `json:"tax_amount"`
	Notes            string         `json:"notes,omitempty"`
	SupplierName     string         `json:"supplier_name,omitempty"`
	ProjectFileURL   string         `json:"project_file_url,omitempty"`
	DedupKey         string         `json:"dedup_key,omitempty"`
	Status           DocumentStatus `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// ChainEntry is one element of a reconstructed document lineage.
//
// Position is relative to the requested document (0), ascending in lineage
// order; negative entries precede it. Level is carried for API compatibility
// and is always 0. ParentID points at the entry's parent within the chain;
// ChildID is set on ancestors of the requested document and names the next
// document on the path toward it.
type ChainEntry struct {
	Document Document `json:"document"`
	Position int      `json:"position"`
	Level    int      `json:"level"`
	ParentID string   `json:"parent_id,omitempty"`
	ChildID  string   `json:"child_id,omitempty"`
}
