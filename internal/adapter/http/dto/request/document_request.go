package request

import (
	"strings"

	"domeo_docs/internal/domain/entities"
	"domeo_docs/internal/usecase"
)

// DocumentItemRequest is one pre-priced cart line as submitted by the
// cart/pricing front. Width/height are millimeters, prices are in the shop
// currency.
type DocumentItemRequest struct {
	SKU           string  `json:"sku"`
	Model         string  `json:"model"`
	Name          string  `json:"name"`
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

// CreateDocumentRequest is the creation payload. Field-level validation is
// deliberately left to the use case so the caller gets one error listing
// every offending field.
type CreateDocumentRequest struct {
	Type              string                `json:"type"`
	ParentDocumentID  string                `json:"parent_document_id"`
	CartSessionID     string                `json:"cart_session_id"`
	ClientID          string                `json:"client_id"`
	Items             []DocumentItemRequest `json:"items"`
	TotalAmount       float64               `json:"total_amount"`
	Subtotal          float64               `json:"subtotal"`
	TaxAmount         float64               `json:"tax_amount"`
	Notes             string                `json:"notes"`
	SupplierName      string                `json:"supplier_name"`
	PreventDuplicates *bool                 `json:"prevent_duplicates"`
}

// ToCommand translates the payload into the use case command.
func (r CreateDocumentRequest) ToCommand() usecase.CreateDocumentRequest {
	items := make([]entities.DocumentItem, 0, len(r.Items))
	for _, item := range r.Items {
		model := item.Model
		if model == "" {
			model = item.Name
		}
		items = append(items, entities.DocumentItem{
			SKU:           item.SKU,
			Model:         model,
			Style:         item.Style,
			Type:          item.Type,
			Finish:        item.Finish,
			Color:         item.Color,
			Width:         item.Width,
			Height:        item.Height,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			Price:         item.Price,
			HardwareKitID: item.HardwareKitID,
			HandleID:      item.HandleID,
		})
	}
	return usecase.CreateDocumentRequest{
		Type:              entities.DocumentType(strings.ToLower(strings.TrimSpace(r.Type))),
		ParentDocumentID:  r.ParentDocumentID,
		CartSessionID:     r.CartSessionID,
		ClientID:          r.ClientID,
		Items:             items,
		TotalAmount:       r.TotalAmount,
		Subtotal:          r.Subtotal,
		TaxAmount:         r.TaxAmount,
		Notes:             r.Notes,
		SupplierName:      r.SupplierName,
		PreventDuplicates: r.PreventDuplicates,
	}
}

// ChangeStatusRequest is the payload of PUT /documents/:id/status. A project
// file supplied here is stored before the transition guards run.
type ChangeStatusRequest struct {
	Status         string `json:"status"`
	Notes          string `json:"notes"`
	ProjectFileURL string `json:"project_file_url"`
}

func (r ChangeStatusRequest) ToCommand() usecase.ChangeStatusRequest {
	return usecase.ChangeStatusRequest{
		Status:         entities.DocumentStatus(strings.TrimSpace(r.Status)),
		Notes:          r.Notes,
		ProjectFileURL: r.ProjectFileURL,
	}
}
