package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"domeo_docs/internal/domain/entities"
	"domeo_docs/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// CreateDocumentRequest is the command accepted by CreateDocument. Items
// arrive pre-priced; PreventDuplicates defaults to true when nil.
type CreateDocumentRequest struct {
	Type              entities.DocumentType
	ParentDocumentID  string
	CartSessionID     string
	ClientID          string
	Items             []entities.DocumentItem
	TotalAmount       float64
	Subtotal          float64
	TaxAmount         float64
	Notes             string
	SupplierName      string
	PreventDuplicates *bool
}

// CreateDocumentResponse carries the stored document and whether this call
// created it. IsNew == false means an existing document was reused.
type CreateDocumentResponse struct {
	Document entities.Document
	IsNew    bool
}

// ChangeStatusRequest is the command accepted by ChangeStatus. A project
// file supplied here is persisted before guards run, so the upload and the
// transition can share one request.
type ChangeStatusRequest struct {
	Status         entities.DocumentStatus
	Notes          string
	ProjectFileURL string
}

// IDocumentUseCase exposes the document lifecycle operations.

type IDocumentUseCase interface {
	CreateDocument(ctx context.Context, req CreateDocumentRequest) (CreateDocumentResponse, error)
	ChangeStatus(ctx context.Context, documentID string, req ChangeStatusRequest) (entities.Document, error)
	GetChain(ctx context.Context, documentID string) ([]entities.ChainEntry, error)
	GetByID(ctx context.Context, documentID string) (entities.Document, error)
}

type DocumentUseCase struct {
	documents interfaces.IDocumentRepository
	clients   interfaces.IClientRepository
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(documents interfaces.IDocumentRepository, clients interfaces.IClientRepository) *DocumentUseCase {
	return &DocumentUseCase{documents: documents, clients: clients}
}

// CreateDocument creates a document idempotently: identical submissions of
// the same cart converge on one stored row. The dedup lookup runs first;
// when it misses, relations are validated and the row is written atomically
// together with its dedup-key marker, so concurrent identical requests also
// converge.
func (u *DocumentUseCase) CreateDocument(ctx context.Context, req CreateDocumentRequest) (CreateDocumentResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		return CreateDocumentResponse{}, err
	}

	clientID := strings.TrimSpace(req.ClientID)
	parentID := strings.TrimSpace(req.ParentDocumentID)

	cartKey := strings.TrimSpace(req.CartSessionID)
	if cartKey == "" {
		cartKey = generateCartSessionID()
	}

	log.WithFields(log.Fields{
		"type":        req.Type,
		"client_id":   clientID,
		"parent_id":   parentID,
		"items_count": len(req.Items),
	}).Info("creating document")

	preventDuplicates := req.PreventDuplicates == nil || *req.PreventDuplicates
	if preventDuplicates {
		existing, err := u.findExisting(ctx, req.Type, parentID, cartKey, clientID, req.Items, req.TotalAmount)
		if err != nil {
			return CreateDocumentResponse{}, err
		}
		if existing.ID != "" {
			log.WithFields(log.Fields{
				"document_id": existing.ID,
				"number":      existing.Number,
			}).Info("reusing existing document")
			return CreateDocumentResponse{Document: existing, IsNew: false}, nil
		}
	}

	if err := u.validateRelations(ctx, req.Type, parentID); err != nil {
		return CreateDocumentResponse{}, err
	}

	clientExists, err := u.clients.Exists(ctx, clientID)
	if err != nil {
		return CreateDocumentResponse{}, err
	}
	if !clientExists {
		return CreateDocumentResponse{}, ErrClientNotFound
	}

	now := time.Now().UTC()
	doc := entities.Document{
		ID:               uuid.NewString(),
		Type:             req.Type,
		Number:           generateDocumentNumber(req.Type, now),
		ParentDocumentID: parentID,
		CartSessionID:    cartKey,
		ClientID:         clientID,
		Items:            req.Items,
		TotalAmount:      req.TotalAmount,
		Subtotal:         req.Subtotal,
		TaxAmount:        req.TaxAmount,
		Notes:            req.Notes,
		SupplierName:     strings.TrimSpace(req.SupplierName),
		DedupKey:         DedupKey(req.Type, parentID, cartKey, clientID),
		Status:           entities.InitialStatus(req.Type),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.documents.Create(ctx, doc)
	if err == interfaces.ErrDedupKeyExists {
		// A concurrent identical request won the write; converge on its row.
		winner, lookupErr := u.documents.GetByDedupKey(ctx, doc.DedupKey)
		if lookupErr != nil {
			return CreateDocumentResponse{}, lookupErr
		}
		if winner.ID != "" {
			log.WithFields(log.Fields{
				"document_id": winner.ID,
				"number":      winner.Number,
			}).Info("lost creation race, reusing winner")
			return CreateDocumentResponse{Document: winner, IsNew: false}, nil
		}
		return CreateDocumentResponse{}, err
	}
	if err != nil {
		return CreateDocumentResponse{}, err
	}

	log.WithFields(log.Fields{
		"document_id": created.ID,
		"number":      created.Number,
		"type":        created.Type,
	}).Info("document created")

	return CreateDocumentResponse{Document: created, IsNew: true}, nil
}

// ChangeStatus applies one legal status transition. Transition legality is a
// pure table lookup per document type; guards (project file before review,
// supplier before ordering) run after the edge is known to exist. Notes
// supplied with the change are stored in the same update. A linked invoice
// follows an order's transition best-effort.
func (u *DocumentUseCase) ChangeStatus(ctx context.Context, documentID string, req ChangeStatusRequest) (entities.Document, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return entities.Document{}, &ValidationError{Fields: []string{"document_id"}}
	}
	if strings.TrimSpace(string(req.Status)) == "" {
		return entities.Document{}, &ValidationError{Fields: []string{"status"}}
	}

	doc, err := u.documents.GetByID(ctx, documentID)
	if err != nil {
		return entities.Document{}, err
	}
	if doc.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}

	// A status outside the type's state set is a malformed request, not an
	// illegal edge.
	if !entities.KnownStatus(doc.Type, req.Status) {
		return entities.Document{}, &ValidationError{Fields: []string{"status"}}
	}

	if fileURL := strings.TrimSpace(req.ProjectFileURL); fileURL != "" {
		doc, err = u.documents.SetProjectFile(ctx, doc.ID, fileURL)
		if err != nil {
			return entities.Document{}, err
		}
	}

	if !entities.CanTransition(doc.Type, doc.Status, req.Status) {
		return entities.Document{}, &InvalidTransitionError{Type: doc.Type, From: doc.Status, To: req.Status}
	}
	if err := checkTransitionGuards(doc, req.Status); err != nil {
		return entities.Document{}, err
	}

	oldStatus := doc.Status
	updated, err := u.documents.UpdateStatus(ctx, doc.ID, req.Status, strings.TrimSpace(req.Notes))
	if err != nil {
		return entities.Document{}, err
	}
	if updated.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}

	log.WithFields(log.Fields{
		"document_id": updated.ID,
		"type":        updated.Type,
		"from":        oldStatus,
		"to":          updated.Status,
	}).Info("document status changed")

	if updated.Type == entities.DocumentTypeOrder {
		u.syncInvoiceStatus(ctx, updated)
	}

	return updated, nil
}

// GetByID loads one document.
func (u *DocumentUseCase) GetByID(ctx context.Context, documentID string) (entities.Document, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return entities.Document{}, &ValidationError{Fields: []string{"document_id"}}
	}
	doc, err := u.documents.GetByID(ctx, documentID)
	if err != nil {
		return entities.Document{}, err
	}
	if doc.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return doc, nil
}

// checkTransitionGuards enforces the precondition guards on edges whose
// target is otherwise reachable.
func checkTransitionGuards(doc entities.Document, target entities.DocumentStatus) error {
	if doc.Type == entities.DocumentTypeOrder && target == entities.OrderStatusUnderReview && doc.ProjectFileURL == "" {
		return &PreconditionError{
			Type:   doc.Type,
			Target: target,
			Reason: "a project/plan file must be uploaded before review",
		}
	}
	if doc.Type == entities.DocumentTypeSupplierOrder && target == entities.SupplierOrderStatusOrdered && doc.SupplierName == "" {
		return &PreconditionError{
			Type:   doc.Type,
			Target: target,
			Reason: "a supplier must be set before placing the order",
		}
	}
	return nil
}

// orderInvoiceStatusSync maps an order status to the status its linked
// invoice should follow into.
var orderInvoiceStatusSync = map[entities.DocumentStatus]entities.DocumentStatus{
	entities.OrderStatusNewPlanned:          entities.InvoiceStatusDraft,
	entities.OrderStatusUnderReview:         entities.InvoiceStatusDraft,
	entities.OrderStatusAwaitingMeasurement: entities.InvoiceStatusSent,
	entities.OrderStatusAwaitingInvoice:     entities.InvoiceStatusSent,
	entities.OrderStatusCompleted:           entities.InvoiceStatusPaid,
}

// syncInvoiceStatus moves the order's invoice child along with the order.
// The sync only applies edges that are legal in the invoice's own table and
// never fails the order transition.
func (u *DocumentUseCase) syncInvoiceStatus(ctx context.Context, order entities.Document) {
	target, ok := orderInvoiceStatusSync[order.Status]
	if !ok {
		return
	}

	invoices, err := u.documents.ListByParent(ctx, order.ID, entities.DocumentTypeInvoice)
	if err != nil {
		log.WithError(err).WithField("order_id", order.ID).Error("invoice status sync lookup failed")
		return
	}

	for _, invoice := range invoices {
		if invoice.Status == target || !entities.CanTransition(entities.DocumentTypeInvoice, invoice.Status, target) {
			continue
		}
		if _, err := u.documents.UpdateStatus(ctx, invoice.ID, target, ""); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"order_id":   order.ID,
				"invoice_id": invoice.ID,
			}).Error("invoice status sync failed")
			continue
		}
		log.WithFields(log.Fields{
			"order_id":   order.ID,
			"invoice_id": invoice.ID,
			"status":     target,
		}).Info("invoice status synchronized")
	}
}

func validateCreateRequest(req CreateDocumentRequest) error {
	var fields []string
	if !req.Type.IsValid() {
		fields = append(fields, "type")
	}
	if strings.TrimSpace(req.ClientID) == "" {
		fields = append(fields, "client_id")
	}
	if len(req.Items) == 0 {
		fields = append(fields, "items")
	}
	if req.TotalAmount <= 0 {
		fields = append(fields, "total_amount")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func generateDocumentNumber(t entities.DocumentType, now time.Time) string {
	return fmt.Sprintf("%s-%d", t.NumberPrefix(), now.UnixMilli())
}

func generateCartSessionID() string {
	return "cart_" + uuid.NewString()
}
