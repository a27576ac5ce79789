package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"domeo_docs/internal/domain/entities"
	"domeo_docs/internal/usecase/interfaces"
	mock_interfaces "domeo_docs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func boolPtr(b bool) *bool { return &b }

func newUseCaseWithMocks(t *testing.T) (*DocumentUseCase, *mock_interfaces.MockIDocumentRepository, *mock_interfaces.MockIClientRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	docs := mock_interfaces.NewMockIDocumentRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	return NewDocumentUseCase(docs, clients), docs, clients
}

func quoteRequest() CreateDocumentRequest {
	return CreateDocumentRequest{
		Type:          entities.DocumentTypeQuote,
		CartSessionID: "cart-1",
		ClientID:      "client-1",
		Items:         []entities.DocumentItem{doorItem("alpha", 2, 100)},
		TotalAmount:   200,
	}
}

func TestDocumentUseCase_CreateDocument(t *testing.T) {
	t.Run("validation lists all offending fields", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil)
		_, err := uc.CreateDocument(context.Background(), CreateDocumentRequest{})

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		want := []string{"type", "client_id", "items", "total_amount"}
		if len(vErr.Fields) != len(want) {
			t.Fatalf("expected fields %v, got %v", want, vErr.Fields)
		}
		for i, f := range want {
			if vErr.Fields[i] != f {
				t.Fatalf("expected fields %v, got %v", want, vErr.Fields)
			}
		}
	})

	t.Run("exact dedup key hit reuses document", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		req := quoteRequest()

		existing := entities.Document{
			ID:          "doc-1",
			Type:        entities.DocumentTypeQuote,
			Number:      "QUO-1",
			ClientID:    "client-1",
			Items:       req.Items,
			TotalAmount: 200,
		}
		key := DedupKey(entities.DocumentTypeQuote, "", "cart-1", "client-1")
		docs.EXPECT().GetByDedupKey(gomock.Any(), key).Return(existing, nil)

		res, err := uc.CreateDocument(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsNew {
			t.Fatalf("expected isNew=false for a dedup hit")
		}
		if res.Document.ID != "doc-1" {
			t.Fatalf("expected the existing document, got %+v", res.Document)
		}
	})

	t.Run("content fallback reuses document with different cart key", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		req := quoteRequest()

		candidate := entities.Document{
			ID:            "doc-2",
			Type:          entities.DocumentTypeQuote,
			Number:        "QUO-2",
			CartSessionID: "cart-other",
			ClientID:      "client-1",
			Items:         req.Items,
			TotalAmount:   200,
		}
		docs.EXPECT().GetByDedupKey(gomock.Any(), gomock.Any()).Return(entities.Document{}, nil)
		docs.EXPECT().ListByClient(gomock.Any(), "client-1").Return([]entities.Document{candidate}, nil)

		res, err := uc.CreateDocument(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsNew || res.Document.ID != "doc-2" {
			t.Fatalf("expected content match to reuse doc-2, got %+v", res)
		}
	})

	t.Run("candidates of other type or total are ignored", func(t *testing.T) {
		uc, docs, clients := newUseCaseWithMocks(t)
		req := quoteRequest()

		otherType := entities.Document{ID: "d-a", Type: entities.DocumentTypeInvoice, ClientID: "client-1", Items: req.Items, TotalAmount: 200}
		otherTotal := entities.Document{ID: "d-b", Type: entities.DocumentTypeQuote, ClientID: "client-1", Items: req.Items, TotalAmount: 500}
		docs.EXPECT().GetByDedupKey(gomock.Any(), gomock.Any()).Return(entities.Document{}, nil)
		docs.EXPECT().ListByClient(gomock.Any(), "client-1").Return([]entities.Document{otherType, otherTotal}, nil)
		clients.EXPECT().Exists(gomock.Any(), "client-1").Return(true, nil)
		docs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) {
				return d, nil
			},
		)

		res, err := uc.CreateDocument(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsNew {
			t.Fatalf("expected a fresh document")
		}
	})

	t.Run("create success fills generated fields", func(t *testing.T) {
		uc, docs, clients := newUseCaseWithMocks(t)
		req := quoteRequest()
		req.CartSessionID = ""
		req.PreventDuplicates = boolPtr(false)

		clients.EXPECT().Exists(gomock.Any(), "client-1").Return(true, nil)
		docs.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Document{})).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) {
				if d.ID == "" {
					t.Fatalf("expected generated id")
				}
				if !strings.HasPrefix(d.Number, "QUO-") {
					t.Fatalf("expected quote number prefix, got %s", d.Number)
				}
				if !strings.HasPrefix(d.CartSessionID, "cart_") {
					t.Fatalf("expected generated cart session id, got %s", d.CartSessionID)
				}
				if d.Status != entities.QuoteStatusDraft {
					t.Fatalf("expected initial status DRAFT, got %s", d.Status)
				}
				if d.DedupKey == "" {
					t.Fatalf("expected dedup key")
				}
				if d.CreatedAt.IsZero() || d.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return d, nil
			},
		)

		res, err := uc.CreateDocument(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsNew {
			t.Fatalf("expected isNew=true")
		}
	})

	t.Run("lost creation race converges on winner", func(t *testing.T) {
		uc, docs, clients := newUseCaseWithMocks(t)
		req := quoteRequest()
		req.PreventDuplicates = boolPtr(false)

		winner := entities.Document{ID: "winner", Type: entities.DocumentTypeQuote, Number: "QUO-9"}
		clients.EXPECT().Exists(gomock.Any(), "client-1").Return(true, nil)
		docs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Document{}, interfaces.ErrDedupKeyExists)
		docs.EXPECT().GetByDedupKey(gomock.Any(), gomock.Any()).Return(winner, nil)

		res, err := uc.CreateDocument(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsNew || res.Document.ID != "winner" {
			t.Fatalf("expected to converge on the winner row, got %+v", res)
		}
	})

	t.Run("order must not have a parent", func(t *testing.T) {
		uc, _, _ := newUseCaseWithMocks(t)
		req := quoteRequest()
		req.Type = entities.DocumentTypeOrder
		req.ParentDocumentID = "some-parent"
		req.PreventDuplicates = boolPtr(false)

		_, err := uc.CreateDocument(context.Background(), req)
		var cErr *ConflictError
		if !errors.As(err, &cErr) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("missing parent", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		req := quoteRequest()
		req.ParentDocumentID = "missing"
		req.PreventDuplicates = boolPtr(false)

		docs.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Document{}, nil)

		_, err := uc.CreateDocument(context.Background(), req)
		if !errors.Is(err, ErrParentNotFound) {
			t.Fatalf("expected ErrParentNotFound, got %v", err)
		}
	})

	t.Run("wrong parent type", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		req := quoteRequest()
		req.Type = entities.DocumentTypeInvoice
		req.ParentDocumentID = "q-1"
		req.PreventDuplicates = boolPtr(false)

		docs.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Document{ID: "q-1", Type: entities.DocumentTypeQuote}, nil)

		_, err := uc.CreateDocument(context.Background(), req)
		var cErr *ConflictError
		if !errors.As(err, &cErr) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("second invoice for an order conflicts", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		req := quoteRequest()
		req.Type = entities.DocumentTypeInvoice
		req.ParentDocumentID = "o-1"
		req.PreventDuplicates = boolPtr(false)

		docs.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Document{ID: "o-1", Type: entities.DocumentTypeOrder}, nil)
		docs.EXPECT().ListByParent(gomock.Any(), "o-1", entities.DocumentTypeInvoice).Return([]entities.Document{
			{ID: "inv-1", Type: entities.DocumentTypeInvoice, Number: "INV-1"},
		}, nil)

		_, err := uc.CreateDocument(context.Background(), req)
		var cErr *ConflictError
		if !errors.As(err, &cErr) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("missing client", func(t *testing.T) {
		uc, _, clients := newUseCaseWithMocks(t)
		req := quoteRequest()
		req.PreventDuplicates = boolPtr(false)

		clients.EXPECT().Exists(gomock.Any(), "client-1").Return(false, nil)

		_, err := uc.CreateDocument(context.Background(), req)
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("storage errors surface untouched", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		req := quoteRequest()

		docs.EXPECT().GetByDedupKey(gomock.Any(), gomock.Any()).Return(entities.Document{}, errors.New("db down"))

		_, err := uc.CreateDocument(context.Background(), req)
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDocumentUseCase_ChangeStatus(t *testing.T) {
	t.Run("empty arguments", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil)
		var vErr *ValidationError
		if _, err := uc.ChangeStatus(context.Background(), " ", ChangeStatusRequest{Status: "SENT"}); !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError for empty id, got %v", err)
		}
		if _, err := uc.ChangeStatus(context.Background(), "d-1", ChangeStatusRequest{}); !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError for empty status, got %v", err)
		}
	})

	t.Run("document not found", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		docs.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Document{}, nil)

		_, err := uc.ChangeStatus(context.Background(), "missing", ChangeStatusRequest{Status: entities.QuoteStatusSent})
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("status outside the type's state set fails validation", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		docs.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Document{
			ID: "q-1", Type: entities.DocumentTypeQuote, Status: entities.QuoteStatusSent,
		}, nil)

		// COMPLETED is an order status; a quote never carries it.
		_, err := uc.ChangeStatus(context.Background(), "q-1", ChangeStatusRequest{Status: "COMPLETED"})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("illegal edge fails with transition detail", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		docs.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Document{
			ID: "q-1", Type: entities.DocumentTypeQuote, Status: entities.QuoteStatusDraft,
		}, nil)

		_, err := uc.ChangeStatus(context.Background(), "q-1", ChangeStatusRequest{Status: entities.QuoteStatusAccepted})
		var tErr *InvalidTransitionError
		if !errors.As(err, &tErr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		if tErr.Type != entities.DocumentTypeQuote || tErr.From != entities.QuoteStatusDraft || tErr.To != entities.QuoteStatusAccepted {
			t.Fatalf("unexpected transition detail: %+v", tErr)
		}
	})

	t.Run("legal quote transition persists", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		docs.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Document{
			ID: "q-1", Type: entities.DocumentTypeQuote, Status: entities.QuoteStatusDraft,
		}, nil)
		docs.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusSent, "").Return(entities.Document{
			ID: "q-1", Type: entities.DocumentTypeQuote, Status: entities.QuoteStatusSent,
		}, nil)

		updated, err := uc.ChangeStatus(context.Background(), "q-1", ChangeStatusRequest{Status: entities.QuoteStatusSent})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.QuoteStatusSent {
			t.Fatalf("expected stored status SENT, got %s", updated.Status)
		}
	})

	t.Run("notes travel with the status update", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		docs.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Document{
			ID: "q-1", Type: entities.DocumentTypeQuote, Status: entities.QuoteStatusDraft,
		}, nil)
		docs.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusSent, "call the client before delivery").Return(entities.Document{
			ID: "q-1", Type: entities.DocumentTypeQuote, Status: entities.QuoteStatusSent,
			Notes: "call the client before delivery",
		}, nil)

		updated, err := uc.ChangeStatus(context.Background(), "q-1", ChangeStatusRequest{
			Status: entities.QuoteStatusSent,
			Notes:  "  call the client before delivery  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Notes != "call the client before delivery" {
			t.Fatalf("expected notes stored with the transition, got %q", updated.Notes)
		}
	})

	t.Run("review requires a project file", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		docs.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Document{
			ID: "o-1", Type: entities.DocumentTypeOrder, Status: entities.OrderStatusNewPlanned,
		}, nil)

		_, err := uc.ChangeStatus(context.Background(), "o-1", ChangeStatusRequest{Status: entities.OrderStatusUnderReview})
		var pErr *PreconditionError
		if !errors.As(err, &pErr) {
			t.Fatalf("expected PreconditionError, got %v", err)
		}
		if pErr.Target != entities.OrderStatusUnderReview {
			t.Fatalf("unexpected precondition detail: %+v", pErr)
		}
	})

	t.Run("project file supplied in the same request satisfies the guard", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		order := entities.Document{ID: "o-1", Type: entities.DocumentTypeOrder, Status: entities.OrderStatusNewPlanned}
		withFile := order
		withFile.ProjectFileURL = "https://files/plan.pdf"
		reviewed := withFile
		reviewed.Status = entities.OrderStatusUnderReview

		docs.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		docs.EXPECT().SetProjectFile(gomock.Any(), "o-1", "https://files/plan.pdf").Return(withFile, nil)
		docs.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusUnderReview, "").Return(reviewed, nil)
		docs.EXPECT().ListByParent(gomock.Any(), "o-1", entities.DocumentTypeInvoice).Return(nil, nil)

		updated, err := uc.ChangeStatus(context.Background(), "o-1", ChangeStatusRequest{
			Status:         entities.OrderStatusUnderReview,
			ProjectFileURL: "https://files/plan.pdf",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.OrderStatusUnderReview {
			t.Fatalf("expected UNDER_REVIEW, got %s", updated.Status)
		}
	})

	t.Run("supplier order needs a supplier before ordering", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		docs.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Document{
			ID: "s-1", Type: entities.DocumentTypeSupplierOrder, Status: entities.SupplierOrderStatusCreated,
		}, nil)

		_, err := uc.ChangeStatus(context.Background(), "s-1", ChangeStatusRequest{Status: entities.SupplierOrderStatusOrdered})
		var pErr *PreconditionError
		if !errors.As(err, &pErr) {
			t.Fatalf("expected PreconditionError, got %v", err)
		}
	})

	t.Run("completing an order moves its invoice to paid", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		order := entities.Document{
			ID: "o-1", Type: entities.DocumentTypeOrder, Status: entities.OrderStatusAwaitingInvoice,
			ProjectFileURL: "https://files/plan.pdf",
		}
		completed := order
		completed.Status = entities.OrderStatusCompleted
		invoice := entities.Document{ID: "inv-1", Type: entities.DocumentTypeInvoice, Status: entities.InvoiceStatusSent}
		paid := invoice
		paid.Status = entities.InvoiceStatusPaid

		docs.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		docs.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCompleted, "").Return(completed, nil)
		docs.EXPECT().ListByParent(gomock.Any(), "o-1", entities.DocumentTypeInvoice).Return([]entities.Document{invoice}, nil)
		docs.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusPaid, "").Return(paid, nil)

		updated, err := uc.ChangeStatus(context.Background(), "o-1", ChangeStatusRequest{Status: entities.OrderStatusCompleted})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.OrderStatusCompleted {
			t.Fatalf("expected COMPLETED, got %s", updated.Status)
		}
	})

	t.Run("invoice sync skips illegal edges", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		order := entities.Document{
			ID: "o-1", Type: entities.DocumentTypeOrder, Status: entities.OrderStatusAwaitingInvoice,
			ProjectFileURL: "https://files/plan.pdf",
		}
		completed := order
		completed.Status = entities.OrderStatusCompleted
		// DRAFT -> PAID is not in the invoice table; the invoice stays put.
		invoice := entities.Document{ID: "inv-1", Type: entities.DocumentTypeInvoice, Status: entities.InvoiceStatusDraft}

		docs.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		docs.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCompleted, "").Return(completed, nil)
		docs.EXPECT().ListByParent(gomock.Any(), "o-1", entities.DocumentTypeInvoice).Return([]entities.Document{invoice}, nil)

		if _, err := uc.ChangeStatus(context.Background(), "o-1", ChangeStatusRequest{Status: entities.OrderStatusCompleted}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invoice sync failure does not fail the order transition", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		order := entities.Document{
			ID: "o-1", Type: entities.DocumentTypeOrder, Status: entities.OrderStatusAwaitingInvoice,
			ProjectFileURL: "https://files/plan.pdf",
		}
		completed := order
		completed.Status = entities.OrderStatusCompleted

		docs.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		docs.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCompleted, "").Return(completed, nil)
		docs.EXPECT().ListByParent(gomock.Any(), "o-1", entities.DocumentTypeInvoice).Return(nil, errors.New("index offline"))

		updated, err := uc.ChangeStatus(context.Background(), "o-1", ChangeStatusRequest{Status: entities.OrderStatusCompleted})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.OrderStatusCompleted {
			t.Fatalf("expected COMPLETED despite sync failure, got %s", updated.Status)
		}
	})
}

func TestDocumentUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil)
		var vErr *ValidationError
		if _, err := uc.GetByID(context.Background(), "  "); !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		docs.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Document{}, nil)
		if _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		docs.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Document{ID: "d-1", CreatedAt: time.Now()}, nil)
		doc, err := uc.GetByID(context.Background(), "d-1")
		if err != nil || doc.ID != "d-1" {
			t.Fatalf("expected document, got %+v err=%v", doc, err)
		}
	})
}

func TestDocumentUseCase_Idempotence(t *testing.T) {
	// Two identical requests: the first creates, the second resolves the
	// dedup key to the first row and reports isNew=false.
	uc, docs, clients := newUseCaseWithMocks(t)
	req := quoteRequest()
	key := DedupKey(entities.DocumentTypeQuote, "", "cart-1", "client-1")

	var stored entities.Document
	first := docs.EXPECT().GetByDedupKey(gomock.Any(), key).Return(entities.Document{}, nil)
	docs.EXPECT().ListByClient(gomock.Any(), "client-1").Return(nil, nil)
	clients.EXPECT().Exists(gomock.Any(), "client-1").Return(true, nil)
	docs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d entities.Document) (entities.Document, error) {
			stored = d
			return d, nil
		},
	)
	docs.EXPECT().GetByDedupKey(gomock.Any(), key).DoAndReturn(
		func(context.Context, string) (entities.Document, error) {
			return stored, nil
		},
	).After(first)

	res1, err := uc.CreateDocument(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res1.IsNew {
		t.Fatalf("first request must create")
	}

	res2, err := uc.CreateDocument(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res2.IsNew {
		t.Fatalf("second request must reuse")
	}
	if res1.Document.ID != res2.Document.ID {
		t.Fatalf("expected one stored row, got %s and %s", res1.Document.ID, res2.Document.ID)
	}
}
