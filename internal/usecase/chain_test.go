package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"domeo_docs/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

// lineageFixture is an order with a quote and an invoice, and a supplier
// order hanging off the invoice.
func lineageFixture() (order, quote, invoice, supplier entities.Document) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	order = entities.Document{
		ID: "o-1", Type: entities.DocumentTypeOrder, Number: "ORD-1",
		ClientID: "client-1", Status: entities.OrderStatusNewPlanned, CreatedAt: t0,
	}
	quote = entities.Document{
		ID: "q-1", Type: entities.DocumentTypeQuote, Number: "QUO-1",
		ParentDocumentID: "o-1", ClientID: "client-1",
		Status: entities.QuoteStatusDraft, CreatedAt: t0.Add(time.Minute),
	}
	invoice = entities.Document{
		ID: "i-1", Type: entities.DocumentTypeInvoice, Number: "INV-1",
		ParentDocumentID: "o-1", ClientID: "client-1",
		Status: entities.InvoiceStatusDraft, CreatedAt: t0.Add(2 * time.Minute),
	}
	supplier = entities.Document{
		ID: "s-1", Type: entities.DocumentTypeSupplierOrder, Number: "SUP-1",
		ParentDocumentID: "i-1", ClientID: "client-1",
		Status: entities.SupplierOrderStatusCreated, CreatedAt: t0.Add(3 * time.Minute),
	}
	return order, quote, invoice, supplier
}

func chainIDs(chain []entities.ChainEntry) []string {
	ids := make([]string, len(chain))
	for i, e := range chain {
		ids[i] = e.Document.ID
	}
	return ids
}

func TestDocumentUseCase_GetChain(t *testing.T) {
	t.Run("document not found", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		docs.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Document{}, nil)

		if _, err := uc.GetChain(context.Background(), "missing"); !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("lone document yields a single entry", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		order, _, _, _ := lineageFixture()
		docs.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		docs.EXPECT().ListByClient(gomock.Any(), "client-1").Return([]entities.Document{order}, nil)

		chain, err := uc.GetChain(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(chain) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(chain))
		}
		e := chain[0]
		if e.Position != 0 || e.Level != 0 || e.ParentID != "" || e.ChildID != "" {
			t.Fatalf("unexpected entry: %+v", e)
		}
	})

	t.Run("full lineage from the root order", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		order, quote, invoice, supplier := lineageFixture()
		all := []entities.Document{supplier, invoice, quote, order}
		docs.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		docs.EXPECT().ListByClient(gomock.Any(), "client-1").Return(all, nil)

		chain, err := uc.GetChain(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"o-1", "q-1", "i-1", "s-1"}
		got := chainIDs(chain)
		for i := range want {
			if i >= len(got) || got[i] != want[i] {
				t.Fatalf("expected chain %v, got %v", want, got)
			}
		}
		for i, e := range chain {
			if e.Position != i {
				t.Fatalf("expected position %d for %s, got %d", i, e.Document.ID, e.Position)
			}
			if e.Level != 0 {
				t.Fatalf("expected level 0, got %d", e.Level)
			}
		}
		if chain[1].ParentID != "o-1" || chain[2].ParentID != "o-1" || chain[3].ParentID != "i-1" {
			t.Fatalf("unexpected parent links: %+v", chain)
		}
		if chain[0].ChildID != "" {
			t.Fatalf("the requested document carries no child link, got %s", chain[0].ChildID)
		}
	})

	t.Run("chain is the same from any member", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		order, quote, invoice, supplier := lineageFixture()
		all := []entities.Document{order, quote, invoice, supplier}
		docs.EXPECT().GetByID(gomock.Any(), "s-1").Return(supplier, nil)
		docs.EXPECT().ListByClient(gomock.Any(), "client-1").Return(all, nil)

		chain, err := uc.GetChain(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"o-1", "q-1", "i-1", "s-1"}
		got := chainIDs(chain)
		for i := range want {
			if i >= len(got) || got[i] != want[i] {
				t.Fatalf("expected chain %v, got %v", want, got)
			}
		}
		// Anchored at the supplier order: earlier members sit at negative
		// positions, ancestors on the path point down toward it.
		if chain[3].Position != 0 || chain[0].Position != -3 {
			t.Fatalf("unexpected positions: %+v", chain)
		}
		if chain[0].ChildID != "i-1" || chain[2].ChildID != "s-1" {
			t.Fatalf("unexpected child links: %+v", chain)
		}
		if chain[1].ChildID != "" {
			t.Fatalf("the quote is off the path and carries no child link, got %s", chain[1].ChildID)
		}
	})

	t.Run("supplier order without a client resolves it through its parents", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		order, quote, invoice, supplier := lineageFixture()
		supplier.ClientID = ""

		docs.EXPECT().GetByID(gomock.Any(), "s-1").Return(supplier, nil)
		docs.EXPECT().GetByID(gomock.Any(), "i-1").Return(invoice, nil)
		// The index never saw the client-less supplier order.
		docs.EXPECT().ListByClient(gomock.Any(), "client-1").Return([]entities.Document{order, quote, invoice}, nil)

		chain, err := uc.GetChain(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(chain) != 4 {
			t.Fatalf("expected the supplier order to join its lineage, got %v", chainIDs(chain))
		}
		if chain[3].Document.ID != "s-1" || chain[3].Position != 0 {
			t.Fatalf("unexpected anchor entry: %+v", chain[3])
		}
	})

	t.Run("malformed parent cycle terminates", func(t *testing.T) {
		uc, docs, _ := newUseCaseWithMocks(t)
		t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		order := entities.Document{
			ID: "o-1", Type: entities.DocumentTypeOrder, ClientID: "client-1",
			ParentDocumentID: "i-1", CreatedAt: t0,
		}
		invoice := entities.Document{
			ID: "i-1", Type: entities.DocumentTypeInvoice, ClientID: "client-1",
			ParentDocumentID: "o-1", CreatedAt: t0.Add(time.Minute),
		}
		docs.EXPECT().GetByID(gomock.Any(), "i-1").Return(invoice, nil)
		docs.EXPECT().ListByClient(gomock.Any(), "client-1").Return([]entities.Document{order, invoice}, nil)

		chain, err := uc.GetChain(context.Background(), "i-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(chain) != 2 {
			t.Fatalf("expected both documents exactly once, got %v", chainIDs(chain))
		}
		if chain[len(chain)-1].Document.ID != "i-1" || chain[len(chain)-1].Position != 0 {
			t.Fatalf("expected the requested document at position 0, got %+v", chain)
		}
	})
}
