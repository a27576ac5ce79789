package entities

// DocumentStatus is a status value from one document type's own state set.
// The sets never mix: an order status is not meaningful for an invoice.

type DocumentStatus string

// Order statuses.
const (
	OrderStatusNewPlanned          DocumentStatus = "NEW_PLANNED"
	OrderStatusUnderReview         DocumentStatus = "UNDER_REVIEW"
	OrderStatusAwaitingMeasurement DocumentStatus = "AWAITING_MEASUREMENT"
	OrderStatusAwaitingInvoice     DocumentStatus = "AWAITING_INVOICE"
	OrderStatusCompleted           DocumentStatus = "COMPLETED"
)

// Invoice statuses.
const (
	InvoiceStatusDraft                DocumentStatus = "DRAFT"
	InvoiceStatusSent                 DocumentStatus = "SENT"
	InvoiceStatusPaid                 DocumentStatus = "PAID"
	InvoiceStatusInProduction         DocumentStatus = "IN_PRODUCTION"
	InvoiceStatusReceivedFromSupplier DocumentStatus = "RECEIVED_FROM_SUPPLIER"
	InvoiceStatusCompleted            DocumentStatus = "COMPLETED"
	InvoiceStatusCancelled            DocumentStatus = "CANCELLED"
)

// Quote statuses.
const (
	QuoteStatusDraft    DocumentStatus = "DRAFT"
	QuoteStatusSent     DocumentStatus = "SENT"
	QuoteStatusAccepted DocumentStatus = "ACCEPTED"
	QuoteStatusRejected DocumentStatus = "REJECTED"
)

// Supplier order statuses.
const (
	SupplierOrderStatusCreated              DocumentStatus = "CREATED"
	SupplierOrderStatusOrdered              DocumentStatus = "ORDERED"
	SupplierOrderStatusReceivedFromSupplier DocumentStatus = "RECEIVED_FROM_SUPPLIER"
	SupplierOrderStatusCompleted            DocumentStatus = "COMPLETED"
)

// statusTransitions maps, per document type, each status to its legal
// successor set. A status absent from the map, or mapped to an empty set,
// is terminal. Transitions to the current status succeed only when the
// table lists them, like any other edge.
var statusTransitions = map[DocumentType]map[DocumentStatus][]DocumentStatus{
	DocumentTypeOrder: {
		OrderStatusNewPlanned:          {OrderStatusUnderReview},
		OrderStatusUnderReview:         {OrderStatusAwaitingMeasurement, OrderStatusAwaitingInvoice},
		OrderStatusAwaitingMeasurement: {OrderStatusAwaitingInvoice},
		OrderStatusAwaitingInvoice:     {OrderStatusCompleted},
		OrderStatusCompleted:           {},
	},
	DocumentTypeInvoice: {
		InvoiceStatusDraft:                {InvoiceStatusSent},
		InvoiceStatusSent:                 {InvoiceStatusPaid, InvoiceStatusCancelled},
		InvoiceStatusPaid:                 {InvoiceStatusInProduction},
		InvoiceStatusInProduction:         {InvoiceStatusReceivedFromSupplier},
		InvoiceStatusReceivedFromSupplier: {InvoiceStatusCompleted},
		InvoiceStatusCompleted:            {},
		InvoiceStatusCancelled:            {},
	},
	DocumentTypeQuote: {
		QuoteStatusDraft:    {QuoteStatusSent},
		QuoteStatusSent:     {QuoteStatusAccepted, QuoteStatusRejected},
		QuoteStatusAccepted: {},
		QuoteStatusRejected: {},
	},
	DocumentTypeSupplierOrder: {
		SupplierOrderStatusCreated:              {SupplierOrderStatusOrdered},
		SupplierOrderStatusOrdered:              {SupplierOrderStatusReceivedFromSupplier},
		SupplierOrderStatusReceivedFromSupplier: {SupplierOrderStatusCompleted},
		SupplierOrderStatusCompleted:            {},
	},
}

// InitialStatus is the status a freshly created document of type t starts in.
func InitialStatus(t DocumentType) DocumentStatus {
	switch t {
	case DocumentTypeOrder:
		return OrderStatusNewPlanned
	case DocumentTypeInvoice:
		return InvoiceStatusDraft
	case DocumentTypeQuote:
		return QuoteStatusDraft
	case DocumentTypeSupplierOrder:
		return SupplierOrderStatusCreated
	}
	return ""
}

// CanTransition reports whether the edge from→to exists in the transition
// table of document type t. Unknown statuses have no outgoing edges.
func CanTransition(t DocumentType, from, to DocumentStatus) bool {
	table, ok := statusTransitions[t]
	if !ok {
		return false
	}
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// KnownStatus reports whether s belongs to the state set of type t.
func KnownStatus(t DocumentType, s DocumentStatus) bool {
	table, ok := statusTransitions[t]
	if !ok {
		return false
	}
	if _, ok := table[s]; ok {
		return true
	}
	for _, successors := range table {
		for _, next := range successors {
			if next == s {
				return true
			}
		}
	}
	return false
}
