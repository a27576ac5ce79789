package entities

// Parent/child pairing rules for the document lineage.
//
//   order: root document, never has a parent
//   quote.parent: order (optional)
//   invoice.parent: order (optional, at most one invoice per order)
//   supplier_order.parent: invoice (optional)
//
// Because each type's single legal parent type sits strictly above it, a
// parent reference can never close a cycle.

// RequiredParentType returns the only type a parent of t may have. The second
// result is false for root types that must not have a parent at all.
func RequiredParentType(t DocumentType) (DocumentType, bool) {
	switch t {
	case DocumentTypeQuote, DocumentTypeInvoice:
		return DocumentTypeOrder, true
	case DocumentTypeSupplierOrder:
		return DocumentTypeInvoice, true
	}
	return "", false
}

// LegalChildTypes returns the document types that may reference t as parent.
func LegalChildTypes(t DocumentType) []DocumentType {
	switch t {
	case DocumentTypeOrder:
		return []DocumentType{DocumentTypeQuote, DocumentTypeInvoice}
	case DocumentTypeInvoice:
		return []DocumentType{DocumentTypeSupplierOrder}
	}
	return nil
}

// MaxChildren returns the cardinality limit for children of type child under
// a parent of type parent; 0 means unlimited.
func MaxChildren(parent, child DocumentType) int {
	if parent == DocumentTypeOrder && child == DocumentTypeInvoice {
		return 1
	}
	return 0
}
