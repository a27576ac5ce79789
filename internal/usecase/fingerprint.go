package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"domeo_docs/internal/domain/entities"
)

// normalizedItem is the canonical projection of a cart line used for content
// comparison. Field order matters for the serialized form, nothing else.
type normalizedItem struct {
	Type          string  `json:"type"`
	Style         string  `json:"style,omitempty"`
	Model         string  `json:"model,omitempty"`
	Finish        string  `json:"finish,omitempty"`
	Color         string  `json:"color,omitempty"`
	Width         float64 `json:"width,omitempty"`
	Height        float64 `json:"height,omitempty"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	HardwareKitID string  `json:"hardware_kit_id,omitempty"`
	HandleID      string  `json:"handle_id,omitempty"`
	SKU           string  `json:"sku,omitempty"`
}

// normalizeItems canonicalizes a cart: identity fields are lowercased and
// trimmed, defaults applied, handle lines reduced to their identifying
// triple, and the result sorted by a composite identity key so that two
// permutations of the same cart serialize identically.
func normalizeItems(items []entities.DocumentItem) []normalizedItem {
	out := make([]normalizedItem, 0, len(items))
	for _, item := range items {
		n := normalizedItem{
			Type:          strings.ToLower(strings.TrimSpace(item.Type)),
			Style:         strings.ToLower(strings.TrimSpace(item.Style)),
			Model:         strings.ToLower(strings.TrimSpace(item.Model)),
			Finish:        strings.ToLower(strings.TrimSpace(item.Finish)),
			Color:         strings.ToLower(strings.TrimSpace(item.Color)),
			Width:         item.Width,
			Height:        item.Height,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			HardwareKitID: strings.TrimSpace(item.HardwareKitID),
			HandleID:      strings.TrimSpace(item.HandleID),
			SKU:           strings.TrimSpace(item.SKU),
		}
		if n.Type == "" {
			n.Type = "door"
		}
		if n.Quantity == 0 {
			n.Quantity = 1
		}
		// Handles are identified by handle id alone.
		if n.Type == "handle" || n.HandleID != "" {
			n = normalizedItem{
				Type:      "handle",
				HandleID:  n.HandleID,
				Quantity:  n.Quantity,
				UnitPrice: n.UnitPrice,
			}
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return itemSortKey(out[i]) < itemSortKey(out[j])
	})
	return out
}

func itemSortKey(n normalizedItem) string {
	ident := n.HandleID
	if ident == "" {
		ident = n.Model
	}
	return strings.Join([]string{
		n.Type,
		ident,
		n.Finish,
		n.Color,
		strconv.FormatFloat(n.Width, 'f', -1, 64),
		strconv.FormatFloat(n.Height, 'f', -1, 64),
		n.HardwareKitID,
	}, ":")
}

// Fingerprint derives the deterministic content key of a document request:
// the same client, the same multiset of items and the same total always hash
// to the same value. It never fails; items with missing identity fields
// degrade to a still-deterministic projection.
func Fingerprint(clientID string, items []entities.DocumentItem, totalAmount float64) string {
	payload := struct {
		ClientID    string           `json:"client_id"`
		Items       []normalizedItem `json:"items"`
		TotalAmount float64          `json:"total_amount"`
	}{
		ClientID:    strings.TrimSpace(clientID),
		Items:       normalizeItems(items),
		TotalAmount: totalAmount,
	}

	// Marshal of a struct with string/number fields cannot fail.
	b, _ := json.Marshal(payload)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// DedupKey builds the exact-match key of the idempotent creation path from
// the identifying tuple of a create request.
func DedupKey(t entities.DocumentType, parentDocumentID, cartKey, clientID string) string {
	raw := strings.Join([]string{string(t), parentDocumentID, cartKey, clientID}, "|")
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
