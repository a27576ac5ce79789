package interfaces

import (
	"context"
)

// IClientRepository abstracts the client registry. The lifecycle engine never
// reads client details; it only verifies that the referenced client exists.

type IClientRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
}
