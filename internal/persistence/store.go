package persistence

import "context"

// Collection keys used by the repositories. Each holds a serialized JSON
// list of records except KeyCurrentToken, which is a single scalar slot.
const (
	KeyUsers        = "users"
	KeySuppliers    = "suppliers"
	KeyWarehouses   = "warehouses"
	KeyAudit        = "audit"
	KeyCurrentToken = "currentToken"
)

// Store is the key-value substrate the repositories persist into. A key
// that was never written reads back as absent; repositories treat absent
// collections as empty. Implementations must make Set durable before
// returning, but cross-process coordination is out of contract: the last
// writer wins.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes the value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
