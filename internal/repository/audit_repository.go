package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/persistence"
)

// AuditRepository appends to the mutation audit trail.
type AuditRepository interface {
	Append(ctx context.Context, entry domain.AuditEntry) error
	List(ctx context.Context) ([]domain.AuditEntry, error)
}

type auditRepository struct {
	mu    sync.Mutex
	store persistence.Store
}

// NewAuditRepository returns a substrate-backed implementation.
func NewAuditRepository(store persistence.Store) AuditRepository {
	return &auditRepository{store: store}
}

func (r *auditRepository) Append(ctx context.Context, entry domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := loadCollection[domain.AuditEntry](ctx, r.store, persistence.KeyAudit)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return saveCollection(ctx, r.store, persistence.KeyAudit, entries)
}

func (r *auditRepository) List(ctx context.Context) ([]domain.AuditEntry, error) {
	return loadCollection[domain.AuditEntry](ctx, r.store, persistence.KeyAudit)
}
