package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/persistence"
)

// SupplierRepository encapsulates supplier persistence. List order is
// insertion order; no contractual sorting.
type SupplierRepository interface {
	List(ctx context.Context) ([]domain.Supplier, error)
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	Insert(ctx context.Context, supplier domain.Supplier) error
	// Replace swaps the stored record with the same ID. ErrNotFound if absent.
	Replace(ctx context.Context, supplier domain.Supplier) error
	// Delete removes the record. ErrNotFound if absent, never a silent no-op.
	Delete(ctx context.Context, id string) error
}

type supplierRepository struct {
	mu    sync.Mutex
	store persistence.Store
}

// NewSupplierRepository returns a substrate-backed implementation.
func NewSupplierRepository(store persistence.Store) SupplierRepository {
	return &supplierRepository{store: store}
}

func (r *supplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	return loadCollection[domain.Supplier](ctx, r.store, persistence.KeySuppliers)
}

func (r *supplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	suppliers, err := loadCollection[domain.Supplier](ctx, r.store, persistence.KeySuppliers)
	if err != nil {
		return nil, err
	}
	for i := range suppliers {
		if suppliers[i].ID == id {
			return &suppliers[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *supplierRepository) Insert(ctx context.Context, supplier domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	suppliers, err := loadCollection[domain.Supplier](ctx, r.store, persistence.KeySuppliers)
	if err != nil {
		return err
	}
	suppliers = append(suppliers, supplier)
	return saveCollection(ctx, r.store, persistence.KeySuppliers, suppliers)
}

func (r *supplierRepository) Replace(ctx context.Context, supplier domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	suppliers, err := loadCollection[domain.Supplier](ctx, r.store, persistence.KeySuppliers)
	if err != nil {
		return err
	}
	for i := range suppliers {
		if suppliers[i].ID == supplier.ID {
			suppliers[i] = supplier
			return saveCollection(ctx, r.store, persistence.KeySuppliers, suppliers)
		}
	}
	return ErrNotFound
}

func (r *supplierRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	suppliers, err := loadCollection[domain.Supplier](ctx, r.store, persistence.KeySuppliers)
	if err != nil {
		return err
	}
	filtered := suppliers[:0:0]
	for _, supplier := range suppliers {
		if supplier.ID != id {
			filtered = append(filtered, supplier)
		}
	}
	if len(filtered) == len(suppliers) {
		return ErrNotFound
	}
	return saveCollection(ctx, r.store, persistence.KeySuppliers, filtered)
}
