package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/persistence"
)

// WarehouseRepository encapsulates warehouse persistence.
type WarehouseRepository interface {
	List(ctx context.Context) ([]domain.Warehouse, error)
	GetByID(ctx context.Context, id string) (*domain.Warehouse, error)
	Insert(ctx context.Context, warehouse domain.Warehouse) error
	Replace(ctx context.Context, warehouse domain.Warehouse) error
	Delete(ctx context.Context, id string) error
}

type warehouseRepository struct {
	mu    sync.Mutex
	store persistence.Store
}

// NewWarehouseRepository returns a substrate-backed implementation.
func NewWarehouseRepository(store persistence.Store) WarehouseRepository {
	return &warehouseRepository{store: store}
}

func (r *warehouseRepository) List(ctx context.Context) ([]domain.Warehouse, error) {
	return loadCollection[domain.Warehouse](ctx, r.store, persistence.KeyWarehouses)
}

func (r *warehouseRepository) GetByID(ctx context.Context, id string) (*domain.Warehouse, error) {
	warehouses, err := loadCollection[domain.Warehouse](ctx, r.store, persistence.KeyWarehouses)
	if err != nil {
		return nil, err
	}
	for i := range warehouses {
		if warehouses[i].ID == id {
			return &warehouses[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *warehouseRepository) Insert(ctx context.Context, warehouse domain.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	warehouses, err := loadCollection[domain.Warehouse](ctx, r.store, persistence.KeyWarehouses)
	if err != nil {
		return err
	}
	warehouses = append(warehouses, warehouse)
	return saveCollection(ctx, r.store, persistence.KeyWarehouses, warehouses)
}

func (r *warehouseRepository) Replace(ctx context.Context, warehouse domain.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	warehouses, err := loadCollection[domain.Warehouse](ctx, r.store, persistence.KeyWarehouses)
	if err != nil {
		return err
	}
	for i := range warehouses {
		if warehouses[i].ID == warehouse.ID {
			warehouses[i] = warehouse
			return saveCollection(ctx, r.store, persistence.KeyWarehouses, warehouses)
		}
	}
	return ErrNotFound
}

func (r *warehouseRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	warehouses, err := loadCollection[domain.Warehouse](ctx, r.store, persistence.KeyWarehouses)
	if err != nil {
		return err
	}
	filtered := warehouses[:0:0]
	for _, warehouse := range warehouses {
		if warehouse.ID != id {
			filtered = append(filtered, warehouse)
		}
	}
	if len(filtered) == len(warehouses) {
		return ErrNotFound
	}
	return saveCollection(ctx, r.store, persistence.KeyWarehouses, filtered)
}
