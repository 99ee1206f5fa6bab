package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/events"
	"github.com/spec-kit/warehouse-service/internal/repository"
	apperrors "github.com/spec-kit/warehouse-service/pkg/util"
)

// WarehouseCreateInput carries the fields accepted at creation. Capacity is
// a pointer so a missing value can be told apart from zero.
type WarehouseCreateInput struct {
	Name         string
	Location     string
	Capacity     *float64
	CurrentStock *float64
	Manager      string
	Contact      string
	Status       *domain.WarehouseStatus
}

// WarehouseUpdateInput is a partial payload: only present fields overwrite.
type WarehouseUpdateInput struct {
	Name         *string
	Location     *string
	Capacity     *float64
	CurrentStock *float64
	Manager      *string
	Contact      *string
	Status       *domain.WarehouseStatus
}

// WarehouseService owns the warehouse collection.
type WarehouseService struct {
	warehouses repository.WarehouseRepository
	resolver   IdentityResolver
	dispatcher events.Dispatcher
}

// NewWarehouseService builds the service.
func NewWarehouseService(warehouses repository.WarehouseRepository, resolver IdentityResolver, dispatcher events.Dispatcher) *WarehouseService {
	return &WarehouseService{warehouses: warehouses, resolver: resolver, dispatcher: dispatcher}
}

// List returns all warehouses in storage order.
func (s *WarehouseService) List(ctx context.Context) ([]domain.Warehouse, error) {
	warehouses, err := s.warehouses.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return warehouses, nil
}

// GetByID returns a single warehouse.
func (s *WarehouseService) GetByID(ctx context.Context, id string) (*domain.Warehouse, error) {
	warehouse, err := s.warehouses.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "warehouse")
	}
	return warehouse, nil
}

// Create validates the payload, stamps the acting identity and appends the
// record.
func (s *WarehouseService) Create(ctx context.Context, input WarehouseCreateInput) (*domain.Warehouse, error) {
	identity, err := s.resolver.CurrentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateRequiredStrings(map[string]string{
		"name":     input.Name,
		"location": input.Location,
		"manager":  input.Manager,
		"contact":  input.Contact,
	}); err != nil {
		return nil, err
	}

	if input.Capacity == nil {
		return nil, apperrors.NewValidationError("capacity required", nil)
	}
	if err := validateNonNegative("capacity", *input.Capacity); err != nil {
		return nil, err
	}

	currentStock := 0.0
	if input.CurrentStock != nil {
		currentStock = *input.CurrentStock
	}
	if err := validateNonNegative("currentStock", currentStock); err != nil {
		return nil, err
	}

	status := domain.WarehouseStatusOperational
	if input.Status != nil {
		status = *input.Status
	}
	if err := validateWarehouseStatus(status); err != nil {
		return nil, err
	}

	warehouse := domain.Warehouse{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Location:     input.Location,
		Capacity:     *input.Capacity,
		CurrentStock: currentStock,
		Manager:      input.Manager,
		Contact:      input.Contact,
		Status:       status,
		CreatedBy:    identity.ID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.warehouses.Insert(ctx, warehouse); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventWarehouseCreated, warehouse.ID, identity.ID, events.CreatedPayload{Name: warehouse.Name})
	return &warehouse, nil
}

// Update merges the partial payload over the stored record. ID, createdBy
// and the creation timestamp are never client-overwritable.
func (s *WarehouseService) Update(ctx context.Context, id string, input WarehouseUpdateInput) (*domain.Warehouse, error) {
	existing, err := s.warehouses.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "warehouse")
	}

	merged := *existing
	changed := []string{}

	if input.Name != nil {
		merged.Name = *input.Name
		changed = append(changed, "name")
	}
	if input.Location != nil {
		merged.Location = *input.Location
		changed = append(changed, "location")
	}
	if input.Capacity != nil {
		merged.Capacity = *input.Capacity
		changed = append(changed, "capacity")
	}
	if input.CurrentStock != nil {
		merged.CurrentStock = *input.CurrentStock
		changed = append(changed, "currentStock")
	}
	if input.Manager != nil {
		merged.Manager = *input.Manager
		changed = append(changed, "manager")
	}
	if input.Contact != nil {
		merged.Contact = *input.Contact
		changed = append(changed, "contact")
	}
	if input.Status != nil {
		merged.Status = *input.Status
		changed = append(changed, "status")
	}

	if err := validateRequiredStrings(map[string]string{
		"name":     merged.Name,
		"location": merged.Location,
		"manager":  merged.Manager,
		"contact":  merged.Contact,
	}); err != nil {
		return nil, err
	}
	if err := validateNonNegative("capacity", merged.Capacity); err != nil {
		return nil, err
	}
	if err := validateNonNegative("currentStock", merged.CurrentStock); err != nil {
		return nil, err
	}
	if err := validateWarehouseStatus(merged.Status); err != nil {
		return nil, err
	}

	if err := s.warehouses.Replace(ctx, merged); err != nil {
		return nil, mapRepoError(err, "warehouse")
	}

	s.publish(ctx, events.EventWarehouseUpdated, merged.ID, s.actorID(ctx), events.UpdatedPayload{ChangedFields: changed})
	return &merged, nil
}

// Delete removes the record; deleting an unknown id is an error, not a no-op.
func (s *WarehouseService) Delete(ctx context.Context, id string) error {
	if err := s.warehouses.Delete(ctx, id); err != nil {
		return mapRepoError(err, "warehouse")
	}
	s.publish(ctx, events.EventWarehouseDeleted, id, s.actorID(ctx), nil)
	return nil
}

func (s *WarehouseService) actorID(ctx context.Context) string {
	if identity, err := s.resolver.CurrentIdentity(ctx); err == nil {
		return identity.ID
	}
	return ""
}

func (s *WarehouseService) publish(ctx context.Context, eventType events.EventType, entityID, actorID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EntityKind: "warehouse",
		EntityID:   entityID,
		ActorID:    actorID,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	})
}

func validateWarehouseStatus(status domain.WarehouseStatus) error {
	switch status {
	case domain.WarehouseStatusOperational, domain.WarehouseStatusMaintenance, domain.WarehouseStatusClosed:
		return nil
	}
	return apperrors.NewValidationError("status must be operational, maintenance or closed", map[string]any{"status": status})
}
