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

// SupplierCreateInput carries the fields accepted at creation.
type SupplierCreateInput struct {
	Name             string
	Contact          string
	Email            string
	Address          string
	ProductsSupplied []string
	Rating           *float64
	Status           *domain.SupplierStatus
}

// SupplierUpdateInput is a partial payload: only present fields overwrite.
type SupplierUpdateInput struct {
	Name             *string
	Contact          *string
	Email            *string
	Address          *string
	ProductsSupplied *[]string
	Rating           *float64
	Status           *domain.SupplierStatus
}

// SupplierService owns the supplier collection.
type SupplierService struct {
	suppliers  repository.SupplierRepository
	resolver   IdentityResolver
	dispatcher events.Dispatcher
}

// NewSupplierService builds the service.
func NewSupplierService(suppliers repository.SupplierRepository, resolver IdentityResolver, dispatcher events.Dispatcher) *SupplierService {
	return &SupplierService{suppliers: suppliers, resolver: resolver, dispatcher: dispatcher}
}

// List returns all suppliers in storage order.
func (s *SupplierService) List(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return suppliers, nil
}

// GetByID returns a single supplier.
func (s *SupplierService) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	supplier, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "supplier")
	}
	return supplier, nil
}

// Create validates the payload, stamps the acting identity and appends the
// record. The session failure propagates untouched when no valid session
// exists.
func (s *SupplierService) Create(ctx context.Context, input SupplierCreateInput) (*domain.Supplier, error) {
	identity, err := s.resolver.CurrentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateRequiredStrings(map[string]string{
		"name":    input.Name,
		"contact": input.Contact,
		"email":   input.Email,
		"address": input.Address,
	}); err != nil {
		return nil, err
	}

	rating := 0.0
	if input.Rating != nil {
		rating = *input.Rating
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	status := domain.SupplierStatusActive
	if input.Status != nil {
		status = *input.Status
	}
	if err := validateSupplierStatus(status); err != nil {
		return nil, err
	}

	products := input.ProductsSupplied
	if products == nil {
		products = []string{}
	}

	supplier := domain.Supplier{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(input.Name),
		Contact:          input.Contact,
		Email:            input.Email,
		Address:          input.Address,
		ProductsSupplied: products,
		Rating:           rating,
		Status:           status,
		CreatedBy:        identity.ID,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.suppliers.Insert(ctx, supplier); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventSupplierCreated, supplier.ID, identity.ID, events.CreatedPayload{Name: supplier.Name})
	return &supplier, nil
}

// Update merges the partial payload over the stored record. ID, createdBy
// and the creation timestamp are never client-overwritable.
func (s *SupplierService) Update(ctx context.Context, id string, input SupplierUpdateInput) (*domain.Supplier, error) {
	existing, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "supplier")
	}

	merged := *existing
	changed := []string{}

	if input.Name != nil {
		merged.Name = *input.Name
		changed = append(changed, "name")
	}
	if input.Contact != nil {
		merged.Contact = *input.Contact
		changed = append(changed, "contact")
	}
	if input.Email != nil {
		merged.Email = *input.Email
		changed = append(changed, "email")
	}
	if input.Address != nil {
		merged.Address = *input.Address
		changed = append(changed, "address")
	}
	if input.ProductsSupplied != nil {
		merged.ProductsSupplied = *input.ProductsSupplied
		changed = append(changed, "productsSupplied")
	}
	if input.Rating != nil {
		merged.Rating = *input.Rating
		changed = append(changed, "rating")
	}
	if input.Status != nil {
		merged.Status = *input.Status
		changed = append(changed, "status")
	}

	if err := validateRequiredStrings(map[string]string{
		"name":    merged.Name,
		"contact": merged.Contact,
		"email":   merged.Email,
		"address": merged.Address,
	}); err != nil {
		return nil, err
	}
	if err := validateRating(merged.Rating); err != nil {
		return nil, err
	}
	if err := validateSupplierStatus(merged.Status); err != nil {
		return nil, err
	}

	if err := s.suppliers.Replace(ctx, merged); err != nil {
		return nil, mapRepoError(err, "supplier")
	}

	s.publish(ctx, events.EventSupplierUpdated, merged.ID, s.actorID(ctx), events.UpdatedPayload{ChangedFields: changed})
	return &merged, nil
}

// Delete removes the record; deleting an unknown id is an error, not a no-op.
func (s *SupplierService) Delete(ctx context.Context, id string) error {
	if err := s.suppliers.Delete(ctx, id); err != nil {
		return mapRepoError(err, "supplier")
	}
	s.publish(ctx, events.EventSupplierDeleted, id, s.actorID(ctx), nil)
	return nil
}

func (s *SupplierService) actorID(ctx context.Context) string {
	if identity, err := s.resolver.CurrentIdentity(ctx); err == nil {
		return identity.ID
	}
	return ""
}

func (s *SupplierService) publish(ctx context.Context, eventType events.EventType, entityID, actorID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EntityKind: "supplier",
		EntityID:   entityID,
		ActorID:    actorID,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	})
}

func validateSupplierStatus(status domain.SupplierStatus) error {
	switch status {
	case domain.SupplierStatusActive, domain.SupplierStatusInactive:
		return nil
	}
	return apperrors.NewValidationError("status must be active or inactive", map[string]any{"status": status})
}

func validateRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return apperrors.NewValidationError("rating must be between 0 and 5", map[string]any{"rating": rating})
	}
	return nil
}
