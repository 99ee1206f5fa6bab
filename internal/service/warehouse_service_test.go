package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/events"
	"github.com/spec-kit/warehouse-service/internal/persistence"
	"github.com/spec-kit/warehouse-service/internal/repository"
	apperrors "github.com/spec-kit/warehouse-service/pkg/util"
)

type warehouseStack struct {
	auth       *AuthService
	warehouses *WarehouseService
}

func newWarehouseStack(t *testing.T) *warehouseStack {
	t.Helper()
	store := persistence.NewMemoryStore()
	authSvc := NewAuthService(testConfig(), AuthDependencies{
		UserRepo:    repository.NewUserRepository(store),
		SessionRepo: repository.NewSessionRepository(store),
	})
	return &warehouseStack{
		auth:       authSvc,
		warehouses: NewWarehouseService(repository.NewWarehouseRepository(store), authSvc, events.NewInMemoryDispatcher()),
	}
}

func (s *warehouseStack) register(t *testing.T, ctx context.Context) *domain.Identity {
	t.Helper()
	identity, _, _, err := s.auth.Register(ctx, "bob", "bob@example.com", "secret123", "")
	require.NoError(t, err)
	return identity
}

func centralInput() WarehouseCreateInput {
	capacity := 1000.0
	return WarehouseCreateInput{
		Name:     "Central",
		Location: "Rotterdam",
		Capacity: &capacity,
		Manager:  "J. Vermeer",
		Contact:  "555-0199",
	}
}

func TestWarehouseCreate_RequiresSession(t *testing.T) {
	stack := newWarehouseStack(t)

	_, err := stack.warehouses.Create(context.Background(), centralInput())
	require.True(t, apperrors.IsCode(err, "NO_SESSION"), "got %v", err)
}

func TestWarehouseCreate_DefaultsAndStamping(t *testing.T) {
	stack := newWarehouseStack(t)
	ctx := context.Background()
	user := stack.register(t, ctx)

	warehouse, err := stack.warehouses.Create(ctx, centralInput())
	require.NoError(t, err)
	require.NotEmpty(t, warehouse.ID)
	require.Equal(t, user.ID, warehouse.CreatedBy)
	require.Equal(t, 1000.0, warehouse.Capacity)
	require.Equal(t, 0.0, warehouse.CurrentStock)
	require.Equal(t, domain.WarehouseStatusOperational, warehouse.Status)
}

func TestWarehouseCreate_Validation(t *testing.T) {
	stack := newWarehouseStack(t)
	ctx := context.Background()
	stack.register(t, ctx)

	missingCapacity := centralInput()
	missingCapacity.Capacity = nil
	_, err := stack.warehouses.Create(ctx, missingCapacity)
	require.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"), "got %v", err)

	negativeCapacity := centralInput()
	below := -1.0
	negativeCapacity.Capacity = &below
	_, err = stack.warehouses.Create(ctx, negativeCapacity)
	require.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"), "got %v", err)

	negativeStock := centralInput()
	negativeStock.CurrentStock = &below
	_, err = stack.warehouses.Create(ctx, negativeStock)
	require.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"), "got %v", err)

	missingManager := centralInput()
	missingManager.Manager = ""
	_, err = stack.warehouses.Create(ctx, missingManager)
	require.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"), "got %v", err)

	badStatus := centralInput()
	status := domain.WarehouseStatus("flooded")
	badStatus.Status = &status
	_, err = stack.warehouses.Create(ctx, badStatus)
	require.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"), "got %v", err)
}

func TestWarehouseUpdate_PartialMerge(t *testing.T) {
	stack := newWarehouseStack(t)
	ctx := context.Background()
	stack.register(t, ctx)

	created, err := stack.warehouses.Create(ctx, centralInput())
	require.NoError(t, err)

	stock := 250.0
	updated, err := stack.warehouses.Update(ctx, created.ID, WarehouseUpdateInput{CurrentStock: &stock})
	require.NoError(t, err)
	require.Equal(t, 250.0, updated.CurrentStock)
	require.Equal(t, "Central", updated.Name)
	require.Equal(t, 1000.0, updated.Capacity)
	require.Equal(t, created.CreatedBy, updated.CreatedBy)
	require.True(t, created.CreatedAt.Equal(updated.CreatedAt))
}

func TestWarehouseUpdate_EmptyPartial(t *testing.T) {
	stack := newWarehouseStack(t)
	ctx := context.Background()
	stack.register(t, ctx)

	created, err := stack.warehouses.Create(ctx, centralInput())
	require.NoError(t, err)

	updated, err := stack.warehouses.Update(ctx, created.ID, WarehouseUpdateInput{})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.Name, updated.Name)
	require.Equal(t, created.Capacity, updated.Capacity)
	require.Equal(t, created.CurrentStock, updated.CurrentStock)
	require.Equal(t, created.Status, updated.Status)
}

func TestWarehouseUpdate_RejectsNegativeMerge(t *testing.T) {
	stack := newWarehouseStack(t)
	ctx := context.Background()
	stack.register(t, ctx)

	created, err := stack.warehouses.Create(ctx, centralInput())
	require.NoError(t, err)

	below := -5.0
	_, err = stack.warehouses.Update(ctx, created.ID, WarehouseUpdateInput{Capacity: &below})
	require.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"), "got %v", err)
}

func TestWarehouseDelete_NotFoundSemantics(t *testing.T) {
	stack := newWarehouseStack(t)
	ctx := context.Background()
	stack.register(t, ctx)

	created, err := stack.warehouses.Create(ctx, centralInput())
	require.NoError(t, err)

	require.NoError(t, stack.warehouses.Delete(ctx, created.ID))

	_, err = stack.warehouses.GetByID(ctx, created.ID)
	require.True(t, apperrors.IsCode(err, "NOT_FOUND"), "got %v", err)

	err = stack.warehouses.Delete(ctx, created.ID)
	require.True(t, apperrors.IsCode(err, "NOT_FOUND"), "got %v", err)
}

func TestWarehouseRoundTrip(t *testing.T) {
	stack := newWarehouseStack(t)
	ctx := context.Background()
	stack.register(t, ctx)

	created, err := stack.warehouses.Create(ctx, centralInput())
	require.NoError(t, err)

	got, err := stack.warehouses.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, created.Name, got.Name)
	require.Equal(t, created.Location, got.Location)
	require.Equal(t, created.Capacity, got.Capacity)
	require.Equal(t, created.CurrentStock, got.CurrentStock)
	require.Equal(t, created.Manager, got.Manager)
	require.Equal(t, created.Contact, got.Contact)
	require.Equal(t, created.Status, got.Status)
	require.Equal(t, created.CreatedBy, got.CreatedBy)
	require.True(t, created.CreatedAt.Equal(got.CreatedAt))
}
