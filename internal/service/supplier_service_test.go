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

type supplierStack struct {
	auth      *AuthService
	suppliers *SupplierService
	audit     *AuditService
}

func newSupplierStack(t *testing.T) *supplierStack {
	t.Helper()
	store := persistence.NewMemoryStore()
	authSvc := NewAuthService(testConfig(), AuthDependencies{
		UserRepo:    repository.NewUserRepository(store),
		SessionRepo: repository.NewSessionRepository(store),
	})
	dispatcher := events.NewInMemoryDispatcher()
	auditSvc := NewAuditService(dispatcher, repository.NewAuditRepository(store), testLogger())
	auditSvc.RegisterHandlers()
	return &supplierStack{
		auth:      authSvc,
		suppliers: NewSupplierService(repository.NewSupplierRepository(store), authSvc, dispatcher),
		audit:     auditSvc,
	}
}

func (s *supplierStack) register(t *testing.T, ctx context.Context) *domain.Identity {
	t.Helper()
	identity, _, _, err := s.auth.Register(ctx, "alice", "alice@example.com", "secret123", "")
	require.NoError(t, err)
	return identity
}

func acmeInput() SupplierCreateInput {
	rating := 4.5
	return SupplierCreateInput{
		Name:    "Acme",
		Contact: "555-0100",
		Email:   "a@acme.com",
		Address: "1 Main St",
		Rating:  &rating,
	}
}

func TestSupplierCreate_RequiresSession(t *testing.T) {
	stack := newSupplierStack(t)

	_, err := stack.suppliers.Create(context.Background(), acmeInput())
	require.True(t, apperrors.IsCode(err, "NO_SESSION"), "got %v", err)
}

func TestSupplierCreate_StampsActingIdentity(t *testing.T) {
	stack := newSupplierStack(t)
	ctx := context.Background()
	user := stack.register(t, ctx)

	supplier, err := stack.suppliers.Create(ctx, acmeInput())
	require.NoError(t, err)
	require.NotEmpty(t, supplier.ID)
	require.Equal(t, user.ID, supplier.CreatedBy)
	require.Equal(t, "Acme", supplier.Name)
	require.Equal(t, 4.5, supplier.Rating)
	require.Equal(t, domain.SupplierStatusActive, supplier.Status)
	require.Equal(t, []string{}, supplier.ProductsSupplied)
	require.False(t, supplier.CreatedAt.IsZero())
}

func TestSupplierCreate_Validation(t *testing.T) {
	stack := newSupplierStack(t)
	ctx := context.Background()
	stack.register(t, ctx)

	missingName := acmeInput()
	missingName.Name = "  "
	_, err := stack.suppliers.Create(ctx, missingName)
	require.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"), "got %v", err)

	badRating := acmeInput()
	tooHigh := 5.5
	badRating.Rating = &tooHigh
	_, err = stack.suppliers.Create(ctx, badRating)
	require.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"), "got %v", err)

	negative := acmeInput()
	belowZero := -0.5
	negative.Rating = &belowZero
	_, err = stack.suppliers.Create(ctx, negative)
	require.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"), "got %v", err)

	badStatus := acmeInput()
	status := domain.SupplierStatus("retired")
	badStatus.Status = &status
	_, err = stack.suppliers.Create(ctx, badStatus)
	require.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"), "got %v", err)
}

func TestSupplierRoundTrip(t *testing.T) {
	stack := newSupplierStack(t)
	ctx := context.Background()
	stack.register(t, ctx)

	created, err := stack.suppliers.Create(ctx, acmeInput())
	require.NoError(t, err)

	got, err := stack.suppliers.GetByID(ctx, created.ID)
	require.NoError(t, err)
	requireSameSupplier(t, created, got)
}

func TestSupplierUpdate_EmptyPartialLeavesRecordUnchanged(t *testing.T) {
	stack := newSupplierStack(t)
	ctx := context.Background()
	stack.register(t, ctx)

	created, err := stack.suppliers.Create(ctx, acmeInput())
	require.NoError(t, err)

	updated, err := stack.suppliers.Update(ctx, created.ID, SupplierUpdateInput{})
	require.NoError(t, err)
	requireSameSupplier(t, created, updated)

	got, err := stack.suppliers.GetByID(ctx, created.ID)
	require.NoError(t, err)
	requireSameSupplier(t, created, got)
}

func TestSupplierUpdate_SingleFieldMerge(t *testing.T) {
	stack := newSupplierStack(t)
	ctx := context.Background()
	stack.register(t, ctx)

	created, err := stack.suppliers.Create(ctx, acmeInput())
	require.NoError(t, err)

	five := 5.0
	updated, err := stack.suppliers.Update(ctx, created.ID, SupplierUpdateInput{Rating: &five})
	require.NoError(t, err)
	require.Equal(t, 5.0, updated.Rating)
	require.Equal(t, "Acme", updated.Name)
	require.Equal(t, created.CreatedBy, updated.CreatedBy)
	require.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	got, err := stack.suppliers.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 5.0, got.Rating)
	require.Equal(t, "Acme", got.Name)
}

func TestSupplierUpdate_RejectsInvalidMerge(t *testing.T) {
	stack := newSupplierStack(t)
	ctx := context.Background()
	stack.register(t, ctx)

	created, err := stack.suppliers.Create(ctx, acmeInput())
	require.NoError(t, err)

	blank := ""
	_, err = stack.suppliers.Update(ctx, created.ID, SupplierUpdateInput{Name: &blank})
	require.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"), "got %v", err)

	tooHigh := 6.0
	_, err = stack.suppliers.Update(ctx, created.ID, SupplierUpdateInput{Rating: &tooHigh})
	require.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"), "got %v", err)
}

func TestSupplierUpdate_UnknownID(t *testing.T) {
	stack := newSupplierStack(t)
	ctx := context.Background()
	stack.register(t, ctx)

	_, err := stack.suppliers.Update(ctx, "missing", SupplierUpdateInput{})
	require.True(t, apperrors.IsCode(err, "NOT_FOUND"), "got %v", err)
}

func TestSupplierDelete_NotFoundSemantics(t *testing.T) {
	stack := newSupplierStack(t)
	ctx := context.Background()
	stack.register(t, ctx)

	created, err := stack.suppliers.Create(ctx, acmeInput())
	require.NoError(t, err)

	require.NoError(t, stack.suppliers.Delete(ctx, created.ID))

	_, err = stack.suppliers.GetByID(ctx, created.ID)
	require.True(t, apperrors.IsCode(err, "NOT_FOUND"), "got %v", err)

	// deleting an already-deleted id is an error, not a silent success
	err = stack.suppliers.Delete(ctx, created.ID)
	require.True(t, apperrors.IsCode(err, "NOT_FOUND"), "got %v", err)
}

func TestSupplierList_InsertionOrder(t *testing.T) {
	stack := newSupplierStack(t)
	ctx := context.Background()
	stack.register(t, ctx)

	names := []string{"First", "Second", "Third"}
	ids := map[string]string{}
	for _, name := range names {
		input := acmeInput()
		input.Name = name
		created, err := stack.suppliers.Create(ctx, input)
		require.NoError(t, err)
		ids[name] = created.ID
	}

	listed, err := stack.suppliers.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for i, name := range names {
		require.Equal(t, name, listed[i].Name)
		require.Equal(t, ids[name], listed[i].ID)
	}
}

func TestSupplierMutations_RecordAuditTrail(t *testing.T) {
	stack := newSupplierStack(t)
	ctx := context.Background()
	user := stack.register(t, ctx)

	created, err := stack.suppliers.Create(ctx, acmeInput())
	require.NoError(t, err)
	five := 5.0
	_, err = stack.suppliers.Update(ctx, created.ID, SupplierUpdateInput{Rating: &five})
	require.NoError(t, err)
	require.NoError(t, stack.suppliers.Delete(ctx, created.ID))

	entries, err := stack.audit.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, domain.AuditActionCreated, entries[0].Action)
	require.Equal(t, domain.AuditActionUpdated, entries[1].Action)
	require.Equal(t, domain.AuditActionDeleted, entries[2].Action)
	for _, entry := range entries {
		require.Equal(t, "supplier", entry.EntityKind)
		require.Equal(t, created.ID, entry.EntityID)
		require.Equal(t, user.ID, entry.ActorID)
	}
}

func requireSameSupplier(t *testing.T, want, got *domain.Supplier) {
	t.Helper()
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.Name, got.Name)
	require.Equal(t, want.Contact, got.Contact)
	require.Equal(t, want.Email, got.Email)
	require.Equal(t, want.Address, got.Address)
	require.Equal(t, want.ProductsSupplied, got.ProductsSupplied)
	require.Equal(t, want.Rating, got.Rating)
	require.Equal(t, want.Status, got.Status)
	require.Equal(t, want.CreatedBy, got.CreatedBy)
	require.True(t, want.CreatedAt.Equal(got.CreatedAt))
}
