package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/events"
	"github.com/spec-kit/warehouse-service/internal/repository"
)

// AuditService records entity mutations into the audit trail.
type AuditService struct {
	dispatcher events.Dispatcher
	audit      repository.AuditRepository
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, audit repository.AuditRepository, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		audit:      audit,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to entity mutation events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventSupplierCreated, a.handle(domain.AuditActionCreated))
	a.dispatcher.Subscribe(events.EventSupplierUpdated, a.handle(domain.AuditActionUpdated))
	a.dispatcher.Subscribe(events.EventSupplierDeleted, a.handle(domain.AuditActionDeleted))
	a.dispatcher.Subscribe(events.EventWarehouseCreated, a.handle(domain.AuditActionCreated))
	a.dispatcher.Subscribe(events.EventWarehouseUpdated, a.handle(domain.AuditActionUpdated))
	a.dispatcher.Subscribe(events.EventWarehouseDeleted, a.handle(domain.AuditActionDeleted))
}

// List exposes the recorded trail.
func (a *AuditService) List(ctx context.Context) ([]domain.AuditEntry, error) {
	return a.audit.List(ctx)
}

func (a *AuditService) handle(action domain.AuditAction) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		a.logger.Info("entity mutation",
			zap.String("event_type", string(event.Type)),
			zap.String("entity_kind", event.EntityKind),
			zap.String("entity_id", event.EntityID),
			zap.String("actor_id", event.ActorID))

		entry := domain.AuditEntry{
			ID:         uuid.NewString(),
			EntityKind: event.EntityKind,
			EntityID:   event.EntityID,
			Action:     action,
			ActorID:    event.ActorID,
			CreatedAt:  event.Timestamp,
		}
		if err := a.audit.Append(ctx, entry); err != nil {
			a.logger.Warn("audit append failed", zap.Error(err))
			return err
		}
		return nil
	}
}
