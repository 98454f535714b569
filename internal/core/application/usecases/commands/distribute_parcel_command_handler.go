package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// DistributeParcelCommandHandler moves a parcel into distribution.
// The storage location stays untouched until the parcel is delivered.
type DistributeParcelCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   StatusNotifier
	strict     bool
}

// NewDistributeParcelCommandHandler creates a handler for starting parcel
// distribution. With strict enabled the parcel must currently be received.
func NewDistributeParcelCommandHandler(uowFactory LifecycleUoWFactory, notifier StatusNotifier, strict bool) DistributeParcelCommandHandler {
	return DistributeParcelCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		strict:     strict,
	}
}

// Handle processes the distribution command.
func (h *DistributeParcelCommandHandler) Handle(ctx context.Context, cmd DistributeParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	p, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if h.strict {
		if err = validateStrictTransition(p, parcel.InDistribution); err != nil {
			return err
		}
	}

	prior := p.Status()
	now := time.Now().UTC()
	p.StartDistribution()

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	actorID := cmd.ActorID()
	entry, err := audit.NewEntry(
		kernel.NewUUID(), p.ID(), &actorID, now, audit.StatusChangeAction(), prior, p.Status())
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyStatusChange(ctx, p, "")
	return nil
}
