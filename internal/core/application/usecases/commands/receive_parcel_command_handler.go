package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ReceiveParcelCommandHandler handles the reception of a parcel at the mail
// room. The status change and its audit entry are persisted in one
// transaction; the requester is notified after the commit.
type ReceiveParcelCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   StatusNotifier
	strict     bool
}

// NewReceiveParcelCommandHandler creates a handler for parcel reception.
// With strict enabled the reception is rejected unless the parcel is
// currently awaited.
func NewReceiveParcelCommandHandler(uowFactory LifecycleUoWFactory, notifier StatusNotifier, strict bool) ReceiveParcelCommandHandler {
	return ReceiveParcelCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		strict:     strict,
	}
}

// Handle processes the reception command.
func (h *ReceiveParcelCommandHandler) Handle(ctx context.Context, cmd ReceiveParcelCommand) error {
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
		if err = validateStrictTransition(p, parcel.Received); err != nil {
			return err
		}
	}

	prior := p.Status()
	now := time.Now().UTC()
	if err = p.Receive(cmd.Location(), now); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	actorID := cmd.ActorID()
	entry, err := audit.NewEntry(
		kernel.NewUUID(), p.ID(), &actorID, now, audit.ReceptionAction(), prior, p.Status())
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
