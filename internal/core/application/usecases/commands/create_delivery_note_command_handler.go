package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/deliverynote"
	"parceltrack/internal/core/domain/model/parcel"
)

// CreateDeliveryNoteCommandHandler registers a delivery note with its
// announced parcels. Each parcel starts awaited, and the owning order is
// moved into InProgress, all in one transaction.
type CreateDeliveryNoteCommandHandler struct {
	uowFactory DeliveryNoteUoWFactory
}

// NewCreateDeliveryNoteCommandHandler creates a handler for delivery note
// registration.
func NewCreateDeliveryNoteCommandHandler(uowFactory DeliveryNoteUoWFactory) CreateDeliveryNoteCommandHandler {
	return CreateDeliveryNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery note registration command.
func (h *CreateDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryNoteCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	note, err := deliverynote.NewDeliveryNote(
		cmd.NoteID(), o.ID(), cmd.NoteNumber(), cmd.NoteDate(), time.Now().UTC())
	if err != nil {
		return err
	}
	if err = uow.DeliveryNoteRepository().Add(ctx, note); err != nil {
		return err
	}

	noteID := note.ID()
	parcelRepo := uow.ParcelRepository()
	for _, spec := range cmd.Parcels() {
		p, perr := parcel.NewParcel(spec.ID, &noteID, spec.TrackingNumber, spec.Carrier, spec.Notes)
		if perr != nil {
			return perr
		}
		if perr = parcelRepo.Add(ctx, p); perr != nil {
			return perr
		}
	}

	o.MarkInProgress()
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
