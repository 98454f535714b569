package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// FlagParcelProblemCommandHandler puts a parcel into the problem state.
// Besides the requester notification, the dispatcher alerts every
// administrator with the problem description.
type FlagParcelProblemCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   StatusNotifier
	strict     bool
}

// NewFlagParcelProblemCommandHandler creates a handler for flagging parcel
// problems. With strict enabled the parcel must be in an active status.
func NewFlagParcelProblemCommandHandler(uowFactory LifecycleUoWFactory, notifier StatusNotifier, strict bool) FlagParcelProblemCommandHandler {
	return FlagParcelProblemCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		strict:     strict,
	}
}

// Handle processes the problem flag command.
func (h *FlagParcelProblemCommandHandler) Handle(ctx context.Context, cmd FlagParcelProblemCommand) error {
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
		if err = validateStrictTransition(p, parcel.Problem); err != nil {
			return err
		}
	}

	prior := p.Status()
	now := time.Now().UTC()
	p.FlagProblem()

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	actorID := cmd.ActorID()
	entry, err := audit.NewEntry(
		kernel.NewUUID(), p.ID(), &actorID, now,
		audit.ProblemAction(cmd.Description()), prior, p.Status())
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyStatusChange(ctx, p, cmd.Description())
	return nil
}
