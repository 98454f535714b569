package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/kernel"
)

// ResolveParcelProblemCommandHandler closes a problem on a parcel.
//
// Unlike the other lifecycle handlers this one enforces its precondition
// unconditionally: the parcel must currently be in the Problem status, and
// the aggregate rejects the resolution otherwise whatever the strict flag
// says.
type ResolveParcelProblemCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   StatusNotifier
}

// NewResolveParcelProblemCommandHandler creates a handler for problem
// resolution.
func NewResolveParcelProblemCommandHandler(uowFactory LifecycleUoWFactory, notifier StatusNotifier) ResolveParcelProblemCommandHandler {
	return ResolveParcelProblemCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the resolution command.
func (h *ResolveParcelProblemCommandHandler) Handle(ctx context.Context, cmd ResolveParcelProblemCommand) error {
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

	prior := p.Status()
	if err = p.ResolveProblem(cmd.NewStatus()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	now := time.Now().UTC()
	actorID := cmd.ActorID()
	entry, err := audit.NewEntry(
		kernel.NewUUID(), p.ID(), &actorID, now,
		audit.ResolutionAction(), prior, p.Status())
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
