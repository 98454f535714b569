package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

func TestNewResolveParcelProblemCommand_RejectsNonActiveTarget(t *testing.T) {
	for _, target := range []parcel.Status{parcel.Delivered, parcel.Problem, parcel.Unknown} {
		t.Run(target.String(), func(t *testing.T) {
			_, err := commands.NewResolveParcelProblemCommand(kernel.NewUUID(), kernel.NewUUID(), target)

			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
		})
	}
}

func TestResolveParcelProblemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	p := newAwaitedParcel(t)
	require.NoError(t, p.Receive("Etagere B2", time.Now()))
	p.FlagProblem()
	actorID := kernel.NewUUID()
	cmd, _ := commands.NewResolveParcelProblemCommand(p.ID(), actorID, parcel.Received)

	parcelRepo := new(MockParcelRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockLifecycleUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	parcelRepo.On("Get", mock.Anything, p.ID()).Return(p, nil)
	parcelRepo.On("Update", mock.Anything, p).Return(nil)
	auditRepo.On("Add", mock.Anything, mock.Anything).Return(nil)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow)
	notifier := new(MockStatusNotifier)

	h := commands.NewResolveParcelProblemCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Received, p.Status())
	// The storage location recorded at reception survives the round trip.
	require.NotNil(t, p.StorageLocation())
	assert.Equal(t, "Etagere B2", *p.StorageLocation())

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, audit.ResolutionAction(), auditRepo.entries[0].Action())
	assert.Equal(t, parcel.Problem, auditRepo.entries[0].PriorStatus())
	assert.Equal(t, parcel.Received, auditRepo.entries[0].NewStatus())
	require.Len(t, notifier.parcels, 1)
}

func TestResolveParcelProblemCommandHandler_Handle_RejectsParcelWithoutProblem(t *testing.T) {
	ctx := t.Context()
	p := newAwaitedParcel(t)
	require.NoError(t, p.Receive("Etagere B2", time.Now()))
	cmd, _ := commands.NewResolveParcelProblemCommand(p.ID(), kernel.NewUUID(), parcel.InDistribution)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockLifecycleUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("Rollback", ctx).Return(nil)
	parcelRepo.On("Get", mock.Anything, p.ID()).Return(p, nil)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow)
	notifier := new(MockStatusNotifier)

	h := commands.NewResolveParcelProblemCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidStateTransition))

	// Nothing changed, nothing persisted, nobody notified.
	assert.Equal(t, parcel.Received, p.Status())
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Empty(t, notifier.parcels)
}
