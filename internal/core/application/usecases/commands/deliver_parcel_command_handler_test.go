package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/deliverynote"
	"parceltrack/internal/core/domain/model/department"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/domain/model/parcel"
)

func TestDeliverParcelCommandHandler_Handle_WithExplicitDestination(t *testing.T) {
	ctx := t.Context()
	p := newAwaitedParcel(t)
	require.NoError(t, p.Receive("Etagere B2", time.Now()))
	p.StartDistribution()

	cmd, _ := commands.NewDeliverParcelCommand(p.ID(), kernel.NewUUID(), "Mme Dupont")

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

	h := commands.NewDeliverParcelCommandHandler(factory, notifier, false)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Delivered, p.Status())
	assert.Nil(t, p.StorageLocation())
	require.NotNil(t, p.DeliveredAt())

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, "Livraison a Mme Dupont", auditRepo.entries[0].Action())
	assert.Equal(t, parcel.InDistribution, auditRepo.entries[0].PriorStatus())
	require.Len(t, notifier.parcels, 1)
}

func TestDeliverParcelCommandHandler_Handle_ResolvesDepartmentDestination(t *testing.T) {
	ctx := t.Context()
	noteID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	deptID := kernel.NewUUID()

	p, err := parcel.NewParcel(kernel.NewUUID(), &noteID, "TRK-9", "", "")
	require.NoError(t, err)
	require.NoError(t, p.Receive("Etagere C1", time.Now()))
	p.StartDistribution()

	note, err := deliverynote.NewDeliveryNote(noteID, orderID, "BL-77", nil, time.Now())
	require.NoError(t, err)
	o, err := order.NewOrder(orderID, "CMD-77", kernel.NewUUID(), deptID, nil, time.Now(), nil, "")
	require.NoError(t, err)
	dept, err := department.NewDepartment(deptID, "Comptabilite", "Batiment A")
	require.NoError(t, err)

	cmd, _ := commands.NewDeliverParcelCommand(p.ID(), kernel.NewUUID(), "")

	parcelRepo := new(MockParcelRepository)
	auditRepo := new(MockAuditRepository)
	noteRepo := new(MockDeliveryNoteRepository)
	orderRepo := new(MockOrderRepository)
	deptRepo := new(MockDepartmentRepository)
	uow := new(MockLifecycleUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("DeliveryNoteRepository").Return(noteRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DepartmentRepository").Return(deptRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	parcelRepo.On("Get", mock.Anything, p.ID()).Return(p, nil)
	parcelRepo.On("Update", mock.Anything, p).Return(nil)
	noteRepo.On("Get", mock.Anything, noteID).Return(note, nil)
	orderRepo.On("Get", mock.Anything, orderID).Return(o, nil)
	deptRepo.On("Get", mock.Anything, deptID).Return(dept, nil)
	auditRepo.On("Add", mock.Anything, mock.Anything).Return(nil)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewDeliverParcelCommandHandler(factory, new(MockStatusNotifier), false)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, "Livraison a Comptabilite", auditRepo.entries[0].Action())
}

func TestDeliverParcelCommandHandler_Handle_PermissiveDeliversAwaitedParcel(t *testing.T) {
	ctx := t.Context()
	p := newAwaitedParcel(t)
	cmd, _ := commands.NewDeliverParcelCommand(p.ID(), kernel.NewUUID(), "Accueil")

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

	h := commands.NewDeliverParcelCommandHandler(factory, new(MockStatusNotifier), false)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Delivered, p.Status())

	// The log keeps the nominal flow whatever the actual prior status was.
	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, parcel.InDistribution, auditRepo.entries[0].PriorStatus())
	assert.Equal(t, audit.DeliveryAction("Accueil"), auditRepo.entries[0].Action())
}

func TestDeliverParcelCommandHandler_Handle_StrictRejectsAwaitedParcel(t *testing.T) {
	ctx := t.Context()
	p := newAwaitedParcel(t)
	cmd, _ := commands.NewDeliverParcelCommand(p.ID(), kernel.NewUUID(), "Accueil")

	parcelRepo := new(MockParcelRepository)
	uow := new(MockLifecycleUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("Rollback", ctx).Return(nil)
	parcelRepo.On("Get", mock.Anything, p.ID()).Return(p, nil)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewDeliverParcelCommandHandler(factory, new(MockStatusNotifier), true)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, parcel.Awaited, p.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
