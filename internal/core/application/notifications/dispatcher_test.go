package notifications_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/application/notifications"
	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/deliverynote"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/notification"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/domain/model/parcel"
)

type MockDeliveryNoteRepository struct{ mock.Mock }

func (m *MockDeliveryNoteRepository) Add(_ context.Context, _ *deliverynote.DeliveryNote) error {
	return errors.New("not implemented in mock")
}
func (m *MockDeliveryNoteRepository) Update(_ context.Context, _ *deliverynote.DeliveryNote) error {
	return errors.New("not implemented in mock")
}
func (m *MockDeliveryNoteRepository) Get(ctx context.Context, id kernel.UUID) (*deliverynote.DeliveryNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverynote.DeliveryNote), args.Error(1)
}
func (m *MockDeliveryNoteRepository) GetAllByOrder(_ context.Context, _ kernel.UUID) ([]*deliverynote.DeliveryNote, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockOrderRepository) Update(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(_ context.Context, _ kernel.UUID) (*account.User, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockUserRepository) GetAllByRole(ctx context.Context, role account.Role) ([]*account.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.User), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
	stored []*notification.Notification
}

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	m.stored = append(m.stored, n)
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) Get(_ context.Context, _ kernel.UUID) (*notification.Notification, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockNotificationRepository) Update(_ context.Context, _ *notification.Notification) error {
	return errors.New("not implemented in mock")
}
func (m *MockNotificationRepository) MarkAllRead(_ context.Context, _ kernel.UUID) error {
	return errors.New("not implemented in mock")
}
func (m *MockNotificationRepository) DeleteOlderThan(_ context.Context, _ time.Time) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

type fixture struct {
	notes  *MockDeliveryNoteRepository
	orders *MockOrderRepository
	users  *MockUserRepository
	store  *MockNotificationRepository

	noteID      kernel.UUID
	orderID     kernel.UUID
	requesterID kernel.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		notes:       new(MockDeliveryNoteRepository),
		orders:      new(MockOrderRepository),
		users:       new(MockUserRepository),
		store:       new(MockNotificationRepository),
		noteID:      kernel.NewUUID(),
		orderID:     kernel.NewUUID(),
		requesterID: kernel.NewUUID(),
	}
}

func (f *fixture) dispatcher() *notifications.Dispatcher {
	return notifications.NewDispatcher(f.notes, f.orders, f.users, f.store, nil)
}

// linkChain wires note and order mocks so the parcel resolves to the fixture
// requester.
func (f *fixture) linkChain(t *testing.T) {
	t.Helper()

	note, err := deliverynote.NewDeliveryNote(f.noteID, f.orderID, "BL-2024-001", nil, time.Now())
	require.NoError(t, err)
	f.notes.On("Get", mock.Anything, f.noteID).Return(note, nil)

	o, err := order.NewOrder(f.orderID, "CMD-42", kernel.NewUUID(), kernel.NewUUID(), &f.requesterID, time.Now(), nil, "")
	require.NoError(t, err)
	f.orders.On("Get", mock.Anything, f.orderID).Return(o, nil)
}

func makeParcel(t *testing.T, noteID *kernel.UUID, tracking string) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), noteID, tracking, "Chronopost", "")
	require.NoError(t, err)
	return p
}

func TestDispatcher_NotifyStatusChange_Received(t *testing.T) {
	f := newFixture(t)
	f.linkChain(t)
	f.store.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

	p := makeParcel(t, &f.noteID, "TRK-100")
	require.NoError(t, p.Receive("Reprographie", time.Now()))

	f.dispatcher().NotifyStatusChange(t.Context(), p, "")

	f.store.AssertExpectations(t)
	require.Len(t, f.store.stored, 1)
	n := f.store.stored[0]
	assert.True(t, n.RecipientID().IsEqual(f.requesterID))
	assert.Equal(t, "Colis TRK-100", n.Title())
	assert.Equal(t, "Votre colis est arrive a la reprographie", n.Message())
	require.NotNil(t, n.Link())
	assert.Equal(t, "/colis/"+p.ID().String(), *n.Link())
	assert.False(t, n.IsRead())
}

func TestDispatcher_NotifyStatusChange_ProblemFansOutToAdministrators(t *testing.T) {
	f := newFixture(t)
	f.linkChain(t)

	admin1, err := account.NewUser(kernel.NewUUID(), "admin1@example.org", "A", "One", account.RoleAdministrator, nil, true)
	require.NoError(t, err)
	admin2, err := account.NewUser(kernel.NewUUID(), "admin2@example.org", "A", "Two", account.RoleAdministrator, nil, true)
	require.NoError(t, err)
	f.users.On("GetAllByRole", mock.Anything, account.RoleAdministrator).
		Return([]*account.User{admin1, admin2}, nil).Once()

	// requester + two administrators
	f.store.On("Add", mock.Anything, mock.Anything).Return(nil).Times(3)

	p := makeParcel(t, &f.noteID, "TRK-200")
	p.FlagProblem()

	f.dispatcher().NotifyStatusChange(t.Context(), p, "colis ecrase")

	f.store.AssertExpectations(t)
	require.Len(t, f.store.stored, 3)

	assert.Equal(t, "Colis TRK-200", f.store.stored[0].Title())
	assert.Equal(t, "Un probleme a ete signale sur votre colis", f.store.stored[0].Message())

	for _, n := range f.store.stored[1:] {
		assert.Equal(t, "[ALERT] Colis TRK-200", n.Title())
		assert.Equal(t, "Probleme signale: colis ecrase", n.Message())
	}
}

func TestDispatcher_NotifyStatusChange_NoDeliveryNoteSkipsRequester(t *testing.T) {
	f := newFixture(t)

	p := makeParcel(t, nil, "TRK-300")
	require.NoError(t, p.Receive("Reprographie", time.Now()))

	f.dispatcher().NotifyStatusChange(t.Context(), p, "")

	assert.Empty(t, f.store.stored)
	f.notes.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestDispatcher_NotifyStatusChange_OrderWithoutRequester(t *testing.T) {
	f := newFixture(t)

	note, err := deliverynote.NewDeliveryNote(f.noteID, f.orderID, "BL-1", nil, time.Now())
	require.NoError(t, err)
	f.notes.On("Get", mock.Anything, f.noteID).Return(note, nil).Once()

	o, err := order.NewOrder(f.orderID, "CMD-1", kernel.NewUUID(), kernel.NewUUID(), nil, time.Now(), nil, "")
	require.NoError(t, err)
	f.orders.On("Get", mock.Anything, f.orderID).Return(o, nil).Once()

	p := makeParcel(t, &f.noteID, "")
	require.NoError(t, p.Receive("Reprographie", time.Now()))

	f.dispatcher().NotifyStatusChange(t.Context(), p, "")

	assert.Empty(t, f.store.stored)
}

func TestDispatcher_NotifyStatusChange_LookupFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	f.notes.On("Get", mock.Anything, f.noteID).Return(nil, errors.New("db down")).Once()

	p := makeParcel(t, &f.noteID, "")
	require.NoError(t, p.Receive("Reprographie", time.Now()))

	f.dispatcher().NotifyStatusChange(t.Context(), p, "")

	assert.Empty(t, f.store.stored)
}

func TestDispatcher_NotifyNewOrder(t *testing.T) {
	f := newFixture(t)

	mgr, err := account.NewUser(kernel.NewUUID(), "repro@example.org", "R", "M", account.RoleParcelManager, nil, true)
	require.NoError(t, err)
	f.users.On("GetAllByRole", mock.Anything, account.RoleParcelManager).
		Return([]*account.User{mgr}, nil).Once()
	f.store.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

	o, err := order.NewOrder(f.orderID, "CMD-7", kernel.NewUUID(), kernel.NewUUID(), nil, time.Now(), nil, "")
	require.NoError(t, err)

	f.dispatcher().NotifyNewOrder(t.Context(), o)

	f.store.AssertExpectations(t)
	require.Len(t, f.store.stored, 1)
	assert.Equal(t, "Commande CMD-7", f.store.stored[0].Title())
	assert.True(t, f.store.stored[0].RecipientID().IsEqual(mgr.ID()))
}
