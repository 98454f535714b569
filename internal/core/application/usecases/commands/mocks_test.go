package commands_test

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/deliverynote"
	"parceltrack/internal/core/domain/model/department"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/notification"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"
)

var errNotImplemented = errors.New("not implemented in mock")

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}
func (m *MockParcelRepository) GetAllByDeliveryNote(_ context.Context, _ kernel.UUID) ([]*parcel.Parcel, error) {
	return nil, errNotImplemented
}
func (m *MockParcelRepository) GetAllAwaitedBefore(_ context.Context, _ time.Time) ([]*parcel.Parcel, error) {
	return nil, errNotImplemented
}

type MockAuditRepository struct {
	mock.Mock
	entries []*audit.Entry
}

func (m *MockAuditRepository) Add(ctx context.Context, e *audit.Entry) error {
	m.entries = append(m.entries, e)
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockAuditRepository) GetAllByParcel(_ context.Context, _ kernel.UUID) ([]*audit.Entry, error) {
	return nil, errNotImplemented
}

type MockDeliveryNoteRepository struct{ mock.Mock }

func (m *MockDeliveryNoteRepository) Add(ctx context.Context, n *deliverynote.DeliveryNote) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockDeliveryNoteRepository) Update(_ context.Context, _ *deliverynote.DeliveryNote) error {
	return errNotImplemented
}
func (m *MockDeliveryNoteRepository) Get(ctx context.Context, id kernel.UUID) (*deliverynote.DeliveryNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverynote.DeliveryNote), args.Error(1)
}
func (m *MockDeliveryNoteRepository) GetAllByOrder(_ context.Context, _ kernel.UUID) ([]*deliverynote.DeliveryNote, error) {
	return nil, errNotImplemented
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDepartmentRepository struct{ mock.Mock }

func (m *MockDepartmentRepository) Add(_ context.Context, _ *department.Department) error {
	return errNotImplemented
}
func (m *MockDepartmentRepository) Get(ctx context.Context, id kernel.UUID) (*department.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*department.Department), args.Error(1)
}
func (m *MockDepartmentRepository) GetAll(_ context.Context) ([]*department.Department, error) {
	return nil, errNotImplemented
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}
func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, recipientID kernel.UUID) error {
	args := m.Called(ctx, recipientID)
	return args.Error(0)
}
func (m *MockNotificationRepository) DeleteOlderThan(_ context.Context, _ time.Time) (int64, error) {
	return 0, errNotImplemented
}

type MockLifecycleUoW struct{ mock.Mock }

func (m *MockLifecycleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLifecycleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLifecycleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLifecycleUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}
func (m *MockLifecycleUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}
func (m *MockLifecycleUoW) DeliveryNoteRepository() ports.DeliveryNoteRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryNoteRepository)
}
func (m *MockLifecycleUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockLifecycleUoW) DepartmentRepository() ports.DepartmentRepository {
	args := m.Called()
	return args.Get(0).(ports.DepartmentRepository)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDeliveryNoteUoW struct{ mock.Mock }

func (m *MockDeliveryNoteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliveryNoteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliveryNoteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeliveryNoteUoW) DeliveryNoteRepository() ports.DeliveryNoteRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryNoteRepository)
}
func (m *MockDeliveryNoteUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}
func (m *MockDeliveryNoteUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockDeliveryNoteUoWFactory struct{ mock.Mock }

func (m *MockDeliveryNoteUoWFactory) Create() commands.DeliveryNoteUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryNoteUoW)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

// MockStatusNotifier records parcels it was asked to announce.
type MockStatusNotifier struct {
	parcels      []*parcel.Parcel
	descriptions []string
}

func (m *MockStatusNotifier) NotifyStatusChange(_ context.Context, p *parcel.Parcel, description string) {
	m.parcels = append(m.parcels, p)
	m.descriptions = append(m.descriptions, description)
}

// MockOrderNotifier records orders it was asked to announce.
type MockOrderNotifier struct {
	orders []*order.Order
}

func (m *MockOrderNotifier) NotifyNewOrder(_ context.Context, o *order.Order) {
	m.orders = append(m.orders, o)
}
