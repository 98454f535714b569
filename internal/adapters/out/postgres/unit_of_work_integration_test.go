package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/postgres/auditrepo"
	"parceltrack/internal/adapters/out/postgres/deliverynoterepo"
	"parceltrack/internal/adapters/out/postgres/departmentrepo"
	"parceltrack/internal/adapters/out/postgres/notificationrepo"
	"parceltrack/internal/adapters/out/postgres/orderrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/supplierrepo"
	"parceltrack/internal/adapters/out/postgres/userrepo"
	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/deliverynote"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work and
// repositories against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts the PostgreSQL container, connects and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&deliverynoterepo.DeliveryNoteDTO{},
		&orderrepo.OrderDTO{},
		&auditrepo.EntryDTO{},
		&notificationrepo.NotificationDTO{},
		&userrepo.UserDTO{},
		&departmentrepo.DepartmentDTO{},
		&supplierrepo.SupplierDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE parcels, delivery_notes, orders, audit_entries, notifications, users, departments, suppliers").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.ParcelRepository())
	suite.NotNil(uow1.AuditRepository())
	suite.NotNil(uow2.DeliveryNoteRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_ParcelLifecycleRoundTrip persists a parcel, applies a
// reception transition and verifies the stored state after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ParcelLifecycleRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	p, err := parcel.NewParcel(kernel.NewUUID(), nil, "CHRO-FR-789456123", "Chronopost", "")
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ParcelRepository().Add(ctx, p)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	receivedAt := time.Now().UTC()
	err = p.Receive("Etagere B3", receivedAt)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ParcelRepository().Update(ctx, p)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	stored, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)

	suite.Equal(parcel.Received, stored.Status())
	suite.Require().NotNil(stored.StorageLocation())
	suite.Equal("Etagere B3", *stored.StorageLocation())
	suite.Require().NotNil(stored.ReceivedAt())
	suite.WithinDuration(receivedAt, *stored.ReceivedAt(), time.Second)
	suite.Nil(stored.DeliveredAt())
}

// TestUnitOfWork_RollbackDiscardsChanges verifies that nothing is persisted
// when the transaction is rolled back.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	p, err := parcel.NewParcel(kernel.NewUUID(), nil, "TNT-555", "TNT", "")
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ParcelRepository().Add(ctx, p)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	_, err = suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_MultiRepositoryTransaction registers a delivery note with
// its parcels and an audit entry in a single transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	now := time.Now().UTC()
	ord, err := order.NewOrder(
		kernel.NewUUID(), "CMD-2024-001", kernel.NewUUID(), kernel.NewUUID(), nil, now, nil, "")
	suite.Require().NoError(err)

	note, err := deliverynote.NewDeliveryNote(kernel.NewUUID(), ord.ID(), "BL-4821", nil, now)
	suite.Require().NoError(err)

	noteID := note.ID()
	p, err := parcel.NewParcel(kernel.NewUUID(), &noteID, "UPS-1Z999", "UPS", "fragile")
	suite.Require().NoError(err)

	entry, err := audit.NewEntry(
		kernel.NewUUID(), p.ID(), nil, now, audit.ReceptionAction(), parcel.Awaited, parcel.Received)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Add(ctx, ord))
	suite.Require().NoError(uow.DeliveryNoteRepository().Add(ctx, note))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(uow.AuditRepository().Add(ctx, entry))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	reader := suite.factory.Create()

	parcels, err := reader.ParcelRepository().GetAllByDeliveryNote(ctx, note.ID())
	suite.Require().NoError(err)
	suite.Require().Len(parcels, 1)
	suite.True(parcels[0].IsEqual(p))

	entries, err := reader.AuditRepository().GetAllByParcel(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(audit.ReceptionAction(), entries[0].Action())
	suite.Equal(parcel.Awaited, entries[0].PriorStatus())
	suite.Equal(parcel.Received, entries[0].NewStatus())
}

// TestUnitOfWork_UpdateMissingParcel verifies updates of unknown aggregates
// surface a not found error instead of silently affecting zero rows.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UpdateMissingParcel() {
	ctx := context.Background()
	uow := suite.factory.Create()

	p, err := parcel.NewParcel(kernel.NewUUID(), nil, "DHL-42", "DHL", "")
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)
	defer func() { _ = uow.Rollback(ctx) }()

	err = uow.ParcelRepository().Update(ctx, p)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
