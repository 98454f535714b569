package cmd

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/postgres/departmentrepo"
	"parceltrack/internal/adapters/out/postgres/deliverynoterepo"
	"parceltrack/internal/adapters/out/postgres/notificationrepo"
	"parceltrack/internal/adapters/out/postgres/orderrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/supplierrepo"
	"parceltrack/internal/adapters/out/postgres/userrepo"
	"parceltrack/internal/adapters/out/redisx"
	"parceltrack/internal/core/application/notifications"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/jobs"
)

// CompositionRoot wires adapters, use cases and jobs together.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	redis      *redis.Client
	uowFactory *postgres.GormUnitOfWorkFactory
	dispatcher *notifications.Dispatcher
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph for the given configuration.
// The redis client may be nil; the status counts query then skips caching.
func NewCompositionRoot(config Config, gormDB *gorm.DB, rdb *redis.Client, logger *slog.Logger) *CompositionRoot {
	// The dispatcher runs post-commit and must not join command
	// transactions, so it gets repositories on the base connection.
	dispatcher := notifications.NewDispatcher(
		deliverynoterepo.NewGormDeliveryNoteRepository(gormDB, noopTracker{}),
		orderrepo.NewGormOrderRepository(gormDB, noopTracker{}),
		userrepo.NewGormUserRepository(gormDB),
		notificationrepo.NewGormNotificationRepository(gormDB),
		logger,
	)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		redis:      rdb,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Dispatcher returns the notification dispatcher.
func (c *CompositionRoot) Dispatcher() *notifications.Dispatcher {
	return c.dispatcher
}

// NewHTTPServer builds the HTTP server with all its handlers.
func (c *CompositionRoot) NewHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Dependencies{
		ReceiveParcelHandler:        c.CreateReceiveParcelCommandHandler(),
		DistributeParcelHandler:     c.CreateDistributeParcelCommandHandler(),
		DeliverParcelHandler:        c.CreateDeliverParcelCommandHandler(),
		FlagParcelProblemHandler:    c.CreateFlagParcelProblemCommandHandler(),
		ResolveParcelProblemHandler: c.CreateResolveParcelProblemCommandHandler(),
		CreateOrderHandler:          c.CreateCreateOrderCommandHandler(),
		CreateDeliveryNoteHandler:   c.CreateCreateDeliveryNoteCommandHandler(),
		MarkNotificationRead:        c.CreateMarkNotificationReadCommandHandler(),
		MarkAllNotificationsRead:    c.CreateMarkAllNotificationsReadCommandHandler(),

		ListParcelsHandler:       queries.NewListParcelsQueryHandler(c.gormDB),
		GetParcelHandler:         queries.NewGetParcelQueryHandler(c.gormDB),
		GetParcelHistoryHandler:  queries.NewGetParcelHistoryQueryHandler(c.gormDB),
		GetRecentActivityHandler: queries.NewGetRecentActivityQueryHandler(c.gormDB),
		GetStatusCountsHandler:   queries.NewGetStatusCountsQueryHandler(c.gormDB, c.statusCountsCache()),
		CheckParcelAccessHandler: queries.NewCheckParcelAccessQueryHandler(c.gormDB),
		ListNotificationsHandler: queries.NewListNotificationsQueryHandler(c.gormDB),

		Departments: departmentrepo.NewGormDepartmentRepository(c.gormDB),
		Suppliers:   supplierrepo.NewGormSupplierRepository(c.gormDB),
	})
}

// NewJobManager builds the background job manager.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		parcelrepo.NewGormParcelRepository(c.gormDB, noopTracker{}),
		notificationrepo.NewGormNotificationRepository(c.gormDB),
		c.dispatcher,
		c.config.StaleParcelAfter,
		c.config.NotificationRetention,
		c.logger,
	)
}

func (c *CompositionRoot) statusCountsCache() queries.StatusCountsCache {
	if c.redis == nil {
		return nil
	}
	return redisx.NewStatusCountsCache(c.redis, 5*time.Minute, c.logger)
}

func (c *CompositionRoot) CreateReceiveParcelCommandHandler() commands.ReceiveParcelCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReceiveParcelCommandHandler(f, c.dispatcher, c.config.StrictTransitions)
}

func (c *CompositionRoot) CreateDistributeParcelCommandHandler() commands.DistributeParcelCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDistributeParcelCommandHandler(f, c.dispatcher, c.config.StrictTransitions)
}

func (c *CompositionRoot) CreateDeliverParcelCommandHandler() commands.DeliverParcelCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverParcelCommandHandler(f, c.dispatcher, c.config.StrictTransitions)
}

func (c *CompositionRoot) CreateFlagParcelProblemCommandHandler() commands.FlagParcelProblemCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFlagParcelProblemCommandHandler(f, c.dispatcher, c.config.StrictTransitions)
}

func (c *CompositionRoot) CreateResolveParcelProblemCommandHandler() commands.ResolveParcelProblemCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveParcelProblemCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateCreateDeliveryNoteCommandHandler() commands.CreateDeliveryNoteCommandHandler {
	var f commands.DeliveryNoteUoWFactory = FuncDeliveryNoteUoWFactory(func() commands.DeliveryNoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryNoteCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() commands.MarkAllNotificationsReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkAllNotificationsReadCommandHandler(f)
}

// noopTracker satisfies the repositories' aggregate tracker outside a unit
// of work, where nothing consumes the tracked aggregates.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryNoteUoWFactory func() commands.DeliveryNoteUoW

func (f FuncDeliveryNoteUoWFactory) Create() commands.DeliveryNoteUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
