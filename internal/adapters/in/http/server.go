// Package http exposes the parcel lifecycle engine over a REST API.
//
// Authentication happens upstream; every request carries the resolved
// identity in the X-User-* headers and the ActorMiddleware turns it into an
// Actor. Department-scoped visibility is enforced here, before any lifecycle
// operation or detail query runs.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/department"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/supplier"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	receiveParcelHandler        commands.ReceiveParcelCommandHandler
	distributeParcelHandler     commands.DistributeParcelCommandHandler
	deliverParcelHandler        commands.DeliverParcelCommandHandler
	flagParcelProblemHandler    commands.FlagParcelProblemCommandHandler
	resolveParcelProblemHandler commands.ResolveParcelProblemCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	createDeliveryNoteHandler   commands.CreateDeliveryNoteCommandHandler
	markNotificationRead        commands.MarkNotificationReadCommandHandler
	markAllNotificationsRead    commands.MarkAllNotificationsReadCommandHandler

	listParcelsHandler       queries.ListParcelsQueryHandler
	getParcelHandler         queries.GetParcelQueryHandler
	getParcelHistoryHandler  queries.GetParcelHistoryQueryHandler
	getRecentActivityHandler queries.GetRecentActivityQueryHandler
	getStatusCountsHandler   queries.GetStatusCountsQueryHandler
	checkParcelAccessHandler queries.CheckParcelAccessQueryHandler
	listNotificationsHandler queries.ListNotificationsQueryHandler

	departments ports.DepartmentRepository
	suppliers   ports.SupplierRepository
}

// Dependencies bundles everything the server needs.
type Dependencies struct {
	ReceiveParcelHandler        commands.ReceiveParcelCommandHandler
	DistributeParcelHandler     commands.DistributeParcelCommandHandler
	DeliverParcelHandler        commands.DeliverParcelCommandHandler
	FlagParcelProblemHandler    commands.FlagParcelProblemCommandHandler
	ResolveParcelProblemHandler commands.ResolveParcelProblemCommandHandler
	CreateOrderHandler          commands.CreateOrderCommandHandler
	CreateDeliveryNoteHandler   commands.CreateDeliveryNoteCommandHandler
	MarkNotificationRead        commands.MarkNotificationReadCommandHandler
	MarkAllNotificationsRead    commands.MarkAllNotificationsReadCommandHandler

	ListParcelsHandler       queries.ListParcelsQueryHandler
	GetParcelHandler         queries.GetParcelQueryHandler
	GetParcelHistoryHandler  queries.GetParcelHistoryQueryHandler
	GetRecentActivityHandler queries.GetRecentActivityQueryHandler
	GetStatusCountsHandler   queries.GetStatusCountsQueryHandler
	CheckParcelAccessHandler queries.CheckParcelAccessQueryHandler
	ListNotificationsHandler queries.ListNotificationsQueryHandler

	Departments ports.DepartmentRepository
	Suppliers   ports.SupplierRepository
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		receiveParcelHandler:        deps.ReceiveParcelHandler,
		distributeParcelHandler:     deps.DistributeParcelHandler,
		deliverParcelHandler:        deps.DeliverParcelHandler,
		flagParcelProblemHandler:    deps.FlagParcelProblemHandler,
		resolveParcelProblemHandler: deps.ResolveParcelProblemHandler,
		createOrderHandler:          deps.CreateOrderHandler,
		createDeliveryNoteHandler:   deps.CreateDeliveryNoteHandler,
		markNotificationRead:        deps.MarkNotificationRead,
		markAllNotificationsRead:    deps.MarkAllNotificationsRead,
		listParcelsHandler:          deps.ListParcelsHandler,
		getParcelHandler:            deps.GetParcelHandler,
		getParcelHistoryHandler:     deps.GetParcelHistoryHandler,
		getRecentActivityHandler:    deps.GetRecentActivityHandler,
		getStatusCountsHandler:      deps.GetStatusCountsHandler,
		checkParcelAccessHandler:    deps.CheckParcelAccessHandler,
		listNotificationsHandler:    deps.ListNotificationsHandler,
		departments:                 deps.Departments,
		suppliers:                   deps.Suppliers,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", ActorMiddleware())

	api.GET("/parcels", s.ListParcels)
	api.GET("/parcels/:id", s.GetParcel)
	api.GET("/parcels/:id/history", s.GetParcelHistory)
	api.POST("/parcels/:id/receive", s.ReceiveParcel)
	api.POST("/parcels/:id/distribute", s.DistributeParcel)
	api.POST("/parcels/:id/deliver", s.DeliverParcel)
	api.POST("/parcels/:id/problem", s.FlagParcelProblem)
	api.POST("/parcels/:id/resolve", s.ResolveParcelProblem)

	api.GET("/activity", s.GetRecentActivity)
	api.GET("/stats/parcels", s.GetStatusCounts)

	api.GET("/notifications", s.ListNotifications)
	api.GET("/notifications/unread-count", s.CountUnreadNotifications)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
	api.POST("/notifications/read-all", s.MarkAllNotificationsRead)

	api.POST("/orders", s.CreateOrder)
	api.POST("/delivery-notes", s.CreateDeliveryNote)

	api.GET("/departments", s.ListDepartments)
	api.POST("/departments", s.CreateDepartment)
	api.GET("/suppliers", s.ListSuppliers)
	api.POST("/suppliers", s.CreateSupplier)
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrAccessDenied):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidStateTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func parseIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// authorizeParcel verifies the caller may see the parcel. Returns a non-nil
// echo response error when access is denied or the parcel does not exist.
func (s *Server) authorizeParcel(ctx echo.Context, actor Actor, parcelID kernel.UUID) (bool, error) {
	query, err := queries.NewCheckParcelAccessQuery(parcelID, actor.Role, actor.DepartmentID)
	if err != nil {
		return false, writeError(ctx, err)
	}

	access, err := s.checkParcelAccessHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return false, writeError(ctx, err)
	}

	if !access.Allowed {
		return false, ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Parcel belongs to another department",
		})
	}

	return true, nil
}

// requireParcelManager gates the lifecycle operations.
func requireParcelManager(ctx echo.Context, actor Actor) error {
	if actor.Role.CanManageParcels() {
		return nil
	}
	return ctx.JSON(http.StatusForbidden, Error{
		Code:    http.StatusForbidden,
		Message: "Parcel lifecycle operations require the parcel manager role",
	})
}

// ListParcels handles GET /api/v1/parcels.
// Requesters are forcibly scoped to their home department; a requester
// without one sees nothing.
func (s *Server) ListParcels(ctx echo.Context) error {
	actor := actorFrom(ctx)

	var status *parcel.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		st, err := parcel.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		status = &st
	}

	var departmentID *kernel.UUID
	if raw := ctx.QueryParam("department_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid department_id",
			})
		}
		departmentID = &id
	}

	if !actor.Role.SeesAllDepartments() {
		if actor.DepartmentID == nil {
			return ctx.JSON(http.StatusOK, []ParcelSummary{})
		}
		departmentID = actor.DepartmentID
	}

	query, err := queries.NewListParcelsQuery(status, departmentID, ctx.QueryParam("search"))
	if err != nil {
		return writeError(ctx, err)
	}

	parcels, err := s.listParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ParcelSummary, len(parcels))
	for i, p := range parcels {
		response[i] = ParcelSummary{
			ID:              p.ID.String(),
			TrackingNumber:  p.TrackingNumber,
			Carrier:         p.Carrier,
			Status:          p.Status,
			StorageLocation: p.StorageLocation,
			NoteNumber:      p.NoteNumber,
			OrderNumber:     p.OrderNumber,
			DepartmentName:  p.DepartmentName,
			CreatedAt:       p.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetParcel handles GET /api/v1/parcels/:id.
func (s *Server) GetParcel(ctx echo.Context) error {
	actor := actorFrom(ctx)

	parcelID, err := parseIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	if ok, resp := s.authorizeParcel(ctx, actor, parcelID); !ok {
		return resp
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	var departmentID *string
	if detail.DepartmentID != nil {
		id := detail.DepartmentID.String()
		departmentID = &id
	}

	return ctx.JSON(http.StatusOK, ParcelDetail{
		ID:               detail.ID.String(),
		TrackingNumber:   detail.TrackingNumber,
		Carrier:          detail.Carrier,
		Status:           detail.Status,
		StorageLocation:  detail.StorageLocation,
		ReceivedAt:       detail.ReceivedAt,
		DeliveredAt:      detail.DeliveredAt,
		Notes:            detail.Notes,
		CreatedAt:        detail.CreatedAt,
		NoteNumber:       detail.NoteNumber,
		OrderNumber:      detail.OrderNumber,
		DepartmentID:     departmentID,
		DepartmentName:   detail.DepartmentName,
		DeliveryLocation: detail.DeliveryLocation,
		RequesterName:    detail.RequesterName,
	})
}

// GetParcelHistory handles GET /api/v1/parcels/:id/history.
func (s *Server) GetParcelHistory(ctx echo.Context) error {
	actor := actorFrom(ctx)

	parcelID, err := parseIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	if ok, resp := s.authorizeParcel(ctx, actor, parcelID); !ok {
		return resp
	}

	query, err := queries.NewGetParcelHistoryQuery(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.getParcelHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]HistoryEntry, len(entries))
	for i, e := range entries {
		response[i] = HistoryEntry{
			ID:          e.ID.String(),
			OccurredAt:  e.OccurredAt,
			Action:      e.Action,
			PriorStatus: e.PriorStatus,
			NewStatus:   e.NewStatus,
			ActorName:   e.ActorName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReceiveParcel handles POST /api/v1/parcels/:id/receive.
func (s *Server) ReceiveParcel(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if resp := requireParcelManager(ctx, actor); resp != nil {
		return resp
	}

	parcelID, err := parseIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	var req ReceiveParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewReceiveParcelCommand(parcelID, actor.ID, req.Location)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.receiveParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DistributeParcel handles POST /api/v1/parcels/:id/distribute.
func (s *Server) DistributeParcel(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if resp := requireParcelManager(ctx, actor); resp != nil {
		return resp
	}

	parcelID, err := parseIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	cmd, err := commands.NewDistributeParcelCommand(parcelID, actor.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.distributeParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverParcel handles POST /api/v1/parcels/:id/deliver.
func (s *Server) DeliverParcel(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if resp := requireParcelManager(ctx, actor); resp != nil {
		return resp
	}

	parcelID, err := parseIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	var req DeliverParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewDeliverParcelCommand(parcelID, actor.ID, req.Destination)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deliverParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FlagParcelProblem handles POST /api/v1/parcels/:id/problem.
func (s *Server) FlagParcelProblem(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if resp := requireParcelManager(ctx, actor); resp != nil {
		return resp
	}

	parcelID, err := parseIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	var req FlagProblemRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewFlagParcelProblemCommand(parcelID, actor.ID, req.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.flagParcelProblemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResolveParcelProblem handles POST /api/v1/parcels/:id/resolve.
func (s *Server) ResolveParcelProblem(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if resp := requireParcelManager(ctx, actor); resp != nil {
		return resp
	}

	parcelID, err := parseIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	var req ResolveProblemRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := parcel.StatusFromString(req.NewStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewResolveParcelProblemCommand(parcelID, actor.ID, newStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.resolveParcelProblemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRecentActivity handles GET /api/v1/activity.
// Requesters only see activity of their home department.
func (s *Server) GetRecentActivity(ctx echo.Context) error {
	actor := actorFrom(ctx)

	limit := 20
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit",
			})
		}
		limit = parsed
	}

	var departmentID *kernel.UUID
	if !actor.Role.SeesAllDepartments() {
		if actor.DepartmentID == nil {
			return ctx.JSON(http.StatusOK, []ActivityEntry{})
		}
		departmentID = actor.DepartmentID
	}

	query, err := queries.NewGetRecentActivityQuery(limit, departmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.getRecentActivityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActivityEntry, len(entries))
	for i, e := range entries {
		response[i] = ActivityEntry{
			ID:             e.ID.String(),
			ParcelID:       e.ParcelID.String(),
			TrackingNumber: e.TrackingNumber,
			OccurredAt:     e.OccurredAt,
			Action:         e.Action,
			PriorStatus:    e.PriorStatus,
			NewStatus:      e.NewStatus,
			ActorName:      e.ActorName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStatusCounts handles GET /api/v1/stats/parcels.
// Requesters only see counts for their home department; a requester
// without one gets all-zero counts.
func (s *Server) GetStatusCounts(ctx echo.Context) error {
	actor := actorFrom(ctx)

	var departmentID *kernel.UUID
	if raw := ctx.QueryParam("department_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid department_id",
			})
		}
		departmentID = &id
	}

	if !actor.Role.SeesAllDepartments() {
		if actor.DepartmentID == nil {
			return ctx.JSON(http.StatusOK, zeroStatusCounts())
		}
		departmentID = actor.DepartmentID
	}

	query, err := queries.NewGetStatusCountsQuery(departmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	counts, err := s.getStatusCountsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, counts.Counts)
}

func zeroStatusCounts() map[string]int64 {
	return map[string]int64{
		parcel.Awaited.String():        0,
		parcel.Received.String():       0,
		parcel.InDistribution.String(): 0,
		parcel.Delivered.String():      0,
		parcel.Problem.String():        0,
	}
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context) error {
	actor := actorFrom(ctx)

	query, err := queries.NewListNotificationsQuery(actor.ID, ctx.QueryParam("unread") == "true")
	if err != nil {
		return writeError(ctx, err)
	}

	notifications, err := s.listNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]NotificationView, len(notifications))
	for i, n := range notifications {
		response[i] = NotificationView{
			ID:        n.ID.String(),
			Title:     n.Title,
			Message:   n.Message,
			Link:      n.Link,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CountUnreadNotifications handles GET /api/v1/notifications/unread-count.
func (s *Server) CountUnreadNotifications(ctx echo.Context) error {
	actor := actorFrom(ctx)

	count, err := s.listNotificationsHandler.CountUnread(ctx.Request().Context(), actor.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"unread": count})
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	actor := actorFrom(ctx)

	notificationID, err := parseIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid notification id",
		})
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, actor.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	actor := actorFrom(ctx)

	cmd, err := commands.NewMarkAllNotificationsReadCommand(actor.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markAllNotificationsRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if !actor.Role.SeesAllDepartments() {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Order registration requires the editor role",
		})
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	supplierID, err := kernel.UUIDFromString(req.SupplierID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid supplier_id",
		})
	}

	departmentID, err := kernel.UUIDFromString(req.DepartmentID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid department_id",
		})
	}

	var requesterID *kernel.UUID
	if req.RequesterID != nil {
		id, err := kernel.UUIDFromString(*req.RequesterID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid requester_id",
			})
		}
		requesterID = &id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.Number, supplierID, departmentID, requesterID, req.ExpectedDeliveryAt, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// CreateDeliveryNote handles POST /api/v1/delivery-notes.
func (s *Server) CreateDeliveryNote(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if !actor.Role.SeesAllDepartments() {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Delivery note registration requires the editor role",
		})
	}

	var req CreateDeliveryNoteRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order_id",
		})
	}

	parcels := make([]commands.NewParcelSpec, len(req.Parcels))
	for i, p := range req.Parcels {
		parcels[i] = commands.NewParcelSpec{
			ID:             kernel.NewUUID(),
			TrackingNumber: p.TrackingNumber,
			Carrier:        p.Carrier,
			Notes:          p.Notes,
		}
	}

	noteID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryNoteCommand(noteID, orderID, req.NoteNumber, req.NoteDate, parcels)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createDeliveryNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: noteID.String()})
}

// ListDepartments handles GET /api/v1/departments.
func (s *Server) ListDepartments(ctx echo.Context) error {
	departments, err := s.departments.GetAll(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DepartmentView, len(departments))
	for i, d := range departments {
		response[i] = DepartmentView{
			ID:               d.ID().String(),
			Name:             d.Name(),
			DeliveryLocation: d.DeliveryLocation(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDepartment handles POST /api/v1/departments.
func (s *Server) CreateDepartment(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if !actor.Role.IsAdministrator() {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Reference data management requires the administrator role",
		})
	}

	var req CreateDepartmentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id := kernel.NewUUID()
	d, err := department.NewDepartment(id, req.Name, req.DeliveryLocation)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.departments.Add(ctx.Request().Context(), d); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// ListSuppliers handles GET /api/v1/suppliers.
func (s *Server) ListSuppliers(ctx echo.Context) error {
	suppliers, err := s.suppliers.GetAll(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]SupplierView, len(suppliers))
	for i, sup := range suppliers {
		response[i] = SupplierView{
			ID:      sup.ID().String(),
			Name:    sup.Name(),
			Email:   sup.Email(),
			Phone:   sup.Phone(),
			Address: sup.Address(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateSupplier handles POST /api/v1/suppliers.
func (s *Server) CreateSupplier(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if !actor.Role.IsAdministrator() {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Reference data management requires the administrator role",
		})
	}

	var req CreateSupplierRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id := kernel.NewUUID()
	sup, err := supplier.NewSupplier(id, req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.suppliers.Add(ctx.Request().Context(), sup); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}
