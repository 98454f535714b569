package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/order"
)

// CreateOrderCommandHandler registers a new purchase order in the Pending
// status and tells the parcel managers to expect deliveries for it.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   OrderNotifier
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, notifier OrderNotifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order registration command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Number(),
		cmd.SupplierID(),
		cmd.DepartmentID(),
		cmd.RequesterID(),
		time.Now().UTC(),
		cmd.ExpectedDeliveryAt(),
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyNewOrder(ctx, o)
	return nil
}
