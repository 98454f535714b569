package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/notification"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"
)

// AlertPrefix marks notification titles that require administrator attention.
const AlertPrefix = "[ALERT] "

// Dispatcher creates notifications for parcel lifecycle events.
//
// It is wired with repositories bound to the base connection, not to a
// command's transaction: dispatch happens after the lifecycle change has
// committed, so a notification failure can never roll back a status change.
type Dispatcher struct {
	deliveryNotes ports.DeliveryNoteRepository
	orders        ports.OrderRepository
	users         ports.UserRepository
	notifications ports.NotificationRepository
	log           *slog.Logger
}

// NewDispatcher creates a Dispatcher. A nil logger falls back to the default
// slog logger.
func NewDispatcher(
	deliveryNotes ports.DeliveryNoteRepository,
	orders ports.OrderRepository,
	users ports.UserRepository,
	notifications ports.NotificationRepository,
	log *slog.Logger,
) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		deliveryNotes: deliveryNotes,
		orders:        orders,
		users:         users,
		notifications: notifications,
		log:           log,
	}
}

// NotifyStatusChange notifies the requester behind a parcel about its new
// status. When the new status is Problem it additionally alerts every
// administrator with the problem description.
//
// A parcel whose ownership chain does not resolve to a requester produces no
// requester notification and no error: orders without a requester are legal.
func (d *Dispatcher) NotifyStatusChange(ctx context.Context, p *parcel.Parcel, description string) {
	title := "Colis " + p.Label()
	link := "/colis/" + p.ID().String()

	requesterID, err := d.resolveRequester(ctx, p)
	if err != nil {
		d.log.Warn("notification recipient lookup failed",
			"parcel_id", p.ID().String(), "error", err)
	} else if requesterID != nil {
		d.send(ctx, *requesterID, title, statusMessage(p.Status()), link)
	}

	if p.Status() == parcel.Problem {
		d.alertAdministrators(ctx, title, problemMessage(description), link)
	}
}

// NotifyNewOrder tells every parcel manager that an order was registered and
// parcels should be expected.
func (d *Dispatcher) NotifyNewOrder(ctx context.Context, o *order.Order) {
	title := "Commande " + o.Number()
	message := "Une nouvelle commande a ete enregistree"
	link := "/commandes/" + o.ID().String()

	managers, err := d.users.GetAllByRole(ctx, account.RoleParcelManager)
	if err != nil {
		d.log.Warn("parcel manager lookup failed",
			"order_id", o.ID().String(), "error", err)
		return
	}
	for _, m := range managers {
		d.send(ctx, m.ID(), title, message, link)
	}
}

// AlertAdministrators sends an alert-prefixed notification to every
// administrator. Used by background jobs in addition to problem dispatch.
func (d *Dispatcher) AlertAdministrators(ctx context.Context, title, message, link string) {
	d.alertAdministrators(ctx, title, message, link)
}

func (d *Dispatcher) alertAdministrators(ctx context.Context, title, message, link string) {
	admins, err := d.users.GetAllByRole(ctx, account.RoleAdministrator)
	if err != nil {
		d.log.Warn("administrator lookup failed", "error", err)
		return
	}
	for _, a := range admins {
		d.send(ctx, a.ID(), AlertPrefix+title, message, link)
	}
}

// resolveRequester walks parcel -> delivery note -> order -> requester.
// A broken link anywhere in the chain yields a nil recipient.
func (d *Dispatcher) resolveRequester(ctx context.Context, p *parcel.Parcel) (*kernel.UUID, error) {
	noteID := p.DeliveryNoteID()
	if noteID == nil {
		return nil, nil
	}

	note, err := d.deliveryNotes.Get(ctx, *noteID)
	if err != nil {
		return nil, fmt.Errorf("delivery note %s: %w", noteID.String(), err)
	}

	o, err := d.orders.Get(ctx, note.OrderID())
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", note.OrderID().String(), err)
	}

	return o.RequesterID(), nil
}

func (d *Dispatcher) send(ctx context.Context, recipientID kernel.UUID, title, message, link string) {
	n, err := notification.NewNotification(
		kernel.NewUUID(), recipientID, title, message, &link, time.Now().UTC())
	if err != nil {
		d.log.Warn("notification build failed",
			"recipient_id", recipientID.String(), "error", err)
		return
	}
	if err := d.notifications.Add(ctx, n); err != nil {
		d.log.Warn("notification store failed",
			"recipient_id", recipientID.String(), "title", title, "error", err)
	}
}

func statusMessage(s parcel.Status) string {
	switch s {
	case parcel.Received:
		return "Votre colis est arrive a la reprographie"
	case parcel.InDistribution:
		return "Votre colis est en cours de distribution"
	case parcel.Delivered:
		return "Votre colis a ete livre"
	case parcel.Problem:
		return "Un probleme a ete signale sur votre colis"
	default:
		return "Statut mis a jour: " + s.String()
	}
}

func problemMessage(description string) string {
	if description == "" {
		return "Un probleme a ete signale sur un colis"
	}
	return "Probleme signale: " + description
}
