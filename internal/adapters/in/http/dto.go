package http

import "time"

// Error is the JSON error envelope shared by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ParcelSummary is one row of the parcel listing.
type ParcelSummary struct {
	ID              string    `json:"id"`
	TrackingNumber  string    `json:"tracking_number"`
	Carrier         string    `json:"carrier"`
	Status          string    `json:"status"`
	StorageLocation *string   `json:"storage_location"`
	NoteNumber      string    `json:"note_number"`
	OrderNumber     string    `json:"order_number"`
	DepartmentName  string    `json:"department_name"`
	CreatedAt       time.Time `json:"created_at"`
}

// ParcelDetail is the full parcel view including the resolved ownership chain.
type ParcelDetail struct {
	ID               string     `json:"id"`
	TrackingNumber   string     `json:"tracking_number"`
	Carrier          string     `json:"carrier"`
	Status           string     `json:"status"`
	StorageLocation  *string    `json:"storage_location"`
	ReceivedAt       *time.Time `json:"received_at"`
	DeliveredAt      *time.Time `json:"delivered_at"`
	Notes            string     `json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
	NoteNumber       string     `json:"note_number"`
	OrderNumber      string     `json:"order_number"`
	DepartmentID     *string    `json:"department_id"`
	DepartmentName   string     `json:"department_name"`
	DeliveryLocation string     `json:"delivery_location"`
	RequesterName    string     `json:"requester_name"`
}

// HistoryEntry is one audit record of a parcel.
type HistoryEntry struct {
	ID          string    `json:"id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Action      string    `json:"action"`
	PriorStatus string    `json:"prior_status"`
	NewStatus   string    `json:"new_status"`
	ActorName   string    `json:"actor_name"`
}

// ActivityEntry is one row of the recent activity feed.
type ActivityEntry struct {
	ID             string    `json:"id"`
	ParcelID       string    `json:"parcel_id"`
	TrackingNumber string    `json:"tracking_number"`
	OccurredAt     time.Time `json:"occurred_at"`
	Action         string    `json:"action"`
	PriorStatus    string    `json:"prior_status"`
	NewStatus      string    `json:"new_status"`
	ActorName      string    `json:"actor_name"`
}

// NotificationView is one notification of the caller.
type NotificationView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      *string   `json:"link"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ReceiveParcelRequest carries the reception parameters.
type ReceiveParcelRequest struct {
	Location string `json:"location"`
}

// DeliverParcelRequest carries the optional hand-over destination.
type DeliverParcelRequest struct {
	Destination string `json:"destination"`
}

// FlagProblemRequest carries the operator's description of the anomaly.
type FlagProblemRequest struct {
	Description string `json:"description"`
}

// ResolveProblemRequest carries the active status the parcel returns to.
type ResolveProblemRequest struct {
	NewStatus string `json:"new_status"`
}

// CreateOrderRequest registers a purchase order.
type CreateOrderRequest struct {
	Number             string     `json:"number"`
	SupplierID         string     `json:"supplier_id"`
	DepartmentID       string     `json:"department_id"`
	RequesterID        *string    `json:"requester_id"`
	ExpectedDeliveryAt *time.Time `json:"expected_delivery_at"`
	Notes              string     `json:"notes"`
}

// NewParcelRequest describes one parcel announced on a delivery note.
type NewParcelRequest struct {
	TrackingNumber string `json:"tracking_number"`
	Carrier        string `json:"carrier"`
	Notes          string `json:"notes"`
}

// CreateDeliveryNoteRequest registers a delivery note with its parcels.
type CreateDeliveryNoteRequest struct {
	OrderID    string             `json:"order_id"`
	NoteNumber string             `json:"note_number"`
	NoteDate   *time.Time         `json:"note_date"`
	Parcels    []NewParcelRequest `json:"parcels"`
}

// CreateDepartmentRequest registers a department.
type CreateDepartmentRequest struct {
	Name             string `json:"name"`
	DeliveryLocation string `json:"delivery_location"`
}

// DepartmentView is one department of the reference data.
type DepartmentView struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DeliveryLocation string `json:"delivery_location"`
}

// CreateSupplierRequest registers a supplier.
type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SupplierView is one supplier of the reference data.
type SupplierView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CreatedResponse returns the identifier of a newly registered entity.
type CreatedResponse struct {
	ID string `json:"id"`
}
