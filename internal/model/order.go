package model

// Order statuses. The set is documented but not closed at the schema level;
// unknown values are stored as-is.
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// Payment methods. Likewise an open set.
const (
	PaymentCOD    = "COD"
	PaymentCard   = "Card"
	PaymentOnline = "Online"
)

// OrderItem is a line item in an order. Name and price are snapshotted at
// order time so historical orders stay immutable when the menu changes.
type OrderItem struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CustomerInfo holds delivery details for an order.
type CustomerInfo struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Notes   *string `json:"notes"`
}

// Order represents a customer order.
type Order struct {
	Items         []OrderItem  `json:"items"`
	Customer      CustomerInfo `json:"customer"`
	Total         float64      `json:"total"`
	Status        string       `json:"status"`
	PaymentMethod string       `json:"payment_method"`
}

// OrderDoc is a stored order together with its document identifier.
type OrderDoc struct {
	ID string `json:"id"`
	Order
}

// CreateResponse is the response payload for create endpoints.
type CreateResponse struct {
	ID string `json:"id"`
}
