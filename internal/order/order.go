package order

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusShipped:   true,
	StatusDelivered: true,
	StatusCancelled: true,
}

func ValidStatus(s string) bool { return validStatuses[s] }

type Order struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	TotalAmount     float64   `json:"totalAmount"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"paymentStatus"`
	ShippingAddress *string   `json:"shippingAddress"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	CustomerEmail     string      `json:"customerEmail,omitempty"`
	CustomerFirstName string      `json:"customerFirstName,omitempty"`
	CustomerLastName  string      `json:"customerLastName,omitempty"`
	Items             []OrderItem `json:"items,omitempty"`
}

// OrderItem carries the price paid at checkout. It is a snapshot: later
// product price changes never alter an existing order.
type OrderItem struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"orderId"`
	ProductID   string  `json:"productId"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	IsWholesale bool    `json:"isWholesale"`
}

type Filters struct {
	Status string
	Limit  int
	Offset int
}
