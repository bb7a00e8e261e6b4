package models

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderLineItem is a snapshot of a product at order time. It stays frozen
// when the product is later changed or deleted.
type OrderLineItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

type ShippingAddress struct {
	FullName     string `json:"fullName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	AddressLine1 string `json:"addressLine1" binding:"required"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	PinCode      string `json:"pinCode" binding:"required"`
}

// Order is immutable after creation except for Status, which admins may set
// to any string value.
type Order struct {
	OrderID          string          `json:"orderId"`
	UserID           string          `json:"userId"`
	Items            []OrderLineItem `json:"items"`
	Subtotal         int             `json:"subtotal"`
	Shipping         int             `json:"shipping"`
	Total            int             `json:"total"`
	Status           string          `json:"status"`
	ShippingAddress  ShippingAddress `json:"shippingAddress"`
	PaymentMethod    string          `json:"paymentMethod"`
	UPITransactionID *string         `json:"upiTransactionId,omitempty"`
	OrderDate        time.Time       `json:"orderDate"`
	ExpectedDelivery time.Time       `json:"expectedDelivery"`
}
