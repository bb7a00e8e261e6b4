package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProductPayload is the full admin-supplied product document used for both
// create and update. Updates replace every field it carries; sku, rating,
// reviews and dateAdded are server-owned and never accepted from callers.
type ProductPayload struct {
	Name          string   `json:"name" binding:"required"`
	Price         int      `json:"price" binding:"required"`
	OriginalPrice *int     `json:"originalPrice"`
	Category      string   `json:"category" binding:"required"`
	Fragrance     *string  `json:"fragrance"`
	Size          string   `json:"size" binding:"required"`
	Weight        string   `json:"weight" binding:"required"`
	BurnTime      string   `json:"burnTime" binding:"required"`
	Stock         int      `json:"stock" binding:"min=0"`
	Images        []string `json:"images" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Featured      bool     `json:"featured"`
}

type CreateOrderRequest struct {
	Items           []CartItem      `json:"items" binding:"required"`
	ShippingAddress ShippingAddress `json:"shippingAddress" binding:"required"`
	Subtotal        int             `json:"subtotal"`
	Shipping        int             `json:"shipping"`
	Total           int             `json:"total"`
	PaymentMethod   string          `json:"paymentMethod" binding:"required"`
	UPIID           string          `json:"upiId"`
}

type OrderStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}
