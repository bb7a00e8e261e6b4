package services

import (
	"context"
	"log"
	"time"

	"candle-shop/models"
	"candle-shop/utils"
)

const (
	orderListLimit       = 100
	dashboardRecentLimit = 10
	deliveryLeadTime     = 7 * 24 * time.Hour
)

// ConfirmationMailer sends the post-checkout confirmation. The order
// service treats it as best-effort; a nil mailer disables it.
type ConfirmationMailer interface {
	SendOrderConfirmation(toEmail, orderID string, total int) error
}

type OrderService struct {
	orders   OrderStore
	products ProductStore
	carts    CartStore
	users    UserStore
	mailer   ConfirmationMailer
}

func NewOrderService(orders OrderStore, products ProductStore, carts CartStore, users UserStore, mailer ConfirmationMailer) *OrderService {
	return &OrderService{orders: orders, products: products, carts: carts, users: users, mailer: mailer}
}

// Place creates an order from the requested items and clears the user's
// cart. Line items are snapshots of the products at this moment; items
// whose product no longer exists are dropped silently. Caller-supplied
// totals are persisted as-is. The create and the cart delete are two
// separate store writes, so a concurrent cart update in between is lost.
func (s *OrderService) Place(ctx context.Context, userID string, req models.CreateOrderRequest) (*models.Order, error) {
	now := time.Now()

	lineItems := []models.OrderLineItem{}
	for _, item := range req.Items {
		product, err := s.products.Get(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		lineItems = append(lineItems, models.OrderLineItem{
			ProductID: item.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Image:     image,
		})
	}

	var upiTransactionID *string
	if req.UPIID != "" {
		txn := utils.GenerateUPITransactionID()
		upiTransactionID = &txn
	}

	order := &models.Order{
		OrderID:          utils.GenerateOrderID(now),
		UserID:           userID,
		Items:            lineItems,
		Subtotal:         req.Subtotal,
		Shipping:         req.Shipping,
		Total:            req.Total,
		Status:           models.OrderStatusPending,
		ShippingAddress:  req.ShippingAddress,
		PaymentMethod:    req.PaymentMethod,
		UPITransactionID: upiTransactionID,
		OrderDate:        now,
		ExpectedDelivery: now.Add(deliveryLeadTime),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.carts.Delete(ctx, userID); err != nil {
		log.Printf("Failed to clear cart for user %s after order %s: %v", userID, order.OrderID, err)
	}

	if s.mailer != nil {
		go func(toEmail, orderID string, total int) {
			if err := s.mailer.SendOrderConfirmation(toEmail, orderID, total); err != nil {
				log.Printf("Failed to send confirmation for order %s: %v", orderID, err)
			}
		}(order.ShippingAddress.Email, order.OrderID, order.Total)
	}

	return order, nil
}

// List returns orders newest first: all of them for admins, only the
// requester's own otherwise.
func (s *OrderService) List(ctx context.Context, requester *models.User) ([]models.Order, error) {
	userID := requester.ID
	if requester.Role == models.RoleAdmin {
		userID = ""
	}
	return s.orders.List(ctx, userID, orderListLimit)
}

// Get fetches one order; non-admins can only see their own.
func (s *OrderService) Get(ctx context.Context, requester *models.User, orderID string) (*models.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if requester.Role != models.RoleAdmin && order.UserID != requester.ID {
		return nil, ErrNotFound
	}
	return order, nil
}

// SetStatus writes any non-empty status string; transitions are not
// validated against the current state.
func (s *OrderService) SetStatus(ctx context.Context, orderID, status string) error {
	updated, err := s.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

// Dashboard recomputes the admin statistics on every call: entity counts,
// the revenue sum over non-cancelled orders and the ten most recent orders.
func (s *OrderService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.CountByRole(ctx, models.RoleUser)
	if err != nil {
		return nil, err
	}
	totalSales, err := s.orders.SumTotalsExcluding(ctx, models.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}
	recent, err := s.orders.List(ctx, "", dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalSales:    totalSales,
		TotalOrders:   totalOrders,
		TotalProducts: totalProducts,
		TotalUsers:    totalUsers,
		RecentOrders:  recent,
	}, nil
}
