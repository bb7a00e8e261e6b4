package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"candle-shop/models"
	"candle-shop/repositories"
)

type orderFixture struct {
	svc      *OrderService
	products *repositories.MemoryProductStore
	carts    *repositories.MemoryCartStore
	orders   *repositories.MemoryOrderStore
	users    *repositories.MemoryUserStore
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{
		products: repositories.NewMemoryProductStore(),
		carts:    repositories.NewMemoryCartStore(),
		orders:   repositories.NewMemoryOrderStore(),
		users:    repositories.NewMemoryUserStore(),
	}
	f.svc = NewOrderService(f.orders, f.products, f.carts, f.users, nil)

	candle := models.Product{
		ID: "p1", Name: "Lavender Dreams", Price: 599, Category: "Scented",
		Images: []string{"https://example.com/lavender.jpg"},
	}
	if err := f.products.Create(context.Background(), &candle); err != nil {
		t.Fatalf("product setup failed: %v", err)
	}
	return f
}

func testAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FullName: "Alice", Email: "a@x.com", Phone: "9999999999",
		AddressLine1: "1 Main St", City: "Pune", State: "MH", PinCode: "411001",
	}
}

func TestPlaceOrderSnapshotsProducts(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.svc.Place(ctx, "user-1", models.CreateOrderRequest{
		Items:           []models.CartItem{{ProductID: "p1", Quantity: 2}},
		ShippingAddress: testAddress(),
		Subtotal:        1198, Shipping: 50, Total: 1248,
		PaymentMethod: "cod",
	})
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	if matched := regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{8}$`).MatchString(order.OrderID); !matched {
		t.Errorf("order id %q has unexpected format", order.OrderID)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("expected status pending, got %q", order.Status)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(order.Items))
	}
	item := order.Items[0]
	if item.Name != "Lavender Dreams" || item.Price != 599 || item.Quantity != 2 {
		t.Errorf("line item not snapshotted correctly: %+v", item)
	}
	if item.Image != "https://example.com/lavender.jpg" {
		t.Errorf("expected first product image, got %q", item.Image)
	}
	if order.UPITransactionID != nil {
		t.Error("UPI transaction id must be absent without an upiId")
	}

	wantDelivery := order.OrderDate.Add(7 * 24 * time.Hour)
	if !order.ExpectedDelivery.Equal(wantDelivery) {
		t.Errorf("expected delivery %v, got %v", wantDelivery, order.ExpectedDelivery)
	}

	// Caller-supplied totals are trusted as-is.
	if order.Subtotal != 1198 || order.Shipping != 50 || order.Total != 1248 {
		t.Errorf("totals were not persisted as supplied: %+v", order)
	}
}

func TestPlaceOrderDropsMissingProducts(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.svc.Place(ctx, "user-1", models.CreateOrderRequest{
		Items: []models.CartItem{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "gone", Quantity: 3},
		},
		ShippingAddress: testAddress(),
		PaymentMethod:   "cod",
	})
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected missing product to be dropped, got %d items", len(order.Items))
	}
	if order.Items[0].ProductID != "p1" {
		t.Errorf("surviving item is %q, want p1", order.Items[0].ProductID)
	}
}

func TestPlaceOrderClearsCart(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	cart := &models.Cart{
		UserID:    "user-1",
		Items:     []models.CartItem{{ProductID: "p1", Quantity: 2}},
		UpdatedAt: time.Now(),
	}
	if err := f.carts.Upsert(ctx, cart); err != nil {
		t.Fatalf("cart setup failed: %v", err)
	}

	if _, err := f.svc.Place(ctx, "user-1", models.CreateOrderRequest{
		Items:           cart.Items,
		ShippingAddress: testAddress(),
		PaymentMethod:   "cod",
	}); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	remaining, err := f.carts.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("cart Get failed: %v", err)
	}
	if remaining != nil {
		t.Errorf("cart should be deleted after order placement, got %+v", remaining)
	}
}

func TestPlaceOrderSynthesizesUPITransaction(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.Place(context.Background(), "user-1", models.CreateOrderRequest{
		Items:           []models.CartItem{{ProductID: "p1", Quantity: 1}},
		ShippingAddress: testAddress(),
		PaymentMethod:   "upi",
		UPIID:           "alice@upi",
	})
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if order.UPITransactionID == nil {
		t.Fatal("expected a synthesized UPI transaction id")
	}
	if matched := regexp.MustCompile(`^UPI-[A-Z0-9]{12}$`).MatchString(*order.UPITransactionID); !matched {
		t.Errorf("UPI transaction id %q has unexpected format", *order.UPITransactionID)
	}
}

func TestSetStatus(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.svc.Place(ctx, "user-1", models.CreateOrderRequest{
		Items:           []models.CartItem{{ProductID: "p1", Quantity: 1}},
		ShippingAddress: testAddress(),
		PaymentMethod:   "cod",
	})
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	if err := f.svc.SetStatus(ctx, "ORD-unknown", "shipped"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown order, got %v", err)
	}

	// Any string is accepted; transitions are not validated.
	for _, status := range []string{"shipped", "on-the-moon", "cancelled"} {
		if err := f.svc.SetStatus(ctx, order.OrderID, status); err != nil {
			t.Fatalf("SetStatus(%q) failed: %v", status, err)
		}
		stored, err := f.orders.Get(ctx, order.OrderID)
		if err != nil || stored == nil {
			t.Fatalf("order lookup failed: %v", err)
		}
		if stored.Status != status {
			t.Errorf("status not reflected: expected %q, got %q", status, stored.Status)
		}
	}
}

func TestListScopingAndOrdering(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	base := time.Now()
	for i, userID := range []string{"user-1", "user-2", "user-1"} {
		order := &models.Order{
			OrderID:   fmt.Sprintf("ORD-%d", i),
			UserID:    userID,
			Items:     []models.OrderLineItem{},
			Status:    models.OrderStatusPending,
			OrderDate: base.Add(time.Duration(i) * time.Minute),
		}
		if err := f.orders.Create(ctx, order); err != nil {
			t.Fatalf("order setup failed: %v", err)
		}
	}

	user := &models.User{ID: "user-1", Role: models.RoleUser}
	admin := &models.User{ID: "admin-1", Role: models.RoleAdmin}

	own, err := f.svc.List(ctx, user)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(own) != 2 {
		t.Fatalf("user should see 2 own orders, got %d", len(own))
	}
	for _, o := range own {
		if o.UserID != "user-1" {
			t.Errorf("user saw foreign order %s of %s", o.OrderID, o.UserID)
		}
	}

	all, err := f.svc.List(ctx, admin)
	if err != nil {
		t.Fatalf("admin List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("admin should see all 3 orders, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].OrderDate.Before(all[i].OrderDate) {
			t.Errorf("orders not sorted newest first: %v before %v", all[i-1].OrderDate, all[i].OrderDate)
		}
	}
}

func TestGetScoping(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.svc.Place(ctx, "user-1", models.CreateOrderRequest{
		Items:           []models.CartItem{{ProductID: "p1", Quantity: 1}},
		ShippingAddress: testAddress(),
		PaymentMethod:   "cod",
	})
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	owner := &models.User{ID: "user-1", Role: models.RoleUser}
	stranger := &models.User{ID: "user-2", Role: models.RoleUser}
	admin := &models.User{ID: "admin-1", Role: models.RoleAdmin}

	if _, err := f.svc.Get(ctx, owner, order.OrderID); err != nil {
		t.Errorf("owner should read own order: %v", err)
	}
	if _, err := f.svc.Get(ctx, admin, order.OrderID); err != nil {
		t.Errorf("admin should read any order: %v", err)
	}
	if _, err := f.svc.Get(ctx, stranger, order.OrderID); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign order must read as not found, got %v", err)
	}
	if _, err := f.svc.Get(ctx, admin, "ORD-unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown order must be not found, got %v", err)
	}
}

func TestDashboardAggregation(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	for _, u := range []models.User{
		{ID: "u1", Role: models.RoleUser, Email: "u1@x.com"},
		{ID: "u2", Role: models.RoleUser, Email: "u2@x.com"},
		{ID: "a1", Role: models.RoleAdmin, Email: "a1@x.com"},
	} {
		u := u
		if err := f.users.Create(ctx, &u); err != nil {
			t.Fatalf("user setup failed: %v", err)
		}
	}

	now := time.Now()
	for i, o := range []struct {
		status string
		total  int
	}{
		{models.OrderStatusPending, 100},
		{models.OrderStatusDelivered, 250},
		{models.OrderStatusCancelled, 999},
	} {
		order := &models.Order{
			OrderID: "ORD-" + string(rune('A'+i)), UserID: "u1",
			Items: []models.OrderLineItem{}, Status: o.status, Total: o.total,
			OrderDate: now.Add(time.Duration(i) * time.Second),
		}
		if err := f.orders.Create(ctx, order); err != nil {
			t.Fatalf("order setup failed: %v", err)
		}
	}

	stats, err := f.svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}

	if stats.TotalSales != 350 {
		t.Errorf("cancelled orders must be excluded from sales: expected 350, got %d", stats.TotalSales)
	}
	if stats.TotalOrders != 3 {
		t.Errorf("expected 3 orders, got %d", stats.TotalOrders)
	}
	if stats.TotalProducts != 1 {
		t.Errorf("expected 1 product, got %d", stats.TotalProducts)
	}
	if stats.TotalUsers != 2 {
		t.Errorf("admin accounts must not count as users: expected 2, got %d", stats.TotalUsers)
	}
	if len(stats.RecentOrders) != 3 {
		t.Errorf("expected 3 recent orders, got %d", len(stats.RecentOrders))
	}
}
