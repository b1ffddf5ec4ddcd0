package services_test

import (
	"errors"
	"testing"

	"bazaar/internal/domain"
	"bazaar/internal/repos"
	"bazaar/internal/services"
)

func newOrders(t *testing.T) *services.OrderService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return services.NewOrderService(repos.NewOrderRepo(db))
}

func validOrder() domain.Order {
	return domain.Order{
		Items:        []domain.OrderItem{{ProductID: "p-1", Quantity: 2}},
		CustomerName: "Alice",
		Email:        "alice@example.com",
		Phone:        "+1 301-555-0100",
		Address:      "1 Main St",
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	svc := newOrders(t)

	empty := validOrder()
	empty.Items = nil
	if _, err := svc.Place(nil, empty); !errors.Is(err, services.ErrOrderFields) {
		t.Fatalf("empty products: want ErrOrderFields, got %v", err)
	}

	noName := validOrder()
	noName.CustomerName = ""
	if _, err := svc.Place(nil, noName); !errors.Is(err, services.ErrOrderFields) {
		t.Fatalf("missing name: want ErrOrderFields, got %v", err)
	}

	badEmail := validOrder()
	badEmail.Email = "not-an-email"
	if _, err := svc.Place(nil, badEmail); !errors.Is(err, services.ErrOrderEmail) {
		t.Fatalf("bad email: want ErrOrderEmail, got %v", err)
	}

	badPhone := validOrder()
	badPhone.Phone = "abc"
	if _, err := svc.Place(nil, badPhone); !errors.Is(err, services.ErrOrderPhone) {
		t.Fatalf("bad phone: want ErrOrderPhone, got %v", err)
	}
}

func TestPlaceOrderAnonymous(t *testing.T) {
	svc := newOrders(t)

	o, err := svc.Place(nil, validOrder())
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if o.ID == "" || o.UserID != "" {
		t.Fatalf("anonymous order should have id and no buyer: %+v", o)
	}
	if len(o.Items) != 1 || o.Items[0].Quantity != 2 {
		t.Fatalf("items not persisted: %+v", o.Items)
	}

	got, err := svc.Get(o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CustomerName != "Alice" || got.Phone != "+1 301-555-0100" {
		t.Fatalf("read-back mismatch: %+v", got)
	}
}

func TestPlaceOrderAttachesBuyer(t *testing.T) {
	svc := newOrders(t)

	claims := domain.Claims{ID: "u-buyer", Username: "bea", Role: domain.RoleBuyer}
	o, err := svc.Place(&claims, validOrder())
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if o.UserID != "u-buyer" {
		t.Fatalf("buyer id not attached: %+v", o)
	}
}

func TestPlaceOrderDefaultsQuantity(t *testing.T) {
	svc := newOrders(t)

	o := validOrder()
	o.Items = []domain.OrderItem{{ProductID: "p-1", Quantity: 0}}
	got, err := svc.Place(nil, o)
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if got.Items[0].Quantity != 1 {
		t.Fatalf("quantity should default to 1, got %d", got.Items[0].Quantity)
	}
}

// The same product may appear on several lines of one submission; lines are
// stored as given, not merged.
func TestPlaceOrderRepeatedProduct(t *testing.T) {
	svc := newOrders(t)

	o := validOrder()
	o.Items = []domain.OrderItem{
		{ProductID: "p-1", Quantity: 2},
		{ProductID: "p-1", Quantity: 3},
		{ProductID: "p-2", Quantity: 1},
	}
	placed, err := svc.Place(nil, o)
	if err != nil {
		t.Fatalf("place with repeated product: %v", err)
	}
	if len(placed.Items) != 3 {
		t.Fatalf("want 3 line items, got %+v", placed.Items)
	}
	qty := 0
	for _, it := range placed.Items {
		if it.ProductID == "p-1" {
			qty += it.Quantity
		}
	}
	if qty != 5 {
		t.Fatalf("p-1 quantities not preserved: %+v", placed.Items)
	}
}

func TestGetMissingOrder(t *testing.T) {
	svc := newOrders(t)
	if _, err := svc.Get("missing"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
