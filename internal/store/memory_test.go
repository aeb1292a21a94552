package store

import (
	"context"
	"errors"
	"testing"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
)

func TestMemoryUsers(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	if _, err := m.GetUserByID(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	user := model.User{ID: "u1", Email: "Ana@Demo.com", PasswordHash: "h", Role: model.RoleAffiliate, IsActive: true}
	if err := m.SaveUser(ctx, &user); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := m.GetUserByEmail(ctx, "ana@DEMO.com")
	if err != nil {
		t.Fatalf("email lookup: %v", err)
	}
	if got.ID != "u1" {
		t.Fatalf("unexpected user: %+v", got)
	}

	// Saving the same id overwrites instead of duplicating.
	user.Email = "ana2@demo.com"
	if err := m.SaveUser(ctx, &user); err != nil {
		t.Fatalf("resave: %v", err)
	}
	users, _ := m.ListUsers(ctx)
	if len(users) != 1 || users[0].Email != "ana2@demo.com" {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestMemoryClicksKeepArrivalOrder(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		if err := m.AppendClick(ctx, model.Click{AffiliateID: "a1", Timestamp: i}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	clicks, _ := m.ListClicks(ctx)
	list := clicks["a1"]
	if len(list) != 3 || list[0].Timestamp != 1 || list[2].Timestamp != 3 {
		t.Fatalf("unexpected click order: %+v", list)
	}

	// Mutating the returned map must not leak into the store.
	clicks["a1"][0].Timestamp = 99
	fresh, _ := m.ListClicks(ctx)
	if fresh["a1"][0].Timestamp != 1 {
		t.Fatal("ListClicks must return copies")
	}
}

func TestMemoryMarkers(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	marker, err := m.GetReferrerMarker(ctx, "v1")
	if err != nil || marker != nil {
		t.Fatalf("expected absent marker, got %+v err=%v", marker, err)
	}

	if err := m.SaveReferrerMarker(ctx, "v1", &model.ReferrerMarker{AffiliateID: "a1", Timestamp: 10}); err != nil {
		t.Fatalf("save: %v", err)
	}
	marker, _ = m.GetReferrerMarker(ctx, "v1")
	if marker == nil || marker.AffiliateID != "a1" {
		t.Fatalf("unexpected marker: %+v", marker)
	}

	if err := m.SaveReferrerMarker(ctx, "v1", nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	marker, _ = m.GetReferrerMarker(ctx, "v1")
	if marker != nil {
		t.Fatalf("marker should be cleared, got %+v", marker)
	}
}

func TestMemorySettings(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	if _, err := m.GetSettings(ctx); !errors.Is(err, ErrSettingsNotFound) {
		t.Fatalf("expected ErrSettingsNotFound, got %v", err)
	}

	want := model.Settings{CommissionRate: 0.15, AttributionDays: 7, AllowSignup: false}
	if err := m.SaveSettings(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := m.GetSettings(ctx)
	if err != nil || got != want {
		t.Fatalf("round trip: got %+v err=%v", got, err)
	}
}

func TestMemoryProducts(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	p1 := model.Product{Name: "A", Price: 10}
	p2 := model.Product{Name: "B", Price: 20}
	if err := m.AddProduct(ctx, &p1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := m.AddProduct(ctx, &p2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if p1.ID == p2.ID || p1.ID == 0 {
		t.Fatalf("ids not assigned: %d %d", p1.ID, p2.ID)
	}

	if err := m.DeleteProduct(ctx, p1.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := m.DeleteProduct(ctx, p1.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	products, _ := m.ListProducts(ctx)
	if len(products) != 1 || products[0].ID != p2.ID {
		t.Fatalf("unexpected products: %+v", products)
	}
}
