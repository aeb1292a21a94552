package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
)

func newSQLiteStore(t *testing.T) *SQL {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLUserRoundTrip(t *testing.T) {
	t.Parallel()

	s := newSQLiteStore(t)
	ctx := context.Background()

	user := model.User{ID: "u1", Email: "Ana@Demo.com", PasswordHash: "h", Role: model.RoleAffiliate, IsActive: true}
	if err := s.SaveUser(ctx, &user); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.GetUserByEmail(ctx, "ana@demo.com")
	if err != nil {
		t.Fatalf("case-insensitive lookup: %v", err)
	}
	if got.ID != "u1" || !got.IsActive || got.Role != model.RoleAffiliate {
		t.Fatalf("unexpected user: %+v", got)
	}

	// Upsert on the same id.
	user.IsActive = false
	if err := s.SaveUser(ctx, &user); err != nil {
		t.Fatalf("resave: %v", err)
	}
	got, _ = s.GetUserByID(ctx, "u1")
	if got.IsActive {
		t.Fatal("upsert should have flipped is_active")
	}

	if _, err := s.GetUserByID(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSQLClicksAndConversions(t *testing.T) {
	t.Parallel()

	s := newSQLiteStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		if err := s.AppendClick(ctx, model.Click{AffiliateID: "a1", Timestamp: i, UserAgent: "ua"}); err != nil {
			t.Fatalf("append click: %v", err)
		}
	}
	clicks, err := s.ListClicks(ctx)
	if err != nil {
		t.Fatalf("list clicks: %v", err)
	}
	if len(clicks["a1"]) != 3 || clicks["a1"][0].Timestamp != 1 {
		t.Fatalf("unexpected clicks: %+v", clicks["a1"])
	}

	conversion := model.Conversion{
		ID: "c1", AffiliateID: "a1", Timestamp: 5,
		ProductValue: 99.99, Commission: 10.00,
		BuyerName: "Ana Silva", BuyerPhone: "(11) 91234-0000",
	}
	if err := s.AppendConversion(ctx, conversion); err != nil {
		t.Fatalf("append conversion: %v", err)
	}
	conversions, err := s.ListConversions(ctx)
	if err != nil {
		t.Fatalf("list conversions: %v", err)
	}
	if len(conversions) != 1 || conversions[0] != conversion {
		t.Fatalf("round trip mismatch: %+v", conversions)
	}
}

func TestSQLSettings(t *testing.T) {
	t.Parallel()

	s := newSQLiteStore(t)
	ctx := context.Background()

	if _, err := s.GetSettings(ctx); !errors.Is(err, ErrSettingsNotFound) {
		t.Fatalf("expected ErrSettingsNotFound, got %v", err)
	}

	want := model.Settings{CommissionRate: 0.2, AttributionDays: 14, AllowSignup: false}
	if err := s.SaveSettings(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.GetSettings(ctx)
	if err != nil || got != want {
		t.Fatalf("round trip: got %+v err=%v", got, err)
	}

	// Upsert over existing keys.
	want.CommissionRate = 0.3
	if err := s.SaveSettings(ctx, want); err != nil {
		t.Fatalf("resave: %v", err)
	}
	got, _ = s.GetSettings(ctx)
	if got.CommissionRate != 0.3 {
		t.Fatalf("upsert failed: %+v", got)
	}
}

func TestSQLMarkers(t *testing.T) {
	t.Parallel()

	s := newSQLiteStore(t)
	ctx := context.Background()

	marker, err := s.GetReferrerMarker(ctx, "v1")
	if err != nil || marker != nil {
		t.Fatalf("expected absent marker, got %+v err=%v", marker, err)
	}

	if err := s.SaveReferrerMarker(ctx, "v1", &model.ReferrerMarker{AffiliateID: "a1", Timestamp: 1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SaveReferrerMarker(ctx, "v1", &model.ReferrerMarker{AffiliateID: "a2", Timestamp: 2}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	marker, _ = s.GetReferrerMarker(ctx, "v1")
	if marker == nil || marker.AffiliateID != "a2" || marker.Timestamp != 2 {
		t.Fatalf("unexpected marker: %+v", marker)
	}

	if err := s.SaveReferrerMarker(ctx, "v1", nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	marker, _ = s.GetReferrerMarker(ctx, "v1")
	if marker != nil {
		t.Fatalf("marker should be cleared, got %+v", marker)
	}
}

func TestSQLProducts(t *testing.T) {
	t.Parallel()

	s := newSQLiteStore(t)
	ctx := context.Background()

	product := model.Product{Name: "Produto", Price: 49.90, Description: "demo"}
	if err := s.AddProduct(ctx, &product); err != nil {
		t.Fatalf("add: %v", err)
	}
	if product.ID == 0 {
		t.Fatal("id not assigned")
	}

	products, err := s.ListProducts(ctx)
	if err != nil || len(products) != 1 {
		t.Fatalf("list: %+v err=%v", products, err)
	}

	if err := s.DeleteProduct(ctx, product.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteProduct(ctx, product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
