package commission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/store"
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/tracking"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newFixture(t *testing.T) (*Engine, *tracking.Tracker, *store.Memory, *clock) {
	t.Helper()
	st := store.NewMemory()
	c := &clock{t: time.UnixMilli(1_700_000_000_000)}

	tracker := tracking.New(st, tracking.WithClock(c.now))
	engine := NewEngine(st, tracker)
	engine.now = c.now

	ctx := context.Background()
	user := model.User{ID: "partner-7", Email: "partner7@demo.com", PasswordHash: "x", Role: model.RoleAffiliate, IsActive: true}
	if err := st.SaveUser(ctx, &user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := st.SaveSettings(ctx, model.DefaultSettings()); err != nil {
		t.Fatalf("seed settings: %v", err)
	}
	return engine, tracker, st, c
}

func TestRoundMoney(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want float64
	}{
		{9.999, 10.00},
		{15.0, 15.0},
		{0.005, 0.01},
		{10.004, 10.00},
		{-9.999, -10.00},
		{0, 0},
	}
	for _, tc := range cases {
		if got := RoundMoney(tc.in); got != tc.want {
			t.Errorf("RoundMoney(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRecordConversionComputesCommission(t *testing.T) {
	t.Parallel()

	engine, tracker, _, _ := newFixture(t)
	ctx := context.Background()

	if err := tracker.Track(ctx, "v1", "partner-7", "ua"); err != nil {
		t.Fatalf("track: %v", err)
	}

	cases := []struct {
		value float64
		want  float64
	}{
		{150.00, 15.00},
		{99.99, 10.00},
	}
	for _, tc := range cases {
		conversion, err := engine.RecordConversion(ctx, "v1", tc.value, "Ana Silva", "(11) 91234-0000")
		if err != nil {
			t.Fatalf("record conversion %v: %v", tc.value, err)
		}
		if conversion.Commission != tc.want {
			t.Errorf("commission for %v = %v, want %v", tc.value, conversion.Commission, tc.want)
		}
		if conversion.AffiliateID != "partner-7" {
			t.Errorf("affiliate = %q, want partner-7", conversion.AffiliateID)
		}
		if conversion.ID == "" {
			t.Error("conversion id must not be empty")
		}
	}
}

func TestRecordConversionWithoutReferrer(t *testing.T) {
	t.Parallel()

	engine, _, st, _ := newFixture(t)
	ctx := context.Background()

	_, err := engine.RecordConversion(ctx, "v1", 100, "", "")
	if !errors.Is(err, ErrNoActiveReferrer) {
		t.Fatalf("expected ErrNoActiveReferrer, got %v", err)
	}

	conversions, _ := st.ListConversions(ctx)
	if len(conversions) != 0 {
		t.Fatalf("no record should be written, got %d", len(conversions))
	}
}

func TestRecordConversionNegativeAmount(t *testing.T) {
	t.Parallel()

	engine, tracker, _, _ := newFixture(t)
	ctx := context.Background()

	if err := tracker.Track(ctx, "v1", "partner-7", "ua"); err != nil {
		t.Fatalf("track: %v", err)
	}
	if _, err := engine.RecordConversion(ctx, "v1", -1, "", ""); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestMarkerSurvivesConversions(t *testing.T) {
	t.Parallel()

	engine, tracker, st, c := newFixture(t)
	ctx := context.Background()

	if err := tracker.Track(ctx, "v1", "partner-7", "ua"); err != nil {
		t.Fatalf("track: %v", err)
	}

	for i := 0; i < 2; i++ {
		c.advance(24 * time.Hour)
		if _, err := engine.RecordConversion(ctx, "v1", 50, "", ""); err != nil {
			t.Fatalf("conversion %d: %v", i+1, err)
		}
	}

	conversions, _ := st.ListConversions(ctx)
	if len(conversions) != 2 {
		t.Fatalf("one referrer may earn multiple conversions, got %d", len(conversions))
	}
}

func TestRateChangeAppliesImmediately(t *testing.T) {
	t.Parallel()

	engine, tracker, st, _ := newFixture(t)
	ctx := context.Background()

	if err := tracker.Track(ctx, "v1", "partner-7", "ua"); err != nil {
		t.Fatalf("track: %v", err)
	}

	first, err := engine.RecordConversion(ctx, "v1", 100, "", "")
	if err != nil {
		t.Fatalf("first conversion: %v", err)
	}
	if first.Commission != 10.00 {
		t.Fatalf("commission at 10%% = %v, want 10.00", first.Commission)
	}

	settings := model.DefaultSettings()
	settings.CommissionRate = 0.25
	if err := st.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	second, err := engine.RecordConversion(ctx, "v1", 100, "", "")
	if err != nil {
		t.Fatalf("second conversion: %v", err)
	}
	if second.Commission != 25.00 {
		t.Fatalf("commission at 25%% = %v, want 25.00", second.Commission)
	}
	// The first record keeps the rate captured at its recording time.
	conversions, _ := st.ListConversions(ctx)
	if conversions[0].Commission != 10.00 {
		t.Fatalf("recorded commission mutated: %v", conversions[0].Commission)
	}
}

func TestEndToEndAttribution(t *testing.T) {
	t.Parallel()

	engine, tracker, st, c := newFixture(t)
	ctx := context.Background()

	if err := tracker.Track(ctx, "v1", "partner-7", "cli"); err != nil {
		t.Fatalf("track: %v", err)
	}
	clicks, _ := st.ListClicks(ctx)
	if len(clicks["partner-7"]) != 1 {
		t.Fatalf("expected one click, got %d", len(clicks["partner-7"]))
	}

	conversion, err := engine.RecordConversion(ctx, "v1", 200.00, "João Costa", "(21) 99876-1234")
	if err != nil {
		t.Fatalf("conversion inside window: %v", err)
	}
	if conversion.Commission != 20.00 || conversion.AffiliateID != "partner-7" {
		t.Fatalf("unexpected conversion: %+v", conversion)
	}

	c.advance(40 * 24 * time.Hour)
	if _, err := engine.RecordConversion(ctx, "v1", 50.00, "", ""); !errors.Is(err, ErrNoActiveReferrer) {
		t.Fatalf("expected ErrNoActiveReferrer after window, got %v", err)
	}
	conversions, _ := st.ListConversions(ctx)
	if len(conversions) != 1 {
		t.Fatalf("expired attribution must not add records, got %d", len(conversions))
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	engine, tracker, _, _ := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if err := tracker.Track(ctx, "v1", "partner-7", "ua"); err != nil {
			t.Fatalf("track: %v", err)
		}
	}
	if _, err := engine.RecordConversion(ctx, "v1", 100, "", ""); err != nil {
		t.Fatalf("conversion: %v", err)
	}

	stats, err := engine.AffiliateStats(ctx, "partner-7")
	if err != nil {
		t.Fatalf("affiliate stats: %v", err)
	}
	if stats.Clicks != 4 || stats.Conversions != 1 || stats.TotalCommission != 10.00 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.ConversionRate != 0.25 {
		t.Fatalf("conversion rate = %v, want 0.25", stats.ConversionRate)
	}

	all, err := engine.AllStats(ctx)
	if err != nil {
		t.Fatalf("all stats: %v", err)
	}
	if len(all) != 1 || all[0].AffiliateID != "partner-7" {
		t.Fatalf("unexpected aggregate: %+v", all)
	}
}
