package commission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/store"
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/tracking"
)

var (
	ErrNoActiveReferrer = errors.New("Nenhum afiliado ativo para atribuir a conversão")
	ErrInvalidAmount    = errors.New("Valor de venda inválido")
)

// Engine turns purchases into commission records attributed to the visitor's
// active referrer.
type Engine struct {
	store   store.Store
	tracker *tracking.Tracker
	now     func() time.Time
}

func NewEngine(st store.Store, tracker *tracking.Tracker) *Engine {
	return &Engine{store: st, tracker: tracker, now: time.Now}
}

// RecordConversion attributes a sale to the visitor's active referrer and
// appends an immutable conversion record. The commission rate is read at
// recording time and captured in the record. The referrer marker is left
// untouched: one referrer may earn multiple conversions inside a single
// attribution window. ErrNoActiveReferrer is the recoverable "nothing to
// attribute" outcome, not a fault.
func (e *Engine) RecordConversion(ctx context.Context, visitorID string, productValue float64, buyerName, buyerPhone string) (*model.Conversion, error) {
	if productValue < 0 {
		return nil, ErrInvalidAmount
	}

	marker, err := e.tracker.ActiveReferrer(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if marker == nil {
		return nil, ErrNoActiveReferrer
	}

	settings := e.settings(ctx)
	conversion := model.Conversion{
		ID:           uuid.New().String(),
		AffiliateID:  marker.AffiliateID,
		Timestamp:    e.now().UnixMilli(),
		ProductValue: productValue,
		Commission:   RoundMoney(productValue * settings.CommissionRate),
		BuyerName:    buyerName,
		BuyerPhone:   buyerPhone,
	}

	if err := e.store.AppendConversion(ctx, conversion); err != nil {
		return nil, fmt.Errorf("failed to record conversion: %w", err)
	}
	return &conversion, nil
}

func (e *Engine) settings(ctx context.Context) model.Settings {
	settings, err := e.store.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSettingsNotFound) {
			slog.Warn("settings read failed, using defaults", "error", err)
		}
		return model.DefaultSettings()
	}
	return settings
}

// RoundMoney rounds a monetary amount to two decimal places, half away from
// zero.
func RoundMoney(v float64) float64 {
	if v < 0 {
		return -math.Floor(-v*100+0.5) / 100
	}
	return math.Floor(v*100+0.5) / 100
}
