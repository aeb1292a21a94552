package store

import (
	"context"
	"errors"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrSettingsNotFound = errors.New("settings not found")
)

// Store persists the collections the engine operates on. Clicks and
// conversions are append-only; the referrer marker is keyed per visitor and
// cleared by saving nil. Implementations must apply each call atomically so
// concurrent appends from different affiliates cannot corrupt each other.
type Store interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	SaveUser(ctx context.Context, user *model.User) error

	ListClicks(ctx context.Context) (map[string][]model.Click, error)
	AppendClick(ctx context.Context, click model.Click) error

	ListConversions(ctx context.Context) ([]model.Conversion, error)
	AppendConversion(ctx context.Context, conversion model.Conversion) error

	GetSettings(ctx context.Context) (model.Settings, error)
	SaveSettings(ctx context.Context, settings model.Settings) error

	GetReferrerMarker(ctx context.Context, visitorID string) (*model.ReferrerMarker, error)
	SaveReferrerMarker(ctx context.Context, visitorID string, marker *model.ReferrerMarker) error

	ListProducts(ctx context.Context) ([]model.Product, error)
	AddProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id int64) error

	Close() error
}
