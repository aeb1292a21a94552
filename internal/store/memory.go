package store

import (
	"context"
	"strings"
	"sync"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
)

// Memory is an in-process Store used by tests and the seeder. A single mutex
// makes every call an atomic collection-level update.
type Memory struct {
	mu          sync.Mutex
	users       []model.User
	clicks      map[string][]model.Click
	conversions []model.Conversion
	settings    *model.Settings
	markers     map[string]model.ReferrerMarker
	products    []model.Product
	nextProduct int64
}

func NewMemory() *Memory {
	return &Memory{
		clicks:      make(map[string][]model.Click),
		markers:     make(map[string]model.ReferrerMarker),
		nextProduct: 1,
	}
}

func (m *Memory) ListUsers(ctx context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]model.User, len(m.users))
	copy(users, m.users)
	return users, nil
}

func (m *Memory) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *Memory) SaveUser(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.users {
		if u.ID == user.ID {
			m.users[i] = *user
			return nil
		}
	}
	m.users = append(m.users, *user)
	return nil
}

func (m *Memory) ListClicks(ctx context.Context) (map[string][]model.Click, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clicks := make(map[string][]model.Click, len(m.clicks))
	for id, list := range m.clicks {
		copied := make([]model.Click, len(list))
		copy(copied, list)
		clicks[id] = copied
	}
	return clicks, nil
}

func (m *Memory) AppendClick(ctx context.Context, click model.Click) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clicks[click.AffiliateID] = append(m.clicks[click.AffiliateID], click)
	return nil
}

func (m *Memory) ListConversions(ctx context.Context) ([]model.Conversion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conversions := make([]model.Conversion, len(m.conversions))
	copy(conversions, m.conversions)
	return conversions, nil
}

func (m *Memory) AppendConversion(ctx context.Context, conversion model.Conversion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversions = append(m.conversions, conversion)
	return nil
}

func (m *Memory) GetSettings(ctx context.Context) (model.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		return model.Settings{}, ErrSettingsNotFound
	}
	return *m.settings, nil
}

func (m *Memory) SaveSettings(ctx context.Context, settings model.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &settings
	return nil
}

func (m *Memory) GetReferrerMarker(ctx context.Context, visitorID string) (*model.ReferrerMarker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	marker, ok := m.markers[visitorID]
	if !ok {
		return nil, nil
	}
	return &marker, nil
}

func (m *Memory) SaveReferrerMarker(ctx context.Context, visitorID string, marker *model.ReferrerMarker) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if marker == nil {
		delete(m.markers, visitorID)
		return nil
	}
	m.markers[visitorID] = *marker
	return nil
}

func (m *Memory) ListProducts(ctx context.Context) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	products := make([]model.Product, len(m.products))
	copy(products, m.products)
	return products, nil
}

func (m *Memory) AddProduct(ctx context.Context, product *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if product.ID == 0 {
		product.ID = m.nextProduct
	}
	if product.ID >= m.nextProduct {
		m.nextProduct = product.ID + 1
	}
	m.products = append(m.products, *product)
	return nil
}

func (m *Memory) DeleteProduct(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (m *Memory) Close() error {
	return nil
}
