package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/auth"
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/commission"
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/store"
)

const dayMillis = 24 * 60 * 60 * 1000

var firstNames = []string{"Ana", "Bruno", "Carla", "Diego", "Elisa", "Fábio", "Gisele", "Heitor", "Íris", "João", "Laura", "Marcos"}

var lastNames = []string{"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves", "Pereira", "Lima", "Costa"}

type Summary struct {
	Users       int
	Clicks      int
	Conversions int
	Products    int
}

// Apply loads a randomized demo data set into the store: a fixed roster of
// accounts, 1-25 clicks per affiliate spread over the last 30 days, a
// conversion for up to half of those clicks at the default 10% rate, default
// settings and three demo products. Demo/test environments only.
func Apply(ctx context.Context, st store.Store) (*Summary, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return apply(ctx, st, rng, time.Now())
}

func apply(ctx context.Context, st store.Store, rng *rand.Rand, now time.Time) (*Summary, error) {
	users := demoUsers()
	for i := range users {
		if err := st.SaveUser(ctx, &users[i]); err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", users[i].ID, err)
		}
	}

	summary := &Summary{Users: len(users)}
	nowMillis := now.UnixMilli()

	for _, user := range users {
		if user.Role != model.RoleAffiliate {
			continue
		}

		clickCount := rng.Intn(25) + 1
		for i := 0; i < clickCount; i++ {
			daysAgo := int64(rng.Intn(30))
			click := model.Click{
				AffiliateID: user.ID,
				Timestamp:   nowMillis - daysAgo*dayMillis,
				UserAgent:   "seed",
			}
			if err := st.AppendClick(ctx, click); err != nil {
				return nil, fmt.Errorf("failed to seed click: %w", err)
			}
			summary.Clicks++
		}

		conversionCount := int(float64(clickCount) * (rng.Float64() * 0.5))
		for i := 0; i < conversionCount; i++ {
			daysAgo := int64(rng.Intn(30))
			productValue := commission.RoundMoney(rng.Float64()*200 + 50)
			conversion := model.Conversion{
				ID:           uuid.New().String(),
				AffiliateID:  user.ID,
				Timestamp:    nowMillis - daysAgo*dayMillis,
				ProductValue: productValue,
				Commission:   commission.RoundMoney(productValue * 0.10),
				BuyerName:    fakeBuyerName(rng),
				BuyerPhone:   fakePhone(rng),
			}
			if err := st.AppendConversion(ctx, conversion); err != nil {
				return nil, fmt.Errorf("failed to seed conversion: %w", err)
			}
			summary.Conversions++
		}
	}

	if err := st.SaveSettings(ctx, model.DefaultSettings()); err != nil {
		return nil, fmt.Errorf("failed to seed settings: %w", err)
	}

	for _, product := range demoProducts() {
		p := product
		if err := st.AddProduct(ctx, &p); err != nil {
			return nil, fmt.Errorf("failed to seed product: %w", err)
		}
		summary.Products++
	}

	return summary, nil
}

func demoUsers() []model.User {
	users := []model.User{
		{ID: "admin-01", Email: "admin@demo.com", PasswordHash: auth.Digest("Admin123!"), Role: model.RoleAdmin, IsActive: true},
		{ID: "ana-01", Email: "ana@demo.com", PasswordHash: auth.Digest("Ana123!"), Role: model.RoleAffiliate, IsActive: true},
		{ID: "rafa-01", Email: "rafa@demo.com", PasswordHash: auth.Digest("Rafa123!"), Role: model.RoleAffiliate, IsActive: true},
	}
	emails := []string{"carlos", "beatriz", "daniel", "fernanda", "gustavo", "helena", "igor", "julia", "lucas", "maria"}
	for i, name := range emails {
		users = append(users, model.User{
			ID:           fmt.Sprintf("afiliado-%02d", i+1),
			Email:        name + "@demo.com",
			PasswordHash: auth.Digest("senha123"),
			Role:         model.RoleAffiliate,
			// Two dormant accounts to exercise the active flag.
			IsActive: name != "beatriz" && name != "gustavo",
		})
	}
	return users
}

func demoProducts() []model.Product {
	return []model.Product{
		{Name: "Produto Digital Fantástico", Price: 99.90, Description: "Uma solução incrível que vai revolucionar sua vida."},
		{Name: "E-book 'Segredos do Marketing'", Price: 49.90, Description: "Aprenda as melhores estratégias com este guia completo."},
		{Name: "Curso Online de Design Gráfico", Price: 299.90, Description: "Do básico ao avançado, domine as ferramentas de design."},
	}
}

func fakeBuyerName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}

func fakePhone(rng *rand.Rand) string {
	ddd := rng.Intn(88) + 11
	firstPart := rng.Intn(9999) + 90000
	secondPart := rng.Intn(10000)
	return fmt.Sprintf("(%d) %d-%04d", ddd, firstPart, secondPart)
}
