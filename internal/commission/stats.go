package commission

import (
	"context"
	"sort"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
)

// AffiliateStats aggregates clicks, conversions and earned commission for a
// single affiliate.
func (e *Engine) AffiliateStats(ctx context.Context, affiliateID string) (*model.AffiliateStats, error) {
	clicks, err := e.store.ListClicks(ctx)
	if err != nil {
		return nil, err
	}
	conversions, err := e.store.ListConversions(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.AffiliateStats{
		AffiliateID: affiliateID,
		Clicks:      len(clicks[affiliateID]),
	}
	for _, c := range conversions {
		if c.AffiliateID != affiliateID {
			continue
		}
		stats.Conversions++
		stats.TotalCommission = RoundMoney(stats.TotalCommission + c.Commission)
	}
	if stats.Clicks > 0 {
		stats.ConversionRate = float64(stats.Conversions) / float64(stats.Clicks)
	}
	return stats, nil
}

// AllStats returns per-affiliate aggregates for every affiliate that has at
// least one click or conversion, ordered by affiliate id.
func (e *Engine) AllStats(ctx context.Context) ([]model.AffiliateStats, error) {
	clicks, err := e.store.ListClicks(ctx)
	if err != nil {
		return nil, err
	}
	conversions, err := e.store.ListConversions(ctx)
	if err != nil {
		return nil, err
	}

	byAffiliate := make(map[string]*model.AffiliateStats)
	get := func(id string) *model.AffiliateStats {
		s, ok := byAffiliate[id]
		if !ok {
			s = &model.AffiliateStats{AffiliateID: id}
			byAffiliate[id] = s
		}
		return s
	}

	for id, list := range clicks {
		get(id).Clicks = len(list)
	}
	for _, c := range conversions {
		s := get(c.AffiliateID)
		s.Conversions++
		s.TotalCommission = RoundMoney(s.TotalCommission + c.Commission)
	}

	all := make([]model.AffiliateStats, 0, len(byAffiliate))
	for _, s := range byAffiliate {
		if s.Clicks > 0 {
			s.ConversionRate = float64(s.Conversions) / float64(s.Clicks)
		}
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].AffiliateID < all[j].AffiliateID })
	return all, nil
}
