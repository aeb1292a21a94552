package store

import (
	"context"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
)

// ListClicks returns every click grouped by affiliate, in arrival order.
func (s *SQL) ListClicks(ctx context.Context) (map[string][]model.Click, error) {
	var clicks []model.Click
	err := s.db.SelectContext(ctx, &clicks,
		"SELECT affiliate_id, ts, user_agent FROM clicks ORDER BY id")
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]model.Click)
	for _, c := range clicks {
		grouped[c.AffiliateID] = append(grouped[c.AffiliateID], c)
	}
	return grouped, nil
}

func (s *SQL) AppendClick(ctx context.Context, click model.Click) error {
	_, err := s.db.ExecContext(ctx,
		s.rebind("INSERT INTO clicks (affiliate_id, ts, user_agent) VALUES (?, ?, ?)"),
		click.AffiliateID, click.Timestamp, click.UserAgent)
	return err
}
