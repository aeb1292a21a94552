package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
)

// GetReferrerMarker returns the active marker for a visitor, or nil when none
// is stored.
func (s *SQL) GetReferrerMarker(ctx context.Context, visitorID string) (*model.ReferrerMarker, error) {
	var marker model.ReferrerMarker
	err := s.db.GetContext(ctx, &marker,
		s.rebind("SELECT affiliate_id, ts FROM referrer_markers WHERE visitor_id = ?"), visitorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &marker, nil
}

// SaveReferrerMarker overwrites the visitor's marker; a nil marker clears it.
func (s *SQL) SaveReferrerMarker(ctx context.Context, visitorID string, marker *model.ReferrerMarker) error {
	if marker == nil {
		_, err := s.db.ExecContext(ctx,
			s.rebind("DELETE FROM referrer_markers WHERE visitor_id = ?"), visitorID)
		return err
	}

	query := s.rebind(`
		INSERT INTO referrer_markers (visitor_id, affiliate_id, ts)
		VALUES (?, ?, ?)
		ON CONFLICT (visitor_id) DO UPDATE SET
			affiliate_id = excluded.affiliate_id,
			ts = excluded.ts`)

	_, err := s.db.ExecContext(ctx, query, visitorID, marker.AffiliateID, marker.Timestamp)
	return err
}
