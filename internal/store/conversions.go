package store

import (
	"context"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
)

func (s *SQL) ListConversions(ctx context.Context) ([]model.Conversion, error) {
	var conversions []model.Conversion
	err := s.db.SelectContext(ctx, &conversions, "SELECT * FROM conversions ORDER BY ts")
	return conversions, err
}

func (s *SQL) AppendConversion(ctx context.Context, conversion model.Conversion) error {
	query := s.rebind(`
		INSERT INTO conversions (id, affiliate_id, ts, product_value, commission, buyer_name, buyer_phone)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)

	_, err := s.db.ExecContext(ctx, query,
		conversion.ID,
		conversion.AffiliateID,
		conversion.Timestamp,
		conversion.ProductValue,
		conversion.Commission,
		conversion.BuyerName,
		conversion.BuyerPhone,
	)
	return err
}
