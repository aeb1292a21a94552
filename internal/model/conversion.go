package model

// Conversion is an immutable commission record. The commission amount is
// captured at recording time and never recomputed from later rate changes.
type Conversion struct {
	ID           string  `json:"id" db:"id"`
	AffiliateID  string  `json:"affiliate_id" db:"affiliate_id"`
	Timestamp    int64   `json:"timestamp" db:"ts"` // unix milliseconds
	ProductValue float64 `json:"product_value" db:"product_value"`
	Commission   float64 `json:"commission" db:"commission"`
	BuyerName    string  `json:"buyer_name" db:"buyer_name"`
	BuyerPhone   string  `json:"buyer_phone" db:"buyer_phone"`
}

type AffiliateStats struct {
	AffiliateID     string  `json:"affiliate_id"`
	Clicks          int     `json:"clicks"`
	Conversions     int     `json:"conversions"`
	TotalCommission float64 `json:"total_commission"`
	ConversionRate  float64 `json:"conversion_rate"`
}
