package model

// MaxUserAgentLen caps the client tag stored with each click.
const MaxUserAgentLen = 100

type Click struct {
	AffiliateID string `json:"affiliate_id" db:"affiliate_id"`
	Timestamp   int64  `json:"timestamp" db:"ts"` // unix milliseconds
	UserAgent   string `json:"user_agent" db:"user_agent"`
}

// ReferrerMarker records which affiliate referred a visitor and when.
// One marker per visitor at a time; a newer valid referral overwrites it.
type ReferrerMarker struct {
	AffiliateID string `json:"affiliate_id" db:"affiliate_id"`
	Timestamp   int64  `json:"timestamp" db:"ts"` // unix milliseconds
}
