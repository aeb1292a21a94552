package model

type Settings struct {
	CommissionRate  float64 `json:"commission_rate"`  // fraction in [0,1]
	AttributionDays int     `json:"attribution_days"` // > 0
	AllowSignup     bool    `json:"allow_signup"`
}

// DefaultSettings mirrors the values the store is seeded with and is the
// fallback when the settings read fails.
func DefaultSettings() Settings {
	return Settings{
		CommissionRate:  0.10,
		AttributionDays: 30,
		AllowSignup:     true,
	}
}
