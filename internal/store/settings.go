package store

import (
	"context"
	"strconv"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
)

const (
	settingCommissionRate  = "commission_rate"
	settingAttributionDays = "attribution_days"
	settingAllowSignup     = "allow_signup"
)

func (s *SQL) GetSettings(ctx context.Context) (model.Settings, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return model.Settings{}, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return model.Settings{}, err
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return model.Settings{}, err
	}
	if len(values) == 0 {
		return model.Settings{}, ErrSettingsNotFound
	}

	settings := model.DefaultSettings()
	if v, ok := values[settingCommissionRate]; ok {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			settings.CommissionRate = rate
		}
	}
	if v, ok := values[settingAttributionDays]; ok {
		if days, err := strconv.Atoi(v); err == nil {
			settings.AttributionDays = days
		}
	}
	if v, ok := values[settingAllowSignup]; ok {
		if allow, err := strconv.ParseBool(v); err == nil {
			settings.AllowSignup = allow
		}
	}
	return settings, nil
}

func (s *SQL) SaveSettings(ctx context.Context, settings model.Settings) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := s.rebind(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`)

	pairs := map[string]string{
		settingCommissionRate:  strconv.FormatFloat(settings.CommissionRate, 'f', -1, 64),
		settingAttributionDays: strconv.Itoa(settings.AttributionDays),
		settingAllowSignup:     strconv.FormatBool(settings.AllowSignup),
	}
	for key, value := range pairs {
		if _, err := tx.ExecContext(ctx, query, key, value); err != nil {
			return err
		}
	}
	return tx.Commit()
}
