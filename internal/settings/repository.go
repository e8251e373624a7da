package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/richxcame/motorent/internal/royalty"
)

// settingsRowID pins the single settings row
const settingsRowID = 1

// Repository handles royalty settings persistence
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new settings repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetSettings returns the saved settings row
func (r *Repository) GetSettings(ctx context.Context) (*StoredSettings, error) {
	stored := &StoredSettings{}
	s := &stored.Settings
	err := r.db.QueryRow(ctx, `
		SELECT royalty_bike_percent, royalty_moped_percent, ec_payment_fee_percent,
			split_linkus_percent, split_system_dev_percent, split_additional_one_percent,
			updated_at
		FROM royalty_settings
		WHERE id = $1`,
		settingsRowID,
	).Scan(
		&s.BikePercent, &s.MopedPercent, &s.ECPaymentFeePercent,
		&s.SplitLinkusPercent, &s.SplitSystemDevPercent, &s.SplitAdditionalOnePercent,
		&stored.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// SaveSettings upserts the settings row
func (r *Repository) SaveSettings(ctx context.Context, s royalty.Settings) (*StoredSettings, error) {
	stored := &StoredSettings{Settings: s}
	err := r.db.QueryRow(ctx, `
		INSERT INTO royalty_settings (
			id, royalty_bike_percent, royalty_moped_percent, ec_payment_fee_percent,
			split_linkus_percent, split_system_dev_percent, split_additional_one_percent,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			royalty_bike_percent = EXCLUDED.royalty_bike_percent,
			royalty_moped_percent = EXCLUDED.royalty_moped_percent,
			ec_payment_fee_percent = EXCLUDED.ec_payment_fee_percent,
			split_linkus_percent = EXCLUDED.split_linkus_percent,
			split_system_dev_percent = EXCLUDED.split_system_dev_percent,
			split_additional_one_percent = EXCLUDED.split_additional_one_percent,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at`,
		settingsRowID, s.BikePercent, s.MopedPercent, s.ECPaymentFeePercent,
		s.SplitLinkusPercent, s.SplitSystemDevPercent, s.SplitAdditionalOnePercent,
	).Scan(&stored.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return stored, nil
}
