package settings

import (
	"errors"
	"time"

	"github.com/richxcame/motorent/internal/royalty"
)

// ErrSettingsNotFound is returned by the repository when nothing has been saved yet
var ErrSettingsNotFound = errors.New("royalty settings not found")

// Source tells where a settings snapshot came from
type Source string

const (
	SourceCache    Source = "cache"
	SourceDatabase Source = "database"
	SourceDefault  Source = "default"
)

// StoredSettings is the persisted settings row
type StoredSettings struct {
	Settings  royalty.Settings `json:"settings"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// SettingsView is a settings snapshot with its provenance
type SettingsView struct {
	Settings  royalty.Settings `json:"settings"`
	Source    Source           `json:"source"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty"`
}

// UpdateSettingsRequest replaces every percentage at once
type UpdateSettingsRequest struct {
	BikePercent               *float64 `json:"royalty_bike_percent" validate:"required,percent"`
	MopedPercent              *float64 `json:"royalty_moped_percent" validate:"required,percent"`
	ECPaymentFeePercent       *float64 `json:"ec_payment_fee_percent" validate:"required,percent"`
	SplitLinkusPercent        *float64 `json:"split_linkus_percent" validate:"required,percent"`
	SplitSystemDevPercent     *float64 `json:"split_system_dev_percent" validate:"required,percent"`
	SplitAdditionalOnePercent *float64 `json:"split_additional_one_percent" validate:"required,percent"`
}

// Settings converts a validated request into calculation settings
func (r UpdateSettingsRequest) Settings() royalty.Settings {
	return royalty.Settings{
		BikePercent:               *r.BikePercent,
		MopedPercent:              *r.MopedPercent,
		ECPaymentFeePercent:       *r.ECPaymentFeePercent,
		SplitLinkusPercent:        *r.SplitLinkusPercent,
		SplitSystemDevPercent:     *r.SplitSystemDevPercent,
		SplitAdditionalOnePercent: *r.SplitAdditionalOnePercent,
	}
}

// UpdateResult is the saved settings plus any non-blocking warnings
type UpdateResult struct {
	Settings  royalty.Settings `json:"settings"`
	UpdatedAt time.Time        `json:"updated_at"`
	Warnings  []string         `json:"warnings,omitempty"`
}
