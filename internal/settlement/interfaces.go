package settlement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/richxcame/motorent/internal/royalty"
)

// RepositoryInterface defines the reservation reads settlement needs
type RepositoryInterface interface {
	ListReservations(ctx context.Context, from, to time.Time, vendorID *uuid.UUID) ([]royalty.ReservationRecord, error)
}

// SettingsProvider supplies a settings snapshot for one report
type SettingsProvider interface {
	Current(ctx context.Context) (royalty.Settings, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
