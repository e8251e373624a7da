package settings

import (
	"context"

	"github.com/richxcame/motorent/internal/royalty"
)

// RepositoryInterface defines the persistence operations for royalty settings
type RepositoryInterface interface {
	GetSettings(ctx context.Context) (*StoredSettings, error)
	SaveSettings(ctx context.Context, s royalty.Settings) (*StoredSettings, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
