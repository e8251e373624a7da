package settings

import (
	"context"
	"errors"

	"github.com/richxcame/motorent/internal/royalty"
	"github.com/richxcame/motorent/pkg/common"
	"github.com/richxcame/motorent/pkg/config"
	"github.com/richxcame/motorent/pkg/logger"
	redisClient "github.com/richxcame/motorent/pkg/redis"
	"github.com/richxcame/motorent/pkg/validation"
	"go.uber.org/zap"
)

// Service reads and edits the royalty settings
type Service struct {
	repo     RepositoryInterface
	cache    *cache
	defaults royalty.Settings
}

// NewService creates a settings service. redis may be nil to run without a cache.
func NewService(repo RepositoryInterface, redis redisClient.ClientInterface, cfg config.SettlementConfig) *Service {
	return &Service{
		repo:     repo,
		cache:    &cache{redis: redis, ttl: cfg.SettingsCacheTTL()},
		defaults: DefaultsFromConfig(cfg.DefaultRoyalty),
	}
}

// DefaultsFromConfig converts the configured bootstrap percentages
func DefaultsFromConfig(d config.RoyaltyDefaults) royalty.Settings {
	return royalty.Settings{
		BikePercent:               d.BikePercent,
		MopedPercent:              d.MopedPercent,
		ECPaymentFeePercent:       d.ECPaymentFeePercent,
		SplitLinkusPercent:        d.SplitLinkusPercent,
		SplitSystemDevPercent:     d.SplitSystemDevPercent,
		SplitAdditionalOnePercent: d.SplitAdditionalOnePercent,
	}
}

// Current returns a value snapshot of the settings for one calculation run
func (s *Service) Current(ctx context.Context) (royalty.Settings, error) {
	view, err := s.Get(ctx)
	if err != nil {
		return royalty.Settings{}, err
	}
	return view.Settings, nil
}

// Get returns the settings from cache, then the database, then the configured defaults
func (s *Service) Get(ctx context.Context) (*SettingsView, error) {
	if s.cache.enabled() {
		stored, err := s.cache.get(ctx)
		if err == nil {
			return &SettingsView{Settings: stored.Settings, Source: SourceCache, UpdatedAt: &stored.UpdatedAt}, nil
		}
		if !redisClient.IsCacheMiss(err) {
			logger.WarnContext(ctx, "royalty settings cache read failed", zap.Error(err))
		}
	}

	stored, err := s.repo.GetSettings(ctx)
	if errors.Is(err, ErrSettingsNotFound) {
		return &SettingsView{Settings: s.defaults, Source: SourceDefault}, nil
	}
	if err != nil {
		return nil, common.NewInternalError("failed to load royalty settings", err)
	}

	if s.cache.enabled() {
		if err := s.cache.set(ctx, stored); err != nil {
			logger.WarnContext(ctx, "royalty settings cache write failed", zap.Error(err))
		}
	}

	return &SettingsView{Settings: stored.Settings, Source: SourceDatabase, UpdatedAt: &stored.UpdatedAt}, nil
}

// Update validates the request shape, saves it even when business-rule
// warnings apply, and drops the cached copy
func (s *Service) Update(ctx context.Context, req UpdateSettingsRequest) (*UpdateResult, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, common.NewValidationError(err.Error())
	}

	next := req.Settings()
	warnings := Warnings(next)

	stored, err := s.repo.SaveSettings(ctx, next)
	if err != nil {
		return nil, common.NewInternalError("failed to save royalty settings", err)
	}

	if s.cache.enabled() {
		if err := s.cache.invalidate(ctx); err != nil {
			logger.WarnContext(ctx, "royalty settings cache invalidation failed", zap.Error(err))
		}
	}

	if len(warnings) > 0 {
		logger.WarnContext(ctx, "royalty settings saved with warnings", zap.Strings("warnings", warnings))
	} else {
		logger.InfoContext(ctx, "royalty settings saved")
	}

	return &UpdateResult{Settings: stored.Settings, UpdatedAt: stored.UpdatedAt, Warnings: warnings}, nil
}
