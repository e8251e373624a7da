package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/richxcame/motorent/internal/royalty"
	"github.com/richxcame/motorent/pkg/common"
	"github.com/richxcame/motorent/pkg/config"
	redisClient "github.com/richxcame/motorent/pkg/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetSettings(ctx context.Context) (*StoredSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StoredSettings), args.Error(1)
}

func (m *mockRepo) SaveSettings(ctx context.Context, s royalty.Settings) (*StoredSettings, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StoredSettings), args.Error(1)
}

func testSettlementConfig() config.SettlementConfig {
	return config.SettlementConfig{
		SettingsCacheTTLSeconds: 300,
		MaxReportDays:           93,
		DefaultRoyalty: config.RoyaltyDefaults{
			BikePercent:               12,
			MopedPercent:              10,
			ECPaymentFeePercent:       3.6,
			SplitLinkusPercent:        50,
			SplitSystemDevPercent:     35,
			SplitAdditionalOnePercent: 15,
		},
	}
}

func storedFixture() *StoredSettings {
	return &StoredSettings{
		Settings: royalty.Settings{
			BikePercent:               14,
			MopedPercent:              11,
			ECPaymentFeePercent:       3.25,
			SplitLinkusPercent:        40,
			SplitSystemDevPercent:     40,
			SplitAdditionalOnePercent: 20,
		},
		UpdatedAt: time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC),
	}
}

func pct(v float64) *float64 { return &v }

func TestService_Get_CacheHit(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	repo := new(mockRepo)
	svc := NewService(repo, &redisClient.Client{Client: db}, testSettlementConfig())

	payload, err := json.Marshal(storedFixture())
	require.NoError(t, err)
	redisMock.ExpectGet(settingsCacheKey).SetVal(string(payload))

	view, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceCache, view.Source)
	assert.Equal(t, storedFixture().Settings, view.Settings)

	repo.AssertNotCalled(t, "GetSettings", mock.Anything)
	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_Get_CacheMissLoadsDatabaseAndFillsCache(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	repo := new(mockRepo)
	svc := NewService(repo, &redisClient.Client{Client: db}, testSettlementConfig())

	stored := storedFixture()
	payload, err := json.Marshal(stored)
	require.NoError(t, err)

	redisMock.ExpectGet(settingsCacheKey).RedisNil()
	repo.On("GetSettings", mock.Anything).Return(stored, nil)
	redisMock.ExpectSet(settingsCacheKey, payload, 300*time.Second).SetVal("OK")

	view, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceDatabase, view.Source)
	assert.Equal(t, stored.Settings, view.Settings)
	require.NotNil(t, view.UpdatedAt)

	repo.AssertExpectations(t)
	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_Get_CacheErrorFallsThrough(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	repo := new(mockRepo)
	svc := NewService(repo, &redisClient.Client{Client: db}, testSettlementConfig())

	redisMock.ExpectGet(settingsCacheKey).SetErr(errors.New("connection refused"))
	repo.On("GetSettings", mock.Anything).Return(nil, ErrSettingsNotFound)

	view, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, view.Source)
	assert.Equal(t, DefaultsFromConfig(testSettlementConfig().DefaultRoyalty), view.Settings)
	assert.Nil(t, view.UpdatedAt)
}

func TestService_Current_WithoutCache(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, nil, testSettlementConfig())

	repo.On("GetSettings", mock.Anything).Return(storedFixture(), nil).Once()
	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 14.0, current.BikePercent)

	repo.On("GetSettings", mock.Anything).Return(nil, errors.New("db down")).Once()
	_, err = svc.Current(context.Background())
	require.Error(t, err)
	appErr, ok := common.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}

func TestService_Update(t *testing.T) {
	tests := []struct {
		name         string
		req          UpdateSettingsRequest
		wantWarnings int
	}{
		{
			name: "clean settings",
			req: UpdateSettingsRequest{
				BikePercent: pct(12), MopedPercent: pct(10), ECPaymentFeePercent: pct(3.6),
				SplitLinkusPercent: pct(50), SplitSystemDevPercent: pct(35), SplitAdditionalOnePercent: pct(15),
			},
		},
		{
			name: "splits off and fee above moped rate still save",
			req: UpdateSettingsRequest{
				BikePercent: pct(12), MopedPercent: pct(3), ECPaymentFeePercent: pct(3.6),
				SplitLinkusPercent: pct(50), SplitSystemDevPercent: pct(35), SplitAdditionalOnePercent: pct(10),
			},
			wantWarnings: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, redisMock := redismock.NewClientMock()
			repo := new(mockRepo)
			svc := NewService(repo, &redisClient.Client{Client: db}, testSettlementConfig())

			want := tt.req.Settings()
			repo.On("SaveSettings", mock.Anything, want).Return(&StoredSettings{Settings: want, UpdatedAt: time.Now()}, nil)
			redisMock.ExpectDel(settingsCacheKey).SetVal(1)

			result, err := svc.Update(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, want, result.Settings)
			assert.Len(t, result.Warnings, tt.wantWarnings)

			repo.AssertExpectations(t)
			require.NoError(t, redisMock.ExpectationsWereMet())
		})
	}
}

func TestService_Update_ValidationAndSaveErrors(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, nil, testSettlementConfig())

	_, err := svc.Update(context.Background(), UpdateSettingsRequest{BikePercent: pct(12)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))

	_, err = svc.Update(context.Background(), UpdateSettingsRequest{
		BikePercent: pct(120), MopedPercent: pct(10), ECPaymentFeePercent: pct(3.6),
		SplitLinkusPercent: pct(50), SplitSystemDevPercent: pct(35), SplitAdditionalOnePercent: pct(15),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "royalty_bike_percent")
	repo.AssertNotCalled(t, "SaveSettings", mock.Anything, mock.Anything)

	repo.On("SaveSettings", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	_, err = svc.Update(context.Background(), UpdateSettingsRequest{
		BikePercent: pct(12), MopedPercent: pct(10), ECPaymentFeePercent: pct(3.6),
		SplitLinkusPercent: pct(50), SplitSystemDevPercent: pct(35), SplitAdditionalOnePercent: pct(15),
	})
	appErr, ok := common.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		name     string
		settings royalty.Settings
		want     []string
	}{
		{
			name:     "defaults are clean",
			settings: DefaultsFromConfig(testSettlementConfig().DefaultRoyalty),
		},
		{
			name:     "thirds that sum exactly in decimal",
			settings: royalty.Settings{BikePercent: 12, MopedPercent: 10, ECPaymentFeePercent: 3.6, SplitLinkusPercent: 33.4, SplitSystemDevPercent: 33.3, SplitAdditionalOnePercent: 33.3},
		},
		{
			name:     "splits short of 100",
			settings: royalty.Settings{BikePercent: 12, MopedPercent: 10, ECPaymentFeePercent: 3.6, SplitLinkusPercent: 50, SplitSystemDevPercent: 35, SplitAdditionalOnePercent: 10},
			want:     []string{"split percentages sum to 95, expected 100"},
		},
		{
			name:     "ec fee above both rates",
			settings: royalty.Settings{BikePercent: 3, MopedPercent: 2.5, ECPaymentFeePercent: 3.6, SplitLinkusPercent: 50, SplitSystemDevPercent: 35, SplitAdditionalOnePercent: 15},
			want: []string{
				"ec_payment_fee_percent (3.6) exceeds royalty_bike_percent (3): EC bike reservations will yield negative royalty",
				"ec_payment_fee_percent (3.6) exceeds royalty_moped_percent (2.5): EC moped reservations will yield negative royalty",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Warnings(tt.settings))
		})
	}
}
