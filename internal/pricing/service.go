package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/richxcame/motorent/pkg/common"
	"github.com/richxcame/motorent/pkg/money"
	"github.com/richxcame/motorent/pkg/validation"
)

// Service prices reservations against an injected rate table
type Service struct {
	rates RateTable
}

// NewService creates a new pricing service
func NewService(rates RateTable) (*Service, error) {
	if err := rates.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rate table: %w", err)
	}
	return &Service{rates: rates}, nil
}

// QuoteReservation validates a quote request and prices it
func (s *Service) QuoteReservation(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, common.NewValidationError(err.Error())
	}
	if err := validation.ValidateRentalWindow(req.StartAt, req.EndAt); err != nil {
		return nil, common.NewBadRequestError(err.Error(), ErrInvalidDuration).WithErrorCode("INVALID_DURATION")
	}

	class, err := resolveClass(req)
	if err != nil {
		return nil, err
	}

	card, err := s.rates.Lookup(class)
	if err != nil {
		return nil, common.NewBadRequestError("unknown vehicle class", err).WithErrorCode("UNKNOWN_VEHICLE_CLASS")
	}

	opts := QuoteOptions{
		// CDW is compulsory unless the caller explicitly opts out
		WithCDW:       req.WithCDW == nil || *req.WithCDW,
		OptionsAmount: money.Yen(req.OptionsAmount),
	}
	if req.Coupon != nil {
		if CouponType(req.Coupon.Type) == CouponPercent && req.Coupon.Value > 100 {
			return nil, common.NewValidationError("coupon value must be between 0 and 100 for percent coupons")
		}
		opts.Coupon = &Coupon{Type: CouponType(req.Coupon.Type), Value: req.Coupon.Value}
	}

	result, err := Quote(card, req.EndAt.Sub(req.StartAt).Hours(), opts)
	if err != nil {
		if errors.Is(err, ErrInvalidDuration) {
			return nil, common.NewBadRequestError(err.Error(), err).WithErrorCode("INVALID_DURATION")
		}
		return nil, common.NewInternalError("failed to price reservation", err)
	}
	return &result, nil
}

// ListRateCards returns every rate card in ascending displacement order
func (s *Service) ListRateCards(ctx context.Context) []RateCard {
	return s.rates.Cards()
}

// GetRateCard returns the rate card for a class tag
func (s *Service) GetRateCard(ctx context.Context, class string) (*RateCard, error) {
	parsed, err := ParseVehicleClass(class)
	if err != nil {
		return nil, common.NewNotFoundError("rate card not found", err).WithErrorCode("UNKNOWN_VEHICLE_CLASS")
	}
	card, err := s.rates.Lookup(parsed)
	if err != nil {
		return nil, common.NewNotFoundError("rate card not found", err).WithErrorCode("UNKNOWN_VEHICLE_CLASS")
	}
	return &card, nil
}

func resolveClass(req QuoteRequest) (VehicleClass, error) {
	if req.VehicleClass != "" {
		class, err := ParseVehicleClass(req.VehicleClass)
		if err != nil {
			return "", common.NewBadRequestError("unknown vehicle class", err).WithErrorCode("UNKNOWN_VEHICLE_CLASS")
		}
		return class, nil
	}
	if req.IsEV {
		return ClassEV, nil
	}
	if req.DisplacementCC != nil {
		return GetVehicleClassFromDisplacement(req.DisplacementCC), nil
	}
	return "", common.NewValidationError("vehicle_class, displacement_cc or is_ev is required")
}
