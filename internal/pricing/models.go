package pricing

import (
	"errors"
	"time"

	"github.com/richxcame/motorent/pkg/money"
)

var (
	// ErrInvalidDuration is returned when the elapsed rental time is not positive
	ErrInvalidDuration = errors.New("rental duration must be positive")
	// ErrUnknownVehicleClass is returned for a class tag outside the closed enumeration
	ErrUnknownVehicleClass = errors.New("unknown vehicle class")
)

// VehicleClass is the displacement-based pricing class of a bike
type VehicleClass string

const (
	ClassEV     VehicleClass = "ev"
	Class50cc   VehicleClass = "50cc"
	Class125cc  VehicleClass = "125cc"
	Class250cc  VehicleClass = "250cc"
	Class400cc  VehicleClass = "400cc"
	Class950cc  VehicleClass = "950cc"
	Class1100cc VehicleClass = "1100cc"
	Class1500cc VehicleClass = "1500cc"
)

// VehicleClasses lists every class in ascending displacement order
var VehicleClasses = []VehicleClass{
	ClassEV, Class50cc, Class125cc, Class250cc, Class400cc, Class950cc, Class1100cc, Class1500cc,
}

// IsLight reports whether the class is billed under the moped royalty plan
func (v VehicleClass) IsLight() bool {
	return v == ClassEV || v == Class50cc
}

// Tier is the billing bucket chosen for a rental
type Tier string

const (
	TierTwoHour        Tier = "two_hour"
	TierFourHour       Tier = "four_hour"
	TierOneDay         Tier = "one_day"
	TierTwentyFourHour Tier = "twenty_four_hour"
	TierThirtyTwoHour  Tier = "thirty_two_hour"
	TierExtended       Tier = "extended"
)

// RateCard is the fixed price list of one vehicle class.
// TwoHour is zero for classes without a 2-hour plan.
type RateCard struct {
	Class           VehicleClass `json:"vehicle_class"`
	TwoHour         money.Yen    `json:"two_hour"`
	FourHour        money.Yen    `json:"four_hour"`
	OneDay          money.Yen    `json:"one_day"`
	TwentyFourHour  money.Yen    `json:"twenty_four_hour"`
	ThirtyTwoHour   money.Yen    `json:"thirty_two_hour"`
	OvertimePerHour money.Yen    `json:"overtime_per_hour"`
	Additional24h   money.Yen    `json:"additional_24h"`
	CDWPerDay       money.Yen    `json:"cdw_per_day"`
}

// RentalPriceResult is the price of the bike rental alone.
// BaseAmount already includes OvertimeAmount.
type RentalPriceResult struct {
	BaseAmount     money.Yen `json:"base_amount"`
	Tier           Tier      `json:"tier"`
	Days           int       `json:"days"`
	OvertimeHours  int       `json:"overtime_hours"`
	OvertimeAmount money.Yen `json:"overtime_amount"`
}

// CouponType is how a coupon value is interpreted
type CouponType string

const (
	CouponFixed   CouponType = "fixed"
	CouponPercent CouponType = "percent"
)

// Coupon discounts the bike rental; Value is yen for fixed coupons and 0-100 for percent coupons
type Coupon struct {
	Type  CouponType `json:"type"`
	Value float64    `json:"value"`
}

// QuoteOptions are the extras priced on top of the rental
type QuoteOptions struct {
	WithCDW       bool
	OptionsAmount money.Yen
	Coupon        *Coupon
}

// QuoteResult is the full booking-time price of a reservation
type QuoteResult struct {
	VehicleClass         VehicleClass      `json:"vehicle_class"`
	ElapsedHours         float64           `json:"elapsed_hours"`
	Rental               RentalPriceResult `json:"rental"`
	CouponDiscount       money.Yen         `json:"coupon_discount"`
	BikeSubtotal         money.Yen         `json:"bike_subtotal"`
	CDWSelected          bool              `json:"cdw_selected"`
	CDWPerDay            money.Yen         `json:"cdw_per_day"`
	CDWAmount            money.Yen         `json:"cdw_amount"`
	OptionsAmount        money.Yen         `json:"options_amount"`
	TotalAmount          money.Yen         `json:"total_amount"`
	TwoHourPlanAvailable bool              `json:"two_hour_plan_available"`
}

// QuoteRequest is the booking-time quote request body.
// Either VehicleClass or DisplacementCC identifies the bike; the class wins when both are set.
type QuoteRequest struct {
	VehicleClass   string         `json:"vehicle_class" validate:"omitempty,vehicle_class"`
	DisplacementCC *int           `json:"displacement_cc" validate:"omitempty,gte=0"`
	IsEV           bool           `json:"is_ev"`
	StartAt        time.Time      `json:"start_at" validate:"required"`
	EndAt          time.Time      `json:"end_at" validate:"required"`
	WithCDW        *bool          `json:"with_cdw"`
	OptionsAmount  int64          `json:"options_amount" validate:"gte=0"`
	Coupon         *CouponRequest `json:"coupon"`
}

// CouponRequest is the coupon part of a quote request
type CouponRequest struct {
	Type  string  `json:"type" validate:"required,coupon_type"`
	Value float64 `json:"value" validate:"gte=0"`
}
