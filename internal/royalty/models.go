package royalty

import (
	"github.com/richxcame/motorent/pkg/money"
	"github.com/shopspring/decimal"
)

// PaymentType is the channel the customer paid through
type PaymentType string

const (
	PaymentECCredit     PaymentType = "ec_credit"
	PaymentOnsiteCash   PaymentType = "onsite_cash"
	PaymentOnsiteCredit PaymentType = "onsite_credit"
)

// IsEC reports whether the platform collected the money through the card processor
func (p PaymentType) IsEC() bool {
	return p == PaymentECCredit
}

// Plan selects which royalty rate applies
type Plan string

const (
	PlanBike  Plan = "bike"
	PlanMoped Plan = "moped"
)

// RefundType classifies how much of a reservation was refunded
type RefundType string

const (
	RefundNone      RefundType = "none"
	RefundFull      RefundType = "full"
	RefundSameDay50 RefundType = "same_day_50"
)

var (
	multiplierNone = decimal.NewFromInt(1)
	multiplierHalf = decimal.New(5, -1)
)

// Multiplier is the share of the reservation that still earns royalty
func (r RefundType) Multiplier() decimal.Decimal {
	switch r {
	case RefundFull:
		return decimal.Zero
	case RefundSameDay50:
		return multiplierHalf
	default:
		return multiplierNone
	}
}

// Input is one reservation reduced to what the royalty calculation needs
type Input struct {
	BikeSubtotal money.Yen   `json:"bike_subtotal"`
	TotalAmount  money.Yen   `json:"total_amount"`
	PaymentType  PaymentType `json:"payment_type"`
	Plan         Plan        `json:"plan"`
	Refund       RefundType  `json:"refund"`
}

// Settings are the platform royalty and split percentages, each 0-100.
// Calculate takes them by value so a calculation never sees a refresh midway.
type Settings struct {
	BikePercent               float64 `json:"royalty_bike_percent"`
	MopedPercent              float64 `json:"royalty_moped_percent"`
	ECPaymentFeePercent       float64 `json:"ec_payment_fee_percent"`
	SplitLinkusPercent        float64 `json:"split_linkus_percent"`
	SplitSystemDevPercent     float64 `json:"split_system_dev_percent"`
	SplitAdditionalOnePercent float64 `json:"split_additional_one_percent"`
}

// Result is the settlement of one reservation.
// RoyaltyAmount, ECFee and VendorPayment keep their exact fractional yen;
// TotalFee and the splits are rounded half-up. A negative VendorPayment is
// owed by the vendor to the platform.
type Result struct {
	RoyaltyAmount      decimal.Decimal `json:"royalty_amount"`
	ECFee              decimal.Decimal `json:"ec_fee"`
	TotalFee           money.Yen       `json:"total_fee"`
	VendorPayment      decimal.Decimal `json:"vendor_payment"`
	SplitLinkus        money.Yen       `json:"split_linkus"`
	SplitSystemDev     money.Yen       `json:"split_system_dev"`
	SplitAdditionalOne money.Yen       `json:"split_additional_one"`
}

// SplitTotal is the sum of the three partner splits
func (r Result) SplitTotal() money.Yen {
	return r.SplitLinkus + r.SplitSystemDev + r.SplitAdditionalOne
}
