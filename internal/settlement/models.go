package settlement

import (
	"time"

	"github.com/google/uuid"
	"github.com/richxcame/motorent/internal/royalty"
	"github.com/richxcame/motorent/pkg/money"
	"github.com/shopspring/decimal"
)

// LineItem is one settled reservation
type LineItem struct {
	ReservationID uuid.UUID      `json:"reservation_id"`
	VendorID      uuid.UUID      `json:"vendor_id"`
	VendorName    string         `json:"vendor_name"`
	StartAt       time.Time      `json:"start_at"`
	Input         royalty.Input  `json:"input"`
	Result        royalty.Result `json:"result"`
}

// PartnerSplitTotals sums the royalty split per operating partner
type PartnerSplitTotals struct {
	Linkus        money.Yen `json:"linkus"`
	SystemDev     money.Yen `json:"system_dev"`
	AdditionalOne money.Yen `json:"additional_one"`
}

// Total is the sum over all partners
func (p PartnerSplitTotals) Total() money.Yen {
	return p.Linkus + p.SystemDev + p.AdditionalOne
}

// Amounts are the summed settlement figures of a group of reservations
type Amounts struct {
	ReservationCount  int                `json:"reservation_count"`
	ECCreditCount     int                `json:"ec_credit_count"`
	OnsiteCashCount   int                `json:"onsite_cash_count"`
	OnsiteCreditCount int                `json:"onsite_credit_count"`
	RoyaltyAmount     decimal.Decimal    `json:"royalty_amount"`
	ECFee             decimal.Decimal    `json:"ec_fee"`
	TotalFee          money.Yen          `json:"total_fee"`
	VendorPayment     decimal.Decimal    `json:"vendor_payment"`
	Splits            PartnerSplitTotals `json:"splits"`
}

// VendorSummary is the settlement of one vendor
type VendorSummary struct {
	VendorID   uuid.UUID `json:"vendor_id"`
	VendorName string    `json:"vendor_name"`
	Amounts
}

// Totals is the settlement across all vendors
type Totals struct {
	VendorCount int `json:"vendor_count"`
	Amounts
}

// Summary is the aggregation of a set of line items
type Summary struct {
	Vendors []VendorSummary `json:"vendors"`
	Totals  Totals          `json:"totals"`
}

// ReportQuery selects reservations by start date, both ends inclusive
type ReportQuery struct {
	From     time.Time
	To       time.Time
	VendorID *uuid.UUID
}

// SkippedReservation is a reservation that could not be settled
type SkippedReservation struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	VendorID      uuid.UUID `json:"vendor_id"`
	Reason        string    `json:"reason"`
}

// Report is a settlement report for a date range
type Report struct {
	From      string               `json:"from"`
	To        string               `json:"to"`
	VendorID  *uuid.UUID           `json:"vendor_id,omitempty"`
	Settings  royalty.Settings     `json:"settings"`
	Vendors   []VendorSummary      `json:"vendors"`
	Totals    Totals               `json:"totals"`
	LineItems []LineItem           `json:"line_items"`
	Skipped   []SkippedReservation `json:"skipped,omitempty"`
}

// PreviewRequest is a hypothetical reservation to run through the royalty
// calculator, typically before editing settings
type PreviewRequest struct {
	BikeSubtotal int64  `json:"bike_subtotal" validate:"gte=0"`
	TotalAmount  int64  `json:"total_amount" validate:"gte=0"`
	PaymentType  string `json:"payment_type" validate:"required,payment_type"`
	Plan         string `json:"plan" validate:"required,oneof=bike moped"`
	Refund       string `json:"refund" validate:"omitempty,refund_type"`
}

// Preview is the royalty breakdown of one hypothetical reservation
type Preview struct {
	Input    royalty.Input    `json:"input"`
	Settings royalty.Settings `json:"settings"`
	Result   royalty.Result   `json:"result"`
}
