package royalty

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/richxcame/motorent/internal/pricing"
	"github.com/richxcame/motorent/pkg/money"
)

// ErrIncompleteReservation is returned when a stored reservation lacks the amounts settlement needs
var ErrIncompleteReservation = errors.New("reservation is missing settlement amounts")

const (
	statusCancelled  = "cancelled"
	statusNoShow     = "no_show"
	settlementRefund = "refunded"
)

// ReservationRecord is a reservation row as stored, with nullable columns left nullable
type ReservationRecord struct {
	ID                uuid.UUID `json:"id"`
	VendorID          uuid.UUID `json:"vendor_id"`
	VendorName        string    `json:"vendor_name"`
	StartAt           time.Time `json:"start_at"`
	BaseAmount        *int64    `json:"base_amount"`
	TotalAmount       *int64    `json:"total_amount"`
	PaymentTypes      []string  `json:"payment_types"`
	Status            string    `json:"status"`
	PaymentSettlement *string   `json:"payment_settlement"`
	Plan              *string   `json:"plan"`
	VehicleClass      *string   `json:"vehicle_class"`
}

// ToInput validates the record and narrows it to a calculation Input
func (r ReservationRecord) ToInput() (Input, error) {
	if r.BaseAmount == nil || r.TotalAmount == nil {
		return Input{}, fmt.Errorf("%w: reservation %s", ErrIncompleteReservation, r.ID)
	}

	plan, err := DerivePlan(r.Plan, r.VehicleClass)
	if err != nil {
		return Input{}, fmt.Errorf("reservation %s: %w", r.ID, err)
	}

	settlement := ""
	if r.PaymentSettlement != nil {
		settlement = *r.PaymentSettlement
	}

	return Input{
		BikeSubtotal: money.Yen(*r.BaseAmount),
		TotalAmount:  money.Yen(*r.TotalAmount),
		PaymentType:  DerivePaymentType(r.PaymentTypes),
		Plan:         plan,
		Refund:       DeriveRefundType(r.Status, settlement),
	}, nil
}

// DerivePaymentType picks the settlement channel from the reservation's payment types.
// Any EC payment makes the reservation EC.
func DerivePaymentType(paymentTypes []string) PaymentType {
	hasOnsiteCredit := false
	for _, pt := range paymentTypes {
		switch PaymentType(normalize(pt)) {
		case PaymentECCredit:
			return PaymentECCredit
		case PaymentOnsiteCredit:
			hasOnsiteCredit = true
		}
	}
	if hasOnsiteCredit {
		return PaymentOnsiteCredit
	}
	return PaymentOnsiteCash
}

// DeriveRefundType maps reservation status and payment settlement to a refund classification
func DeriveRefundType(status, settlement string) RefundType {
	switch normalize(status) {
	case statusCancelled:
		if normalize(settlement) == settlementRefund {
			return RefundFull
		}
	case statusNoShow:
		return RefundSameDay50
	}
	return RefundNone
}

// DerivePlan uses the stored plan when present, otherwise the vehicle class:
// ev and 50cc are mopeds, everything else is a bike. With neither, the bike rate applies.
func DerivePlan(plan, vehicleClass *string) (Plan, error) {
	if plan != nil && strings.TrimSpace(*plan) != "" {
		switch p := Plan(normalize(*plan)); p {
		case PlanBike, PlanMoped:
			return p, nil
		default:
			return "", fmt.Errorf("unknown plan %q", *plan)
		}
	}

	if vehicleClass != nil && strings.TrimSpace(*vehicleClass) != "" {
		class, err := pricing.ParseVehicleClass(*vehicleClass)
		if err != nil {
			return "", err
		}
		if class.IsLight() {
			return PlanMoped, nil
		}
	}
	return PlanBike, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
