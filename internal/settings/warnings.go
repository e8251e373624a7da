package settings

import (
	"fmt"

	"github.com/richxcame/motorent/internal/royalty"
	"github.com/richxcame/motorent/pkg/money"
)

var hundred = money.Percent(100)

// Warnings lists business-rule problems with s. They are reported to the
// administrator but never block a save and never stop a calculation.
func Warnings(s royalty.Settings) []string {
	var warnings []string

	sum := money.Percent(s.SplitLinkusPercent).
		Add(money.Percent(s.SplitSystemDevPercent)).
		Add(money.Percent(s.SplitAdditionalOnePercent))
	if !sum.Equal(hundred) {
		warnings = append(warnings, fmt.Sprintf("split percentages sum to %s, expected 100", sum.String()))
	}

	ec := money.Percent(s.ECPaymentFeePercent)
	if ec.GreaterThan(money.Percent(s.BikePercent)) {
		warnings = append(warnings, fmt.Sprintf(
			"ec_payment_fee_percent (%s) exceeds royalty_bike_percent (%s): EC bike reservations will yield negative royalty",
			ec.String(), money.Percent(s.BikePercent).String()))
	}
	if ec.GreaterThan(money.Percent(s.MopedPercent)) {
		warnings = append(warnings, fmt.Sprintf(
			"ec_payment_fee_percent (%s) exceeds royalty_moped_percent (%s): EC moped reservations will yield negative royalty",
			ec.String(), money.Percent(s.MopedPercent).String()))
	}

	return warnings
}
