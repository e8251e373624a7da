package royalty

import (
	"github.com/richxcame/motorent/pkg/money"
	"github.com/shopspring/decimal"
)

// Calculate computes the royalty, EC fee, vendor payment and partner splits
// for one reservation. It never fails; settings validity is checked where
// settings are edited.
func Calculate(in Input, s Settings) Result {
	rate := money.Percent(s.BikePercent)
	if in.Plan == PlanMoped {
		rate = money.Percent(s.MopedPercent)
	}

	ec := in.PaymentType.IsEC()
	ecRate := money.Percent(s.ECPaymentFeePercent)

	// The published rate already contains the processor fee on EC payments
	if ec {
		rate = rate.Sub(ecRate)
	}

	multiplier := in.Refund.Multiplier()
	royalty := money.ApplyPercent(in.BikeSubtotal.Decimal(), rate).Mul(multiplier)

	// EC fee is charged on the whole reservation, not just the bike rental,
	// and is not reduced by refunds
	ecFee := decimal.Zero
	if ec {
		ecFee = money.ApplyPercent(in.TotalAmount.Decimal(), ecRate)
	}

	totalFee := money.RoundHalfUp(royalty.Add(ecFee))

	var vendorPayment decimal.Decimal
	if ec {
		vendorPayment = in.TotalAmount.Decimal().Mul(multiplier).Sub(totalFee.Decimal())
	} else {
		vendorPayment = royalty.Neg()
	}

	return Result{
		RoyaltyAmount:      royalty,
		ECFee:              ecFee,
		TotalFee:           totalFee,
		VendorPayment:      vendorPayment,
		SplitLinkus:        split(royalty, s.SplitLinkusPercent),
		SplitSystemDev:     split(royalty, s.SplitSystemDevPercent),
		SplitAdditionalOne: split(royalty, s.SplitAdditionalOnePercent),
	}
}

// split rounds each partner independently; the three may drift from the royalty by up to 2 yen
func split(royalty decimal.Decimal, pct float64) money.Yen {
	return money.RoundHalfUp(money.ApplyPercent(royalty, money.Percent(pct)))
}
