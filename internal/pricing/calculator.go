package pricing

import (
	"fmt"
	"math"

	"github.com/richxcame/motorent/pkg/money"
	"github.com/shopspring/decimal"
)

const (
	hoursPerDay        = 24
	twoHourLimit       = 2
	fourHourLimit      = 4
	thirtyTwoHourLimit = 32

	// MaxRentalHours bounds a single rental to one leap year
	MaxRentalHours = 366 * hoursPerDay
)

// CalculateRentalPrice selects the billing tier for elapsedHours and prices the bike rental
func CalculateRentalPrice(card RateCard, elapsedHours float64) (RentalPriceResult, error) {
	if math.IsNaN(elapsedHours) || elapsedHours <= 0 || elapsedHours > MaxRentalHours {
		return RentalPriceResult{}, fmt.Errorf("%w: got %v hours", ErrInvalidDuration, elapsedHours)
	}

	result := RentalPriceResult{
		Days: int(math.Ceil(elapsedHours / hoursPerDay)),
	}

	switch {
	case elapsedHours <= twoHourLimit && IsTwoHourPlanAvailable(card.Class) && card.TwoHour > 0:
		result.Tier = TierTwoHour
		result.BaseAmount = card.TwoHour
	case elapsedHours <= fourHourLimit:
		result.Tier = TierFourHour
		result.BaseAmount = card.FourHour
	case elapsedHours <= hoursPerDay:
		// Ties go to the 1-day product
		if card.TwentyFourHour < card.OneDay {
			result.Tier = TierTwentyFourHour
			result.BaseAmount = card.TwentyFourHour
		} else {
			result.Tier = TierOneDay
			result.BaseAmount = card.OneDay
		}
	case elapsedHours <= thirtyTwoHourLimit:
		result.Tier = TierThirtyTwoHour
		result.BaseAmount = card.ThirtyTwoHour
	default:
		result.Tier = TierExtended
		fullDays := int(math.Floor(elapsedHours / hoursPerDay))
		remainder := elapsedHours - float64(fullDays*hoursPerDay)
		result.OvertimeHours = int(math.Ceil(remainder))

		// Overtime never costs more than another full day
		overtime := money.Yen(result.OvertimeHours) * card.OvertimePerHour
		if overtime > card.Additional24h {
			overtime = card.Additional24h
		}
		result.OvertimeAmount = overtime

		amount := card.TwentyFourHour + money.Yen(fullDays-1)*card.Additional24h + overtime
		if amount < card.ThirtyTwoHour {
			amount = card.ThirtyTwoHour
		}
		result.BaseAmount = amount
	}

	return result, nil
}

// IsTwoHourPlanAvailable reports whether the class can book the 2-hour plan (125cc and below)
func IsTwoHourPlanAvailable(class VehicleClass) bool {
	switch class {
	case ClassEV, Class50cc, Class125cc:
		return true
	default:
		return false
	}
}

// GetCDWPriceForClass returns the daily CDW price for class from rates
func GetCDWPriceForClass(rates RateTable, class VehicleClass) (money.Yen, error) {
	return rates.CDWPerDay(class)
}

// GetVehicleClassFromDisplacement maps an engine displacement to its class.
// A nil or non-positive displacement means an electric bike.
func GetVehicleClassFromDisplacement(displacementCC *int) VehicleClass {
	if displacementCC == nil || *displacementCC <= 0 {
		return ClassEV
	}

	cc := *displacementCC
	switch {
	case cc <= 50:
		return Class50cc
	case cc <= 125:
		return Class125cc
	case cc <= 250:
		return Class250cc
	case cc <= 400:
		return Class400cc
	case cc <= 950:
		return Class950cc
	case cc <= 1100:
		return Class1100cc
	default:
		return Class1500cc
	}
}

// Quote prices a whole reservation: rental, coupon, CDW and options
func Quote(card RateCard, elapsedHours float64, opts QuoteOptions) (QuoteResult, error) {
	rental, err := CalculateRentalPrice(card, elapsedHours)
	if err != nil {
		return QuoteResult{}, err
	}

	discount := couponDiscount(rental.BaseAmount, opts.Coupon)
	result := QuoteResult{
		VehicleClass:         card.Class,
		ElapsedHours:         elapsedHours,
		Rental:               rental,
		CouponDiscount:       discount,
		BikeSubtotal:         rental.BaseAmount - discount,
		CDWSelected:          opts.WithCDW,
		CDWPerDay:            card.CDWPerDay,
		OptionsAmount:        opts.OptionsAmount,
		TwoHourPlanAvailable: IsTwoHourPlanAvailable(card.Class),
	}
	if opts.WithCDW {
		result.CDWAmount = card.CDWPerDay * money.Yen(rental.Days)
	}
	result.TotalAmount = result.BikeSubtotal + result.CDWAmount + result.OptionsAmount

	return result, nil
}

// couponDiscount applies to the bike rental only and never exceeds it.
// The cap is taken on the exact decimal, before rounding to yen.
func couponDiscount(rental money.Yen, coupon *Coupon) money.Yen {
	if coupon == nil || math.IsNaN(coupon.Value) || coupon.Value <= 0 {
		return 0
	}
	if math.IsInf(coupon.Value, 1) {
		return rental
	}

	var discount decimal.Decimal
	switch coupon.Type {
	case CouponFixed:
		discount = decimal.NewFromFloat(coupon.Value)
	case CouponPercent:
		discount = money.ApplyPercent(rental.Decimal(), money.Percent(coupon.Value))
	default:
		return 0
	}

	if discount.GreaterThanOrEqual(rental.Decimal()) {
		return rental
	}
	return money.RoundHalfUp(discount)
}
