package settlement

import (
	"sort"

	"github.com/google/uuid"
	"github.com/richxcame/motorent/internal/royalty"
)

// Add returns the field-wise sum of a and b
func (a Amounts) Add(b Amounts) Amounts {
	return Amounts{
		ReservationCount:  a.ReservationCount + b.ReservationCount,
		ECCreditCount:     a.ECCreditCount + b.ECCreditCount,
		OnsiteCashCount:   a.OnsiteCashCount + b.OnsiteCashCount,
		OnsiteCreditCount: a.OnsiteCreditCount + b.OnsiteCreditCount,
		RoyaltyAmount:     a.RoyaltyAmount.Add(b.RoyaltyAmount),
		ECFee:             a.ECFee.Add(b.ECFee),
		TotalFee:          a.TotalFee + b.TotalFee,
		VendorPayment:     a.VendorPayment.Add(b.VendorPayment),
		Splits: PartnerSplitTotals{
			Linkus:        a.Splits.Linkus + b.Splits.Linkus,
			SystemDev:     a.Splits.SystemDev + b.Splits.SystemDev,
			AdditionalOne: a.Splits.AdditionalOne + b.Splits.AdditionalOne,
		},
	}
}

// Equal compares amounts by value; decimals with different scales compare equal
func (a Amounts) Equal(b Amounts) bool {
	return a.ReservationCount == b.ReservationCount &&
		a.ECCreditCount == b.ECCreditCount &&
		a.OnsiteCashCount == b.OnsiteCashCount &&
		a.OnsiteCreditCount == b.OnsiteCreditCount &&
		a.RoyaltyAmount.Equal(b.RoyaltyAmount) &&
		a.ECFee.Equal(b.ECFee) &&
		a.TotalFee == b.TotalFee &&
		a.VendorPayment.Equal(b.VendorPayment) &&
		a.Splits == b.Splits
}

func amountsOf(item LineItem) Amounts {
	a := Amounts{
		ReservationCount: 1,
		RoyaltyAmount:    item.Result.RoyaltyAmount,
		ECFee:            item.Result.ECFee,
		TotalFee:         item.Result.TotalFee,
		VendorPayment:    item.Result.VendorPayment,
		Splits: PartnerSplitTotals{
			Linkus:        item.Result.SplitLinkus,
			SystemDev:     item.Result.SplitSystemDev,
			AdditionalOne: item.Result.SplitAdditionalOne,
		},
	}
	switch item.Input.PaymentType {
	case royalty.PaymentECCredit:
		a.ECCreditCount = 1
	case royalty.PaymentOnsiteCredit:
		a.OnsiteCreditCount = 1
	default:
		a.OnsiteCashCount = 1
	}
	return a
}

// Summarize sums line items per vendor and overall. Vendors are ordered by
// name then ID, so the output does not depend on the order of items.
func Summarize(items []LineItem) Summary {
	byVendor := make(map[uuid.UUID]*VendorSummary)
	var totals Totals

	for _, item := range items {
		a := amountsOf(item)
		totals.Amounts = totals.Amounts.Add(a)

		vs, ok := byVendor[item.VendorID]
		if !ok {
			vs = &VendorSummary{VendorID: item.VendorID, VendorName: item.VendorName}
			byVendor[item.VendorID] = vs
		}
		if vs.VendorName == "" {
			vs.VendorName = item.VendorName
		}
		vs.Amounts = vs.Amounts.Add(a)
	}

	vendors := make([]VendorSummary, 0, len(byVendor))
	for _, vs := range byVendor {
		vendors = append(vendors, *vs)
	}
	sort.Slice(vendors, func(i, j int) bool {
		if vendors[i].VendorName != vendors[j].VendorName {
			return vendors[i].VendorName < vendors[j].VendorName
		}
		return vendors[i].VendorID.String() < vendors[j].VendorID.String()
	})

	totals.VendorCount = len(vendors)
	return Summary{Vendors: vendors, Totals: totals}
}
