package pricing

import (
	"fmt"
	"strings"

	"github.com/richxcame/motorent/pkg/money"
)

// RateTable maps each vehicle class to its rate card. It is read-only after construction.
type RateTable map[VehicleClass]RateCard

// DefaultRateTable returns a fresh copy of the published rate cards
func DefaultRateTable() RateTable {
	return RateTable{
		ClassEV:     {Class: ClassEV, TwoHour: 2500, FourHour: 3500, OneDay: 5000, TwentyFourHour: 5500, ThirtyTwoHour: 7500, OvertimePerHour: 500, Additional24h: 4500, CDWPerDay: 1000},
		Class50cc:   {Class: Class50cc, TwoHour: 2500, FourHour: 3500, OneDay: 5000, TwentyFourHour: 5500, ThirtyTwoHour: 7500, OvertimePerHour: 500, Additional24h: 4500, CDWPerDay: 1000},
		Class125cc:  {Class: Class125cc, TwoHour: 3500, FourHour: 4500, OneDay: 6500, TwentyFourHour: 7000, ThirtyTwoHour: 9500, OvertimePerHour: 700, Additional24h: 6000, CDWPerDay: 1200},
		Class250cc:  {Class: Class250cc, FourHour: 6500, OneDay: 9000, TwentyFourHour: 9500, ThirtyTwoHour: 13000, OvertimePerHour: 1000, Additional24h: 8000, CDWPerDay: 1500},
		Class400cc:  {Class: Class400cc, FourHour: 8500, OneDay: 12000, TwentyFourHour: 12500, ThirtyTwoHour: 17000, OvertimePerHour: 1300, Additional24h: 10500, CDWPerDay: 2000},
		Class950cc:  {Class: Class950cc, FourHour: 11000, OneDay: 15500, TwentyFourHour: 16000, ThirtyTwoHour: 22000, OvertimePerHour: 1700, Additional24h: 13500, CDWPerDay: 2500},
		Class1100cc: {Class: Class1100cc, FourHour: 12000, OneDay: 17000, TwentyFourHour: 17500, ThirtyTwoHour: 24000, OvertimePerHour: 1900, Additional24h: 15000, CDWPerDay: 2500},
		Class1500cc: {Class: Class1500cc, FourHour: 13500, OneDay: 19000, TwentyFourHour: 19500, ThirtyTwoHour: 27000, OvertimePerHour: 2100, Additional24h: 17000, CDWPerDay: 3000},
	}
}

// Lookup returns the rate card for class
func (t RateTable) Lookup(class VehicleClass) (RateCard, error) {
	card, ok := t[class]
	if !ok {
		return RateCard{}, fmt.Errorf("%w: %q", ErrUnknownVehicleClass, class)
	}
	return card, nil
}

// CDWPerDay returns the daily collision damage waiver price for class
func (t RateTable) CDWPerDay(class VehicleClass) (money.Yen, error) {
	card, err := t.Lookup(class)
	if err != nil {
		return 0, err
	}
	return card.CDWPerDay, nil
}

// Cards returns the rate cards in ascending displacement order
func (t RateTable) Cards() []RateCard {
	cards := make([]RateCard, 0, len(t))
	for _, class := range VehicleClasses {
		if card, ok := t[class]; ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// Validate checks every card for non-decreasing tier prices, which keeps
// the rental price non-decreasing in the elapsed hours
func (t RateTable) Validate() error {
	for _, card := range t.Cards() {
		if err := card.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks one card's tier prices
func (r RateCard) Validate() error {
	if IsTwoHourPlanAvailable(r.Class) {
		if r.TwoHour <= 0 || r.TwoHour > r.FourHour {
			return fmt.Errorf("rate card %s: two_hour must be positive and at most four_hour", r.Class)
		}
	} else if r.TwoHour != 0 {
		return fmt.Errorf("rate card %s: two_hour plan is not offered for this class", r.Class)
	}

	if r.FourHour <= 0 || r.OneDay < r.FourHour || r.TwentyFourHour < r.FourHour ||
		r.ThirtyTwoHour < r.OneDay || r.ThirtyTwoHour < r.TwentyFourHour {
		return fmt.Errorf("rate card %s: tier prices must be non-decreasing", r.Class)
	}
	if r.OvertimePerHour <= 0 || r.Additional24h <= 0 || r.CDWPerDay < 0 {
		return fmt.Errorf("rate card %s: overtime, additional day and CDW prices must be set", r.Class)
	}
	return nil
}

// ParseVehicleClass parses a class tag such as "125cc" or "EV"
func ParseVehicleClass(s string) (VehicleClass, error) {
	class := VehicleClass(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range VehicleClasses {
		if class == known {
			return class, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVehicleClass, s)
}
