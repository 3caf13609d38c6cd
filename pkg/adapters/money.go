package adapters

import "github.com/shopspring/decimal"

const (
	moneyPlaces = 2
	ratePlaces  = 4
)

func roundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(moneyPlaces).InexactFloat64()
}

func roundMoneyPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := roundMoney(*v)
	return &r
}

func roundRate(v float64) float64 {
	return decimal.NewFromFloat(v).Round(ratePlaces).InexactFloat64()
}

// sumMoney adds already rounded amounts without float drift.
func sumMoney(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(moneyPlaces).InexactFloat64()
}
