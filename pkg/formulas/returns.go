package formulas

import "math"

// AnnualizedReturnFloor is the value reported when losses reach or exceed the
// amount invested; the annualization root is undefined below that point.
const AnnualizedReturnFloor = -100.0

// NOI is net operating income: income minus operating expenses, excluding debt service
func NOI(annualIncome, operatingExpenses float64) float64 {
	return annualIncome - operatingExpenses
}

// CapRate returns NOI as a percentage of the purchase price
func CapRate(noi, purchasePrice float64) float64 {
	if purchasePrice <= 0 {
		return 0
	}
	return noi / purchasePrice * 100
}

// CashOnCash returns the first-year cash flow as a percentage of cash invested
func CashOnCash(annualCashFlow, cashInvested float64) float64 {
	if cashInvested <= 0 {
		return 0
	}
	return annualCashFlow / cashInvested * 100
}

// AnnualizedReturn converts a cumulative return into a yearly rate, as a percentage.
//
//	((totalReturn / invested) + 1)^(1/years) - 1
//
// When the loss wipes out the whole investment the base is <= 0 and the result
// is clamped to AnnualizedReturnFloor.
func AnnualizedReturn(totalReturn, cashInvested float64, years int) float64 {
	if years <= 0 || cashInvested <= 0 {
		return 0
	}

	base := totalReturn/cashInvested + 1
	if base <= 0 {
		return AnnualizedReturnFloor
	}
	return (math.Pow(base, 1/float64(years)) - 1) * 100
}

// GrossRentalYield is annual rent as a percentage of the property price
func GrossRentalYield(annualRent, price float64) float64 {
	if price <= 0 {
		return 0
	}
	return annualRent / price * 100
}

// PriceToRentRatio is price divided by annual rent
func PriceToRentRatio(price, annualRent float64) float64 {
	if annualRent <= 0 {
		return 0
	}
	return price / annualRent
}

// DebtServiceCoverage is NOI divided by annual debt service
func DebtServiceCoverage(noi, annualDebtService float64) *float64 {
	if annualDebtService <= 0 {
		return nil
	}
	dscr := noi / annualDebtService
	return &dscr
}
