// Package formulas holds the pure financial formulas shared by every calculator:
// loan amortization, compound growth, return ratios and descriptive statistics.
package formulas

import (
	"math"
)

// Payment frequencies supported by the amortization helpers
const (
	PeriodsAnnual  = 1
	PeriodsMonthly = 12
)

// AmortizationPeriod is one row of an amortization table
type AmortizationPeriod struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// PeriodicRate converts an annual percentage rate into a per-period decimal rate
func PeriodicRate(annualRatePercent float64, periodsPerYear int) float64 {
	if periodsPerYear <= 0 {
		periodsPerYear = PeriodsAnnual
	}
	return annualRatePercent / 100 / float64(periodsPerYear)
}

// PeriodicPayment calculates the fixed payment of a fully amortizing loan.
//
// Formula:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the periodic rate and n the total number of periods.
// A zero rate degenerates to P / n. A non-positive principal or term yields 0.
func PeriodicPayment(principal, annualRatePercent float64, termYears, periodsPerYear int) float64 {
	if principal <= 0 || termYears <= 0 {
		return 0
	}
	if periodsPerYear <= 0 {
		periodsPerYear = PeriodsAnnual
	}

	n := float64(termYears * periodsPerYear)
	r := PeriodicRate(annualRatePercent, periodsPerYear)
	if r == 0 {
		return principal / n
	}

	compounded := math.Pow(1+r, n)
	return principal * r * compounded / (compounded - 1)
}

// MonthlyPayment is PeriodicPayment with twelve periods per year
func MonthlyPayment(principal, annualRatePercent float64, termYears int) float64 {
	return PeriodicPayment(principal, annualRatePercent, termYears, PeriodsMonthly)
}

// AnnualDebtService returns twelve monthly payments
func AnnualDebtService(principal, annualRatePercent float64, termYears int) float64 {
	return MonthlyPayment(principal, annualRatePercent, termYears) * PeriodsMonthly
}

// AmortizationStep advances a loan balance by one period.
// The principal portion is capped at the outstanding balance so the
// balance never goes below zero.
func AmortizationStep(balance, payment, periodicRate float64) (interest, principalPaid, newBalance float64) {
	if balance <= 0 {
		return 0, 0, 0
	}

	interest = balance * periodicRate
	principalPaid = payment - interest
	if principalPaid > balance {
		principalPaid = balance
	}
	newBalance = math.Max(0, balance-principalPaid)
	return interest, principalPaid, newBalance
}

// AmortizationSchedule builds the full period-by-period table.
// The last period retires whatever residual floating-point balance is left,
// so the final balance is exactly zero.
func AmortizationSchedule(principal, annualRatePercent float64, termYears, periodsPerYear int) []AmortizationPeriod {
	if principal <= 0 || termYears <= 0 {
		return []AmortizationPeriod{}
	}
	if periodsPerYear <= 0 {
		periodsPerYear = PeriodsAnnual
	}

	totalPeriods := termYears * periodsPerYear
	payment := PeriodicPayment(principal, annualRatePercent, termYears, periodsPerYear)
	rate := PeriodicRate(annualRatePercent, periodsPerYear)

	schedule := make([]AmortizationPeriod, 0, totalPeriods)
	balance := principal
	for period := 1; period <= totalPeriods; period++ {
		interest, principalPaid, newBalance := AmortizationStep(balance, payment, rate)
		if period == totalPeriods {
			principalPaid = balance
			newBalance = 0
		}

		schedule = append(schedule, AmortizationPeriod{
			Period:    period,
			Payment:   interest + principalPaid,
			Interest:  interest,
			Principal: principalPaid,
			Balance:   newBalance,
		})
		balance = newBalance
	}

	return schedule
}

// RemainingBalance returns the closed-form outstanding balance after periodsPaid payments.
//
//	B = P * ((1+r)^n - (1+r)^p) / ((1+r)^n - 1)
func RemainingBalance(principal, annualRatePercent float64, termYears, periodsPerYear, periodsPaid int) float64 {
	if principal <= 0 || termYears <= 0 {
		return 0
	}
	if periodsPerYear <= 0 {
		periodsPerYear = PeriodsAnnual
	}

	n := termYears * periodsPerYear
	if periodsPaid >= n {
		return 0
	}
	if periodsPaid <= 0 {
		return principal
	}

	r := PeriodicRate(annualRatePercent, periodsPerYear)
	if r == 0 {
		return principal * (1 - float64(periodsPaid)/float64(n))
	}

	total := math.Pow(1+r, float64(n))
	paid := math.Pow(1+r, float64(periodsPaid))
	return principal * (total - paid) / (total - 1)
}

// TotalInterest sums the interest column of a schedule
func TotalInterest(schedule []AmortizationPeriod) float64 {
	total := 0.0
	for _, p := range schedule {
		total += p.Interest
	}
	return total
}
