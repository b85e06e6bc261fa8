// Package tax computes annual income tax withholding from progressive
// bracket tables. It is a pure lookup with no state; callers annualize the
// wage, subtract or add their adjustments, and de-annualize the result.
package tax

import "github.com/shopspring/decimal"

// FilingStatus selects the bracket table group. Married-filing-separately
// uses the single tables; a qualifying widow(er) uses the married tables.
type FilingStatus string

const (
	FilingSingle          FilingStatus = "SINGLE"
	FilingMarriedJointly  FilingStatus = "MARRIED_JOINTLY"
	FilingHeadOfHousehold FilingStatus = "HEAD_OF_HOUSEHOLD"
)

// Valid reports whether the value is a known filing status.
func (s FilingStatus) Valid() bool {
	return s == FilingSingle || s == FilingMarriedJointly || s == FilingHeadOfHousehold
}

// Table returns the bracket table for a filing status and dual-income flag.
// Unknown statuses fall back to the single tables, the most conservative
// withholding.
func Table(status FilingStatus, dualIncome bool) []Bracket {
	switch status {
	case FilingMarriedJointly:
		if dualIncome {
			return marriedJointlyDualIncome
		}
		return marriedJointlyStandard
	case FilingHeadOfHousehold:
		if dualIncome {
			return headOfHouseholdDualIncome
		}
		return headOfHouseholdStandard
	default:
		if dualIncome {
			return singleDualIncome
		}
		return singleStandard
	}
}

// Withhold returns the annual withholding for an adjusted annual wage,
// rounded to cents. Negative wages withhold zero.
func Withhold(adjustedAnnualWage decimal.Decimal, status FilingStatus, dualIncome bool) decimal.Decimal {
	wage := adjustedAnnualWage
	if wage.IsNegative() {
		wage = decimal.Zero
	}

	table := Table(status, dualIncome)

	// Highest bracket whose level is at or below the wage.
	row := table[0]
	for _, b := range table {
		if b.LevelAmount.GreaterThan(wage) {
			break
		}
		row = b
	}

	excess := wage.Sub(row.LevelAmount)
	return row.Base.Add(excess.Mul(row.Rate)).Round(2)
}
