package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestWithholdZeroAndNegativeWage(t *testing.T) {
	assert.True(t, Withhold(decimal.Zero, FilingSingle, false).IsZero())
	assert.True(t, Withhold(d("-1200.50"), FilingSingle, false).IsZero())
	assert.True(t, Withhold(d("-1"), FilingMarriedJointly, true).IsZero())
}

func TestWithholdBracketBoundaries(t *testing.T) {
	// Exactly at a bracket floor the excess is zero: withholding is the base.
	assert.True(t, Withhold(d("5250"), FilingSingle, false).IsZero())
	assert.Equal(t, "1100", Withhold(d("16250"), FilingSingle, false).String())
	assert.Equal(t, "1100", Withhold(d("23200"), FilingHeadOfHousehold, false).String())

	// Just below the floor the previous bracket applies.
	assert.Equal(t, "1099.9", Withhold(d("16249"), FilingSingle, false).String())
}

func TestWithholdWithinBracket(t *testing.T) {
	// 1100 + (20000-16250)*0.12 = 1550
	assert.Equal(t, "1550", Withhold(d("20000"), FilingSingle, false).String())

	// 4907 + (50000-47975)*0.22 = 5352.50
	assert.Equal(t, "5352.5", Withhold(d("50000"), FilingSingle, false).String())

	// 2200 + (100000-36800)*0.12 = 9784
	assert.Equal(t, "9784", Withhold(d("100000"), FilingMarriedJointly, false).String())
}

func TestWithholdDualIncomeVariant(t *testing.T) {
	standard := Withhold(d("20000"), FilingSingle, false)
	dual := Withhold(d("20000"), FilingSingle, true)

	// 550 + (20000-11975)*0.12 = 1513
	assert.Equal(t, "1513", dual.String())
	assert.True(t, dual.GreaterThan(standard), "dual-income tables withhold earlier")
}

func TestWithholdRoundsToCents(t *testing.T) {
	// (10000.333-5250)*0.10 = 475.0333
	assert.Equal(t, "475.03", Withhold(d("10000.333"), FilingSingle, false).String())
}

func TestWithholdTopBracket(t *testing.T) {
	// 174438.25 + (600000-583375)*0.37 = 180589.50
	assert.Equal(t, "180589.5", Withhold(d("600000"), FilingSingle, false).String())
}

func TestTableUnknownStatusFallsBackToSingle(t *testing.T) {
	assert.Equal(t, Table(FilingSingle, false), Table(FilingStatus("SOMETHING_ELSE"), false))
	assert.Equal(t, Table(FilingSingle, true), Table(FilingStatus(""), true))
}

func TestTablesAreInternallyConsistent(t *testing.T) {
	// Each base must equal the cumulative withholding at the bracket floor,
	// so the function is continuous across bracket boundaries.
	for _, tc := range []struct {
		name   string
		status FilingStatus
		dual   bool
	}{
		{"single standard", FilingSingle, false},
		{"single dual", FilingSingle, true},
		{"married standard", FilingMarriedJointly, false},
		{"married dual", FilingMarriedJointly, true},
		{"hoh standard", FilingHeadOfHousehold, false},
		{"hoh dual", FilingHeadOfHousehold, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			table := Table(tc.status, tc.dual)
			for i := 1; i < len(table); i++ {
				prev, cur := table[i-1], table[i]
				expected := prev.Base.Add(cur.LevelAmount.Sub(prev.LevelAmount).Mul(prev.Rate))
				assert.True(t, expected.Equal(cur.Base),
					"bracket %d: base %s, cumulative at floor %s", i, cur.Base, expected)
			}
		})
	}
}
