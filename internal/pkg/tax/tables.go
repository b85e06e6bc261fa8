package tax

import "github.com/shopspring/decimal"

// Bracket is one row of a percentage-method withholding table: for an
// adjusted annual wage at or above LevelAmount, the annual withholding is
// Base plus Rate times the excess over LevelAmount.
type Bracket struct {
	LevelAmount decimal.Decimal
	Base        decimal.Decimal
	Rate        decimal.Decimal
}

func bracket(level, base, rate string) Bracket {
	return Bracket{
		LevelAmount: decimal.RequireFromString(level),
		Base:        decimal.RequireFromString(base),
		Rate:        decimal.RequireFromString(rate),
	}
}

// The tables below are a replaceable lookup, swapped out when the withholding
// schedules change. Rows are ordered by ascending LevelAmount; each base is
// the cumulative withholding at the bracket floor.

var singleStandard = []Bracket{
	bracket("0", "0", "0"),
	bracket("5250", "0", "0.10"),
	bracket("16250", "1100", "0.12"),
	bracket("47975", "4907", "0.22"),
	bracket("100625", "16490", "0.24"),
	bracket("187350", "37304", "0.32"),
	bracket("236500", "53032", "0.35"),
	bracket("583375", "174438.25", "0.37"),
}

var singleDualIncome = []Bracket{
	bracket("0", "0", "0"),
	bracket("6475", "0", "0.10"),
	bracket("11975", "550", "0.12"),
	bracket("27825", "2452", "0.22"),
	bracket("54150", "8243.50", "0.24"),
	bracket("97525", "18653.50", "0.32"),
	bracket("122100", "26517.50", "0.35"),
	bracket("295988", "87378.30", "0.37"),
}

var marriedJointlyStandard = []Bracket{
	bracket("0", "0", "0"),
	bracket("14800", "0", "0.10"),
	bracket("36800", "2200", "0.12"),
	bracket("100250", "9814", "0.22"),
	bracket("205550", "32980", "0.24"),
	bracket("373000", "73168", "0.32"),
	bracket("467700", "103472", "0.35"),
	bracket("693750", "182589.50", "0.37"),
}

var marriedJointlyDualIncome = []Bracket{
	bracket("0", "0", "0"),
	bracket("12950", "0", "0.10"),
	bracket("23950", "1100", "0.12"),
	bracket("55650", "4904", "0.22"),
	bracket("108350", "16498", "0.24"),
	bracket("203650", "39370", "0.32"),
	bracket("250900", "54490", "0.35"),
	bracket("363950", "94057.50", "0.37"),
}

var headOfHouseholdStandard = []Bracket{
	bracket("0", "0", "0"),
	bracket("12200", "0", "0.10"),
	bracket("23200", "1100", "0.12"),
	bracket("57850", "5258", "0.22"),
	bracket("93300", "13057", "0.24"),
	bracket("180050", "33877", "0.32"),
	bracket("226750", "48821", "0.35"),
	bracket("576625", "171277.25", "0.37"),
}

var headOfHouseholdDualIncome = []Bracket{
	bracket("0", "0", "0"),
	bracket("9700", "0", "0.10"),
	bracket("15200", "550", "0.12"),
	bracket("32525", "2629", "0.22"),
	bracket("54250", "7408.50", "0.24"),
	bracket("97625", "17818.50", "0.32"),
	bracket("120975", "25290.50", "0.35"),
	bracket("295875", "86505.50", "0.37"),
}
