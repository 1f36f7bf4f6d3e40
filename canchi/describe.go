package canchi

// Description bundles the three Can-Chi names usually quoted together on a
// Vietnamese lunar calendar page: the year's name, the lunar month's name,
// and the civil day's name.
type Description struct {
	Year, Month, Day string
}

// Describe bundles YearStemBranch, MonthStemBranch, and DayStemBranch for
// a single civil day, given its Julian Day Number and the lunar year and
// month it falls in.
func Describe(jd int64, lunarYear, lunarMonth int) Description {
	return Description{
		Year:  YearStemBranch(lunarYear),
		Month: MonthStemBranch(lunarMonth, lunarYear),
		Day:   DayStemBranch(jd),
	}
}
