// Package canchi names dates in the sexagenary (Can-Chi, "Stem-Branch")
// cycle used throughout the Vietnamese lunar calendar: ten Heavenly Stems
// (Can) crossed with twelve Earthly Branches (Chi) produce a repeating
// 60-term cycle applied independently to years, lunar months, civil days,
// and two-hour periods of the day.
package canchi

import (
	"fmt"

	"github.com/tranlunar/amlich/internal/base"
	"github.com/tranlunar/amlich/vi"
)

// Stems holds the ten Heavenly Stems in their canonical cycle order.
var Stems = [10]string{
	"Giáp", "Ất", "Bính", "Đinh", "Mậu",
	"Kỷ", "Canh", "Tân", "Nhâm", "Quý",
}

// Branches holds the twelve Earthly Branches in their canonical cycle
// order, the same order used by package luckyhour to index two-hour
// periods of the day.
var Branches = [12]string{
	"Tý", "Sửu", "Dần", "Mão", "Thìn", "Tỵ",
	"Ngọ", "Mùi", "Thân", "Dậu", "Tuất", "Hợi",
}

// StemIndex returns the index into Stems matching name, accepting
// decomposed Unicode and accent-insensitive input (so "giap" matches
// "Giáp"). It returns -1 if name does not match any Stem.
func StemIndex(name string) int {
	return vi.Lookup(Stems[:], name)
}

// BranchIndex returns the index into Branches matching name, with the same
// accent- and case-insensitive fallback as StemIndex.
func BranchIndex(name string) int {
	return vi.Lookup(Branches[:], name)
}

// Name returns the "Stem Branch" name for a stem index and a branch index,
// each taken modulo their respective cycle lengths.
func Name(stem, branch int64) string {
	return fmt.Sprintf("%s %s", Stems[base.EMod(stem, 10)], Branches[base.EMod(branch, 12)])
}

// YearStemBranch returns the Can-Chi name of lunar/Gregorian year y.
//
// The cycle is pinned so that y=1984 (a Giáp Tý year, the start of the
// current 60-year cycle) names stem 0, branch 0.
func YearStemBranch(y int) string {
	return Name(int64(y)+6, int64(y)+8)
}

// MonthStemBranch returns the Can-Chi name of lunar month lM of lunar
// year lY. The branch cycles fixed to the month number (month 11 is
// always Tý); the stem derives from the year's stem per the traditional
// five-stem-pairs-per-branch rule.
func MonthStemBranch(lM, lY int) string {
	stem := int64(lY)*12 + int64(lM) + 3
	branch := int64(lM) + 1
	return Name(stem, branch)
}

// DayStemBranch returns the Can-Chi name of the civil day identified by
// Julian Day Number jd.
func DayStemBranch(jd int64) string {
	return Name(jd+9, jd+1)
}

// HourStemBranch returns the Can-Chi name of the two-hour period
// containing hour h (0-23, Giờ Tý spans 23:00-00:59) on the civil day
// identified by Julian Day Number jd.
//
// The hour stem follows the traditional "five rats" rule: which of the
// five day-stem pairs (Giáp/Kỷ, Ất/Canh, Bính/Tân, Đinh/Nhâm, Mậu/Quý) the
// day falls in fixes the stem of its own Tý hour, and the stem advances
// one per branch from there.
func HourStemBranch(jd int64, h int) string {
	branch := base.EMod(int64(h)+1, 24) / 2
	dayStem := base.EMod(jd+9, 10)
	stem := base.EMod(dayStem%5*2+branch, 10)
	return Name(stem, branch)
}
