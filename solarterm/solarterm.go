// Package solarterm names the 24 Solar Terms (Tiết Khí), the Chinese and
// Vietnamese division of the tropical year into 15° arcs of apparent solar
// longitude, alternating "Major" terms (the 12 arcs that also delimit the
// lunar month numbering's 30° segments, see package lunar) with "minor"
// terms that bisect them.
package solarterm

import (
	"github.com/tranlunar/amlich/lunar"
	"github.com/tranlunar/amlich/vi"
)

// Terms holds the 24 Solar Term names in the order the Sun passes through
// their arcs over a year, starting from Xuân phân (Vernal Equinox,
// longitude 0°). Even indices are Major terms; odd indices are minor
// terms.
var Terms = [24]string{
	"Xuân phân", "Thanh minh", "Cốc vũ", "Lập hạ", "Tiểu mãn", "Mang chủng",
	"Hạ chí", "Tiểu thử", "Đại thử", "Lập thu", "Xử thử", "Bạch lộ",
	"Thu phân", "Hàn lộ", "Sương giáng", "Lập đông", "Tiểu tuyết", "Đại tuyết",
	"Đông chí", "Tiểu hàn", "Đại hàn", "Lập xuân", "Vũ thủy", "Kinh trập",
}

// IsMajor reports whether Solar Term index i (0-23) is one of the twelve
// Major terms (Trung Khí) rather than a minor term (Tiết Khí proper).
func IsMajor(i int) bool {
	return i%2 == 0
}

// Segment24 returns the index (0-23) into Terms of the Solar Term whose
// 15° arc contains the Sun's apparent longitude at local midnight opening
// civil day dayNumber, under zone tz hours east of UTC.
func Segment24(dayNumber int64, tz float64) int {
	return lunar.SunSegment24(dayNumber, tz)
}

// Name returns the name of Solar Term index i (0-23), taken modulo 24.
func Name(i int) string {
	i %= 24
	if i < 0 {
		i += 24
	}
	return Terms[i]
}

// Index returns the index into Terms matching name, accepting decomposed
// Unicode and accent-insensitive input. It returns -1 if name matches no
// term.
func Index(name string) int {
	return vi.Lookup(Terms[:], name)
}
