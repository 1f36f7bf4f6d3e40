// Package lunar assembles Vietnamese lunisolar month boundaries from the
// raw ephemeris (package ephemeris) and JDN (package julian) layers, and
// converts solar dates to lunar quadruples and back.
//
// The three functions memoized here (newMoon, NewMoonDay, MonthEleven) are
// the only state lunar carries; all three are pure given their arguments,
// so the caches are opaque accelerators, never a source of observable
// behavior (see internal/cache).
package lunar

import (
	"math"

	"github.com/tranlunar/amlich/ephemeris"
	"github.com/tranlunar/amlich/internal/cache"
)

// SynodicMonth is the mean length, in days, of a lunation, Meeus (49.1)'s
// 1/ck coefficient.
const SynodicMonth = 29.530588853

// Epoch2415021 is the Julian Day of the mean New Moon at k=0, the anchor
// every offset computation in this package and in the expanded §4.4
// formulas is taken relative to.
const Epoch2415021 = 2415021.076998695

var newMoonCache = cache.New[int64, float64](512)
var newMoonDayCache = cache.New[newMoonDayKey, int64](256)
var monthElevenCache = cache.New[monthElevenKey, int64](128)

type newMoonDayKey struct {
	k  int64
	tz float64
}

type monthElevenKey struct {
	year int
	tz   float64
}

// newMoon returns the memoized Julian Day of the k-th mean New Moon.
func newMoon(k int64) float64 {
	return newMoonCache.GetOrCompute(k, func() float64 {
		return ephemeris.NewMoon(float64(k))
	})
}

// NewMoonDay returns the JDN of the civil day, in the zone tz hours east
// of UTC, that contains the k-th mean New Moon instant.
func NewMoonDay(k int64, tz float64) int64 {
	return newMoonDayCache.GetOrCompute(newMoonDayKey{k, tz}, func() int64 {
		return int64(math.Floor(newMoon(k) + 0.5 + tz/24))
	})
}

// SunSegment returns which of the twelve 30° ecliptic arcs the Sun occupies
// at local midnight (tz hours east of UTC) opening the civil day dayNumber,
// as an integer 0..11. Segment 9 is the arc beginning at the Winter
// Solstice; this is not memoized, segments are only ever evaluated a
// handful of times per MonthEleven/LeapMonthOffset call and the underlying
// ephemeris.SunLongitude call is cheap.
func SunSegment(dayNumber int64, tz float64) int {
	l := ephemeris.SunLongitude(float64(dayNumber) - 0.5 - tz/24)
	seg := int(math.Floor(l.Rad() * 6 / math.Pi))
	seg %= 12
	if seg < 0 {
		seg += 12
	}
	return seg
}

// SunSegment24 returns which of the twenty-four 15° ecliptic arcs the Sun
// occupies at local midnight (tz hours east of UTC) opening the civil day
// dayNumber, as an integer 0..23. This is the same quantity as SunSegment
// at twice the angular resolution, used by package solarterm to name the
// 24 Solar Terms rather than just the 12 month-numbering arcs.
func SunSegment24(dayNumber int64, tz float64) int {
	l := ephemeris.SunLongitude(float64(dayNumber) - 0.5 - tz/24)
	seg := int(math.Floor(l.Rad() * 12 / math.Pi))
	seg %= 24
	if seg < 0 {
		seg += 24
	}
	return seg
}

// MonthEleven returns the JDN of the New-Moon day that begins the lunar
// month containing the Winter Solstice of Gregorian year y, under zone tz.
// Every lunar year is anchored to this month (always labeled month 11).
func MonthEleven(y int, tz float64) int64 {
	return monthElevenCache.GetOrCompute(monthElevenKey{y, tz}, func() int64 {
		off := jdnDec31(y) - 2415021
		k := int64(math.Floor(float64(off) / SynodicMonth))
		nm := NewMoonDay(k, tz)
		if SunSegment(nm, tz) >= 9 {
			nm = NewMoonDay(k-1, tz)
		}
		return nm
	})
}

// LeapMonthOffset returns the offset i in [1, 13] of the intercalary month
// relative to the month-11 anchor a11, for a lunar year known to have 13
// months (see lunar.go's use of b11-a11 > 365 as that test).
//
// The intercalary month is the first one after month 11 whose arc segment
// at its own New-Moon day matches the arc segment of the New Moon day that
// follows it: that equality means the Sun's longitude never crossed a 30°
// boundary during that month, i.e. the month contains no Major Solar Term.
func LeapMonthOffset(a11 int64, tz float64) int {
	k := int64(math.Floor((float64(a11)-Epoch2415021)/SynodicMonth + 0.5))
	var last int
	for i := 1; i <= 14; i++ {
		arc := SunSegment(NewMoonDay(k+int64(i), tz), tz)
		if i >= 2 && arc == last {
			return i - 1
		}
		last = arc
	}
	return 13
}
