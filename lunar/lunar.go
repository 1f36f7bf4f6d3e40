package lunar

import (
	"math"

	"github.com/pkg/errors"

	"github.com/tranlunar/amlich/julian"
)

// Sentinel errors returned by LunarToSolar.
var (
	// ErrInvalidDate means the (day, month, year, leap) quadruple cannot
	// denote any lunar date under the given rules (day or month out of its
	// possible range).
	ErrInvalidDate = errors.New("lunar: invalid date")

	// ErrDateNotExist means the quadruple is well-formed but leap is true
	// for a month that was not, in fact, intercalary that lunar year, or
	// the day exceeds the actual length of the month it names.
	ErrDateNotExist = errors.New("lunar: lunar date does not exist")
)

func jdnDec31(y int) int64 {
	return julian.JDNFromCalendar(y, 12, 31)
}

// SolarToLunar converts the Gregorian calendar date (dd, mm, yy) to its
// lunisolar equivalent under zone tz (hours east of UTC), returning the
// lunar day, month, year and whether that month is intercalary.
func SolarToLunar(dd, mm, yy int, tz float64) (lD, lM, lY int, lL bool) {
	day := julian.JDNFromCalendar(yy, mm, dd)
	k := int64(math.Floor((float64(day) - Epoch2415021) / SynodicMonth))

	monthStart := NewMoonDay(k+1, tz)
	if monthStart > day {
		monthStart = NewMoonDay(k, tz)
	}

	a11 := MonthEleven(yy, tz)
	b11 := a11
	if a11 >= monthStart {
		lY = yy
		a11 = MonthEleven(yy-1, tz)
	} else {
		lY = yy + 1
		b11 = MonthEleven(yy+1, tz)
	}

	lD = int(day - monthStart + 1)
	diff := int((monthStart - a11) / 29)
	lM = diff + 11

	if b11-a11 > 365 {
		lo := LeapMonthOffset(a11, tz)
		if diff >= lo {
			lM = diff + 10
		}
		if diff == lo {
			lL = true
		}
	}

	if lM > 12 {
		lM -= 12
	}
	if lM >= 11 && diff < 4 {
		lY--
	}
	return lD, lM, lY, lL
}

// LunarToSolar converts a lunisolar date back to its Gregorian calendar
// date under zone tz. It returns ErrDateNotExist if leap is true but lM
// was not, in fact, the intercalary month of lunar year lY.
func LunarToSolar(lD, lM, lY int, leap bool, tz float64) (dd, mm, yy int, err error) {
	if lM < 1 || lM > 12 || lD < 1 || lD > 30 {
		return 0, 0, 0, errors.Wrapf(ErrInvalidDate, "day %d month %d", lD, lM)
	}

	var a11, b11 int64
	if lM < 11 {
		a11 = MonthEleven(lY-1, tz)
		b11 = MonthEleven(lY, tz)
	} else {
		a11 = MonthEleven(lY, tz)
		b11 = MonthEleven(lY+1, tz)
	}

	k := int64(math.Floor(0.5 + (float64(a11)-Epoch2415021)/SynodicMonth))

	off := lM - 11
	if off < 0 {
		off += 12
	}

	if b11-a11 > 365 {
		leapOff := LeapMonthOffset(a11, tz)
		leapMonth := leapOff - 2
		if leapMonth < 0 {
			leapMonth += 12
		}
		if leap && lM != leapMonth {
			return 0, 0, 0, errors.Wrapf(ErrDateNotExist, "lunar year %d has no leap month %d", lY, lM)
		}
		if leap || off >= leapOff {
			off++
		}
	} else if leap {
		return 0, 0, 0, errors.Wrapf(ErrDateNotExist, "lunar year %d has no leap month", lY)
	}

	monthStart := NewMoonDay(k+int64(off), tz)
	monthLength := NewMoonDay(k+int64(off)+1, tz) - monthStart
	if int64(lD) > monthLength {
		return 0, 0, 0, errors.Wrapf(ErrDateNotExist, "lunar month %d/%d has only %d days", lM, lY, monthLength)
	}

	year, month, day := julian.CalendarFromJDN(monthStart + int64(lD) - 1)
	return day, month, year, nil
}
