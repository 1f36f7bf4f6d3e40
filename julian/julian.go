// Copyright 2013 Sonia Keys
// License: MIT

// Package julian converts between a (year, month, day) calendar triple and
// a Julian Day Number (JDN), the signed integer day count used throughout
// this library as the common time coordinate.
//
// Unlike the ephemeris package, whose formulas work in fractional Julian
// Date, this package works in whole JDN, because the lunar assembler in
// package lunar needs an integer day count and needs the Julian/Gregorian
// branch to fall exactly on 1582-10-15 (JDN 2299161) the way Tondering's
// algorithm places it, rather than on the proleptic Gregorian boundary
// Meeus's CalendarGregorianToJD assumes. See also the closely equivalent
// integer formulation in Dershowitz & Reingold, "Calendrical Calculations".
package julian

import (
	"time"

	"github.com/tranlunar/amlich/internal/base"
)

// GregorianStart is the JDN of 1582-10-15, the first day of the Gregorian
// calendar. JDNFromCalendar results at or after this value are computed
// with the Gregorian leap rule; earlier results use the Julian leap rule.
const GregorianStart = 2299161

// JDNFromCalendar converts a (year, month, day) calendar date to a Julian
// Day Number using Tondering's formula.
//
// The Gregorian branch applies for dates on or after 1582-10-15; earlier
// dates are reduced with the Julian leap-year rule. Negative years and
// years before 1 are accepted as given; the function performs no range
// validation, that is the job of package amlich's constructors.
func JDNFromCalendar(year, month, day int) int64 {
	a := int64(intFloorDiv(14-month, 12))
	y := int64(year) + 4800 - a
	m := int64(month) + 12*a - 3

	if jd := int64(day) + base.FloorDiv64(153*m+2, 5) + 365*y +
		base.FloorDiv64(y, 4) - base.FloorDiv64(y, 100) + base.FloorDiv64(y, 400) - 32045; jd >= GregorianStart {
		return jd
	}
	return int64(day) + base.FloorDiv64(153*m+2, 5) + 365*y + base.FloorDiv64(y, 4) - 32083
}

// CalendarFromJDN converts a Julian Day Number back to a (year, month, day)
// calendar date, choosing the Gregorian or Julian reduction depending on
// which side of 1582-10-15 the JDN falls.
func CalendarFromJDN(jd int64) (year, month, day int) {
	a := jd + 32044
	var b, c int64
	if jd > GregorianStart-1 {
		b = base.FloorDiv64(4*a+3, 146097)
		c = a - base.FloorDiv64(146097*b, 4)
	} else {
		c = jd + 32082
	}
	d := base.FloorDiv64(4*c+3, 1461)
	e := c - base.FloorDiv64(1461*d, 4)
	m := base.FloorDiv64(5*e+2, 153)

	day = int(e - base.FloorDiv64(153*m+2, 5) + 1)
	month = int(m + 3 - 12*base.FloorDiv64(m, 10))
	year = int(100*b + d - 4800 + base.FloorDiv64(m, 10))
	return
}

// LeapYearJulian returns true if year y in the Julian calendar is a leap year.
func LeapYearJulian(y int) bool {
	return y%4 == 0
}

// LeapYearGregorian returns true if year y in the Gregorian calendar is a leap year.
func LeapYearGregorian(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// DayOfWeek determines the day of the week for a given JDN.
//
// The value returned follows the convention of the Go standard library's
// time.Weekday, where 0 represents Sunday.
func DayOfWeek(jd int64) time.Weekday {
	return time.Weekday(base.EMod(jd+1, 7))
}

// TimeFromJDN takes a JDN and returns a Go time.Time value at UTC midnight.
func TimeFromJDN(jd int64) time.Time {
	y, m, d := CalendarFromJDN(jd)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// JDNFromTime takes a Go time.Time and returns its JDN.
//
// Any time-of-day component is truncated; the time zone is honored by
// taking the calendar date in that zone, not by shifting to UTC.
func JDNFromTime(t time.Time) int64 {
	y, m, d := t.Date()
	return JDNFromCalendar(y, int(m), d)
}

func intFloorDiv(x, y int) int {
	q := x / y
	if (x < 0) != (y < 0) && x%y != 0 {
		q--
	}
	return q
}
