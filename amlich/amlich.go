// Copyright 2013 Sonia Keys
// License: MIT

// Package amlich is the public surface of the Vietnamese lunar calendar
// engine: immutable solar and lunar date values, their conversions, and
// the cultural names (Can-Chi, Solar Terms, Lucky Hours) derived from
// them. "Âm lịch" is Vietnamese for "lunar calendar".
package amlich

import (
	"time"

	"github.com/pkg/errors"

	"github.com/tranlunar/amlich/canchi"
	"github.com/tranlunar/amlich/julian"
	"github.com/tranlunar/amlich/lunar"
	"github.com/tranlunar/amlich/luckyhour"
	"github.com/tranlunar/amlich/solarterm"
)

// Sentinel errors identifying the three ways a date can be rejected.
// Construction errors wrap one of these with errors.Wrapf so callers can
// test with errors.Is while still getting a descriptive message.
var (
	// ErrInvalidDate means a solar or lunar component is out of its
	// possible range, or a day exceeds its month's length.
	ErrInvalidDate = errors.New("amlich: invalid date")

	// ErrOutOfRange means the year falls outside the supported window
	// 1900-2100. Results outside this window are still computed but are
	// advisory only (see MinYear and MaxYear).
	ErrOutOfRange = errors.New("amlich: year out of supported range")

	// ErrDateNotExist means a lunar quadruple names a leap month that did
	// not occur in its lunar year, or a day beyond that month's length.
	ErrDateNotExist = lunar.ErrDateNotExist
)

// MinYear and MaxYear bound the Gregorian year range §3 requires correct
// results for. Dates outside this window still compute deterministically
// but are not guaranteed accurate (ephemeris.SunLongitude's low-accuracy
// series and the Tondering JDN formula are not validated against
// independent data beyond it), and NewSolarDate reports ErrOutOfRange for
// them. NewLunarDate does not check the year range.
const (
	MinYear = 1900
	MaxYear = 2100
)

// Location carries a UTC offset in hours, the tz parameter every §4
// formula takes. ICT (Indochina Time, UTC+7) is the package default.
type Location struct {
	Name        string
	OffsetHours float64
}

// ICT is Indochina Time, UTC+7, the default Location for every
// constructor and method in this package that does not take one
// explicitly.
var ICT = Location{Name: "Indochina Time", OffsetHours: 7.0}

func daysInMonth(y, m int) int {
	switch m {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		leap := false
		if julian.JDNFromCalendar(y, 3, 1) >= julian.GregorianStart {
			leap = julian.LeapYearGregorian(y)
		} else {
			leap = julian.LeapYearJulian(y)
		}
		if leap {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func checkYearRange(y int) error {
	if y < MinYear || y > MaxYear {
		return errors.Wrapf(ErrOutOfRange, "year %d outside %d-%d", y, MinYear, MaxYear)
	}
	return nil
}

// SolarDate is an immutable Gregorian (or, before 1582-10-15, Julian)
// calendar date, comparable by (Y, M, D).
type SolarDate struct {
	Y, M, D int
}

// NewSolarDate validates and constructs a SolarDate. It returns
// ErrInvalidDate if month or day is out of range for the given month and
// year, or ErrOutOfRange if the year falls outside [MinYear, MaxYear].
func NewSolarDate(y, m, d int) (SolarDate, error) {
	if err := checkYearRange(y); err != nil {
		return SolarDate{}, err
	}
	if m < 1 || m > 12 {
		return SolarDate{}, errors.Wrapf(ErrInvalidDate, "month %d out of range", m)
	}
	if max := daysInMonth(y, m); d < 1 || d > max {
		return SolarDate{}, errors.Wrapf(ErrInvalidDate, "day %d out of range for %04d-%02d (max %d)", d, y, m, max)
	}
	return SolarDate{Y: y, M: m, D: d}, nil
}

// SolarDateFromJDN constructs the SolarDate identified by Julian Day
// Number jd.
func SolarDateFromJDN(jd int64) SolarDate {
	y, m, d := julian.CalendarFromJDN(jd)
	return SolarDate{Y: y, M: m, D: d}
}

// SolarDateFromTime constructs a SolarDate from t's calendar date
// component, ignoring its time-of-day and location (the caller is
// expected to have already normalized t to the zone they want the
// calendar date taken in).
func SolarDateFromTime(t time.Time) SolarDate {
	y, m, d := t.Date()
	return SolarDate{Y: y, M: int(m), D: d}
}

// JDN returns the Julian Day Number of d.
func (d SolarDate) JDN() int64 {
	return julian.JDNFromCalendar(d.Y, d.M, d.D)
}

// Time returns d as a time.Time at UTC midnight.
func (d SolarDate) Time() time.Time {
	return julian.TimeFromJDN(d.JDN())
}

// Weekday returns the day of the week d falls on.
func (d SolarDate) Weekday() time.Weekday {
	return julian.DayOfWeek(d.JDN())
}

// ToLunar converts d to its lunisolar equivalent under loc.
func (d SolarDate) ToLunar(loc Location) LunarDate {
	lD, lM, lY, lL := lunar.SolarToLunar(d.D, d.M, d.Y, loc.OffsetHours)
	return LunarDate{Y: lY, M: lM, D: lD, L: lL}
}

// SolarTermName returns the name of the Solar Term whose arc contains the
// Sun's apparent longitude on d, under loc.
func (d SolarDate) SolarTermName(loc Location) string {
	return solarterm.Name(solarterm.Segment24(d.JDN()+1, loc.OffsetHours))
}

// LunarDate is an immutable lunisolar calendar date: lunar year, lunar
// month (1-12), lunar day, and whether the month is intercalary.
// Comparable by (Y, M, D, L).
type LunarDate struct {
	Y, M, D int
	L       bool
}

// NewLunarDate validates and constructs a LunarDate for zone loc. It
// returns ErrInvalidDate if month or day is out of its possible range, or
// ErrDateNotExist if leap is true but month m was not the intercalary
// month of lunar year y.
func NewLunarDate(y, m, d int, leap bool, loc Location) (LunarDate, error) {
	if _, _, _, err := lunar.LunarToSolar(d, m, y, leap, loc.OffsetHours); err != nil {
		if errors.Is(err, lunar.ErrInvalidDate) {
			return LunarDate{}, errors.Wrapf(ErrInvalidDate, "day %d month %d", d, m)
		}
		return LunarDate{}, err
	}
	return LunarDate{Y: y, M: m, D: d, L: leap}, nil
}

// LunarDateFromSolar converts solar date (y, m, d) to its lunisolar
// equivalent under loc.
func LunarDateFromSolar(y, m, d int, loc Location) LunarDate {
	lD, lM, lY, lL := lunar.SolarToLunar(d, m, y, loc.OffsetHours)
	return LunarDate{Y: lY, M: lM, D: lD, L: lL}
}

// LunarDateFromTime converts t's calendar date to its lunisolar
// equivalent under loc.
func LunarDateFromTime(t time.Time, loc Location) LunarDate {
	y, m, d := t.Date()
	return LunarDateFromSolar(y, int(m), d, loc)
}

// ToSolar converts d back to its Gregorian/Julian calendar date under loc.
func (d LunarDate) ToSolar(loc Location) (SolarDate, error) {
	dd, mm, yy, err := lunar.LunarToSolar(d.D, d.M, d.Y, d.L, loc.OffsetHours)
	if err != nil {
		return SolarDate{}, err
	}
	return SolarDate{Y: yy, M: mm, D: dd}, nil
}

// IsTet reports whether d is the first day of the lunar year (Tết
// Nguyên Đán): lunar month 1, day 1, not a leap month.
func (d LunarDate) IsTet() bool {
	return d.M == 1 && d.D == 1 && !d.L
}

// MonthName renders d's lunar month as "tháng <n>", or "tháng <n> nhuận"
// if it is the intercalary month.
func (d LunarDate) MonthName() string {
	if d.L {
		return monthName(d.M) + " nhuận"
	}
	return monthName(d.M)
}

func monthName(m int) string {
	digits := [...]string{"một", "hai", "ba", "tư", "năm", "sáu", "bảy", "tám", "chín", "mười", "mười một", "mười hai"}
	if m < 1 || m > 12 {
		return "tháng ?"
	}
	return "tháng " + digits[m-1]
}

// YearStemBranch, MonthStemBranch, and DayStemBranch return the Can-Chi
// names for d's lunar year, lunar month, and the civil day d falls on
// (the civil day requires loc to locate d's own JDN).
func (d LunarDate) YearStemBranch() string {
	return canchi.YearStemBranch(d.Y)
}

func (d LunarDate) MonthStemBranch() string {
	return canchi.MonthStemBranch(d.M, d.Y)
}

func (d LunarDate) DayStemBranch(loc Location) (string, error) {
	s, err := d.ToSolar(loc)
	if err != nil {
		return "", err
	}
	return canchi.DayStemBranch(s.JDN()), nil
}

// HourStemBranch returns the Can-Chi name of the 2-hour period containing
// hour h on the civil day d falls on.
func (d LunarDate) HourStemBranch(h int, loc Location) (string, error) {
	s, err := d.ToSolar(loc)
	if err != nil {
		return "", err
	}
	return canchi.HourStemBranch(s.JDN(), h), nil
}

// SolarTermName returns the name of the Solar Term for the civil day d
// falls on.
func (d LunarDate) SolarTermName(loc Location) (string, error) {
	s, err := d.ToSolar(loc)
	if err != nil {
		return "", err
	}
	return s.SolarTermName(loc), nil
}

// LuckyHours returns the six auspicious 2-hour windows for the civil day
// d falls on.
func (d LunarDate) LuckyHours(loc Location) ([]luckyhour.Window, error) {
	s, err := d.ToSolar(loc)
	if err != nil {
		return nil, err
	}
	return luckyhour.LuckyHours(s.JDN()), nil
}

// Describe bundles d's year, month, and day Can-Chi names in one call.
func (d LunarDate) Describe(loc Location) (canchi.Description, error) {
	s, err := d.ToSolar(loc)
	if err != nil {
		return canchi.Description{}, err
	}
	return canchi.Describe(s.JDN(), d.Y, d.M), nil
}
