package lunar_test

import (
	"testing"

	"github.com/tranlunar/amlich/lunar"
)

const ict = 7.0

func TestSolarToLunarTet2024(t *testing.T) {
	lD, lM, lY, lL := lunar.SolarToLunar(10, 2, 2024, ict)
	if lD != 1 || lM != 1 || lY != 2024 || lL {
		t.Errorf("got (%d, %d, %d, %v), want (1, 1, 2024, false)", lD, lM, lY, lL)
	}
}

func TestSolarToLunarMidAutumn2024(t *testing.T) {
	lD, lM, lY, lL := lunar.SolarToLunar(17, 9, 2024, ict)
	if lD != 15 || lM != 8 || lY != 2024 || lL {
		t.Errorf("got (%d, %d, %d, %v), want (15, 8, 2024, false)", lD, lM, lY, lL)
	}
}

// TestSolarToLunar2023LeapBoundary exercises the assembler's leap-month
// detection across the two candidate months bordering 2023's intercalary
// month. 2023 carries a leap 2nd month running 2023-03-22 to 2023-04-19;
// the civil day 2023-02-20 falls in the preceding, non-leap, 2nd month.
func TestSolarToLunar2023LeapBoundary(t *testing.T) {
	cases := []struct {
		dd, mm, yy     int
		lD, lM, lY     int
		lL             bool
	}{
		{20, 2, 2023, 1, 2, 2023, false},
		{22, 3, 2023, 1, 2, 2023, true},
		{19, 4, 2023, 29, 2, 2023, true},
		{20, 4, 2023, 1, 3, 2023, false},
	}
	for _, c := range cases {
		lD, lM, lY, lL := lunar.SolarToLunar(c.dd, c.mm, c.yy, ict)
		if lD != c.lD || lM != c.lM || lY != c.lY || lL != c.lL {
			t.Errorf("SolarToLunar(%d,%d,%d) = (%d,%d,%d,%v), want (%d,%d,%d,%v)",
				c.dd, c.mm, c.yy, lD, lM, lY, lL, c.lD, c.lM, c.lY, c.lL)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for jdn := int64(2451545); jdn < 2451545+366*3; jdn += 7 {
		yy, mm, dd := 0, 0, 0
		// derive a calendar date from jdn with the local helper below,
		// not with package julian.
		yy, mm, dd = calendarFromJDN(jdn)
		lD, lM, lY, lL := lunar.SolarToLunar(dd, mm, yy, ict)
		gd, gm, gy, err := lunar.LunarToSolar(lD, lM, lY, lL, ict)
		if err != nil {
			t.Fatalf("LunarToSolar(%d,%d,%d,%v) error: %v", lD, lM, lY, lL, err)
		}
		if gd != dd || gm != mm || gy != yy {
			t.Errorf("round trip for %04d-%02d-%02d failed: got %04d-%02d-%02d via lunar (%d,%d,%d,%v)",
				yy, mm, dd, gy, gm, gd, lD, lM, lY, lL)
		}
	}
}

func TestLunarToSolarRejectsNonLeapMonth(t *testing.T) {
	// 2024 carries no leap month at all.
	if _, _, _, err := lunar.LunarToSolar(1, 1, 2024, true, ict); err == nil {
		t.Fatal("expected ErrDateNotExist for a leap claim in a common year")
	}
}

func TestLunarToSolarRejectsWrongLeapMonth(t *testing.T) {
	// 2023's leap month is month 2, not month 3.
	if _, _, _, err := lunar.LunarToSolar(1, 3, 2023, true, ict); err == nil {
		t.Fatal("expected ErrDateNotExist for the wrong leap month")
	}
}

func TestLunarToSolarRejectsDayBeyondMonthLength(t *testing.T) {
	// Leap month 2 of 2023 runs 2023-03-22..2023-04-19, 29 days long; day
	// 30 of that month does not exist even though 2023-04-20 itself is a
	// real solar date (it's lunar 3/1).
	if _, _, _, err := lunar.LunarToSolar(30, 2, 2023, true, ict); err == nil {
		t.Fatal("expected ErrDateNotExist for day 30 of a 29-day leap month")
	}
	if _, _, _, err := lunar.LunarToSolar(29, 2, 2023, true, ict); err != nil {
		t.Errorf("day 29 of leap month 2/2023 should exist, got error: %v", err)
	}
}

func TestLunarToSolarRejectsOutOfRangeMonth(t *testing.T) {
	if _, _, _, err := lunar.LunarToSolar(1, 13, 2024, false, ict); err == nil {
		t.Fatal("expected ErrInvalidDate for month 13")
	}
}

func TestEachNewMoon(t *testing.T) {
	var days []int64
	lunar.EachNewMoon(2460310, 2460340, ict)(func(d int64) bool {
		days = append(days, d)
		return true
	})
	if len(days) == 0 {
		t.Fatal("expected at least one New Moon day in range")
	}
	for i := 1; i < len(days); i++ {
		if days[i] <= days[i-1] {
			t.Fatalf("EachNewMoon not strictly increasing at index %d: %v", i, days)
		}
		if days[i]-days[i-1] < 29 || days[i]-days[i-1] > 30 {
			t.Errorf("spacing between consecutive New Moons = %d days, want 29 or 30", days[i]-days[i-1])
		}
	}
}

// calendarFromJDN is a tiny local Gregorian JDN-to-calendar helper used only
// to generate test fixtures, independent of the julian package under test
// transitively via lunar's own dependency on it.
func calendarFromJDN(jdn int64) (y, m, d int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	dd := (4*c + 3) / 1461
	e := c - 1461*dd/4
	mm := (5*e + 2) / 153
	d = int(e - (153*mm+2)/5 + 1)
	m = int(mm + 3 - 12*(mm/10))
	y = int(100*b + dd - 4800 + mm/10)
	return y, m, d
}
