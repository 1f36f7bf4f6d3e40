package lunar_test

import (
	"testing"

	"github.com/tranlunar/amlich/lunar"
)

func TestMonthElevenOrdering(t *testing.T) {
	a11 := lunar.MonthEleven(2022, ict)
	b11 := lunar.MonthEleven(2023, ict)
	if b11 <= a11 {
		t.Fatalf("MonthEleven(2023) = %d, want > MonthEleven(2022) = %d", b11, a11)
	}
	// 2023 has a leap month so its lunar year runs long.
	if b11-a11 <= 365 {
		t.Errorf("2023 lunar year length = %d days, want > 365 (it has a leap month)", b11-a11)
	}
}

func TestMonthElevenRegularYear(t *testing.T) {
	a11 := lunar.MonthEleven(2023, ict)
	b11 := lunar.MonthEleven(2024, ict)
	if b11-a11 > 365 {
		t.Errorf("2024 lunar year length = %d days, want <= 365 (no leap month)", b11-a11)
	}
}

func TestLeapMonthOffsetWithinRange(t *testing.T) {
	a11 := lunar.MonthEleven(2022, ict)
	off := lunar.LeapMonthOffset(a11, ict)
	if off < 1 || off > 13 {
		t.Fatalf("LeapMonthOffset = %d, want in [1, 13]", off)
	}
}

func TestSunSegmentRange(t *testing.T) {
	jdn := lunar.NewMoonDay(1000, ict)
	seg := lunar.SunSegment(jdn, ict)
	if seg < 0 || seg > 11 {
		t.Errorf("SunSegment = %d, want in [0, 11]", seg)
	}
}

func TestNewMoonDayMonotonic(t *testing.T) {
	for k := int64(-500); k < 500; k += 37 {
		a := lunar.NewMoonDay(k, ict)
		b := lunar.NewMoonDay(k+1, ict)
		if b-a < 29 || b-a > 30 {
			t.Errorf("NewMoonDay(%d)..NewMoonDay(%d) spacing = %d days, want 29 or 30", k, k+1, b-a)
		}
	}
}
