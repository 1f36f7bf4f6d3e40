package luckyhour_test

import (
	"testing"

	"github.com/tranlunar/amlich/luckyhour"
)

// TestLuckyHoursTyDayBranch exercises the {Tý, Ngọ} pattern group against
// the rotated reading: the day-branch-group's starting Chi advances with
// the group, so "110100101100" on a Tý-branch day names segments starting
// from Thìn, not segment 0 directly.
func TestLuckyHoursTyDayBranch(t *testing.T) {
	var jd int64 = 11 // (11+1) mod 12 == 0 -> day branch Tý
	got := luckyhour.LuckyHours(jd)

	want := []string{"Tý", "Sửu", "Thìn", "Tỵ", "Mùi", "Tuất"}
	if len(got) != len(want) {
		t.Fatalf("LuckyHours returned %d windows, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range got {
		if w.Branch != want[i] {
			t.Errorf("window %d branch = %q, want %q", i, w.Branch, want[i])
		}
	}
}

func TestLuckyHoursAlwaysSix(t *testing.T) {
	for jd := int64(0); jd < 12; jd++ {
		if got := luckyhour.LuckyHours(jd); len(got) != 6 {
			t.Errorf("LuckyHours(%d) returned %d windows, want 6", jd, len(got))
		}
	}
}

func TestLuckyHoursTySegmentWrapsMidnight(t *testing.T) {
	for _, w := range luckyhour.LuckyHours(11) {
		if w.Branch == "Tý" {
			if w.Start != 23 || w.End != 1 {
				t.Errorf("Tý window = [%d, %d), want [23, 1)", w.Start, w.End)
			}
			return
		}
	}
	t.Fatal("Tý window not found for a Tý-branch day")
}

func TestLuckyHoursPeriodicInDayBranch(t *testing.T) {
	a := luckyhour.LuckyHours(11)
	b := luckyhour.LuckyHours(11 + 12)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("window %d differs across a 12-day (one day-branch cycle): %+v vs %+v", i, a[i], b[i])
		}
	}
}
