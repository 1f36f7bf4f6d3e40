package amlich_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/tranlunar/amlich"
)

func TestSolarToLunarTet2024(t *testing.T) {
	s, err := amlich.NewSolarDate(2024, 2, 10)
	if err != nil {
		t.Fatalf("NewSolarDate: %v", err)
	}
	l := s.ToLunar(amlich.ICT)
	if l.Y != 2024 || l.M != 1 || l.D != 1 || l.L {
		t.Errorf("ToLunar = %+v, want {2024 1 1 false}", l)
	}
	if !l.IsTet() {
		t.Error("IsTet() = false for lunar 1/1, want true")
	}
}

func TestLunarToSolarRoundTrip(t *testing.T) {
	s, _ := amlich.NewSolarDate(2024, 9, 17)
	l := s.ToLunar(amlich.ICT)
	back, err := l.ToSolar(amlich.ICT)
	if err != nil {
		t.Fatalf("ToSolar: %v", err)
	}
	if back != s {
		t.Errorf("round trip = %+v, want %+v", back, s)
	}
}

func TestNewSolarDateRejectsOutOfRangeYear(t *testing.T) {
	_, err := amlich.NewSolarDate(1500, 1, 1)
	if !errors.Is(err, amlich.ErrOutOfRange) {
		t.Errorf("err = %v, want wrapping ErrOutOfRange", err)
	}
}

func TestNewSolarDateRejectsBadDay(t *testing.T) {
	_, err := amlich.NewSolarDate(2023, 2, 30)
	if !errors.Is(err, amlich.ErrInvalidDate) {
		t.Errorf("err = %v, want wrapping ErrInvalidDate", err)
	}
}

func TestNewLunarDateRejectsImpossibleLeap(t *testing.T) {
	_, err := amlich.NewLunarDate(2024, 1, 1, true, amlich.ICT)
	if !errors.Is(err, amlich.ErrDateNotExist) {
		t.Errorf("err = %v, want wrapping ErrDateNotExist", err)
	}
}

func TestMonthName(t *testing.T) {
	l := amlich.LunarDate{Y: 2023, M: 2, D: 1, L: true}
	if got, want := l.MonthName(), "tháng hai nhuận"; got != want {
		t.Errorf("MonthName() = %q, want %q", got, want)
	}
}

func TestSolarTermName(t *testing.T) {
	s, _ := amlich.NewSolarDate(2020, 6, 21)
	if got, want := s.SolarTermName(amlich.ICT), "Hạ chí"; got != want {
		t.Errorf("SolarTermName(2020-06-21) = %q, want %q", got, want)
	}
}

func TestLuckyHoursViaLunarDate(t *testing.T) {
	s, _ := amlich.NewSolarDate(2024, 2, 10)
	l := s.ToLunar(amlich.ICT)
	windows, err := l.LuckyHours(amlich.ICT)
	if err != nil {
		t.Fatalf("LuckyHours: %v", err)
	}
	if len(windows) != 6 {
		t.Errorf("LuckyHours returned %d windows, want 6", len(windows))
	}
}

func TestDescribe(t *testing.T) {
	s, _ := amlich.NewSolarDate(2024, 2, 10)
	l := s.ToLunar(amlich.ICT)
	desc, err := l.Describe(amlich.ICT)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if desc.Year == "" || desc.Month == "" || desc.Day == "" {
		t.Errorf("Describe returned a blank field: %+v", desc)
	}
}

func TestWeekday(t *testing.T) {
	s, _ := amlich.NewSolarDate(2024, 2, 10)
	if got, want := s.Weekday().String(), "Saturday"; got != want {
		t.Errorf("Weekday() = %q, want %q", got, want)
	}
}
