// Copyright 2013 Sonia Keys
// License: MIT

// Package ephemeris computes the two raw astronomical quantities the lunar
// assembler is built on: the mean time of the k-th New Moon (Meeus, ch. 49,
// "Phases of the Moon") and the Sun's apparent ecliptic longitude (Meeus,
// ch. 25, "Solar Coordinates", low-accuracy formula).
//
// Both functions reproduce Meeus's published series term for term and in
// the order given; see the package-level doc comments on NewMoon and
// SunLongitude for the reasons not to refactor the sums into Horner form.
// All computation happens in IEEE-754 binary64; there is no provision for
// running at reduced precision, since the series coefficients are tuned to
// it and segment-boundary decisions near solstices and equinoxes can flip
// on sub-ulp differences (see package lunar).
package ephemeris

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/tranlunar/amlich/internal/base"
)

const dr = math.Pi / 180

// NewMoon returns the Julian Day (with fractional part) of the k-th mean
// New Moon after the reference epoch near 1900-01-01 13:52 UT, following
// Meeus (1998), ch. 49.
//
// k is the lunation index: the signed count of mean synodic months elapsed
// since that reference. Negative k reaches back before 1900.
//
// The thirteen periodic terms of the correction C1 are evaluated in the exact
// order Meeus lists them; do not reassociate or factor the sum, the
// constants are tuned against this exact evaluation order and the lunar
// month-boundary computations in package lunar are sensitive to drift of a
// few parts in 1e-4 day.
func NewMoon(k float64) float64 {
	T := k / 1236.85
	T2 := T * T
	T3 := T2 * T

	jd1 := 2415020.75933 + 29.53058868*k + 0.0001178*T2 - 0.000000155*T3 +
		0.00033*math.Sin((166.56+132.87*T-0.009173*T2)*dr)

	M := (359.2242 + 29.10535608*k - 0.0000333*T2 - 0.00000347*T3) * dr
	mpr := (306.0253 + 385.81691806*k + 0.0107306*T2 + 0.00001236*T3) * dr
	f := (21.2964 + 390.67050646*k - 0.0016528*T2 - 0.00000239*T3) * dr

	c1 := (0.1734-0.000393*T)*math.Sin(M) +
		0.0021*math.Sin(2*M) -
		0.4068*math.Sin(mpr) +
		0.0161*math.Sin(2*mpr) -
		0.0004*math.Sin(3*mpr) +
		0.0104*math.Sin(2*f) -
		0.0051*math.Sin(M+mpr) -
		0.0074*math.Sin(M-mpr) +
		0.0004*math.Sin(2*f+M) -
		0.0004*math.Sin(2*f-M) -
		0.0006*math.Sin(2*f+mpr) +
		0.0010*math.Sin(2*f-mpr) +
		0.0005*math.Sin(2*mpr+M)

	var deltaT float64
	if T < -11 {
		deltaT = 0.001 + 0.000839*T + 0.0002261*T2 - 0.00000845*T3 - 0.000000081*T*T3
	} else {
		deltaT = -0.000278 + 0.000265*T + 0.000262*T2
	}

	return jd1 + c1 - deltaT
}

// SunLongitude returns the Sun's apparent geocentric ecliptic longitude at
// the given Julian Day, reduced to [0, 2π), following Meeus (1998), ch. 25,
// low-accuracy formula (25.2, 25.3, eq. of center).
//
// This low-accuracy series omits the VSOP87/nutation/aberration refinements
// solar.ApparentLongitude applies in the teacher package; for the purpose
// of locating New Moon days relative to the 24 solar terms, accuracy on
// the order of a few arcseconds (well under the resolution needed to place
// a civil day on the correct side of a 15° term boundary) is sufficient,
// and is what every public implementation of this calendar algorithm uses.
func SunLongitude(jdn float64) unit.Angle {
	T := (jdn - 2451545.0) / 36525

	// M and l0 are plain polynomials in T, unlike the periodic correction
	// below; Horner form is safe here and matches how the teacher package
	// evaluates its own low-order polynomial terms.
	M := base.Horner(T, 357.52910, 35999.05030, -0.0001559, -0.00000048) * dr
	l0 := base.Horner(T, 280.46645, 36000.76983, 0.0003032)

	dl := (1.914600-0.004817*T-0.000014*T*T)*math.Sin(M) +
		(0.019993-0.000101*T)*math.Sin(2*M) +
		0.000290*math.Sin(3*M)

	return unit.AngleFromDeg(l0 + dl).Mod1()
}
