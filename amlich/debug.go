package amlich

import (
	"fmt"

	"github.com/soniakeys/sexagesimal"

	"github.com/tranlunar/amlich/ephemeris"
)

// SunLongitudeDMS renders the Sun's apparent ecliptic longitude at local
// midnight opening d, in degrees-minutes-seconds, using the same
// formatter the teacher package reserves for its own worked examples
// (sexa.FmtAngle). This is a diagnostic helper, not part of the
// conversion contract: it exists so a caller debugging a suspicious
// segment-boundary result can print the exact angle sun_segment floored.
func (d SolarDate) SunLongitudeDMS(loc Location) string {
	l := ephemeris.SunLongitude(float64(d.JDN()) - 0.5 - loc.OffsetHours/24)
	return fmt.Sprintf("%.2d", sexa.FmtAngle(l))
}
