package lunar

import "iter"

// EachNewMoon yields the JDN of every New Moon day, under zone tz, whose
// civil day falls in [fromJDN, toJDN], in ascending order. It is a thin
// convenience over repeated NewMoonDay calls for callers that want to walk
// a calendar range (e.g. to print a year's month boundaries) without
// re-deriving the lunation index arithmetic themselves.
func EachNewMoon(fromJDN, toJDN int64, tz float64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		k := int64(float64(fromJDN-2415021)/SynodicMonth) - 2
		for {
			day := NewMoonDay(k, tz)
			if day > toJDN {
				return
			}
			if day >= fromJDN {
				if !yield(day) {
					return
				}
			}
			k++
		}
	}
}
