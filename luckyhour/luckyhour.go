// Package luckyhour derives the "Giờ Hoàng Đạo" (Lucky Hours) table: the
// six of a day's twelve 2-hour Chi periods considered auspicious, fixed by
// a 12-bit pattern keyed on the day's own Earthly Branch modulo 6.
package luckyhour

import (
	"sort"

	"github.com/tranlunar/amlich/canchi"
	"github.com/tranlunar/amlich/internal/base"
)

// patterns holds the six 12-bit auspicious-hour masks, indexed by day
// branch modulo 6 ({Tý,Ngọ}=0, {Sửu,Mùi}=1, {Dần,Thân}=2, {Mão,Dậu}=3,
// {Thìn,Tuất}=4, {Tỵ,Hợi}=5); these six strings are reproduced exactly as
// given, bit for bit. Bit i (MSB first) does not name segment i directly:
// per the traditional mnemonic, the Chi segment the pattern's first bit
// falls on rotates with the day-branch group (see rotation).
var patterns = [6]string{
	"110100101100",
	"001101001011",
	"110011010010",
	"101100110100",
	"001011001101",
	"010010110011",
}

// rotation returns the Chi segment that bit 0 of a day branch's pattern
// names: the day-branch-group's starting point advances by two segments
// per group, pinned so a Tý-branch day's pattern starts at segment 4
// (Thìn).
func rotation(dayBranch int64) int64 {
	return base.EMod(2*dayBranch+4, 12)
}

// Window is one auspicious 2-hour period: the Earthly Branch naming it,
// and the half-open wall-clock hour range [Start, End) it covers. Segment
// 0 (Tý) wraps midnight, so Start=23, End=1.
type Window struct {
	Branch string
	Start  int
	End    int
}

// LuckyHours returns the day's six auspicious 2-hour windows, in Chi
// order, for the civil day identified by Julian Day Number jd.
func LuckyHours(jd int64) []Window {
	dayBranch := base.EMod(jd+1, 12)
	pattern := patterns[dayBranch%6]
	rot := rotation(dayBranch)

	segments := make([]int64, 0, 6)
	for i := 0; i < 12; i++ {
		if pattern[i] != '1' {
			continue
		}
		segments = append(segments, base.EMod(int64(i)+rot, 12))
	}
	sort.Slice(segments, func(i, j int) bool { return segments[i] < segments[j] })

	windows := make([]Window, 0, 6)
	for _, segment := range segments {
		start := base.EMod(2*segment+23, 24)
		end := base.EMod(2*segment+1, 24)
		windows = append(windows, Window{
			Branch: canchi.Branches[segment],
			Start:  int(start),
			End:    int(end),
		})
	}
	return windows
}
