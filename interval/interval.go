package interval

import (
	"fmt"
	"sort"
)

// Interval is a half-open range [Start, End) of read offsets.
type Interval struct {
	Start, End int
}

// New returns the interval [start, end).
func New(start, end int) Interval {
	return Interval{Start: start, End: end}
}

// Len returns the number of positions covered by the interval, or 0 if it is
// empty.
func (i Interval) Len() int {
	if i.End <= i.Start {
		return 0
	}
	return i.End - i.Start
}

// Empty returns true iff the interval covers no positions.
func (i Interval) Empty() bool {
	return i.Start >= i.End
}

// Intersect returns the intersection of i and o.  The result may be empty, in
// which case its Start may exceed its End; callers should test Empty().
func (i Interval) Intersect(o Interval) Interval {
	r := i
	if o.Start > r.Start {
		r.Start = o.Start
	}
	if o.End < r.End {
		r.End = o.End
	}
	return r
}

// Clip clamps both endpoints of the interval to [lo, hi].
func (i Interval) Clip(lo, hi int) Interval {
	return Interval{Start: clamp(i.Start, lo, hi), End: clamp(i.End, lo, hi)}
}

// Contains returns true iff o is nonempty and lies entirely inside i.
func (i Interval) Contains(o Interval) bool {
	return !o.Empty() && o.Start >= i.Start && o.End <= i.End
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d)", i.Start, i.End)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SortByStart sorts intervals by Start, then End.  The sort is stable.
func SortByStart(ivs []Interval) {
	sort.SliceStable(ivs, func(i, j int) bool {
		if ivs[i].Start != ivs[j].Start {
			return ivs[i].Start < ivs[j].Start
		}
		return ivs[i].End < ivs[j].End
	})
}

// Merge coalesces overlapping or touching intervals.  ivs must be sorted by
// Start.  The result is a new slice; ivs is not modified.
//
// For example, {[5,15), [7,17), [17,18), [20,25)} becomes {[5,18), [20,25)}.
func Merge(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	merged := make([]Interval, 0, len(ivs))
	cur := ivs[0]
	for _, iv := range ivs[1:] {
		if iv.Start <= cur.End {
			if iv.End > cur.End {
				cur.End = iv.End
			}
			continue
		}
		merged = append(merged, cur)
		cur = iv
	}
	return append(merged, cur)
}
