package regiontable

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/subread/interval"
)

// RegionType enumerates the kinds of rows in a region table.
type RegionType int

const (
	// Adapter marks an adapter (delimiter) interval.
	Adapter RegionType = iota
	// Insert marks an insert interval between adapters.
	Insert
	// HQRegion marks the high-quality region of a read.
	HQRegion
)

var regionTypeNames = [...]string{"Adapter", "Insert", "HQRegion"}

func (t RegionType) String() string {
	if t < 0 || int(t) >= len(regionTypeNames) {
		return fmt.Sprintf("RegionType(%d)", int(t))
	}
	return regionTypeNames[t]
}

// ParseRegionType converts a RegionType name to its value.
func ParseRegionType(s string) (RegionType, error) {
	for i, name := range regionTypeNames {
		if s == name {
			return RegionType(i), nil
		}
	}
	return 0, errors.E(errors.Invalid, fmt.Sprintf("unknown region type %q", s))
}

// HQ is the high-quality region of a read.  Score is the expected accuracy
// times 1000, in [0, 1000].
type HQ struct {
	Start, End int
	Score      int
}

// Interval returns the HQ region as a read interval.
func (h HQ) Interval() interval.Interval {
	return interval.New(h.Start, h.End)
}

// Entry holds the regions of a single hole number.
type Entry struct {
	HoleNumber int
	hq         HQ
	hasHQ      bool
	// adapters is sorted by Start once the table is loaded.
	adapters []interval.Interval
}

// HQRegion returns the HQ region of the read, if one was annotated.
func (e *Entry) HQRegion() (HQ, bool) {
	return e.hq, e.hasHQ
}

// Adapters returns the adapter intervals, sorted by start.  The caller must
// not modify the slice.
func (e *Entry) Adapters() []interval.Interval {
	return e.adapters
}

// SubreadIntervals derives the subread intervals of a read of the given length
// from the gaps between adapters: [0, first adapter start), [adapter end, next
// adapter start), ..., [last adapter end, readLength).  Intervals are clipped
// to [0, readLength] and empty ones are dropped.  An entry without adapters
// yields the whole read.
//
// If collapseOverlap is set, overlapping adapters are merged first, so that no
// gap starts inside an adapter.  If includeAdapters is set, the nonempty
// adapter intervals are emitted too, in start order among the gaps.
func (e *Entry) SubreadIntervals(readLength int, includeAdapters, collapseOverlap bool) []interval.Interval {
	adapters := e.adapters
	if collapseOverlap {
		adapters = interval.Merge(adapters)
	}
	var (
		ret   []interval.Interval
		start = 0
	)
	emit := func(iv interval.Interval) {
		if iv = iv.Clip(0, readLength); !iv.Empty() {
			ret = append(ret, iv)
		}
	}
	for _, a := range adapters {
		emit(interval.New(start, a.Start))
		if includeAdapters {
			emit(a)
		}
		start = a.End
	}
	emit(interval.New(start, readLength))
	return ret
}

// Table maps hole numbers to region entries.
type Table struct {
	entries map[int]*Entry
}

// New creates an empty table.
func New() *Table {
	return &Table{entries: map[int]*Entry{}}
}

// Len returns the number of hole numbers with at least one region.
func (t *Table) Len() int {
	return len(t.entries)
}

// Has returns true iff the table has an entry for the hole number.
func (t *Table) Has(holeNumber int) bool {
	_, ok := t.entries[holeNumber]
	return ok
}

// Entry returns the entry for the hole number, or nil if there is none.
// Callers should check Has first.
func (t *Table) Entry(holeNumber int) *Entry {
	return t.entries[holeNumber]
}

// MaxScore is the highest HQ region score: expected accuracy times 1000.
const MaxScore = 1000

// Add records one region.  Adapters may be added in any order; Finish sorts
// them.  A hole number may have at most one HQ region, scored in
// [0,MaxScore].
func (t *Table) Add(holeNumber int, typ RegionType, start, end, score int) error {
	if start < 0 || end < start {
		return errors.E(errors.Invalid,
			fmt.Sprintf("hole %d: invalid %v region [%d,%d)", holeNumber, typ, start, end))
	}
	if typ == HQRegion && (score < 0 || score > MaxScore) {
		return errors.E(errors.Invalid,
			fmt.Sprintf("hole %d: HQ score %d outside [0,%d]", holeNumber, score, MaxScore))
	}
	e := t.entries[holeNumber]
	if e == nil {
		e = &Entry{HoleNumber: holeNumber}
		t.entries[holeNumber] = e
	}
	switch typ {
	case Adapter:
		e.adapters = append(e.adapters, interval.New(start, end))
	case Insert:
	case HQRegion:
		if e.hasHQ {
			return errors.E(errors.Invalid, fmt.Sprintf("hole %d: multiple HQ regions", holeNumber))
		}
		e.hq = HQ{Start: start, End: end, Score: score}
		e.hasHQ = true
	default:
		return errors.E(errors.Invalid, fmt.Sprintf("hole %d: unknown region type %v", holeNumber, typ))
	}
	return nil
}

// Finish sorts the adapters of every entry.  It must be called after the last
// Add and before any query.
func (t *Table) Finish() {
	for _, e := range t.entries {
		interval.SortByStart(e.adapters)
	}
}
