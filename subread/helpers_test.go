package subread

import (
	"strconv"
	"strings"
	"testing"

	"github.com/grailbio/subread/interval"
	"github.com/grailbio/subread/regiontable"
	"github.com/stretchr/testify/require"
)

// testSeq100 is a 100-base read.
var testSeq100 = strings.Repeat("ACGTTGCA", 12) + "ACGT"

func newTestRead(hole int, seq string) *Read {
	return &Read{
		HoleNumber: hole,
		Title:      "m1/" + strconv.Itoa(hole),
		Seq:        []byte(seq),
	}
}

type testRegion struct {
	hole       int
	typ        regiontable.RegionType
	start, end int
	score      int
}

func newTestTable(t *testing.T, regions ...testRegion) *regiontable.Table {
	tbl := regiontable.New()
	for _, r := range regions {
		require.NoError(t, tbl.Add(r.hole, r.typ, r.start, r.end, r.score))
	}
	tbl.Finish()
	return tbl
}

// scenarioTable is a table for hole 12: HQ region [10,90) with score 800 and
// adapters at 30 and 60.
func scenarioTable(t *testing.T) *regiontable.Table {
	return newTestTable(t,
		testRegion{12, regiontable.HQRegion, 10, 90, 800},
		testRegion{12, regiontable.Adapter, 30, 30, 0},
		testRegion{12, regiontable.Adapter, 60, 60, 0},
	)
}

func intervals(recs []Record) []interval.Interval {
	ivs := make([]interval.Interval, len(recs))
	for i, r := range recs {
		ivs[i] = r.Interval
	}
	return ivs
}
