package subread

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/grailbio/subread/interval"
	"github.com/grailbio/subread/regiontable"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func extract(t *testing.T, opts Opts, table *regiontable.Table, reads ...*Read) string {
	var buf bytes.Buffer
	ex, err := NewExtractor(opts, NewRecordWriter(&buf, opts.Format, opts.LineLength))
	assert.NoError(t, err)
	ex.SetRegionTable(table)
	for _, r := range reads {
		assert.NoError(t, ex.Process(r, nil))
	}
	return buf.String()
}

func fastaRecord(title, seq string) string {
	return ">" + title + "\n" + seq + "\n"
}

func scenarioOpts() Opts {
	opts := DefaultOpts
	opts.LineLength = 0
	opts.TrimByRegion = true
	opts.MinSubreadLength = 5
	return opts
}

func TestScenarioTrimSplit(t *testing.T) {
	got := extract(t, scenarioOpts(), scenarioTable(t), newTestRead(12, testSeq100))
	want := fastaRecord("m1/12/10_30", testSeq100[10:30]) +
		fastaRecord("m1/12/30_60", testSeq100[30:60]) +
		fastaRecord("m1/12/60_90", testSeq100[60:90])
	expect.EQ(t, got, want)
}

func TestScenarioLowReadScore(t *testing.T) {
	opts := scenarioOpts()
	opts.MinReadScore = 900
	expect.EQ(t, extract(t, opts, scenarioTable(t), newTestRead(12, testSeq100)), "")
}

func TestScenarioNoSplit(t *testing.T) {
	opts := DefaultOpts
	opts.LineLength = 0
	opts.SplitSubreads = false
	for _, table := range []*regiontable.Table{nil, scenarioTable(t)} {
		got := extract(t, opts, table, newTestRead(12, testSeq100), newTestRead(13, "ACGT"))
		expect.EQ(t, got, fastaRecord("m1/12", testSeq100)+fastaRecord("m1/13", "ACGT"))
	}
}

func TestScenarioBest(t *testing.T) {
	tbl := newTestTable(t,
		testRegion{12, regiontable.HQRegion, 10, 90, 800},
		testRegion{12, regiontable.Adapter, 30, 30, 0},
		testRegion{12, regiontable.Adapter, 60, 100, 0},
	)
	opts := scenarioOpts()
	opts.PrintOnlyBest = true
	// Subreads are [10,30) and [30,60), with scores 16000 and 24000.
	got := extract(t, opts, tbl, newTestRead(12, testSeq100))
	expect.EQ(t, got, fastaRecord("m1/12/30_60", testSeq100[30:60]))
}

func TestNoEntryWithSplit(t *testing.T) {
	for _, minLen := range []int{0, 5} {
		for _, minScore := range []int{0, 500} {
			opts := DefaultOpts
			opts.MinSubreadLength = minLen
			opts.MinReadScore = minScore
			opts.TrimByRegion = true
			expect.EQ(t, extract(t, opts, scenarioTable(t), newTestRead(99, testSeq100)), "")
			expect.EQ(t, extract(t, opts, nil, newTestRead(99, testSeq100)), "")
		}
	}
}

func TestMinSubreadLengthBoundary(t *testing.T) {
	// Subreads are [10,30), [30,60) and [60,90) once trimmed.
	opts := scenarioOpts()
	opts.MinSubreadLength = 20
	ex, err := NewExtractor(opts, nil)
	assert.NoError(t, err)
	ex.SetRegionTable(scenarioTable(t))
	expect.EQ(t, intervals(ex.Subreads(newTestRead(12, testSeq100))),
		[]interval.Interval{interval.New(30, 60), interval.New(60, 90)})

	opts.MinSubreadLength = 19
	ex, err = NewExtractor(opts, nil)
	assert.NoError(t, err)
	ex.SetRegionTable(scenarioTable(t))
	expect.EQ(t, len(ex.Subreads(newTestRead(12, testSeq100))), 3)
}

func TestMaskKeepsBoundaries(t *testing.T) {
	plain := DefaultOpts
	mask := DefaultOpts
	mask.MaskByRegion = true

	exPlain, err := NewExtractor(plain, nil)
	assert.NoError(t, err)
	exPlain.SetRegionTable(scenarioTable(t))
	exMask, err := NewExtractor(mask, nil)
	assert.NoError(t, err)
	exMask.SetRegionTable(scenarioTable(t))

	plainRecs := exPlain.Subreads(newTestRead(12, testSeq100))
	masked := newTestRead(12, testSeq100)
	maskRecs := exMask.Subreads(masked)
	expect.EQ(t, intervals(maskRecs), intervals(plainRecs))
	expect.EQ(t, intervals(maskRecs),
		[]interval.Interval{interval.New(0, 30), interval.New(30, 60), interval.New(60, 100)})

	want := strings.Repeat("N", 10) + testSeq100[10:90] + strings.Repeat("N", 10)
	expect.EQ(t, string(masked.Seq), want)
	expect.EQ(t, string(maskRecs[0].Seq), want[0:30])
	expect.EQ(t, string(maskRecs[2].Seq), want[60:100])
	expect.EQ(t, maskRecs[0].Title, "m1/12/0_30")
}

func TestMaskWithoutHQRegion(t *testing.T) {
	opts := DefaultOpts
	opts.MaskByRegion = true
	opts.LineLength = 0
	tbl := newTestTable(t, testRegion{5, regiontable.Adapter, 50, 50, 0})
	got := extract(t, opts, tbl, newTestRead(5, testSeq100))
	expect.EQ(t, got, fastaRecord("m1/5/0_50", testSeq100[:50])+fastaRecord("m1/5/50_100", testSeq100[50:]))
}

// Accepted subreads stay inside the read, and inside the HQ region when
// trimming, for random region tables.
func TestSubreadsWithinBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	for iter := 0; iter < 500; iter++ {
		readLen := 1 + rnd.Intn(200)
		hqStart := rnd.Intn(readLen + 1)
		hqEnd := hqStart + rnd.Intn(readLen-hqStart+1)
		regions := []testRegion{{1, regiontable.HQRegion, hqStart, hqEnd, rnd.Intn(1001)}}
		for i, n := 0, rnd.Intn(6); i < n; i++ {
			s := rnd.Intn(readLen + 1)
			e := s + rnd.Intn(10)
			regions = append(regions, testRegion{1, regiontable.Adapter, s, e, 0})
		}
		tbl := newTestTable(t, regions...)
		for _, trim := range []bool{false, true} {
			opts := DefaultOpts
			opts.TrimByRegion = trim
			opts.MinSubreadLength = rnd.Intn(5)
			ex, err := NewExtractor(opts, nil)
			assert.NoError(t, err)
			ex.SetRegionTable(tbl)
			for _, rec := range ex.Subreads(newTestRead(1, strings.Repeat("A", readLen))) {
				iv := rec.Interval
				expect.True(t, interval.New(0, readLen).Contains(iv), "read %d: %v", readLen, iv)
				if trim {
					expect.True(t, interval.New(hqStart, hqEnd).Contains(iv), "hq [%d,%d): %v", hqStart, hqEnd, iv)
				}
				expect.EQ(t, len(rec.Seq), iv.Len())
			}
		}
	}
}

func TestBestPrefersConsensus(t *testing.T) {
	opts := scenarioOpts()
	opts.PrintOnlyBest = true
	var buf bytes.Buffer
	ex, err := NewExtractor(opts, NewRecordWriter(&buf, FASTA, 0))
	assert.NoError(t, err)
	ex.SetRegionTable(scenarioTable(t))

	ccs := newTestRead(12, "ACGTAC")
	ccs.Title = "m1/12/ccs"
	assert.NoError(t, ex.Process(newTestRead(12, testSeq100), ccs))
	expect.EQ(t, buf.String(), fastaRecord("m1/12/ccs", "ACGTAC"))

	// An empty consensus falls back to the best subread.
	buf.Reset()
	empty := newTestRead(12, "")
	assert.NoError(t, ex.Process(newTestRead(12, testSeq100), empty))
	expect.EQ(t, buf.String(), fastaRecord("m1/12/30_60", testSeq100[30:60]))

	// No subreads and no consensus: nothing.
	buf.Reset()
	assert.NoError(t, ex.Process(newTestRead(99, testSeq100), empty))
	expect.EQ(t, buf.String(), "")

	// Consensus is written even if the read has no subreads.
	buf.Reset()
	assert.NoError(t, ex.Process(newTestRead(99, testSeq100), ccs))
	expect.EQ(t, buf.String(), fastaRecord("m1/12/ccs", "ACGTAC"))
}

func TestHoleNumberFilterAndEmptyReads(t *testing.T) {
	opts := DefaultOpts
	opts.SplitSubreads = false
	opts.LineLength = 0
	opts.HoleNumbers = []interval.Interval{interval.New(13, 14), interval.New(12, 13)}
	got := extract(t, opts, nil,
		newTestRead(11, "AAAA"),
		newTestRead(12, "CCCC"),
		newTestRead(13, ""),
		newTestRead(14, "GGGG"))
	expect.EQ(t, got, fastaRecord("m1/12", "CCCC"))
}

func TestPrintCCS(t *testing.T) {
	opts := scenarioOpts()
	opts.PrintCCS = true
	got := extract(t, opts, scenarioTable(t), newTestRead(12, testSeq100), newTestRead(13, ""))
	expect.EQ(t, got, fastaRecord("m1/12", testSeq100))
}

func TestSimulatedMetadata(t *testing.T) {
	opts := scenarioOpts()
	opts.IncludeSimulatedMetadata = true
	r := newTestRead(12, testSeq100)
	r.Simulated = true
	r.SimulatedSeqIndex = 3
	r.SimulatedCoordinate = 4567
	got := extract(t, opts, scenarioTable(t), r)
	expect.HasSubstr(t, got, ">m1/12/10_30/chrIndex_3/position_4567\n")
	expect.HasSubstr(t, got, ">m1/12/60_90/chrIndex_3/position_4567\n")

	// Without splitting, the whole read is still trimmed to the HQ region.
	opts.SplitSubreads = false
	got = extract(t, opts, scenarioTable(t), r)
	expect.EQ(t, got, fastaRecord("m1/12/chrIndex_3/position_4567", testSeq100[10:90]))

	opts.TrimByRegion = false
	got = extract(t, opts, scenarioTable(t), r)
	expect.EQ(t, got, fastaRecord("m1/12/chrIndex_3/position_4567", testSeq100))

	opts.IncludeSimulatedMetadata = false
	expect.EQ(t, extract(t, opts, nil, r), fastaRecord("m1/12", testSeq100))
}

func TestFASTQOutput(t *testing.T) {
	opts := scenarioOpts()
	opts.Format = FASTQ
	r := newTestRead(12, testSeq100)
	r.Qual = []byte(strings.Repeat("#", 10) + strings.Repeat("I", 80) + strings.Repeat("+", 10))
	got := extract(t, opts, scenarioTable(t), r)
	want := "@m1/12/10_30\n" + testSeq100[10:30] + "\n+\n" + strings.Repeat("I", 20) + "\n" +
		"@m1/12/30_60\n" + testSeq100[30:60] + "\n+\n" + strings.Repeat("I", 30) + "\n" +
		"@m1/12/60_90\n" + testSeq100[60:90] + "\n+\n" + strings.Repeat("I", 30) + "\n"
	expect.EQ(t, got, want)

	// Reads without qualities get the sentinel quality.
	opts.SplitSubreads = false
	opts.MinSubreadLength = 0
	got = extract(t, opts, nil, newTestRead(3, "ACGTA"))
	expect.EQ(t, got, "@m1/3\nACGTA\n+\n!!!!!\n")

	// A read no longer than the minimum subread length is dropped.
	opts.MinSubreadLength = 5
	expect.EQ(t, extract(t, opts, nil, newTestRead(3, "ACGTA")), "")
}

func TestNewExtractorConflict(t *testing.T) {
	opts := DefaultOpts
	opts.TrimByRegion = true
	opts.MaskByRegion = true
	_, err := NewExtractor(opts, nil)
	expect.HasSubstr(t, err.Error(), "cannot both trim and mask")
}
