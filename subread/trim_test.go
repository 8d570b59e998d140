package subread

import (
	"testing"

	"github.com/grailbio/subread/interval"
	"github.com/grailbio/subread/regiontable"
	"github.com/grailbio/testutil/expect"
)

func TestResolveTrim(t *testing.T) {
	tbl := newTestTable(t,
		testRegion{12, regiontable.HQRegion, 10, 90, 800},
		testRegion{13, regiontable.Adapter, 30, 30, 0},
		testRegion{14, regiontable.HQRegion, 40, 140, 900},
	)
	trim := DefaultOpts
	trim.TrimByRegion = true
	mask := DefaultOpts
	mask.MaskByRegion = true
	neither := DefaultOpts

	tests := []struct {
		name  string
		hole  int
		table *regiontable.Table
		opts  *Opts
		hq    interval.Interval
		score int
		found bool
	}{
		{"trim", 12, tbl, &trim, interval.New(10, 90), 800, true},
		{"mask", 12, tbl, &mask, interval.New(10, 90), 800, true},
		{"trim and mask disabled", 12, tbl, &neither, interval.New(0, 100), 0, false},
		{"no HQ region", 13, tbl, &trim, interval.New(0, 100), 0, false},
		{"no entry", 99, tbl, &trim, interval.New(0, 100), 0, false},
		{"no table", 12, nil, &trim, interval.New(0, 100), 0, false},
		{"HQ past read end", 14, tbl, &trim, interval.New(40, 100), 900, true},
	}
	for _, tt := range tests {
		hq, score, found := ResolveTrim(newTestRead(tt.hole, testSeq100), tt.table, tt.opts)
		expect.EQ(t, hq, tt.hq, tt.name)
		expect.EQ(t, score, tt.score, tt.name)
		expect.EQ(t, found, tt.found, tt.name)
	}
}

func TestGenerateIntervals(t *testing.T) {
	tbl := scenarioTable(t)
	r := newTestRead(12, testSeq100)
	expect.EQ(t, GenerateIntervals(r, tbl, true),
		[]interval.Interval{interval.New(0, 30), interval.New(30, 60), interval.New(60, 100)})
	expect.EQ(t, GenerateIntervals(r, tbl, false), []interval.Interval{interval.New(0, 100)})

	// A read without region annotations has no subreads when splitting.
	other := newTestRead(77, testSeq100)
	expect.EQ(t, len(GenerateIntervals(other, tbl, true)), 0)
	expect.EQ(t, len(GenerateIntervals(other, nil, true)), 0)
	expect.EQ(t, GenerateIntervals(other, nil, false), []interval.Interval{interval.New(0, 100)})
}

func TestClip(t *testing.T) {
	hq := interval.New(10, 90)
	expect.EQ(t, Clip(interval.New(0, 30), hq, true), interval.New(10, 30))
	expect.EQ(t, Clip(interval.New(60, 100), hq, true), interval.New(60, 90))
	expect.EQ(t, Clip(interval.New(0, 30), hq, false), interval.New(0, 30))
	expect.True(t, Clip(interval.New(0, 5), hq, true).Empty())
}

func TestAcceptMinLength(t *testing.T) {
	opts := DefaultOpts
	opts.MinSubreadLength = 20
	expect.False(t, accept(interval.New(10, 30), 0, &opts))
	expect.True(t, accept(interval.New(10, 31), 0, &opts))

	// A minimum of 0 still rejects empty intervals.
	opts.MinSubreadLength = 0
	expect.False(t, accept(interval.New(10, 10), 0, &opts))
	expect.False(t, accept(interval.New(20, 10), 0, &opts))
	expect.True(t, accept(interval.New(10, 11), 0, &opts))
}

func TestAcceptMinReadScore(t *testing.T) {
	opts := DefaultOpts
	opts.MinReadScore = 800
	expect.True(t, accept(interval.New(0, 50), 800, &opts))
	expect.False(t, accept(interval.New(0, 50), 799, &opts))
}
