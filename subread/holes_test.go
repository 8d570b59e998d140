package subread

import (
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/subread/interval"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestHoleNumberSet(t *testing.T) {
	s := NewHoleNumberSet([]interval.Interval{
		interval.New(42, 43),
		interval.New(7, 8),
		interval.New(42, 43),
		interval.New(100, 110),
		interval.New(105, 120),
		interval.New(120, 121),
		interval.New(50, 50),
	})
	expect.EQ(t, s.Ranges(), []interval.Interval{
		interval.New(7, 8), interval.New(42, 43), interval.New(100, 121)})
	for _, h := range []int{7, 42, 100, 110, 119, 120} {
		expect.True(t, s.Contains(h), h)
		expect.True(t, s.Allows(h), h)
	}
	for _, h := range []int{0, 6, 8, 41, 43, 50, 99, 121} {
		expect.False(t, s.Contains(h), h)
		expect.False(t, s.Allows(h), h)
	}

	empty := NewHoleNumberSet(nil)
	expect.True(t, empty.Empty())
	expect.False(t, empty.Contains(1))
	expect.True(t, empty.Allows(1))
	expect.EQ(t, empty.Ranges(), []interval.Interval{})
}

func TestParseHoleNumbers(t *testing.T) {
	ranges, err := ParseHoleNumbers("5, 10-12,3")
	assert.NoError(t, err)
	expect.EQ(t, ranges, []interval.Interval{
		interval.New(5, 6), interval.New(10, 13), interval.New(3, 4)})

	ranges, err = ParseHoleNumbers(" ")
	assert.NoError(t, err)
	expect.EQ(t, len(ranges), 0)

	for _, bad := range []string{"x", "5,", "-3", "12-10", "1-y", "0-4294967296", "3000000000"} {
		_, err := ParseHoleNumbers(bad)
		expect.True(t, errors.Is(errors.Invalid, err), bad)
	}
}

// Wide ranges are stored as ranges, not expanded hole by hole.
func TestWideHoleNumberRange(t *testing.T) {
	ranges, err := ParseHoleNumbers("0-2000000000,7")
	assert.NoError(t, err)
	s := NewHoleNumberSet(ranges)
	expect.EQ(t, s.Ranges(), []interval.Interval{interval.New(0, 2000000001)})
	expect.True(t, s.Contains(1999999999))
	expect.False(t, s.Contains(2000000001))
}
