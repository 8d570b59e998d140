// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package subread

import (
	"math"
	"strconv"
	"strings"

	"github.com/biogo/store/llrb"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/subread/interval"
)

// maxHoleNumber bounds hole numbers accepted on the command line.
const maxHoleNumber = math.MaxInt32

// holeRange is a half-open range of hole numbers, ordered by its start.
type holeRange interval.Interval

func (r holeRange) Compare(c llrb.Comparable) int {
	r2 := c.(holeRange)
	switch {
	case r.Start < r2.Start:
		return -1
	case r.Start > r2.Start:
		return 1
	}
	return 0
}

// HoleNumberSet is an ordered set of hole numbers, stored as disjoint ranges.
type HoleNumberSet struct {
	tree llrb.Tree
}

// NewHoleNumberSet creates a set holding the holes in the given half-open
// ranges.  Ranges may overlap.
func NewHoleNumberSet(ranges []interval.Interval) *HoleNumberSet {
	s := &HoleNumberSet{}
	sorted := make([]interval.Interval, 0, len(ranges))
	for _, r := range ranges {
		if !r.Empty() {
			sorted = append(sorted, r)
		}
	}
	interval.SortByStart(sorted)
	for _, r := range interval.Merge(sorted) {
		s.tree.Insert(holeRange(r))
	}
	return s
}

// Empty returns true iff the set holds no holes.
func (s *HoleNumberSet) Empty() bool {
	return s.tree.Len() == 0
}

// Contains returns true iff h is in the set.
func (s *HoleNumberSet) Contains(h int) bool {
	c := s.tree.Floor(holeRange{Start: h})
	return c != nil && h < c.(holeRange).End
}

// Allows returns true if the set is empty or contains h.  An empty set does
// not filter anything.
func (s *HoleNumberSet) Allows(h int) bool {
	return s.Empty() || s.Contains(h)
}

// Ranges returns the disjoint ranges of the set in ascending order.
func (s *HoleNumberSet) Ranges() []interval.Interval {
	ranges := make([]interval.Interval, 0, s.tree.Len())
	s.tree.Do(func(c llrb.Comparable) bool {
		ranges = append(ranges, interval.Interval(c.(holeRange)))
		return false
	})
	return ranges
}

// ParseHoleNumbers parses a comma-separated list of hole numbers and
// inclusive ranges into half-open ranges, e.g. "5,10-12" is [5,6) and
// [10,13).
func ParseHoleNumbers(s string) ([]interval.Interval, error) {
	var ranges []interval.Interval
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		bounds := strings.SplitN(field, "-", 2)
		lo, err := strconv.Atoi(bounds[0])
		if err != nil || lo < 0 || lo > maxHoleNumber {
			return nil, errors.E(errors.Invalid, "bad hole number", field)
		}
		hi := lo
		if len(bounds) == 2 {
			if hi, err = strconv.Atoi(bounds[1]); err != nil || hi < lo || hi > maxHoleNumber {
				return nil, errors.E(errors.Invalid, "bad hole number range", field)
			}
		}
		ranges = append(ranges, interval.New(lo, hi+1))
	}
	return ranges, nil
}
