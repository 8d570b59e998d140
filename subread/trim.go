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
	"github.com/grailbio/subread/interval"
	"github.com/grailbio/subread/regiontable"
)

// ResolveTrim returns the HQ window of r and its score.  found is false if
// neither trimming nor masking is enabled, or if table has no HQ region for
// the read; the window is then the whole read and the score is 0, so trimming
// and masking do nothing while MinReadScore still applies.  table may be nil.
func ResolveTrim(r *Read, table *regiontable.Table, opts *Opts) (hq interval.Interval, score int, found bool) {
	whole := interval.New(0, r.Len())
	if !opts.TrimByRegion && !opts.MaskByRegion {
		return whole, 0, false
	}
	if table == nil || !table.Has(r.HoleNumber) {
		return whole, 0, false
	}
	region, ok := table.Entry(r.HoleNumber).HQRegion()
	if !ok {
		return whole, 0, false
	}
	return region.Interval().Clip(0, r.Len()), region.Score, true
}
