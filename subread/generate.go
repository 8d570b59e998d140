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

// GenerateIntervals returns the candidate subread intervals of r, in read
// order.  Without splitting this is the whole read.  With splitting, a read
// that has no entry in table yields no intervals at all.
func GenerateIntervals(r *Read, table *regiontable.Table, split bool) []interval.Interval {
	if !split {
		return []interval.Interval{interval.New(0, r.Len())}
	}
	if table == nil || !table.Has(r.HoleNumber) {
		return nil
	}
	return table.Entry(r.HoleNumber).SubreadIntervals(r.Len(), false, true)
}
