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

import "github.com/grailbio/subread/interval"

// Clip returns the part of iv inside hq when trimming, and iv otherwise.  The
// result may be empty.
func Clip(iv, hq interval.Interval, trimByRegion bool) interval.Interval {
	if !trimByRegion {
		return iv
	}
	return iv.Intersect(hq)
}

// accept reports whether a clipped subread of a read with the given HQ score
// should be written.
func accept(iv interval.Interval, hqScore int, opts *Opts) bool {
	if iv.Empty() {
		return false
	}
	if iv.End-iv.Start <= opts.MinSubreadLength {
		return false
	}
	return hqScore >= opts.MinReadScore
}
