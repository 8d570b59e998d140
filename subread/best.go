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

// SelectBest returns the record with the greatest Score.  Ties go to the
// earliest record.  ok is false if recs is empty.
func SelectBest(recs []Record) (best Record, ok bool) {
	bestScore := -1
	for _, rec := range recs {
		if rec.Score > bestScore {
			best, bestScore, ok = rec, rec.Score, true
		}
	}
	return best, ok
}
