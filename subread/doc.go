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

// Package subread derives subreads from raw single-molecule sequencing reads.
//
// A raw read is the full sequence called for one hole (ZMW).  Its region table
// entry marks the high-quality (HQ) region and the adapters that separate the
// passes over the insert.  For each read, the Extractor:
//
//  1. resolves the HQ window (ResolveTrim);
//  2. in mask mode, overwrites bases outside the HQ window with 'N';
//  3. splits the read at the adapters (GenerateIntervals);
//  4. in trim mode, intersects every interval with the HQ window (Clip) and
//     drops intervals that are empty, not longer than MinSubreadLength, or
//     come from a read whose HQ score is below MinReadScore;
//  5. writes every surviving subread, or in best-only mode just the one with
//     the greatest length*score (SelectBest), unless a consensus sequence
//     exists for the read, in which case that is written instead.
//
// Subread titles are "<read title>/<start>_<end>" in original read
// coordinates.  Reads are processed one at a time; nothing is retained across
// reads.
package subread
