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
	"github.com/grailbio/base/simd"
	"github.com/grailbio/subread/interval"
)

const (
	// MaskBase replaces bases outside the HQ region in mask mode.
	MaskBase = 'N'
	// MissingQual is the Phred+33 quality written for bases that have no
	// quality, e.g. consensus reads from FASTA.  It is Phred 0.
	MissingQual = '!'
)

// Read is one raw (or consensus) read.
type Read struct {
	// HoleNumber identifies the ZMW that produced the read.
	HoleNumber int
	// Title is the read name, e.g. "m54006_160504_020705/4194374".
	Title string
	// Seq holds the bases.  Masking overwrites it in place.
	Seq []byte
	// Qual holds Phred+33 qualities, one per base, or is empty if the source
	// has no qualities.
	Qual []byte

	// Simulated is set if the read carries the origin it was simulated from.
	Simulated           bool
	SimulatedSeqIndex   int
	SimulatedCoordinate int
}

// Len returns the number of bases.
func (r *Read) Len() int {
	return len(r.Seq)
}

// HasQual returns true iff the read has one quality per base.
func (r *Read) HasQual() bool {
	return len(r.Qual) > 0 && len(r.Qual) == len(r.Seq)
}

// Mask overwrites the bases outside hq with MaskBase.  Qualities are left
// alone.
func (r *Read) Mask(hq interval.Interval) {
	hq = hq.Clip(0, r.Len())
	if hq.Start > 0 {
		simd.Memset8(r.Seq[:hq.Start], MaskBase)
	}
	if hq.End < r.Len() {
		simd.Memset8(r.Seq[hq.End:], MaskBase)
	}
}
