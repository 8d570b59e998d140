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
	"github.com/grailbio/subread/regiontable"
)

// Extractor turns reads into output records.  It is not threadsafe.
type Extractor struct {
	opts  Opts
	holes *HoleNumberSet
	table *regiontable.Table
	out   *RecordWriter
	recs  []Record // scratch
}

// NewExtractor creates an Extractor that writes to out.  It returns an error
// if opts are inconsistent, e.g. if both trimming and masking are requested.
func NewExtractor(opts Opts, out *RecordWriter) (*Extractor, error) {
	if err := validate(&opts); err != nil {
		return nil, err
	}
	return &Extractor{
		opts:  opts,
		holes: NewHoleNumberSet(opts.HoleNumbers),
		out:   out,
	}, nil
}

// SetRegionTable sets the region table for the reads that follow.  A nil
// table means no read has region annotations.
func (e *Extractor) SetRegionTable(t *regiontable.Table) {
	e.table = t
}

// Subreads returns the subreads of r that pass the filters, in read order.
// In mask mode r.Seq is masked in place.  The records alias r.
func (e *Extractor) Subreads(r *Read) []Record {
	return e.appendSubreads(nil, r)
}

func (e *Extractor) appendSubreads(recs []Record, r *Read) []Record {
	hq, hqScore, _ := ResolveTrim(r, e.table, &e.opts)
	if e.opts.MaskByRegion {
		r.Mask(hq)
	}
	for _, iv := range GenerateIntervals(r, e.table, e.opts.SplitSubreads) {
		iv = Clip(iv, hq, e.opts.TrimByRegion)
		if !accept(iv, hqScore, &e.opts) {
			continue
		}
		recs = append(recs, newRecord(r, subreadTitle(r, iv, &e.opts), iv, hqScore))
	}
	return recs
}

// Process writes the records derived from r.  ccs is the consensus read at
// the same position of the consensus source, or nil if there is none; it is
// used only when PrintOnlyBest is set.  Reads outside the hole number filter
// and empty reads produce nothing.
func (e *Extractor) Process(r *Read, ccs *Read) error {
	if !e.holes.Allows(r.HoleNumber) || r.Len() == 0 {
		return nil
	}
	if e.opts.PrintCCS {
		rec := wholeRecord(r)
		return e.out.Write(&rec)
	}
	e.recs = e.appendSubreads(e.recs[:0], r)
	if !e.opts.PrintOnlyBest {
		for i := range e.recs {
			if err := e.out.Write(&e.recs[i]); err != nil {
				return err
			}
		}
		return nil
	}
	best, ok := SelectBest(e.recs)
	if ccs != nil && ccs.Len() > 0 {
		rec := wholeRecord(ccs)
		return e.out.Write(&rec)
	}
	if !ok {
		return nil
	}
	return e.out.Write(&best)
}
