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
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/subread/interval"
	"github.com/grailbio/subread/regiontable"
)

// Format is an output sequence format.
type Format int

const (
	// FASTA writes ">title" followed by the (possibly wrapped) sequence.
	FASTA Format = iota
	// FASTQ writes "@title", sequence, "+", quality.
	FASTQ
)

func (f Format) String() string {
	switch f {
	case FASTA:
		return "fasta"
	case FASTQ:
		return "fastq"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat converts "fasta" or "fastq" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "fasta", "fa":
		return FASTA, nil
	case "fastq", "fq":
		return FASTQ, nil
	}
	return FASTA, errors.E(errors.Invalid, fmt.Sprintf("unknown output format %q", s))
}

// MaxReadScore is the largest HQ region score.
const MaxReadScore = regiontable.MaxScore

// Opts configures subread extraction.
type Opts struct {
	// TrimByRegion clips subreads to the HQ region.
	TrimByRegion bool
	// MaskByRegion replaces bases outside the HQ region with 'N'.  It cannot be
	// combined with TrimByRegion.
	MaskByRegion bool
	// SplitSubreads splits reads at adapters.  When false, every read is written
	// whole, without a coordinate suffix.
	SplitSubreads bool
	// MinSubreadLength drops subreads of this length or shorter.
	MinSubreadLength int
	// MinReadScore drops every subread of a read whose HQ score is lower.
	MinReadScore int
	// HoleNumbers, if nonempty, restricts output to holes in these half-open
	// ranges.
	HoleNumbers []interval.Interval
	// PrintOnlyBest writes one record per read: the consensus sequence if there
	// is one, otherwise the subread with the greatest length*score.
	PrintOnlyBest bool
	// PrintCCS treats the input reads as consensus sequences and writes each
	// of them whole.
	PrintCCS bool
	// Format is the output format.
	Format Format
	// LineLength wraps output sequences; 0 writes each on one line.
	LineLength int
	// IncludeSimulatedMetadata appends the simulated origin of each read to
	// its subread titles.
	IncludeSimulatedMetadata bool

	// RegionTablePath is a region table TSV, or a .fofn listing several.
	// Optional.
	RegionTablePath string
	// CCSPath holds consensus reads aligned with the input reads, or a .fofn
	// listing one such file per input.  Only used with PrintOnlyBest.
	CCSPath string
	// WriteIndex writes a samtools .fai index next to FASTA output.
	WriteIndex bool
}

// DefaultOpts are the defaults of the bio-pls2fasta command.
var DefaultOpts = Opts{
	SplitSubreads: true,
	Format:        FASTA,
	LineLength:    50,
}

func validate(opts *Opts) error {
	if opts.TrimByRegion && opts.MaskByRegion {
		return errors.E(errors.Invalid, "you cannot both trim and mask regions; use one or the other")
	}
	if opts.MinSubreadLength < 0 {
		return errors.E(errors.Invalid, "min-subread-length must be non-negative")
	}
	if opts.MinReadScore < 0 || opts.MinReadScore > MaxReadScore {
		return errors.E(errors.Invalid, fmt.Sprintf("min-read-score must be in [0, %d]", MaxReadScore))
	}
	if opts.LineLength < 0 {
		return errors.E(errors.Invalid, "line-length must be non-negative")
	}
	if opts.Format != FASTA && opts.Format != FASTQ {
		return errors.E(errors.Invalid, fmt.Sprintf("unknown output format %v", opts.Format))
	}
	if opts.WriteIndex && opts.Format != FASTA {
		return errors.E(errors.Invalid, "an index can only be written for FASTA output")
	}
	return nil
}
