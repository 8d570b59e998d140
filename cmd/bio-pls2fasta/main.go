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

package main

/*
bio-pls2fasta converts raw single-molecule reads to FASTA or FASTQ subreads.
Although FASTA files come with every run, they are neither trimmed nor split
into subreads.  This tool uses the region table (adapter positions and the
high-quality region of each read) to write the subsequences of the called
bases that are worth analyzing.  Most of the time you will want
-trim-by-region.

Usage:

  bio-pls2fasta [OPTIONS] reads.{fasta,fastq}[.gz]|reads.fofn out.{fasta,fastq}

Read names must have the form <movie>/<holeNumber>.  Region tables are TSV
files with the columns HoleNumber, RegionType, Start, End and Score.
*/

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/subread/subread"
)

var (
	trimByRegion      = flag.Bool("trim-by-region", false, "Trim away low quality regions.")
	maskByRegion      = flag.Bool("mask-by-region", false, "Mask low quality regions with 'N'.")
	regionTable       = flag.String("region-table", "", "Region table TSV, or a .fofn of region tables. Without one, no read has subreads unless -no-split-subreads is given.")
	minSubreadLength  = flag.Int("min-subread-length", subread.DefaultOpts.MinSubreadLength, "Do not write subreads of this length or shorter.")
	noSplitSubreads   = flag.Bool("no-split-subreads", false, "Do not split reads on adapter sequences.")
	holeNumbers       = flag.String("hole-numbers", "", "Only print these hole numbers, e.g. '5,10-12'.")
	fastq             = flag.Bool("fastq", false, "Print in FASTQ format with quality. Implies -line-length=0.")
	ccs               = flag.Bool("ccs", false, "The input reads are consensus (CCS) reads; print each of them whole.")
	ccsReads          = flag.String("ccs-reads", "", "Consensus reads aligned one-to-one with the input reads, or a .fofn of them. Used by -best.")
	lineLength        = flag.Int("line-length", subread.DefaultOpts.LineLength, "FASTA/FASTQ line length; 0 prints each sequence on one line.")
	minReadScore      = flag.Int("min-read-score", subread.DefaultOpts.MinReadScore, "Minimum read score to print a read. The score is a number between 0 and 1000 and represents the expected accuracy percentage * 10. A typical value would be between 750 and 800. This does not apply to ccs reads.")
	best              = flag.Bool("best", false, "If a CCS sequence exists, print it. Otherwise, print the subread with the greatest length * read score.")
	simulatedMetadata = flag.Bool("simulated-metadata", false, "Append the simulated origin (SimulatedSequenceIndex, SimulatedCoordinate header attributes) to titles.")
	index             = flag.Bool("index", false, "Also write a samtools .fai index of the FASTA output.")
)

func pls2fastaUsage() {
	fmt.Printf("Usage: %s [OPTIONS] reads out\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = pls2fastaUsage
	shutdown := grail.Init()
	defer shutdown()

	args := flag.Args()
	if len(args) != 2 {
		log.Fatalf("expected 2 positional arguments (reads and output path), got '%s'", strings.Join(args, " "))
	}
	holes, err := subread.ParseHoleNumbers(*holeNumbers)
	if err != nil {
		log.Fatalf("-hole-numbers: %v", err)
	}
	opts := subread.DefaultOpts
	opts.TrimByRegion = *trimByRegion
	opts.MaskByRegion = *maskByRegion
	opts.SplitSubreads = !*noSplitSubreads
	opts.MinSubreadLength = *minSubreadLength
	opts.MinReadScore = *minReadScore
	opts.HoleNumbers = holes
	opts.PrintOnlyBest = *best
	opts.PrintCCS = *ccs
	opts.LineLength = *lineLength
	opts.IncludeSimulatedMetadata = *simulatedMetadata
	opts.RegionTablePath = *regionTable
	opts.CCSPath = *ccsReads
	opts.WriteIndex = *index
	if *fastq {
		opts.Format = subread.FASTQ
		opts.LineLength = 0
	}

	ctx := vcontext.Background()
	if err := subread.Run(ctx, opts, args[0], args[1]); err != nil {
		log.Fatalf("%v", err)
	}
	log.Debug.Printf("exiting")
}
