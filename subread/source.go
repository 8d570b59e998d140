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
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/subread/encoding/fasta"
	"github.com/grailbio/subread/encoding/fastq"
	"github.com/klauspost/compress/gzip"
)

// Capabilities describes the optional fields a ReadSource can fill.
type Capabilities struct {
	// Quality is set if reads carry per-base qualities.
	Quality bool
	// Simulated is set if reads may carry their simulated origin.
	Simulated bool
}

// ReadSource yields reads one at a time.  Scan fills r and returns true, or
// returns false at the end of the input or on error, after which Err reports
// the error, if any.  The buffers of r may be reused by the next Scan.
type ReadSource interface {
	Scan(r *Read) bool
	Err() error
	Caps() Capabilities
}

// Header attributes that carry the simulated origin of a read.
const (
	simulatedSeqIndexAttr   = "SimulatedSequenceIndex"
	simulatedCoordinateAttr = "SimulatedCoordinate"
)

type fastqSource struct {
	s   *fastq.Scanner
	rec fastq.Read
	err error
}

// NewFASTQSource returns a ReadSource that parses FASTQ data.  Read names
// must have the form "<movie>/<holeNumber>[/...]".
func NewFASTQSource(r io.Reader) ReadSource {
	return &fastqSource{s: fastq.NewScanner(r, fastq.ID|fastq.Seq|fastq.Qual)}
}

func (s *fastqSource) Scan(r *Read) bool {
	if s.err != nil || !s.s.Scan(&s.rec) {
		return false
	}
	if len(s.rec.Seq) != len(s.rec.Qual) {
		s.err = errors.E(errors.Invalid, fmt.Sprintf("%s: %d bases but %d qualities",
			s.rec.Name(), len(s.rec.Seq), len(s.rec.Qual)))
		return false
	}
	r.Seq = append(r.Seq[:0], s.rec.Seq...)
	r.Qual = append(r.Qual[:0], s.rec.Qual...)
	if s.err = fillHeader(r, s.rec.Name(), s.rec.Desc()); s.err != nil {
		return false
	}
	return true
}

func (s *fastqSource) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.s.Err()
}

func (s *fastqSource) Caps() Capabilities {
	return Capabilities{Quality: true, Simulated: true}
}

type fastaSource struct {
	s   *fasta.Scanner
	rec fasta.Record
	err error
}

// NewFASTASource returns a ReadSource that parses FASTA data.  Reads have no
// qualities.  Read names must have the form "<movie>/<holeNumber>[/...]".
func NewFASTASource(r io.Reader) ReadSource {
	return &fastaSource{s: fasta.NewScanner(r)}
}

func (s *fastaSource) Scan(r *Read) bool {
	if s.err != nil || !s.s.Scan(&s.rec) {
		return false
	}
	r.Seq = append(r.Seq[:0], s.rec.Seq...)
	r.Qual = r.Qual[:0]
	if s.err = fillHeader(r, s.rec.Name, s.rec.Desc); s.err != nil {
		return false
	}
	return true
}

func (s *fastaSource) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.s.Err()
}

func (s *fastaSource) Caps() Capabilities {
	return Capabilities{Simulated: true}
}

// fillHeader sets the fields of r that come from the header line.
func fillHeader(r *Read, name, desc string) (err error) {
	r.Title = name
	if r.HoleNumber, err = ParseHoleNumber(name); err != nil {
		return err
	}
	r.Simulated, r.SimulatedSeqIndex, r.SimulatedCoordinate = false, 0, 0
	var haveIndex, haveCoord bool
	for _, attr := range strings.Fields(desc) {
		kv := strings.SplitN(attr, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case simulatedSeqIndexAttr:
			if r.SimulatedSeqIndex, err = strconv.Atoi(kv[1]); err != nil {
				return errors.E(errors.Invalid, err, name)
			}
			haveIndex = true
		case simulatedCoordinateAttr:
			if r.SimulatedCoordinate, err = strconv.Atoi(kv[1]); err != nil {
				return errors.E(errors.Invalid, err, name)
			}
			haveCoord = true
		}
	}
	r.Simulated = haveIndex && haveCoord
	return nil
}

// ParseHoleNumber extracts the hole number from a read name of the form
// "<movie>/<holeNumber>[/...]".
func ParseHoleNumber(name string) (int, error) {
	parts := strings.SplitN(name, "/", 3)
	if len(parts) < 2 || parts[0] == "" {
		return 0, errors.E(errors.Invalid, fmt.Sprintf("read name %q: expected <movie>/<holeNumber>", name))
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h < 0 {
		return 0, errors.E(errors.Invalid, fmt.Sprintf("read name %q: bad hole number %q", name, parts[1]))
	}
	return h, nil
}

// ReadFile is a ReadSource that reads a FASTA or FASTQ file.
type ReadFile struct {
	ReadSource
	path string
	in   file.File
	gz   *gzip.Reader
}

var (
	fastqExts = []string{".fastq", ".fq"}
	fastaExts = []string{".fasta", ".fa", ".fna", ".fas"}
)

func hasExt(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// OpenReads opens a read file.  The format is chosen by extension: .fastq and
// .fq are FASTQ, .fasta, .fa, .fna and .fas are FASTA, each optionally
// followed by .gz.
func OpenReads(ctx context.Context, path string) (*ReadFile, error) {
	base := path
	gzipped := fileio.DetermineType(path) == fileio.Gzip
	if gzipped {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	var newSource func(io.Reader) ReadSource
	switch {
	case hasExt(base, fastqExts):
		newSource = NewFASTQSource
	case hasExt(base, fastaExts):
		newSource = NewFASTASource
	default:
		return nil, errors.E(errors.Invalid, "could not determine the file type of", path)
	}
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "could not open", path)
	}
	f := &ReadFile{path: path, in: in}
	r := io.Reader(in.Reader(ctx))
	if gzipped {
		if f.gz, err = gzip.NewReader(r); err != nil {
			in.Close(ctx) // nolint: errcheck
			return nil, errors.E(err, "could not initialize", path)
		}
		r = f.gz
	}
	f.ReadSource = newSource(r)
	return f, nil
}

// Err returns the scanning error, if any, annotated with the file path.
func (f *ReadFile) Err() error {
	if err := f.ReadSource.Err(); err != nil {
		return errors.E(err, f.path)
	}
	return nil
}

// Close closes the underlying file.
func (f *ReadFile) Close(ctx context.Context) error {
	var err error
	if f.gz != nil {
		err = f.gz.Close()
	}
	if cerr := f.in.Close(ctx); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
