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
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/subread/encoding/fasta"
	"github.com/grailbio/subread/encoding/fastq"
	"github.com/grailbio/subread/interval"
)

// Record is one output sequence: a subread, a whole read, or a consensus
// read.  Seq and Qual alias the buffers of the read the record was cut from,
// so a Record must be written before that read is rescanned.
type Record struct {
	Title string
	// Interval is the position of the record in its read.
	Interval interval.Interval
	Seq      []byte
	// Qual is empty if the read has no qualities.
	Qual []byte
	// Score is Interval.Len() times the HQ score of the read.
	Score int
}

// newRecord cuts iv out of r.
func newRecord(r *Read, title string, iv interval.Interval, hqScore int) Record {
	rec := Record{
		Title:    title,
		Interval: iv,
		Seq:      r.Seq[iv.Start:iv.End],
		Score:    iv.Len() * hqScore,
	}
	if r.HasQual() {
		rec.Qual = r.Qual[iv.Start:iv.End]
	}
	return rec
}

// wholeRecord returns r as a record, with its own title.
func wholeRecord(r *Read) Record {
	return newRecord(r, r.Title, interval.New(0, r.Len()), 0)
}

// subreadTitle returns the title of the subread iv of r: the read title,
// then "/<start>_<end>" when splitting, then "/chrIndex_<i>/position_<p>"
// when simulated metadata is requested and the read has it.
func subreadTitle(r *Read, iv interval.Interval, opts *Opts) string {
	var b strings.Builder
	b.WriteString(r.Title)
	if opts.SplitSubreads {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(iv.Start))
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(iv.End))
	}
	if opts.IncludeSimulatedMetadata && r.Simulated {
		b.WriteString("/chrIndex_")
		b.WriteString(strconv.Itoa(r.SimulatedSeqIndex))
		b.WriteString("/position_")
		b.WriteString(strconv.Itoa(r.SimulatedCoordinate))
	}
	return b.String()
}

// RecordWriter writes records in one output format.
type RecordWriter struct {
	format Format
	fa     *fasta.Writer
	fq     *fastq.Writer
	qual   []byte // scratch for records without qualities.
}

// NewRecordWriter creates a RecordWriter that writes to w.  lineLength wraps
// sequences (and qualities) as in fasta.NewWriter.
func NewRecordWriter(w io.Writer, format Format, lineLength int) *RecordWriter {
	rw := &RecordWriter{format: format}
	switch format {
	case FASTQ:
		rw.fq = fastq.NewWriter(w, lineLength)
	default:
		rw.fa = fasta.NewWriter(w, lineLength)
	}
	return rw
}

// Write writes one record.  In FASTQ, a record without qualities gets
// MissingQual for every base.
func (rw *RecordWriter) Write(rec *Record) error {
	if rw.fa != nil {
		return rw.fa.Write(rec.Title, rec.Seq)
	}
	qual := rec.Qual
	if len(qual) != len(rec.Seq) {
		if cap(rw.qual) < len(rec.Seq) {
			rw.qual = bytes.Repeat([]byte{MissingQual}, len(rec.Seq))
		}
		qual = rw.qual[:len(rec.Seq)]
	}
	return rw.fq.Write(&fastq.Read{
		ID:   "@" + rec.Title,
		Seq:  string(rec.Seq),
		Unk:  "+",
		Qual: string(qual),
	})
}

// WriteIndex writes a .fai index of the records written so far.  It is an
// error for FASTQ output.
func (rw *RecordWriter) WriteIndex(out io.Writer) error {
	if rw.fa == nil {
		return errors.E(errors.Invalid, fmt.Sprintf("cannot index %v output", rw.format))
	}
	return rw.fa.WriteIndex(out)
}

// FormatRecord returns rec as text in the given format.
func FormatRecord(rec *Record, format Format, lineLength int) (string, error) {
	var buf bytes.Buffer
	if err := NewRecordWriter(&buf, format, lineLength).Write(rec); err != nil {
		return "", err
	}
	return buf.String(), nil
}
