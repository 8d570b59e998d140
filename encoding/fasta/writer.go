package fasta

import (
	"io"
	"strings"

	"github.com/grailbio/base/tsv"
	"github.com/pkg/errors"
)

// IndexEntry describes one written sequence in samtools faidx terms
// (http://www.htslib.org/doc/faidx.html).
type IndexEntry struct {
	Name string
	// Length is the number of bases.
	Length int64
	// Offset is the byte offset of the first base.
	Offset int64
	// LineBases is the number of bases per line, LineWidth the number of bytes
	// per line including the newline.
	LineBases, LineWidth int64
}

// Writer writes FASTA records, optionally wrapping sequences, and remembers
// where each record landed so that a .fai index can be emitted afterwards.
type Writer struct {
	w          io.Writer
	lineLength int
	off        int64
	index      []IndexEntry
	err        error
}

var newline = []byte{'\n'}

// NewWriter constructs a FASTA writer.  If lineLength is positive, sequences
// are wrapped every lineLength bases; otherwise each is written on one line.
func NewWriter(w io.Writer, lineLength int) *Writer {
	return &Writer{w: w, lineLength: lineLength}
}

// Write writes one record with the given title (without the leading '>').
func (w *Writer) Write(title string, seq []byte) error {
	w.writeString(">")
	w.writeString(title)
	w.write(newline)
	ent := IndexEntry{
		Name:   indexName(title),
		Length: int64(len(seq)),
		Offset: w.off,
	}
	lineBases := len(seq)
	if w.lineLength > 0 && lineBases > w.lineLength {
		lineBases = w.lineLength
	}
	ent.LineBases = int64(lineBases)
	ent.LineWidth = int64(lineBases + 1)
	for len(seq) > 0 {
		n := lineBases
		if n > len(seq) {
			n = len(seq)
		}
		w.write(seq[:n])
		w.write(newline)
		seq = seq[n:]
	}
	if w.err == nil {
		w.index = append(w.index, ent)
	}
	return w.err
}

// Index returns the index entries of the records written so far.
func (w *Writer) Index() []IndexEntry {
	return w.index
}

// WriteIndex writes the .fai index of the records written so far to out.
func (w *Writer) WriteIndex(out io.Writer) error {
	tsvOut := tsv.NewWriter(out)
	for _, ent := range w.index {
		tsvOut.WriteString(ent.Name)
		tsvOut.WriteInt64(ent.Length)
		tsvOut.WriteInt64(ent.Offset)
		tsvOut.WriteInt64(ent.LineBases)
		tsvOut.WriteInt64(ent.LineWidth)
		if err := tsvOut.EndLine(); err != nil {
			return errors.Wrap(err, "write FASTA index")
		}
	}
	return errors.Wrap(tsvOut.Flush(), "write FASTA index")
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	var n int
	n, w.err = io.WriteString(w.w, s)
	w.off += int64(n)
}

func (w *Writer) write(b []byte) {
	if w.err != nil {
		return
	}
	var n int
	n, w.err = w.w.Write(b)
	w.off += int64(n)
}

// indexName returns the sequence name samtools would use for the title.
func indexName(title string) string {
	if i := strings.IndexAny(title, " \t"); i >= 0 {
		return title[:i]
	}
	return title
}
