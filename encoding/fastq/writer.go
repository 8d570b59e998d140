package fastq

import (
	"io"

	"github.com/pkg/errors"
)

var newline = []byte{'\n'}

// Writer is a FASTQ file writer.
type Writer struct {
	w          io.Writer
	lineLength int
	err        error
}

// NewWriter constructs a new FASTQ writer that writes reads to the underlying
// writer w.  If lineLength is positive, the sequence and quality lines are
// wrapped every lineLength bases; otherwise each is written on one line.
func NewWriter(w io.Writer, lineLength int) *Writer {
	return &Writer{w: w, lineLength: lineLength}
}

// Write writes the read r in FASTQ format.  The ID and line 3 are written
// verbatim, so they must carry their '@' and '+' prefixes.  An error is
// returned if the write failed or if the sequence and quality lengths differ.
func (w *Writer) Write(r *Read) error {
	if w.err == nil && len(r.Seq) != len(r.Qual) {
		return errors.Errorf("%s: sequence length %d, quality length %d", r.ID, len(r.Seq), len(r.Qual))
	}
	w.writeln(r.ID)
	w.writeWrapped(r.Seq)
	w.writeln(r.Unk)
	w.writeWrapped(r.Qual)
	return w.err
}

func (w *Writer) writeWrapped(s string) {
	if w.lineLength <= 0 || len(s) <= w.lineLength {
		w.writeln(s)
		return
	}
	for len(s) > 0 {
		n := w.lineLength
		if n > len(s) {
			n = len(s)
		}
		w.writeln(s[:n])
		s = s[n:]
	}
}

func (w *Writer) writeln(line string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, line)
	if w.err == nil {
		_, w.err = w.w.Write(newline)
	}
}
