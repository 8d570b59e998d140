package fasta

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// ErrInvalid is returned when data precedes the first '>' header line.
var ErrInvalid = errors.New("invalid FASTA file")

var errEOF = errors.New("eof")

// Record is a single FASTA sequence.  Name is the header text after '>' up to
// the first space or tab; Desc is the remainder of the header line.
type Record struct {
	Name, Desc string
	Seq        []byte
}

// Scanner reads FASTA records one at a time, without loading the whole file.
// Records with empty sequences are kept, and records are returned in input
// order even if names repeat.  Scanners are not threadsafe.
type Scanner struct {
	r      *bufio.Reader
	header []byte // header line of the next record, if already read.
	err    error
}

// NewScanner constructs a Scanner that reads FASTA data from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, 1<<20)}
}

// Scan reads the next record into rec.  rec.Seq is reused across calls, so
// its contents are valid only until the next Scan.  Scan returns false at
// the end of the stream or on error; the caller should then check Err.
func (s *Scanner) Scan(rec *Record) bool {
	if s.err != nil {
		return false
	}
	header := s.header
	s.header = nil
	for header == nil {
		line, err := s.readLine()
		if err != nil {
			s.setErr(err)
			return false
		}
		if len(line) == 0 {
			continue
		}
		if line[0] != '>' {
			s.err = ErrInvalid
			return false
		}
		header = line
	}
	rec.Name, rec.Desc = splitHeader(header[1:])
	rec.Seq = rec.Seq[:0]
	for {
		line, err := s.readLine()
		if err != nil {
			s.setErr(err)
			return err == io.EOF
		}
		if len(line) > 0 && line[0] == '>' {
			s.header = line
			return true
		}
		rec.Seq = append(rec.Seq, line...)
	}
}

// Err returns the scanning error, if any.
func (s *Scanner) Err() error {
	if s.err == errEOF {
		return nil
	}
	return s.err
}

func (s *Scanner) setErr(err error) {
	if err == io.EOF {
		s.err = errEOF
		return
	}
	s.err = errors.Wrap(err, "read FASTA")
}

// readLine returns the next line without its terminator.  The returned slice
// is not shared with the reader's buffer.
func (s *Scanner) readLine() ([]byte, error) {
	line, err := s.r.ReadBytes('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	return bytes.TrimRight(line, "\r\n"), err
}

func splitHeader(h []byte) (name, desc string) {
	i := bytes.IndexAny(h, " \t")
	if i < 0 {
		return string(h), ""
	}
	return string(h[:i]), string(bytes.TrimLeft(h[i:], " \t"))
}
