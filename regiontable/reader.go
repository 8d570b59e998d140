package regiontable

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/tsv"
	"github.com/klauspost/compress/gzip"
)

type row struct {
	HoleNumber int64  `tsv:"HoleNumber"`
	RegionType string `tsv:"RegionType"`
	Start      int64  `tsv:"Start"`
	End        int64  `tsv:"End"`
	Score      int64  `tsv:"Score"`
}

// Read parses a region table from TSV data.  See the package comment for the
// format.
func Read(r io.Reader) (*Table, error) {
	tr := tsv.NewReader(r)
	tr.HasHeaderRow = true
	tr.ValidateHeader = true
	tr.Comment = '#'

	t := New()
	for nRow := 1; ; nRow++ {
		var rec row
		if err := tr.Read(&rec); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.E(err, fmt.Sprintf("region table row %d", nRow))
		}
		typ, err := ParseRegionType(rec.RegionType)
		if err != nil {
			return nil, errors.E(err, fmt.Sprintf("region table row %d", nRow))
		}
		if err := t.Add(int(rec.HoleNumber), typ, int(rec.Start), int(rec.End), int(rec.Score)); err != nil {
			return nil, errors.E(err, fmt.Sprintf("region table row %d", nRow))
		}
	}
	t.Finish()
	return t, nil
}

// ReadFile reads a region table from the given path.  Files ending in .gz are
// decompressed.
func ReadFile(ctx context.Context, path string) (t *Table, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open region table", path)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = errors.E(cerr, "close region table", path)
		}
	}()
	r := io.Reader(in.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.E(err, "region table", path)
		}
		defer gz.Close() // nolint: errcheck
		r = gz
	}
	if t, err = Read(r); err != nil {
		return nil, errors.E(err, path)
	}
	return t, nil
}
