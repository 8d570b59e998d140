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
	"bufio"
	"context"
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/subread/regiontable"
)

const programName = "bio-pls2fasta"

// Run extracts subreads from the reads in readsPath (a FASTA/FASTQ file or a
// .fofn listing several) and writes them to outPath.
func Run(ctx context.Context, opts Opts, readsPath, outPath string) (err error) {
	log.Printf("[%s] started.", programName)
	if err = validate(&opts); err != nil {
		return err
	}
	readFiles, err := ExpandFOFN(ctx, readsPath)
	if err != nil {
		return err
	}
	var regionFiles, ccsFiles []string
	if opts.RegionTablePath != "" {
		if regionFiles, err = ExpandFOFN(ctx, opts.RegionTablePath); err != nil {
			return err
		}
	}
	regionFiles, err = MatchRegionFiles(readFiles, regionFiles)
	if err != nil {
		return err
	}
	tables, err := loadRegionTables(ctx, &opts, regionFiles)
	if err != nil {
		return err
	}
	if opts.PrintOnlyBest && opts.CCSPath != "" {
		if ccsFiles, err = ExpandFOFN(ctx, opts.CCSPath); err != nil {
			return err
		}
		if len(ccsFiles) != len(readFiles) {
			return errors.E(errors.Invalid, fmt.Sprintf("%d consensus files for %d read files", len(ccsFiles), len(readFiles)))
		}
	}

	out, err := file.Create(ctx, outPath)
	if err != nil {
		return errors.E(err, "create", outPath)
	}
	w := bufio.NewWriterSize(out.Writer(ctx), 1<<20)
	rw := NewRecordWriter(w, opts.Format, opts.LineLength)
	ex, err := NewExtractor(opts, rw)
	if err != nil {
		out.Close(ctx) // nolint: errcheck
		return err
	}
	for i, path := range readFiles {
		var ccsPath string
		if ccsFiles != nil {
			ccsPath = ccsFiles[i]
		}
		ex.SetRegionTable(tables[i])
		if err = processFile(ctx, ex, path, ccsPath); err != nil {
			out.Close(ctx) // nolint: errcheck
			return err
		}
	}
	if err = w.Flush(); err != nil {
		out.Close(ctx) // nolint: errcheck
		return errors.E(err, "write", outPath)
	}
	if err = out.Close(ctx); err != nil {
		return errors.E(err, "close", outPath)
	}
	if opts.WriteIndex {
		if err = writeIndex(ctx, rw, outPath+".fai"); err != nil {
			return err
		}
	}
	log.Printf("[%s] ended.", programName)
	return nil
}

// loadRegionTables reads the region table paired with each read file in
// parallel.  The table is nil for read files without one, or if no option
// consults region tables.
func loadRegionTables(ctx context.Context, opts *Opts, paths []string) ([]*regiontable.Table, error) {
	tables := make([]*regiontable.Table, len(paths))
	if !opts.TrimByRegion && !opts.MaskByRegion && !opts.SplitSubreads {
		return tables, nil
	}
	err := traverse.Each(len(paths), func(i int) error {
		if paths[i] == "" {
			return nil
		}
		t, err := regiontable.ReadFile(ctx, paths[i])
		if err != nil {
			return err
		}
		log.Debug.Printf("%s: %d holes", paths[i], t.Len())
		tables[i] = t
		return nil
	})
	return tables, err
}

// processFile runs ex over one read file.
func processFile(ctx context.Context, ex *Extractor, path, ccsPath string) (err error) {
	reads, err := OpenReads(ctx, path)
	if err != nil {
		return err
	}
	defer closeReads(ctx, reads, &err)
	var ccs *ReadFile
	if ccsPath != "" {
		if ccs, err = OpenReads(ctx, ccsPath); err != nil {
			return err
		}
		defer closeReads(ctx, ccs, &err)
	}

	var (
		read, ccsRead Read
		n             int
	)
	for reads.Scan(&read) {
		var ccsp *Read
		if ccs != nil {
			if !ccs.Scan(&ccsRead) {
				if err := ccs.Err(); err != nil {
					return err
				}
				return errors.E(errors.Invalid, fmt.Sprintf("%s has fewer reads than %s", ccsPath, path))
			}
			ccsp = &ccsRead
		}
		if err := ex.Process(&read, ccsp); err != nil {
			return errors.E(err, "write")
		}
		n++
	}
	if err := reads.Err(); err != nil {
		return err
	}
	log.Debug.Printf("%s: %d reads", path, n)
	return nil
}

func closeReads(ctx context.Context, f *ReadFile, err *error) {
	if cerr := f.Close(ctx); cerr != nil && *err == nil {
		*err = errors.E(cerr, "close", f.path)
	}
}

func writeIndex(ctx context.Context, rw *RecordWriter, path string) error {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "create", path)
	}
	w := bufio.NewWriter(out.Writer(ctx))
	if err := rw.WriteIndex(w); err != nil {
		out.Close(ctx) // nolint: errcheck
		return errors.E(err, path)
	}
	if err := w.Flush(); err != nil {
		out.Close(ctx) // nolint: errcheck
		return errors.E(err, "write", path)
	}
	return out.Close(ctx)
}
