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
	"path/filepath"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
)

// FOFNExt is the extension of file-of-filenames inputs.
const FOFNExt = ".fofn"

// ExpandFOFN returns the files named by path.  If path ends in .fofn it lists
// one file per line, blank lines and lines starting with '#' ignored;
// otherwise path itself is returned.
func ExpandFOFN(ctx context.Context, path string) (paths []string, err error) {
	if !strings.HasSuffix(path, FOFNExt) {
		return []string{path}, nil
	}
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open", path)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = errors.E(cerr, "close", path)
		}
	}()
	scanner := bufio.NewScanner(in.Reader(ctx))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E(err, "read", path)
	}
	if len(paths) == 0 {
		return nil, errors.E(errors.Invalid, path, "lists no files")
	}
	return paths, nil
}

// Extensions stripped by MovieKey.
var movieKeyExts = map[string]bool{
	".gz": true, ".fastq": true, ".fq": true, ".fasta": true, ".fa": true,
	".fna": true, ".fas": true, ".tsv": true, ".rgn": true, ".regions": true,
	".subreads": true, ".ccs": true,
}

// MovieKey returns the name a read file and its region file have in common:
// the base name without format extensions.  For example both
// "/data/m1.1.fastq.gz" and "m1.1.rgn.tsv" have the key "m1.1".
func MovieKey(path string) string {
	base := filepath.Base(path)
	for {
		ext := filepath.Ext(base)
		if ext == "" || !movieKeyExts[strings.ToLower(ext)] {
			return base
		}
		base = strings.TrimSuffix(base, ext)
	}
}

// MatchRegionFiles returns, for each read file, the region file that
// annotates it, or "" for every read file if there are no region files.  A
// single read file is paired with a single region file regardless of names;
// otherwise files are paired by MovieKey.
func MatchRegionFiles(readFiles, regionFiles []string) ([]string, error) {
	matched := make([]string, len(readFiles))
	if len(regionFiles) == 0 {
		return matched, nil
	}
	if len(readFiles) == 1 && len(regionFiles) == 1 {
		matched[0] = regionFiles[0]
		return matched, nil
	}
	byKey := map[string]string{}
	for _, path := range regionFiles {
		key := MovieKey(path)
		if prev, ok := byKey[key]; ok {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("region files %s and %s have the same movie %s", prev, path, key))
		}
		byKey[key] = path
	}
	for i, path := range readFiles {
		rgn, ok := byKey[MovieKey(path)]
		if !ok {
			return nil, errors.E(errors.NotExist, "no region table for", path)
		}
		matched[i] = rgn
	}
	return matched, nil
}
