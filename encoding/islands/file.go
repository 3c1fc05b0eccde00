package islands

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/cpgscan/cpg"
	"github.com/grailbio/hts/bgzf"
	"github.com/klauspost/compress/gzip"
)

// bgzfParallelism is the number of compression goroutines used for .bgz
// output.  Island lists are small, so there is no point in more.
const bgzfParallelism = 1

// WriteFile writes islands to path in the given format.  path may be any path
// supported by grailbio/base/file.  A ".gz" suffix selects gzip
// compression, and ".bgz" selects BGZF (bgzip-compatible) compression.  An
// empty path or "-" writes uncompressed data to stdout.
func WriteFile(ctx context.Context, path string, format Format, chrom string, seq []byte, islands []cpg.Island) (err error) {
	if path == "" || path == "-" {
		w := NewWriter(os.Stdout, format, chrom, seq)
		if err = w.WriteAll(islands); err != nil {
			return
		}
		return w.Flush()
	}

	var dst file.File
	if dst, err = file.Create(ctx, path); err != nil {
		return
	}
	defer file.CloseAndReport(ctx, dst, &err)

	var out io.Writer = dst.Writer(ctx)
	var compressor io.WriteCloser
	switch {
	case strings.HasSuffix(path, ".bgz"):
		compressor = bgzf.NewWriter(out, bgzfParallelism)
	case fileio.DetermineType(path) == fileio.Gzip:
		compressor = gzip.NewWriter(out)
	}
	if compressor != nil {
		defer func() {
			if e := compressor.Close(); e != nil && err == nil {
				err = e
			}
		}()
		out = compressor
	}

	w := NewWriter(out, format, chrom, seq)
	if err = w.WriteAll(islands); err != nil {
		return
	}
	if err = w.Flush(); err != nil {
		return
	}
	log.Debug.Printf("islands: wrote %d island(s) to %s (%v)", len(islands), path, format)
	return
}
