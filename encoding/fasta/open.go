package fasta

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
)

// Load reads the record named name (or the first record, if name is empty)
// from the FASTA file at path.  path may be any path supported by
// grailbio/base/file, e.g. a local file or an s3:// URL.  Gzipped files
// (".gz") are decompressed on the fly.  If indexPath is nonempty, the .fai
// index there is used to seek directly to the record; this does not work
// with gzipped files.
func Load(ctx context.Context, path, indexPath, name string, userOpts ...Opt) (rec Record, err error) {
	gzipped := fileio.DetermineType(path) == fileio.Gzip
	if gzipped && indexPath != "" {
		return Record{}, errors.E(errors.Invalid, "fasta: an index can't be used with gzipped FASTA:", path)
	}
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return
	}
	defer file.CloseAndReport(ctx, in, &err)

	if indexPath != "" {
		var idx file.File
		if idx, err = file.Open(ctx, indexPath); err != nil {
			return
		}
		defer file.CloseAndReport(ctx, idx, &err)
		return ReadIndexedRecord(in.Reader(ctx), idx.Reader(ctx), name, userOpts...)
	}

	reader := io.Reader(in.Reader(ctx))
	if gzipped {
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(reader); err != nil {
			return
		}
		defer func() {
			if e := gz.Close(); e != nil && err == nil {
				err = e
			}
		}()
		reader = gz
	}
	return ReadRecord(reader, name, userOpts...)
}
