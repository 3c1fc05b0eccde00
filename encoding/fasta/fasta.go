// Package fasta loads a single named sequence from (optionally indexed) FASTA
// data.  See http://www.htslib.org/doc/faidx.html.  Briefly, FASTA files
// consist of a number of named sequences that may be interrupted by newlines.
// For example:
//
// >chr7
// ACGTAC
// GAGGAC
// GCG
// >chr8
// ACGT
//
// Note: Sequence names are defined to be the stretch of characters excluding
// spaces immediately after '>'.  Any text appear after a space are ignored.
// For example, '>chr1 A viral sequence' becomes 'chr1'.
package fasta

import (
	"bufio"
	"bytes"
	"io"

	"github.com/grailbio/cpgscan/biosimd"
	"github.com/pkg/errors"
	"v.io/x/lib/vlog"
)

const (
	bufferInitSize = 1024 * 1024 * 300 // 300 MB
)

// Record is one FASTA sequence with header and line breaks removed.
type Record struct {
	// Name is the first word of the header line.
	Name string
	// Seq is the concatenation of the record's residue lines.
	Seq []byte
}

// Encoding selects how sequence bytes are post-processed after loading.
type Encoding int

const (
	// Raw leaves the bytes exactly as they appear in the file.
	Raw Encoding = iota
	// CleanASCII capitalizes a/c/g/t and replaces every other byte with 'N'.
	CleanASCII
)

type opts struct {
	Enc Encoding
}

// Opt is an optional argument to ReadRecord and friends.
type Opt func(*opts)

// OptEncoding sets the encoding of the returned sequence.  The default is
// Raw.
func OptEncoding(enc Encoding) Opt {
	return func(o *opts) { o.Enc = enc }
}

func makeOpts(userOpts ...Opt) opts {
	parsedOpts := opts{Enc: Raw}
	for _, opt := range userOpts {
		opt(&parsedOpts)
	}
	return parsedOpts
}

func (o opts) apply(seq []byte) {
	if o.Enc == CleanASCII {
		biosimd.CleanASCIISeqInplace(seq)
	}
}

// seqNameFromHeader extracts the sequence name from a '>' line.
func seqNameFromHeader(line []byte) string {
	name := line[1:]
	if i := bytes.IndexAny(name, " \t"); i >= 0 {
		name = name[:i]
	}
	return string(name)
}

// ReadRecord streams FASTA data from r and returns the record named name, or
// the first record if name is empty.  Other records are skipped without
// being buffered.  Empty lines and '\r' line terminators are tolerated.
func ReadRecord(r io.Reader, name string, userOpts ...Opt) (Record, error) {
	parsedOpts := makeOpts(userOpts...)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, bufferInitSize)
	var (
		rec       Record
		sawHeader bool
		found     bool
		nonEmpty  bool
		nSkipped  int
	)
	for scanner.Scan() {
		line := bytes.TrimRight(scanner.Bytes(), "\r")
		if len(line) == 0 {
			continue
		}
		nonEmpty = true
		if line[0] == '>' { // Start a new sequence.
			if found {
				break
			}
			sawHeader = true
			seqName := seqNameFromHeader(line)
			if name == "" || seqName == name {
				rec.Name = seqName
				found = true
			} else {
				nSkipped++
			}
			continue
		}
		if !sawHeader {
			return Record{}, errors.Errorf("malformed FASTA file: sequence data before the first header")
		}
		if found {
			rec.Seq = append(rec.Seq, line...)
		}
	}
	if err := scanner.Err(); err != nil {
		return Record{}, errors.Wrap(err, "couldn't read FASTA data")
	}
	if !nonEmpty {
		return Record{}, errors.Errorf("empty FASTA file")
	}
	if !found {
		return Record{}, errors.Errorf("sequence not found: %s", name)
	}
	vlog.VI(1).Infof("fasta: loaded %s (%d bases), skipped %d records", rec.Name, len(rec.Seq), nSkipped)
	parsedOpts.apply(rec.Seq)
	return rec, nil
}
