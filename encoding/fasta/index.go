package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
)

// IndexEntry is one line of a .fai index.
type IndexEntry struct {
	// Name is the sequence name.
	Name string
	// Length is the number of bases in the sequence.
	Length uint64
	// Offset is the byte offset of the sequence's first base.
	Offset uint64
	// LineBase is the number of bases per line.
	LineBase uint64
	// LineWidth is the number of bytes per line, including the terminator.
	LineWidth uint64
}

// ReadIndex parses a .fai index.  Index files consist of one tab-separated
// line per sequence in the associated FASTA file.  The format is:
// "<sequence name>\t<length>\t<byte offset>\t<bases per line>\t<bytes per
// line>".  For example: "chr3\t12345\t9000\t80\t81".
func ReadIndex(r io.Reader) ([]IndexEntry, error) {
	var entries []IndexEntry
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 5 {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("fasta: invalid index line %d: %s", lineno, line))
		}
		ent := IndexEntry{Name: fields[0]}
		var vals [4]uint64
		for i := range vals {
			v, err := strconv.ParseUint(fields[i+1], 10, 64)
			if err != nil {
				return nil, errors.E(errors.Invalid, err, fmt.Sprintf("fasta: invalid index line %d: %s", lineno, line))
			}
			vals[i] = v
		}
		ent.Length, ent.Offset, ent.LineBase, ent.LineWidth = vals[0], vals[1], vals[2], vals[3]
		if ent.Length > 0 && (ent.LineBase == 0 || ent.LineWidth < ent.LineBase) {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("fasta: inconsistent line geometry in index line %d: %s", lineno, line))
		}
		entries = append(entries, ent)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E(err, "fasta: reading index")
	}
	return entries, nil
}

// scanIndex computes the index entries of the FASTA data in r.
func scanIndex(in io.Reader) (entries []IndexEntry, err error) {
	var (
		r       = bufio.NewReader(in)
		cur     IndexEntry
		inSeq   bool
		cumByte uint64
		eof     bool
	)
	for !eof {
		fullLine, e := r.ReadBytes('\n')
		if e == io.EOF { // Process fullLine, then exit the loop
			eof = true
		} else if e != nil {
			return nil, e
		}
		cumByte += uint64(len(fullLine))
		line := bytes.TrimRight(fullLine, "\r\n")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // Start a new sequence.
			if inSeq {
				entries = append(entries, cur)
			}
			cur = IndexEntry{Name: seqNameFromHeader(line), Offset: cumByte}
			inSeq = true
			continue
		}
		if !inSeq {
			return nil, errors.E(errors.Invalid, "malformed FASTA file")
		}
		if cur.LineWidth == 0 {
			cur.LineWidth = uint64(len(fullLine))
			cur.LineBase = uint64(len(line))
		}
		cur.Length += uint64(len(line))
	}
	if cumByte == 0 {
		return nil, errors.E(errors.Invalid, "empty FASTA file")
	}
	if inSeq {
		entries = append(entries, cur)
	}
	return entries, nil
}

// GenerateIndex generates an index (*.fai) from FASTA.  The index can be later
// passed to ReadIndexedRecord() to load one sequence of a large FASTA file
// without reading the others.
//
// The index format is defined by "samtool faidx"
// (http://www.htslib.org/doc/faidx.html).
func GenerateIndex(out io.Writer, in io.Reader) error {
	entries, err := scanIndex(in)
	if err != nil {
		return err
	}
	tsvOut := tsv.NewWriter(out)
	for _, ent := range entries {
		tsvOut.WriteString(ent.Name)
		tsvOut.WriteInt64(int64(ent.Length))
		tsvOut.WriteInt64(int64(ent.Offset))
		tsvOut.WriteInt64(int64(ent.LineBase))
		tsvOut.WriteInt64(int64(ent.LineWidth))
		if err := tsvOut.EndLine(); err != nil {
			return err
		}
	}
	return tsvOut.Flush()
}
