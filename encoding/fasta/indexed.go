package fasta

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"v.io/x/lib/vlog"
)

// findEntry returns the entry named name, or the first entry if name is
// empty.
func findEntry(entries []IndexEntry, name string) (IndexEntry, error) {
	if name == "" {
		if len(entries) == 0 {
			return IndexEntry{}, errors.Errorf("empty FASTA index")
		}
		return entries[0], nil
	}
	for _, ent := range entries {
		if ent.Name == name {
			return ent, nil
		}
	}
	return IndexEntry{}, fmt.Errorf("sequence not found in index: %s", name)
}

// ReadIndexedRecord loads the record named name (or the first record, if
// name is empty) from fa, seeking directly to it with the help of the .fai
// index read from index.
func ReadIndexedRecord(fa io.ReadSeeker, index io.Reader, name string, userOpts ...Opt) (Record, error) {
	entries, err := ReadIndex(index)
	if err != nil {
		return Record{}, err
	}
	ent, err := findEntry(entries, name)
	if err != nil {
		return Record{}, err
	}
	seq, err := readEntry(fa, ent)
	if err != nil {
		return Record{}, err
	}
	vlog.VI(1).Infof("fasta: loaded %s (%d bases) at offset %d", ent.Name, ent.Length, ent.Offset)
	makeOpts(userOpts...).apply(seq)
	return Record{Name: ent.Name, Seq: seq}, nil
}

// readEntry reads the bases of ent, dropping line terminators.
func readEntry(fa io.ReadSeeker, ent IndexEntry) ([]byte, error) {
	if newOffset, err := fa.Seek(int64(ent.Offset), io.SeekStart); err != nil || newOffset != int64(ent.Offset) {
		return nil, fmt.Errorf("failed to seek to offset %d: %d, %v", ent.Offset, newOffset, err)
	}
	seq := make([]byte, ent.Length)
	bufR := bufio.NewReader(fa)
	var basesRead uint64
	for basesRead < ent.Length {
		// Compute length of the next line (may be partial if it's the last).
		nextBasesRead := basesRead + ent.LineBase
		if nextBasesRead > ent.Length {
			nextBasesRead = ent.Length
		}
		if _, err := io.ReadFull(bufR, seq[basesRead:nextBasesRead]); err != nil {
			return nil, errors.Wrapf(err, "reading %s (bad index? file doesn't end in newline?)", ent.Name)
		}
		basesRead = nextBasesRead

		// Skip line terminator(s) unless we're at the end of the sequence.
		if basesRead < ent.Length {
			if _, err := bufR.Discard(int(ent.LineWidth - ent.LineBase)); err != nil {
				return nil, errors.Wrapf(err, "skipping line terminator in %s", ent.Name)
			}
		}
	}
	return seq, nil
}
