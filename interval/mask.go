package interval

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/biogo/store/interval"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/klauspost/compress/gzip"
)

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved.  Any (group of) characters <= ' ' is
// treated as a delimiter.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
	return len(tokens)
}

// maskInterval is a half-open [start, end) interval stored in a Mask.
type maskInterval struct {
	start, end int
	id         uintptr
}

func (m maskInterval) Overlap(b interval.IntRange) bool {
	return m.end > b.Start && m.start < b.End
}

func (m maskInterval) ID() uintptr { return m.id }

func (m maskInterval) Range() interval.IntRange {
	return interval.IntRange{Start: m.start, End: m.end}
}

// query is a half-open [start, end) probe.
type query struct {
	start, end int
}

func (q query) Overlap(b interval.IntRange) bool {
	return q.end > b.Start && q.start < b.End
}

// Mask is a set of genomic intervals, keyed by chromosome name, supporting
// overlap queries.  Unlike BED unions, overlapping intervals are kept as-is;
// only the presence of an overlap matters.
type Mask struct {
	trees map[string]*interval.IntTree
	n     int
}

// NewMask returns an empty mask.
func NewMask() *Mask {
	return &Mask{trees: map[string]*interval.IntTree{}}
}

// Add inserts the half-open interval [start, end) on chrName.  Empty
// intervals are ignored.
func (m *Mask) Add(chrName string, start, end int) error {
	if end <= start {
		return nil
	}
	tree, ok := m.trees[chrName]
	if !ok {
		tree = &interval.IntTree{}
		m.trees[chrName] = tree
	}
	m.n++
	return tree.Insert(maskInterval{start: start, end: end, id: uintptr(m.n)}, false)
}

// Len returns the number of intervals in the mask.
func (m *Mask) Len() int {
	return m.n
}

// Overlaps returns true iff some interval on chrName shares at least one
// base with [start, end).
func (m *Mask) Overlaps(chrName string, start, end int) bool {
	tree, ok := m.trees[chrName]
	if !ok || end <= start {
		return false
	}
	return len(tree.Get(query{start: start, end: end})) > 0
}

// ReadMask loads the first three columns of every line of a BED file.  Blank
// lines, comments and "track"/"browser" lines are skipped.  The input need
// not be sorted.
func ReadMask(reader io.Reader) (*Mask, error) {
	m := NewMask()
	scanner := bufio.NewScanner(reader)
	var tokens [3][]byte
	lineIdx := 0
	totBases := 0
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		nToken := getTokens(tokens[:], curLine)
		if nToken == 0 || tokens[0][0] == '#' {
			continue
		}
		if chr := gunsafe.BytesToString(tokens[0]); chr == "track" || chr == "browser" {
			continue
		}
		if nToken != 3 {
			return nil, fmt.Errorf("interval.ReadMask: line %d has fewer tokens than expected", lineIdx)
		}
		start, err := strconv.Atoi(gunsafe.BytesToString(tokens[1]))
		if err != nil {
			return nil, err
		}
		end, err := strconv.Atoi(gunsafe.BytesToString(tokens[2]))
		if err != nil {
			return nil, err
		}
		if start < 0 || end < start {
			return nil, fmt.Errorf("interval.ReadMask: invalid coordinate pair on line %d", lineIdx)
		}
		// Make a full heap copy of the name, since tokens[0] refers to bytes
		// that the scanner will overwrite.
		if err := m.Add(string(tokens[0]), start, end); err != nil {
			return nil, err
		}
		totBases += end - start
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Debug.Printf("BED mask loaded, %d interval(s), %d base(s) (overlaps counted twice).", m.Len(), totBases)
	return m, nil
}

// ReadMaskFromPath is a wrapper for ReadMask that takes a path instead of an
// io.Reader.  Gzipped BED files are supported.
func ReadMaskFromPath(ctx context.Context, path string) (m *Mask, err error) {
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return
	}
	defer file.CloseAndReport(ctx, infile, &err)
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	return ReadMask(reader)
}
