// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cpg

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/cpgscan/biosimd"
)

// Window is a cursor over the length-L windows of a sequence.  It tracks the
// number of C/G bases and the number of C-G dinucleotides in the current
// window [Start(), Start()+L), and moves one base to the right in constant
// time.
//
// A Window is also the complete progress state of a scan: a caller can stop
// advancing at any point and resume later.  Window is not thread-safe.
type Window struct {
	seq    []byte
	length int
	start  int
	// gc is the number of 'C'/'G' bytes in seq[start:start+length].
	gc int
	// cpg is the number of positions p in [start, start+length-1) with
	// seq[p:p+2] == "CG".
	cpg int
}

// NewWindow returns a Window positioned at the first window of seq.  It
// fails if length < 1 or len(seq) < length.
func NewWindow(seq []byte, length int) (*Window, error) {
	if length < 1 {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("cpg: window length must be positive, got %d", length))
	}
	if len(seq) < length {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("cpg: sequence length %d is shorter than window length %d", len(seq), length))
	}
	first := seq[:length]
	return &Window{
		seq:    seq,
		length: length,
		gc:     biosimd.CountGC(first),
		cpg:    biosimd.CountCpG(first),
	}, nil
}

// Advance moves the window one base to the right.  It returns false, leaving
// the window unchanged, if the window already ends at the end of the
// sequence.
func (w *Window) Advance() bool {
	out := w.start
	in := w.start + w.length
	if in >= len(w.seq) {
		return false
	}
	w.gc += biosimd.GCValue(w.seq[in]) - biosimd.GCValue(w.seq[out])
	if w.length > 1 {
		w.cpg += biosimd.CpGValue(w.seq[in-1], w.seq[in]) - biosimd.CpGValue(w.seq[out], w.seq[out+1])
	}
	w.start++
	return true
}

// Start returns the 0-based position of the first base in the window.
func (w *Window) Start() int { return w.start }

// End returns the 0-based position of the last base in the window.
func (w *Window) End() int { return w.start + w.length - 1 }

// Len returns the window length.
func (w *Window) Len() int { return w.length }

// GC returns the number of C/G bases in the window.
func (w *Window) GC() int { return w.gc }

// CpG returns the number of C-G dinucleotides contained in the window.
func (w *Window) CpG() int { return w.cpg }

// GCContent returns the fraction of C/G bases in the window.
func (w *Window) GCContent() float64 {
	return float64(w.gc) / float64(w.length)
}

// ExpectedCpG returns the number of C-G dinucleotides expected in the window
// given its GC content, (GC/2)^2 / L.
func (w *Window) ExpectedCpG() float64 {
	half := float64(w.gc) / 2
	return half * half / float64(w.length)
}

// CpGRatio returns the observed/expected CpG ratio of the window.  The
// second return value is false when the window has no C/G bases, in which
// case the ratio is undefined.
func (w *Window) CpGRatio() (float64, bool) {
	if w.gc == 0 {
		return 0, false
	}
	return float64(w.cpg) / w.ExpectedCpG(), true
}

// Qualifies returns true iff the window meets both thresholds in c.  A window
// without any C/G base never qualifies.
func (w *Window) Qualifies(c Criteria) bool {
	if w.gc == 0 {
		return false
	}
	if w.GCContent() < c.MinGCContent {
		return false
	}
	ratio, _ := w.CpGRatio()
	return ratio >= c.MinCpGRatio
}
