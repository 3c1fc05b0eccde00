// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cpg

// Scanner produces the CpG islands of a sequence one at a time, in
// increasing position order.  Typical usage:
//
//   s, err := cpg.NewScanner(seq, criteria)
//   if err != nil { ... }
//   for s.Scan() {
//     is := s.Island()
//     ...
//   }
//
// Scan never blocks, so a caller that wants to be interruptible can check
// its context between calls.  Scanners are not threadsafe.
type Scanner struct {
	criteria Criteria
	win      *Window
	// started is set once the first window has been classified.
	started bool
	// done is set once the last window has been classified.
	done bool

	// inRun is true while consecutive qualifying windows are being seen;
	// runStart is the start of the first of them.
	inRun    bool
	runStart int

	// pending holds the most recent island that may still need to be merged
	// with the next one.
	pending    Island
	hasPending bool

	island Island
}

// NewScanner creates a Scanner over seq.  It returns an error of kind
// errors.Invalid if c is invalid.  A sequence shorter than c.WindowLength is
// not an error; the Scanner just yields nothing.
func NewScanner(seq []byte, c Criteria) (*Scanner, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := &Scanner{criteria: c}
	if len(seq) < c.WindowLength {
		s.done = true
		return s, nil
	}
	var err error
	if s.win, err = NewWindow(seq, c.WindowLength); err != nil {
		return nil, err
	}
	return s, nil
}

// Window returns the scan cursor, or nil if the sequence is shorter than the
// window.  The returned value must not be advanced by the caller.
func (s *Scanner) Window() *Window {
	return s.win
}

// nextRun returns the island covered by the next maximal run of qualifying
// windows.
func (s *Scanner) nextRun() (Island, bool) {
	for !s.done {
		if s.started {
			if !s.win.Advance() {
				s.done = true
				if s.inRun {
					s.inRun = false
					// The run extends through the last window, which ends at the
					// end of the sequence.
					return Island{Start: s.runStart, End: s.win.End()}, true
				}
				return Island{}, false
			}
		}
		s.started = true
		qualifies := s.win.Qualifies(s.criteria)
		if qualifies && !s.inRun {
			s.inRun = true
			s.runStart = s.win.Start()
		} else if !qualifies && s.inRun {
			s.inRun = false
			// The run's last window starts at Start()-1, and ends L-1 bases
			// later.
			return Island{Start: s.runStart, End: s.win.Start() + s.win.Len() - 2}, true
		}
	}
	return Island{}, false
}

// Scan advances to the next island, which is then available through Island.
// It returns false once the sequence is exhausted.
func (s *Scanner) Scan() bool {
	for {
		run, ok := s.nextRun()
		if !ok {
			if s.hasPending {
				s.island = s.pending
				s.hasPending = false
				return true
			}
			return false
		}
		if !s.hasPending {
			s.pending, s.hasPending = run, true
			continue
		}
		if run.Start <= s.pending.End {
			// The disqualifying gap was shorter than the window, so the two
			// islands share bases.
			if run.End > s.pending.End {
				s.pending.End = run.End
			}
			continue
		}
		s.island = s.pending
		s.pending = run
		return true
	}
}

// Island returns the island found by the most recent successful call to
// Scan.
func (s *Scanner) Island() Island {
	return s.island
}

// Detect returns the CpG islands of seq, sorted by start position and
// pairwise disjoint.  It returns an error of kind errors.Invalid iff c is
// invalid.  Detect has no side effects; concurrent calls are safe.
func Detect(seq []byte, c Criteria) ([]Island, error) {
	s, err := NewScanner(seq, c)
	if err != nil {
		return nil, err
	}
	var islands []Island
	for s.Scan() {
		islands = append(islands, s.Island())
	}
	return islands, nil
}
