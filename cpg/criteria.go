// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cpg

import (
	"fmt"
	"math"

	"github.com/grailbio/base/errors"
)

// Criteria defines which windows qualify as CpG-island windows.
type Criteria struct {
	// WindowLength is the scan window size, in bases.  Must be positive.
	WindowLength int
	// MinGCContent is the inclusive lower bound on the fraction of C/G bases
	// in a window.  Must be in [0, 1].
	MinGCContent float64
	// MinCpGRatio is the inclusive lower bound on the observed/expected CpG
	// ratio of a window.  Must be non-negative.
	MinCpGRatio float64
}

// DefaultCriteria are the Gardiner-Garden & Frommer thresholds.
var DefaultCriteria = Criteria{
	WindowLength: 200,
	MinGCContent: 0.5,
	MinCpGRatio:  0.6,
}

// Validate returns an error of kind errors.Invalid if c can't be used for a
// scan.
func (c Criteria) Validate() error {
	if c.WindowLength < 1 {
		return errors.E(errors.Invalid, fmt.Sprintf("cpg: window length must be positive, got %d", c.WindowLength))
	}
	if math.IsNaN(c.MinGCContent) || c.MinGCContent < 0 || c.MinGCContent > 1 {
		return errors.E(errors.Invalid, fmt.Sprintf("cpg: min GC content must be in [0, 1], got %v", c.MinGCContent))
	}
	if math.IsNaN(c.MinCpGRatio) || c.MinCpGRatio < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("cpg: min CpG ratio must be non-negative, got %v", c.MinCpGRatio))
	}
	return nil
}

// IsInvalidCriteria returns true iff err was produced by Criteria.Validate,
// directly or through Detect/NewScanner.
func IsInvalidCriteria(err error) bool {
	return err != nil && errors.Is(errors.Invalid, err)
}
