// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cpg

import "strconv"

// Island is a CpG island.  Start and End are 0-based sequence positions, and
// both are inclusive.
type Island struct {
	Start, End int
}

// Len returns the number of bases covered by the island.
func (is Island) Len() int {
	return is.End - is.Start + 1
}

// String returns "<start> <end>".
func (is Island) String() string {
	return strconv.Itoa(is.Start) + " " + strconv.Itoa(is.End)
}

// Offset adds off to the coordinates of every island, in place.  It's used
// to map islands found in a subsequence back to the coordinates of the full
// sequence.
func Offset(islands []Island, off int) []Island {
	for i := range islands {
		islands[i].Start += off
		islands[i].End += off
	}
	return islands
}
