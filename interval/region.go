package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// posMax is the End of a region string that has no positional restriction.
const posMax = math.MaxInt32

// Entry represents a single interval, with 0-based coordinates.
type Entry struct {
	ChrName string
	Start0  int
	End     int
}

// ParseRegionString parses a region string of one of the forms
//   [contig ID]:[1-based first pos]-[last pos]
//   [contig ID]:[1-based pos]
//   [contig ID]
// returning a contig ID and 0-based interval boundaries.  The interval
// [0, posMax - 1] is returned if there is no positional restriction.
func ParseRegionString(region string) (result Entry, err error) {
	if len(region) == 0 {
		err = fmt.Errorf("interval.ParseRegionString: empty region string")
		return
	}
	colonPos := strings.LastIndexByte(region, ':')
	if colonPos == -1 {
		result.ChrName = region
		result.Start0 = 0
		result.End = posMax - 1
		return
	}
	if colonPos == 0 {
		err = fmt.Errorf("interval.ParseRegionString: empty contig ID")
		return
	}
	result.ChrName = region[0:colonPos]
	// Thousands separators, as printed by genome browsers, are allowed.
	rangeStr := strings.Replace(region[colonPos+1:], ",", "", -1)
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		var pos1 int
		if pos1, err = strconv.Atoi(rangeStr); err != nil {
			return
		}
		if pos1 <= 0 || pos1 >= posMax {
			err = fmt.Errorf("interval.ParseRegionString: position %v in region string out of range", rangeStr)
			return
		}
		result.Start0 = pos1 - 1
		result.End = pos1
		return
	}
	start1Str := rangeStr[:dashPos]
	endStr := rangeStr[dashPos+1:]
	var start1 int
	if start1, err = strconv.Atoi(start1Str); err != nil {
		return
	}
	if start1 <= 0 {
		err = fmt.Errorf("interval.ParseRegionString: position %v in region string out of range", start1Str)
		return
	}
	var end0 int
	if end0, err = strconv.Atoi(endStr); err != nil {
		return
	}
	if end0 < start1 || end0 >= posMax {
		err = fmt.Errorf("interval.ParseRegionString: invalid range string %v", rangeStr)
		return
	}
	result.Start0 = start1 - 1
	result.End = end0
	return
}

// Clip restricts e to a sequence of length n.  It fails if e starts at or
// past the end of the sequence.
func (e Entry) Clip(n int) (Entry, error) {
	if e.Start0 >= n {
		return e, fmt.Errorf("interval.Entry.Clip: region %s starts at %d, past the end of the sequence (length %d)", e.ChrName, e.Start0+1, n)
	}
	if e.End > n {
		e.End = n
	}
	return e, nil
}

// Len returns the number of bases in e.
func (e Entry) Len() int {
	return e.End - e.Start0
}
