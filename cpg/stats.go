// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cpg

import "github.com/grailbio/cpgscan/biosimd"

// Stats summarizes the composition of one island.  The fields mirror the
// columns of the UCSC cpgIslandExt table.
type Stats struct {
	Length int
	// CpGNum is the number of C-G dinucleotides in the island.
	CpGNum int
	// GCNum is the number of C/G bases in the island.
	GCNum int
	// PerCpG is the percentage of island bases that belong to a C-G
	// dinucleotide.
	PerCpG float64
	// PerGC is the percentage of island bases that are C or G.
	PerGC float64
	// ObsExp is the observed/expected CpG ratio of Gardiner-Garden &
	// Frommer, J. Mol. Biol. (1987) 196 (2), 261-282:
	//   CpGNum * Length / (number of C * number of G)
	// It is zero when the island contains no C or no G.
	ObsExp float64
}

// Summarize computes the Stats of is, which must lie within seq.
func Summarize(seq []byte, is Island) Stats {
	bases := seq[is.Start : is.End+1]
	nC, nG := biosimd.CountCG(bases)
	st := Stats{
		Length: len(bases),
		CpGNum: biosimd.CountCpG(bases),
		GCNum:  nC + nG,
	}
	if st.Length == 0 {
		return st
	}
	st.PerCpG = 100 * float64(2*st.CpGNum) / float64(st.Length)
	st.PerGC = 100 * float64(st.GCNum) / float64(st.Length)
	if nC != 0 && nG != 0 {
		st.ObsExp = float64(st.CpGNum) * float64(st.Length) / (float64(nC) * float64(nG))
	}
	return st
}

// SummarizeAll returns Summarize(seq, islands[i]) for every i.
func SummarizeAll(seq []byte, islands []Island) []Stats {
	stats := make([]Stats, len(islands))
	for i, is := range islands {
		stats[i] = Summarize(seq, is)
	}
	return stats
}
