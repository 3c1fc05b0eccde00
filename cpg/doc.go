// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Package cpg finds CpG islands in a nucleotide sequence.

  A window of length L starting at position i qualifies when its G+C
  fraction is at least Criteria.MinGCContent and its observed/expected CpG
  ratio is at least Criteria.MinCpGRatio, where

    expected CpG = (#GC / 2)^2 / L

  Windows are visited left to right with O(1) counter updates per step, so a
  scan is O(N) regardless of L.  A run of qualifying window starts
  [s, e] becomes the island [s, e+L-1] (both ends inclusive).  Runs whose
  islands would overlap are merged, so the output is sorted and disjoint.

  Only capital 'C'/'G' count as GC; everything else, including soft-masked
  lower-case bases and 'N', is treated as non-GC.
*/
package cpg
