// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package biosimd provides table-driven implementations of per-base
// operations on ASCII .fa sequences.  The counters (GC bases, C-G
// dinucleotides) sit in the CpG scanner's inner loop; cleaning and reverse
// complementation prepare its input.
//
// All functions operate on capital-letter ASCII.  Lower-case (soft-masked)
// bases are not C/G as far as the counters are concerned; run
// CleanASCIISeqInplace first if they should be.
package biosimd
