// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd

// cleanASCIISeqTable maps a/c/g/t and A/C/G/T to their capital forms, and
// everything else to 'N'.
var cleanASCIISeqTable [256]byte

// gcTable[x] == 1 iff x is 'C' or 'G'.
var gcTable [256]byte

// revComp8Table maps a/c/g/t and A/C/G/T to their capitalized complements,
// and everything else to 'N'.
var revComp8Table [256]byte

func init() {
	for i := range cleanASCIISeqTable {
		cleanASCIISeqTable[i] = 'N'
	}
	for i := range revComp8Table {
		revComp8Table[i] = 'N'
	}
	comp := []byte("TGCA")
	for i, b := range []byte("ACGT") {
		cleanASCIISeqTable[b] = b
		cleanASCIISeqTable[b+'a'-'A'] = b
		revComp8Table[b] = comp[i]
		revComp8Table[b+'a'-'A'] = comp[i]
	}
	gcTable['C'] = 1
	gcTable['G'] = 1
}

// CleanASCIISeqInplace capitalizes 'a'/'c'/'g'/'t', and replaces everything
// non-ACGT with 'N'.
func CleanASCIISeqInplace(ascii8 []byte) {
	for pos, ascii8Byte := range ascii8 {
		ascii8[pos] = cleanASCIISeqTable[ascii8Byte]
	}
}

// ReverseComp8Inplace reverse-complements ascii8[], assuming that it's using
// ASCII encoding.  More precisely, it maps 'A'/'a' to 'T', 'C'/'c' to 'G',
// 'G'/'g' to 'C', 'T'/'t' to 'A', and everything else to 'N'.
func ReverseComp8Inplace(ascii8 []byte) {
	nByte := len(ascii8)
	nByteDiv2 := nByte >> 1
	for idx, invIdx := 0, nByte-1; idx != nByteDiv2; idx, invIdx = idx+1, invIdx-1 {
		ascii8[idx], ascii8[invIdx] = revComp8Table[ascii8[invIdx]], revComp8Table[ascii8[idx]]
	}
	if nByte&1 == 1 {
		ascii8[nByteDiv2] = revComp8Table[ascii8[nByteDiv2]]
	}
}

// IsNonACGTPresent returns true iff there is a non-capital-ACGT character in
// the slice.
func IsNonACGTPresent(ascii8 []byte) bool {
	for _, ascii8Byte := range ascii8 {
		if cleanASCIISeqTable[ascii8Byte] != ascii8Byte || ascii8Byte == 'N' {
			return true
		}
	}
	return false
}

// GCValue returns 1 if b is 'C' or 'G', and 0 otherwise.  It is meant for
// branch-free counter updates.
func GCValue(b byte) int {
	return int(gcTable[b])
}

// IsGC returns true iff b is 'C' or 'G'.
func IsGC(b byte) bool {
	return gcTable[b] != 0
}

// IsCpG returns true iff (b0, b1) is the dinucleotide C-G.
func IsCpG(b0, b1 byte) bool {
	return b0 == 'C' && b1 == 'G'
}

// CpGValue returns 1 if (b0, b1) is the dinucleotide C-G, and 0 otherwise.
func CpGValue(b0, b1 byte) int {
	if b0 == 'C' && b1 == 'G' {
		return 1
	}
	return 0
}

// CountGC returns the number of 'C' and 'G' bytes in ascii8.
func CountGC(ascii8 []byte) int {
	cnt := 0
	for _, ascii8Byte := range ascii8 {
		cnt += int(gcTable[ascii8Byte])
	}
	return cnt
}

// CountCG returns the number of 'C' bytes and the number of 'G' bytes in
// ascii8, separately.
func CountCG(ascii8 []byte) (nC, nG int) {
	for _, ascii8Byte := range ascii8 {
		switch ascii8Byte {
		case 'C':
			nC++
		case 'G':
			nG++
		}
	}
	return
}

// CountCpG returns the number of (possibly overlapping) positions pos where
// ascii8[pos] == 'C' and ascii8[pos+1] == 'G'.  A slice of length n has n-1
// such pairs.
func CountCpG(ascii8 []byte) int {
	cnt := 0
	for pos := 1; pos < len(ascii8); pos++ {
		if ascii8[pos] == 'G' && ascii8[pos-1] == 'C' {
			cnt++
		}
	}
	return cnt
}
