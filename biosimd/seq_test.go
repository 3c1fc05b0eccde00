// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/grailbio/cpgscan/biosimd"
	"github.com/grailbio/testutil/expect"
)

func cleanASCIISeqSlow(ascii8 []byte) {
	for pos, ascii8Byte := range ascii8 {
		switch ascii8Byte {
		case 'A', 'C', 'G', 'T':
		case 'a', 'c', 'g', 't':
			ascii8[pos] = ascii8Byte - 'a' + 'A'
		default:
			ascii8[pos] = 'N'
		}
	}
}

func countCpGSlow(ascii8 []byte) int {
	return strings.Count(string(ascii8), "CG")
}

func randomASCIISeq(n int) []byte {
	const alphabet = "ACGTACGTACGTNacgt-"
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return seq
}

func TestCleanASCIISeq(t *testing.T) {
	maxSize := 500
	nIter := 200
	main1Arr := make([]byte, maxSize+1)
	main2Arr := make([]byte, maxSize+1)
	for iter := 0; iter < nIter; iter++ {
		sliceStart := rand.Intn(maxSize)
		sliceEnd := sliceStart + rand.Intn(maxSize-sliceStart)
		main1Slice := main1Arr[sliceStart:sliceEnd]
		main2Slice := main2Arr[sliceStart:sliceEnd]
		for ii := range main1Slice {
			main1Slice[ii] = byte(rand.Intn(256))
		}
		copy(main2Slice, main1Slice)
		sentinel := byte(rand.Intn(256))
		main2Arr[sliceEnd] = sentinel
		biosimd.CleanASCIISeqInplace(main2Slice)
		cleanASCIISeqSlow(main1Slice)
		if !bytes.Equal(main1Slice, main2Slice) {
			t.Fatal("Mismatched CleanASCIISeqInplace result.")
		}
		if main2Arr[sliceEnd] != sentinel {
			t.Fatal("CleanASCIISeqInplace clobbered an extra byte.")
		}
	}
}

func TestIsNonACGTPresent(t *testing.T) {
	expect.False(t, biosimd.IsNonACGTPresent([]byte("ACGTTGCA")))
	expect.False(t, biosimd.IsNonACGTPresent(nil))
	expect.True(t, biosimd.IsNonACGTPresent([]byte("ACGNT")))
	expect.True(t, biosimd.IsNonACGTPresent([]byte("ACgT")))
}

func TestCountGC(t *testing.T) {
	tests := []struct {
		seq     string
		gc, cpg int
	}{
		{"", 0, 0},
		{"A", 0, 0},
		{"C", 1, 0},
		{"CG", 2, 1},
		{"CGCG", 4, 2},
		{"GCGC", 4, 1},
		{"cgcg", 0, 0},
		{"ACGTNCG", 4, 2},
		{"CNG", 2, 0},
	}
	for _, tt := range tests {
		expect.EQ(t, biosimd.CountGC([]byte(tt.seq)), tt.gc, "seq %q", tt.seq)
		expect.EQ(t, biosimd.CountCpG([]byte(tt.seq)), tt.cpg, "seq %q", tt.seq)
	}
}

func TestCountRandom(t *testing.T) {
	for iter := 0; iter < 100; iter++ {
		seq := randomASCIISeq(rand.Intn(1000))
		nC := bytes.Count(seq, []byte{'C'})
		nG := bytes.Count(seq, []byte{'G'})
		gotC, gotG := biosimd.CountCG(seq)
		expect.EQ(t, gotC, nC)
		expect.EQ(t, gotG, nG)
		expect.EQ(t, biosimd.CountGC(seq), nC+nG)
		expect.EQ(t, biosimd.CountCpG(seq), countCpGSlow(seq))
		gc := 0
		for i := range seq {
			gc += biosimd.GCValue(seq[i])
			expect.EQ(t, biosimd.IsGC(seq[i]), seq[i] == 'C' || seq[i] == 'G')
		}
		expect.EQ(t, gc, nC+nG)
	}
}

func TestCpGValue(t *testing.T) {
	expect.EQ(t, biosimd.CpGValue('C', 'G'), 1)
	expect.EQ(t, biosimd.CpGValue('G', 'C'), 0)
	expect.EQ(t, biosimd.CpGValue('c', 'g'), 0)
	expect.True(t, biosimd.IsCpG('C', 'G'))
	expect.False(t, biosimd.IsCpG('C', 'C'))
}

func reverseComp8Slow(main []byte) {
	nByte := len(main)
	for i := 0; i < nByte/2; i++ {
		main[i], main[nByte-1-i] = main[nByte-1-i], main[i]
	}
	for i, b := range main {
		switch b {
		case 'A', 'a':
			main[i] = 'T'
		case 'C', 'c':
			main[i] = 'G'
		case 'G', 'g':
			main[i] = 'C'
		case 'T', 't':
			main[i] = 'A'
		default:
			main[i] = 'N'
		}
	}
}

func TestReverseComp8(t *testing.T) {
	seq := []byte("ACGTNacgtx")
	biosimd.ReverseComp8Inplace(seq)
	expect.EQ(t, string(seq), "NACGTNACGT")

	maxSize := 300
	nIter := 200
	for iter := 0; iter < nIter; iter++ {
		main1 := randomASCIISeq(rand.Intn(maxSize))
		main2 := append([]byte{}, main1...)
		orig := append([]byte{}, main1...)
		biosimd.ReverseComp8Inplace(main1)
		reverseComp8Slow(main2)
		if !bytes.Equal(main1, main2) {
			t.Fatal("Mismatched ReverseComp8Inplace result.")
		}
		// Reverse-complementing twice restores a clean sequence.
		biosimd.ReverseComp8Inplace(main1)
		biosimd.CleanASCIISeqInplace(orig)
		expect.True(t, bytes.Equal(main1, orig))
		// CpG count is strand-independent.
		expect.EQ(t, biosimd.CountCpG(main2), biosimd.CountCpG(orig))
	}
}

func Benchmark_CountCpG(b *testing.B) {
	seq := randomASCIISeq(1 << 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		biosimd.CountCpG(seq)
	}
}
