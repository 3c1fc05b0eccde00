// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cpg_test

import (
	"testing"

	"github.com/grailbio/cpgscan/cpg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsland(t *testing.T) {
	is := cpg.Island{Start: 3, End: 7}
	assert.Equal(t, 5, is.Len())
	assert.Equal(t, "3 7", is.String())

	islands := cpg.Offset([]cpg.Island{{0, 9}, {20, 29}}, 1000)
	assert.Equal(t, []cpg.Island{{1000, 1009}, {1020, 1029}}, islands)
}

func TestSummarize(t *testing.T) {
	seq := []byte("AACGCGTTAA")
	st := cpg.Summarize(seq, cpg.Island{Start: 1, End: 8})
	assert.Equal(t, 8, st.Length)
	assert.Equal(t, 2, st.CpGNum)
	assert.Equal(t, 4, st.GCNum)
	assert.InDelta(t, 50.0, st.PerCpG, 1e-9)
	assert.InDelta(t, 50.0, st.PerGC, 1e-9)
	// 2 * 8 / (2 * 2)
	assert.InDelta(t, 4.0, st.ObsExp, 1e-9)

	st = cpg.Summarize(seq, cpg.Island{Start: 0, End: 1})
	assert.Equal(t, cpg.Stats{Length: 2}, st)

	all := cpg.SummarizeAll(seq, []cpg.Island{{1, 8}, {0, 1}})
	require.Len(t, all, 2)
	assert.Equal(t, 2, all[0].CpGNum)
	assert.Equal(t, 0, all[1].GCNum)
}
