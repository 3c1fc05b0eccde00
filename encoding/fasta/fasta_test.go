package fasta_test

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/cpgscan/encoding/fasta"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/klauspost/compress/gzip"
)

var fastaData string
var fastaIndex string

func init() {
	fastaData = ">seq1\n" + "ACGTA\nCGTAC\nGT\n" + ">seq2 A viral sequence\n" + "ACGT\n" + "acgn\n"
	fastaIndex = "seq1\t12\t6\t5\t6\n" + "seq2\t8\t44\t4\t5\n"
}

func TestReadRecord(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
		want     string
		err      string
	}{
		{"seq1", "seq1", "ACGTACGTACGT", ""},
		{"seq2", "seq2", "ACGTacgn", ""},
		{"", "seq1", "ACGTACGTACGT", ""},
		{"seq0", "", "", "sequence not found: seq0"},
	}
	for _, tt := range tests {
		rec, err := fasta.ReadRecord(strings.NewReader(fastaData), tt.name)
		if tt.err != "" {
			expect.HasSubstr(t, err.Error(), tt.err)
			continue
		}
		assert.NoError(t, err)
		expect.EQ(t, rec.Name, tt.wantName)
		expect.EQ(t, string(rec.Seq), tt.want)

		indexed, err := fasta.ReadIndexedRecord(strings.NewReader(fastaData), strings.NewReader(fastaIndex), tt.name)
		assert.NoError(t, err)
		expect.EQ(t, indexed, rec)
	}
	_, err := fasta.ReadIndexedRecord(strings.NewReader(fastaData), strings.NewReader(fastaIndex), "seq0")
	expect.HasSubstr(t, err.Error(), "sequence not found in index: seq0")
}

func TestReadRecordClean(t *testing.T) {
	rec, err := fasta.ReadRecord(strings.NewReader(fastaData), "seq2", fasta.OptEncoding(fasta.CleanASCII))
	assert.NoError(t, err)
	expect.EQ(t, string(rec.Seq), "ACGTACGN")

	rec, err = fasta.ReadIndexedRecord(strings.NewReader(fastaData), strings.NewReader(fastaIndex), "seq2",
		fasta.OptEncoding(fasta.CleanASCII))
	assert.NoError(t, err)
	expect.EQ(t, string(rec.Seq), "ACGTACGN")
}

func TestReadRecordMalformed(t *testing.T) {
	_, err := fasta.ReadRecord(strings.NewReader(""), "")
	expect.HasSubstr(t, err.Error(), "empty FASTA")
	_, err = fasta.ReadRecord(strings.NewReader("\n\n"), "")
	expect.HasSubstr(t, err.Error(), "empty FASTA")
	_, err = fasta.ReadRecord(strings.NewReader("ACGT\n>seq1\nACGT\n"), "seq1")
	expect.HasSubstr(t, err.Error(), "before the first header")

	// MS-DOS line endings and blank lines are tolerated.
	rec, err := fasta.ReadRecord(strings.NewReader(">s\r\nACG\r\n\r\nTTT\r\n"), "s")
	assert.NoError(t, err)
	expect.EQ(t, string(rec.Seq), "ACGTTT")
}

func TestReadIndex(t *testing.T) {
	entries, err := fasta.ReadIndex(strings.NewReader(fastaIndex))
	assert.NoError(t, err)
	expect.EQ(t, entries, []fasta.IndexEntry{
		{Name: "seq1", Length: 12, Offset: 6, LineBase: 5, LineWidth: 6},
		{Name: "seq2", Length: 8, Offset: 44, LineBase: 4, LineWidth: 5},
	})

	_, err = fasta.ReadIndex(strings.NewReader("chr1\t100\t6\n"))
	expect.HasSubstr(t, err.Error(), "invalid index line 1")
	_, err = fasta.ReadIndex(strings.NewReader("chr1\t100\tx\t60\t61\n"))
	expect.HasSubstr(t, err.Error(), "invalid index line 1")
	_, err = fasta.ReadIndex(strings.NewReader("chr1\t100\t6\t0\t1\n"))
	expect.HasSubstr(t, err.Error(), "inconsistent line geometry")
}

func TestGenerateIndex(t *testing.T) {
	generateIndex := func(fa string) (faidx string) {
		idx := bytes.Buffer{}
		assert.NoError(t, fasta.GenerateIndex(&idx, strings.NewReader(fa)))
		return idx.String()
	}

	fa := `>E0
GGTGAAATC
CCTGAAATC
AAAATTGCT
>E1
GTCCCTCCCCAGACATGGCCCTGGGAGGC
>E2
CCGCGCCCGCGCCCCCGCCGCC
>E3
GTCAAGGTTGCACAG
>E4
ATGAATCATGTGGTAAAA
`
	fai := generateIndex(fa)
	assert.EQ(t, fai, `E0	27	4	9	10
E1	29	38	29	30
E2	22	72	22	23
E3	15	99	15	16
E4	18	119	18	19
`)
	// Read using the generated index
	rec, err := fasta.ReadIndexedRecord(strings.NewReader(fa), strings.NewReader(fai), "E3")
	assert.NoError(t, err)
	assert.EQ(t, string(rec.Seq), "GTCAAGGTTGCACAG")
	rec, err = fasta.ReadIndexedRecord(strings.NewReader(fa), strings.NewReader(fai), "E0")
	assert.NoError(t, err)
	assert.EQ(t, string(rec.Seq), "GGTGAAATCCCTGAAATCAAAATTGCT")

	// MS-DOS newline encoding.
	assert.EQ(t, generateIndex(">E0\r\nGGGG\r\n>E1\r\nAAAAA\r\n"),
		`E0	4	5	4	6
E1	5	16	5	7
`)

	// No newline at the end.
	assert.EQ(t, generateIndex(">E0\nGGGG\n>E1\nCCCCC\nAAAAA"),
		`E0	4	4	4	5
E1	10	13	5	6
`)
	assert.EQ(t, generateIndex(">E0\nGGGG\n>E1\nAAAAA"),
		`E0	4	4	4	5
E1	5	13	5	5
`)

	idx := bytes.Buffer{}
	assert.Regexp(t, fasta.GenerateIndex(&idx, strings.NewReader("")), "empty FASTA")
}

func TestLoad(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "fasta")
	defer cleanup()
	ctx := vcontext.Background()

	faPath := filepath.Join(tempDir, "in.fa")
	assert.NoError(t, ioutil.WriteFile(faPath, []byte(fastaData), 0644))
	faiPath := faPath + ".fai"
	assert.NoError(t, ioutil.WriteFile(faiPath, []byte(fastaIndex), 0644))

	var gz bytes.Buffer
	gzw := gzip.NewWriter(&gz)
	_, err := gzw.Write([]byte(fastaData))
	assert.NoError(t, err)
	assert.NoError(t, gzw.Close())
	gzPath := filepath.Join(tempDir, "in.fa.gz")
	assert.NoError(t, ioutil.WriteFile(gzPath, gz.Bytes(), 0644))

	for _, tt := range []struct{ path, index string }{
		{faPath, ""},
		{faPath, faiPath},
		{gzPath, ""},
	} {
		rec, err := fasta.Load(ctx, tt.path, tt.index, "seq2")
		assert.NoError(t, err, "path %s index %s", tt.path, tt.index)
		expect.EQ(t, rec.Name, "seq2")
		expect.EQ(t, string(rec.Seq), "ACGTacgn")
	}

	_, err = fasta.Load(ctx, gzPath, faiPath, "seq2")
	expect.HasSubstr(t, err.Error(), "gzipped")
	_, err = fasta.Load(ctx, filepath.Join(tempDir, "missing.fa"), "", "")
	expect.NotNil(t, err)
}
