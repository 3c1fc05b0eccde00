package islands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/cpgscan/cpg"
)

// Format is an output format.
type Format int

const (
	// Text is the plain "<start> <end>" format.
	Text Format = iota
	// BED is BED3.
	BED
	// TSV is BED3 plus per-island statistics, with a header.
	TSV
)

var formatNames = []string{"text", "bed", "tsv"}

// String implements fmt.Stringer.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat converts a format name ("text", "bed" or "tsv",
// case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return Text, fmt.Errorf("islands: unknown format %q; expected one of %s", s, strings.Join(formatNames, ", "))
}

const tsvHeader = "#chrom\tstart\tend\tlength\tcpgNum\tgcNum\tperCpg\tperGc\tobsExp"

// Writer writes islands in one of the supported formats.  Errors are sticky:
// once a write fails, every later call returns the same error.
type Writer struct {
	format Format
	chrom  string
	seq    []byte

	text          *bufio.Writer
	tsv           *tsv.Writer
	headerWritten bool
	buf           []byte
	err           error
}

// NewWriter constructs a Writer that writes to w.  chrom names the sequence in
// BED and TSV output.  seq is the scanned sequence; it is only used by the
// TSV format, to compute island statistics, and may be nil otherwise.
func NewWriter(w io.Writer, format Format, chrom string, seq []byte) *Writer {
	iw := &Writer{format: format, chrom: chrom, seq: seq}
	if format == Text {
		iw.text = bufio.NewWriter(w)
	} else {
		iw.tsv = tsv.NewWriter(w)
	}
	return iw
}

func (w *Writer) writeHeader() {
	if w.headerWritten || w.format != TSV {
		return
	}
	w.headerWritten = true
	w.tsv.WriteString(tsvHeader)
	w.err = w.tsv.EndLine()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// Write writes one island.  Islands are expected in increasing position
// order, but this is not checked.
func (w *Writer) Write(is cpg.Island) error {
	if w.err != nil {
		return w.err
	}
	switch w.format {
	case Text:
		w.buf = strconv.AppendInt(w.buf[:0], int64(is.Start), 10)
		w.buf = append(w.buf, ' ')
		w.buf = strconv.AppendInt(w.buf, int64(is.End), 10)
		w.buf = append(w.buf, '\n')
		_, w.err = w.text.Write(w.buf)
	case BED:
		w.tsv.WriteString(w.chrom)
		w.tsv.WriteInt64(int64(is.Start))
		w.tsv.WriteInt64(int64(is.End + 1))
		w.err = w.tsv.EndLine()
	case TSV:
		if w.writeHeader(); w.err != nil {
			return w.err
		}
		if w.seq == nil || is.End >= len(w.seq) {
			w.err = fmt.Errorf("islands: island %v lies outside the sequence (length %d)", is, len(w.seq))
			return w.err
		}
		st := cpg.Summarize(w.seq, is)
		w.tsv.WriteString(w.chrom)
		w.tsv.WriteInt64(int64(is.Start))
		w.tsv.WriteInt64(int64(is.End + 1))
		w.tsv.WriteInt64(int64(st.Length))
		w.tsv.WriteInt64(int64(st.CpGNum))
		w.tsv.WriteInt64(int64(st.GCNum))
		w.tsv.WriteString(formatFloat(st.PerCpG))
		w.tsv.WriteString(formatFloat(st.PerGC))
		w.tsv.WriteString(formatFloat(st.ObsExp))
		w.err = w.tsv.EndLine()
	default:
		w.err = fmt.Errorf("islands: unknown format %v", w.format)
	}
	return w.err
}

// WriteAll writes every island in order.
func (w *Writer) WriteAll(islands []cpg.Island) error {
	for _, is := range islands {
		if err := w.Write(is); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes buffered data to the underlying writer.  For TSV output, the
// header is written even if there were no islands.
func (w *Writer) Flush() error {
	w.writeHeader()
	if w.err != nil {
		return w.err
	}
	if w.text != nil {
		w.err = w.text.Flush()
	} else {
		w.err = w.tsv.Flush()
	}
	return w.err
}
