// Package islands serializes CpG islands.
//
// Three formats are supported:
//
//   Text: one "<start> <end>" line per island, 0-based and inclusive on both
//   ends.  No header.
//
//   BED:  "<chrom>\t<start>\t<end+1>", i.e. the usual 0-based half-open BED3.
//
//   TSV:  a header line followed by BED-style coordinates and the columns of
//   the UCSC cpgIslandExt table:
//   #chrom start end length cpgNum gcNum perCpg perGc obsExp
package islands
