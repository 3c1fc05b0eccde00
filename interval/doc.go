/*Package interval implements the genomic-coordinate helpers used around a
  CpG scan: parsing of samtools-style region strings, and exclusion masks
  loaded from BED files.
  All coordinates are 0-based, and intervals are half-open unless stated
  otherwise.
*/
package interval
