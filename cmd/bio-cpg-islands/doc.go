// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Given a FASTA file, bio-cpg-islands reports the CpG islands of one of its
sequences: maximal stretches in which every window of -window bases has a G+C
fraction of at least -min-gc and an observed/expected CpG ratio of at least
-min-cpg-ratio.

By default the first sequence in the file is scanned; -seq selects another
one, and -index lets a .fai index be used to avoid reading the rest of a
large genome.  -region restricts the scan to part of the sequence; reported
coordinates always refer to the full sequence.  Islands overlapping any
interval of the -exclude BED are dropped.

The default output is one "<start> <end>" line per island (0-based, both
ends inclusive).  -format=bed and -format=tsv select BED3 and an annotated
table modeled on UCSC's cpgIslandExt.

Sample usage:
bio-cpg-islands \
    -seq chr21 \
    -index hg38.fa.fai \
    -out chr21.cpg.txt \
    hg38.fa
*/
package main
