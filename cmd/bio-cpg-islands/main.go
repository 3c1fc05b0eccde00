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
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/cpgscan/cpg"
	"github.com/grailbio/cpgscan/encoding/fasta"
	"github.com/grailbio/cpgscan/encoding/islands"
	"github.com/grailbio/cpgscan/interval"
)

var (
	windowLength = flag.Int("window", cpg.DefaultCriteria.WindowLength, "Scan window length, in bases")
	minGC        = flag.Float64("min-gc", cpg.DefaultCriteria.MinGCContent, "Minimum G+C fraction of a qualifying window, in [0, 1]")
	minCpGRatio  = flag.Float64("min-cpg-ratio", cpg.DefaultCriteria.MinCpGRatio, "Minimum observed/expected CpG ratio of a qualifying window")
	seqName      = flag.String("seq", "", "Name of the FASTA sequence to scan; defaults to the first one")
	indexPath    = flag.String("index", "", "Optional .fai index of the input FASTA, used to seek directly to -seq")
	region       = flag.String("region", "", "Restrict the scan to the specified region. Format as <contig ID>:<1-based first pos>-<last pos>, <contig ID>:<1-based pos>, or just <contig ID>; the contig ID also selects the sequence")
	excludePath  = flag.String("exclude", "", "Optional BED file; islands overlapping any of its intervals are dropped")
	clean        = flag.Bool("clean", false, "Capitalize soft-masked bases before scanning, so that lower-case c/g count as GC")
	format       = flag.String("format", "text", "Output format; 'text', 'bed' and 'tsv' supported")
	outPath      = flag.String("out", "", "Output path; stdout if empty. A .gz or .bgz suffix compresses the output")
)

// Opts collects the commandline options.
type Opts struct {
	Criteria    cpg.Criteria
	SeqName     string
	IndexPath   string
	Region      string
	ExcludePath string
	Clean       bool
	Format      string
	OutPath     string
}

func bioCpGIslandsUsage() {
	fmt.Printf("Usage: %s [OPTIONS] fapath\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

// run loads one sequence from faPath, scans it, and writes the islands.
func run(ctx context.Context, faPath string, opts Opts) error {
	if err := opts.Criteria.Validate(); err != nil {
		return err
	}
	outFormat, err := islands.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	name := opts.SeqName
	var entry interval.Entry
	if opts.Region != "" {
		if entry, err = interval.ParseRegionString(opts.Region); err != nil {
			return err
		}
		if name != "" && name != entry.ChrName {
			return fmt.Errorf("-seq %s conflicts with -region %s", name, opts.Region)
		}
		name = entry.ChrName
	}

	var mask *interval.Mask
	if opts.ExcludePath != "" {
		if mask, err = interval.ReadMaskFromPath(ctx, opts.ExcludePath); err != nil {
			return err
		}
	}

	var fastaOpts []fasta.Opt
	if opts.Clean {
		fastaOpts = append(fastaOpts, fasta.OptEncoding(fasta.CleanASCII))
	}
	rec, err := fasta.Load(ctx, faPath, opts.IndexPath, name, fastaOpts...)
	if err != nil {
		return err
	}
	log.Printf("loaded %s: %d bases", rec.Name, len(rec.Seq))

	seq, offset := rec.Seq, 0
	if opts.Region != "" {
		if entry, err = entry.Clip(len(rec.Seq)); err != nil {
			return err
		}
		seq, offset = rec.Seq[entry.Start0:entry.End], entry.Start0
	}

	found, err := cpg.Detect(seq, opts.Criteria)
	if err != nil {
		return err
	}
	found = cpg.Offset(found, offset)
	log.Printf("%s: %d CpG island(s) with %+v", rec.Name, len(found), opts.Criteria)

	if mask != nil {
		kept := found[:0]
		for _, is := range found {
			if mask.Overlaps(rec.Name, is.Start, is.End+1) {
				if log.At(log.Debug) {
					log.Debug.Printf("dropping excluded island %s:%v", rec.Name, is)
				}
				continue
			}
			kept = append(kept, is)
		}
		log.Printf("%s: %d island(s) left after exclusion", rec.Name, len(kept))
		found = kept
	}
	return islands.WriteFile(ctx, opts.OutPath, outFormat, rec.Name, rec.Seq, found)
}

func main() {
	flag.Usage = bioCpGIslandsUsage
	shutdown := grail.Init()
	defer shutdown()
	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})

	positionalArgs := flag.Args()
	if len(positionalArgs) != 1 {
		log.Fatalf("Exactly one positional argument (fapath) expected; please check flag syntax: '%s'", strings.Join(positionalArgs, " "))
	}
	ctx := vcontext.Background()
	opts := Opts{
		Criteria: cpg.Criteria{
			WindowLength: *windowLength,
			MinGCContent: *minGC,
			MinCpGRatio:  *minCpGRatio,
		},
		SeqName:     *seqName,
		IndexPath:   *indexPath,
		Region:      *region,
		ExcludePath: *excludePath,
		Clean:       *clean,
		Format:      *format,
		OutPath:     *outPath,
	}
	if err := run(ctx, positionalArgs[0], opts); err != nil {
		log.Fatalf("%v", err)
	}
	log.Debug.Printf("exiting")
}
