// Package cliapp is the shared driver behind the two command-line
// front ends (needleman-wunsch and smith-waterman): flag parsing,
// input reading, running the engine, and formatting output. The two
// binaries differ only in which Algorithm they bake in, mirroring the
// original source's own two separate, near-identical main()s rather
// than a single binary branching on an algorithm flag.
package cliapp

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"nwsw/internal/engine"
	"nwsw/internal/render"
	"nwsw/internal/seqio"
)

// Main parses args as the m/k/d operands and the -p/-f/-l/-q/-s/-t/-u/-c/-h
// flags, runs an alignment with algorithm fixed by the caller, writes
// output to stdout, and returns the process exit code (0 on success, 1
// on any fatal error, matching the original's usage-and-exit-1
// convention for bad input). stdin is only consulted when -f is absent.
func Main(programName string, algorithm engine.Algorithm, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	workers := fs.Int("p", 1, "parallelize across `num-workers` workers (must be > 1)")
	file := fs.String("f", "", "read the input sequences from `path` instead of standard input")
	list := fs.Bool("l", false, "list match, mismatch, and indel counts for each alignment")
	quiet := fs.Bool("q", false, "don't print the aligned strings")
	summarize := fs.Bool("s", false, "print a summary of the run")
	table := fs.Bool("t", false, "print the scores table (only useful for short inputs)")
	unicode := fs.Bool("u", false, "use unicode arrows when printing the scores table")
	colorize := fs.Bool("c", false, "color the output with ANSI escape sequences")
	help := fs.Bool("h", false, "print this usage message")

	fs.Usage = func() { usage(stderr, fs, programName) }

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *help {
		fs.Usage()
		return 0
	}

	var explicitWorkers bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "p" {
			explicitWorkers = true
		}
	})
	if explicitWorkers && *workers <= 1 {
		fmt.Fprintf(stderr, "%s: -p num-workers must be greater than 1\n", programName)
		return 1
	}

	operands := fs.Args()
	if len(operands) != 3 {
		fmt.Fprintf(stderr, "%s: expected 3 operands (match mismatch indel), got %d\n", programName, len(operands))
		fs.Usage()
		return 1
	}
	match, err1 := strconv.Atoi(operands[0])
	mismatch, err2 := strconv.Atoi(operands[1])
	indel, err3 := strconv.Atoi(operands[2])
	if err1 != nil || err2 != nil || err3 != nil {
		fmt.Fprintf(stderr, "%s: match, mismatch, and indel must be integers\n", programName)
		return 1
	}

	var s1, s2 []byte
	var err error
	if *file != "" {
		s1, s2, err = seqio.ReadTwoSequences(*file)
	} else {
		s1, s2, err = seqio.ReadFrom(stdin)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return 1
	}

	params := engine.Params{
		Match:       match,
		Mismatch:    mismatch,
		Indel:       indel,
		Workers:     *workers,
		Algorithm:   algorithm,
		RenderTable: *table,
	}

	sink := engine.SinkFunc(func(top, side string, stats engine.AlignmentStats) {
		if !*quiet {
			fmt.Fprintln(stdout, top)
			fmt.Fprintln(stdout, side)
		}
		if *list {
			fmt.Fprintf(stdout, "matches: %d, mismatches: %d, indels: %d\n",
				stats.Matches, stats.Mismatches, stats.Indels)
		}
		if !*quiet || *list {
			fmt.Fprintln(stdout)
		}
	})

	summary, err := engine.Run(s1, s2, params, sink)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return 1
	}

	if *table {
		colorizer := render.Colorizer(render.NewPlainColorizer())
		if *colorize {
			colorizer = render.NewANSIColorizer()
		}
		render.New(colorizer, *unicode).Render(stdout, summary.Table)
	}

	if *summarize {
		fmt.Fprintf(stdout, "%d co-optimal alignment(s), optimal score %d, %d branch point(s)\n",
			summary.SolutionCount, summary.OptimalScore, summary.BranchCount)
	}

	return 0
}

func usage(w io.Writer, fs *flag.FlagSet, programName string) {
	fmt.Fprintf(w, "usage: %s [options] m k d\n\n", programName)
	fmt.Fprint(w, "operands:\n")
	fmt.Fprint(w, "  m    match bonus\n")
	fmt.Fprint(w, "  k    mismatch penalty\n")
	fmt.Fprint(w, "  d    indel (gap) penalty\n\n")
	fmt.Fprint(w, "options:\n")
	fs.PrintDefaults()
}
