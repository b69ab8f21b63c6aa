// Command profile runs one alignment mode repeatedly under cpu/mem
// pprof profiling, for drilling into a single scenario's hot path.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"

	"nwsw/internal/engine"
	"nwsw/internal/seqgen"
)

const (
	matchBonus      = 2
	mismatchPenalty = 1
	indelPenalty    = 2
)

// ProfileConfig holds profiling configuration.
type ProfileConfig struct {
	CPUProfile  string
	MemProfile  string
	Mode        string
	Algorithm   string
	SequenceLen int
	NumWorkers  int
	BatchSize   int
	Repetitions int
}

func main() {
	config := ProfileConfig{}

	flag.StringVar(&config.CPUProfile, "cpuprofile", "", "write cpu profile to file")
	flag.StringVar(&config.MemProfile, "memprofile", "", "write memory profile to file")
	flag.StringVar(&config.Mode, "mode", "sequential", "alignment mode: sequential, parallel, or batch")
	flag.StringVar(&config.Algorithm, "algorithm", "local", "algorithm: global or local")
	flag.IntVar(&config.SequenceLen, "length", 1000, "sequence length")
	flag.IntVar(&config.NumWorkers, "workers", 0, "number of workers (0 = auto)")
	flag.IntVar(&config.BatchSize, "batch", 10, "batch size for batch mode")
	flag.IntVar(&config.Repetitions, "reps", 1, "number of repetitions")
	flag.Parse()

	alg := engine.Local
	if config.Algorithm == "global" {
		alg = engine.Global
	}

	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	fmt.Printf("Generating test sequences (length: %d)...\n", config.SequenceLen)
	query := seqgen.RandomSequence(config.SequenceLen)
	reference := seqgen.RandomSequence(config.SequenceLen)

	var references []string
	if config.Mode == "batch" {
		fmt.Printf("Generating %d reference sequences for batch processing...\n", config.BatchSize)
		references = make([]string, config.BatchSize)
		for i := range references {
			references[i] = seqgen.RandomSequence(config.SequenceLen)
		}
	}

	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.GOMAXPROCS(0)
		fmt.Printf("Using auto worker count: %d\n", config.NumWorkers)
	}

	var lastScore int
	var lastTop, lastSide string
	var lastBatchScores []int
	totalTime := time.Duration(0)

	fmt.Printf("Running %s alignment (%d repetitions)...\n", config.Mode, config.Repetitions)

	for i := 0; i < config.Repetitions; i++ {
		runtime.GC()
		start := time.Now()

		switch config.Mode {
		case "sequential":
			lastTop, lastSide, lastScore = runOne(query, reference, alg, 1)
		case "parallel":
			lastTop, lastSide, lastScore = runOne(query, reference, alg, config.NumWorkers)
		case "batch":
			lastBatchScores = runBatch(query, references, alg, config.NumWorkers)
		default:
			fmt.Fprintf(os.Stderr, "invalid mode: %s\n", config.Mode)
			os.Exit(1)
		}

		elapsed := time.Since(start)
		totalTime += elapsed
		fmt.Printf("Run %d/%d: %v\n", i+1, config.Repetitions, elapsed)
	}

	avgTime := totalTime / time.Duration(config.Repetitions)
	fmt.Printf("\nExecution statistics:\n")
	fmt.Printf("- Total time: %v\n", totalTime)
	fmt.Printf("- Average time: %v per run\n", avgTime)

	switch config.Mode {
	case "sequential", "parallel":
		fmt.Printf("Alignment score: %d\n", lastScore)
		printShortAlignment(lastTop, lastSide)
	case "batch":
		fmt.Printf("Completed %d alignments\n", len(lastBatchScores))
		total := 0
		for _, s := range lastBatchScores {
			total += s
		}
		fmt.Printf("Average alignment score: %.1f\n", float64(total)/float64(len(lastBatchScores)))
		fmt.Printf("First alignment score: %d\n", lastBatchScores[0])
	}

	if config.MemProfile != "" {
		f, err := os.Create(config.MemProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create memory profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not write memory profile: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Memory profile written to %s\n", config.MemProfile)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("\nMemory usage:\n")
	fmt.Printf("- Allocated: %v MiB\n", bToMb(m.Alloc))
	fmt.Printf("- Total allocated: %v MiB\n", bToMb(m.TotalAlloc))
	fmt.Printf("- System memory: %v MiB\n", bToMb(m.Sys))
	fmt.Printf("- Garbage collections: %v\n", m.NumGC)

	fmt.Printf("\nProfiling insights:\n")
	fmt.Printf("- CPU cores available: %d\n", runtime.NumCPU())
	fmt.Printf("- Goroutines used: %d\n", runtime.NumGoroutine())

	bytesPerBase := float64(m.TotalAlloc) / float64(config.SequenceLen)
	fmt.Printf("- Memory efficiency: %.2f bytes/base\n", bytesPerBase)

	fmt.Printf("\nRecommendations:\n")
	if config.SequenceLen < 500 && config.Mode == "parallel" {
		fmt.Println("- For short sequences (<500 bp), the sequential algorithm may be more efficient")
	}
	if config.NumWorkers > runtime.NumCPU() {
		fmt.Println("- Worker count exceeds available CPU cores, which may reduce performance")
	}
	fmt.Println("- For maximum performance, tune worker count based on your specific hardware")
	fmt.Println("- Batch processing is recommended for aligning many sequences against a single query")
}

func runOne(query, reference string, alg engine.Algorithm, workers int) (top, side string, score int) {
	found := false
	sink := engine.SinkFunc(func(t, s string, _ engine.AlignmentStats) {
		if found {
			return
		}
		found, top, side = true, t, s
	})
	summary, err := engine.Run([]byte(query), []byte(reference), engine.Params{
		Match: matchBonus, Mismatch: mismatchPenalty, Indel: indelPenalty, Workers: workers, Algorithm: alg,
	}, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "alignment failed: %v\n", err)
		os.Exit(1)
	}
	return top, side, summary.OptimalScore
}

func runBatch(query string, references []string, alg engine.Algorithm, workers int) []int {
	scores := make([]int, len(references))
	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for j, ref := range references {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(j int, ref string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			_, _, score := runOne(query, ref, alg, 1)
			scores[j] = score
		}(j, ref)
	}
	wg.Wait()
	return scores
}

func printShortAlignment(top, side string) {
	maxLen := 50
	if len(top) > maxLen {
		top = top[:maxLen] + "..."
		side = side[:maxLen] + "..."
	}

	fmt.Println("\nAlignment (truncated):")
	fmt.Printf("Query:     %s\n", top)

	matchLine := make([]rune, len(top))
	for i := 0; i < len(top) && i < len(side); i++ {
		switch {
		case top[i] == side[i] && top[i] != '-' && side[i] != '-':
			matchLine[i] = '|'
		case top[i] != '-' && side[i] != '-':
			matchLine[i] = '.'
		default:
			matchLine[i] = ' '
		}
	}

	fmt.Printf("           %s\n", string(matchLine))
	fmt.Printf("Reference: %s\n", side)
}

func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}
