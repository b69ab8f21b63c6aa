// Command benchmark times sequential vs. parallel alignment, and
// sequential vs. parallel batch processing, over synthetic sequences.
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

// ExecutionMode is which benchmark scenario to run.
type ExecutionMode int

const (
	Sequential ExecutionMode = iota
	Parallel
	BatchSequential
	BatchParallel
)

func (m ExecutionMode) String() string {
	return [...]string{"Sequential", "Parallel", "BatchSequential", "BatchParallel"}[m]
}

func main() {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	modeFlag := flag.String("mode", "all", "benchmark mode: sequential, parallel, batch-seq, batch-par, or all")
	seqLength := flag.Int("length", 1000, "sequence length")
	numWorkers := flag.Int("workers", runtime.GOMAXPROCS(0), "number of workers for parallel execution")
	batchSize := flag.Int("batch", 10, "batch size for batch mode")
	repetitions := flag.Int("reps", 3, "number of repetitions for more accurate timing")
	algFlag := flag.String("algorithm", "local", "algorithm: global or local")
	flag.Parse()

	alg := engine.Local
	if *algFlag == "global" {
		alg = engine.Global
	}

	var modesToRun []ExecutionMode
	switch *modeFlag {
	case "sequential":
		modesToRun = []ExecutionMode{Sequential}
	case "parallel":
		modesToRun = []ExecutionMode{Parallel}
	case "batch-seq":
		modesToRun = []ExecutionMode{BatchSequential}
	case "batch-par":
		modesToRun = []ExecutionMode{BatchParallel}
	case "all":
		modesToRun = []ExecutionMode{Sequential, Parallel, BatchSequential, BatchParallel}
	default:
		fmt.Fprintf(os.Stderr, "invalid mode: %s\n", *modeFlag)
		os.Exit(1)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
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

	var sequentialTime, parallelTime time.Duration
	var batchSeqTime, batchParTime time.Duration

	fmt.Printf("Generating test sequences (length: %d)...\n", *seqLength)
	query := seqgen.RandomSequence(*seqLength)
	reference := seqgen.RandomSequence(*seqLength)

	var references []string
	if containsAny(modesToRun, BatchSequential, BatchParallel) {
		fmt.Printf("Generating %d reference sequences for batch processing...\n", *batchSize)
		references = make([]string, *batchSize)
		for i := range references {
			references[i] = seqgen.RandomSequence(*seqLength)
		}
	}

	for _, mode := range modesToRun {
		fmt.Printf("\n=== Benchmarking %s Mode ===\n", mode)

		switch mode {
		case Sequential:
			fmt.Printf("Running sequential alignment (length: %d, repetitions: %d)...\n", *seqLength, *repetitions)
			sequentialTime = runBenchmark(query, reference, alg, 1, *repetitions)
			fmt.Printf("Sequential execution time: %v\n", sequentialTime)

		case Parallel:
			fmt.Printf("Running parallel alignment (length: %d, workers: %d, repetitions: %d)...\n",
				*seqLength, *numWorkers, *repetitions)
			parallelTime = runBenchmark(query, reference, alg, *numWorkers, *repetitions)
			fmt.Printf("Parallel execution time: %v\n", parallelTime)
			if sequentialTime > 0 {
				fmt.Printf("Speedup factor: %.2fx\n", float64(sequentialTime)/float64(parallelTime))
			}

		case BatchSequential:
			fmt.Printf("Running sequential batch processing (length: %d, batch size: %d, repetitions: %d)...\n",
				*seqLength, *batchSize, *repetitions)
			batchSeqTime = runBatchBenchmark(query, references, alg, 1, *repetitions)
			fmt.Printf("Sequential batch execution time: %v\n", batchSeqTime)

		case BatchParallel:
			fmt.Printf("Running parallel batch processing (length: %d, batch size: %d, workers: %d, repetitions: %d)...\n",
				*seqLength, *batchSize, *numWorkers, *repetitions)
			batchParTime = runBatchBenchmark(query, references, alg, *numWorkers, *repetitions)
			fmt.Printf("Parallel batch execution time: %v\n", batchParTime)
			if batchSeqTime > 0 {
				fmt.Printf("Batch speedup factor: %.2fx\n", float64(batchSeqTime)/float64(batchParTime))
			}
		}
	}

	if len(modesToRun) > 1 {
		fmt.Printf("\n=== Performance Summary ===\n")
		if sequentialTime > 0 && parallelTime > 0 {
			fmt.Printf("Single alignment: Sequential = %v, Parallel = %v, Speedup = %.2fx\n",
				sequentialTime, parallelTime, float64(sequentialTime)/float64(parallelTime))
		}
		if batchSeqTime > 0 && batchParTime > 0 {
			fmt.Printf("Batch processing: Sequential = %v, Parallel = %v, Speedup = %.2fx\n",
				batchSeqTime, batchParTime, float64(batchSeqTime)/float64(batchParTime))
		}
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
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
		fmt.Printf("Memory profile written to %s\n", *memprofile)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("\nMemory usage:\n")
	fmt.Printf("Alloc = %v MiB", bToMb(m.Alloc))
	fmt.Printf("\tTotalAlloc = %v MiB", bToMb(m.TotalAlloc))
	fmt.Printf("\tSys = %v MiB", bToMb(m.Sys))
	fmt.Printf("\tNumGC = %v\n", m.NumGC)
}

func runBenchmark(query, reference string, alg engine.Algorithm, workers, repetitions int) time.Duration {
	totalTime := time.Duration(0)

	for i := 0; i < repetitions; i++ {
		start := time.Now()
		summary, err := engine.Run([]byte(query), []byte(reference), engine.Params{
			Match: matchBonus, Mismatch: mismatchPenalty, Indel: indelPenalty, Workers: workers, Algorithm: alg,
		}, engine.DiscardSink)
		totalTime += time.Since(start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "alignment failed: %v\n", err)
			os.Exit(1)
		}
		if i == 0 {
			fmt.Printf("Alignment score: %d\n", summary.OptimalScore)
		}
	}

	return totalTime / time.Duration(repetitions)
}

func runBatchBenchmark(query string, references []string, alg engine.Algorithm, workers, repetitions int) time.Duration {
	totalTime := time.Duration(0)

	for i := 0; i < repetitions; i++ {
		start := time.Now()

		scores := make([]int, len(references))
		semaphore := make(chan struct{}, workers)
		var wg sync.WaitGroup
		for j, ref := range references {
			wg.Add(1)
			semaphore <- struct{}{}
			go func(j int, ref string) {
				defer wg.Done()
				defer func() { <-semaphore }()
				summary, err := engine.Run([]byte(query), []byte(ref), engine.Params{
					Match: matchBonus, Mismatch: mismatchPenalty, Indel: indelPenalty, Workers: 1, Algorithm: alg,
				}, engine.DiscardSink)
				if err != nil {
					fmt.Fprintf(os.Stderr, "alignment failed: %v\n", err)
					os.Exit(1)
				}
				scores[j] = summary.OptimalScore
			}(j, ref)
		}
		wg.Wait()

		totalTime += time.Since(start)

		if i == 0 {
			totalScore := 0
			for _, s := range scores {
				totalScore += s
			}
			fmt.Printf("Average alignment score: %.1f\n", float64(totalScore)/float64(len(scores)))
		}
	}

	return totalTime / time.Duration(repetitions)
}

func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}

func containsAny(slice []ExecutionMode, values ...ExecutionMode) bool {
	for _, v := range values {
		for _, s := range slice {
			if s == v {
				return true
			}
		}
	}
	return false
}
