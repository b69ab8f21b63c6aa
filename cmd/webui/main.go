// Command webui serves a small JSON API and browser page for running
// alignments interactively: single pairs, parallel runs, and batches of
// one query against many references.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"nwsw/internal/engine"
	"nwsw/internal/seqgen"
)

const (
	matchBonus      = 2
	mismatchPenalty = 1
	indelPenalty    = 2
	shutdownTimeout = 10 * time.Second
)

// AlignmentRequest is the JSON body handleAlign accepts.
type AlignmentRequest struct {
	Query          string `json:"query"`
	Reference      string `json:"reference"`
	Algorithm      string `json:"algorithm"` // "global" or "local", defaults to "local"
	Workers        int    `json:"workers"`
	GenerateRandom bool   `json:"generateRandom"`
	RandomLength   int    `json:"randomLength"`
	BatchSize      int    `json:"batchSize"`
	UseBatch       bool   `json:"useBatch"`
}

// AlignmentResponse is the JSON body handleAlign returns.
type AlignmentResponse struct {
	QuerySequence   string          `json:"querySequence"`
	RefSequence     string          `json:"refSequence"`
	AlignedQuery    string          `json:"alignedQuery"`
	AlignedRef      string          `json:"alignedRef"`
	Score           int             `json:"score"`
	SolutionCount   uint64          `json:"solutionCount"`
	ExecutionTimeMs float64         `json:"executionTimeMs"`
	Workers         int             `json:"workers"`
	BatchResults    []BatchResult   `json:"batchResults,omitempty"`
	PerformanceData PerformanceData `json:"performanceData"`
}

// BatchResult is one reference's result within a batch alignment.
type BatchResult struct {
	Index        int    `json:"index"`
	Score        int    `json:"score"`
	AlignedQuery string `json:"alignedQuery"`
	AlignedRef   string `json:"alignedRef"`
}

// PerformanceData carries runtime metrics alongside a response, for the
// page's "how parallel was this" panel.
type PerformanceData struct {
	CPUCores      int    `json:"cpuCores"`
	Goroutines    int    `json:"goroutines"`
	AllocatedMB   uint64 `json:"allocatedMB"`
	SystemMemoryM uint64 `json:"systemMemoryMB"`
}

func main() {
	addr := ":8080"
	if v := os.Getenv("NWSW_WEBUI_ADDR"); v != "" {
		addr = v
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", handleIndex)
	r.Post("/align", handleAlign)
	r.Get("/system-info", handleSystemInfo)

	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		log.Printf("starting webui on http://localhost%s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("webui: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Print("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("webui: forced shutdown: %v", err)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head><title>nwsw</title></head>
<body>
<h1>Pairwise sequence alignment</h1>
<p>This host has {{.CPUCores}} CPU core(s) available.</p>
<p>POST a JSON body to <code>/align</code> to run an alignment.</p>
</body>
</html>
`))

func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data := struct{ CPUCores int }{CPUCores: runtime.NumCPU()}
	if err := indexTemplate.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func algorithmFromRequest(req AlignmentRequest) engine.Algorithm {
	if strings.EqualFold(req.Algorithm, "global") {
		return engine.Global
	}
	return engine.Local
}

// runOne performs a single alignment and returns its best (first
// emitted) solution's aligned strings and score, alongside the number
// of co-optimal solutions found.
func runOne(query, reference string, alg engine.Algorithm, workers int) (top, side string, score int, solutions uint64, err error) {
	found := false
	sink := engine.SinkFunc(func(t, s string, _ engine.AlignmentStats) {
		if found {
			return
		}
		found, top, side = true, t, s
	})

	summary, err := engine.Run([]byte(query), []byte(reference), engine.Params{
		Match: matchBonus, Mismatch: mismatchPenalty, Indel: indelPenalty,
		Workers: workers, Algorithm: alg,
	}, sink)
	if err != nil {
		return "", "", 0, 0, err
	}
	return top, side, summary.OptimalScore, summary.SolutionCount, nil
}

func handleAlign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "parsing request: "+err.Error(), http.StatusBadRequest)
		return
	}

	query, reference := req.Query, req.Reference
	if req.GenerateRandom {
		length := req.RandomLength
		if length <= 0 {
			length = 100
		}
		query = seqgen.RandomSequence(length)
		reference = seqgen.RandomSequence(length)
	}

	if !isValidDNA(query) || !isValidDNA(reference) {
		http.Error(w, "invalid DNA sequence: use only A, C, G, T characters", http.StatusBadRequest)
		return
	}

	workers := req.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	alg := algorithmFromRequest(req)

	resp := AlignmentResponse{QuerySequence: query, RefSequence: reference, Workers: workers}
	start := time.Now()

	if req.UseBatch {
		batchSize := req.BatchSize
		if batchSize <= 0 {
			batchSize = 10
		}
		references := make([]string, batchSize)
		references[0] = reference
		for i := 1; i < batchSize; i++ {
			references[i] = seqgen.WithMutations(reference, 3)
		}

		results, totalSolutions, err := runBatch(r.Context(), query, references, alg, workers)
		if err != nil {
			http.Error(w, "running batch alignment: "+err.Error(), http.StatusInternalServerError)
			return
		}
		resp.BatchResults = results
		resp.SolutionCount = totalSolutions
		resp.AlignedQuery = results[0].AlignedQuery
		resp.AlignedRef = results[0].AlignedRef
		resp.Score = results[0].Score
	} else {
		top, side, score, solutions, err := runOne(query, reference, alg, workers)
		if err != nil {
			http.Error(w, "running alignment: "+err.Error(), http.StatusInternalServerError)
			return
		}
		resp.AlignedQuery, resp.AlignedRef, resp.Score, resp.SolutionCount = top, side, score, solutions
	}

	resp.ExecutionTimeMs = float64(time.Since(start)) / float64(time.Millisecond)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	resp.PerformanceData = PerformanceData{
		CPUCores:      runtime.NumCPU(),
		Goroutines:    runtime.NumGoroutine(),
		AllocatedMB:   m.Alloc / (1024 * 1024),
		SystemMemoryM: m.Sys / (1024 * 1024),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "encoding response: "+err.Error(), http.StatusInternalServerError)
	}
}

// runBatch aligns query against every reference with bounded fan-out
// (Workers concurrent alignments at a time), the same bounded-
// concurrency shape a batch-alignment endpoint needs regardless of how
// the underlying engine parallelizes any one alignment.
func runBatch(ctx context.Context, query string, references []string, alg engine.Algorithm, concurrency int) ([]BatchResult, uint64, error) {
	results := make([]BatchResult, len(references))
	var totalSolutions uint64

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, ref := range references {
		i, ref := i, ref
		g.Go(func() error {
			top, side, score, solutions, err := runOne(query, ref, alg, 1)
			if err != nil {
				return err
			}
			results[i] = BatchResult{Index: i, Score: score, AlignedQuery: top, AlignedRef: side}
			atomic.AddUint64(&totalSolutions, solutions)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return results, totalSolutions, nil
}

func handleSystemInfo(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	info := struct {
		CPUCores       int    `json:"cpuCores"`
		GoVersion      string `json:"goVersion"`
		NumGoroutines  int    `json:"numGoroutines"`
		AllocatedMemMB uint64 `json:"allocatedMemMB"`
		SystemMemMB    uint64 `json:"systemMemMB"`
	}{
		CPUCores:       runtime.NumCPU(),
		GoVersion:      runtime.Version(),
		NumGoroutines:  runtime.NumGoroutine(),
		AllocatedMemMB: m.Alloc / (1024 * 1024),
		SystemMemMB:    m.Sys / (1024 * 1024),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(info); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func isValidDNA(s string) bool {
	if s == "" {
		return false
	}
	s = strings.ToUpper(s)
	for _, c := range s {
		if c != 'A' && c != 'C' && c != 'G' && c != 'T' {
			return false
		}
	}
	return true
}
