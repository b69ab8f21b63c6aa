// Command visualize renders an HTML report of one alignment (the
// aligned strings, a match line, and the detected point/indel
// mutations) either to a file or via a one-shot HTTP server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"nwsw/internal/engine"
	"nwsw/internal/seqgen"
)

const (
	matchBonus      = 2
	mismatchPenalty = 1
	indelPenalty    = 2
)

// VisualizationData is the alignment data fed into the HTML template.
type VisualizationData struct {
	AlignedQuery string     `json:"alignedQuery"`
	AlignedRef   string     `json:"alignedRef"`
	Score        int        `json:"score"`
	Mutations    []Mutation `json:"mutations"`
}

// Mutation is one detected point mutation or indel run.
type Mutation struct {
	Type     string `json:"type"` // "snp", "insertion", "deletion"
	Position int    `json:"position"`
	Length   int    `json:"length"`
	Original string `json:"original"`
	Mutated  string `json:"mutated"`
}

func main() {
	outputPath := flag.String("output", "", "path to output HTML file")
	querySeq := flag.String("query", "", "query DNA sequence")
	refSeq := flag.String("reference", "", "reference DNA sequence")
	generateRandom := flag.Bool("random", false, "generate random sequences")
	seqLength := flag.Int("length", 1000, "length for random sequences")
	algFlag := flag.String("algorithm", "local", "algorithm: global or local")
	workers := flag.Int("workers", 0, "number of workers (0 = auto)")
	runServer := flag.Bool("server", false, "run as a one-shot web server")
	serverPort := flag.Int("port", 8081, "port for web server")
	flag.Parse()

	if !*runServer && *outputPath == "" {
		fmt.Fprintln(os.Stderr, "error: must specify either -server or -output")
		flag.Usage()
		os.Exit(1)
	}

	var query, reference string
	if *generateRandom {
		log.Println("generating random sequences of length", *seqLength)
		query = seqgen.RandomSequence(*seqLength)
		reference = seqgen.RandomSequence(*seqLength)
	} else {
		query, reference = *querySeq, *refSeq
		if query == "" || reference == "" {
			fmt.Fprintln(os.Stderr, "error: must provide both -query and -reference, or use -random")
			flag.Usage()
			os.Exit(1)
		}
	}

	alg := engine.Local
	if *algFlag == "global" {
		alg = engine.Global
	}
	if *workers <= 0 {
		*workers = runtime.GOMAXPROCS(0)
	}
	log.Printf("running %s alignment with %d worker(s)...", alg, *workers)

	start := time.Now()
	top, side, score := runOne(query, reference, alg, *workers)
	log.Printf("alignment completed in %v", time.Since(start))
	log.Printf("alignment score: %d", score)

	result := VisualizationData{
		AlignedQuery: top,
		AlignedRef:   side,
		Score:        score,
		Mutations:    detectMutations(top, side),
	}

	if *runServer {
		log.Printf("starting visualization server on port %d...", *serverPort)
		if err := serveVisualization(result, *serverPort); err != nil {
			log.Fatalf("error starting server: %v", err)
		}
		return
	}

	outPath := *outputPath
	if !strings.HasSuffix(outPath, ".html") {
		outPath += ".html"
	}
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("error creating output directory: %v", err)
		}
	}

	log.Printf("generating visualization to %s...", outPath)
	if err := generateVisualization(result, outPath); err != nil {
		log.Fatalf("error generating visualization: %v", err)
	}
	log.Println("visualization generated successfully")
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
		log.Fatalf("alignment failed: %v", err)
	}
	return top, side, summary.OptimalScore
}

func generateVisualization(result VisualizationData, outputPath string) error {
	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling visualization data: %w", err)
	}

	data := templateData(result, jsonData)

	tmpl, err := template.New("visualization").Parse(visualizationTemplate)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return nil
}

func serveVisualization(result VisualizationData, port int) error {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		jsonData, err := json.Marshal(result)
		if err != nil {
			http.Error(w, fmt.Sprintf("marshaling data: %v", err), http.StatusInternalServerError)
			return
		}

		tmpl, err := template.New("visualization").Parse(visualizationTemplate)
		if err != nil {
			http.Error(w, fmt.Sprintf("parsing template: %v", err), http.StatusInternalServerError)
			return
		}

		if err := tmpl.Execute(w, templateData(result, jsonData)); err != nil {
			http.Error(w, fmt.Sprintf("executing template: %v", err), http.StatusInternalServerError)
		}
	})

	addr := ":" + strconv.Itoa(port)
	log.Printf("starting visualization server at http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

func templateData(result VisualizationData, jsonData []byte) any {
	return struct {
		AlignedQuery string
		AlignedRef   string
		Score        int
		Timestamp    string
		MatchLine    string
		JSONData     template.JS
	}{
		AlignedQuery: result.AlignedQuery,
		AlignedRef:   result.AlignedRef,
		Score:        result.Score,
		Timestamp:    time.Now().Format("2006-01-02 15:04:05"),
		MatchLine:    generateMatchLine(result.AlignedQuery, result.AlignedRef),
		JSONData:     template.JS(jsonData),
	}
}

// detectMutations analyzes aligned sequences to find point mutations
// and runs of inserted/deleted bases.
func detectMutations(top, side string) []Mutation {
	mutations := []Mutation{}
	topPos, sidePos := 0, 0
	var open string // "" | "insertion" | "deletion"

	for i := 0; i < len(top) && i < len(side); i++ {
		switch {
		case top[i] == '-':
			if open != "deletion" {
				mutations = append(mutations, Mutation{
					Type: "deletion", Position: sidePos,
					Original: string(side[i]), Mutated: "-", Length: 1,
				})
				open = "deletion"
			} else {
				last := &mutations[len(mutations)-1]
				last.Original += string(side[i])
				last.Length++
			}
			sidePos++
		case side[i] == '-':
			if open != "insertion" {
				mutations = append(mutations, Mutation{
					Type: "insertion", Position: topPos,
					Original: "-", Mutated: string(top[i]), Length: 1,
				})
				open = "insertion"
			} else {
				last := &mutations[len(mutations)-1]
				last.Mutated += string(top[i])
				last.Length++
			}
			topPos++
		case top[i] != side[i]:
			mutations = append(mutations, Mutation{
				Type: "snp", Position: topPos,
				Original: string(side[i]), Mutated: string(top[i]), Length: 1,
			})
			topPos++
			sidePos++
			open = ""
		default:
			topPos++
			sidePos++
			open = ""
		}
	}

	return mutations
}

func generateMatchLine(top, side string) string {
	matchLine := make([]byte, len(top))
	for i := 0; i < len(top) && i < len(side); i++ {
		switch {
		case top[i] == '-' || side[i] == '-':
			matchLine[i] = ' '
		case top[i] == side[i]:
			matchLine[i] = '|'
		default:
			matchLine[i] = '.'
		}
	}
	return string(matchLine)
}

const visualizationTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Alignment Visualization</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .alignment-container {
            font-family: monospace;
            white-space: pre;
            overflow-x: auto;
            background-color: #f5f5f5;
            padding: 15px;
            border-radius: 5px;
            margin-bottom: 20px;
        }
        .alignment-row { margin: 0; }
        .mutation {
            margin: 10px 0;
            padding: 10px;
            border-radius: 5px;
        }
        .snp { background-color: #fff3cd; }
        .insertion { background-color: #d1e7dd; }
        .deletion { background-color: #f8d7da; }
        h1, h2 { color: #333; }
        .info { color: #666; margin-bottom: 5px; }
        pre { margin: 0; }
    </style>
</head>
<body>
    <h1>Alignment Visualization</h1>
    <div class="info"><strong>Alignment Score:</strong> {{.Score}}</div>
    <div class="info"><strong>Generated:</strong> {{.Timestamp}}</div>

    <h2>Alignment</h2>
    <div class="alignment-container">
        <pre class="alignment-row">Query:  {{.AlignedQuery}}</pre>
        <pre class="alignment-row">Match:  {{.MatchLine}}</pre>
        <pre class="alignment-row">Ref:    {{.AlignedRef}}</pre>
    </div>

    <h2>Detected Mutations</h2>
    <div id="mutations-container"></div>

    <h2>Statistics</h2>
    <div id="statistics">
        <div>Total Mutations: <span id="total-mutations">0</span></div>
        <div>SNPs: <span id="snp-count">0</span></div>
        <div>Insertions: <span id="insertion-count">0</span></div>
        <div>Deletions: <span id="deletion-count">0</span></div>
    </div>

    <script>
        const alignmentData = {{.JSONData}};

        function displayMutations(mutations) {
            const container = document.getElementById('mutations-container');
            if (mutations.length === 0) {
                container.innerHTML = '<div>No mutations detected.</div>';
                return;
            }

            let snps = 0, insertions = 0, deletions = 0;
            mutations.forEach((mutation, index) => {
                const div = document.createElement('div');
                div.className = 'mutation ' + mutation.type;

                let description = '';
                if (mutation.type === 'snp') {
                    description = 'SNP at position ' + mutation.position + ': ' + mutation.original + ' -> ' + mutation.mutated;
                    snps++;
                } else if (mutation.type === 'insertion') {
                    description = 'Insertion at position ' + mutation.position + ': ' + mutation.mutated + ' inserted';
                    insertions++;
                } else if (mutation.type === 'deletion') {
                    description = 'Deletion at position ' + mutation.position + ': ' + mutation.original + ' deleted';
                    deletions++;
                }

                div.innerHTML = '<div><strong>Mutation #' + (index + 1) + ':</strong> ' + description + '</div>';
                container.appendChild(div);
            });

            document.getElementById('total-mutations').textContent = mutations.length;
            document.getElementById('snp-count').textContent = snps;
            document.getElementById('insertion-count').textContent = insertions;
            document.getElementById('deletion-count').textContent = deletions;
        }

        window.onload = function() {
            displayMutations(alignmentData.mutations || []);
        };
    </script>
</body>
</html>`
