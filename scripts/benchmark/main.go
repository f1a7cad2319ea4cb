package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"
)

// CLI flags
var (
	apiURL = flag.String("api-url", "http://localhost:8780", "Kudoscope API base URL")
	runs   = flag.Int("runs", 5, "Number of runs per endpoint for averaging")
	output = flag.String("output", "benchmark-results.json", "JSON output file path")
)

// Endpoints covering the whole read surface.
var endpoints = []struct {
	Label string
	Path  string
}{
	{"Health", "/api/v1/health"},
	{"Works", "/api/v1/works"},
	{"Filtered", "/api/v1/works?fandom=Sherlock"},
	{"Top 10", "/api/v1/works?sort=kudos&limit=10"},
	{"Stats", "/api/v1/stats"},
}

// worksResponse mirrors the count field of the works payload; endpoints
// without it decode to zero.
type worksResponse struct {
	Count int `json:"count"`
}

// --- Benchmark result types ---

type runResult struct {
	Run        int    `json:"run"`
	LatencyMs  int64  `json:"latency_ms"`
	BodyBytes  int    `json:"body_bytes"`
	Records    int    `json:"records,omitempty"`
	StatusCode int    `json:"status_code"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

type endpointAverages struct {
	LatencyMs float64 `json:"latency_ms"`
	MinMs     int64   `json:"min_ms"`
	MaxMs     int64   `json:"max_ms"`
	BodyBytes float64 `json:"body_bytes"`
}

type endpointResult struct {
	Path     string            `json:"path"`
	Label    string            `json:"label"`
	Runs     []runResult       `json:"runs"`
	Averages *endpointAverages `json:"averages,omitempty"`
}

type benchmarkReport struct {
	Timestamp       string           `json:"timestamp"`
	APIURL          string           `json:"api_url"`
	RunsPerEndpoint int              `json:"runs_per_endpoint"`
	Results         []endpointResult `json:"results"`
}

func main() {
	flag.Parse()

	fmt.Println("=== Kudoscope API Benchmark ===")
	fmt.Printf("API URL:       %s\n", *apiURL)
	fmt.Printf("Runs/endpoint: %d\n", *runs)
	fmt.Printf("Output:        %s\n", *output)
	fmt.Println()

	// Quick connectivity check.
	if err := checkAPI(*apiURL); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot reach API at %s: %v\n", *apiURL, err)
		fmt.Fprintf(os.Stderr, "Make sure the API is running (kudoscope serve)\n")
		os.Exit(1)
	}

	report := benchmarkReport{
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		APIURL:          *apiURL,
		RunsPerEndpoint: *runs,
	}

	for _, e := range endpoints {
		fmt.Printf("Benchmarking [%s] %s ...\n", e.Label, e.Path)
		er := endpointResult{Path: e.Path, Label: e.Label}

		for i := 1; i <= *runs; i++ {
			fmt.Printf("  Run %d/%d ... ", i, *runs)
			rr := benchmarkEndpoint(e.Path, i)
			if rr.Success {
				fmt.Printf("OK  %dms  %s bytes\n", rr.LatencyMs, formatInt(rr.BodyBytes))
			} else {
				fmt.Printf("FAILED: %s\n", rr.Error)
			}
			er.Runs = append(er.Runs, rr)
		}

		er.Averages = computeAverages(er.Runs)
		report.Results = append(report.Results, er)
		fmt.Println()
	}

	// Print summary table.
	printTable(report.Results)

	// Write JSON report.
	if err := writeJSON(*output, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing JSON output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nDetailed results written to %s\n", *output)
}

func checkAPI(baseURL string) error {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(baseURL + "/api/v1/health")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func benchmarkEndpoint(path string, run int) runResult {
	rr := runResult{Run: run}

	client := &http.Client{Timeout: 30 * time.Second}

	start := time.Now()
	resp, err := client.Get(*apiURL + path)
	if err != nil {
		rr.Error = fmt.Sprintf("request failed: %v", err)
		return rr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	rr.LatencyMs = time.Since(start).Milliseconds()
	if err != nil {
		rr.Error = fmt.Sprintf("read body: %v", err)
		return rr
	}

	rr.StatusCode = resp.StatusCode
	rr.BodyBytes = len(body)
	rr.Success = resp.StatusCode == http.StatusOK
	if !rr.Success {
		rr.Error = fmt.Sprintf("status %d", resp.StatusCode)
		return rr
	}

	var wr worksResponse
	if err := json.Unmarshal(body, &wr); err == nil {
		rr.Records = wr.Count
	}
	return rr
}

func computeAverages(runs []runResult) *endpointAverages {
	var successCount int
	var avg endpointAverages

	for _, r := range runs {
		if !r.Success {
			continue
		}
		if successCount == 0 || r.LatencyMs < avg.MinMs {
			avg.MinMs = r.LatencyMs
		}
		if r.LatencyMs > avg.MaxMs {
			avg.MaxMs = r.LatencyMs
		}
		successCount++
		avg.LatencyMs += float64(r.LatencyMs)
		avg.BodyBytes += float64(r.BodyBytes)
	}

	if successCount == 0 {
		return nil
	}

	n := float64(successCount)
	avg.LatencyMs /= n
	avg.BodyBytes /= n
	return &avg
}

func printTable(results []endpointResult) {
	fmt.Println(strings.Repeat("─", 72))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Endpoint\tAvg Latency\tMin/Max\tBody Size\tStatus\n")
	fmt.Fprintf(w, "────────\t───────────\t───────\t─────────\t──────\n")

	for _, r := range results {
		if r.Averages == nil {
			fmt.Fprintf(w, "%s\tFAILED\t-\t-\t-\n", r.Label)
			continue
		}

		status := dominantStatus(r.Runs)

		fmt.Fprintf(w, "%s\t%.1fms\t%d/%dms\t%s\t%d\n",
			r.Label,
			r.Averages.LatencyMs,
			r.Averages.MinMs,
			r.Averages.MaxMs,
			formatInt(int(r.Averages.BodyBytes)),
			status,
		)
	}

	w.Flush()
	fmt.Println(strings.Repeat("─", 72))
}

func dominantStatus(runs []runResult) int {
	counts := map[int]int{}
	for _, r := range runs {
		if r.Success {
			counts[r.StatusCode]++
		}
	}
	best, bestCount := 0, 0
	for code, count := range counts {
		if count > bestCount {
			best = code
			bestCount = count
		}
	}
	return best
}

func formatInt(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var result []byte
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

func writeJSON(path string, report benchmarkReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
