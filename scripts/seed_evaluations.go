// seed_evaluations.go: standalone script that parses scenario tables from a
// markdown file and posts each one to the Decide API as an evaluation.
//
// Each "## " section is one scenario. Rows are comma separated: the first
// cell is the alternative name and the rest are criterion values in registry
// order. A row named "weights" supplies the weights.
//
// Usage:
//
//	go run scripts/seed_evaluations.go -file scenarios.md -api http://localhost:8700
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
)

type evaluationRequest struct {
	Names   []string   `json:"names"`
	Columns [][]string `json:"columns"`
	Weights []string   `json:"weights"`
}

type scenario struct {
	title string
	rows  [][]string
	req   evaluationRequest
}

func main() {
	path := flag.String("file", "scenarios.md", "path to scenario file")
	apiURL := flag.String("api", "http://localhost:8700", "Decide API base URL")
	dryRun := flag.Bool("dry-run", false, "print scenarios without posting")
	flag.Parse()

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("open %s: %v", *path, err)
	}
	defer f.Close()

	var scenarios []*scenario
	var current *scenario
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "## ") {
			current = &scenario{title: strings.TrimSpace(strings.TrimPrefix(line, "## "))}
			scenarios = append(scenarios, current)
			continue
		}
		if current == nil || line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cells := strings.Split(line, ",")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		current.rows = append(current.rows, cells)
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("scan %s: %v", *path, err)
	}

	for _, s := range scenarios {
		s.req = buildRequest(s.rows)
	}
	log.Printf("parsed %d scenarios from %s", len(scenarios), *path)

	if *dryRun {
		for i, s := range scenarios {
			fmt.Printf("[%d] %s (alternatives=%d, weights=%s)\n",
				i+1, s.title, len(s.req.Names), strings.Join(s.req.Weights, "/"))
		}
		return
	}

	client := &http.Client{}
	created, skipped := 0, 0
	for _, s := range scenarios {
		body, _ := json.Marshal(s.req)
		req, err := http.NewRequest("POST", *apiURL+"/api/v1/evaluations", bytes.NewReader(body))
		if err != nil {
			log.Printf("skip %q: %v", s.title, err)
			skipped++
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("skip %q: %v", s.title, err)
			skipped++
			continue
		}

		var result struct {
			ID     string `json:"evaluation_id"`
			Error  string `json:"error"`
			Report struct {
				Ranking []struct {
					Name  string  `json:"name"`
					Score float64 `json:"score"`
				} `json:"ranking"`
			} `json:"report"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&result)
		resp.Body.Close()

		if resp.StatusCode == http.StatusCreated && len(result.Report.Ranking) > 0 {
			best := result.Report.Ranking[0]
			log.Printf("%s: %s best (%.4f), id=%s", s.title, best.Name, best.Score, result.ID)
			created++
		} else {
			log.Printf("skip %q: status %d: %s", s.title, resp.StatusCode, result.Error)
			skipped++
		}
	}

	log.Printf("done: %d created, %d skipped", created, skipped)
}

// buildRequest transposes alternative rows into criterion columns. Ragged rows
// are passed through so the API reports the exact validation error.
func buildRequest(rows [][]string) evaluationRequest {
	var req evaluationRequest
	width := 0
	for _, row := range rows {
		if len(row)-1 > width {
			width = len(row) - 1
		}
	}
	req.Columns = make([][]string, width)

	for _, row := range rows {
		if isWeightRow(row[0]) {
			req.Weights = row[1:]
			continue
		}
		req.Names = append(req.Names, row[0])
		for j := 1; j < len(row); j++ {
			req.Columns[j-1] = append(req.Columns[j-1], row[j])
		}
	}
	return req
}

func isWeightRow(name string) bool {
	switch strings.ToLower(name) {
	case "weights", "weight", "bobot":
		return true
	}
	return false
}
