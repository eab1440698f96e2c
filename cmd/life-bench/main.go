package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"conwaylife/internal/config"
	"conwaylife/internal/logging"
	"conwaylife/pkg/life"
)

type benchResult struct {
	size       int
	workers    int
	durations  []time.Duration
	population int
}

func (r benchResult) median() time.Duration {
	if len(r.durations) == 0 {
		return 0
	}
	sorted := slices.Clone(r.durations)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}

func main() {
	sizeFlag := flag.String("sizes", "64,256,512", "comma separated world sizes")
	workerFlag := flag.String("workers", fmt.Sprintf("1,2,%d", runtime.NumCPU()), "comma separated worker counts")
	generations := flag.Int("generations", 100, "generations per run")
	repeat := flag.Int("repeat", 3, "runs per configuration")
	seed := flag.Int64("seed", config.DefaultSeed, "seed for every run")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger := logging.NewLogger(*level, os.Stderr)

	sizes, err := parseInts(*sizeFlag)
	if err != nil {
		logger.Fatal("failed to parse sizes", "err", err)
	}
	workers, err := parseInts(*workerFlag)
	if err != nil {
		logger.Fatal("failed to parse workers", "err", err)
	}
	if *generations <= 0 || *repeat <= 0 {
		logger.Fatal("generations and repeat must be positive")
	}

	for _, size := range sizes {
		var baseline *benchResult
		for _, w := range workers {
			res, err := bench(size, w, *generations, *repeat, *seed)
			if err != nil {
				logger.Fatal("benchmark failed", "size", size, "workers", w, "err", err)
			}
			if baseline == nil {
				baseline = &res
			} else if res.population != baseline.population {
				logger.Fatal("worker counts disagree",
					"size", size, "workers", w,
					"population", res.population, "expected", baseline.population)
			}
			speedup := float64(baseline.median()) / float64(max(res.median(), 1))
			fmt.Printf("size=%-5d workers=%-3d median=%-12v speedup=%.2fx population=%d\n",
				size, w, res.median(), speedup, res.population)
		}
	}
}

// bench runs a renderer-less simulation repeat times and records how long
// each run took.
func bench(size, workers, generations, repeat int, seed int64) (benchResult, error) {
	res := benchResult{size: size, workers: workers}
	for i := 0; i < repeat; i++ {
		grid, err := life.NewGrid(size, seed)
		if err != nil {
			return res, err
		}
		sim := life.NewSimulation(generations, grid, nil, life.WithWorkers(workers))
		start := time.Now()
		if err := sim.Run(); err != nil {
			return res, err
		}
		res.durations = append(res.durations, time.Since(start))
		res.population = grid.Population()
	}
	return res, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", part, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("value %d must be positive", n)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values in %q", s)
	}
	return out, nil
}
