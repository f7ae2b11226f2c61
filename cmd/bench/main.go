package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/i5heu/GoSeqLists/pkg/config"
)

func main() {
	// Flags.
	testIterations := flag.Int("iter", 5, "Number of test iterations per size setting")
	testDuration := flag.Duration("duration", 2*time.Second, "Duration of each iteration")
	workloadFilter := flag.String("workload", "", "Only run one workload: queue, stack or partition")
	jsonExport := flag.Bool("json", false, "Append results as JSON to -jsonfile")
	large := flag.Bool("large", false, "Include 100k and 1M element configurations")
	markdownTable := flag.Bool("markdown-table", false, "Output markdown table from -jsonfile and exit")
	jsonFile := flag.String("jsonfile", "test-results.json", "Path to JSON results file")
	progressFlag := flag.Bool("progress", false, "Display a progress bar with ETA")
	flag.Parse()

	if *markdownTable {
		sessions, err := loadSessions(*jsonFile)
		if err == nil {
			err = writeMarkdownTable(os.Stdout, sessions)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building markdown table: %v\n", err)
			os.Exit(1)
		}
		return
	}

	impls := getImplementations()
	if *workloadFilter != "" {
		if !slices.Contains(workloadNames(impls), *workloadFilter) {
			fmt.Fprintf(os.Stderr, "Unknown workload %q, want one of %s\n",
				*workloadFilter, strings.Join(workloadNames(impls), ", "))
			os.Exit(1)
		}
		impls = slices.DeleteFunc(impls, func(impl Implementation) bool {
			return impl.workload() != *workloadFilter
		})
	}

	sizes := sizeConfigs(*large)

	var bar *progressbar.ProgressBar
	if *progressFlag {
		totalTests := len(sizes) * (*testIterations) * len(impls)
		bar = progressbar.NewOptions(totalTests,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Benchmarking"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionClearOnFinish(),
		)
	}

	sysInfo := gatherSystemInfo()
	var results []BenchmarkResult
	failed := false

	for _, cfg := range sizes {
		fmt.Printf("  [Elements: %d]\n", cfg.NumElements)
		for iteration := 1; iteration <= *testIterations; iteration++ {
			fmt.Printf("    iteration %d/%d\n", iteration, *testIterations)
			for _, impl := range impls {
				runtime.GC()

				res := impl.run(cfg, *testDuration)
				throughput := float64(res.Operations) / res.Elapsed.Seconds()
				var nsPerElement float64
				if res.Elements > 0 {
					nsPerElement = float64(res.Elapsed.Nanoseconds()) / float64(res.Elements)
				}

				fmt.Printf("    %s => ops=%d, elements=%d, %.2f ns/element, throughput=%.0f ops/s, took=%v\n",
					impl.name, res.Operations, res.Elements, nsPerElement, throughput, res.Elapsed)
				if res.Mismatches > 0 {
					fmt.Fprintf(os.Stderr, "    %s: %d mismatches at %d elements\n",
						impl.name, res.Mismatches, cfg.NumElements)
					failed = true
				}

				if bar != nil {
					bar.Add(1)
				}

				results = append(results, BenchmarkResult{
					Implementation: impl.name,
					Workload:       impl.workload(),
					NumElements:    cfg.NumElements,
					Operations:     res.Operations,
					Elements:       res.Elements,
					Mismatches:     res.Mismatches,
					TestDuration:   testDuration.String(),
					ActualElapsed:  res.Elapsed.String(),
					NsPerElement:   nsPerElement,
					Throughput:     throughput,
					Timestamp:      time.Now().Unix(),
					GoVersion:      runtime.Version(),
				})
			}
		}
	}

	if bar != nil {
		bar.Finish()
	}

	if *jsonExport {
		session := FullReport{
			SessionTime: time.Now().Format(time.RFC3339),
			SystemInfo:  sysInfo,
			Benchmarks:  results,
		}
		if err := appendSessions(*jsonFile, []FullReport{session}); err != nil {
			fmt.Fprintln(os.Stderr, "Error exporting results:", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote results to %s\n", *jsonFile)
	}

	if failed {
		os.Exit(1)
	}
}

// sizeConfigs lists the element counts to measure, smallest first. large adds
// the counts that take minutes per implementation.
func sizeConfigs(large bool) []config.Config {
	configs := []config.Config{
		{NumElements: 100},
		{NumElements: 1_000},
		{NumElements: 10_000},
	}
	if large {
		configs = append(configs,
			config.Config{NumElements: 100_000},
			config.Config{NumElements: 1_000_000},
		)
	}
	return configs
}
