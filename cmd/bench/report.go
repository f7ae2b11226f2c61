package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var errNoSessions = errors.New("no sessions found")

// BenchmarkResult holds results for one test run.
type BenchmarkResult struct {
	Implementation string  `json:"implementation"`
	Workload       string  `json:"workload"`
	NumElements    int     `json:"num_elements"`
	Operations     int64   `json:"operations"`     // push+pop count, or partitions
	Elements       int64   `json:"elements"`       // elements moved through the container
	Mismatches     int64   `json:"mismatches"`     // order or predicate violations
	TestDuration   string  `json:"test_duration"`  // e.g. "2s"
	ActualElapsed  string  `json:"actual_elapsed"` // measured time
	NsPerElement   float64 `json:"ns_per_element"`
	Throughput     float64 `json:"throughput_ops_sec"`
	Timestamp      int64   `json:"timestamp"`
	GoVersion      string  `json:"go_version"`
}

// SystemInfo holds system information.
type SystemInfo struct {
	NumCPU      int     `json:"num_cpu"`
	CPUModel    string  `json:"cpu_model,omitempty"`
	CPUSpeedMHz float64 `json:"cpu_speed_mhz,omitempty"`
	GOARCH      string  `json:"go_arch"`
	TotalMemory uint64  `json:"total_memory_bytes,omitempty"`
}

// FullReport represents a complete test session.
type FullReport struct {
	SessionTime string            `json:"session_time"`
	SystemInfo  SystemInfo        `json:"system_info"`
	Benchmarks  []BenchmarkResult `json:"benchmarks"`
}

// gatherSystemInfo collects basic CPU and memory details.
func gatherSystemInfo() SystemInfo {
	info := SystemInfo{
		NumCPU: runtime.NumCPU(),
		GOARCH: runtime.GOARCH,
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		info.CPUModel = infos[0].ModelName
		info.CPUSpeedMHz = infos[0].Mhz
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
	}
	return info
}

// loadSessions reads every session stored in filename. A missing or empty
// file yields no sessions and no error.
func loadSessions(filename string) ([]FullReport, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", filename)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, errors.Wrapf(err, "unmarshalling %q", filename)
	}
	return sessions, nil
}

// appendSessions adds sessions to the ones already stored in filename.
func appendSessions(filename string, sessions []FullReport) error {
	previous, err := loadSessions(filename)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(append(previous, sessions...), "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling JSON")
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %q", filename)
	}
	return nil
}

type tableRow struct {
	implementation string
	pkgName        string
	features       string
	author         string
	nsPerElement   float64
	throughput     float64
}

// writeMarkdownTable renders the last session in sessions, one table per
// workload at the largest element count measured for it. Iterations of the
// same implementation are averaged.
func writeMarkdownTable(w io.Writer, sessions []FullReport) error {
	if len(sessions) == 0 {
		return errNoSessions
	}
	last := sessions[len(sessions)-1]

	implMetaMap := make(map[string]Implementation)
	for _, impl := range getImplementations() {
		implMetaMap[impl.name] = impl
	}

	largest := make(map[string]int)
	for _, b := range last.Benchmarks {
		largest[b.Workload] = max(largest[b.Workload], b.NumElements)
	}

	fmt.Fprintln(w, "## Last Session Benchmark Summary")
	for _, workload := range []string{workloadQueue, workloadStack, workloadPartition} {
		n, ok := largest[workload]
		if !ok {
			continue
		}

		type sum struct {
			ns, tp float64
			count  int
		}
		sums := make(map[string]*sum)
		var order []string
		for _, b := range last.Benchmarks {
			if b.Workload != workload || b.NumElements != n {
				continue
			}
			s, ok := sums[b.Implementation]
			if !ok {
				s = &sum{}
				sums[b.Implementation] = s
				order = append(order, b.Implementation)
			}
			s.ns += b.NsPerElement
			s.tp += b.Throughput
			s.count++
		}

		var rows []tableRow
		for _, name := range order {
			s := sums[name]
			row := tableRow{
				implementation: name,
				nsPerElement:   s.ns / float64(s.count),
				throughput:     s.tp / float64(s.count),
			}
			if meta, ok := implMetaMap[name]; ok {
				row.pkgName = meta.pkgName
				row.features = strings.Join(meta.features, ", ")
				row.author = strings.Join(meta.authors, ", ")
			}
			rows = append(rows, row)
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].nsPerElement < rows[j].nsPerElement
		})

		fmt.Fprintln(w)
		fmt.Fprintf(w, "### %s (%d elements)\n\n", workload, n)
		fmt.Fprintln(w, "| Implementation | Package     | Features                 | Author                            | ns/element | Throughput (ops/sec) |")
		fmt.Fprintln(w, "|----------------|-------------|--------------------------|-----------------------------------|------------|----------------------|")
		for _, r := range rows {
			fmt.Fprintf(w, "| %-14s | %-11s | %-24s | %-33s | %10.2f | %20.0f |\n",
				r.implementation, r.pkgName, r.features, r.author, r.nsPerElement, r.throughput)
		}
	}
	return nil
}

// workloadNames lists the distinct workloads of impls, in registry order.
func workloadNames(impls []Implementation) []string {
	var names []string
	for _, impl := range impls {
		if !slices.Contains(names, impl.workload()) {
			names = append(names, impl.workload())
		}
	}
	return names
}
