package main

import (
	"fmt"
	"sort"
	"time"
)

// sizeStats holds "5%-avg-min", median, and "5%-avg-max" for one element count.
type sizeStats struct {
	x      float64 // category index plus per-implementation offset
	orig   float64 // element count
	min    float64 // "average of bottom 5%"
	median float64
	max    float64 // "average of top 5%"
}

// statsPoints implements XYer and YErrorer for sizeStats, so we can plot lines + error bars.
type statsPoints []sizeStats

func (s statsPoints) Len() int                { return len(s) }
func (s statsPoints) XY(i int) (x, y float64) { return s[i].x, s[i].median }
func (s statsPoints) YError(i int) (low, high float64) {
	low = s[i].median - s[i].min
	high = s[i].max - s[i].median
	return low, high
}

// workloadPoints maps implementation -> element count -> ns/element samples.
type workloadPoints map[string]map[float64][]float64

// collectPoints groups every usable benchmark in sessions by workload.
// Results with mismatches or no elements are skipped. Older results without
// ns_per_element get it recomputed from the elapsed time.
func collectPoints(sessions []FullReport) map[string]workloadPoints {
	byWorkload := make(map[string]workloadPoints)
	for _, session := range sessions {
		for _, b := range session.Benchmarks {
			if b.Elements == 0 || b.Mismatches != 0 {
				continue
			}
			ns := b.NsPerElement
			if ns == 0 {
				dur, err := time.ParseDuration(b.ActualElapsed)
				if err != nil {
					continue
				}
				ns = float64(dur.Nanoseconds()) / float64(b.Elements)
			}

			implMap, ok := byWorkload[b.Workload]
			if !ok {
				implMap = make(workloadPoints)
				byWorkload[b.Workload] = implMap
			}
			if _, ok := implMap[b.Implementation]; !ok {
				implMap[b.Implementation] = make(map[float64][]float64)
			}
			x := float64(b.NumElements)
			implMap[b.Implementation][x] = append(implMap[b.Implementation][x], ns)
		}
	}
	return byWorkload
}

// buildStats computes "average of bottom 5%", median, and "average of top 5%".
// The result is ordered by element count.
func buildStats(sizeMap map[float64][]float64) []sizeStats {
	var out []sizeStats
	for x, vals := range sizeMap {
		if len(vals) == 0 {
			continue
		}
		sort.Float64s(vals)
		out = append(out, sizeStats{
			x:      x,
			orig:   x,
			min:    averageOfRange(vals, 0.0, 0.05),
			median: median(vals),
			max:    averageOfRange(vals, 0.95, 1.0),
		})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].orig < out[b].orig })
	return out
}

// averageOfRange returns the average of sortedVals in [startFrac, endFrac] of its length.
// E.g. averageOfRange(vals, 0, 0.05) is the average of the bottom 5%.
func averageOfRange(sortedVals []float64, startFrac, endFrac float64) float64 {
	n := len(sortedVals)
	if n == 0 {
		return 0
	}
	startIndex := max(int(float64(n)*startFrac), 0)
	endIndex := min(int(float64(n)*endFrac), n)
	if startIndex >= endIndex {
		// fallback to median if 5% slice is too small
		return median(sortedVals)
	}
	sum := 0.0
	for i := startIndex; i < endIndex; i++ {
		sum += sortedVals[i]
	}
	return sum / float64(endIndex-startIndex)
}

func median(sorted []float64) float64 {
	n := len(sorted)
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return 0.5 * (sorted[mid-1] + sorted[mid])
}

// formatNs nicely formats a nanoseconds value in ns, µs, ms, or s.
func formatNs(ns float64) string {
	switch {
	case ns < 1:
		return fmt.Sprintf("%.2fns", ns)
	case ns < 1e3:
		return fmt.Sprintf("%.0fns", ns)
	case ns < 1e6:
		return fmt.Sprintf("%.1fµs", ns/1e3)
	case ns < 1e9:
		return fmt.Sprintf("%.1fms", ns/1e6)
	default:
		return fmt.Sprintf("%.2fs", ns/1e9)
	}
}

// formatCount renders an element count as 100, 10k, 1M.
func formatCount(n float64) string {
	switch {
	case n >= 1e6 && int64(n)%1_000_000 == 0:
		return fmt.Sprintf("%dM", int64(n)/1_000_000)
	case n >= 1e3 && int64(n)%1_000 == 0:
		return fmt.Sprintf("%dk", int64(n)/1_000)
	default:
		return fmt.Sprintf("%d", int64(n))
	}
}
