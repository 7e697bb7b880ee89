// Command ternbench runs the dense-vs-packed ternary encoding comparison and
// prints a report table.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hyperfold/ternbench"
	"github.com/hyperfold/ternbench/format"
)

func main() {
	rows := flag.Int("rows", 11008, "Matrix row count")
	cols := flag.Int("cols", 4096, "Matrix column count")
	sparsity := flag.Float64("sparsity", 0.5, "Fraction of zero weights in [0, 1]")
	iterations := flag.Int("iterations", 100, "Timed kernel invocations per encoding")
	warmup := flag.Int("warmup", 10, "Untimed warmup invocations per encoding")
	seed := flag.Int64("seed", 42, "Generator seed")
	counters := flag.Bool("counters", true, "Sample hardware performance counters when available")
	probe := flag.String("probe", "none", "Footprint probe codec: none, zstd, s2, lz4")

	flag.Parse()

	probeType, err := parseProbe(*probe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := ternbench.Config{
		Rows:       *rows,
		Cols:       *cols,
		Sparsity:   *sparsity,
		Seed:       *seed,
		Iterations: *iterations,
		Warmup:     *warmup,
		Counters:   *counters,
		Probe:      probeType,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printConfig(cfg)

	comparison, err := ternbench.Run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printReport(cfg, comparison)
}

func parseProbe(name string) (format.CompressionType, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown probe codec %q", name)
	}
}

const rule = "========================================================================"

func printConfig(cfg ternbench.Config) {
	fmt.Println(rule)
	fmt.Println("2-Bit Ternary Encoding Memory Bandwidth Benchmark")
	fmt.Println(rule)
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Printf("  Matrix Size:   %d x %d\n", cfg.Rows, cfg.Cols)
	fmt.Printf("  Total Weights: %d\n", cfg.Rows*cfg.Cols)
	fmt.Printf("  Sparsity:      %.0f%%\n", cfg.Sparsity*100)
	fmt.Printf("  Iterations:    %d (+%d warmup)\n", cfg.Iterations, cfg.Warmup)
	fmt.Printf("  Seed:          %d\n", cfg.Seed)
	if cfg.Probe != format.CompressionNone {
		fmt.Printf("  Probe:         %s\n", cfg.Probe)
	}
	fmt.Println()
}

func printReport(cfg ternbench.Config, c ternbench.Comparison) {
	dense, packed := c.Dense, c.Packed

	fmt.Println(rule)
	fmt.Println("RESULTS")
	fmt.Println(rule)
	fmt.Println()
	fmt.Printf("Matrix fingerprint: %016x\n\n", c.MatrixFingerprint)

	fmt.Printf("%-25s | %15s | %15s | %11s\n", "Metric", "Dense (8-bit)", "Packed (2-bit)", "Improvement")
	fmt.Println(strings.Repeat("-", 75))

	fmt.Printf("%-25s | %12.2f ms | %12.2f ms | %10.2fx\n",
		"Total Time",
		float64(dense.Elapsed.Microseconds())/1000.0,
		float64(packed.Elapsed.Microseconds())/1000.0,
		c.Speedup())

	fmt.Printf("%-25s | %12d KB | %12d KB | %10.2fx\n",
		"Memory Footprint",
		dense.MemoryBytes/1024, packed.MemoryBytes/1024,
		c.MemoryRatio())

	if cfg.Probe != format.CompressionNone {
		fmt.Printf("%-25s | %12d KB | %12d KB |\n",
			fmt.Sprintf("Compressed (%s)", cfg.Probe),
			dense.CompressedBytes/1024, packed.CompressedBytes/1024)
	}

	if dense.HasCounters && packed.HasCounters {
		printCounterRow("Cache References", dense.Counters.CacheRefs, packed.Counters.CacheRefs)
		printCounterRow("Cache Misses", dense.Counters.CacheMisses, packed.Counters.CacheMisses)
		fmt.Printf("%-25s | %13.2f%% | %13.2f%% | %10.2fx\n",
			"Cache Miss Rate",
			dense.CacheMissRate, packed.CacheMissRate,
			ratio(dense.CacheMissRate, packed.CacheMissRate))
		printCounterRow("L1D Read Misses", dense.Counters.L1DReadMisses, packed.Counters.L1DReadMisses)
		printCounterRow("LLC Read Misses", dense.Counters.LLCReadMisses, packed.Counters.LLCReadMisses)
		fmt.Printf("%-25s | %15.2f | %15.2f | %10.2fx\n",
			"IPC", dense.IPC, packed.IPC, ratio(packed.IPC, dense.IPC))
	} else {
		fmt.Println()
		fmt.Println("Hardware counters unavailable; reporting time and footprint only.")
	}

	fmt.Println()
	fmt.Println(rule)
	fmt.Printf("Memory reduction: %.1f%%\n",
		100.0*(1.0-float64(packed.MemoryBytes)/float64(dense.MemoryBytes)))
	fmt.Printf("Time improvement: %.2fx\n", c.Speedup())
	if dense.HasCounters && packed.HasCounters {
		fmt.Printf("Cache miss improvement: %.2fx\n",
			ratio(float64(dense.Counters.CacheMisses), float64(packed.Counters.CacheMisses)))
	}
}

func printCounterRow(name string, dense, packed uint64) {
	fmt.Printf("%-25s | %15d | %15d | %10.2fx\n",
		name, dense, packed, ratio(float64(dense), float64(packed)))
}

func ratio(a, b float64) float64 {
	if b == 0 {
		return 0.0
	}

	return a / b
}
