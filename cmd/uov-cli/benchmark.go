package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/montanaflynn/stats"

	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/field"
	"github.com/BackendStack21/k-uov-go/sign"
	"github.com/BackendStack21/k-uov-go/utils"
)

// benchmarkResult holds raw samples in milliseconds.
type benchmarkResult struct {
	Params   kuov.Params
	KeyGen   []float64
	Sign     []float64
	Verify   []float64
	Attempts []int // vinegar draws per successful signature
	Failures int   // signatures that hit the attempt bound
}

// summary is the reduced view of one sample set.
type summary struct {
	Mean, Median, StdDev, P95, Min, Max float64
}

func handleBenchmark(args []string) {
	config, err := parseConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	iterations := 10
	if s := getArg(args, "--iterations", "-n"); s != "" {
		iterations, err = parsePositive(s, "iterations")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	result, err := runBenchmark(config.Params, iterations)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Benchmark error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("k-uov Benchmark Results\n")
	fmt.Printf("=======================\n")
	fmt.Printf("Parameters: o=%d v=%d p=%d\n", result.Params.O, result.Params.V, result.Params.P)
	fmt.Printf("Iterations: %d\n\n", iterations)
	printSummary("KeyGen", result.KeyGen)
	printSummary("Sign", result.Sign)
	printSummary("Verify", result.Verify)

	fmt.Println()
	fmt.Printf("Signing attempts: %s\n", formatHistogram(attemptHistogram(result.Attempts)))
	fmt.Printf("Signing failures: %d\n", result.Failures)

	if chartFile := getArg(args, "--chart", ""); chartFile != "" {
		f, err := os.Create(chartFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating chart file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := renderCharts(f, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			os.Exit(1)
		}
		if config.Verbose {
			fmt.Fprintf(os.Stderr, "Chart written to %s\n", chartFile)
		}
	}

	fmt.Println()
	fmt.Println("Benchmark complete!")
}

// runBenchmark generates one key pair per iteration and signs and verifies a
// fresh random target with it. Signing failures are counted, not fatal.
func runBenchmark(params kuov.Params, iterations int) (*benchmarkResult, error) {
	result := &benchmarkResult{Params: params}
	f := field.New(params.P)

	for i := 0; i < iterations; i++ {
		start := time.Now()
		kp, err := sign.GenerateKeyPairWithReader(params, utils.RandReader)
		result.KeyGen = append(result.KeyGen, millis(time.Since(start)))
		if err != nil {
			return nil, fmt.Errorf("keygen: %w", err)
		}

		target, err := f.RandomVector(utils.RandReader, params.O)
		if err != nil {
			return nil, err
		}

		start = time.Now()
		sig, attempts, err := sign.SignWithAttempts(&kp.PrivateKey, target, utils.RandReader)
		elapsed := time.Since(start)
		if errors.Is(err, sign.ErrSigningFailed) {
			result.Failures++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("sign: %w", err)
		}
		result.Sign = append(result.Sign, millis(elapsed))
		result.Attempts = append(result.Attempts, attempts)

		start = time.Now()
		valid := sign.Verify(&kp.PublicKey, sig, target)
		result.Verify = append(result.Verify, millis(time.Since(start)))
		if !valid {
			return nil, errors.New("verify failed")
		}
	}
	return result, nil
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func summarize(values []float64) (summary, error) {
	var s summary
	var err error
	data := stats.Float64Data(values)
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return s, err
	}
	if s.P95, err = stats.Percentile(data, 95); err != nil {
		return s, err
	}
	if s.Min, err = stats.Min(data); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, err
	}
	return s, nil
}

func printSummary(name string, values []float64) {
	s, err := summarize(values)
	if err != nil {
		fmt.Printf("  %-7s no samples\n", name+":")
		return
	}
	fmt.Printf("  %-7s mean %.3f ms, median %.3f ms, stddev %.3f ms, p95 %.3f ms, min %.3f ms, max %.3f ms\n",
		name+":", s.Mean, s.Median, s.StdDev, s.P95, s.Min, s.Max)
}

// attemptHistogram counts signatures by vinegar draws used; index 0 is one draw.
func attemptHistogram(attempts []int) []int {
	counts := make([]int, sign.MaxSignAttempts)
	for _, a := range attempts {
		if a >= 1 && a <= sign.MaxSignAttempts {
			counts[a-1]++
		}
	}
	return counts
}

func formatHistogram(counts []int) string {
	out := ""
	for i, c := range counts {
		if c == 0 {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%d:%d", i+1, c)
	}
	if out == "" {
		return "none"
	}
	return out
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newBarChart(title, subtitle string, labels []string, counts []int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1000px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("count", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return bar
}

// latencyHistogram buckets samples into equal-width bins between min and max.
func latencyHistogram(values []float64, bins int) ([]string, []int) {
	s, err := summarize(values)
	if err != nil || bins < 1 {
		return nil, nil
	}
	width := (s.Max - s.Min) / float64(bins)
	labels := make([]string, bins)
	counts := make([]int, bins)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.3f", s.Min+width*(float64(i)+0.5))
	}
	for _, v := range values {
		i := bins - 1
		if width > 0 {
			i = int((v - s.Min) / width)
			if i >= bins {
				i = bins - 1
			}
		}
		counts[i]++
	}
	return labels, counts
}

// renderCharts writes an HTML page with the attempt distribution and the
// signing latency histogram.
func renderCharts(w io.Writer, result *benchmarkResult) error {
	page := components.NewPage()

	labels := make([]string, sign.MaxSignAttempts)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	subtitle := fmt.Sprintf("o=%d v=%d p=%d, %d signed, %d failed",
		result.Params.O, result.Params.V, result.Params.P, len(result.Attempts), result.Failures)
	page.AddCharts(newBarChart("Vinegar draws per signature", subtitle, labels, attemptHistogram(result.Attempts)))

	if latLabels, latCounts := latencyHistogram(result.Sign, 20); latLabels != nil {
		s, _ := summarize(result.Sign)
		sub := fmt.Sprintf("mean=%.3f ms, median=%.3f ms, p95=%.3f ms", s.Mean, s.Median, s.P95)
		page.AddCharts(newBarChart("Signing latency (ms)", sub, latLabels, latCounts))
	}
	return page.Render(w)
}
