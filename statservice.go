// Descriptive statistics service

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/mmcloughlin/profile"
	"github.com/pelletier/go-toml/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"example.com/sample-stats/benchmark"

	"example.com/sample-stats/core/report"
	"example.com/sample-stats/core/samples"
)

type svcConfig struct {
	SampleFile       string `toml:"sample_file,omitempty"`
	PairedSampleFile string `toml:"paired_sample_file,omitempty"`
	MaxSamples       int    `toml:"max_samples,omitempty"`
	MetricsAddr      string `toml:"metrics_address,omitempty"`
}

var (
	log *zap.Logger
)

func initLogger(verbose bool) {
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	c.EncoderConfig.EncodeCaller = func(
		caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		p := caller.TrimmedPath()
		if len(p) > 30 {
			p = "..." + p[len(p)-27:]
		}
		enc.AppendString(fmt.Sprintf("%30s", p))
	}
	if !verbose {
		c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	var err error
	log, err = c.Build()
	if err != nil {
		panic(err)
	}
}

func runMonitor(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(addr, nil)
	log.Fatal("failed to serve metrics", zap.Error(err))
}

func loadConfig(configFile string) svcConfig {
	raw, err := os.ReadFile(configFile)
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}
	var cfg svcConfig
	err = toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		log.Fatal("failed to decode configuration", zap.Error(err))
	}
	return cfg
}

func runReport(configFile string) {
	ctx := context.Background()

	cfg := loadConfig(configFile)
	if cfg.SampleFile == "" && cfg.PairedSampleFile == "" {
		log.Fatal("no sample_file or paired_sample_file specified in config")
	}

	var exporter *report.Exporter
	if cfg.MetricsAddr != "" {
		exporter = report.NewExporter()
	}

	if cfg.SampleFile != "" {
		xs, err := samples.Load(cfg.SampleFile)
		if err != nil {
			log.Fatal("failed to load samples", zap.Error(err))
		}
		xs, err = samples.Downsample(ctx, xs, cfg.MaxSamples)
		if err != nil {
			log.Fatal("failed to downsample", zap.Error(err))
		}
		s, err := report.Summarize(xs)
		if err != nil {
			log.Fatal("failed to summarize samples",
				zap.String("file", cfg.SampleFile), zap.Error(err))
		}
		s.Log(log, cfg.SampleFile)
		if exporter != nil {
			exporter.Publish(s)
		}
	}

	if cfg.PairedSampleFile != "" {
		ps, err := samples.LoadPairs(cfg.PairedSampleFile)
		if err != nil {
			log.Fatal("failed to load paired samples", zap.Error(err))
		}
		s, err := report.SummarizePairs(ps)
		if err != nil {
			log.Fatal("failed to summarize paired samples",
				zap.String("file", cfg.PairedSampleFile), zap.Error(err))
		}
		s.Log(log)
		if exporter != nil {
			exporter.PublishPairs(s)
		}
	}

	if cfg.MetricsAddr != "" {
		runMonitor(cfg.MetricsAddr)
	}
}

func runBenchmark(numRounds, size int, profiling bool) {
	if profiling {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	benchmark.RunMedianBenchmark(log, numRounds, size)
}

func exitWithUsage() {
	fmt.Println("<usage>")
	os.Exit(1)
}

func main() {
	var (
		verbose    bool
		configFile string
		numRounds  int
		size       int
		profiling  bool
	)

	reportFlags := flag.NewFlagSet("report", flag.ExitOnError)
	benchmarkFlags := flag.NewFlagSet("benchmark", flag.ExitOnError)

	reportFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	reportFlags.StringVar(&configFile, "config", "", "Config file")

	benchmarkFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	benchmarkFlags.IntVar(&numRounds, "rounds", 10_000, "Number of rounds")
	benchmarkFlags.IntVar(&size, "size", 4096, "Samples per round")
	benchmarkFlags.BoolVar(&profiling, "profile", false, "Write a CPU profile")

	if len(os.Args) < 2 {
		exitWithUsage()
	}

	switch os.Args[1] {
	case reportFlags.Name():
		err := reportFlags.Parse(os.Args[2:])
		if err != nil || reportFlags.NArg() != 0 {
			exitWithUsage()
		}
		if configFile == "" {
			exitWithUsage()
		}
		initLogger(verbose)
		runReport(configFile)
	case benchmarkFlags.Name():
		err := benchmarkFlags.Parse(os.Args[2:])
		if err != nil || benchmarkFlags.NArg() != 0 {
			exitWithUsage()
		}
		if numRounds <= 0 || size <= 0 {
			exitWithUsage()
		}
		initLogger(verbose)
		runBenchmark(numRounds, size, profiling)
	default:
		exitWithUsage()
	}
}
