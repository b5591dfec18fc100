package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/tdq45gj/mlrose-gj/internal/algorithm"
	"github.com/tdq45gj/mlrose-gj/internal/problem"
	"github.com/tdq45gj/mlrose-gj/internal/runner"
	"github.com/tdq45gj/mlrose-gj/internal/stats"
	"github.com/tdq45gj/mlrose-gj/pkg/config"
	"github.com/tdq45gj/mlrose-gj/pkg/logger"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// A missing .env file is fine, environment variables still apply.
	_ = godotenv.Load()

	var configPath string
	var outputDir string
	var logLevel string

	flag.StringVar(&configPath, "config", envOr("MLRUN_CONFIG", "experiment.yaml"), "experiment config file")
	flag.StringVar(&outputDir, "output-dir", envOr("MLRUN_OUTPUT_DIR", ""), "directory for CSV result tables (empty disables output)")
	flag.StringVar(&logLevel, "log-level", envOr("MLRUN_LOG_LEVEL", ""), "log level (debug, info, warn, error)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configPath, outputDir, logLevel); err != nil {
		logger.Error("experiment failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, outputDir, logLevel string) error {
	exp, err := config.LoadExperiment(configPath)
	if err != nil {
		return fmt.Errorf("failed to load experiment config: %w", err)
	}

	if logLevel == "" {
		logLevel = exp.GetLogLevel()
	}
	logger.SetDefault(logger.NewText(logLevel, os.Stdout))

	if outputDir == "" {
		outputDir = exp.OutputDir
	}

	prob, err := problem.FromSpec(&exp.Problem)
	if err != nil {
		return fmt.Errorf("failed to build problem: %w", err)
	}

	if exp.RHC == nil {
		return fmt.Errorf("experiment %s has no rhc section", exp.Name)
	}

	sweep, err := runner.NewRHCRunner(prob, exp.Name, exp.Seed, exp.IterationList,
		exp.RHC.RestartList, exp.GetMaxAttempts(), exp.GetGenerateCurves())
	if err != nil {
		return fmt.Errorf("failed to build runner: %w", err)
	}
	if outputDir != "" {
		sweep.WithOutputDir(outputDir)
	}
	if exp.MaxParallel > 1 {
		sweep.WithMaxParallel(exp.MaxParallel)
	}

	logger.Info("starting restart sweep",
		"experiment", exp.Name,
		"problem", prob.Name(),
		"restart_values", len(exp.RHC.RestartList),
		"seed", exp.Seed)

	runStats, runCurves, err := sweep.RunContext(ctx)
	if err != nil {
		return err
	}
	if runStats == nil {
		logger.Warn("sweep produced no results", "experiment", exp.Name)
		return nil
	}

	printSummary(exp.Name, prob, runStats, runCurves)
	return nil
}

// printSummary prints the best fitness per restart value to stdout.
func printSummary(experiment string, prob problem.Problem, runStats *runner.RunStats, runCurves *runner.RunCurves) {
	heading := color.New(color.FgCyan, color.Bold)
	good := color.New(color.FgGreen)

	heading.Printf("\nExperiment %s (%s)\n", experiment, prob.Name())

	obs := runStats.FitnessByParam(algorithm.ParamRestarts)
	grouped := make([]stats.GroupedValue, 0, len(obs))
	for _, o := range obs {
		grouped = append(grouped, stats.GroupedValue{Key: o.Param, Value: o.Fitness})
	}

	best := stats.BestPerGroup(grouped, prob.Maximize())
	keys := make([]int, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, restarts := range keys {
		good.Printf("  restarts=%-4d best fitness %.4f\n", restarts, best[restarts])
	}
	if runCurves != nil && len(runCurves.Rows) > 0 {
		fmt.Printf("  %d curve points recorded\n", len(runCurves.Rows))
	}
	fmt.Printf("  %d stats rows\n\n", len(runStats.Rows))
}
