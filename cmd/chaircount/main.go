package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Ko-stant/floorplan-engine/internal/config"
	"github.com/Ko-stant/floorplan-engine/internal/floorplan"
	"github.com/Ko-stant/floorplan-engine/internal/logger"
	"github.com/Ko-stant/floorplan-engine/internal/report"
)

func main() {
	debug := flag.Bool("debug", false, "print intermediate walkable/region grids to stderr")
	labelerName := flag.String("labeler", "", "region labeler: bfs or graph (overrides FLOORPLAN_LABELER)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: chaircount [flags] <plan-file>\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Counts chairs per room in an ASCII floor plan.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "chaircount")
	if err != nil {
		fmt.Fprintf(os.Stderr, "chaircount: failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	labeler := cfg.Labeler
	if *labelerName != "" {
		labeler = *labelerName
	}

	analysis, err := floorplan.AnalyzeFile(flag.Arg(0), floorplan.Options{Labeler: labeler})
	if err != nil {
		// Nothing has been written to stdout at this point; downstream
		// tooling never sees a partial report.
		log.Error("analysis failed", zap.String("plan", flag.Arg(0)), zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}

	for _, warning := range analysis.Warnings {
		log.Warn(warning)
	}
	if *debug {
		fmt.Fprint(os.Stderr, floorplan.DebugDump(analysis))
	}

	fmt.Println(report.Render(analysis))
}
