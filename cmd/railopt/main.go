// Command railopt runs one precedence-optimization pass over a scenario
// file and writes the OptimizationResult JSON to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/railops/railway-traffic-optimizer/internal/logging"
	"github.com/railops/railway-traffic-optimizer/internal/optimizer"
	"github.com/railops/railway-traffic-optimizer/internal/scenario"
	"github.com/railops/railway-traffic-optimizer/pkg/config"
)

func main() {
	var (
		scenarioPath string
		configPath   string
	)
	pflag.StringVar(&scenarioPath, "scenario", "", "path to the scenario YAML file (required)")
	pflag.StringVar(&configPath, "config", "", "path to an optional engine config file")
	pflag.Parse()

	if scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "usage: railopt --scenario <file> [--config <file>]")
		os.Exit(2)
	}

	if err := run(scenarioPath, configPath); err != nil {
		fmt.Fprintf(os.Stderr, "railopt: %v\n", err)
		os.Exit(1)
	}
}

func run(scenarioPath, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logging.NewLogger(cfg.LogVerbosity)
	logging.SetLogger(log)

	state, err := scenario.LoadFile(scenarioPath)
	if err != nil {
		return err
	}

	eng, err := optimizer.NewEngine(cfg, log)
	if err != nil {
		return err
	}

	result := eng.Optimize(context.Background(), state)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
