// Copyright 2026 go-mergesort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command msort-bench benchmarks and verifies the msort library.
//
// Usage:
//
//	msort-bench bench --sizes 1000,100000 --steps 10
//	msort-bench verify --max-items 65536
//	msort-bench --config suite.toml --seed 42 bench
//
// The bench subcommand sweeps inputs from fully sorted to fully random
// and prints per-algorithm timings as TSV. The verify subcommand sorts
// a grid of adversarial input shapes and checks order, stability, and
// permutation preservation for every cell.
package main

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seed    int64
	logFile string
	cfgPath string
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "msort-bench",
	Short:         "Benchmark and verification harness for the msort library",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(logFile, verbose)
		logger.Info("environment",
			zap.String("go", runtime.Version()),
			zap.String("os", runtime.GOOS),
			zap.String("arch", runtime.GOARCH),
			zap.Int("gomaxprocs", runtime.GOMAXPROCS(0)),
			zap.Strings("cpu_features", cpuFeatures()),
			zap.Int64("seed", seed),
		)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1, "seed for input generation")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also log to this file, with rotation")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "TOML suite file; flags override its values")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(benchCmd, verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
