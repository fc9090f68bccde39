// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/matrixorigin/seqvec/pkg/common/moerr"
	"github.com/matrixorigin/seqvec/pkg/config"
	"github.com/matrixorigin/seqvec/pkg/logutil"
)

var (
	configFile = flag.String("cfg", "./vector-bench.toml", "toml configuration used to run vector-bench")
)

func main() {
	flag.Parse()
	os.Exit(run(context.Background(), *configFile))
}

// run returns the process exit code. The logger is synced before it returns.
func run(ctx context.Context, path string) int {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, err := config.LoadFile(ctx, path)
	if err != nil {
		panic(fmt.Sprintf("failed to parse config from %s, error: %s", path, err.Error()))
	}
	logutil.SetupLogger(&cfg.Log)
	defer func() {
		_ = logutil.Sync()
	}()

	if err := runAll(ctx, cfg); err != nil {
		logutil.Error("vector-bench failed",
			zap.Uint16("code", moerr.DowncastError(err).ErrorCode()),
			zap.Error(err))
		return 1
	}
	return 0
}

func runAll(ctx context.Context, cfg *config.BenchConfig) error {
	r, err := newRunner(cfg.Workers, cfg.GrowthPolicy())
	if err != nil {
		return err
	}
	defer r.release()

	logutil.Info("vector-bench started",
		zap.Int("workers", cfg.Workers),
		zap.String("policy", cfg.GrowthPolicy().Name()),
		zap.Int("workloads", len(cfg.Workloads)))
	for _, w := range cfg.Workloads {
		res, err := r.run(ctx, w)
		if err != nil {
			return err
		}
		logutil.Info("workload done", res.fields()...)
	}
	return nil
}
