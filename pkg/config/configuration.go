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

package config

import (
	"context"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/matrixorigin/seqvec/pkg/common/moerr"
	"github.com/matrixorigin/seqvec/pkg/container/vector"
	"github.com/matrixorigin/seqvec/pkg/logutil"
)

const (
	KindPushBack     = "push_back"
	KindPushFront    = "push_front"
	KindInsertMiddle = "insert_middle"
	KindAssign       = "assign"
	KindEraseFront   = "erase_front"
)

var (
	// defaultWorkers is the size of the worker pool when unset.
	defaultWorkers = runtime.NumCPU()

	// defaultOps is the number of operations per task when unset.
	defaultOps = 1024

	// defaultTasks is the number of independent vectors per workload when unset.
	defaultTasks = 1

	kinds = map[string]struct{}{
		KindPushBack:     {},
		KindPushFront:    {},
		KindInsertMiddle: {},
		KindAssign:       {},
		KindEraseFront:   {},
	}
)

// Workload describes one benchmark run against a fresh vector per task.
type Workload struct {
	//name shown in the log summary, defaults to Kind
	Name string `toml:"name"`

	//one of push_back, push_front, insert_middle, assign, erase_front
	Kind string `toml:"kind"`

	//operations executed by each task. default: 1024
	Ops int `toml:"ops"`

	//number of tasks, each owning its own vector. default: 1
	Tasks int `toml:"tasks"`
}

// BenchConfig is the toml configuration of vector-bench.
type BenchConfig struct {
	Log logutil.LogConfig `toml:"log"`

	//worker pool size. default: number of CPUs
	Workers int `toml:"workers"`

	//growth policy applied to every vector: legacy or doubling. default: legacy
	Policy string `toml:"policy"`

	Workloads []Workload `toml:"workload"`
}

// SetDefaultValues fills every unset field.
func (bc *BenchConfig) SetDefaultValues() {
	if bc.Log.Level == "" {
		bc.Log.Level = "info"
	}
	if bc.Log.Format == "" {
		bc.Log.Format = "console"
	}
	if bc.Workers == 0 {
		bc.Workers = defaultWorkers
	}
	if bc.Policy == "" {
		bc.Policy = vector.LegacyGrowth{}.Name()
	}
	for i := range bc.Workloads {
		w := &bc.Workloads[i]
		if w.Name == "" {
			w.Name = w.Kind
		}
		if w.Ops == 0 {
			w.Ops = defaultOps
		}
		if w.Tasks == 0 {
			w.Tasks = defaultTasks
		}
	}
}

// Validate checks the configuration after SetDefaultValues.
func (bc *BenchConfig) Validate(ctx context.Context) error {
	if bc.Workers < 0 {
		return moerr.NewBadConfig(ctx, "workers must be positive, got %d", bc.Workers)
	}
	if _, ok := vector.PolicyByName(bc.Policy); !ok {
		return moerr.NewBadConfig(ctx, "unknown growth policy %q", bc.Policy)
	}
	if len(bc.Workloads) == 0 {
		return moerr.NewBadConfig(ctx, "no workload configured")
	}
	for _, w := range bc.Workloads {
		if _, ok := kinds[w.Kind]; !ok {
			return moerr.NewBadConfig(ctx, "workload %s: unknown kind %q", w.Name, w.Kind)
		}
		if w.Ops < 0 || w.Tasks < 0 {
			return moerr.NewBadConfig(ctx, "workload %s: ops and tasks must be positive", w.Name)
		}
	}
	return nil
}

// GrowthPolicy resolves the configured policy name.
func (bc *BenchConfig) GrowthPolicy() vector.GrowthPolicy {
	p, ok := vector.PolicyByName(bc.Policy)
	if !ok {
		return vector.LegacyGrowth{}
	}
	return p
}

// LoadFile decodes the toml file at path, fills defaults and validates it.
func LoadFile(ctx context.Context, path string) (*BenchConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, moerr.NewFileNotFound(ctx, path)
		}
		return nil, moerr.ConvertGoError(ctx, err)
	}
	bc := &BenchConfig{}
	if _, err := toml.DecodeFile(path, bc); err != nil {
		return nil, moerr.NewBadConfig(ctx, "%s", err.Error())
	}
	bc.SetDefaultValues()
	if err := bc.Validate(ctx); err != nil {
		return nil, err
	}
	return bc, nil
}
