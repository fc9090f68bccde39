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
	"errors"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/matrixorigin/seqvec/pkg/common/moerr"
	"github.com/matrixorigin/seqvec/pkg/config"
	"github.com/matrixorigin/seqvec/pkg/container/vector"
	"github.com/matrixorigin/seqvec/pkg/logutil"
)

// checkEvery is how many operations a task runs between context checks.
const checkEvery = 256

type result struct {
	name      string
	kind      string
	tasks     int
	ops       int
	reallocs  int64
	finalSize int
	finalCap  int
	elapsed   time.Duration
}

func (r result) fields() []zap.Field {
	return []zap.Field{
		zap.String("workload", r.name),
		zap.String("kind", r.kind),
		zap.Int("tasks", r.tasks),
		zap.Int("ops", r.ops),
		zap.Int64("reallocs", r.reallocs),
		zap.Int("size", r.finalSize),
		zap.Int("capacity", r.finalCap),
		zap.Duration("elapsed", r.elapsed),
	}
}

type runner struct {
	pool   *ants.Pool
	policy vector.GrowthPolicy
}

func newRunner(workers int, policy vector.GrowthPolicy) (*runner, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	return &runner{pool: pool, policy: policy}, nil
}

func (r *runner) release() {
	r.pool.Release()
}

// run executes w.Tasks tasks on the pool and waits for all of them. Every
// task owns its vector; the shared state is the realloc counter and the
// first error.
func (r *runner) run(ctx context.Context, w config.Workload) (result, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		reallocs atomic.Int64
		sizes    = make([]int, w.Tasks)
		caps     = make([]int, w.Tasks)
	)
	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}
	ob := vector.ObserverFunc(func(oldCap, newCap int) {
		reallocs.Inc()
	})

	start := time.Now()
	for i := 0; i < w.Tasks; i++ {
		i := i
		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if e := recover(); e != nil {
					setErr(moerr.ConvertPanicError(ctx, e))
				}
			}()
			v := vector.New[int](0, vector.WithGrowthPolicy(r.policy), vector.WithObserver(ob))
			if err := execute(ctx, v, w.Kind, w.Ops); err != nil {
				setErr(err)
				return
			}
			sizes[i], caps[i] = v.Size(), v.Capacity()
		})
		if err != nil {
			wg.Done()
			if errors.Is(err, ants.ErrPoolClosed) {
				err = moerr.NewInvalidState(ctx, "worker pool released before workload %s", w.Name)
			}
			setErr(err)
			break
		}
	}
	wg.Wait()

	res := result{
		name:     w.Name,
		kind:     w.Kind,
		tasks:    w.Tasks,
		ops:      w.Ops,
		reallocs: reallocs.Load(),
		elapsed:  time.Since(start),
	}
	for i := range sizes {
		res.finalSize += sizes[i]
		res.finalCap += caps[i]
	}
	if firstErr != nil {
		logutil.Error("workload failed", zap.String("workload", w.Name), zap.Error(firstErr))
		return res, firstErr
	}
	return res, nil
}

func execute(ctx context.Context, v *vector.Vector[int], kind string, ops int) error {
	switch kind {
	case config.KindPushBack:
		for i := 0; i < ops; i++ {
			if err := checkCtx(ctx, i); err != nil {
				return err
			}
			v.PushBack(i)
		}
	case config.KindPushFront:
		for i := 0; i < ops; i++ {
			if err := checkCtx(ctx, i); err != nil {
				return err
			}
			v.PushFront(i)
		}
	case config.KindInsertMiddle:
		for i := 0; i < ops; i++ {
			if err := checkCtx(ctx, i); err != nil {
				return err
			}
			if _, err := v.Insert(v.Begin().Add(v.Size()/2), i); err != nil {
				return err
			}
		}
	case config.KindAssign:
		src := make([]int, 0, 64)
		for i := 0; i < ops; i++ {
			if err := checkCtx(ctx, i); err != nil {
				return err
			}
			src = append(src[:0], make([]int, i%64+1)...)
			v.Assign(src...)
		}
	case config.KindEraseFront:
		v.Reserve(ops)
		for i := 0; i < ops; i++ {
			v.PushBack(i)
		}
		for i := 0; !v.Empty(); i++ {
			if err := checkCtx(ctx, i); err != nil {
				return err
			}
			if _, err := v.EraseAt(v.Begin()); err != nil {
				return err
			}
		}
	default:
		return moerr.NewNotSupported(ctx, "workload kind %s", kind)
	}
	return nil
}

func checkCtx(ctx context.Context, i int) error {
	if i%checkEvery != 0 {
		return nil
	}
	return ctx.Err()
}
