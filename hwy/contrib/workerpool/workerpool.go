// Copyright 2025 go-vecn Authors
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

// Package workerpool runs index ranges on a fixed set of goroutines that are
// started once and reused, so batch vector operations do not pay a goroutine
// spawn per call.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	vec.ApplyBatch(pool, hwy.OpAdd, dst, a, b)
//
// A nil *Pool is valid and runs everything on the calling goroutine.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-vecn/hwy"
)

// Pool is a persistent set of workers. It is safe for concurrent use,
// including a Close that races with Range or Each.
type Pool struct {
	workers int
	tasks   chan task

	// mu is read-held while a call queues tasks and write-held by Close, so
	// the channel is never closed under a pending send.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	run  func()
	join *joiner
}

// joiner waits for the tasks of one call and keeps the first panic raised by
// any of them.
type joiner struct {
	wg    sync.WaitGroup
	once  sync.Once
	fault any
}

func (j *joiner) do(run func()) {
	defer j.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			j.once.Do(func() { j.fault = r })
		}
	}()
	run()
}

// wait blocks until every task is done and re-raises a worker panic on the
// caller's goroutine.
func (j *joiner) wait() {
	j.wg.Wait()
	if j.fault != nil {
		panic(j.fault)
	}
}

// New starts a pool. workers <= 0 means GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		tasks:   make(chan task, workers*2),
	}
	for range workers {
		go p.loop()
	}
	hwy.Logger().Debug("hwy: worker pool started", "workers", workers)
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.join.do(t.run)
	}
}

// Workers returns the number of worker goroutines, 1 for a nil pool.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// Close stops the workers after queued tasks finish. Later calls run
// sequentially. Close is idempotent.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
}

// acquire read-locks an open pool for queuing. It returns false, holding no
// lock, when the work should run on the caller instead.
func (p *Pool) acquire() bool {
	if p == nil || p.workers == 1 {
		return false
	}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	return true
}

// Range splits [0, n) into at most Workers() contiguous ranges and calls fn
// once per range. It returns when every call has returned; a panic in fn is
// re-raised here.
func (p *Pool) Range(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if n == 1 || !p.acquire() {
		fn(0, n)
		return
	}

	parts := min(p.workers, n)
	size := (n + parts - 1) / parts
	j := &joiner{}
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		j.wg.Add(1)
		p.tasks <- task{run: func() { fn(lo, hi) }, join: j}
	}
	p.mu.RUnlock()
	j.wait()
}

// Each hands out [0, n) in blocks of grain indices to whichever worker is
// free, which balances uneven per-index cost. grain <= 0 means 1.
func (p *Pool) Each(n, grain int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	grain = max(grain, 1)
	blocks := (n + grain - 1) / grain
	if blocks == 1 || !p.acquire() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	j := &joiner{}
	for range min(p.workers, blocks) {
		j.wg.Add(1)
		p.tasks <- task{
			run: func() {
				for {
					lo := int(next.Add(int64(grain))) - grain
					if lo >= n {
						return
					}
					fn(lo, min(lo+grain, n))
				}
			},
			join: j,
		}
	}
	p.mu.RUnlock()
	j.wait()
}
