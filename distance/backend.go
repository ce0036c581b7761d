package distance

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/hupe1980/simdex/internal/pool"
	"github.com/hupe1980/simdex/internal/simd"
)

// parallelThreshold is the minimum batch size worth fanning out.
// Below this the submit/wait overhead exceeds the popcount work.
const parallelThreshold = 256

// Compile-time checks to ensure both backends satisfy the contract.
var _ backend = (*acceleratedBackend)(nil)
var _ backend = portableBackend{}

// acceleratedBackend uses the wide popcount kernels and a worker pool
// for batch fan-out. Thread-count changes take effect for subsequent
// batch calls only: the pool is rebuilt lazily on the next batch.
type acceleratedBackend struct {
	mu      sync.Mutex
	workers *pool.WorkerPool
	threads int
}

func newAcceleratedBackend() *acceleratedBackend {
	return &acceleratedBackend{threads: runtime.GOMAXPROCS(0)}
}

func (b *acceleratedBackend) name() string {
	return fmt.Sprintf("accelerated (%s)", simd.ActiveISA())
}

func (b *acceleratedBackend) hamming(a, c []byte) int {
	return simd.Hamming(a, c)
}

func (b *acceleratedBackend) threadCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.threads
}

func (b *acceleratedBackend) setThreadCount(n int) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if n == b.threads {
		return
	}
	b.threads = n

	// Drop the old pool; the next batch call rebuilds it at the new size.
	if b.workers != nil {
		b.workers.Close()
		b.workers = nil
	}
}

// acquirePool returns the current pool, creating it on first use.
func (b *acceleratedBackend) acquirePool() (*pool.WorkerPool, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.workers == nil {
		b.workers = pool.New(b.threads)
	}
	return b.workers, b.threads
}

func (b *acceleratedBackend) batchHamming(target []byte, sigs [][]byte, out []int) {
	n := len(sigs)
	if n == 0 {
		return
	}

	if n < parallelThreshold || b.threadCount() == 1 {
		simd.HammingBatch(target, sigs, out)
		return
	}

	workers, threads := b.acquirePool()

	chunk := (n + threads - 1) / threads

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)

		wg.Add(1)
		task := func() {
			defer wg.Done()
			simd.HammingBatch(target, sigs[lo:hi], out[lo:hi])
		}
		if err := workers.Submit(context.Background(), task); err != nil {
			// Pool was torn down mid-call; compute inline instead.
			task()
		}
	}
	wg.Wait()
}

// portableBackend runs the byte-at-a-time kernels on the calling
// goroutine. It is always single-threaded.
type portableBackend struct{}

func (portableBackend) name() string { return "portable" }

func (portableBackend) hamming(a, b []byte) int {
	return simd.Hamming(a, b)
}

func (portableBackend) batchHamming(target []byte, sigs [][]byte, out []int) {
	simd.HammingBatch(target, sigs, out)
}

func (portableBackend) threadCount() int { return 1 }

func (portableBackend) setThreadCount(int) {}
