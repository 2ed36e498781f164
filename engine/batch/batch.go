// package batch provides parallel morph evaluation for large poses. It fans
// the vertex range out across a bounded worker pool, with each worker writing
// a disjoint sub-range of the caller's destination buffer, then barriers on a
// WaitGroup before returning. Small poses fall back to the serial core, where
// the fan-out overhead exceeds the win.
package batch

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/morph-go/common"
	"github.com/Carmen-Shannon/morph-go/engine/morpher"
	"github.com/Carmen-Shannon/morph-go/engine/pose"
)

// DefaultChunkSize is the vertex count each worker task covers. Below two
// chunks the batch morpher runs serially.
const DefaultChunkSize = 4096

// batchMorpher is the implementation of the BatchMorpher interface.
type batchMorpher struct {
	// pool manages a bounded set of reusable goroutines. Workers persist
	// across calls (up to the idle timeout), avoiding per-call goroutine
	// spawn/teardown overhead.
	pool      worker.DynamicWorkerPool
	workers   int
	chunkSize int
}

// BatchMorpher evaluates morphs in parallel across a worker pool. The
// interpolation contract is identical to morpher.InterpolateInto: same
// clamping, same error type, same result. Safe for concurrent use as long as
// concurrent calls target disjoint destination buffers.
type BatchMorpher interface {
	// MorphInto computes the component-wise linear interpolation of source
	// and target at clamped progress t into dst, splitting the vertex range
	// across the worker pool. Blocks until every chunk is written.
	//
	// Parameters:
	//   - dst: the destination buffer, same length as the input poses
	//   - source: the starting pose
	//   - target: the ending pose (must have the same length as source)
	//   - t: the normalized morph progress, clamped to [0, 1]
	//
	// Returns:
	//   - error: a *morpher.ShapeMismatchError if any lengths differ
	MorphInto(dst, source, target pose.Pose, t float32) error

	// Workers returns the configured worker count.
	//
	// Returns:
	//   - int: the number of pool workers
	Workers() int
}

var _ BatchMorpher = &batchMorpher{}

// NewBatchMorpher creates a BatchMorpher backed by a dynamic worker pool.
// Worker count defaults to NumCPU-1 (minimum 1) and chunk size to
// DefaultChunkSize; both can be overridden with options.
//
// Parameters:
//   - options: variadic list of BatchMorpherBuilderOption functions to configure the morpher
//
// Returns:
//   - BatchMorpher: the newly created batch morpher
func NewBatchMorpher(options ...BatchMorpherBuilderOption) BatchMorpher {
	b := &batchMorpher{
		workers:   max(runtime.NumCPU()-1, 1),
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range options {
		opt(b)
	}

	// Queue size of 256 accommodates typical chunk counts with headroom.
	b.pool = worker.NewDynamicWorkerPool(b.workers, 256, 1*time.Second)
	return b
}

func (b *batchMorpher) Workers() int {
	return b.workers
}

func (b *batchMorpher) MorphInto(dst, source, target pose.Pose, t float32) error {
	if len(source) != len(target) {
		return &morpher.ShapeMismatchError{SourceLen: len(source), TargetLen: len(target)}
	}
	if len(dst) != len(source) {
		return &morpher.ShapeMismatchError{SourceLen: len(source), TargetLen: len(dst)}
	}

	// Serial fast path: below two chunks the pool barrier costs more than
	// the interpolation itself.
	if len(source) < 2*b.chunkSize || b.workers < 2 {
		return morpher.InterpolateInto(dst, source, target, t)
	}

	// Clamp once so every worker uses the same progress value.
	clamped := common.Clamp01(t)

	// Fan out contiguous chunks; each task writes a disjoint dst sub-range.
	// A per-call WaitGroup provides the completion barrier since pool.Wait()
	// blocks until workers idle-exit, which is unsuitable per call.
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(source); start += b.chunkSize {
		end := min(start+b.chunkSize, len(source))

		wg.Add(1)
		s, e := start, end // capture for closure
		id := taskID
		taskID++
		b.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				// Slices share backing arrays with the caller's buffers;
				// re-slicing keeps indices aligned without copying.
				if err := morpher.InterpolateInto(dst[s:e], source[s:e], target[s:e], clamped); err != nil {
					return nil, err
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return nil
}
