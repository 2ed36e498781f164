package batch

// BatchMorpherBuilderOption is a functional option for configuring a BatchMorpher.
// Use the With* functions to create options that are applied directly to the instance.
type BatchMorpherBuilderOption func(*batchMorpher)

// WithWorkers sets the worker pool size.
// Values <= 0 are ignored (the NumCPU-1 default is kept).
//
// Parameters:
//   - n: the number of pool workers
//
// Returns:
//   - BatchMorpherBuilderOption: option function to apply
func WithWorkers(n int) BatchMorpherBuilderOption {
	return func(b *batchMorpher) {
		if n > 0 {
			b.workers = n
		}
	}
}

// WithChunkSize sets the vertex count each worker task covers.
// Values <= 0 are ignored (DefaultChunkSize is kept).
//
// Parameters:
//   - n: vertices per chunk
//
// Returns:
//   - BatchMorpherBuilderOption: option function to apply
func WithChunkSize(n int) BatchMorpherBuilderOption {
	return func(b *batchMorpher) {
		if n > 0 {
			b.chunkSize = n
		}
	}
}
