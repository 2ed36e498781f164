package common

import "unsafe"

// Lerp linearly interpolates between a and b by t.
// No clamping is performed; callers that need a bounded progress value
// should pass t through Clamp01 first.
//
// Parameters:
//   - a: the start value (returned when t == 0)
//   - b: the end value (returned when t == 1)
//   - t: the interpolation parameter
//
// Returns:
//   - float32: the interpolated value a + (b-a)*t
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Lerp3 linearly interpolates between two 3-component vectors by t,
// applied independently per axis. No clamping is performed.
//
// Parameters:
//   - a: the start vector (returned when t == 0)
//   - b: the end vector (returned when t == 1)
//   - t: the interpolation parameter
//
// Returns:
//   - [3]float32: the component-wise interpolated vector
func Lerp3(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// Clamp01 clamps t to the [0, 1] range. Values below 0 are treated as 0
// and values above 1 as 1. NaN is treated as 0.
//
// Parameters:
//   - t: the value to clamp
//
// Returns:
//   - float32: t clamped to [0, 1]
func Clamp01(t float32) float32 {
	if t > 1 {
		return 1
	}
	if t >= 0 {
		return t
	}
	// t < 0, or NaN (which fails both comparisons above)
	return 0
}

// SliceToBytes converts any slice to a byte slice for raw vertex hand-off
// to external rendering collaborators.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}
