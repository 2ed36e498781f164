package morpher

import (
	"fmt"

	"github.com/Carmen-Shannon/morph-go/common"
	"github.com/Carmen-Shannon/morph-go/engine/pose"
)

// ShapeMismatchError reports that two vertex sequences that must correspond
// index-for-index have different lengths. Interpolation cannot proceed and
// the caller must supply corrected poses before rendering.
type ShapeMismatchError struct {
	// SourceLen is the vertex count of the source pose.
	SourceLen int

	// TargetLen is the vertex count of the other sequence (target pose or
	// destination buffer, depending on which comparison failed).
	TargetLen int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: source has %d vertices, target has %d", e.SourceLen, e.TargetLen)
}

// Interpolate computes the component-wise linear interpolation between two
// equal-length poses at the given progress value. The progress t is clamped
// to [0, 1] before use, so t=0 yields the source pose, t=1 yields the target
// pose, and out-of-range values never extrapolate.
//
// Interpolate is a pure function: source and target are never mutated, the
// result is freshly allocated on every call, and identical inputs produce
// bit-identical output. Concurrent calls on disjoint buffers are safe.
//
// Parameters:
//   - source: the starting pose
//   - target: the ending pose (must have the same length as source)
//   - t: the normalized morph progress, clamped to [0, 1]
//
// Returns:
//   - pose.Pose: the interpolated pose, same length as the inputs
//   - error: a *ShapeMismatchError if the pose lengths differ
func Interpolate(source, target pose.Pose, t float32) (pose.Pose, error) {
	if len(source) != len(target) {
		return nil, &ShapeMismatchError{SourceLen: len(source), TargetLen: len(target)}
	}
	result := make(pose.Pose, len(source))
	lerpRange(result, source, target, common.Clamp01(t), 0, len(source))
	return result, nil
}

// InterpolateInto is the allocation-free variant of Interpolate. It writes the
// interpolated pose into dst, which the caller owns and which must have the
// same length as the two input poses. Reusing one dst buffer across frames
// avoids a per-frame allocation in animation loops.
//
// Parameters:
//   - dst: the destination buffer receiving the interpolated positions
//   - source: the starting pose
//   - target: the ending pose (must have the same length as source)
//   - t: the normalized morph progress, clamped to [0, 1]
//
// Returns:
//   - error: a *ShapeMismatchError if source/target or dst lengths differ
func InterpolateInto(dst, source, target pose.Pose, t float32) error {
	if len(source) != len(target) {
		return &ShapeMismatchError{SourceLen: len(source), TargetLen: len(target)}
	}
	if len(dst) != len(source) {
		return &ShapeMismatchError{SourceLen: len(source), TargetLen: len(dst)}
	}
	lerpRange(dst, source, target, common.Clamp01(t), 0, len(source))
	return nil
}

// lerpRange writes the component-wise lerp of source and target over the
// half-open index range [start, end) into dst. t must already be clamped and
// the three slices must share a length covering the range; the exported entry
// points validate before calling.
func lerpRange(dst, source, target pose.Pose, t float32, start, end int) {
	for i := start; i < end; i++ {
		dst[i] = common.Lerp3(source[i], target[i], t)
	}
}

// morpher is the implementation of the Morpher interface.
type morpher struct {
	backendType MorpherBackendType
	backend     MorpherBackend
}

// Morpher holds a pair of corresponding poses for one morph session and
// produces interpolated results on demand. The morpher itself is a stateless
// transform over its assigned poses: it keeps no elapsed-time or playback
// bookkeeping (that belongs to a driver.Driver) and recomputes the result on
// every call.
//
// All methods are safe for concurrent use; pose assignment is serialized
// against in-flight morphs.
type Morpher interface {
	// SetPoses assigns the source and target poses for this morph session.
	// Both poses are retained by reference; callers must treat them as
	// immutable for the duration of the session.
	//
	// Parameters:
	//   - source: the starting pose
	//   - target: the ending pose (must have the same length as source)
	//
	// Returns:
	//   - error: a *ShapeMismatchError if the pose lengths differ
	SetPoses(source, target pose.Pose) error

	// Source returns the currently assigned source pose, or nil if none.
	//
	// Returns:
	//   - pose.Pose: the source pose
	Source() pose.Pose

	// Target returns the currently assigned target pose, or nil if none.
	//
	// Returns:
	//   - pose.Pose: the target pose
	Target() pose.Pose

	// VertexCount returns the vertex count of the assigned poses.
	//
	// Returns:
	//   - int: the number of vertices, or 0 if no poses are assigned
	VertexCount() int

	// Morph computes the interpolated pose at progress t. The result is a
	// fresh allocation owned by the caller; t is clamped to [0, 1].
	//
	// Parameters:
	//   - t: the normalized morph progress
	//
	// Returns:
	//   - pose.Pose: the interpolated pose
	//   - error: error if no poses have been assigned
	Morph(t float32) (pose.Pose, error)

	// MorphInto computes the interpolated pose at progress t into a
	// caller-owned destination buffer of matching length; t is clamped
	// to [0, 1].
	//
	// Parameters:
	//   - dst: the destination buffer, same length as the assigned poses
	//   - t: the normalized morph progress
	//
	// Returns:
	//   - error: a *ShapeMismatchError if dst length differs, or an error
	//     if no poses have been assigned
	MorphInto(dst pose.Pose, t float32) error

	// BackendType returns the interpolation backend this morpher uses.
	//
	// Returns:
	//   - MorpherBackendType: the backend type (BackendTypeLinear)
	BackendType() MorpherBackendType
}

var _ Morpher = &morpher{}

// NewMorpher creates a new Morpher with the specified backend type.
// The backend is created based on the type and then configured using the
// provided options.
//
// Parameters:
//   - backendType: the interpolation backend to use (BackendTypeLinear)
//   - options: variadic list of MorpherBuilderOption functions to configure the Morpher
//
// Returns:
//   - Morpher: a new instance of Morpher configured with the specified backend and options
func NewMorpher(backendType MorpherBackendType, options ...MorpherBuilderOption) Morpher {
	m := &morpher{
		backendType: backendType,
	}
	switch backendType {
	case BackendTypeLinear:
		fallthrough
	default:
		m.backend = newLinearMorpherBackend()
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *morpher) SetPoses(source, target pose.Pose) error {
	return m.backend.SetPoses(source, target)
}

func (m *morpher) Source() pose.Pose {
	return m.backend.Source()
}

func (m *morpher) Target() pose.Pose {
	return m.backend.Target()
}

func (m *morpher) VertexCount() int {
	return m.backend.VertexCount()
}

func (m *morpher) Morph(t float32) (pose.Pose, error) {
	return m.backend.Morph(t)
}

func (m *morpher) MorphInto(dst pose.Pose, t float32) error {
	return m.backend.MorphInto(dst, t)
}

func (m *morpher) BackendType() MorpherBackendType {
	return m.backendType
}
