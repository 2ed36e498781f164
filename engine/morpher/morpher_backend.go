package morpher

import "github.com/Carmen-Shannon/morph-go/engine/pose"

// MorpherBackendType identifies the interpolation backend used by a Morpher.
type MorpherBackendType int

const (
	// BackendTypeLinear is the component-wise linear interpolation backend.
	// Each coordinate axis is interpolated independently; no spherical or
	// rotational interpolation is applied.
	BackendTypeLinear MorpherBackendType = iota
)

// MorpherBackend is the interface all interpolation backends must implement.
// A backend owns the retained pose pair for one morph session and computes
// interpolated results; it carries no playback state.
type MorpherBackend interface {
	// SetPoses assigns the source and target poses for this session.
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

	// Morph computes the interpolated pose at clamped progress t into a
	// fresh allocation.
	//
	// Parameters:
	//   - t: the normalized morph progress
	//
	// Returns:
	//   - pose.Pose: the interpolated pose
	//   - error: error if no poses have been assigned
	Morph(t float32) (pose.Pose, error)

	// MorphInto computes the interpolated pose at clamped progress t into
	// the caller-owned dst buffer.
	//
	// Parameters:
	//   - dst: the destination buffer, same length as the assigned poses
	//   - t: the normalized morph progress
	//
	// Returns:
	//   - error: a *ShapeMismatchError if dst length differs, or an error
	//     if no poses have been assigned
	MorphInto(dst pose.Pose, t float32) error
}
