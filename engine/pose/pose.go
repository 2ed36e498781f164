// package pose contains the vertex-position data model shared across the
// morphing pipeline. A Pose is plain data with no GPU or file-format coupling;
// mesh import and rendering belong to external collaborators.
package pose

import "fmt"

// Pose is an ordered sequence of 3D vertex positions representing a full set
// of mesh vertices at one point in an animation. Two poses correspond
// index-for-index: index i in one pose represents the same logical point as
// index i in the other. That correspondence is established by the external
// mesh-preparation pipeline, not by this library.
type Pose [][3]float32

// Clone returns a deep copy of the pose.
// Returns nil for a nil pose.
//
// Returns:
//   - Pose: an independent copy of the pose
func (p Pose) Clone() Pose {
	if p == nil {
		return nil
	}
	out := make(Pose, len(p))
	copy(out, p)
	return out
}

// EqualWithin reports whether two poses have the same length and every
// coordinate differs by at most tol.
//
// Parameters:
//   - other: the pose to compare against
//   - tol: the maximum allowed absolute per-coordinate difference
//
// Returns:
//   - bool: true if the poses match within tolerance
func (p Pose) EqualWithin(other Pose, tol float32) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		for axis := 0; axis < 3; axis++ {
			d := p[i][axis] - other[i][axis]
			if d < 0 {
				d = -d
			}
			if d > tol {
				return false
			}
		}
	}
	return true
}

// Bounds computes the axis-aligned bounding box of the pose.
// Returns zero vectors for an empty pose.
//
// Returns:
//   - min: the minimum corner of the bounding box
//   - max: the maximum corner of the bounding box
func (p Pose) Bounds() (min, max [3]float32) {
	if len(p) == 0 {
		return
	}
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		for axis := 0; axis < 3; axis++ {
			if v[axis] < min[axis] {
				min[axis] = v[axis]
			}
			if v[axis] > max[axis] {
				max[axis] = v[axis]
			}
		}
	}
	return
}

// ValidateIndices checks that every triangle index addresses a vertex within
// [0, vertexCount). Morphing assumes both poses share identical connectivity;
// that assumption stays with the caller, but when index data is available this
// catches topology that cannot be valid for a pose of the given size.
//
// Parameters:
//   - indices: the triangle index list to validate
//   - vertexCount: the number of vertices the indices must address
//
// Returns:
//   - error: error naming the first out-of-range index, or nil if all are valid
func ValidateIndices(indices []uint32, vertexCount int) error {
	for i, idx := range indices {
		if int(idx) >= vertexCount {
			return fmt.Errorf("index %d at position %d exceeds vertex count %d", idx, i, vertexCount)
		}
	}
	return nil
}
