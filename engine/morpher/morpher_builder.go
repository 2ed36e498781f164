package morpher

import (
	"fmt"

	"github.com/Carmen-Shannon/morph-go/engine/pose"
)

// MorpherBuilderOption is a functional option for configuring a Morpher during construction.
type MorpherBuilderOption func(*morpher)

// WithPoses is an option builder that assigns the source and target poses
// during construction. Panics if the pose lengths differ, since a Morpher
// built from mismatched poses can never produce a result.
//
// Parameters:
//   - source: the starting pose
//   - target: the ending pose (must have the same length as source)
//
// Returns:
//   - MorpherBuilderOption: a function that applies the pose option to a morpher
func WithPoses(source, target pose.Pose) MorpherBuilderOption {
	return func(m *morpher) {
		if err := m.backend.SetPoses(source, target); err != nil {
			panic(fmt.Sprintf("morpher: WithPoses requires equal-length poses: %v", err))
		}
	}
}
