package morpher

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/morph-go/common"
	"github.com/Carmen-Shannon/morph-go/engine/pose"
)

// linearMorpherBackendImpl is the concrete implementation of the linear
// interpolation backend.
type linearMorpherBackendImpl struct {
	mu *sync.RWMutex

	// source and target are the retained pose pair for the current session.
	// They are held by reference and never mutated; SetPoses replaces both
	// atomically under the write lock.
	source, target pose.Pose
}

// compile-time check to ensure linearMorpherBackendImpl implements MorpherBackend.
var _ MorpherBackend = &linearMorpherBackendImpl{}

// newLinearMorpherBackend creates and initializes a new instance of the
// linear interpolation backend.
//
// Returns:
//   - MorpherBackend: a new linear backend with no poses assigned
func newLinearMorpherBackend() MorpherBackend {
	return &linearMorpherBackendImpl{
		mu: &sync.RWMutex{},
	}
}

func (l *linearMorpherBackendImpl) SetPoses(source, target pose.Pose) error {
	if len(source) != len(target) {
		return &ShapeMismatchError{SourceLen: len(source), TargetLen: len(target)}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.source = source
	l.target = target
	return nil
}

func (l *linearMorpherBackendImpl) Source() pose.Pose {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.source
}

func (l *linearMorpherBackendImpl) Target() pose.Pose {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.target
}

func (l *linearMorpherBackendImpl) VertexCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.source)
}

func (l *linearMorpherBackendImpl) Morph(t float32) (pose.Pose, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.source == nil || l.target == nil {
		return nil, fmt.Errorf("morpher: no poses assigned")
	}
	result := make(pose.Pose, len(l.source))
	lerpRange(result, l.source, l.target, common.Clamp01(t), 0, len(l.source))
	return result, nil
}

func (l *linearMorpherBackendImpl) MorphInto(dst pose.Pose, t float32) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.source == nil || l.target == nil {
		return fmt.Errorf("morpher: no poses assigned")
	}
	if len(dst) != len(l.source) {
		return &ShapeMismatchError{SourceLen: len(l.source), TargetLen: len(dst)}
	}
	lerpRange(dst, l.source, l.target, common.Clamp01(t), 0, len(l.source))
	return nil
}
