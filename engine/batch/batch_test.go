package batch

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/Carmen-Shannon/morph-go/engine/morpher"
	"github.com/Carmen-Shannon/morph-go/engine/pose"
)

func randomPose(n int, seed int64) pose.Pose {
	rng := rand.New(rand.NewSource(seed))
	p := make(pose.Pose, n)
	for i := range p {
		p[i] = [3]float32{rng.Float32() * 100, rng.Float32() * 100, rng.Float32() * 100}
	}
	return p
}

func TestBatchMatchesSerial(t *testing.T) {
	const n = 10000
	source := randomPose(n, 1)
	target := randomPose(n, 2)

	// Small chunk size forces the parallel path even on small machines.
	b := NewBatchMorpher(WithWorkers(4), WithChunkSize(512))

	got := make(pose.Pose, n)
	if err := b.MorphInto(got, source, target, 0.37); err != nil {
		t.Fatalf("batch MorphInto returned error: %v", err)
	}

	want := make(pose.Pose, n)
	if err := morpher.InterpolateInto(want, source, target, 0.37); err != nil {
		t.Fatalf("serial InterpolateInto returned error: %v", err)
	}

	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("vertex %d: batch = %v, serial = %v", i, got[i], want[i])
		}
	}
}

func TestBatchSerialFallback(t *testing.T) {
	source := randomPose(16, 3)
	target := randomPose(16, 4)

	b := NewBatchMorpher(WithWorkers(4))

	got := make(pose.Pose, len(source))
	if err := b.MorphInto(got, source, target, 1); err != nil {
		t.Fatalf("MorphInto returned error: %v", err)
	}
	// a+(b-a)*1 can land an ulp off b, so compare within rounding error.
	if !got.EqualWithin(target, 1e-3) {
		t.Errorf("MorphInto(t=1) = %v, want target", got)
	}
}

func TestBatchClamping(t *testing.T) {
	source := randomPose(8192, 5)
	target := randomPose(8192, 6)

	b := NewBatchMorpher(WithWorkers(2), WithChunkSize(1024))

	got := make(pose.Pose, len(source))
	if err := b.MorphInto(got, source, target, 2.5); err != nil {
		t.Fatalf("MorphInto returned error: %v", err)
	}
	if !got.EqualWithin(target, 1e-3) {
		t.Error("MorphInto(t=2.5) did not clamp to the target pose")
	}
}

func TestBatchShapeMismatch(t *testing.T) {
	b := NewBatchMorpher(WithWorkers(2))

	source := randomPose(4, 7)
	target := randomPose(5, 8)
	dst := make(pose.Pose, 4)

	err := b.MorphInto(dst, source, target, 0.5)
	var mismatch *morpher.ShapeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error is %T, want *morpher.ShapeMismatchError", err)
	}
	if mismatch.SourceLen != 4 || mismatch.TargetLen != 5 {
		t.Errorf("mismatch lengths = (%d, %d), want (4, 5)", mismatch.SourceLen, mismatch.TargetLen)
	}

	short := make(pose.Pose, 3)
	if err := b.MorphInto(short, randomPose(4, 9), randomPose(4, 10), 0.5); err == nil {
		t.Error("MorphInto with short dst returned nil error")
	}
}

func TestBatchWorkersOption(t *testing.T) {
	b := NewBatchMorpher(WithWorkers(3))
	if b.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", b.Workers())
	}

	// Non-positive values keep the default.
	b = NewBatchMorpher(WithWorkers(-1))
	if b.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", b.Workers())
	}
}
