package common

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float32
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{-5, 5, 0.5, 0},
		{0, 10, 2, 20}, // no clamping in Lerp itself
		{10, 0, 0.25, 7.5},
	}

	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestLerp3(t *testing.T) {
	a := [3]float32{0, 10, -4}
	b := [3]float32{10, 0, 4}

	if got := Lerp3(a, b, 0); got != a {
		t.Errorf("Lerp3(t=0) = %v, want %v", got, a)
	}
	if got := Lerp3(a, b, 1); got != b {
		t.Errorf("Lerp3(t=1) = %v, want %v", got, b)
	}
	want := [3]float32{5, 5, 0}
	if got := Lerp3(a, b, 0.5); got != want {
		t.Errorf("Lerp3(t=0.5) = %v, want %v", got, want)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{1, 1},
		{0.5, 0.5},
		{-0.5, 0},
		{1.5, 1},
		{float32(math.Inf(1)), 1},
		{float32(math.Inf(-1)), 0},
	}

	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := Clamp01(float32(math.NaN())); got != 0 {
		t.Errorf("Clamp01(NaN) = %v, want 0", got)
	}
}

func TestSliceToBytes(t *testing.T) {
	verts := [][3]float32{{1, 2, 3}, {4, 5, 6}}
	raw := SliceToBytes(verts)
	if len(raw) != len(verts)*12 {
		t.Errorf("SliceToBytes length = %d, want %d", len(raw), len(verts)*12)
	}

	if SliceToBytes([]float32(nil)) != nil {
		t.Error("SliceToBytes(nil) is not nil")
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 3, 4); got != 3 {
		t.Errorf("Coalesce(0, 0, 3, 4) = %d, want 3", got)
	}
	if got := Coalesce("", "a"); got != "a" {
		t.Errorf(`Coalesce("", "a") = %q, want "a"`, got)
	}
	if got := Coalesce(0.0, 0.0); got != 0 {
		t.Errorf("Coalesce(0, 0) = %v, want 0", got)
	}
}
