package driver

import (
	"math"
	"testing"
)

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestDriverLifecycle(t *testing.T) {
	d := NewDriver(WithDuration(2))

	if d.State() != StateIdle {
		t.Fatalf("new driver state = %v, want Idle", d.State())
	}
	if d.Progress() != 0 {
		t.Fatalf("new driver progress = %v, want 0", d.Progress())
	}

	// Advancing while Idle is a no-op.
	if got := d.Advance(1); got != 0 {
		t.Errorf("Advance while Idle = %v, want 0", got)
	}

	d.Start()
	if d.State() != StateRunning {
		t.Fatalf("state after Start = %v, want Running", d.State())
	}

	if got := d.Advance(0.5); !approxEqual(got, 0.25) {
		t.Errorf("progress after 0.5s of 2s = %v, want 0.25", got)
	}
	if got := d.Advance(1); !approxEqual(got, 0.75) {
		t.Errorf("progress after 1.5s of 2s = %v, want 0.75", got)
	}

	if got := d.Advance(1); got != 1 {
		t.Errorf("progress after overrun = %v, want 1", got)
	}
	if d.State() != StateDone {
		t.Errorf("state after completion = %v, want Done", d.State())
	}

	// Advancing while Done stays pinned at 1.
	if got := d.Advance(5); got != 1 {
		t.Errorf("Advance while Done = %v, want 1", got)
	}
}

func TestDriverRestart(t *testing.T) {
	d := NewDriver(WithDuration(1))
	d.Start()
	d.Advance(2)
	if d.State() != StateDone {
		t.Fatalf("state = %v, want Done", d.State())
	}

	d.Start()
	if d.State() != StateRunning {
		t.Errorf("state after restart = %v, want Running", d.State())
	}
	if d.Progress() != 0 {
		t.Errorf("progress after restart = %v, want 0", d.Progress())
	}
}

func TestDriverCancelKeepsProgress(t *testing.T) {
	d := NewDriver(WithDuration(2))
	d.Start()
	d.Advance(1)

	d.Cancel()
	if d.State() != StateIdle {
		t.Fatalf("state after Cancel = %v, want Idle", d.State())
	}
	if got := d.Progress(); !approxEqual(got, 0.5) {
		t.Errorf("progress after Cancel = %v, want 0.5", got)
	}

	d.Reset()
	if d.Progress() != 0 {
		t.Errorf("progress after Reset = %v, want 0", d.Progress())
	}
}

func TestDriverZeroDuration(t *testing.T) {
	d := NewDriver(WithDuration(0))
	d.Start()
	if got := d.Advance(0.001); got != 1 {
		t.Errorf("Advance with zero duration = %v, want 1", got)
	}
	if d.State() != StateDone {
		t.Errorf("state = %v, want Done", d.State())
	}
}

func TestDriverSpeed(t *testing.T) {
	d := NewDriver(WithDuration(2), WithSpeed(2))
	d.Start()
	if got := d.Advance(0.5); !approxEqual(got, 0.5) {
		t.Errorf("progress at double speed after 0.5s of 2s = %v, want 0.5", got)
	}
}

func TestDriverPingPong(t *testing.T) {
	d := NewDriver(WithDuration(1), WithPingPong(true))
	d.Start()

	if got := d.Advance(0.5); !approxEqual(got, 0.5) {
		t.Errorf("ping-pong progress at 0.5s = %v, want 0.5", got)
	}
	if got := d.Advance(0.5); !approxEqual(got, 1) {
		t.Errorf("ping-pong progress at 1.0s = %v, want 1", got)
	}
	// Past the peak: reflecting back down.
	if got := d.Advance(0.25); !approxEqual(got, 0.75) {
		t.Errorf("ping-pong progress at 1.25s = %v, want 0.75", got)
	}
	if got := d.Advance(0.75); !approxEqual(got, 0) {
		t.Errorf("ping-pong progress at 2.0s = %v, want 0", got)
	}
	// Second cycle rises again.
	if got := d.Advance(0.5); !approxEqual(got, 0.5) {
		t.Errorf("ping-pong progress at 2.5s = %v, want 0.5", got)
	}

	if d.State() != StateRunning {
		t.Errorf("ping-pong state = %v, want Running (never Done)", d.State())
	}
}

func TestDriverSetDuration(t *testing.T) {
	d := NewDriver()
	if d.Duration() != 1 {
		t.Fatalf("default duration = %v, want 1", d.Duration())
	}
	d.SetDuration(4)
	if d.Duration() != 4 {
		t.Errorf("duration after SetDuration = %v, want 4", d.Duration())
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "Idle"},
		{StateRunning, "Running"},
		{StateDone, "Done"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
