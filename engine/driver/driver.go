// package driver implements the animation-side bookkeeping for a morph
// session: elapsed time, start/stop triggers, and the Idle/Running/Done state
// machine. The morpher core stays a stateless transform; a Driver maps wall
// time onto the normalized progress value the morpher consumes.
package driver

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/morph-go/common"
)

// State identifies the playback state of a morph session.
type State int

const (
	// StateIdle means the session has not started (or was cancelled/reset).
	StateIdle State = iota

	// StateRunning means the session is accumulating elapsed time.
	StateRunning

	// StateDone means the session reached full progress. Ping-pong sessions
	// never enter this state.
	StateDone
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// driver is the implementation of the Driver interface.
type driver struct {
	mu *sync.Mutex

	state    State
	duration float32 // seconds for one full source→target sweep
	elapsed  float32 // accumulated seconds while Running
	speed    float32 // playback speed multiplier applied to Advance deltas
	pingPong bool    // reflect at the ends instead of completing
}

// Driver owns the mutable playback state for one morph session and converts
// frame delta times into the clamped progress value a Morpher consumes.
// Thread-safe for concurrent access; typically one goroutine advances it from
// a tick loop while others inspect state.
type Driver interface {
	// State returns the current playback state.
	//
	// Returns:
	//   - State: StateIdle, StateRunning, or StateDone
	State() State

	// Start begins (or restarts) the session: elapsed time is reset to zero
	// and the state becomes StateRunning.
	Start()

	// Cancel stops the session, keeping the current elapsed time so the
	// caller can still read the final progress. State becomes StateIdle.
	Cancel()

	// Reset stops the session and clears elapsed time back to zero.
	// State becomes StateIdle and Progress returns 0.
	Reset()

	// Advance accumulates deltaTime (scaled by the speed multiplier) while
	// the session is Running and returns the resulting clamped progress.
	// A non-ping-pong session transitions to StateDone when elapsed time
	// reaches the duration. Calls while Idle or Done return the current
	// progress without advancing.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	//
	// Returns:
	//   - float32: the session progress in [0, 1]
	Advance(deltaTime float32) float32

	// Progress returns the current progress in [0, 1] without advancing.
	// Ping-pong sessions reflect at the ends: progress rises to 1 over one
	// duration, then falls back to 0 over the next.
	//
	// Returns:
	//   - float32: the session progress in [0, 1]
	Progress() float32

	// Duration returns the configured sweep duration in seconds.
	//
	// Returns:
	//   - float32: the duration of one full source→target sweep
	Duration() float32

	// SetDuration sets the sweep duration in seconds. Values <= 0 make any
	// subsequent Advance complete immediately.
	//
	// Parameters:
	//   - seconds: the new sweep duration
	SetDuration(seconds float32)
}

var _ Driver = &driver{}

// NewDriver creates a new Driver in StateIdle with a 1-second sweep duration
// and normal playback speed, then applies the provided options.
//
// Parameters:
//   - options: variadic list of DriverBuilderOption functions to configure the Driver
//
// Returns:
//   - Driver: the newly created driver
func NewDriver(options ...DriverBuilderOption) Driver {
	d := &driver{
		mu:       &sync.Mutex{},
		state:    StateIdle,
		duration: 1.0,
		speed:    1.0,
	}
	for _, opt := range options {
		opt(d)
	}
	d.speed = common.Coalesce(d.speed, 1.0)
	return d
}

func (d *driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elapsed = 0
	d.state = StateRunning
}

func (d *driver) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = StateIdle
}

func (d *driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = StateIdle
	d.elapsed = 0
}

func (d *driver) Advance(deltaTime float32) float32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StateRunning {
		return d.progressLocked()
	}

	if d.duration <= 0 {
		// Degenerate duration: the sweep completes on the first tick.
		if !d.pingPong {
			d.state = StateDone
		}
		d.elapsed = d.duration
		return 1
	}

	d.elapsed += deltaTime * d.speed
	if !d.pingPong && d.elapsed >= d.duration {
		d.elapsed = d.duration
		d.state = StateDone
	}
	return d.progressLocked()
}

func (d *driver) Progress() float32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.progressLocked()
}

// progressLocked computes the clamped progress from elapsed time.
// Caller must hold d.mu.
func (d *driver) progressLocked() float32 {
	if d.duration <= 0 {
		if d.state == StateIdle && d.elapsed == 0 {
			return 0
		}
		return 1
	}
	if d.pingPong {
		// Triangle wave over a 2×duration cycle: rise then fall.
		cycle := 2 * d.duration
		phase := float32(math.Mod(float64(d.elapsed), float64(cycle)))
		if phase < 0 {
			phase += cycle
		}
		if phase <= d.duration {
			return phase / d.duration
		}
		return 2 - phase/d.duration
	}
	return common.Clamp01(d.elapsed / d.duration)
}

func (d *driver) Duration() float32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.duration
}

func (d *driver) SetDuration(seconds float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.duration = seconds
}
