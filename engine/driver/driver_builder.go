package driver

// DriverBuilderOption is a functional option for configuring a Driver.
// Use the With* functions to create options that are applied directly to the driver instance.
type DriverBuilderOption func(*driver)

// WithDuration sets the sweep duration in seconds. Values <= 0 make any
// subsequent Advance complete immediately.
//
// Parameters:
//   - seconds: the duration of one full source→target sweep (default 1.0)
//
// Returns:
//   - DriverBuilderOption: option function to apply
func WithDuration(seconds float32) DriverBuilderOption {
	return func(d *driver) {
		d.duration = seconds
	}
}

// WithSpeed sets the playback speed multiplier applied to Advance deltas.
// Values <= 0 are treated as the default (1.0 = normal speed).
//
// Parameters:
//   - multiplier: the speed multiplier (0.5 = half speed, 2.0 = double speed)
//
// Returns:
//   - DriverBuilderOption: option function to apply
func WithSpeed(multiplier float32) DriverBuilderOption {
	return func(d *driver) {
		if multiplier <= 0 {
			multiplier = 1.0
		}
		d.speed = multiplier
	}
}

// WithPingPong enables continuous back-and-forth playback: progress rises to
// 1 over one duration, then falls back to 0 over the next, and the session
// never transitions to StateDone.
//
// Parameters:
//   - enabled: if true, the driver reflects at the ends instead of completing
//
// Returns:
//   - DriverBuilderOption: option function to apply
func WithPingPong(enabled bool) DriverBuilderOption {
	return func(d *driver) {
		d.pingPong = enabled
	}
}
