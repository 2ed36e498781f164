package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/morph-go/engine/batch"
	"github.com/Carmen-Shannon/morph-go/engine/driver"
	"github.com/Carmen-Shannon/morph-go/engine/morpher"
	"github.com/Carmen-Shannon/morph-go/engine/pose"
	"github.com/Carmen-Shannon/morph-go/engine/profiler"
)

// EmitFunc receives a morph result each tick. The result buffer is owned by
// the engine and reused across ticks; callers that retain it past the
// callback must clone it.
type EmitFunc func(result pose.Pose, progress float32)

// session pairs a morpher with its driver and emit callback, plus the
// reusable result buffer the engine writes each tick.
type session struct {
	morpher morpher.Morpher
	driver  driver.Driver
	emit    EmitFunc

	// result is reallocated only when the morpher's vertex count changes.
	result pose.Pose

	// doneEmitted guards the single final emit after the driver completes.
	doneEmitted bool
}

// engine implements the Engine interface.
// Coordinates the tick loop that advances morph sessions and emits results.
type engine struct {
	mu sync.Mutex

	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	wg sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	sessions map[uint64]*session
	nextID   uint64

	// batcher evaluates large poses across the worker pool; small poses take
	// its serial fast path.
	batcher batch.BatchMorpher
	workers int
}

// Engine hosts morph sessions and drives them from a fixed-rate tick loop.
// Each tick it advances every session's driver, recomputes the interpolated
// pose, and hands the result to the session's emit callback — the animation
// driver collaborator that sits between the pure morph core and whatever
// renders the output.
type Engine interface {
	// AddSession registers a morph session. The engine advances the
	// session's driver each tick and invokes emit with the interpolated
	// pose while the driver is Running, plus one final emit when it
	// completes. Panics if m or d is nil.
	//
	// Parameters:
	//   - m: the Morpher holding the session's pose pair
	//   - d: the Driver owning the session's playback state
	//   - emit: callback receiving each tick's morph result (may be nil)
	//
	// Returns:
	//   - uint64: the assigned session ID
	AddSession(m morpher.Morpher, d driver.Driver, emit EmitFunc) uint64

	// RemoveSession removes the session with the given ID. No-op if the ID
	// is unknown.
	//
	// Parameters:
	//   - id: the session's unique ID
	RemoveSession(id uint64)

	// SessionCount returns the number of registered sessions.
	//
	// Returns:
	//   - int: the session count
	SessionCount() int

	// SetTickRate sets the tick rate in ticks per second.
	// The loop picks the new rate up on its next iteration.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers a function called at the end of each tick,
	// after all sessions have been advanced and emitted.
	//
	// Parameters:
	//   - callback: function receiving the tick's delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Run starts the tick loop and blocks until Quit is called.
	Run()

	// Quit signals the tick loop to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Initializes the tick channel, profiler, and batch pool with sensible
// defaults. Options are applied directly to the engine struct via the
// option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, workers)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		sessions:         make(map[uint64]*session),
		nextID:           1,
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	// Initialize the batch pool after options so WithWorkers can override the default.
	batchOpts := []batch.BatchMorpherBuilderOption{}
	if e.workers > 0 {
		batchOpts = append(batchOpts, batch.WithWorkers(e.workers))
	}
	e.batcher = batch.NewBatchMorpher(batchOpts...)

	return e
}

func (e *engine) AddSession(m morpher.Morpher, d driver.Driver, emit EmitFunc) uint64 {
	if m == nil {
		panic("engine: AddSession requires a non-nil Morpher")
	}
	if d == nil {
		panic("engine: AddSession requires a non-nil Driver")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextID
	e.nextID++
	e.sessions[id] = &session{
		morpher: m,
		driver:  d,
		emit:    emit,
	}
	return id
}

func (e *engine) RemoveSession(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.sessions, id)
}

func (e *engine) SessionCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.sessions)
}

func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60.0
	}
	// Drain any pending rate update so the send below never blocks.
	select {
	case <-e.tickRateChannel:
	default:
	}
	e.tickRateChannel <- time.Second / time.Duration(fps)
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) Run() {
	e.wg.Add(1)
	go e.handleTicks()
	e.wg.Wait()
}

// Quit signals the tick loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// handleTicks runs the fixed-rate tick loop in its own goroutine.
// Advances all sessions at the configured tick rate and listens for dynamic
// rate changes via tickRateChannel. Exits when the quit channel is closed.
// Recovers from panics (e.g. a misbehaving emit callback) to avoid crashing
// the process, and signals quit on recovery.
func (e *engine) handleTicks() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("tick goroutine recovered from panic: %v", r)
			e.Quit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			e.tick(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// tick advances every session by dt, recomputes running sessions' results,
// and fires emits. Also drives the optional tick callback and profiler.
func (e *engine) tick(dt float32) {
	e.mu.Lock()
	// Snapshot the session list so emits run without holding the lock;
	// callbacks may call back into AddSession/RemoveSession.
	active := make([]*session, 0, len(e.sessions))
	for _, s := range e.sessions {
		active = append(active, s)
	}
	callback := e.tickCallback
	profiling := e.profilingEnabled
	e.mu.Unlock()

	verticesMorphed := 0
	for _, s := range active {
		wasRunning := s.driver.State() == driver.StateRunning
		progress := s.driver.Advance(dt)
		nowDone := s.driver.State() == driver.StateDone

		if !wasRunning && !(nowDone && !s.doneEmitted) {
			continue
		}
		if nowDone && s.doneEmitted {
			continue
		}

		count := s.morpher.VertexCount()
		if count == 0 {
			continue
		}
		if len(s.result) != count {
			s.result = make(pose.Pose, count)
		}

		if err := e.batcher.MorphInto(s.result, s.morpher.Source(), s.morpher.Target(), progress); err != nil {
			// Shape mismatches are caller errors surfaced at SetPoses time;
			// hitting one here means poses were swapped mid-session.
			log.Printf("engine: session morph failed: %v", err)
			continue
		}
		verticesMorphed += count

		if nowDone {
			s.doneEmitted = true
		} else {
			s.doneEmitted = false
		}

		if s.emit != nil {
			s.emit(s.result, progress)
		}
	}

	if callback != nil {
		callback(dt)
	}

	if profiling && e.profiler != nil {
		e.profiler.Tick(verticesMorphed)
	}
}
