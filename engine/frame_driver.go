package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-invaders/parameter"
	"github.com/lixenwraith/vi-invaders/status"
)

// Renderer draws a published snapshot
type Renderer interface {
	Render(s *Snapshot)
}

// FrameObserver sees the exact (dt, intents) pair fed to each tick, used for recording
type FrameObserver func(dt time.Duration, in Intents)

// FrameDriver turns per-frame timestamps into ticks
// Pipeline per frame: delta, consume intents, update, dispatch, publish, observe, render
type FrameDriver struct {
	world    *World
	input    *InputState
	renderer Renderer
	buffer   *SnapshotBuffer
	observer FrameObserver

	lastMs   float64
	started  bool
	maxDelta time.Duration

	// FPS sampling
	fpsFrames  int
	fpsElapsed time.Duration
	fps        *status.AtomicFloat
	peakMs     *status.AtomicFloat
	dropped    *atomic.Int64
}

// NewFrameDriver wires a driver; input and renderer may be nil
func NewFrameDriver(w *World, input *InputState, r Renderer) *FrameDriver {
	if input == nil {
		input = NewInputState()
	}
	return &FrameDriver{
		world:    w,
		input:    input,
		renderer: r,
		buffer:   NewSnapshotBuffer(),
		maxDelta: w.Config.MaxDelta,
		fps:      w.Status.Floats.Get(status.KeyFPS),
		peakMs:   w.Status.Floats.Get(status.KeyFramePeakMs),
		dropped:  w.Status.Ints.Get(status.KeyEventsDropped),
	}
}

// SetObserver installs a hook called after each tick's update and dispatch
func (d *FrameDriver) SetObserver(fn FrameObserver) {
	d.observer = fn
}

// Buffer exposes the snapshot double buffer for renderers on other goroutines
func (d *FrameDriver) Buffer() *SnapshotBuffer {
	return d.buffer
}

// Input returns the latch the host writes intents into
func (d *FrameDriver) Input() *InputState {
	return d.input
}

// World returns the driven session
func (d *FrameDriver) World() *World {
	return d.world
}

// Delta converts a timestamp into the elapsed time for the next tick
// First call yields zero, backwards clocks yield zero, stalls are capped at the max delta
func (d *FrameDriver) Delta(timestampMs float64) time.Duration {
	if !d.started {
		d.started = true
		d.lastMs = timestampMs
		return 0
	}
	deltaMs := timestampMs - d.lastMs
	d.lastMs = timestampMs
	if deltaMs < 0 {
		return 0
	}
	dt := time.Duration(deltaMs * float64(time.Millisecond))
	if d.maxDelta > 0 && dt > d.maxDelta {
		dt = d.maxDelta
	}
	return dt
}

// Tick runs one frame for the given monotonic timestamp in milliseconds
// Returns the elapsed time fed to the simulation
func (d *FrameDriver) Tick(timestampMs float64) time.Duration {
	dt := d.Delta(timestampMs)
	d.Step(dt, d.input.Consume())
	return dt
}

// Step runs one frame with an explicit elapsed time and intent snapshot
// Replay playback enters here, bypassing the clock and input latch
func (d *FrameDriver) Step(dt time.Duration, in Intents) {
	w := d.world
	w.Update(dt, in)
	w.DispatchEvents()

	d.buffer.Publish(w)
	if d.observer != nil {
		d.observer(dt, in)
	}
	if d.renderer != nil {
		d.buffer.Read(d.renderer.Render)
	}
	d.dropped.Store(int64(w.Events.Dropped()))
	d.sampleFPS(dt)
}

func (d *FrameDriver) sampleFPS(dt time.Duration) {
	d.peakMs.StoreMax(float64(dt) / float64(time.Millisecond))
	d.fpsFrames++
	d.fpsElapsed += dt
	if d.fpsElapsed < parameter.FPSSampleWindow {
		return
	}
	d.fps.Store(float64(d.fpsFrames) / d.fpsElapsed.Seconds())
	d.fpsFrames = 0
	d.fpsElapsed = 0
}
