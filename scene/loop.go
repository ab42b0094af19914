package scene

import (
	"log"

	"github.com/plus3/cookiedog/texture"
)

// Renderer draws a frame's draw list and presents it.
type Renderer interface {
	DrawSprite(cmd DrawCommand)
	Present()
}

// Loop owns the world and advances it one tick per Tick call until the window
// closes.
type Loop struct {
	world     *World
	scheduler *Scheduler
	clock     *Clock
	cache     *texture.Cache
	sounds    SoundPlayer
	logger    *log.Logger

	state State
	frame *Frame
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithClock replaces the wall clock used to measure delta time.
func WithClock(clock *Clock) LoopOption {
	return func(l *Loop) {
		l.clock = clock
	}
}

// WithScheduler replaces the default movement/collision/render scheduler.
func WithScheduler(s *Scheduler) LoopOption {
	return func(l *Loop) {
		l.scheduler = s
	}
}

// WithLoopLogger sets the logger used for lifecycle messages.
func WithLoopLogger(logger *log.Logger) LoopOption {
	return func(l *Loop) {
		l.logger = logger
	}
}

// NewLoop creates a running loop over world. The cache is released when the
// loop terminates; sounds receives the collection sound requests.
func NewLoop(world *World, cache *texture.Cache, sounds SoundPlayer, opts ...LoopOption) *Loop {
	l := &Loop{
		world:  world,
		cache:  cache,
		sounds: sounds,
		logger: log.Default(),
		state:  Running,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.scheduler == nil {
		l.scheduler = NewDefaultScheduler(world)
	}
	if l.clock == nil {
		l.clock = NewClock(nil)
	}
	l.clock.Start()
	return l
}

// Tick advances the loop by one frame. A close request moves the loop to
// Terminating and releases the texture cache; any later Tick is a no-op.
func (l *Loop) Tick(in Input) State {
	if l.state == Terminating {
		return l.state
	}

	next := l.state.Next(in)
	if next == Terminating {
		l.terminate()
		return l.state
	}

	l.frame = l.scheduler.Once(l.clock.Delta(), in, l.sounds)
	return l.state
}

func (l *Loop) terminate() {
	l.state = Terminating
	l.frame = nil
	if l.cache != nil {
		l.cache.ReleaseAll()
	}
	l.logger.Printf("scene terminating: %d/%d collected", l.world.Collected(), len(l.world.Collectibles))
}

// Render submits the last frame's draw list to r in order and presents it.
// Nothing is drawn before the first tick or after termination.
func (l *Loop) Render(r Renderer) {
	if l.frame == nil {
		return
	}
	for _, cmd := range l.frame.Draws {
		r.DrawSprite(cmd)
	}
	r.Present()
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Frame returns the most recent frame, or nil before the first tick.
func (l *Loop) Frame() *Frame {
	return l.frame
}

// World returns the loop's entity collection.
func (l *Loop) World() *World {
	return l.world
}

// Stats returns the scheduler's per-system statistics.
func (l *Loop) Stats() *SchedulerStats {
	return l.scheduler.Stats()
}
