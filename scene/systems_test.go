package scene_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/cookiedog/scene"
	"github.com/plus3/cookiedog/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickOnce(t *testing.T, world *scene.World, dt time.Duration, in scene.Input) (*scene.Frame, *recordingSounds) {
	t.Helper()
	sounds := &recordingSounds{}
	loop := scene.NewLoop(world, nil, sounds, scene.WithClock(steppedClock(dt)), scene.WithLoopLogger(quiet))
	require.Equal(t, scene.Running, loop.Tick(in))
	return loop.Frame(), sounds
}

func TestMovement(t *testing.T) {
	tests := []struct {
		name  string
		input scene.Input
		want  mgl32.Vec3
	}{
		{"up", scene.Input{Up: true}, mgl32.Vec3{0, 2, 0}},
		{"down", scene.Input{Down: true}, mgl32.Vec3{0, -2, 0}},
		{"left", scene.Input{Left: true}, mgl32.Vec3{-2, 0, 0}},
		{"right", scene.Input{Right: true}, mgl32.Vec3{2, 0, 0}},
		{"diagonal", scene.Input{Up: true, Right: true}, mgl32.Vec3{2, 2, 0}},
		{"opposite keys cancel", scene.Input{Left: true, Right: true}, mgl32.Vec3{0, 0, 0}},
		{"ui capture suppresses", scene.Input{Up: true, Right: true, UICapture: true}, mgl32.Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := testWorld()
			tickOnce(t, world, 500*time.Millisecond, tt.input)
			assert.InDelta(t, tt.want.X(), world.Player.Position.X(), 1e-5)
			assert.InDelta(t, tt.want.Y(), world.Player.Position.Y(), 1e-5)
			assert.Zero(t, world.Player.Position.Z())
		})
	}
}

func TestDiagonalSpeedIsNotNormalized(t *testing.T) {
	world := testWorld()
	tickOnce(t, world, time.Second, scene.Input{Up: true, Left: true})

	distance := world.Player.Position.Vec2().Len()
	assert.InDelta(t, scene.DefaultMoveSpeed*math.Sqrt2, distance, 1e-4)
}

func TestCollectOverlappingCookie(t *testing.T) {
	world := testWorld(mgl32.Vec3{0.5, 0.5, 0})

	frame, sounds := tickOnce(t, world, 16*time.Millisecond, scene.Input{})

	cookie := world.Collectibles[0]
	assert.False(t, cookie.Visible)
	assert.Equal(t, []string{"eat.wav"}, sounds.played)
	assert.Len(t, frame.Collected, 1)
	assert.Len(t, frame.Draws, 2, "background and player only")
	for _, cmd := range frame.Draws {
		assert.NotEqual(t, cookie.Texture, cmd.Texture)
	}
}

func TestDistantCookieStaysVisibleUntilReached(t *testing.T) {
	world := testWorld(mgl32.Vec3{10, 0, 0})
	sounds := &recordingSounds{}
	loop := scene.NewLoop(world, nil, sounds, scene.WithClock(steppedClock(100*time.Millisecond)), scene.WithLoopLogger(quiet))

	cookie := world.Collectibles[0]
	for i := 0; i < 5; i++ {
		loop.Tick(scene.Input{})
		assert.True(t, cookie.Visible)
	}
	assert.Empty(t, sounds.played)

	// 0.4 units per tick; the boxes touch once the player reaches x=9.
	ticks := 0
	for cookie.Visible && ticks < 100 {
		loop.Tick(scene.Input{Right: true})
		ticks++
	}
	assert.False(t, cookie.Visible)
	assert.Len(t, sounds.played, 1)
	assert.GreaterOrEqual(t, world.Player.Position.X(), float32(9)-1e-4)
}

func TestCollisionSeesSameTickMovement(t *testing.T) {
	// Out of reach at rest, inside after one 0.5s step to the right.
	world := testWorld(mgl32.Vec3{2.5, 0, 0})
	require.False(t, sprite.Overlaps(world.Player, world.Collectibles[0]))

	frame, sounds := tickOnce(t, world, 500*time.Millisecond, scene.Input{Right: true})

	assert.False(t, world.Collectibles[0].Visible)
	assert.Len(t, sounds.played, 1)
	assert.Len(t, frame.Draws, 2)
}

func TestEveryCollectionPlaysItsOwnSound(t *testing.T) {
	world := testWorld(
		mgl32.Vec3{0.5, 0.5, 0},
		mgl32.Vec3{-0.5, -0.5, 0},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{8, 8, 0},
	)

	frame, sounds := tickOnce(t, world, 16*time.Millisecond, scene.Input{})

	assert.Equal(t, []string{"eat.wav", "eat.wav", "eat.wav"}, sounds.played)
	assert.Len(t, frame.Collected, 3)
	assert.Equal(t, 3, world.Collected())
	assert.Equal(t, 1, world.Remaining())
}

func TestCollectedCookiesStayHidden(t *testing.T) {
	world := testWorld(mgl32.Vec3{0.5, 0.5, 0})
	sounds := &recordingSounds{}
	loop := scene.NewLoop(world, nil, sounds, scene.WithClock(steppedClock(time.Second)), scene.WithLoopLogger(quiet))

	loop.Tick(scene.Input{})
	loop.Tick(scene.Input{Left: true})
	loop.Tick(scene.Input{Right: true})

	assert.False(t, world.Collectibles[0].Visible)
	assert.Len(t, sounds.played, 1)
}

func TestDrawOrder(t *testing.T) {
	world := testWorld(mgl32.Vec3{3, 3, 0}, mgl32.Vec3{0.5, 0, 0}, mgl32.Vec3{-3, 3, 0})

	frame, _ := tickOnce(t, world, 16*time.Millisecond, scene.Input{})

	require.Len(t, frame.Draws, 4)
	assert.Equal(t, world.Background.Position, frame.Draws[0].Position)
	assert.Equal(t, world.Player.Position, frame.Draws[1].Position)
	assert.Equal(t, world.Collectibles[0].Position, frame.Draws[2].Position)
	assert.Equal(t, world.Collectibles[2].Position, frame.Draws[3].Position)
	assert.Equal(t, world.Player.Model(), frame.Draws[1].Model)
}

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	world := testWorld()
	var order []string

	s := scene.NewScheduler(world)
	s.Register(&probeSystem{name: "first", order: &order})
	s.Register(&probeSystem{name: "second", order: &order})

	s.Once(0.1, scene.Input{}, nil)
	s.Once(0.1, scene.Input{}, nil)

	assert.Equal(t, []string{"first", "second", "first", "second"}, order)

	stats := s.Stats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(2), stats.TotalTicks)
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "probeSystem", stats.Systems[0].Name)
	assert.Equal(t, int64(2), stats.Systems[0].ExecutionCount)
	assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
}

func TestSchedulerStatsBeforeFirstTick(t *testing.T) {
	s := scene.NewDefaultScheduler(testWorld())

	stats := s.Stats()
	require.Len(t, stats.Systems, 3)
	assert.Equal(t, "MovementSystem", stats.Systems[0].Name)
	assert.Equal(t, "CollisionSystem", stats.Systems[1].Name)
	assert.Equal(t, "RenderSystem", stats.Systems[2].Name)
	assert.Zero(t, stats.Systems[0].MinDuration)
}

type probeSystem struct {
	name  string
	order *[]string
}

func (p *probeSystem) Execute(frame *scene.Frame) {
	*p.order = append(*p.order, p.name)
}
