package scene

// MovementSystem moves the player along every held axis by MoveSpeed*dt.
// Axes add up, so a diagonal is faster than a single axis. Nothing moves while
// the UI has captured the keyboard.
type MovementSystem struct{}

func (m *MovementSystem) Execute(frame *Frame) {
	in := frame.Input
	if in.UICapture {
		return
	}

	world := frame.World
	step := world.MoveSpeed * float32(frame.DeltaTime)
	pos := &world.Player.Position

	if in.Up {
		pos[1] += step
	}
	if in.Down {
		pos[1] -= step
	}
	if in.Left {
		pos[0] -= step
	}
	if in.Right {
		pos[0] += step
	}
}

// CollisionSystem hides every visible collectible the player overlaps and
// queues the eat sound once per collectible.
type CollisionSystem struct {
	Collected int
}

func (c *CollisionSystem) Execute(frame *Frame) {
	world := frame.World
	for _, item := range world.Collectibles {
		if !item.Visible || !world.overlapsPlayer(item) {
			continue
		}
		if item.Collect() {
			c.Collected++
			frame.Collected = append(frame.Collected, item)
			frame.Effects.PlaySound(world.EatSound)
		}
	}
}

// RenderSystem builds the frame's draw list: background, player, then each
// collectible. Hidden entities get no command at all.
type RenderSystem struct{}

func (r *RenderSystem) Execute(frame *Frame) {
	world := frame.World
	frame.Draws = frame.Draws[:0]

	if world.Background != nil && world.Background.Visible {
		frame.Draws = append(frame.Draws, drawCommandFor(world.Background))
	}
	if world.Player.Visible {
		frame.Draws = append(frame.Draws, drawCommandFor(world.Player))
	}
	for _, item := range world.Collectibles {
		if item.Visible {
			frame.Draws = append(frame.Draws, drawCommandFor(item))
		}
	}
}
