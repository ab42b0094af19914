// Package scene drives the dog-and-cookies scene one tick at a time: it moves
// the player from input, collects the cookies it touches and builds the draw
// list for the frame.
package scene

// State is the lifecycle state of a Loop.
type State int

const (
	// Running is the steady state while the window is open.
	Running State = iota
	// Terminating is entered once when the window closes. No ticks run after it.
	Terminating
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Terminating:
		return "Terminating"
	default:
		return "Unknown"
	}
}

// Input is one tick's sample of the input devices.
type Input struct {
	Up, Down, Left, Right bool

	// UICapture is set when the debug UI owns the keyboard for this tick.
	UICapture bool

	// Close is set when the window has been asked to close.
	Close bool
}

// Next returns the state that follows s after a tick with the given input.
// Terminating is final.
func (s State) Next(in Input) State {
	if s == Running && in.Close {
		return Terminating
	}
	return s
}
