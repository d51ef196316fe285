package button

// State is the button's animation state. Exactly one is active at a time.
type State int

// The state machine: Idle <-> Dragging on grab/release; Dragging ->
// Exploding past the snap limit; Exploding -> Regenerating after a fixed
// delay; Regenerating -> Idle when regrowth completes.
const (
	StateIdle State = iota
	StateDragging
	StateExploding
	StateRegenerating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateExploding:
		return "exploding"
	case StateRegenerating:
		return "regenerating"
	default:
		return "unknown"
	}
}
