package win

import "github.com/gogpu/win/backend"

// Key re-exports the backend key identifier for convenience.
type Key = backend.Key

// Keys referenced by the default key regime.
const (
	KeyEscape      = backend.KeyEscape
	KeyPrintScreen = backend.KeyPrintScreen
)

// Kind tags the category of an Event.
type Kind int

const (
	// KindInput tags events originating from raw input devices.
	KindInput Kind = iota + 1
)

// String returns the tag name.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "InputEvent"
	default:
		return "Unknown"
	}
}

// Action describes a key transition in a bus event.
type Action string

// Key transition actions. The strings are part of the wire contract with
// bus consumers.
const (
	ActionKeyPress   Action = "KEY_PRESS"
	ActionKeyRelease Action = "KEY_RELEASE"
)

// Event is the structured input event pushed to a bound bus: one per
// key-down and one per key-up. Action reflects whether the key is
// reported down at dispatch time. Extra is reserved and currently always
// empty.
type Event struct {
	Kind   Kind
	Source *Window
	Key    Key
	Action Action
	Extra  string
}

// Bus receives structured input events from a window. Push is called
// inline from PollEvents; implementations that need decoupling should
// queue internally (see the event package).
type Bus interface {
	Push(ev Event)
}
