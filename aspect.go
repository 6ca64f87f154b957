package win

import "fmt"

// Aspect names a fixed width:height ratio used for aspect-derived sizing:
// the caller supplies a height and the width is computed from the ratio
// with integer truncation.
type Aspect int

// Supported aspect ratios.
const (
	// Aspect1x1 is a square window: width = height.
	Aspect1x1 Aspect = iota

	// Aspect4x3 computes width = height * 4 / 3.
	Aspect4x3

	// Aspect16x9 computes width = height * 16 / 9.
	Aspect16x9
)

// String returns the ratio in "W:H" form.
func (a Aspect) String() string {
	switch a {
	case Aspect1x1:
		return "1:1"
	case Aspect4x3:
		return "4:3"
	case Aspect16x9:
		return "16:9"
	default:
		return fmt.Sprintf("Aspect(%d)", int(a))
	}
}

// width derives the window width for the given height.
// Unrecognized aspects fail with ErrUnknownAspect.
func (a Aspect) width(height int) (int, error) {
	switch a {
	case Aspect1x1:
		return height, nil
	case Aspect4x3:
		return height * 4 / 3, nil
	case Aspect16x9:
		return height * 16 / 9, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownAspect, a)
	}
}

// ParseAspect converts a "W:H" string (as found in config files) into an
// Aspect. Returns ErrUnknownAspect for anything else.
func ParseAspect(s string) (Aspect, error) {
	switch s {
	case "1:1":
		return Aspect1x1, nil
	case "4:3":
		return Aspect4x3, nil
	case "16:9":
		return Aspect16x9, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAspect, s)
	}
}
