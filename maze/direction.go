package maze

import (
	"errors"
	"fmt"
)

// Direction identifies one of the four orthogonal moves on a maze grid.
type Direction int

// Direction constants, declared in canonical expansion order.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// ErrUnknownDirection is returned when a direction name or value is not one
// of the four orthogonal moves.
var ErrUnknownDirection = errors.New("unknown direction")

// AllDirections returns the four directions in canonical order: Up, Down,
// Left, Right. Pathfinding expands neighbors in exactly this order.
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// Delta returns the coordinate change of a single step in the direction.
// Y grows downward, so Up is (0, -1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// IsValid returns true if the direction is one of the four orthogonal moves.
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// String returns the canonical wire name of the direction: "UP", "DOWN",
// "LEFT" or "RIGHT".
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection maps a wire name back to its Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "UP":
		return Up, nil
	case "DOWN":
		return Down, nil
	case "LEFT":
		return Left, nil
	case "RIGHT":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// MarshalText encodes the direction as its wire name, so move sequences
// serialize as plain string arrays.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a wire name into the direction.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
