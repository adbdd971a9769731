package identifier

// Direction is the order in which a technical name assembles the concepts of
// its English name.
type Direction int

// Assembly directions. Tables read left to right, columns right to left;
// both are overridable per run for shops with different conventions.
const (
	LeftToRight Direction = iota
	RightToLeft
)

// String returns the configuration spelling of the direction.
func (d Direction) String() string {
	if d == RightToLeft {
		return "right-to-left"
	}
	return "left-to-right"
}

// ParseDirection converts a configuration string to a Direction.
// Returns the direction and true if valid, or LeftToRight and false if not.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left-to-right":
		return LeftToRight, true
	case "right-to-left":
		return RightToLeft, true
	default:
		return LeftToRight, false
	}
}
