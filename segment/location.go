package segment

// Location tags where a shared point lies relative to a segment's own
// directed line.
type Location int

const (
	// BEFORE is before the segment's start, on its line's extension.
	BEFORE Location = iota
	// START is exactly at the segment's start point.
	START
	// BETWEEN is strictly inside the segment, between start and end.
	BETWEEN
	// END is exactly at the segment's end point.
	END
	// AFTER is beyond the segment's end, on its line's extension.
	AFTER
	// LEFT marks two segments that never touch: the other segment runs
	// parallel, offset to the counterclockwise side of this one's
	// direction, or lies on the same line entirely before this one's
	// start.
	LEFT
	// RIGHT is LEFT's mirror: the other segment is parallel, offset to
	// the clockwise side, or lies on the same line entirely beyond this
	// one's end.
	RIGHT
)

func (l Location) String() string {
	switch l {
	case BEFORE:
		return "BEFORE"
	case START:
		return "START"
	case BETWEEN:
		return "BETWEEN"
	case END:
		return "END"
	case AFTER:
		return "AFTER"
	case LEFT:
		return "LEFT"
	case RIGHT:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Contains reports whether loc places the shared point actually on the
// segment (as opposed to on its extension, or off its line entirely).
func Contains(loc Location) bool {
	return loc == START || loc == BETWEEN || loc == END
}
