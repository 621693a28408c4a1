package physics

// Wall identifies the arena boundary a body was reflected from.
type Wall uint8

const (
	NoWall Wall = iota
	RightWall
	LeftWall
	BottomWall
	TopWall
)

func (w Wall) String() string {
	switch w {
	case RightWall:
		return "right"
	case LeftWall:
		return "left"
	case BottomWall:
		return "bottom"
	case TopWall:
		return "top"
	default:
		return "none"
	}
}

// ReflectWall checks m against the walls in the order right, left, bottom,
// top and corrects the first violation only: the offending velocity
// component is negated and the position clamped onto the boundary.
func ReflectWall(m *Motion, r float64, a Arena) Wall {
	switch {
	case m.Position.X+r > a.Width:
		m.Velocity.X = -m.Velocity.X
		m.Position.X = a.Width - r
		return RightWall
	case m.Position.X-r < 0:
		m.Velocity.X = -m.Velocity.X
		m.Position.X = r
		return LeftWall
	case m.Position.Y+r > a.Height:
		m.Velocity.Y = -m.Velocity.Y
		m.Position.Y = a.Height - r
		return BottomWall
	case m.Position.Y-r < 0:
		m.Velocity.Y = -m.Velocity.Y
		m.Position.Y = r
		return TopWall
	}
	return NoWall
}

// ResolveWalls applies ReflectWall to every staged motion and returns the
// number of bodies that hit a wall.
func ResolveWalls(bodies []Body, stage Stage, a Arena) int {
	hits := 0
	for i, b := range bodies {
		if ReflectWall(&stage[i], b.radius, a) != NoWall {
			hits++
		}
	}
	return hits
}
