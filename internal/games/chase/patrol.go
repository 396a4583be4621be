package chase

// Patrol moves an actor around a closed loop of waypoints, one tile at a
// time, closing the horizontal gap to the next waypoint before the vertical one.
type Patrol struct {
	waypoints []Point
	next      int
	pos       Point
}

// NewPatrol starts a patrol at start heading for the first waypoint that is
// not start itself.
func NewPatrol(start Point, waypoints []Point) *Patrol {
	p := &Patrol{
		waypoints: append([]Point(nil), waypoints...),
		pos:       start,
	}
	p.skipReached()
	return p
}

// Pos returns the current position.
func (p *Patrol) Pos() Point {
	return p.pos
}

// Target returns the waypoint being approached.
func (p *Patrol) Target() Point {
	if len(p.waypoints) == 0 {
		return p.pos
	}
	return p.waypoints[p.next]
}

// Advance moves one tile toward the target if canEnter allows it, and
// reports whether the actor moved. A blocked actor waits in place.
func (p *Patrol) Advance(canEnter func(Point) bool) bool {
	if len(p.waypoints) == 0 {
		return false
	}

	target := p.Target()
	step := p.pos
	switch {
	case target.X != p.pos.X:
		step = p.pos.Step(sign(target.X-p.pos.X), 0)
	case target.Y != p.pos.Y:
		step = p.pos.Step(0, sign(target.Y-p.pos.Y))
	}
	if step == p.pos || !canEnter(step) {
		return false
	}

	p.pos = step
	p.skipReached()
	return true
}

// skipReached moves the target past every waypoint equal to the position.
func (p *Patrol) skipReached() {
	for range p.waypoints {
		if p.waypoints[p.next] != p.pos {
			return
		}
		p.next = (p.next + 1) % len(p.waypoints)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
