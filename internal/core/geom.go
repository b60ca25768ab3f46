// Package core provides the platform types shared by games and front ends.
// It imports nothing outside the standard library so game logic can be
// tested without a terminal.
package core

// Rect is an axis-aligned box. Units are up to the caller: screen cells for
// rendering, fixed-point world units for collision.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports a positive-area overlap. Boxes that only share an edge
// or a corner do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether (x, y) lies inside r, right and bottom edges excluded.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center rounds toward the top-left.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// AnyIntersect reports whether box overlaps any of obstacles.
func AnyIntersect(box Rect, obstacles []Rect) bool {
	for i := range obstacles {
		if box.Intersects(obstacles[i]) {
			return true
		}
	}
	return false
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
