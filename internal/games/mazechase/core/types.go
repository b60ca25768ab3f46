// Package core provides the simulation for the maze chase game: actor movement
// against walls, ghost modes, targeting and direction choice.
// This package is UI-agnostic and deterministic.
package core

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/mazechase/internal/core"
)

// CellSize is the number of fixed-point units in one grid cell.
// Speeds are chosen to divide it evenly so actors can line up with corridors.
const CellSize = 240

// Point is a fixed-point position in world units. X grows to the right,
// Y grows downward.
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// CellPoint returns the top-left world position of grid cell (col, row).
func CellPoint(col, row int) Point {
	return Point{X: col * CellSize, Y: row * CellSize}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales both components by n.
func (p Point) Mul(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// Cell returns the grid cell whose area contains most of a cell-sized box
// placed at p.
func (p Point) Cell() (col, row int) {
	return floorDiv(p.X+CellSize/2, CellSize), floorDiv(p.Y+CellSize/2, CellSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// CellBox returns the one-cell bounding box of an actor at p.
func CellBox(p Point) platformcore.Rect {
	return platformcore.NewRect(p.X, p.Y, CellSize, CellSize)
}

// Direction is one of the four movement directions.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in the order used to break ties.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the unit vector for this direction.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirRight:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Arena is the static collision environment shared by every actor:
// the wall set and the outer bounds in world units.
type Arena struct {
	Walls  []platformcore.Rect
	Width  int
	Height int
}

// Blocked reports whether a cell-sized box at p overlaps any wall.
func (a *Arena) Blocked(p Point) bool {
	return platformcore.AnyIntersect(CellBox(p), a.Walls)
}

// Clamp keeps a cell-sized box at p fully inside the arena.
func (a *Arena) Clamp(p Point) Point {
	return Point{
		X: platformcore.Clamp(p.X, 0, max(0, a.Width-CellSize)),
		Y: platformcore.Clamp(p.Y, 0, max(0, a.Height-CellSize)),
	}
}
