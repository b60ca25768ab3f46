// Package levels turns the static maze layout into collision geometry.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"

	platformcore "github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
)

// Layout runes.
const (
	RuneWall   = '#'
	RuneDot    = '.'
	RuneEmpty  = ' '
	RuneGate   = '-'
	RunePlayer = 'P'
	RuneBlinky = 'B'
	RunePinky  = 'K'
	RuneInky   = 'I'
	RuneClyde  = 'C'
)

// DotSize is the side of a dot's hitbox in world units, centered in its cell.
const DotSize = core.CellSize / 5

var ghostRunes = map[rune]core.Personality{
	RuneBlinky: core.Blinky,
	RunePinky:  core.Pinky,
	RuneInky:   core.Inky,
	RuneClyde:  core.Clyde,
}

var standard = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"######.##     B    ##.######",
	"######.## ###--### ##.######",
	"######.   #K I C #   .######",
	"######.## ######## ##.######",
	"######.##          ##.######",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#...##.......P........##...#",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// Standard returns a copy of the built-in maze layout.
func Standard() []string {
	out := make([]string, len(standard))
	copy(out, standard)
	return out
}

// Build converts layout rows into a maze. Rows may differ in length; the
// arena is as wide as the longest row. Every layout needs exactly one player
// spawn and one spawn per ghost.
func Build(rows []string, dotPoints int) (core.Maze, error) {
	if len(rows) == 0 {
		return core.Maze{}, fmt.Errorf("levels: empty layout")
	}

	m := core.Maze{Rows: len(rows)}
	havePlayer := false
	var haveGhost [core.PersonalityCount]bool

	for row, line := range rows {
		col := 0
		for _, ch := range line {
			pos := core.CellPoint(col, row)

			switch ch {
			case RuneWall:
				m.Walls = append(m.Walls, core.CellBox(pos))
			case RuneDot:
				m.Dots = append(m.Dots, newDot(col, row, dotPoints))
			case RuneEmpty:
			case RuneGate:
				m.Gates = append(m.Gates, pos)
			case RunePlayer:
				if havePlayer {
					return core.Maze{}, fmt.Errorf("levels: duplicate player spawn at row %d col %d", row, col)
				}
				havePlayer = true
				m.PlayerSpawn = pos
			default:
				p, ok := ghostRunes[ch]
				if !ok {
					return core.Maze{}, fmt.Errorf("levels: unknown rune %q at row %d col %d", ch, row, col)
				}
				if haveGhost[p] {
					return core.Maze{}, fmt.Errorf("levels: duplicate %s spawn at row %d col %d", p, row, col)
				}
				haveGhost[p] = true
				m.GhostSpawns[p] = pos
			}
			col++
		}
		m.Cols = max(m.Cols, col)
	}

	if !havePlayer {
		return core.Maze{}, fmt.Errorf("levels: layout has no player spawn")
	}
	for _, p := range core.Personalities {
		if !haveGhost[p] {
			return core.Maze{}, fmt.Errorf("levels: layout has no %s spawn", p)
		}
	}

	return m, nil
}

// newDot places a small dot hitbox centered in its cell.
func newDot(col, row, points int) core.Dot {
	origin := core.CellPoint(col, row)
	inset := (core.CellSize - DotSize) / 2
	return core.Dot{
		Col:    col,
		Row:    row,
		Box:    platformcore.NewRect(origin.X+inset, origin.Y+inset, DotSize, DotSize),
		Points: points,
	}
}
