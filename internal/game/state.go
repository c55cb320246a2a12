// Package game implements the Light Up (Akari) puzzle engine: the grid
// state model, the deductive solver, the puzzle generator and the move and
// descriptor codecs. The package is UI-agnostic and deterministic; all
// randomness comes in through an explicit rng.Rand.
package game

import "fmt"

// Flags is the per-cell flag word.
type Flags uint8

const (
	// FlagBlack marks a wall cell. Cells without it are white.
	FlagBlack Flags = 1 << iota
	// FlagNumbered marks a black cell carrying a clue number.
	FlagNumbered
	// FlagNumberUsed is solver scratch: the clue contributed to a deduction.
	FlagNumberUsed
	// FlagImpossible forbids a light on a white cell.
	FlagImpossible
	// FlagLight marks a placed light.
	FlagLight
	// FlagMark is generator scratch.
	FlagMark
)

// State is a full puzzle position. The lights plane holds, for white cells,
// the number of placed lights currently illuminating the cell (itself
// included); for numbered black cells it holds the clue.
//
// The planes are unexported so that every FlagLight change is forced
// through setLight, which keeps the illumination counts exact.
type State struct {
	W, H   int
	flags  []Flags
	lights []int

	// NLights is the number of lights currently on the board.
	NLights int

	// Completed latches true once the grid is fully correct.
	Completed bool
	// UsedSolve latches true once a solver stamp move is applied.
	UsedSolve bool
}

// newState allocates an empty state of the parameter dimensions.
func newState(p Params) *State {
	return &State{
		W:      p.Width,
		H:      p.Height,
		flags:  make([]Flags, p.Width*p.Height),
		lights: make([]int, p.Width*p.Height),
	}
}

func (s *State) idx(x, y int) int { return y*s.W + x }

// InBounds reports whether (x, y) is on the board.
func (s *State) InBounds(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Flag returns the flag word at (x, y).
func (s *State) Flag(x, y int) Flags { return s.flags[s.idx(x, y)] }

// LitCount returns the illumination count of a white cell, or the clue of a
// numbered black cell.
func (s *State) LitCount(x, y int) int { return s.lights[s.idx(x, y)] }

// IsBlack reports whether (x, y) is a wall.
func (s *State) IsBlack(x, y int) bool { return s.flags[s.idx(x, y)]&FlagBlack != 0 }

// IsLight reports whether a light is placed at (x, y).
func (s *State) IsLight(x, y int) bool { return s.flags[s.idx(x, y)]&FlagLight != 0 }

// IsImpossible reports whether (x, y) carries a no-light mark.
func (s *State) IsImpossible(x, y int) bool { return s.flags[s.idx(x, y)]&FlagImpossible != 0 }

// Clone returns a deep copy; the copy owns its own planes.
func (s *State) Clone() *State {
	flags := make([]Flags, len(s.flags))
	copy(flags, s.flags)
	lights := make([]int, len(s.lights))
	copy(lights, s.lights)
	return &State{
		W: s.W, H: s.H,
		flags:     flags,
		lights:    lights,
		NLights:   s.NLights,
		Completed: s.Completed,
		UsedSolve: s.UsedSolve,
	}
}

// copyPlanesFrom overwrites the board planes with those of other, which
// must have the same dimensions. Latches are left alone.
func (s *State) copyPlanesFrom(other *State) {
	copy(s.flags, other.flags)
	copy(s.lights, other.lights)
	s.NLights = other.NLights
}

// clean resets the board. With keepBlacks, the wall layout survives and
// everything else (numbers, lights, marks) is wiped.
func (s *State) clean(keepBlacks bool) {
	for i := range s.flags {
		if keepBlacks {
			s.flags[i] &= FlagBlack
		} else {
			s.flags[i] = 0
		}
		s.lights[i] = 0
	}
	s.NLights = 0
}

// lightRay is the horizontal/vertical run of white cells visible from an
// origin: the cells a light there would illuminate, which are exactly the
// cells a light could illuminate the origin from.
type lightRay struct {
	ox, oy                 int
	minX, maxX, minY, maxY int
	includeOrigin          bool
}

// rayFrom walks outward from (ox, oy) in all four directions until a black
// cell or the boundary stops it. The black cell itself is excluded.
func (s *State) rayFrom(ox, oy int, includeOrigin bool) lightRay {
	r := lightRay{
		ox: ox, oy: oy,
		minX: ox, maxX: ox, minY: oy, maxY: oy,
		includeOrigin: includeOrigin,
	}
	for x := ox - 1; x >= 0 && !s.IsBlack(x, oy); x-- {
		r.minX = x
	}
	for x := ox + 1; x < s.W && !s.IsBlack(x, oy); x++ {
		r.maxX = x
	}
	for y := oy - 1; y >= 0 && !s.IsBlack(ox, y); y-- {
		r.minY = y
	}
	for y := oy + 1; y < s.H && !s.IsBlack(ox, y); y++ {
		r.maxY = y
	}
	return r
}

// visit calls fn for every cell on the ray exactly once: first the row
// segment (origin always skipped), then the column segment with the origin
// included only if the ray was built with includeOrigin. Returns true as
// soon as fn does.
func (r lightRay) visit(fn func(x, y int) bool) bool {
	for x := r.minX; x <= r.maxX; x++ {
		if x == r.ox {
			continue
		}
		if fn(x, r.oy) {
			return true
		}
	}
	for y := r.minY; y <= r.maxY; y++ {
		if !r.includeOrigin && y == r.oy {
			continue
		}
		if fn(r.ox, y) {
			return true
		}
	}
	return false
}

// each is visit without early exit.
func (r lightRay) each(fn func(x, y int)) {
	r.visit(func(x, y int) bool {
		fn(x, y)
		return false
	})
}

// neighbor is one cell of a 4-neighbourhood, with a scratch mark used by
// the number rule.
type neighbor struct {
	x, y int
	mark bool
}

// neighbors returns the edge-clipped 4-neighbourhood of (x, y) in the fixed
// order left, right, up, down.
func (s *State) neighbors(x, y int) []neighbor {
	if !s.InBounds(x, y) {
		panic(fmt.Sprintf("game: neighbors out of bounds (%d,%d)", x, y))
	}
	pts := make([]neighbor, 0, 4)
	if x > 0 {
		pts = append(pts, neighbor{x: x - 1, y: y})
	}
	if x < s.W-1 {
		pts = append(pts, neighbor{x: x + 1, y: y})
	}
	if y > 0 {
		pts = append(pts, neighbor{x: x, y: y - 1})
	}
	if y < s.H-1 {
		pts = append(pts, neighbor{x: x, y: y + 1})
	}
	return pts
}

// setLight makes the light at (ox, oy) match on, updating the illumination
// count of every visible cell. This is the only place FlagLight may change.
func (s *State) setLight(ox, oy int, on bool) {
	if s.IsBlack(ox, oy) {
		panic(fmt.Sprintf("game: setLight on black cell (%d,%d)", ox, oy))
	}

	i := s.idx(ox, oy)
	diff := 0
	if !on && s.flags[i]&FlagLight != 0 {
		diff = -1
		s.flags[i] &^= FlagLight
		s.NLights--
	} else if on && s.flags[i]&FlagLight == 0 {
		diff = 1
		s.flags[i] |= FlagLight
		s.NLights++
	}
	if diff == 0 {
		return
	}

	s.rayFrom(ox, oy, true).each(func(x, y int) {
		s.lights[s.idx(x, y)] += diff
	})
}
