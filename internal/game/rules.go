package game

import "fmt"

// Status codes returned by (*State).Status.
const (
	StatusUnsolvable = -1
	StatusInProgress = 0
	StatusSolved     = 1
)

// allLit reports whether every white cell is illuminated.
func (s *State) allLit() bool {
	for i, f := range s.flags {
		if f&FlagBlack != 0 {
			continue
		}
		if s.lights[i] == 0 {
			return false
		}
	}
	return true
}

// hasOverlap reports whether any light is illuminated by another light.
func (s *State) hasOverlap() bool {
	for i, f := range s.flags {
		if f&FlagLight == 0 {
			continue
		}
		if s.lights[i] > 1 {
			return true
		}
	}
	return false
}

// numberCorrect reports whether the clue at (x, y) is met exactly.
func (s *State) numberCorrect(x, y int) bool {
	if s.Flag(x, y)&FlagNumbered == 0 {
		panic(fmt.Sprintf("game: numberCorrect on unnumbered cell (%d,%d)", x, y))
	}
	n := 0
	for _, pt := range s.neighbors(x, y) {
		if s.Flag(pt.x, pt.y)&FlagLight != 0 {
			n++
		}
	}
	return n == s.LitCount(x, y)
}

// numbersSatisfied reports whether every clue is met exactly.
func (s *State) numbersSatisfied() bool {
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if s.Flag(x, y)&FlagNumbered == 0 {
				continue
			}
			if !s.numberCorrect(x, y) {
				return false
			}
		}
	}
	return true
}

// IsCorrect reports whether the position is a finished solution: all lit,
// no overlaps, every clue satisfied.
func (s *State) IsCorrect() bool {
	return s.allLit() && !s.hasOverlap() && s.numbersSatisfied()
}

// NumberWrong is a display hint: the clue at (x, y) is provably violated.
// That means either too many lights already surround it, or the clue could
// not be met even if every remaining candidate neighbour (not black, not
// lit, not marked impossible, not holding a light) gained a light.
func (s *State) NumberWrong(x, y int) bool {
	if s.Flag(x, y)&FlagNumbered == 0 {
		panic(fmt.Sprintf("game: NumberWrong on unnumbered cell (%d,%d)", x, y))
	}
	clue := s.LitCount(x, y)
	placed, empty := 0, 0
	for _, pt := range s.neighbors(x, y) {
		f := s.Flag(pt.x, pt.y)
		switch {
		case f&FlagLight != 0:
			placed++
		case f&FlagBlack != 0:
		case f&FlagImpossible != 0:
		case s.LitCount(pt.x, pt.y) > 0:
		default:
			empty++
		}
	}
	return placed > clue || placed+empty < clue
}

// Status classifies the position: solved once correct, unsolvable when an
// overlap exists or a clue already has more lights around it than its
// number, in progress otherwise.
func (s *State) Status() int {
	if s.Completed || s.IsCorrect() {
		return StatusSolved
	}
	if s.hasOverlap() {
		return StatusUnsolvable
	}
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if s.Flag(x, y)&FlagNumbered == 0 {
				continue
			}
			placed := 0
			for _, pt := range s.neighbors(x, y) {
				if s.Flag(pt.x, pt.y)&FlagLight != 0 {
					placed++
				}
			}
			if placed > s.LitCount(x, y) {
				return StatusUnsolvable
			}
		}
	}
	return StatusInProgress
}
