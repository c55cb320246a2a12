package game

import (
	"errors"
	"fmt"
	"strings"
)

// Move grammar: ';'-separated commands.
//
//	S      solver stamp; latches UsedSolve
//	Lx,y   toggle the light at (x, y)
//	Ix,y   toggle the impossible mark at (x, y)
//
// A malformed move leaves the input state untouched and yields no state.

// ErrBadMove is returned for any move that cannot be applied.
var ErrBadMove = errors.New("game: invalid move")

// parseCoords reads "x,y" off the front of s, returning the coordinates
// and the remainder.
func parseCoords(s string) (x, y int, rest string, ok bool) {
	var r string
	x, r = eatNum(s)
	if len(r) == len(s) || !strings.HasPrefix(r, ",") {
		return 0, 0, "", false
	}
	after := r[1:]
	y, rest = eatNum(after)
	if len(rest) == len(after) {
		return 0, 0, "", false
	}
	return x, y, rest, true
}

// ExecuteMove applies a move string to a state, returning the resulting
// state. The input is never mutated; on any parse failure or illegal
// command the whole move is rejected.
func ExecuteMove(s *State, move string) (*State, error) {
	if move == "" {
		return nil, ErrBadMove
	}

	ret := s.Clone()
	for move != "" {
		c := move[0]
		switch c {
		case 'S':
			ret.UsedSolve = true
			move = move[1:]
		case 'L', 'I':
			x, y, rest, ok := parseCoords(move[1:])
			if !ok || !ret.InBounds(x, y) {
				return nil, ErrBadMove
			}
			if ret.IsBlack(x, y) {
				return nil, fmt.Errorf("%w: cell (%d,%d) is black", ErrBadMove, x, y)
			}
			i := ret.idx(x, y)
			if c == 'L' {
				// Light and impossible are mutually exclusive.
				wasLight := ret.flags[i]&FlagLight != 0
				ret.flags[i] &^= FlagImpossible
				ret.setLight(x, y, !wasLight)
			} else {
				ret.setLight(x, y, false)
				ret.flags[i] ^= FlagImpossible
			}
			move = rest
		default:
			return nil, ErrBadMove
		}

		if strings.HasPrefix(move, ";") {
			move = move[1:]
		} else if move != "" {
			return nil, ErrBadMove
		}
	}

	if ret.IsCorrect() {
		ret.Completed = true
	}
	return ret, nil
}

// SolveMove produces the move string that carries the current state to a
// solved one: a solver stamp followed by one L or I command per cell whose
// flags differ. It prefers solving onward from the player's position and
// falls back to the pristine puzzle.
func SolveMove(original, current *State) (string, error) {
	// Non-unique puzzles are fine here; if the player typed one in
	// themselves they presumably don't mind which answer they get.
	solved := current.Clone()
	if solved.Solve(true, false, nil) <= 0 {
		solved = original.Clone()
		if solved.Solve(true, false, nil) <= 0 {
			return "", errors.New("game: puzzle is not self-consistent")
		}
	}

	var b strings.Builder
	b.WriteByte('S')
	for x := 0; x < current.W; x++ {
		for y := 0; y < current.H; y++ {
			of := current.Flag(x, y)
			sf := solved.Flag(x, y)
			if of&FlagLight != sf&FlagLight {
				fmt.Fprintf(&b, ";L%d,%d", x, y)
			} else if of&FlagImpossible != sf&FlagImpossible {
				fmt.Fprintf(&b, ";I%d,%d", x, y)
			}
		}
	}
	return b.String(), nil
}
