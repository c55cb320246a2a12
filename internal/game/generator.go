package game

import (
	"github.com/vovakirdan/lightup/internal/rng"
)

// The generator builds the most complex grid it can while honouring two
// restrictions: the puzzle must have a unique solution, and it must match
// the requested difficulty (no guessing needed for easy, at least one guess
// needed for hard).
//
// The solver tracks which clues it actually used, so an initial batch of
// unused clues comes off for free; after that every remaining clue is
// removed one at a time in a random order and restored if the puzzle stops
// being good. If a hard puzzle was requested and the hardest grid we could
// reach is still non-recursive, the layout is thrown away.

// maxGridgenTries is the attempt budget per black-percentage level.
const maxGridgenTries = 20

// GenStats describes how a puzzle came out of the generator.
type GenStats struct {
	// Layouts is the number of black layouts tried.
	Layouts int
	// BlackPercent is the percentage actually used (inflated on retry).
	BlackPercent int
	// MaxDepth is the deepest branching level the final validation needed.
	MaxDepth int
	// Clues is the number of clues left on the board.
	Clues int
}

// setBlacks clears the board and lays out a fresh symmetric black pattern.
func (s *State) setBlacks(p Params, rs *rng.Rand) {
	degree, rotate := 1, false
	switch p.Symm {
	case SymmNone:
	case SymmRot2:
		degree, rotate = 2, true
	case SymmMirror2:
		degree = 2
	case SymmRot4:
		degree, rotate = 4, true
	case SymmMirror4:
		degree = 4
	default:
		panic("game: unknown symmetry type")
	}
	if p.Symm == SymmRot4 && s.W != s.H {
		panic("game: 4-fold symmetry unavailable without square grid")
	}

	wodd, hodd := s.W%2, s.H%2

	// The fundamental region the symmetry expands from.
	var rw, rh int
	switch degree {
	case 4:
		rw = s.W / 2
		rh = s.H / 2
		if !rotate {
			rw += wodd
		}
		rh += hodd
	case 2:
		rw = s.W
		rh = s.H/2 + hodd
	default:
		rw = s.W
		rh = s.H
	}

	s.clean(false)
	nblack := rw * rh * p.BlackPercent / 100
	for i := 0; i < nblack; i++ {
		var x, y int
		for {
			x = rs.UpTo(rw)
			y = rs.UpTo(rh)
			if s.Flag(x, y)&FlagBlack == 0 {
				break
			}
		}
		s.flags[s.idx(x, y)] |= FlagBlack
	}

	if p.Symm == SymmNone {
		return
	}

	// Replicate the region across the rest of the grid.
	var xs, ys [4]int
	for x := 0; x < rw; x++ {
		for y := 0; y < rh; y++ {
			if degree == 4 {
				xs[0], ys[0] = x, y
				if rotate {
					xs[1], ys[1] = s.W-1-y, x
					xs[2], ys[2] = s.W-1-x, s.H-1-y
					xs[3], ys[3] = y, s.H-1-x
				} else {
					xs[1], ys[1] = s.W-1-x, y
					xs[2], ys[2] = x, s.H-1-y
					xs[3], ys[3] = s.W-1-x, s.H-1-y
				}
			} else {
				xs[0], ys[0] = x, y
				if rotate {
					xs[1], ys[1] = s.W-1-x, s.H-1-y
				} else {
					xs[1], ys[1] = x, s.H-1-y
				}
			}
			for i := 1; i < degree; i++ {
				s.flags[s.idx(xs[i], ys[i])] = s.Flag(xs[0], ys[0])
			}
		}
	}

	// Four-fold rotation never touches the centre cell of an odd grid;
	// give it an independent chance so it isn't under-represented.
	if degree == 4 && rotate && wodd == 1 && rs.UpTo(100) <= p.BlackPercent {
		s.flags[s.idx(s.W/2+wodd-1, s.H/2+hodd-1)] |= FlagBlack
	}
}

// removalWouldDarken reports whether taking away the light at (x, y) would
// leave some cell with no illumination at all.
func (s *State) removalWouldDarken(x, y int) bool {
	return s.rayFrom(x, y, true).visit(func(lx, ly int) bool {
		return s.LitCount(lx, ly) == 1
	})
}

// placeLights sets up a random correct position: every white cell lit and
// no light lit by another. It fills the board with lights and then strips
// groups of mutually visible lights wherever removal keeps everything lit.
func (s *State) placeLights(rs *rng.Rand) {
	wh := s.W * s.H
	order := make([]int, wh)
	for i := range order {
		order[i] = i
	}
	rs.Shuffle(wh, func(i, j int) { order[i], order[j] = order[j], order[i] })

	for x := 0; x < s.W; x++ {
		for y := 0; y < s.H; y++ {
			s.flags[s.idx(x, y)] &^= FlagMark // reused below
			if s.IsBlack(x, y) {
				continue
			}
			s.setLight(x, y, true)
		}
	}

	// Degenerate layouts (every white cell isolated, or no white cells at
	// all) are already a valid solution after the fill.
	if !s.hasOverlap() {
		return
	}

	for _, i := range order {
		x, y := i%s.W, i/s.W
		if !s.IsLight(x, y) || s.Flag(x, y)&FlagMark != 0 {
			continue
		}
		ray := s.rayFrom(x, y, false)

		// Nothing to remove if this light sees no other lights.
		n := 0
		ray.each(func(lx, ly int) {
			if s.IsLight(lx, ly) {
				n++
			}
		})
		if n == 0 {
			continue
		}

		// Remove the whole visible group only if no removal darkens a cell.
		n = 0
		ray.each(func(lx, ly int) {
			if s.IsLight(lx, ly) && s.removalWouldDarken(lx, ly) {
				n++
			}
		})
		if n == 0 {
			ray.each(func(lx, ly int) {
				if s.IsLight(lx, ly) {
					s.setLight(lx, ly, false)
				}
			})
			s.flags[s.idx(x, y)] |= FlagMark
		}

		if !s.hasOverlap() {
			return
		}
		if !s.allLit() {
			panic("game: placeLights left a cell dark")
		}
	}
	panic("game: placeLights removed every light with overlaps remaining")
}

// placeNumbers writes into every black cell the count of adjacent lights.
func (s *State) placeNumbers() {
	for x := 0; x < s.W; x++ {
		for y := 0; y < s.H; y++ {
			if !s.IsBlack(x, y) {
				continue
			}
			n := 0
			for _, pt := range s.neighbors(x, y) {
				if s.Flag(pt.x, pt.y)&FlagLight != 0 {
					n++
				}
			}
			s.flags[s.idx(x, y)] |= FlagNumbered
			s.lights[s.idx(x, y)] = n
		}
	}
}

// stripUnusedNumbers removes every clue the last solve never touched,
// returning how many came off.
func (s *State) stripUnusedNumbers() int {
	n := 0
	for i, f := range s.flags {
		if f&FlagNumbered != 0 && f&FlagNumberUsed == 0 {
			s.flags[i] &^= FlagNumbered
			s.lights[i] = 0
			n++
		}
	}
	return n
}

// unplaceLights removes all lights, impossible marks and solver scratch,
// leaving the candidate puzzle (blacks plus clues).
func (s *State) unplaceLights() {
	for x := 0; x < s.W; x++ {
		for y := 0; y < s.H; y++ {
			if s.IsLight(x, y) {
				s.setLight(x, y, false)
			}
			s.flags[s.idx(x, y)] &^= FlagImpossible | FlagNumberUsed
		}
	}
}

// puzzleIsGood clears the board of lights and checks the puzzle solves
// uniquely at the requested difficulty.
func (s *State) puzzleIsGood(p Params, mdepth *int) bool {
	*mdepth = 0
	s.unplaceLights()
	nsol := s.Solve(p.Hard, true, mdepth)
	if !p.Hard && *mdepth > 0 {
		// Wanted an easy puzzle but needed recursion.
		return false
	}
	return nsol == 1
}

// countClues returns the number of numbered cells.
func (s *State) countClues() int {
	n := 0
	for _, f := range s.flags {
		if f&FlagNumbered != 0 {
			n++
		}
	}
	return n
}

// NewDesc generates a puzzle for the parameters and returns its descriptor
// along with generation statistics. The puzzle is guaranteed to have
// exactly one solution and to match the requested difficulty; the black
// percentage inflates by 5 whenever a whole batch of layouts fails.
func NewDesc(p Params, rs *rng.Rand) (string, GenStats) {
	st := newState(p)
	wh := p.Width * p.Height
	var stats GenStats

	// One shuffled clue-removal order for the whole run; re-shuffling
	// between attempts would tie the output to the attempt count.
	order := make([]int, wh)
	for i := range order {
		order[i] = i
	}
	rs.Shuffle(wh, func(i, j int) { order[i], order[j] = order[j], order[i] })

	mdepth := 0
	for {
		for try := 0; try < maxGridgenTries; try++ {
			stats.Layouts++
			st.setBlacks(p, rs)
			st.placeLights(rs)
			st.placeNumbers()
			if !st.puzzleIsGood(p, &mdepth) {
				continue
			}

			// Clues the solver never consulted come off in one batch,
			// provided the stripped puzzle is still good.
			scopy := st.Clone()
			scopy.stripUnusedNumbers()
			if scopy.puzzleIsGood(p, &mdepth) {
				st = scopy
			}

			// Then take off every clue we can, one at a time.
			for _, i := range order {
				x, y := i%p.Width, i/p.Width
				if st.Flag(x, y)&FlagNumbered == 0 {
					continue
				}
				num := st.LitCount(x, y)
				st.lights[st.idx(x, y)] = 0
				st.flags[st.idx(x, y)] &^= FlagNumbered
				if !st.puzzleIsGood(p, &mdepth) {
					st.lights[st.idx(x, y)] = num
					st.flags[st.idx(x, y)] |= FlagNumbered
				}
			}

			// Re-validate to recover the final recursion depth.
			if !st.puzzleIsGood(p, &mdepth) {
				panic("game: final puzzle no longer good")
			}
			if p.Hard && mdepth == 0 {
				// Hardest reachable puzzle is still non-recursive.
				continue
			}

			stats.BlackPercent = p.BlackPercent
			stats.MaxDepth = mdepth
			stats.Clues = st.countClues()
			return encodeDesc(st), stats
		}

		// A whole batch failed; thicken the walls and go again.
		if p.BlackPercent < 90 {
			p.BlackPercent += 5
		}
	}
}
