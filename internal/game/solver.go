package game

// The solver combines two propagation rules with bounded backtracking:
//
//   - unlit-cell rule: an unlit white cell with exactly one remaining
//     position that could light it forces a light there;
//   - number rule: a clue whose placed lights already meet it forbids the
//     remaining neighbours, and a clue that needs every remaining
//     candidate fills them all.
//
// When neither rule fires it guesses at the cell that would light the most
// currently-dark cells, trying "forbidden" and "lit" on separate copies.

// maxRecurse bounds the guessing depth.
const maxRecurse = 5

// couldPlaceLight reports whether a cell with the given flag word and
// illumination count can still legally host a light. A cell lit from
// elsewhere is excluded: lighting it would necessarily overlap.
func couldPlaceLight(f Flags, lit int) bool {
	if f&(FlagBlack|FlagImpossible) != 0 {
		return false
	}
	return lit == 0
}

// trySolveLight applies the unlit-cell rule at (x, y). Returns true if it
// placed a light.
func (s *State) trySolveLight(x, y int, f Flags, lit int) bool {
	if lit > 0 || f&FlagBlack != 0 {
		return false
	}

	// Count the remaining positions that could light this cell; they are,
	// of course, the cells a light here would illuminate.
	var cx, cy, n int
	s.rayFrom(x, y, true).each(func(lx, ly int) {
		if s.Flag(lx, ly)&FlagImpossible != 0 {
			return
		}
		if s.LitCount(lx, ly) > 0 {
			return
		}
		cx, cy = lx, ly
		n++
	})
	if n == 1 {
		s.setLight(cx, cy, true)
		return true
	}
	return false
}

// trySolveNumber applies the number rule at (x, y). Returns true if it
// changed anything.
func (s *State) trySolveNumber(x, y int, f Flags) bool {
	if f&FlagNumbered == 0 {
		return false
	}

	need := s.LitCount(x, y)
	pts := s.neighbors(x, y)
	spaces := len(pts)
	for i := range pts {
		nf := s.Flag(pts[i].x, pts[i].y)
		nl := s.LitCount(pts[i].x, pts[i].y)
		if nf&FlagLight != 0 {
			// A light already here: one less to place, one less place.
			need--
			spaces--
			pts[i].mark = true
		} else if !couldPlaceLight(nf, nl) {
			spaces--
			pts[i].mark = true
		}
	}
	if spaces == 0 {
		return false
	}

	changed := false
	switch {
	case need == 0:
		// The clue is met; every unmarked neighbour is impossible.
		s.flags[s.idx(x, y)] |= FlagNumberUsed
		for _, pt := range pts {
			if !pt.mark {
				s.flags[s.idx(pt.x, pt.y)] |= FlagImpossible
				changed = true
			}
		}
	case need == spaces:
		// Exactly as many lights left as places; fill them all.
		s.flags[s.idx(x, y)] |= FlagNumberUsed
		for _, pt := range pts {
			if !pt.mark {
				s.setLight(pt.x, pt.y, true)
				changed = true
			}
		}
	}
	return changed
}

// solveSub runs propagation to a fixed point, then branches. It returns the
// number of solutions found (0 none, -1 gave up within the recursion
// budget); on a positive return the receiver's planes hold a solved
// position. maxDepth, if non-nil, records the deepest level reached.
func (s *State) solveSub(forceUnique bool, maxRecurse, depth int, maxDepth *int) int {
	if maxDepth != nil && *maxDepth < depth {
		*maxDepth = depth
	}

	for {
		if s.hasOverlap() {
			// From scratch the solver never creates an overlap on a
			// soluble grid, but a half-completed incorrect position can
			// hand us one.
			return 0
		}
		if s.IsCorrect() {
			return 1
		}

		// The two scans below are the hot loops; any optimisation work
		// belongs here first.
		canPlace := 0
		didStuff := false
		for x := 0; x < s.W; x++ {
			for y := 0; y < s.H; y++ {
				f := s.Flag(x, y)
				lit := s.LitCount(x, y)
				if couldPlaceLight(f, lit) {
					canPlace++
				}
				if s.trySolveLight(x, y, f, lit) {
					didStuff = true
				}
				if s.trySolveNumber(x, y, f) {
					didStuff = true
				}
			}
		}
		if didStuff {
			continue
		}
		if canPlace == 0 {
			return 0
		}

		if depth >= maxRecurse {
			return -1
		}

		// Guess at the placeable cell that would light the most
		// currently-dark cells.
		bestN, bestX, bestY := 0, -1, -1
		for y := 0; y < s.H; y++ {
			for x := 0; x < s.W; x++ {
				if !couldPlaceLight(s.Flag(x, y), s.LitCount(x, y)) {
					continue
				}
				n := 0
				s.rayFrom(x, y, true).each(func(lx, ly int) {
					if s.LitCount(lx, ly) == 0 {
						n++
					}
				})
				if n > bestN {
					bestN, bestX, bestY = n, x, y
				}
			}
		}
		if bestN <= 0 || bestX < 0 || bestY < 0 {
			panic("game: no branching cell despite placeable lights")
		}

		// Branch A forbids a light at the cell on the state itself;
		// branch B places one on a copy.
		scopy := s.Clone()
		s.flags[s.idx(bestX, bestY)] |= FlagImpossible
		selfSoluble := s.solveSub(forceUnique, maxRecurse, depth+1, maxDepth)

		if !forceUnique && selfSoluble > 0 {
			// One solution is all the caller wanted.
			return selfSoluble
		}

		scopy.setLight(bestX, bestY, true)
		copySoluble := scopy.solveSub(forceUnique, maxRecurse, depth+1, maxDepth)

		switch {
		case forceUnique && (copySoluble < 0 || selfSoluble < 0):
			// Recursion exhausted on either branch means extra solutions
			// may have been missed; report unknown.
			return -1
		case copySoluble <= 0:
			return selfSoluble
		case selfSoluble <= 0:
			// Only the copy solved; surface its planes so the caller
			// observes a solved state.
			s.copyPlanesFrom(scopy)
			return copySoluble
		default:
			return selfSoluble + copySoluble
		}
	}
}

// Solve fills in the (possibly partially completed) state as far as it can
// and returns the number of solutions found: positive means the planes are
// now a solved position, 0 means none, -1 means the solver gave up inside
// its recursion budget. With allowGuess unset only the propagation rules
// run. maxDepth, if non-nil, receives the deepest branching level used.
func (s *State) Solve(allowGuess, forceUnique bool, maxDepth *int) int {
	for i := range s.flags {
		s.flags[i] &^= FlagNumberUsed
	}
	budget := 0
	if allowGuess {
		budget = maxRecurse
	}
	return s.solveSub(forceUnique, budget, 0, maxDepth)
}
