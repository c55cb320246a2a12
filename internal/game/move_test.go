package game

import "testing"

func TestExecuteMoveToggleLight(t *testing.T) {
	st := mustGame(t, "3x3b5s0", "i")

	next, err := ExecuteMove(st, "L1,1")
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if !next.IsLight(1, 1) || next.NLights != 1 {
		t.Error("light not placed")
	}
	if st.IsLight(1, 1) {
		t.Error("input state was mutated")
	}
	checkLitInvariant(t, next)

	// Toggling again removes it.
	again, err := ExecuteMove(next, "L1,1")
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if again.IsLight(1, 1) || again.NLights != 0 {
		t.Error("light not removed on second toggle")
	}
}

func TestExecuteMoveImpossible(t *testing.T) {
	st := mustGame(t, "3x3b5s0", "i")

	next, err := ExecuteMove(st, "L0,0;I0,0")
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	// The I command removes the light first, then sets the mark.
	if next.IsLight(0, 0) {
		t.Error("impossible mark should displace the light")
	}
	if !next.IsImpossible(0, 0) {
		t.Error("impossible mark not set")
	}
	checkLitInvariant(t, next)

	// I on a marked cell clears the mark.
	cleared, err := ExecuteMove(next, "I0,0")
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if cleared.IsImpossible(0, 0) {
		t.Error("impossible mark not cleared")
	}
}

func TestExecuteMoveLightClearsImpossible(t *testing.T) {
	st := mustGame(t, "3x3b5s0", "i")
	marked, err := ExecuteMove(st, "I2,2")
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	next, err := ExecuteMove(marked, "L2,2")
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if next.IsImpossible(2, 2) || !next.IsLight(2, 2) {
		t.Error("L should clear the mark and place the light")
	}
}

func TestExecuteMoveRejections(t *testing.T) {
	st := mustGame(t, "3x3b20s0", "a2aBaBc")

	bad := []string{
		"",         // empty move
		"L1,0",     // black cell
		"I0,1",     // black cell
		"L3,0",     // out of range
		"L-1,0",    // out of range
		"L0,",      // truncated coords
		"Lx,y",     // garbage coords
		"Z0,0",     // unknown command
		"L0,0;;",   // empty trailing command
		"L0,0X1,1", // missing separator
	}
	for _, m := range bad {
		if next, err := ExecuteMove(st, m); err == nil || next != nil {
			t.Errorf("ExecuteMove(%q) accepted, want rejection", m)
		}
	}
	// Rejection leaves the input untouched.
	if st.NLights != 0 {
		t.Error("rejected moves must not touch the input state")
	}
}

func TestExecuteMoveSolverStamp(t *testing.T) {
	st := mustGame(t, "3x3b5s0", "i")
	next, err := ExecuteMove(st, "S;L0,0")
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if !next.UsedSolve {
		t.Error("S must latch UsedSolve")
	}
}

func TestExecuteMoveLatchesCompleted(t *testing.T) {
	st := mustGame(t, "3x3b20s0", "a2aBaBc")

	next, err := ExecuteMove(st, "L0,0;L2,0;L1,2")
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if !next.Completed {
		t.Error("completing move must latch Completed")
	}
	if next.Status() != StatusSolved {
		t.Errorf("Status = %d, want %d", next.Status(), StatusSolved)
	}

	// The latch survives further (unsolving) moves.
	after, err := ExecuteMove(next, "L1,1")
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if !after.Completed {
		t.Error("Completed latch must survive later moves")
	}
}

func TestSolveMoveCompletesPuzzle(t *testing.T) {
	st := mustGame(t, "3x3b20s0", "a2aBaBc")

	move, err := SolveMove(st, st)
	if err != nil {
		t.Fatalf("SolveMove: %v", err)
	}
	if move == "" || move[0] != 'S' {
		t.Fatalf("solve move %q must start with the solver stamp", move)
	}

	next, err := ExecuteMove(st, move)
	if err != nil {
		t.Fatalf("ExecuteMove(%q): %v", move, err)
	}
	if !next.Completed || !next.UsedSolve {
		t.Error("applying the solve move must complete the puzzle")
	}
}

func TestSolveMoveFromUserPosition(t *testing.T) {
	st := mustGame(t, "3x3b20s0", "a2aBaBc")

	// Start the player off with one correct light placed.
	cur, err := ExecuteMove(st, "L0,0")
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}

	move, err := SolveMove(st, cur)
	if err != nil {
		t.Fatalf("SolveMove: %v", err)
	}
	next, err := ExecuteMove(cur, move)
	if err != nil {
		t.Fatalf("ExecuteMove(%q): %v", move, err)
	}
	if !next.Completed {
		t.Error("solve move from a partial position must still complete")
	}
	if !next.IsLight(0, 0) {
		t.Error("the player's correct light should survive")
	}
}

func TestSolveMoveInconsistentPuzzle(t *testing.T) {
	// A 4-clue on the edge is unsatisfiable from anywhere.
	st := mustGame(t, "3x3b20s0", "a4af")
	if _, err := SolveMove(st, st); err == nil {
		t.Error("SolveMove on an inconsistent puzzle should fail")
	}
}

func TestStatusUnsolvable(t *testing.T) {
	st := mustGame(t, "3x3b5s0", "i")
	next, err := ExecuteMove(st, "L0,0;L2,0")
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if next.Status() != StatusUnsolvable {
		t.Errorf("Status = %d, want %d (overlapping lights)", next.Status(), StatusUnsolvable)
	}

	over := mustGame(t, "3x3b20s0", "d0d")
	next, err = ExecuteMove(over, "L1,0")
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if next.Status() != StatusUnsolvable {
		t.Errorf("Status = %d, want %d (over-satisfied clue)", next.Status(), StatusUnsolvable)
	}
}
