package game

import "testing"

func TestTextFormat(t *testing.T) {
	st := mustGame(t, "3x3b20s0", "a2aBaBc")
	next, err := ExecuteMove(st, "L0,0;I2,2")
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}

	want := "" +
		"+-+-+-+\n" +
		"|L|2| |\n" +
		"+-+-+-+\n" +
		"|#| |#|\n" +
		"+-+-+-+\n" +
		"| | |x|\n" +
		"+-+-+-+\n"
	if got := next.TextFormat(); got != want {
		t.Errorf("TextFormat:\n%s\nwant:\n%s", got, want)
	}
}
