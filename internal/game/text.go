package game

import "strings"

// TextFormat renders the state as a bordered character grid. Interior
// cells show '#' for plain black, the digit for a clue, 'L' for a light
// ('O' reads too much like a zero clue), 'x' for an impossible mark, '.'
// for a cell lit from elsewhere and a space for an unknown cell.
func (s *State) TextFormat() string {
	var b strings.Builder
	for y := 0; y <= s.H; y++ {
		for x := 0; x <= s.W; x++ {
			b.WriteByte('+')
			if x < s.W {
				b.WriteByte('-')
			}
		}
		b.WriteByte('\n')
		if y == s.H {
			break
		}
		for x := 0; x <= s.W; x++ {
			b.WriteByte('|')
			if x == s.W {
				break
			}
			f := s.Flag(x, y)
			lit := s.LitCount(x, y)
			switch {
			case f&FlagNumbered != 0:
				b.WriteByte('0' + byte(lit))
			case f&FlagBlack != 0:
				b.WriteByte('#')
			case f&FlagLight != 0:
				b.WriteByte('L')
			case f&FlagImpossible != 0:
				b.WriteByte('x')
			case lit > 0:
				b.WriteByte('.')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
