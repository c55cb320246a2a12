package game

import (
	"errors"
	"strings"
)

// Descriptor grammar, row-major, one token stream with no delimiters:
//
//	'0'..'4'  numbered black cell with that clue
//	'B'       un-numbered black cell
//	'a'..'z'  a run of 1..26 consecutive white cells

// encodeDesc renders the black layout and clues of a state.
func encodeDesc(s *State) string {
	var b strings.Builder
	run := 0
	flush := func() {
		if run > 0 {
			b.WriteByte(byte('a'-1) + byte(run))
			run = 0
		}
	}
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			f := s.Flag(x, y)
			if f&FlagBlack != 0 {
				flush()
				if f&FlagNumbered != 0 {
					b.WriteByte('0' + byte(s.LitCount(x, y)))
				} else {
					b.WriteByte('B')
				}
			} else {
				if run == 26 {
					flush()
				}
				run++
			}
		}
	}
	flush()
	return b.String()
}

// ValidateDesc checks a descriptor against the parameters: every character
// legal, and the decoded length exactly width*height.
func ValidateDesc(p Params, desc string) error {
	i, pos := 0, 0
	for i < p.Width*p.Height {
		if pos >= len(desc) {
			return errors.New("game description shorter than expected")
		}
		c := desc[pos]
		switch {
		case c >= '0' && c <= '4':
			i++
		case c == 'B':
			i++
		case c >= 'a' && c <= 'z':
			i += int(c-'a') + 1
		default:
			return errors.New("game description contained unexpected character")
		}
		pos++
	}
	if pos < len(desc) || i > p.Width*p.Height {
		return errors.New("game description longer than expected")
	}
	return nil
}

// NewGame builds a fresh state from a descriptor: no lights, no marks,
// blacks and clues as encoded. The descriptor is validated first.
func NewGame(p Params, desc string) (*State, error) {
	if err := p.Validate(false); err != nil {
		return nil, err
	}
	if err := ValidateDesc(p, desc); err != nil {
		return nil, err
	}

	s := newState(p)
	run := 0
	pos := 0
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			var c byte
			if run == 0 {
				c = desc[pos]
				pos++
				if c >= 'a' && c <= 'z' {
					run = int(c-'a') + 1
				}
			}
			if run > 0 {
				run--
				continue // white cell
			}
			i := s.idx(x, y)
			if c >= '0' && c <= '4' {
				s.flags[i] |= FlagNumbered | FlagBlack
				s.lights[i] = int(c - '0')
			} else {
				s.flags[i] |= FlagBlack
			}
		}
	}
	return s, nil
}
