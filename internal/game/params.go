package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Symmetry selects how the generator mirrors or rotates the black-cell
// layout across the grid.
type Symmetry int

const (
	SymmNone Symmetry = iota
	SymmMirror2
	SymmRot2
	SymmMirror4
	SymmRot4

	symmCount
)

// String returns the menu label for the symmetry.
func (s Symmetry) String() string {
	switch s {
	case SymmNone:
		return "None"
	case SymmMirror2:
		return "2-way mirror"
	case SymmRot2:
		return "2-way rotational"
	case SymmMirror4:
		return "4-way mirror"
	case SymmRot4:
		return "4-way rotational"
	default:
		return "Unknown"
	}
}

// Params is the immutable configuration of a puzzle.
type Params struct {
	Width, Height int
	// BlackPercent is the target percentage of black cells, 5..100. The
	// generator inflates it internally when a layout refuses to yield a
	// good puzzle.
	BlackPercent int
	Symm         Symmetry
	// Hard puzzles require at least one backtracking guess; easy puzzles
	// are guaranteed solvable by propagation alone.
	Hard bool
}

// Preset is a named entry of the default menu.
type Preset struct {
	Name   string
	Params Params
}

var presets = []Params{
	{Width: 7, Height: 7, BlackPercent: 20, Symm: SymmRot4, Hard: false},
	{Width: 7, Height: 7, BlackPercent: 20, Symm: SymmRot4, Hard: true},
	{Width: 10, Height: 10, BlackPercent: 20, Symm: SymmRot2, Hard: false},
	{Width: 10, Height: 10, BlackPercent: 20, Symm: SymmRot2, Hard: true},
	{Width: 14, Height: 14, BlackPercent: 20, Symm: SymmRot2, Hard: false},
	{Width: 14, Height: 14, BlackPercent: 20, Symm: SymmRot2, Hard: true},
}

// DefaultParams returns the first preset.
func DefaultParams() Params {
	return presets[0]
}

// FetchPreset returns the i'th menu entry, or ok=false past the end.
func FetchPreset(i int) (Preset, bool) {
	if i < 0 || i >= len(presets) {
		return Preset{}, false
	}
	p := presets[i]
	diff := "easy"
	if p.Hard {
		diff = "hard"
	}
	return Preset{
		Name:   fmt.Sprintf("%dx%d %s", p.Width, p.Height, diff),
		Params: p,
	}, true
}

// Presets returns the whole default menu.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for i := range presets {
		p, _ := FetchPreset(i)
		out = append(out, p)
	}
	return out
}

// Encode renders the parameter string. The non-full form carries only the
// dimensions, for surfaces that must not leak generation hints.
func (p Params) Encode(full bool) string {
	if !full {
		return fmt.Sprintf("%dx%d", p.Width, p.Height)
	}
	s := fmt.Sprintf("%dx%db%ds%d", p.Width, p.Height, p.BlackPercent, int(p.Symm))
	if p.Hard {
		s += "r"
	}
	return s
}

// eatNum consumes a leading decimal integer, returning it and the rest of
// the string.
func eatNum(s string) (int, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n, _ := strconv.Atoi(s[:i])
	return n, s[i:]
}

// DecodeParams parses a parameter string. The leading width is always read
// (0 when absent) and the hard flag is set only by a trailing 'r'; a missing
// height, percentage or symmetry leaves the default in place. Validate
// catches anything out of range.
func DecodeParams(s string) Params {
	p := DefaultParams()
	p.Width, s = eatNum(s)
	if strings.HasPrefix(s, "x") {
		p.Height, s = eatNum(s[1:])
	}
	if strings.HasPrefix(s, "b") {
		p.BlackPercent, s = eatNum(s[1:])
	}
	if strings.HasPrefix(s, "s") {
		var n int
		n, s = eatNum(s[1:])
		p.Symm = Symmetry(n)
	}
	p.Hard = strings.HasPrefix(s, "r")
	return p
}

// Validate checks the parameters. With full unset only the shape is
// checked, matching the non-full encoding.
func (p Params) Validate(full bool) error {
	if p.Width < 2 || p.Height < 2 {
		return errors.New("width and height must be at least 2")
	}
	if full {
		if p.BlackPercent < 5 || p.BlackPercent > 100 {
			return errors.New("percentage of black squares must be between 5% and 100%")
		}
		if p.Width != p.Height && p.Symm == SymmRot4 {
			return errors.New("4-fold symmetry is only available with square grids")
		}
		if p.Symm < 0 || p.Symm >= symmCount {
			return errors.New("unknown symmetry type")
		}
	}
	return nil
}

// ConfigType is the kind of a configure-dialog item.
type ConfigType int

const (
	ConfigString ConfigType = iota
	ConfigChoices
	ConfigBoolean
)

// ConfigItem is one row of the configure dialog exchanged with a frontend.
type ConfigItem struct {
	Name string
	Type ConfigType

	// Value holds the text for ConfigString items.
	Value string
	// Choices and Selected describe ConfigChoices items.
	Choices  []string
	Selected int
	// Bool holds the state of ConfigBoolean items.
	Bool bool
}

var symmetryChoices = []string{
	"None", "2-way mirror", "2-way rotational", "4-way mirror", "4-way rotational",
}

var difficultyChoices = []string{"Easy", "Hard"}

// Configure returns the dialog schema pre-filled from the parameters.
func (p Params) Configure() []ConfigItem {
	diff := 0
	if p.Hard {
		diff = 1
	}
	return []ConfigItem{
		{Name: "Width", Type: ConfigString, Value: strconv.Itoa(p.Width)},
		{Name: "Height", Type: ConfigString, Value: strconv.Itoa(p.Height)},
		{Name: "%age of black squares", Type: ConfigString, Value: strconv.Itoa(p.BlackPercent)},
		{Name: "Symmetry", Type: ConfigChoices, Choices: symmetryChoices, Selected: int(p.Symm)},
		{Name: "Difficulty", Type: ConfigChoices, Choices: difficultyChoices, Selected: diff},
	}
}

// CustomParams builds parameters back out of an edited dialog. Values are
// read positionally; Validate is the caller's next step.
func CustomParams(items []ConfigItem) Params {
	var p Params
	if len(items) > 0 {
		p.Width, _ = strconv.Atoi(items[0].Value)
	}
	if len(items) > 1 {
		p.Height, _ = strconv.Atoi(items[1].Value)
	}
	if len(items) > 2 {
		p.BlackPercent, _ = strconv.Atoi(items[2].Value)
	}
	if len(items) > 3 {
		p.Symm = Symmetry(items[3].Selected)
	}
	if len(items) > 4 {
		p.Hard = items[4].Selected == 1
	}
	return p
}
