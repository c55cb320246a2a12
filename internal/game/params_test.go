package game

import "testing"

func TestParamsEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Params{
		{Width: 7, Height: 7, BlackPercent: 20, Symm: SymmRot4, Hard: false},
		{Width: 7, Height: 7, BlackPercent: 20, Symm: SymmRot4, Hard: true},
		{Width: 10, Height: 10, BlackPercent: 20, Symm: SymmRot2, Hard: false},
		{Width: 14, Height: 14, BlackPercent: 20, Symm: SymmRot2, Hard: true},
		{Width: 3, Height: 5, BlackPercent: 45, Symm: SymmNone, Hard: false},
		{Width: 8, Height: 6, BlackPercent: 90, Symm: SymmMirror4, Hard: true},
	}
	for _, p := range cases {
		enc := p.Encode(true)
		if got := DecodeParams(enc); got != p {
			t.Errorf("DecodeParams(%q) = %+v, want %+v", enc, got, p)
		}
	}
}

func TestParamsEncodeShortForm(t *testing.T) {
	p := Params{Width: 10, Height: 7, BlackPercent: 20, Symm: SymmRot2, Hard: true}
	if got := p.Encode(false); got != "10x7" {
		t.Errorf("Encode(false) = %q, want %q", got, "10x7")
	}
}

func TestDecodeParamsPartial(t *testing.T) {
	p := DecodeParams("9x4")
	if p.Width != 9 || p.Height != 4 {
		t.Errorf("dimensions = %dx%d, want 9x4", p.Width, p.Height)
	}
	if p.Hard {
		t.Error("absent 'r' flag must decode as easy")
	}

	p = DecodeParams("7x7b30s3r")
	if p.BlackPercent != 30 || p.Symm != SymmMirror4 || !p.Hard {
		t.Errorf("decoded %+v", p)
	}
}

func TestValidateParams(t *testing.T) {
	cases := []struct {
		params string
		full   bool
		ok     bool
	}{
		{"7x7b20s4", true, true},
		{"1x7b20s0", true, false},  // too narrow
		{"7x1b20s0", true, false},  // too flat
		{"7x7b4s0", true, false},   // too few blacks
		{"7x7b101s0", true, false}, // too many blacks
		{"7x9b20s4", true, false},  // rot-4 needs a square
		{"7x9b20s4", false, true},  // ...but the short form doesn't care
		{"7x7b20s9", true, false},  // unknown symmetry
	}
	for _, c := range cases {
		err := DecodeParams(c.params).Validate(c.full)
		if c.ok && err != nil {
			t.Errorf("Validate(%q, full=%v) = %v, want nil", c.params, c.full, err)
		}
		if !c.ok && err == nil {
			t.Errorf("Validate(%q, full=%v) = nil, want error", c.params, c.full)
		}
	}
}

func TestPresets(t *testing.T) {
	ps := Presets()
	if len(ps) != 6 {
		t.Fatalf("got %d presets, want 6", len(ps))
	}
	if ps[0].Name != "7x7 easy" || ps[1].Name != "7x7 hard" {
		t.Errorf("unexpected preset names %q, %q", ps[0].Name, ps[1].Name)
	}
	for _, p := range ps {
		if err := p.Params.Validate(true); err != nil {
			t.Errorf("preset %q invalid: %v", p.Name, err)
		}
		if p.Params.BlackPercent != 20 {
			t.Errorf("preset %q black percent = %d, want 20", p.Name, p.Params.BlackPercent)
		}
	}
	if _, ok := FetchPreset(len(ps)); ok {
		t.Error("FetchPreset past the end must report !ok")
	}
}

func TestConfigureRoundTrip(t *testing.T) {
	p := Params{Width: 11, Height: 9, BlackPercent: 35, Symm: SymmMirror2, Hard: true}
	items := p.Configure()
	if len(items) != 5 {
		t.Fatalf("got %d config items, want 5", len(items))
	}
	if items[3].Type != ConfigChoices || len(items[3].Choices) != 5 {
		t.Error("symmetry item malformed")
	}
	if items[4].Choices[0] != "Easy" || items[4].Choices[1] != "Hard" {
		t.Error("difficulty choices malformed")
	}
	if got := CustomParams(items); got != p {
		t.Errorf("CustomParams(Configure()) = %+v, want %+v", got, p)
	}
}
