package colortypes

import "testing"

// spriteTint stands in for a foreign library's internal color type.
// It declares interop with RGBA[float32] without this package knowing
// anything about it.
type spriteTint struct {
	tint [3]float32
	fade float32
}

func (s spriteTint) Canonical() RGBA[float32] {
	return RGBAFromArray([4]float32{s.tint[0], s.tint[1], s.tint[2], s.fade})
}

func (s *spriteTint) SetCanonical(c RGBA[float32]) {
	r, g, b, a := c.Values()
	s.tint = [3]float32{r, g, b}
	s.fade = a
}

// Compile-time interop declarations.
var (
	_ Interop[RGBA[float32]]    = spriteTint{}
	_ Assignable[RGBA[float32]] = (*spriteTint)(nil)
)

func TestInterop_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   spriteTint
	}{
		{"opaque", spriteTint{tint: [3]float32{1, 0.5, 0.25}, fade: 1}},
		{"faded", spriteTint{tint: [3]float32{0.1, 0.2, 0.3}, fade: 0.5}},
		{"zero", spriteTint{}},
		{"out of range", spriteTint{tint: [3]float32{-2, 9, 0}, fade: 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Into[RGBA[float32]](tt.in)
			want := RGBA[float32]{
				R: tt.in.tint[0], G: tt.in.tint[1], B: tt.in.tint[2], A: tt.in.fade,
			}
			if c != want {
				t.Errorf("Into() = %v, want %v", c, want)
			}

			var back spriteTint
			Assign(&back, c)
			if back != tt.in {
				t.Errorf("Assign() = %+v, want %+v", back, tt.in)
			}
		})
	}
}

// paletteIndex declares interop with Gray[uint8]: a second foreign
// type, against a different layout, to show the association is per
// type, not global.
type paletteIndex uint8

func (p paletteIndex) Canonical() Gray[uint8] { return NewGray(uint8(p)) }

func (p *paletteIndex) SetCanonical(c Gray[uint8]) { *p = paletteIndex(c.Y) }

func TestInterop_SecondLayout(t *testing.T) {
	p := paletteIndex(200)
	g := Into[Gray[uint8]](p)
	if g.Y != 200 {
		t.Errorf("Into() = %v, want Y=200", g)
	}

	var back paletteIndex
	Assign(&back, g)
	if back != p {
		t.Errorf("Assign() = %v, want %v", back, p)
	}
}
