package colortypes

import "testing"

func TestARGB_FloatRoundTrip(t *testing.T) {
	// Alpha-first straight-alpha layout with float components; the
	// bridge must not touch the alpha or color channels.
	c := ARGB[float32]{A: 0.5, R: 1.0, G: 0.0, B: 0.25}
	if got := c.Array(); got != [4]float32{0.5, 1.0, 0.0, 0.25} {
		t.Errorf("Array() = %v, want [0.5 1 0 0.25]", got)
	}
	a, r, g, b := c.Values()
	if a != 0.5 || r != 1.0 || g != 0.0 || b != 0.25 {
		t.Errorf("Values() = (%v, %v, %v, %v), want (0.5, 1, 0, 0.25)", a, r, g, b)
	}
	if NewARGB(a, r, g, b) != c {
		t.Errorf("NewARGB(Values()) != original")
	}
	if ARGBFromArray(c.Array()) != c {
		t.Errorf("ARGBFromArray(Array()) != original")
	}
}

func TestFourChannel_FieldOrder(t *testing.T) {
	// Fields assigned 1..4 in declared order; every array form must
	// come out as [1, 2, 3, 4].
	want := [4]uint8{1, 2, 3, 4}
	tests := []struct {
		name string
		got  [4]uint8
	}{
		{"RGBA", RGBA[uint8]{R: 1, G: 2, B: 3, A: 4}.Array()},
		{"BGRA", BGRA[uint8]{B: 1, G: 2, R: 3, A: 4}.Array()},
		{"ARGB", ARGB[uint8]{A: 1, R: 2, G: 3, B: 4}.Array()},
		{"ABGR", ABGR[uint8]{A: 1, B: 2, G: 3, R: 4}.Array()},
		{"PremulRGBA", PremulRGBA[uint8]{R: 1, G: 2, B: 3, A: 4}.Array()},
		{"PremulBGRA", PremulBGRA[uint8]{B: 1, G: 2, R: 3, A: 4}.Array()},
		{"PremulARGB", PremulARGB[uint8]{A: 1, R: 2, G: 3, B: 4}.Array()},
		{"PremulABGR", PremulABGR[uint8]{A: 1, B: 2, G: 3, R: 4}.Array()},
		{"CMYK", CMYK[uint8]{C: 1, M: 2, Y: 3, K: 4}.Array()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != want {
				t.Errorf("Array() = %v, want %v", tt.got, want)
			}
		})
	}
}

func TestFourChannel_RoundTrip(t *testing.T) {
	// Both bridge directions for every four-channel layout: the array
	// form and the tuple form must each reproduce the value exactly.
	in := [4]uint16{65535, 0, 32768, 255}

	if got := RGBAFromArray(in).Array(); got != in {
		t.Errorf("RGBA: %v → %v", in, got)
	}
	if c := RGBAFromArray(in); NewRGBA(c.Values()) != c {
		t.Errorf("RGBA: NewRGBA(Values()) != original")
	}
	if got := BGRAFromArray(in).Array(); got != in {
		t.Errorf("BGRA: %v → %v", in, got)
	}
	if c := BGRAFromArray(in); NewBGRA(c.Values()) != c {
		t.Errorf("BGRA: NewBGRA(Values()) != original")
	}
	if got := ARGBFromArray(in).Array(); got != in {
		t.Errorf("ARGB: %v → %v", in, got)
	}
	if c := ARGBFromArray(in); NewARGB(c.Values()) != c {
		t.Errorf("ARGB: NewARGB(Values()) != original")
	}
	if got := ABGRFromArray(in).Array(); got != in {
		t.Errorf("ABGR: %v → %v", in, got)
	}
	if c := ABGRFromArray(in); NewABGR(c.Values()) != c {
		t.Errorf("ABGR: NewABGR(Values()) != original")
	}
	if got := PremulRGBAFromArray(in).Array(); got != in {
		t.Errorf("PremulRGBA: %v → %v", in, got)
	}
	if c := PremulRGBAFromArray(in); NewPremulRGBA(c.Values()) != c {
		t.Errorf("PremulRGBA: NewPremulRGBA(Values()) != original")
	}
	if got := PremulBGRAFromArray(in).Array(); got != in {
		t.Errorf("PremulBGRA: %v → %v", in, got)
	}
	if c := PremulBGRAFromArray(in); NewPremulBGRA(c.Values()) != c {
		t.Errorf("PremulBGRA: NewPremulBGRA(Values()) != original")
	}
	if got := PremulARGBFromArray(in).Array(); got != in {
		t.Errorf("PremulARGB: %v → %v", in, got)
	}
	if c := PremulARGBFromArray(in); NewPremulARGB(c.Values()) != c {
		t.Errorf("PremulARGB: NewPremulARGB(Values()) != original")
	}
	if got := PremulABGRFromArray(in).Array(); got != in {
		t.Errorf("PremulABGR: %v → %v", in, got)
	}
	if c := PremulABGRFromArray(in); NewPremulABGR(c.Values()) != c {
		t.Errorf("PremulABGR: NewPremulABGR(Values()) != original")
	}
	if got := CMYKFromArray(in).Array(); got != in {
		t.Errorf("CMYK: %v → %v", in, got)
	}
	if c := CMYKFromArray(in); NewCMYK(c.Values()) != c {
		t.Errorf("CMYK: NewCMYK(Values()) != original")
	}
}

func TestPremul_StoresComponentsVerbatim(t *testing.T) {
	// The premultiplied layouts are a contract, not an operation:
	// construction never scales anything, even when the components
	// violate channel <= alpha.
	c := NewPremulRGBA[float64](0.9, 0.9, 0.9, 0.5)
	if c.R != 0.9 || c.G != 0.9 || c.B != 0.9 || c.A != 0.5 {
		t.Errorf("components altered: %+v", c)
	}
}
