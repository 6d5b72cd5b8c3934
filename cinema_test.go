package colortypes

import "testing"

func TestCinema_FieldOrder(t *testing.T) {
	want := [3]uint8{1, 2, 3}
	tests := []struct {
		name string
		got  [3]uint8
	}{
		{"ACEScg", ACEScg[uint8]{R: 1, G: 2, B: 3}.Array()},
		{"ACES2065", ACES2065[uint8]{R: 1, G: 2, B: 3}.Array()},
		{"ACEScc", ACEScc[uint8]{R: 1, G: 2, B: 3}.Array()},
		{"ACEScct", ACEScct[uint8]{R: 1, G: 2, B: 3}.Array()},
		{"DisplayP3", DisplayP3[uint8]{R: 1, G: 2, B: 3}.Array()},
		{"EncodedDisplayP3", EncodedDisplayP3[uint8]{R: 1, G: 2, B: 3}.Array()},
		{"DCIP3", DCIP3[uint8]{R: 1, G: 2, B: 3}.Array()},
		{"DCIXYZPrime", DCIXYZPrime[uint8]{X: 1, Y: 2, Z: 3}.Array()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != want {
				t.Errorf("Array() = %v, want %v", tt.got, want)
			}
		})
	}
}

func TestCinema_RoundTrip(t *testing.T) {
	// Array and tuple directions for every cinema/wide-gamut layout.
	// ACEScct values can go negative, so the inputs include one.
	in := [3]float32{-0.05, 0.5, 4.5}

	if got := ACEScgFromArray(in).Array(); got != in {
		t.Errorf("ACEScg: %v → %v", in, got)
	}
	if c := ACEScgFromArray(in); NewACEScg(c.Values()) != c {
		t.Errorf("ACEScg: NewACEScg(Values()) != original")
	}
	if got := ACES2065FromArray(in).Array(); got != in {
		t.Errorf("ACES2065: %v → %v", in, got)
	}
	if c := ACES2065FromArray(in); NewACES2065(c.Values()) != c {
		t.Errorf("ACES2065: NewACES2065(Values()) != original")
	}
	if got := ACESccFromArray(in).Array(); got != in {
		t.Errorf("ACEScc: %v → %v", in, got)
	}
	if c := ACESccFromArray(in); NewACEScc(c.Values()) != c {
		t.Errorf("ACEScc: NewACEScc(Values()) != original")
	}
	if got := ACEScctFromArray(in).Array(); got != in {
		t.Errorf("ACEScct: %v → %v", in, got)
	}
	if c := ACEScctFromArray(in); NewACEScct(c.Values()) != c {
		t.Errorf("ACEScct: NewACEScct(Values()) != original")
	}
	if got := DisplayP3FromArray(in).Array(); got != in {
		t.Errorf("DisplayP3: %v → %v", in, got)
	}
	if c := DisplayP3FromArray(in); NewDisplayP3(c.Values()) != c {
		t.Errorf("DisplayP3: NewDisplayP3(Values()) != original")
	}
	if got := EncodedDisplayP3FromArray(in).Array(); got != in {
		t.Errorf("EncodedDisplayP3: %v → %v", in, got)
	}
	if c := EncodedDisplayP3FromArray(in); NewEncodedDisplayP3(c.Values()) != c {
		t.Errorf("EncodedDisplayP3: NewEncodedDisplayP3(Values()) != original")
	}
	if got := DCIP3FromArray(in).Array(); got != in {
		t.Errorf("DCIP3: %v → %v", in, got)
	}
	if c := DCIP3FromArray(in); NewDCIP3(c.Values()) != c {
		t.Errorf("DCIP3: NewDCIP3(Values()) != original")
	}
	if got := DCIXYZPrimeFromArray(in).Array(); got != in {
		t.Errorf("DCIXYZPrime: %v → %v", in, got)
	}
	if c := DCIXYZPrimeFromArray(in); NewDCIXYZPrime(c.Values()) != c {
		t.Errorf("DCIXYZPrime: NewDCIXYZPrime(Values()) != original")
	}
}
