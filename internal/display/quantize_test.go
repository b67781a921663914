// internal/display/quantize_test.go
package display

import "testing"

func TestQuantize_BoundaryLaw(t *testing.T) {
	cases := []struct {
		in   byte
		want Code
	}{
		{0, 0},
		{27, 0},
		{28, 1},
		{55, 1},
		{56, 2},
		{83, 2},
		{84, 3},
		{111, 3},
		{112, 4},
		{139, 4},
		{140, 5},
		{167, 5},
		{168, 6},
		{195, 6},
		{196, 7},
		{223, 7},
		{224, 8},
		{255, 8},
	}

	for _, tc := range cases {
		if got := Quantize(tc.in); got != tc.want {
			t.Fatalf("Quantize(%d): got=%d want=%d", tc.in, got, tc.want)
		}
	}
}

func TestQuantize_ExhaustiveAndMonotone(t *testing.T) {
	prev := Code(0)
	for v := 0; v < 256; v++ {
		got := Quantize(byte(v))

		if got >= NumCodes {
			t.Fatalf("Quantize(%d): code %d out of range", v, got)
		}
		if got < prev {
			t.Fatalf("Quantize(%d): code %d below previous %d", v, got, prev)
		}
		prev = got
	}

	if prev != NumCodes-1 {
		t.Fatalf("Quantize(255): got=%d want=%d", prev, NumCodes-1)
	}
}

func TestQuantize_BucketWidths(t *testing.T) {
	// Nine buckets of width 28, last one 32.
	counts := make(map[Code]int)
	for v := 0; v < 256; v++ {
		counts[Quantize(byte(v))]++
	}

	for code := Code(0); code < NumCodes-1; code++ {
		if counts[code] != 28 {
			t.Fatalf("bucket %d width: got=%d want=28", code, counts[code])
		}
	}
	if counts[NumCodes-1] != 32 {
		t.Fatalf("last bucket width: got=%d want=32", counts[NumCodes-1])
	}
}
