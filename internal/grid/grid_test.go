package grid

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 8, 0},
		{7, 8, 7},
		{8, 8, 0},
		{-1, 8, 7},
		{-8, 8, 0},
		{17, 8, 1},
	}
	for _, tt := range tests {
		if got := Wrap(tt.i, tt.n); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{-3, 8, 0},
		{0, 8, 0},
		{7, 8, 7},
		{8, 8, 7},
		{100, 8, 7},
	}
	for _, tt := range tests {
		if got := Clamp(tt.i, tt.n); got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestFreqCentering(t *testing.T) {
	n := 8
	want := []int{0, 1, 2, 3, -4, -3, -2, -1}
	for i := 0; i < n; i++ {
		if got := Freq(i, n); got != want[i] {
			t.Errorf("Freq(%d, %d) = %d, want %d", i, n, got, want[i])
		}
	}
}

func TestScalarWrapSampling(t *testing.T) {
	f := NewScalar(4)
	f.Set(0, 0, 1.5)
	f.Set(3, 3, -2.0)

	if got := f.AtWrap(4, 4); got != 1.5 {
		t.Errorf("AtWrap(4,4) = %f, want 1.5", got)
	}
	if got := f.AtWrap(-1, -1); got != -2.0 {
		t.Errorf("AtWrap(-1,-1) = %f, want -2.0", got)
	}
}

func TestPackedRoundTrip(t *testing.T) {
	f := NewPacked(4)
	f.Set(1, 2, complex(1, 2), complex(3, 4))

	a, b := f.At(1, 2)
	if a != complex(1, 2) || b != complex(3, 4) {
		t.Errorf("At(1,2) = %v, %v", a, b)
	}

	a, b = f.At(2, 1)
	if a != 0 || b != 0 {
		t.Errorf("untouched cell not zero: %v, %v", a, b)
	}
}
