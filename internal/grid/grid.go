package grid

// Scalar is an N×N field holding one float per cell, row-major.
// Phase and static-spectrum buffers use this layout.
type Scalar struct {
	N    int
	data []float64
}

func NewScalar(n int) *Scalar {
	return &Scalar{N: n, data: make([]float64, n*n)}
}

func (f *Scalar) At(x, y int) float64     { return f.data[y*f.N+x] }
func (f *Scalar) Set(x, y int, v float64) { f.data[y*f.N+x] = v }

// AtWrap samples with toroidal indexing. Spectrum and mirror lookups use
// this policy; the slope generator must NOT.
func (f *Scalar) AtWrap(x, y int) float64 {
	return f.data[Wrap(y, f.N)*f.N+Wrap(x, f.N)]
}

func (f *Scalar) Fill(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}

func (f *Scalar) Data() []float64 { return f.data }

// Packed is an N×N field holding two complex channels per cell
// (4 floats), matching the rgba32 spectral textures of the pipeline.
type Packed struct {
	N    int
	data []complex128
}

func NewPacked(n int) *Packed {
	return &Packed{N: n, data: make([]complex128, 2*n*n)}
}

func (f *Packed) At(x, y int) (a, b complex128) {
	i := 2 * (y*f.N + x)
	return f.data[i], f.data[i+1]
}

func (f *Packed) Set(x, y int, a, b complex128) {
	i := 2 * (y*f.N + x)
	f.data[i] = a
	f.data[i+1] = b
}

func (f *Packed) Clear() {
	for i := range f.data {
		f.data[i] = 0
	}
}

// Wrap maps i onto [0, n) toroidally.
func Wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Clamp pins i to [0, n-1], repeating the edge sample.
func Clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Freq maps a grid index to its centered integer frequency:
// 0..N/2-1 stay positive, N/2..N-1 alias to the negative half.
func Freq(i, n int) int {
	if i < n/2 {
		return i
	}
	return i - n
}
