package ocean

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/oceanfft/internal/fft"
	"github.com/san-kum/oceanfft/internal/grid"
	"github.com/san-kum/oceanfft/internal/phase"
	"github.com/san-kum/oceanfft/internal/spectrum"
	"github.com/san-kum/oceanfft/internal/surface"
	"github.com/san-kum/oceanfft/internal/synth"
)

type Config struct {
	Resolution int
	PatchSize  float64
	WindX      float64
	WindY      float64
	Choppiness float64
	Seed       int64
}

func DefaultConfig() Config {
	return Config{
		Resolution: 256,
		PatchSize:  150,
		WindX:      60,
		WindY:      30,
		Choppiness: 1.5,
		Seed:       1,
	}
}

// Metric observes the displacement field once per tick.
type Metric interface {
	Name() string
	Observe(d *surface.Displacement, t float64)
	Value() float64
	Reset()
}

// Observer receives the committed outputs of each tick.
type Observer interface {
	OnTick(d *surface.Displacement, n *surface.Normals, t float64)
}

type Result struct {
	Times      []float64
	Metrics    map[string]float64
	TicksTaken int
}

type Simulator struct {
	cfg    Config
	params spectrum.Params

	h0      *grid.Scalar
	phases  *phase.Buffers
	evolver *phase.Evolver
	synther *synth.Synthesizer
	ifft    *fft.Inverse2D

	timeSpectrum *grid.Packed
	disp         *surface.Displacement
	normals      *surface.Normals

	metrics   []Metric
	observers []Observer

	t             float64
	ticks         int
	staleSpectrum bool
}

// New validates the configuration, builds the pipeline, and seeds the
// phase buffer with one uniform [0, 2π) draw per cell from cfg.Seed.
func New(cfg Config) (*Simulator, error) {
	n := cfg.Resolution
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrResolution, n)
	}
	if cfg.PatchSize <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrPatchSize, cfg.PatchSize)
	}

	params := spectrum.Params{
		Resolution: n,
		PatchSize:  cfg.PatchSize,
		WindX:      cfg.WindX,
		WindY:      cfg.WindY,
	}

	ifft, err := fft.NewInverse2D(n)
	if err != nil {
		return nil, err
	}

	s := &Simulator{
		cfg:          cfg,
		params:       params,
		h0:           grid.NewScalar(n),
		phases:       phase.NewBuffers(n),
		evolver:      phase.NewEvolver(n, params.Wavevector, spectrum.Dispersion),
		synther:      synth.New(params, cfg.Choppiness),
		ifft:         ifft,
		timeSpectrum: grid.NewPacked(n),
		disp:         surface.NewDisplacement(n),
		normals:      surface.NewNormals(n),
	}

	spectrum.Generate(params, s.h0)
	s.phases.Seed(rand.New(rand.NewSource(cfg.Seed)))
	return s, nil
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Tick advances the surface by dt. Cancellation is honored only at
// stage boundaries before any output buffer is touched, so the previous
// tick's outputs stay intact when the context fires.
func (s *Simulator) Tick(ctx context.Context, dt float64) error {
	if dt < 0 {
		return fmt.Errorf("%w: got %g", ErrNegativeDt, dt)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if s.staleSpectrum {
		spectrum.Generate(s.params, s.h0)
		s.staleSpectrum = false
	}

	s.evolver.Step(s.phases.Current(), s.phases.Next(), dt)
	s.phases.Swap()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.synther.Build(s.h0, s.phases.Current(), s.timeSpectrum)
	spatial := s.ifft.Transform(s.timeSpectrum)

	surface.Unpack(spatial, s.disp)
	surface.ComputeNormals(s.disp, s.params.PatchSize/float64(s.params.Resolution), s.normals)

	s.t += dt
	s.ticks++

	for _, m := range s.metrics {
		m.Observe(s.disp, s.t)
	}
	for _, o := range s.observers {
		o.OnTick(s.disp, s.normals, s.t)
	}
	return nil
}

// Run executes a fixed number of ticks and collects metric values.
func (s *Simulator) Run(ctx context.Context, ticks int, dt float64) (*Result, error) {
	result := &Result{
		Times:   make([]float64, 0, ticks),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < ticks; i++ {
		if err := s.Tick(ctx, dt); err != nil {
			return result, err
		}
		result.Times = append(result.Times, s.t)
		result.TicksTaken++
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

// SetWind marks the static spectrum stale; it is regenerated on the
// next tick, not immediately.
func (s *Simulator) SetWind(x, y float64) {
	if x == s.params.WindX && y == s.params.WindY {
		return
	}
	s.cfg.WindX, s.cfg.WindY = x, y
	s.params.WindX, s.params.WindY = x, y
	s.synther = synth.New(s.params, s.synther.Choppiness)
	s.staleSpectrum = true
}

func (s *Simulator) SetPatchSize(l float64) error {
	if l <= 0 {
		return fmt.Errorf("%w: got %g", ErrPatchSize, l)
	}
	if l == s.params.PatchSize {
		return nil
	}
	s.cfg.PatchSize = l
	s.params.PatchSize = l
	s.synther = synth.New(s.params, s.synther.Choppiness)
	s.staleSpectrum = true
	return nil
}

func (s *Simulator) SetChoppiness(c float64) {
	s.cfg.Choppiness = c
	s.synther.Choppiness = c
}

func (s *Simulator) Config() Config { return s.cfg }
func (s *Simulator) Time() float64  { return s.t }
func (s *Simulator) Ticks() int     { return s.ticks }

// Displacement returns the latest committed displacement field,
// read-only for the caller.
func (s *Simulator) Displacement() *surface.Displacement { return s.disp }

// Normals returns the latest committed normal field, read-only for the
// caller.
func (s *Simulator) Normals() *surface.Normals { return s.normals }
