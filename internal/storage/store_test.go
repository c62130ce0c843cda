package storage

import (
	"math"
	"testing"

	"github.com/san-kum/oceanfft/internal/config"
	"github.com/san-kum/oceanfft/internal/ocean"
	"github.com/san-kum/oceanfft/internal/surface"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Resolution = 4
	cfg.Seed = 42

	disp := surface.NewDisplacement(4)
	disp.Set(1, 2, surface.Vec3{X: 0.5, Y: -1.25, Z: 2.0})

	result := &ocean.Result{
		TicksTaken: 10,
		Metrics:    map[string]float64{"significant_height": 1.5},
	}

	runID, err := store.Save(cfg, result, disp)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Resolution != 4 || meta.Seed != 42 {
		t.Errorf("metadata lost config values: %+v", meta)
	}
	if meta.Ticks != 10 {
		t.Errorf("expected 10 ticks, got %d", meta.Ticks)
	}
	if meta.Metrics["significant_height"] != 1.5 {
		t.Error("metrics not round-tripped")
	}

	loaded, err := store.LoadSurface(runID)
	if err != nil {
		t.Fatal(err)
	}
	got := loaded.At(1, 2)
	if math.Abs(got.X-0.5) > 1e-6 || math.Abs(got.Y+1.25) > 1e-6 || math.Abs(got.Z-2.0) > 1e-6 {
		t.Errorf("surface cell round-trip mismatch: %+v", got)
	}
}

func TestListEmptyDir(t *testing.T) {
	store := New(t.TempDir() + "/missing")
	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Resolution = 4
	result := &ocean.Result{TicksTaken: 1, Metrics: map[string]float64{}}

	if _, err := store.Save(cfg, result, surface.NewDisplacement(4)); err != nil {
		t.Fatal(err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Resolution != 4 {
		t.Errorf("listed run lost resolution: %+v", runs[0])
	}
}

func TestLoadMissingRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
}
