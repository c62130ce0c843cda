// Package ocean orchestrates the wave simulation pipeline.
//
// Each tick runs the stages in order, with a full barrier between them:
//
//   - phase evolution (double-buffered, swapped after the pass)
//   - time-spectrum synthesis from the static spectrum and phases
//   - 2D inverse FFT (row pass, column pass)
//   - displacement unpack and normal generation
//
// The static spectrum is recomputed only when wind or grid parameters
// change. Outputs become visible as a whole tick; there is no
// partial-frame exposure.
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Internally each stage is
// data-parallel over cells, but callers must serialize Tick, setters,
// and output reads.
package ocean
