// Package analysis provides frequency analysis of recorded traces.
//
// The package works on plain []float64 samples taken at a fixed
// timestep:
//
//   - [FFT]: radix-2 fast Fourier transform
//   - [PowerSpectrum]: squared magnitudes of the positive-frequency bins
//   - [DominantFrequency]: strongest non-DC frequency in hertz
//
// # Typical Use
//
//	data, _ := trace.Column("x")
//	freq := analysis.DominantFrequency(data, dt)
package analysis
