package analysis

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestFFTConstantSignal(t *testing.T) {
	data := []float64{1, 1, 1, 1}
	fft := FFT(data)

	if math.Abs(cmplx.Abs(fft[0])-4) > 1e-9 {
		t.Errorf("expected DC magnitude 4, got %f", cmplx.Abs(fft[0]))
	}
	for i := 1; i < len(fft); i++ {
		if cmplx.Abs(fft[i]) > 1e-9 {
			t.Errorf("bin %d: expected zero magnitude, got %f", i, cmplx.Abs(fft[i]))
		}
	}
}

func TestPad(t *testing.T) {
	padded := Pad([]float64{1, 2, 3})
	if len(padded) != 4 {
		t.Errorf("expected padding to 4, got %d", len(padded))
	}
	if padded[3] != 0 {
		t.Errorf("expected zero padding, got %f", padded[3])
	}
}

func TestDominantFrequency(t *testing.T) {
	dt := 0.01
	freq := 2.0
	n := 512
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) * dt)
	}

	got := DominantFrequency(data, dt)
	if math.Abs(got-freq) > 0.3 {
		t.Errorf("expected dominant frequency near %f Hz, got %f", freq, got)
	}
}

func TestDominantFrequencyDegenerate(t *testing.T) {
	if got := DominantFrequency([]float64{1, 2}, 0.1); got != 0 {
		t.Errorf("expected 0 for short series, got %f", got)
	}
	if got := DominantFrequency(make([]float64, 16), 0); got != 0 {
		t.Errorf("expected 0 for zero dt, got %f", got)
	}
}
