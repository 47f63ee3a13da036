package dataset

import "gonum.org/v1/gonum/dsp/fourier"

// Smooth applies a Fourier low-pass filter to a periodic daily series,
// keeping the lowest tenth of the coefficients. Sun-time curves are smooth
// and periodic over the year, so truncating the spectrum removes the
// minute-resolution stair-stepping without shifting the curve.
//
// With enabled false the input is returned unchanged.
func Smooth(data []float64, enabled bool) []float64 {
	if !enabled || len(data) < 4 {
		return data
	}

	n := len(data)
	fft := fourier.NewFFT(n)

	coeffs := fft.Coefficients(nil, data)
	keep := len(coeffs) / 10
	if keep < 2 {
		keep = 2
	}
	for i := keep; i < len(coeffs); i++ {
		coeffs[i] = 0
	}

	out := fft.Sequence(nil, coeffs)
	scale := 1 / float64(n)
	for i := range out {
		out[i] *= scale
	}
	return out
}

// FitLength truncates or edge-pads a series to n entries. Weather data can
// come from a different year than the chart (leap-year mismatch).
func FitLength(data []float64, n int) []float64 {
	if len(data) == n {
		return data
	}
	if len(data) > n {
		return data[:n]
	}
	out := make([]float64, n)
	copy(out, data)
	last := 0.0
	if len(data) > 0 {
		last = data[len(data)-1]
	}
	for i := len(data); i < n; i++ {
		out[i] = last
	}
	return out
}
