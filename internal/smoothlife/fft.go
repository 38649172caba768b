package smoothlife

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"smoothlife/internal/core"
)

// FFTStepper evaluates the same neighbourhood sums as DirectStepper through
// circular convolution in the frequency domain. It is bound to a single grid
// size and is not safe for concurrent use.
//
// Rows use a real FFT (only w/2+1 coefficients are stored), columns a
// complex FFT. Results agree with DirectStepper to within rounding.
type FFTStepper struct {
	w, h  int
	halfW int
	norm  float64

	maxInner float64
	maxOuter float64

	rows *fourier.FFT
	cols *fourier.CmplxFFT

	innerFreq []complex128
	outerFreq []complex128

	freq  []complex128
	work  []complex128
	col   []complex128
	inner []float64
	outer []float64
}

// NewFFTStepper pre-transforms the inner and outer weights of k wrapped onto
// a w×h torus.
func NewFFTStepper(k *Kernel, w, h int) *FFTStepper {
	halfW := w/2 + 1
	s := &FFTStepper{
		w:         w,
		h:         h,
		halfW:     halfW,
		norm:      1 / float64(w*h),
		maxInner:  k.MaxInner,
		maxOuter:  k.MaxOuter,
		rows:      fourier.NewFFT(w),
		cols:      fourier.NewCmplxFFT(h),
		innerFreq: make([]complex128, h*halfW),
		outerFreq: make([]complex128, h*halfW),
		freq:      make([]complex128, h*halfW),
		work:      make([]complex128, h*halfW),
		col:       make([]complex128, h),
		inner:     make([]float64, w*h),
		outer:     make([]float64, w*h),
	}

	// Sampling src[x+dx] with weight k is a convolution with the weight
	// placed at -dx. Offsets beyond the grid fold onto the same cell, which
	// is what repeated wraparound sampling does in the direct loop.
	innerPlane := make([]float64, w*h)
	outerPlane := make([]float64, w*h)
	for _, e := range k.Entries {
		idx := wrap(-e.DY, h)*w + wrap(-e.DX, w)
		innerPlane[idx] += e.Inner
		outerPlane[idx] += e.Outer
	}
	s.forward(s.innerFreq, innerPlane)
	s.forward(s.outerFreq, outerPlane)
	return s
}

// Step advances src by one generation into dst.
func (s *FFTStepper) Step(src, dst *core.Grid) {
	checkGrids(src, dst)
	if src.W != s.w || src.H != s.h {
		invariant("fft stepper built for %dx%d, got %dx%d", s.w, s.h, src.W, src.H)
	}

	s.forward(s.freq, src.Cells())

	for i, f := range s.freq {
		s.work[i] = f * s.outerFreq[i]
	}
	s.inverse(s.outer, s.work)
	for i, f := range s.freq {
		s.work[i] = f * s.innerFreq[i]
	}
	s.inverse(s.inner, s.work)

	out := dst.Cells()
	for i := range out {
		n := s.outer[i] * s.norm / s.maxOuter
		m := s.inner[i] * s.norm / s.maxInner
		out[i] = Transition(n, m)
	}
}

// forward computes the unnormalised 2D transform of plane into dst.
func (s *FFTStepper) forward(dst []complex128, plane []float64) {
	for y := 0; y < s.h; y++ {
		s.rows.Coefficients(dst[y*s.halfW:(y+1)*s.halfW], plane[y*s.w:(y+1)*s.w])
	}
	for x := 0; x < s.halfW; x++ {
		for y := 0; y < s.h; y++ {
			s.col[y] = dst[y*s.halfW+x]
		}
		s.cols.Coefficients(s.col, s.col)
		for y := 0; y < s.h; y++ {
			dst[y*s.halfW+x] = s.col[y]
		}
	}
}

// inverse computes the unnormalised inverse transform of freq into plane.
// freq is overwritten.
func (s *FFTStepper) inverse(plane []float64, freq []complex128) {
	for x := 0; x < s.halfW; x++ {
		for y := 0; y < s.h; y++ {
			s.col[y] = freq[y*s.halfW+x]
		}
		s.cols.Sequence(s.col, s.col)
		for y := 0; y < s.h; y++ {
			freq[y*s.halfW+x] = s.col[y]
		}
	}
	for y := 0; y < s.h; y++ {
		s.rows.Sequence(plane[y*s.w:(y+1)*s.w], freq[y*s.halfW:(y+1)*s.halfW])
	}
}
