package trapezoid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Result is the time-indexed record of one finished (or aborted) run: the
// uniform time grid, the raw state trajectory, and one named series per
// derived output, all index-aligned.
//
// A Result is filled monotonically forward by Simulate and never mutated
// afterwards; treat the returned slices as read-only. When a run aborts
// with a *StepError, the Result holds the valid prefix — every sample
// computed before the failing step.
type Result struct {
	times  []float64
	names  []string
	series map[string][]float64
	states *mat.Dense
}

func newResult(n int, stateDim int, dt float64, names []string) *Result {
	r := &Result{
		times:  make([]float64, n),
		names:  append([]string(nil), names...),
		series: make(map[string][]float64, len(names)),
		states: mat.NewDense(n, stateDim, nil),
	}
	for i := range r.times {
		r.times[i] = float64(i) * dt
	}
	for _, name := range names {
		r.series[name] = make([]float64, n)
	}
	return r
}

func (r *Result) setStep(i int, x *mat.VecDense, outputs []float64) {
	r.states.SetRow(i, x.RawVector().Data)
	for j, name := range r.names {
		r.series[name][i] = outputs[j]
	}
}

// truncate keeps the prefix [0, n) after a mid-run failure.
func (r *Result) truncate(n int) {
	r.times = r.times[:n]
	for name := range r.series {
		r.series[name] = r.series[name][:n]
	}
	r.states = r.states.Slice(0, n, 0, r.states.RawMatrix().Cols).(*mat.Dense)
}

// Len returns the number of samples in the record.
func (r *Result) Len() int { return len(r.times) }

// Times returns the uniform time grid, t[i] = i·dt.
func (r *Result) Times() []float64 { return r.times }

// OutputNames returns the recorded series names in topology order.
func (r *Result) OutputNames() []string { return append([]string(nil), r.names...) }

// States returns the raw state trajectory as a Len×n matrix; row i is the
// state vector at t[i].
func (r *Result) States() *mat.Dense { return r.states }

// Series returns the output series recorded under name, index-aligned with
// Times. Unknown names yield ErrUnknownSeries.
func (r *Result) Series(name string) ([]float64, error) {
	s, ok := r.series[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownSeries)
	}
	return s, nil
}

// Final returns the last sample of the named series.
func (r *Result) Final(name string) (float64, error) {
	s, err := r.Series(name)
	if err != nil {
		return 0, err
	}
	return s[len(s)-1], nil
}

// Peak returns the maximum sample of the named series.
func (r *Result) Peak(name string) (float64, error) {
	s, err := r.Series(name)
	if err != nil {
		return 0, err
	}
	return floats.Max(s), nil
}

// PeakAbs returns the largest magnitude reached by the named series,
// useful for oscillatory waveforms that swing negative.
func (r *Result) PeakAbs(name string) (float64, error) {
	s, err := r.Series(name)
	if err != nil {
		return 0, err
	}
	return math.Max(math.Abs(floats.Max(s)), math.Abs(floats.Min(s))), nil
}
