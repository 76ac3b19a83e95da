package physics

import "sort"

// sample is one (input, output) row of a lookup table.
type sample struct {
	in  float64
	out float64
}

// table is a lookup table sorted by ascending input. Lookups interpolate
// linearly between rows and clamp to the first/last row outside the range.
type table []sample

// lookup returns the interpolated output for x.
func (t table) lookup(x float64) float64 {
	if len(t) == 0 {
		return 0
	}
	if x <= t[0].in {
		return t[0].out
	}
	last := t[len(t)-1]
	if x >= last.in {
		return last.out
	}

	// first row with in > x; x is strictly inside the table here
	i := sort.Search(len(t), func(i int) bool { return t[i].in > x })
	lo, hi := t[i-1], t[i]
	return linearInterpolate(lo.in, lo.out, hi.in, hi.out, x)
}

// linearInterpolate maps x on the segment (x0,y0)-(x1,y1).
func linearInterpolate(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}
