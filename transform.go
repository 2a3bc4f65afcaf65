package textplot

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
)

// ScaleFunc is a monotonic axis transform applied to data coordinates
// before they are mapped into pixel space. Monotonicity is a caller
// contract: non-monotonic functions produce nonsense orderings but are
// not detected here.
type ScaleFunc func(float64) float64

// Built-in axis scales.
var (
	IdentityScale ScaleFunc = func(v float64) float64 { return v }
	Log10Scale    ScaleFunc = math.Log10
	Log2Scale     ScaleFunc = math.Log2
	LnScale       ScaleFunc = math.Log
)

// Limits is a pair of axis bounds. The zero value means "auto": derive
// the bounds from the finite data range. Use NewLimits for explicit
// bounds so the pair [0, 0] stays expressible.
type Limits struct {
	Min, Max float64

	set bool
}

// NewLimits returns explicit axis bounds.
func NewLimits(min, max float64) Limits {
	return Limits{Min: min, Max: max, set: true}
}

// Auto reports whether the limits should be derived from the data. A
// nonzero literal pair counts as explicit even without NewLimits.
func (l Limits) Auto() bool { return !l.set && l.Min == 0 && l.Max == 0 }

// validate orders the pair and rejects non-finite bounds.
func (l Limits) validate() (Limits, error) {
	if math.IsNaN(l.Min) || math.IsNaN(l.Max) || math.IsInf(l.Min, 0) || math.IsInf(l.Max, 0) {
		return l, fmt.Errorf("%w: non-finite axis limits [%g, %g]", ErrInvalidArgument, l.Min, l.Max)
	}
	if l.Min > l.Max {
		l.Min, l.Max = l.Max, l.Min
	}
	return l, nil
}

// ExtendLimits resolves the axis bounds for one axis. Explicit limits
// are validated and passed through; auto limits come from the finite
// data range, rounded outward to the enclosing nice tick step. A
// degenerate range (min == max, including empty data) is padded so the
// resulting extent is always positive.
func ExtendLimits(data []float64, lim Limits) (Limits, error) {
	if !lim.Auto() {
		return lim.validate()
	}

	lo, hi := math.NaN(), math.NaN()
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if math.IsNaN(lo) || v < lo {
			lo = v
		}
		if math.IsNaN(hi) || v > hi {
			hi = v
		}
	}
	if math.IsNaN(lo) {
		return Limits{Min: -1, Max: 1}, nil
	}
	if lo == hi {
		return padDegenerate(lo), nil
	}
	lo, hi = niceLimits(lo, hi)
	return Limits{Min: lo, Max: hi}, nil
}

// padDegenerate widens a zero-width range around v: by one unit when v
// is 0, otherwise by 10% of its magnitude.
func padDegenerate(v float64) Limits {
	pad := math.Abs(v) / 10
	if pad == 0 {
		pad = 1
	}
	return Limits{Min: v - pad, Max: v + pad}
}

// niceLimits rounds [lo, hi] outward to multiples of the major tick
// step chosen for the range.
func niceLimits(lo, hi float64) (float64, float64) {
	lin := scale.Linear{Min: lo, Max: hi}
	major, _ := lin.Ticks(scale.TickOptions{Max: 6})
	if len(major) < 2 {
		return lo, hi
	}
	step := major[1] - major[0]
	return math.Floor(lo/step) * step, math.Ceil(hi/step) * step
}

// axisTicks returns up to max nice tick values inside [lo, hi]. Used for
// the colorbar legend; 2D axis decorations only show the limits
// themselves.
func axisTicks(lo, hi float64, max int) []float64 {
	if lo >= hi {
		return []float64{lo}
	}
	lin := scale.Linear{Min: lo, Max: hi}
	major, _ := lin.Ticks(scale.TickOptions{Max: max})
	return major
}

// unit maps v to [0, 1] between origin and origin+extent under the given
// scale, clamping nothing: callers decide what to do with out-of-range
// values. A zero extent maps everything to the center so a degenerate
// canvas never divides by zero.
func unit(v, origin, extent float64, sf ScaleFunc) float64 {
	if sf == nil {
		sf = IdentityScale
	}
	lo, hi := sf(origin), sf(origin+extent)
	if lo == hi {
		return 0.5
	}
	return scale.Linear{Min: lo, Max: hi}.Map(sf(v))
}

// formatValue renders an axis value the way tick labels are formatted.
func formatValue(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
