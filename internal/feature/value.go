// Package feature computes normalized geometric scalars from landmark sets.
// Face features are scale-invariant ratios normalized by face width/height so
// classifier thresholds hold at any distance from the camera.
package feature

// Value is the result of a single feature computation. A feature over
// missing or degenerate landmarks is not computable; the classifier decides
// which default stands in, so fault handling stays visible at the call site
// instead of being swallowed inside the math.
type Value struct {
	v  float64
	ok bool
}

// Computed wraps a successfully computed feature value.
func Computed(v float64) Value {
	return Value{v: v, ok: true}
}

// NotComputable marks a feature that could not be derived from the
// available landmarks.
func NotComputable() Value {
	return Value{}
}

// OK reports whether the feature was computed.
func (val Value) OK() bool {
	return val.ok
}

// Or returns the computed value, or fallback if the feature was not
// computable.
func (val Value) Or(fallback float64) float64 {
	if !val.ok {
		return fallback
	}
	return val.v
}
