package options

// WithEpsilon returns a [GeometryOptionsFunc] that sets the Epsilon value for functions that support it.
// Epsilon is a small nonnegative value used to adjust for floating-point precision errors,
// ensuring numerical stability in geometric calculations. Values within [-epsilon, epsilon]
// of each other are treated as equal.
//
// Negative epsilon is not clamped here: callers that must reject ε<0 (per their own contract)
// validate it themselves and return errs.ErrInvalidArgument.
func WithEpsilon(epsilon float64) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		opts.Epsilon = epsilon
	}
}
