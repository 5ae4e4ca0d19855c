// Package interp provides interpolants for sparse, strictly increasing
// sample tables.
//
// Available methods:
//
//   - [MethodQuadratic]: interpolating quadratic B-spline (default)
//   - [MethodLinear]:    piecewise linear
//
// Every interpolant passes through its samples exactly. Evaluation outside
// the sample domain is the caller's concern: [Interpolant.Domain] reports the
// closed interval the interpolant is defined on, and Eval clamps to it.
package interp
