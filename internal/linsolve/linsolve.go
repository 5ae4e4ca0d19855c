// Package linsolve solves small dense linear systems for the spline fitting
// code in spectral/interp.
package linsolve

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSingular is returned when elimination meets a zero pivot.
	ErrSingular = errors.New("linsolve: matrix is singular")
	// ErrDimension is returned when the matrix is not square or does not
	// match the right-hand side.
	ErrDimension = errors.New("linsolve: dimension mismatch")
)

// Solve solves a x = b using Gaussian elimination with partial pivoting.
// Neither a nor b is modified.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	if len(a) != n {
		return nil, fmt.Errorf("%w: %d rows, %d right-hand values", ErrDimension, len(a), n)
	}

	aug := make([][]float64, n)
	for i := range a {
		if len(a[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimension, i, len(a[i]), n)
		}
		row := make([]float64, n+1)
		copy(row, a[i])
		row[n] = b[i]
		aug[i] = row
	}

	// Forward elimination.
	for col := 0; col < n; col++ {
		pivot := col
		maxAbs := math.Abs(aug[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(aug[r][col]); v > maxAbs {
				maxAbs = v
				pivot = r
			}
		}
		if maxAbs == 0 {
			return nil, fmt.Errorf("%w: zero pivot in column %d", ErrSingular, col)
		}
		if pivot != col {
			aug[col], aug[pivot] = aug[pivot], aug[col]
		}
		for r := col + 1; r < n; r++ {
			factor := aug[r][col] / aug[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c <= n; c++ {
				aug[r][c] -= factor * aug[col][c]
			}
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug[i][n]
		for j := i + 1; j < n; j++ {
			sum -= aug[i][j] * x[j]
		}
		x[i] = sum / aug[i][i]
	}
	return x, nil
}
