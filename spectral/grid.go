package spectral

import "math"

// Catalog grid: closed interval [GridStart, GridEnd] nm at GridStep nm.
const (
	GridStart = 380
	GridEnd   = 780
	GridStep  = 5
	GridSize  = (GridEnd-GridStart)/GridStep + 1
)

// Grid is the fixed set of output wavelengths in nanometres.
type Grid [GridSize]float64

// StandardGrid returns 380, 385, ..., 780.
func StandardGrid() Grid {
	var g Grid
	for i := range g {
		g[i] = float64(GridStart + i*GridStep)
	}
	return g
}

// Key returns the integer nanometre value of grid point i.
func (g *Grid) Key(i int) int {
	return int(math.Round(g[i]))
}

// Index returns the grid index of wavelength nm, or -1 when nm is not a
// grid point.
func (g *Grid) Index(nm float64) int {
	for i, w := range g {
		if w == nm {
			return i
		}
	}
	return -1
}

// ResampledCurve holds one RGB response per grid point.
type ResampledCurve struct {
	Grid   Grid
	Values [GridSize]RGB
}

// Len returns the number of grid points.
func (c *ResampledCurve) Len() int { return GridSize }

// Key returns the integer nanometre value of grid point i.
func (c *ResampledCurve) Key(i int) int { return c.Grid.Key(i) }

// At returns the response at grid index i.
func (c *ResampledCurve) At(i int) RGB { return c.Values[i] }

// Channel returns the response of one channel across the grid.
func (c *ResampledCurve) Channel(ch Channel) []float64 {
	out := make([]float64, GridSize)
	for i := range c.Values {
		out[i] = c.Values[i][ch]
	}
	return out
}

// Wavelengths returns the grid as a slice.
func (c *ResampledCurve) Wavelengths() []float64 {
	out := make([]float64, GridSize)
	copy(out, c.Grid[:])
	return out
}
