package savgol

import "fmt"

// stencil is one tabulated entry. coeffs[0] is the normalization divisor,
// coeffs[1:] the weights in window order; len(coeffs) == size+1.
type stencil struct {
	size   int
	coeffs []float64
}

// Catalog maps the supported window sizes of one family to their stencils.
// Catalogs are package-level, read-only data.
type Catalog struct {
	family  Family
	entries []stencil
}

// CatalogOf returns the catalog of family f.
func CatalogOf(f Family) (*Catalog, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFamily, int(f))
	}
	return catalogs[f], nil
}

// Family returns the family the catalog belongs to.
func (c *Catalog) Family() Family {
	return c.family
}

// Supports reports whether windowSize is tabulated.
func (c *Catalog) Supports(windowSize int) bool {
	return c.find(windowSize) != nil
}

// Lookup returns the divisor and a copy of the weights for windowSize.
func (c *Catalog) Lookup(windowSize int) (norm float64, weights []float64, err error) {
	s := c.find(windowSize)
	if s == nil {
		return 0, nil, fmt.Errorf("%w: %s does not tabulate window size %d (supported: %v)",
			ErrUnsupportedWindowSize, c.family, windowSize, c.Sizes())
	}
	weights = make([]float64, s.size)
	copy(weights, s.coeffs[1:])
	return s.coeffs[0], weights, nil
}

// Sizes returns the supported window sizes in ascending order.
func (c *Catalog) Sizes() []int {
	out := make([]int, len(c.entries))
	for i, s := range c.entries {
		out[i] = s.size
	}
	return out
}

// find scans the entries; catalogs hold at most eleven sizes.
func (c *Catalog) find(windowSize int) *stencil {
	for i := range c.entries {
		if c.entries[i].size == windowSize {
			return &c.entries[i]
		}
	}
	return nil
}
