package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// Boundary decides which neighbor positions take part in a neighbor count.
// Positions outside the grid never wrap around.
type Boundary int

const (
	// BoundaryAsymmetric counts a neighbor only when nx > 0 && ny > 0 && nx < w && ny < h,
	// so column 0 and row 0 never contribute to any count.
	BoundaryAsymmetric Boundary = iota
	// BoundarySymmetric counts every in-range neighbor.
	BoundarySymmetric
)

const (
	boundaryAsymmetricName = "asymmetric"
	boundarySymmetricName  = "symmetric"
)

// Contains reports whether (x, y) is counted as a neighbor position on a width x height grid.
func (b Boundary) Contains(x, y, width, height int) bool {
	if x >= width || y >= height {
		return false
	}
	if b == BoundarySymmetric {
		return x >= 0 && y >= 0
	}
	return x > 0 && y > 0
}

func (b Boundary) String() string {
	switch b {
	case BoundaryAsymmetric:
		return boundaryAsymmetricName
	case BoundarySymmetric:
		return boundarySymmetricName
	}
	return "unknown"
}

// ParseBoundary converts a configuration value into a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", boundaryAsymmetricName:
		return BoundaryAsymmetric, nil
	case boundarySymmetricName:
		return BoundarySymmetric, nil
	}
	return BoundaryAsymmetric, errors.Errorf("[ParseBoundary] unknown boundary: %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (b Boundary) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Boundary) UnmarshalText(text []byte) error {
	parsed, err := ParseBoundary(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Set implements flag.Value.
func (b *Boundary) Set(s string) error {
	return b.UnmarshalText([]byte(s))
}
