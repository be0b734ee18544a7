package projection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidHorizon = errors.New("invalid horizon")

// Horizons lists the year counts a table is computed for.
type Horizons []int

// Range returns the horizons 1..n.
func Range(n int) Horizons {
	h := make(Horizons, 0, n)
	for y := 1; y <= n; y++ {
		h = append(h, y)
	}
	return h
}

// ParseHorizons parses a comma separated list such as "1,2,5".
func ParseHorizons(s string) (Horizons, error) {
	parts := strings.Split(s, ",")
	h := make(Horizons, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		y, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHorizon, p)
		}
		h = append(h, y)
	}
	if len(h) == 0 {
		return nil, fmt.Errorf("%w: empty list", ErrInvalidHorizon)
	}
	return h, nil
}

// Validate checks every horizon lies within 0..limit and appears once.
func (h Horizons) Validate(limit int) error {
	if len(h) == 0 {
		return fmt.Errorf("%w: empty list", ErrInvalidHorizon)
	}
	seen := make(map[int]bool, len(h))
	for _, y := range h {
		if y < 0 || y > limit {
			return fmt.Errorf("%w: %d is outside 0..%d", ErrInvalidHorizon, y, limit)
		}
		if seen[y] {
			return fmt.Errorf("%w: %d is duplicated", ErrInvalidHorizon, y)
		}
		seen[y] = true
	}
	return nil
}

func (h Horizons) Key() string {
	parts := make([]string, len(h))
	for i, y := range h {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, ",")
}

// order arranges values in horizon order. Values for years not in h follow
// in their original order.
func (h Horizons) order(values []Value) []Value {
	out := make([]Value, 0, len(values))
	used := make([]bool, len(values))
	for _, years := range h {
		for i, v := range values {
			if !used[i] && v.Years == years {
				out = append(out, v)
				used[i] = true
				break
			}
		}
	}
	for i, v := range values {
		if !used[i] {
			out = append(out, v)
		}
	}
	return out
}
