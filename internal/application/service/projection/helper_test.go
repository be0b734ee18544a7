package projection

import (
	"context"
	"math"
	"testing"

	"bondprojector/internal/domain/entity/bonds"

	"github.com/google/uuid"
)

const epsilon = 1e-9

func bond(name string, rate float64, period int, buyoutCost float64, cp bonds.CapitalizationPeriod) bonds.Bond {
	return bonds.Bond{
		UID:                  bonds.NewID(name, period, rate),
		Name:                 name,
		Rate:                 rate,
		Period:               period,
		BuyoutCost:           buyoutCost,
		CapitalizationPeriod: cp,
	}
}

func seedBonds() []bonds.Bond {
	return []bonds.Bond{
		bond("ROR", 0.0575, 1, 0.5, bonds.Monthly),
		bond("DOR", 0.059, 2, 0.7, bonds.Monthly),
		bond("TOS", 0.0595, 3, 1, bonds.Yearly),
		bond("COI", 0.063, 4, 2, bonds.Yearly),
		bond("EDO", 0.0655, 10, 3, bonds.Yearly),
		bond("ROS", 0.065, 6, 2, bonds.Yearly),
		bond("ROS", 0.068, 12, 3, bonds.Yearly),
	}
}

func assertClose(t *testing.T, name string, expected, got float64) {
	t.Helper()
	if math.Abs(expected-got) > epsilon {
		t.Errorf("%s: expected %.10f, got %.10f", name, expected, got)
	}
}

type fakeCatalog struct {
	bonds     []bonds.Bond
	listCalls int
}

func (f *fakeCatalog) List(ctx context.Context) ([]bonds.Bond, error) {
	f.listCalls++
	out := make([]bonds.Bond, len(f.bonds))
	copy(out, f.bonds)
	return out, nil
}

func (f *fakeCatalog) Get(ctx context.Context, uid uuid.UUID) (bonds.Bond, error) {
	for _, b := range f.bonds {
		if b.UID == uid {
			return b, nil
		}
	}
	return bonds.Bond{}, bonds.ErrBondNotFound
}
