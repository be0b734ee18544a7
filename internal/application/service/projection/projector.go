package projection

import (
	"math"

	"bondprojector/internal/domain/entity/bonds"
	"bondprojector/internal/domain/entity/projection"
)

// Project returns the value gained by holding in.StartBonds units of b for years.
//
// Every subdivision first turns each full bonds.UnitValue of carried cash into
// one more unit, then accrues interest on the units held. Interest from the
// last subdivision stays in cash. The result is that cash plus the value of
// the units bought.
//
// With applyBuyout, liquidating off the bond's cycle costs BuyoutCost for every
// unit held at the horizon, starting units included.
func Project(b bonds.Bond, in projection.Inputs, years int, applyBuyout bool) float64 {
	rate := b.PeriodicRate()
	steps := b.Subdivisions(years)

	cash := 0.0
	units := in.StartBonds
	for i := 0; i < steps; i++ {
		units += int64(math.Floor(cash / bonds.UnitValue))
		cash = math.Mod(cash, bonds.UnitValue)
		cash += float64(units) * rate * bonds.UnitValue
	}

	value := cash + float64(units-in.StartBonds)*bonds.UnitValue
	if applyBuyout && b.BuyoutApplies(years) {
		value -= b.BuyoutCost * float64(units)
	}
	return value
}

// FirstPayout is the interest paid out on the starting cash after one subdivision.
func FirstPayout(b bonds.Bond, in projection.Inputs) float64 {
	return b.PeriodicRate() * float64(in.StartCash)
}

// ProjectRow computes every horizon for one bond.
func ProjectRow(b bonds.Bond, in projection.Inputs, horizons projection.Horizons) projection.Row {
	row := projection.Row{
		Bond:        b,
		FirstPayout: FirstPayout(b, in),
		Values:      make([]projection.Value, 0, len(horizons)),
	}
	for _, years := range horizons {
		row.Values = append(row.Values, projection.Value{
			Years:  years,
			Value:  Project(b, in, years, false),
			Buyout: Project(b, in, years, true),
		})
	}
	return row
}
