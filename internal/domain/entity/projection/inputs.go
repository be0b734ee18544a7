package projection

import (
	"errors"
	"fmt"

	"bondprojector/internal/domain/entity/bonds"
)

const (
	DefaultStartCash  = 10000
	DefaultStartBonds = DefaultStartCash / bonds.UnitValue
)

var ErrNegativeInput = errors.New("start cash and start bonds must not be negative")

// Inputs are the two user-controlled projection fields. They are kept in sync
// so that StartCash == StartBonds * bonds.UnitValue after every commit.
type Inputs struct {
	StartCash  int64 `json:"start_cash"`
	StartBonds int64 `json:"start_bonds"`
}

func DefaultInputs() Inputs {
	return Inputs{StartCash: DefaultStartCash, StartBonds: DefaultStartBonds}
}

// CommitStartCash rounds cash down to a whole number of bonds and derives the bond count.
func (in *Inputs) CommitStartCash(cash int64) {
	in.StartBonds = floorDiv(cash, bonds.UnitValue)
	in.StartCash = in.StartBonds * bonds.UnitValue
}

// CommitStartBonds derives the cash amount from the bond count.
func (in *Inputs) CommitStartBonds(count int64) {
	in.StartBonds = count
	in.StartCash = count * bonds.UnitValue
}

func SyncFromCash(cash int64) Inputs {
	var in Inputs
	in.CommitStartCash(cash)
	return in
}

func SyncFromBonds(count int64) Inputs {
	var in Inputs
	in.CommitStartBonds(count)
	return in
}

func (in Inputs) Consistent() bool {
	return in.StartCash == in.StartBonds*bonds.UnitValue
}

func (in Inputs) Validate() error {
	if in.StartCash < 0 || in.StartBonds < 0 {
		return ErrNegativeInput
	}
	return nil
}

func (in Inputs) Key() string {
	return fmt.Sprintf("%d:%d", in.StartCash, in.StartBonds)
}

// floorDiv rounds towards negative infinity, so -50 cash becomes -1 bond.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
