package bonds

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// UnitValue is the nominal cash value of a single bond.
const UnitValue = 100

var (
	ErrBondNotFound                = errors.New("bond not found")
	ErrInvalidCapitalizationPeriod = errors.New("invalid capitalization period")
)

type CapitalizationPeriod string

const (
	Monthly CapitalizationPeriod = "monthly"
	Yearly  CapitalizationPeriod = "yearly"
)

func (cp CapitalizationPeriod) String() string {
	return string(cp)
}

func (cp CapitalizationPeriod) IsValid() bool {
	switch cp {
	case Monthly, Yearly:
		return true
	default:
		return false
	}
}

func NewCapitalizationPeriod(s string) (CapitalizationPeriod, error) {
	cp := CapitalizationPeriod(s)
	if !cp.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCapitalizationPeriod, s)
	}
	return cp, nil
}

// Bond is a catalog entry. Period is the natural lock-in cycle in years and
// BuyoutCost is charged per held bond when liquidating off-cycle.
type Bond struct {
	UID                  uuid.UUID            `json:"uid"`
	Name                 string               `json:"name"`
	Rate                 float64              `json:"rate"`
	Period               int                  `json:"period"`
	BuyoutCost           float64              `json:"buyoutCost"`
	CapitalizationPeriod CapitalizationPeriod `json:"capitalizationPeriod"`
}

func (b Bond) IsMonthly() bool { return b.CapitalizationPeriod == Monthly }

// PeriodicRate is the rate applied on every compounding step.
func (b Bond) PeriodicRate() float64 {
	if b.CapitalizationPeriod == Yearly {
		return b.Rate
	}
	return b.Rate / 12
}

// Subdivisions returns the number of compounding steps within years.
func (b Bond) Subdivisions(years int) int {
	if b.CapitalizationPeriod == Yearly {
		return years
	}
	return years * 12
}

// BuyoutApplies reports whether liquidating after years falls off the bond's cycle.
func (b Bond) BuyoutApplies(years int) bool {
	if b.Period <= 0 {
		return false
	}
	return years%b.Period != 0
}

// IsMonthly is the catalog filter for monthly-capitalizing bonds.
func IsMonthly(b Bond) bool { return b.IsMonthly() }

// NewID derives a stable identifier; names alone are not unique in the catalog.
func NewID(name string, period int, rate float64) uuid.UUID {
	key := name + "/" + strconv.Itoa(period) + "/" + strconv.FormatFloat(rate, 'f', -1, 64)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
}
