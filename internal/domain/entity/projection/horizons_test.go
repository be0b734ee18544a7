package projection

import (
	"errors"
	"reflect"
	"testing"
)

func TestRange(t *testing.T) {
	if got := Range(3); !reflect.DeepEqual(got, Horizons{1, 2, 3}) {
		t.Errorf("expected 1..3, got %v", got)
	}
	if got := Range(0); len(got) != 0 {
		t.Errorf("expected empty range, got %v", got)
	}
}

func TestParseHorizons(t *testing.T) {
	got, err := ParseHorizons(" 1, 5,10 ,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, Horizons{1, 5, 10}) {
		t.Errorf("expected [1 5 10], got %v", got)
	}

	for _, bad := range []string{"", "a", "1,x", " , "} {
		if _, err := ParseHorizons(bad); !errors.Is(err, ErrInvalidHorizon) {
			t.Errorf("%q: expected ErrInvalidHorizon, got %v", bad, err)
		}
	}
}

func TestHorizonsValidate(t *testing.T) {
	if err := (Horizons{0, 1, 12}).Validate(12); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, bad := range []Horizons{{}, {13}, {-1}, {2, 2}} {
		if err := bad.Validate(12); !errors.Is(err, ErrInvalidHorizon) {
			t.Errorf("%v: expected ErrInvalidHorizon, got %v", bad, err)
		}
	}
}
