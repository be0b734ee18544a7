package projection

import (
	"errors"
	"testing"
)

func TestCommitStartCash(t *testing.T) {
	tests := []struct {
		cash          int64
		expectedCash  int64
		expectedBonds int64
	}{
		{10050, 10000, 100},
		{10000, 10000, 100},
		{99, 0, 0},
		{0, 0, 0},
		{-50, -100, -1},
	}
	for _, tt := range tests {
		in := DefaultInputs()
		in.CommitStartCash(tt.cash)
		if in.StartCash != tt.expectedCash || in.StartBonds != tt.expectedBonds {
			t.Errorf("cash %d: expected %d/%d, got %d/%d", tt.cash, tt.expectedCash, tt.expectedBonds, in.StartCash, in.StartBonds)
		}
		if !in.Consistent() {
			t.Errorf("cash %d: inputs out of sync: %+v", tt.cash, in)
		}
	}
}

func TestCommitStartBonds(t *testing.T) {
	in := DefaultInputs()
	in.CommitStartBonds(50)
	if in.StartCash != 5000 || in.StartBonds != 50 {
		t.Errorf("expected 5000/50, got %d/%d", in.StartCash, in.StartBonds)
	}
	if !in.Consistent() {
		t.Errorf("inputs out of sync: %+v", in)
	}
}

func TestSyncHelpers(t *testing.T) {
	if got := SyncFromCash(10050); got != (Inputs{StartCash: 10000, StartBonds: 100}) {
		t.Errorf("unexpected sync from cash: %+v", got)
	}
	if got := SyncFromBonds(7); got != (Inputs{StartCash: 700, StartBonds: 7}) {
		t.Errorf("unexpected sync from bonds: %+v", got)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultInputs().Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := SyncFromCash(-100).Validate(); !errors.Is(err, ErrNegativeInput) {
		t.Errorf("expected ErrNegativeInput, got %v", err)
	}
}
