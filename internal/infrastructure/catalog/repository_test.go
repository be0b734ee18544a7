package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	domain "bondprojector/internal/domain/entity/bonds"
)

func TestNewRepository_DefaultSeed(t *testing.T) {
	repo, err := NewRepository("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := []string{"ROR", "DOR", "TOS", "COI", "EDO", "ROS", "ROS"}
	if len(all) != len(names) {
		t.Fatalf("expected %d bonds, got %d", len(names), len(all))
	}
	for i, name := range names {
		if all[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, all[i].Name)
		}
	}
	if all[0].CapitalizationPeriod != domain.Monthly || all[2].CapitalizationPeriod != domain.Yearly {
		t.Errorf("unexpected capitalization periods: %s, %s", all[0].CapitalizationPeriod, all[2].CapitalizationPeriod)
	}
	if all[4].Rate != 0.0655 || all[4].Period != 10 || all[4].BuyoutCost != 3 {
		t.Errorf("unexpected EDO entry: %+v", all[4])
	}
}

func TestRepository_ListIsACopy(t *testing.T) {
	repo, _ := NewRepository("")
	ctx := context.Background()

	first, _ := repo.List(ctx)
	first[0].Rate = 1

	second, _ := repo.List(ctx)
	if second[0].Rate == 1 {
		t.Errorf("expected catalog to be immutable through List")
	}
}

func TestRepository_Get(t *testing.T) {
	repo, _ := NewRepository("")
	ctx := context.Background()
	all, _ := repo.List(ctx)

	got, err := repo.Get(ctx, all[6].UID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Period != 12 {
		t.Errorf("expected the 12 year ROS, got period %d", got.Period)
	}

	if _, err := repo.Get(ctx, domain.NewID("XYZ", 1, 0.01)); !errors.Is(err, domain.ErrBondNotFound) {
		t.Errorf("expected ErrBondNotFound, got %v", err)
	}
}

func TestNewRepository_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte(`bonds:
  - name: OTS
    rate: 0.03
    period: 1
    buyout_cost: 0
    capitalization_period: yearly
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo, err := NewRepository(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.Len() != 1 {
		t.Errorf("expected 1 bond, got %d", repo.Len())
	}

	if _, err := NewRepository(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":          `bonds: []`,
		"unknown field":  "bonds:\n  - name: A\n    rate: 0.1\n    period: 1\n    capitalization_period: yearly\n    coupon: 2\n",
		"bad period":     "bonds:\n  - name: A\n    rate: 0.1\n    period: 0\n    capitalization_period: yearly\n",
		"bad cap period": "bonds:\n  - name: A\n    rate: 0.1\n    period: 1\n    capitalization_period: daily\n",
		"missing name":   "bonds:\n  - rate: 0.1\n    period: 1\n    capitalization_period: yearly\n",
		"duplicate":      "bonds:\n  - name: A\n    rate: 0.1\n    period: 1\n    capitalization_period: yearly\n  - name: A\n    rate: 0.1\n    period: 1\n    capitalization_period: monthly\n",
	}
	for name, doc := range tests {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
