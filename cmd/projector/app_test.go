package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CATALOG_FILE", "")
	t.Setenv("CURRENCY", "USD")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out bytes.Buffer
	app := newApp(logger)
	app.Writer = &out
	app.ErrWriter = io.Discard

	err := app.Run(append([]string{"projector"}, args...))
	return out.String(), err
}

func TestSync(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"cash rounds down", []string{"--start-cash", "10050"}, "start_cash=10000 start_bonds=100\n"},
		{"cash below one bond", []string{"--start-cash", "99"}, "start_cash=0 start_bonds=0\n"},
		{"bonds", []string{"--start-bonds", "7"}, "start_cash=700 start_bonds=7\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"sync"}, tt.args...)...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, out)
			}
		})
	}
}

func TestSyncRequiresOneInput(t *testing.T) {
	if _, err := run(t, "sync"); err == nil {
		t.Error("expected error without inputs")
	}
	_, err := run(t, "sync", "--start-cash", "100", "--start-bonds", "1")
	if !errors.Is(err, errConflictingInputs) {
		t.Errorf("expected errConflictingInputs, got %v", err)
	}
}

func TestTablePlain(t *testing.T) {
	out, err := run(t, "table", "--plain", "--start-bonds", "100", "--years", "1,2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"ROR", "EDO", "$586.98", "$1,242.44"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTableRejectsBadYears(t *testing.T) {
	if _, err := run(t, "table", "--plain", "--years", "1,x"); err == nil {
		t.Error("expected error for malformed years")
	}
	if _, err := run(t, "table", "--plain", "--start-cash", "-5"); err == nil {
		t.Error("expected error for negative cash")
	}
}

func TestCatalogMonthly(t *testing.T) {
	out, err := run(t, "catalog", "--plain", "--monthly")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "ROR") || !strings.Contains(out, "DOR") {
		t.Errorf("expected monthly bonds in output:\n%s", out)
	}
	if strings.Contains(out, "EDO") {
		t.Errorf("yearly bond listed with --monthly:\n%s", out)
	}
}

func TestUnknownCurrency(t *testing.T) {
	if _, err := run(t, "--currency", "XYZ", "catalog", "--plain"); err == nil {
		t.Error("expected error for unknown currency")
	}
}
