package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	domain "bondprojector/internal/domain/entity/bonds"
	"bondprojector/internal/domain/interfaces"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

var ErrEmptyCatalog = errors.New("catalog has no bonds")

type bondModel struct {
	Name                 string  `yaml:"name"`
	Rate                 float64 `yaml:"rate"`
	Period               int     `yaml:"period"`
	BuyoutCost           float64 `yaml:"buyout_cost"`
	CapitalizationPeriod string  `yaml:"capitalization_period"`
}

type catalogModel struct {
	Bonds []bondModel `yaml:"bonds"`
}

func (m bondModel) toDomain() (domain.Bond, error) {
	if m.Name == "" {
		return domain.Bond{}, errors.New("name is required")
	}
	if m.Period <= 0 {
		return domain.Bond{}, fmt.Errorf("period must be positive, got %d", m.Period)
	}
	cp, err := domain.NewCapitalizationPeriod(m.CapitalizationPeriod)
	if err != nil {
		return domain.Bond{}, err
	}
	return domain.Bond{
		UID:                  domain.NewID(m.Name, m.Period, m.Rate),
		Name:                 m.Name,
		Rate:                 m.Rate,
		Period:               m.Period,
		BuyoutCost:           m.BuyoutCost,
		CapitalizationPeriod: cp,
	}, nil
}

// Repository is the static, read-only catalog. It is seeded once and never mutated.
type Repository struct {
	bonds []domain.Bond
	index map[uuid.UUID]int
}

var _ interfaces.CatalogRepository = (*Repository)(nil)

// NewRepository seeds the catalog from path, or from the embedded default when path is empty.
func NewRepository(path string) (*Repository, error) {
	data := defaultCatalogYAML
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
		data = raw
	}
	return Parse(data)
}

// Parse builds a repository from a YAML document.
func Parse(data []byte) (*Repository, error) {
	var model catalogModel
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&model); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(model.Bonds) == 0 {
		return nil, ErrEmptyCatalog
	}

	r := &Repository{
		bonds: make([]domain.Bond, 0, len(model.Bonds)),
		index: make(map[uuid.UUID]int, len(model.Bonds)),
	}
	for i, m := range model.Bonds {
		bond, err := m.toDomain()
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if _, dup := r.index[bond.UID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate bond %s", i, bond.Name)
		}
		r.index[bond.UID] = len(r.bonds)
		r.bonds = append(r.bonds, bond)
	}
	return r, nil
}

// List returns a copy of the catalog in seeded order.
func (r *Repository) List(ctx context.Context) ([]domain.Bond, error) {
	out := make([]domain.Bond, len(r.bonds))
	copy(out, r.bonds)
	return out, nil
}

func (r *Repository) Get(ctx context.Context, uid uuid.UUID) (domain.Bond, error) {
	i, ok := r.index[uid]
	if !ok {
		return domain.Bond{}, domain.ErrBondNotFound
	}
	return r.bonds[i], nil
}

func (r *Repository) Len() int { return len(r.bonds) }
