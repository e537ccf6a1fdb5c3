package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pinecut/quote-service/internal/domain/model"
)

// bandsFile is the on-disk shape of a pricing ladder file.
type bandsFile struct {
	Bands []model.PricingBand `yaml:"bands"`
}

// LoadBands reads a static pricing ladder from a YAML file. An empty path
// returns the built-in default ladder. Band order in the file is preserved:
// first match wins, so ceilings must ascend with the unbounded band last.
func LoadBands(path string) (model.BandLadder, error) {
	if path == "" {
		return model.DefaultLadder, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pricing bands file: %w", err)
	}

	var f bandsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse pricing bands file: %w", err)
	}
	if len(f.Bands) == 0 {
		return nil, fmt.Errorf("pricing bands file %s defines no bands", path)
	}

	for i, b := range f.Bands {
		if b.Name == "" {
			return nil, fmt.Errorf("pricing band %d has no name", i)
		}
		if b.Price <= 0 {
			return nil, fmt.Errorf("pricing band %q has non-positive price", b.Name)
		}
	}

	return model.BandLadder(f.Bands), nil
}
