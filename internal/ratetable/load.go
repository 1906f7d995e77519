package ratetable

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"taxgrid/internal/errors"
)

// Load reads a rate table from a YAML file. Operators can point the service
// at an alternative table without a rebuild; tests use it for fixtures.
func Load(path string) (*Table, error) {
	koanfInstance := koanf.New(".")

	if err := koanfInstance.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read rate table %s failed", path)
	}

	table := new(Table)
	if err := koanfInstance.Unmarshal("", table); err != nil {
		return nil, errors.Wrapf(err, "unmarshal rate table %s failed", path)
	}

	return table, nil
}
