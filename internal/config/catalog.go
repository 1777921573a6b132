package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/swatches/internal/preset"
	swatcherrors "github.com/alexisbeaulieu97/swatches/pkg/errors"
)

// CatalogFile is a YAML document of named presets.
type CatalogFile struct {
	Presets map[string]preset.Definition `yaml:"presets" validate:"required,min=1,dive"`
}

// LoadCatalog reads and validates a preset catalog file.
func LoadCatalog(path string) (preset.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, swatcherrors.NewParseError(path, 0, err)
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, swatcherrors.NewParseError(path, extractLine(err), err)
	}

	if err := validatorInstance().Struct(file); err != nil {
		return nil, convertValidationError(err)
	}

	catalog := make(preset.Catalog, len(file.Presets))
	for _, name := range preset.Catalog(file.Presets).Names() {
		def := file.Presets[name]
		if def.Swatches.Len() == 0 {
			return nil, swatcherrors.NewValidationError(fmt.Sprintf("presets.%s.swatches", name), "preset has no swatches", nil)
		}
		catalog[name] = def
	}

	return catalog, nil
}

// Registry layers the catalog at path, when given, over the built-in presets.
func Registry(path string) (preset.Layered, error) {
	if path == "" {
		return preset.Layered{preset.Builtin()}, nil
	}
	catalog, err := LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	return preset.Layered{catalog, preset.Builtin()}, nil
}
