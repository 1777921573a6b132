package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	swatcherrors "github.com/alexisbeaulieu97/swatches/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseOptions loads an options file from disk, validates it, and returns the result.
func ParseOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, swatcherrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates an options document. path is only used in errors.
func Parse(path string, data []byte) (*Options, error) {
	opts := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return nil, swatcherrors.NewParseError(path, extractLine(err), err)
		}
	}

	if err := ValidateOptions(&opts); err != nil {
		return nil, err
	}

	return &opts, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
