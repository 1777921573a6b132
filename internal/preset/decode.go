package preset

import (
	"fmt"

	"gopkg.in/yaml.v3"

	swatcherrors "github.com/alexisbeaulieu97/swatches/pkg/errors"
)

// DecodeColorSequence reads a YAML sequence as either a flat color list or a
// list of rows. Exactly one of the returned slices is non-nil on success.
func DecodeColorSequence(node *yaml.Node) ([]string, [][]string, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.SequenceNode {
		return nil, nil, swatcherrors.NewInvalidColorsInputError(
			fmt.Sprintf("line %d: expected a sequence of colors", node.Line), nil)
	}

	if len(node.Content) == 0 {
		return []string{}, nil, nil
	}

	if node.Content[0].Kind == yaml.SequenceNode {
		rows := make([][]string, 0, len(node.Content))
		for i, child := range node.Content {
			if child.Kind != yaml.SequenceNode {
				return nil, nil, swatcherrors.NewInvalidColorsInputError(
					fmt.Sprintf("line %d: row %d mixes colors and rows", child.Line, i), nil)
			}
			row, err := decodeScalars(child)
			if err != nil {
				return nil, nil, err
			}
			rows = append(rows, row)
		}
		return nil, rows, nil
	}

	flat, err := decodeScalars(node)
	if err != nil {
		return nil, nil, err
	}
	return flat, nil, nil
}

func decodeScalars(node *yaml.Node) ([]string, error) {
	colors := make([]string, 0, len(node.Content))
	for _, child := range node.Content {
		if child.Kind != yaml.ScalarNode {
			return nil, swatcherrors.NewInvalidColorsInputError(
				fmt.Sprintf("line %d: expected a color string", child.Line), nil)
		}
		colors = append(colors, child.Value)
	}
	return colors, nil
}
