package preset

// Builtin returns the catalog shipped with the picker.
func Builtin() Catalog {
	return Catalog{
		"simple": {
			Swatches: FlatSwatches(
				"#1FBC9C", "#1CA085", "#2ECC70", "#27AF60",
				"#3398DB", "#2980B9", "#A463BF", "#8E43AD",
				"#3D556E", "#222F3D", "#F2C511", "#F39C19",
				"#E84B3C", "#C0382B", "#DDE6E8", "#BDC3C8",
			),
			Layout: Layout{RowLength: intPtr(4)},
		},
		"basic": {
			Swatches: FlatSwatches(
				"#1FBC9C", "#1CA085", "#2ECC70", "#27AF60", "#3398DB", "#2980B9", "#A463BF", "#8E43AD",
				"#3D556E", "#222F3D", "#F2C511", "#F39C19", "#E84B3C", "#C0382B", "#DDE6E8", "#BDC3C8",
			),
			Layout: Layout{RowLength: intPtr(8), SwatchSize: intPtr(36)},
		},
		"material-simple": {
			Swatches: FlatSwatches(
				"#F44336", "#E91E63", "#9C27B0", "#673AB7", "#3F51B5",
				"#2196F3", "#03A9F4", "#00BCD4", "#009688", "#4CAF50",
				"#8BC34A", "#CDDC39", "#FFEB3B", "#FFC107", "#FF9800",
				"#FF5722", "#795548", "#9E9E9E", "#607D8B", "#000000",
			),
			Layout: Layout{RowLength: intPtr(5), SwatchSize: intPtr(36), BorderRadius: strPtr("0")},
		},
		"text-basic": {
			Swatches: FlatSwatches("#CC0001", "#E36101", "#FFCC00", "#009900", "#0066CB", "#000000", "#FFFFFF"),
			Layout: Layout{
				SwatchSize:  intPtr(30),
				SpacingSize: intPtr(5),
			},
			ShowBorder: boolPtr(true),
		},
		"text-advanced": {
			Swatches: RowSwatches(
				[]string{"#000000", "#434343", "#666666", "#999999", "#B7B7B7", "#CCCCCC", "#D9D9D9", "#EFEFEF", "#F3F3F3", "#FFFFFF"},
				[]string{"#980000", "#FF0000", "#FF9900", "#FFFF00", "#00FF00", "#00FFFF", "#4A86E8", "#0000FF", "#9900FF", "#FF00FF"},
				[]string{"#E6B8AF", "#F4CCCC", "#FCE5CD", "#FFF2CC", "#D9EAD3", "#D0E0E3", "#C9DAF8", "#CFE2F3", "#D9D2E9", "#EAD1DC"},
				[]string{"#DD7E6B", "#EA9999", "#F9CB9C", "#FFE599", "#B6D7A8", "#A2C4C9", "#A4C2F4", "#9FC5E8", "#B4A7D6", "#D5A6BD"},
				[]string{"#CC4125", "#E06666", "#F6B26B", "#FFD966", "#93C47D", "#76A5AF", "#6D9EEB", "#6FA8DC", "#8E7CC3", "#C27BA0"},
				[]string{"#A61C00", "#CC0000", "#E69138", "#F1C232", "#6AA84F", "#45818E", "#3C78D8", "#3D85C6", "#674EA7", "#A64D79"},
			),
			Layout: Layout{
				SwatchSize:   intPtr(18),
				SpacingSize:  intPtr(2),
				BorderRadius: strPtr("0"),
				MaxHeight:    intPtr(160),
			},
			ShowBorder: boolPtr(true),
		},
		"material-basic": {
			Swatches: FlatSwatches(
				"#F44336", "#E91E63", "#9C27B0", "#673AB7", "#3F51B5", "#2196F3", "#03A9F4",
				"#00BCD4", "#009688", "#4CAF50", "#8BC34A", "#CDDC39", "#FFEB3B", "#FFC107",
			),
			Layout: Layout{RowLength: intPtr(7), SwatchSize: intPtr(28), SpacingSize: intPtr(6)},
		},
		"material-light": {
			Swatches: FlatSwatches(
				"#EF9A9A", "#F48FB1", "#CE93D8", "#B39DDB", "#9FA8DA", "#90CAF9", "#81D4FA",
				"#80DEEA", "#80CBC4", "#A5D6A7", "#C5E1A5", "#E6EE9C", "#FFF59D", "#FFE082",
			),
			Layout: Layout{RowLength: intPtr(7), SwatchSize: intPtr(28), SpacingSize: intPtr(6)},
		},
		"material-dark": {
			Swatches: FlatSwatches(
				"#C62828", "#AD1457", "#6A1B9A", "#4527A0", "#283593", "#1565C0", "#0277BD",
				"#00838F", "#00695C", "#2E7D32", "#558B2F", "#9E9D24", "#F9A825", "#FF8F00",
			),
			Layout: Layout{RowLength: intPtr(7), SwatchSize: intPtr(28), SpacingSize: intPtr(6)},
		},
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }
