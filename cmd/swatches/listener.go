package main

import (
	"github.com/alexisbeaulieu97/swatches/internal/logger"
	"github.com/alexisbeaulieu97/swatches/internal/swatch"
)

type loggingListener struct {
	log *logger.Logger
}

func (l loggingListener) GridChanged(grid swatch.AnnotatedGrid) {
	l.log.WithFields(map[string]any{
		"rows":       len(grid),
		"visible":    grid.VisibleRows(),
		"exceptions": len(grid.Exceptions()),
	}).Debug("grid derived")
}

func (l loggingListener) LayoutChanged(layout swatch.Layout) {
	fields := map[string]any{
		"swatchSize":   layout.SwatchSize,
		"spacingSize":  layout.SpacingSize,
		"borderRadius": layout.BorderRadius,
	}
	if layout.MaxHeight != nil {
		fields["maxHeight"] = *layout.MaxHeight
	}
	l.log.WithFields(fields).Debug("layout derived")
}

func (l loggingListener) VisibilityChanged(v swatch.Visibility) {
	l.log.With("state", v.String()).Debug("popover changed")
}

func (l loggingListener) Selected(token string) {
	l.log.With("token", token).Info("swatch selected")
}
