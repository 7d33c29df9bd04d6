package state

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"mxc/cell"
	"mxc/config"
	"mxc/css"
	"mxc/render"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}

var labelChoices = map[string]cell.LabelChoice{
	"automatic": cell.LabelAutomatic,
	"user":      cell.LabelUser,
	"none":      cell.LabelNone,
}

// NewCellEnv prepares cell environment from document configuration. When m
// is nil text is measured as monospaced.
func NewCellEnv(cfg *config.DocumentConfig, m cell.Measurer) *cell.Env {
	env := cell.NewEnv(m)
	if cfg == nil {
		return env
	}
	if cfg.Zoom > 0 {
		env.Zoom = float64(cfg.Zoom) / 100
	}
	if cfg.FontSize > 0 {
		env.FontSize = cfg.FontSize
	}
	if cfg.MinFontSize > 0 {
		env.MinFontSize = cfg.MinFontSize
	}
	env.TeXExponentsAfterSubscript = cfg.TeXExponentsAfterSubscript
	if l, ok := labelChoices[cfg.Labels]; ok {
		env.Labels = l
	}
	env.MaxImageWidth = cfg.Images.MaxWidth
	env.MaxImageHeight = cfg.Images.MaxHeight
	return env
}

// RenderOptions converts configured page layout. When stylesheet is
// configured its colors are laid over the default theme.
func RenderOptions(cfg *config.RenderConfig, log *zap.Logger) (render.Options, error) {
	opts := render.Options{
		Width:  cfg.PageWidth,
		Margin: cfg.Margin,
		Gap:    cfg.Gap,
		Theme:  render.DefaultTheme(),
	}
	if cfg.Stylesheet == "" {
		return opts, nil
	}

	data, err := os.ReadFile(cfg.Stylesheet)
	if err != nil {
		return opts, fmt.Errorf("unable to read stylesheet from %q: %w", cfg.Stylesheet, err)
	}
	sheet := css.NewParser(log).Parse(data, cfg.Stylesheet)
	for _, w := range sheet.Warnings {
		log.Warn("Stylesheet problem", zap.String("file", cfg.Stylesheet), zap.String("warning", w))
	}
	opts.Theme = render.ThemeFromCSS(sheet, opts.Theme, log)
	return opts, nil
}
