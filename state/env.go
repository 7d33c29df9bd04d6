// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"mxc/config"
	"mxc/render"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by convert subcommand
	NoDirs    bool
	Overwrite bool

	fonts         *render.Fonts
	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// Fonts returns font set for measuring and painting, created on first use
// with configured resolution.
func (e *LocalEnv) Fonts() (*render.Fonts, error) {
	if e.fonts != nil {
		return e.fonts, nil
	}
	dpi := 0.0
	if e.Cfg != nil {
		dpi = e.Cfg.Document.Render.DPI
	}
	fonts, err := render.NewFonts(dpi)
	if err != nil {
		return nil, fmt.Errorf("unable to prepare fonts: %w", err)
	}
	e.fonts = fonts
	return fonts, nil
}

// CloseFonts releases font faces if they were ever created.
func (e *LocalEnv) CloseFonts() error {
	if e.fonts == nil {
		return nil
	}
	err := e.fonts.Close()
	e.fonts = nil
	return err
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
