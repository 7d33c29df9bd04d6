// Package convert implements program commands working with worksheets.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"mxc/common"
	"mxc/state"
	"mxc/worksheet"
)

// Run converts single worksheet or every worksheet found under directory.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format, err := common.ParseOutputFmt(cmd.String("to"))
	if err != nil {
		log.Warn("Unknown output format requested, switching to wxmx", zap.Error(err))
		format = common.OutputFmtWxmx
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, format, log)
}

// process determines if source is a directory or a single worksheet and
// handles it accordingly.
func process(ctx context.Context, src, dst string, format common.OutputFmt, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.IsDir() {
		if err := processDir(ctx, src, dst, format, log); err != nil {
			return fmt.Errorf("unable to process directory: %w", err)
		}
		return nil
	}

	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	kind, err := detectSheet(src)
	if err != nil {
		return fmt.Errorf("unable to check file type: %w", err)
	}
	if kind == sheetNone {
		return fmt.Errorf("input was not recognized as worksheet (%s)", src)
	}
	return processSheet(ctx, src, filepath.Base(src), dst, format, log)
}

// processDir walks directory tree finding worksheets and converts them. A
// failed worksheet is logged and does not stop processing.
func processDir(ctx context.Context, dir, dst string, format common.OutputFmt, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if info.IsDir() {
			if path != dir && path == dst {
				// do not pick up our own results
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		kind, err := detectSheet(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if kind == sheetNone {
			log.Debug("Skipping file, not recognized as worksheet", zap.String("file", path))
			return nil
		}

		count++

		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processSheet(ctx, path, rel, dst, format, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
}

// processSheet converts single worksheet. "rel" is the source path relative
// to the processed directory or just base file name, "dst" is the
// destination directory.
func processSheet(ctx context.Context, path, rel, dst string, format common.OutputFmt, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Conversion starting", zap.String("from", rel))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else if rerr == nil {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	if env.Rpt != nil {
		if err := env.Rpt.StoreCopy("source/"+filepath.ToSlash(rel), path); err != nil {
			log.Warn("Unable to store source in report", zap.String("file", path), zap.Error(err))
		}
	}

	doc, err := worksheet.Load(ctx, path, state.NewCellEnv(&env.Cfg.Document, nil), &env.Cfg.Document, log)
	if err != nil {
		return err
	}

	outputName = buildOutputPath(rel, dst, format, env)
	if outputName == path {
		return fmt.Errorf("output would overwrite source: %s", path)
	}

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := doc.Save(outputName, format, env.Cfg.Document.FixZip); err != nil {
		return fmt.Errorf("unable to generate output: %w", err)
	}

	if env.Rpt != nil {
		name := filepath.Base(outputName)
		if r, err := filepath.Rel(dst, outputName); err == nil {
			name = r
		}
		env.Rpt.Store("result/"+filepath.ToSlash(name), outputName)
	}
	return nil
}
