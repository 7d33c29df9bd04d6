package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"mxc/cell"
	"mxc/common"
	"mxc/parser"
	"mxc/state"
	"mxc/utils/images"
	"mxc/worksheet"
)

// Dump prints cell tree of a worksheet.
func Dump(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("dump")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no worksheet has been specified")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	return withOutput(cmd.Args().Get(1), cmd.Root().Writer, func(w io.Writer) error {
		return dumpSheet(ctx, src, w, log)
	})
}

func dumpSheet(ctx context.Context, src string, w io.Writer, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	doc, err := worksheet.Load(ctx, src, state.NewCellEnv(&env.Cfg.Document, nil), &env.Cfg.Document, log)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, doc.Dump()); err != nil {
		return fmt.Errorf("unable to write cell tree: %w", err)
	}
	return nil
}

// Render paints a worksheet into an image. Output format is selected by
// destination extension, png when there is none.
func Render(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no worksheet has been specified")
	}
	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ".png"
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	if width := cmd.Int("width"); width > 0 {
		env.Cfg.Document.Render.PageWidth = width
	}
	return renderSheet(ctx, src, dst, cmd.Bool("overwrite"), log)
}

func renderSheet(ctx context.Context, src, dst string, overwrite bool, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	if _, err := os.Stat(dst); err == nil && !overwrite {
		return fmt.Errorf("output file already exists: %s", dst)
	}

	fonts, err := env.Fonts()
	if err != nil {
		return err
	}
	doc, err := worksheet.Load(ctx, src, state.NewCellEnv(&env.Cfg.Document, fonts), &env.Cfg.Document, log)
	if err != nil {
		return err
	}

	opts, err := state.RenderOptions(&env.Cfg.Document.Render, log)
	if err != nil {
		return err
	}
	img := doc.Render(fonts, opts)
	log.Info("Worksheet rendered", zap.String("from", src), zap.String("to", dst), zap.Stringer("size", img.Bounds().Size()))

	return withOutput(dst, nil, func(w io.Writer) error {
		return images.Encode(w, img, dst)
	})
}

// Parse shows every textual form of a single expression given as markup.
// When markup is "-" it is read from standard input.
func Parse(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("parse")

	markup := cmd.Args().Get(0)
	if len(markup) == 0 {
		return errors.New("no markup has been specified")
	}
	if markup == "-" {
		var r io.Reader = os.Stdin
		if cmd.Root().Reader != nil {
			r = cmd.Root().Reader
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("unable to read markup: %w", err)
		}
		markup = string(data)
	}

	style := cell.CellTypeDefault
	if name := cmd.String("type"); len(name) > 0 {
		t, err := cell.ParseCellType(name)
		if err != nil {
			log.Warn("Unknown cell type requested, using default", zap.String("type", name), zap.Error(err))
		} else {
			style = t
		}
	}
	return parseMarkup(ctx, markup, style, cmd.Root().Writer, log)
}

func parseMarkup(ctx context.Context, markup string, style cell.CellType, w io.Writer, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	cfg := &env.Cfg.Document
	p := parser.New(state.NewCellEnv(cfg, nil), parser.WithLogger(log), parser.WithShowLength(cfg.ShowLength))
	head := p.ParseLine(markup, style)
	if head == nil {
		return errors.New("markup produced no cells")
	}

	forms := []struct {
		name string
		fn   func(cell.Cell) string
	}{
		{common.OutputFmtText.String(), cell.ListToString},
		{common.OutputFmtMatlab.String(), cell.ListToMatlab},
		{common.OutputFmtTex.String(), cell.ListToTeX},
		{common.OutputFmtMathml.String(), cell.ListToMathML},
		{common.OutputFmtOmml.String(), cell.ListToOMML},
		{common.OutputFmtXml.String(), cell.ListToXML},
	}

	var sb strings.Builder
	for _, f := range forms {
		fmt.Fprintf(&sb, "%-7s %s\n", f.name+":", f.fn(head))
	}
	sb.WriteString("\n")
	sb.WriteString(cell.Dump(head))

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	return nil
}

// withOutput calls fn with created file fname, or with def when name is
// empty. Nil def means standard output.
func withOutput(fname string, def io.Writer, fn func(w io.Writer) error) (err error) {
	if len(fname) == 0 {
		if def == nil {
			def = os.Stdout
		}
		return fn(def)
	}

	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	out, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
	}
	defer func() {
		if er := out.Close(); er != nil && err == nil {
			err = er
		}
	}()
	return fn(out)
}
