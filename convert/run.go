package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"msfmt/common"
	"msfmt/content"
	"msfmt/convert/preview"
	"msfmt/state"
)

// Run is "format" command action.
func Run(ctx context.Context, cmd *cli.Command) error {
	return run(ctx, cmd, common.OutputFmtDocx)
}

// RunPreview is "preview" command action.
func RunPreview(ctx context.Context, cmd *cli.Command) error {
	return run(ctx, cmd, common.OutputFmtHtml)
}

func run(ctx context.Context, cmd *cli.Command, format common.OutputFmt) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
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
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if preset := cmd.String("preset"); preset != "" {
		if err := env.Cfg.ApplyPreset(preset); err != nil {
			return fmt.Errorf("unable to apply preset %q: %w", preset, err)
		}
		log.Debug("Preset applied", zap.String("preset", preset))
	}

	if format == common.OutputFmtHtml {
		opts, err := preview.OptionsFromConfig(&env.Cfg.Document.Preview)
		if err != nil {
			return fmt.Errorf("unable to read preview stylesheet from %q: %w", env.Cfg.Document.Preview.StylesheetPath, err)
		}
		env.UserStyle = opts.UserCSS
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, format, log)
}

// process handles the core conversion logic independently of CLI framework.
// Source could be either single DOCX file or directory.
func process(ctx context.Context, src, dst string, format common.OutputFmt, log *zap.Logger) error {
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

	data, ok, err := readDocument(src)
	if err != nil {
		// checking format - but cannot read target file
		return fmt.Errorf("unable to check file type: %w", err)
	}
	if !ok {
		return fmt.Errorf("input was not recognized as DOCX document (%s)", src)
	}
	if err := processDocument(ctx, data, filepath.Base(src), dst, format, log); err != nil {
		return fmt.Errorf("unable to process file (%s): %w", src, err)
	}
	return nil
}

// processDir walks directory tree finding DOCX files and processes them in
// natural order of their relative paths. Failures are logged and do not stop
// processing.
func processDir(ctx context.Context, dir, dst string, format common.OutputFmt, log *zap.Logger) error {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	slices.SortFunc(files, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})

	count := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, ok, err := readDocument(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if !ok {
			log.Debug("Skipping file, not recognized as DOCX", zap.String("file", path))
			continue
		}

		count++

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processDocument(ctx, data, src, dst, format, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
	}
	if count == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return nil
}

// processDocument processes single manuscript. "src" is part of the source
// path (always including file name) relative to the original path. When
// actual file was specified it will be just base file name without a path.
// "dst" is the destination directory where the result should be written.
func processDocument(ctx context.Context, data []byte, src, dst string, format common.OutputFmt, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var refID, outputName string

	log.Info("Conversion starting", zap.String("from", src), zap.Stringer("to", format))
	defer func(start time.Time) {
		// one bad manuscript should not stop processing of the whole directory
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else if rerr == nil {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("ref_id", refID))
		}
	}(time.Now())

	cfg := &env.Cfg.Document

	c, err := content.Prepare(data, &cfg.Format, log)
	if err != nil {
		return fmt.Errorf("unable to read manuscript (%s): %w", src, err)
	}
	refID = c.ID.String()

	// Store prepared model for debugging
	env.StoreDebug(fmt.Sprintf("content-%s.txt", refID), []byte(c.String()))

	// Determine output file name and path based on input and configuration.
	outputName = buildOutputPath(c, src, dst, format, env)

	switch format {
	case common.OutputFmtDocx:
		out, err := assemble(c, cfg, log)
		if err != nil {
			return fmt.Errorf("unable to generate output: %w", err)
		}
		if err := env.WriteDestination(outputName, out); err != nil {
			return err
		}
	case common.OutputFmtHtml:
		res, err := preview.Render(c, preview.Options{
			Sanitize:    cfg.Preview.Sanitize,
			UserCSS:     env.UserStyle,
			UserCSSName: cfg.Preview.StylesheetPath,
		}, log)
		if err != nil {
			return fmt.Errorf("unable to generate output: %w", err)
		}
		// do not leave half of the preview behind
		if err := env.CheckDestination(stylesheetPath(outputName)); err != nil {
			return err
		}
		if err := env.WriteDestination(outputName, []byte(res.HTML)); err != nil {
			return err
		}
		if err := env.WriteDestination(stylesheetPath(outputName), []byte(res.CSS)); err != nil {
			return err
		}
	}

	// Store conversion result for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s%s", refID, filepath.Ext(outputName)), outputName)
	}
	return nil
}
