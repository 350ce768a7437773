// Package inspect implements the command line actions: computing styles of
// stylesheet files and decoding single length values.
package inspect

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"crcss/archive"
	"crcss/config"
	"crcss/css"
	"crcss/state"
)

const stylesheetExt = ".css"

// Run parses every stylesheet named on the command line and prints computed
// style records for the rules active under configured media.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	if cmd.Args().Len() == 0 {
		return errors.New("no stylesheet has been specified")
	}

	format := env.Cfg.Output.Format
	if to := cmd.String("to"); len(to) > 0 {
		if format, err = config.ParseOutputFmt(to); err != nil {
			log.Warn("Unknown output format requested, switching to text", zap.Error(err))
			format = config.OutputFmtText
		}
	}

	cp := env.Cfg.Stylesheet.Charset
	if len(cmd.String("charset")) > 0 {
		cp = cmd.String("charset")
	}
	if len(cp) > 0 {
		if env.CodePage, err = ianaindex.IANA.Encoding(cp); err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification, ignoring", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			log.Debug("Decoding stylesheets", zap.String("charset", cp))
		}
	}

	media := env.Cfg.Stylesheet.Media
	if m := cmd.StringSlice("media"); len(m) > 0 {
		media = m
	}

	out := writerOf(cmd)
	if fname := cmd.String("output"); len(fname) > 0 {
		var f *os.File
		if f, err = os.Create(fname); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer closeOutput(f, fname, &err)
		out = f
	}

	insp := &inspector{
		env:    env,
		log:    log,
		media:  media,
		format: format,
		out:    out,
	}

	defer func(total int) {
		if r := recover(); r != nil {
			log.Error("Unrecoverable error while processing stylesheets", zap.Any("panic", r))
			err = fmt.Errorf("processing ended with panic: %v", r)
			return
		}
		log.Debug("Processing completed", zap.Int("files", total), zap.Duration("elapsed", env.Uptime()))
	}(cmd.Args().Len())

	for _, src := range cmd.Args().Slice() {
		if err := insp.process(ctx, src); err != nil {
			return err
		}
	}
	return insp.flush()
}

// closeOutput closes the destination file and reports a failed close through
// err unless an earlier error is already there.
func closeOutput(c io.Closer, fname string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("unable to close destination file '%s': %w", fname, cerr)
	}
}

// writerOf returns the output stream of the root command.
func writerOf(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// process determines the input type (directory, archive with optional path
// inside it, or a single stylesheet) and processes it accordingly.
func (insp *inspector) process(ctx context.Context, src string) error {
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			return insp.processDir(ctx, head)
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := archive.IsArchive(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := insp.processArchive(ctx, head, filepath.ToSlash(tail)); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			return nil
		}

		if len(tail) != 0 {
			// plain file cannot have tail
			break
		}
		return insp.processFile(head, filepath.Base(head))
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// processDir walks directory tree processing every stylesheet and archive
// found there, in natural order of their paths.
func (insp *inspector) processDir(ctx context.Context, dir string) error {
	var sources []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			insp.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Sort(natural.StringSlice(sources))

	count := 0
	for _, path := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		isArchive, err := archive.IsArchive(path)
		if err != nil {
			insp.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if isArchive {
			count++
			if err := insp.processArchive(ctx, path, ""); err != nil {
				insp.log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			continue
		}

		if !strings.EqualFold(filepath.Ext(path), stylesheetExt) {
			insp.log.Debug("Skipping file, not a stylesheet", zap.String("file", path))
			continue
		}

		count++
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = filepath.Base(path)
		}
		if err := insp.processFile(path, filepath.ToSlash(rel)); err != nil {
			return err
		}
	}
	if count == 0 {
		insp.log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return nil
}

// processArchive processes every stylesheet inside archive under "pathIn".
func (insp *inspector) processArchive(ctx context.Context, path, pathIn string) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			insp.log.Debug("Nothing to process", zap.String("archive", path), zap.String("path", pathIn))
		}
	}()

	if err := insp.env.Rpt.StoreCopy("input/"+filepath.Base(path), path); err != nil {
		insp.log.Warn("Unable to store archive in the report", zap.String("file", path), zap.Error(err))
	}

	return archive.Walk(path, pathIn, stylesheetExt, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		count++

		r, err := f.Open()
		if err != nil {
			return fmt.Errorf("unable to open '%s': %w", f.FileHeader.Name, err)
		}
		defer r.Close()

		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("unable to read '%s': %w", f.FileHeader.Name, err)
		}
		if data, err = insp.decode(data); err != nil {
			return fmt.Errorf("unable to decode '%s': %w", f.FileHeader.Name, err)
		}

		insp.log.Debug("Processing stylesheet", zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Strings("media", insp.media))
		return insp.inspect(filepath.Base(arc)+"/"+f.FileHeader.Name, data)
	})
}

// processFile processes single stylesheet, name is used to refer to it in
// output.
func (insp *inspector) processFile(path, name string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet: %w", err)
	}
	if err := insp.env.Rpt.StoreCopy("input/"+name, path); err != nil {
		insp.log.Warn("Unable to store stylesheet in the report", zap.String("file", path), zap.Error(err))
	}

	if data, err = insp.decode(data); err != nil {
		return fmt.Errorf("unable to decode stylesheet '%s': %w", path, err)
	}

	insp.log.Debug("Processing stylesheet", zap.String("file", path), zap.Strings("media", insp.media))
	return insp.inspect(name, data)
}

func (insp *inspector) decode(data []byte) ([]byte, error) {
	if insp.env.CodePage == nil {
		return data, nil
	}
	return insp.env.CodePage.NewDecoder().Bytes(data)
}

// inspect parses one stylesheet and adds its computed rules to the output.
func (insp *inspector) inspect(name string, data []byte) error {
	sheet := css.NewParser(insp.env.Log).Parse(data, name)

	report := insp.log.Debug
	if insp.env.Cfg.Stylesheet.Warnings {
		report = insp.log.Warn
	}
	for _, w := range sheet.Warnings {
		report("Stylesheet", zap.String("file", name), zap.String("warning", w))
	}
	for _, url := range sheet.Imports() {
		insp.log.Debug("Import is not followed", zap.String("file", name), zap.String("url", url))
	}

	computed := css.NewConverter(insp.env.Log).ConvertStylesheet(sheet, insp.media...)
	for _, c := range computed {
		for _, w := range c.Warnings {
			report("Declaration", zap.String("file", name), zap.String("selector", c.Selector.Raw), zap.String("warning", w))
		}
	}
	return insp.add(name, computed)
}
