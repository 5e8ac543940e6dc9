package convert

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	pathpkg "path"
	"path/filepath"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cc2ass/archive"
	"cc2ass/cinecanvas"
	"cc2ass/config"
	"cc2ass/fonts"
	"cc2ass/state"
)

const sourceExt = ".xml"

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
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	applyFlags(cmd, &env.Cfg.Conversion)
	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst),
		zap.Int("width", env.Cfg.Conversion.Width), zap.Int("height", env.Cfg.Conversion.Height), zap.Bool("ruby", env.Cfg.Conversion.Ruby))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// applyFlags lets command line override configuration for a single run.
func applyFlags(cmd *cli.Command, conf *config.ConversionConfig) {
	if cmd.IsSet("width") {
		conf.Width = int(cmd.Int("width"))
	}
	if cmd.IsSet("height") {
		conf.Height = int(cmd.Int("height"))
	}
	if cmd.IsSet("ruby-experimental") {
		conf.Ruby = cmd.Bool("ruby-experimental")
	}
}

// OptionsFromConfig returns conversion options for configuration.
func OptionsFromConfig(conf *config.ConversionConfig) Options {
	return Options{
		Width:        conf.Width,
		Height:       conf.Height,
		Ruby:         conf.Ruby,
		FontFallback: conf.FontFallback,
	}
}

// process handles conversion independently of CLI framework. Source is a
// single document, a directory or a zip archive, destination is a directory
// unless single document is converted to a path with ".ass" extension.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found: %w", err)
	}

	if fi.IsDir() {
		return processDir(ctx, src, dst, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	zipped, err := isArchiveFile(src)
	if err != nil {
		return fmt.Errorf("unable to check archive type: %w", err)
	}
	if zipped {
		return processArchive(ctx, src, dst, log)
	}

	var target string
	if strings.EqualFold(filepath.Ext(dst), AssExt) {
		target = dst
	}
	return processDocument(ctx, fileSource(src, filepath.Base(src), log), dst, target, log)
}

// source is document to convert wherever it is stored.
type source struct {
	// rel is path relative to processed directory or archive, output
	// directories are derived from it
	rel    string
	open   func() (io.ReadCloser, error)
	loader cinecanvas.FontLoader
	// path is location on disk, empty for archived documents
	path string
}

// fileSource references fonts relative to the document.
func fileSource(path, rel string, log *zap.Logger) source {
	return source{
		rel:    rel,
		open:   func() (io.ReadCloser, error) { return os.Open(path) },
		loader: fonts.NewLoader(filepath.Dir(path), log),
		path:   path,
	}
}

func (s source) detect() (bool, error) {
	r, err := s.open()
	if err != nil {
		return false, err
	}
	defer r.Close()
	return cinecanvas.Detect(r)
}

func (s source) parse(log *zap.Logger) (*cinecanvas.Document, error) {
	r, err := s.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return cinecanvas.Parse(r, log)
}

func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

func naturalOrder(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	}
	return 0
}

// processDir converts every CineCanvas document under dir keeping relative
// directory structure. Files are processed in natural order, so "reel2"
// goes before "reel10". Failure of one document does not stop the others.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) error {
	var sources []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() || !strings.EqualFold(filepath.Ext(path), sourceExt) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		sources = append(sources, rel)
		return nil
	})
	if err != nil {
		return err
	}
	slices.SortFunc(sources, naturalOrder)

	b := batch{log: log}
	for _, rel := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		b.add(ctx, fileSource(filepath.Join(dir, rel), rel, log), dst)
	}
	return b.result(dir)
}

// processArchive converts documents stored in zip archive (packed DCP),
// fonts are looked up inside the archive. Results go to the directory named
// after the archive.
func processArchive(ctx context.Context, path, dst string, log *zap.Logger) error {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	b := batch{log: log}
	err := archive.Walk(path, "", func(_ string, fsys fs.FS, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !strings.EqualFold(pathpkg.Ext(f.Name), sourceExt) {
			return nil
		}
		b.add(ctx, source{
			rel:    filepath.Join(base, filepath.FromSlash(f.Name)),
			open:   f.Open,
			loader: fonts.NewFSLoader(fsys, pathpkg.Dir(f.Name), log),
		}, dst)
		return nil
	})
	if err != nil {
		return fmt.Errorf("unable to process archive: %w", err)
	}
	return b.result(path)
}

// batch converts multiple documents collecting failures.
type batch struct {
	log   *zap.Logger
	count int
	errs  error
}

func (b *batch) add(ctx context.Context, s source, dst string) {
	if ok, err := s.detect(); err != nil || !ok {
		b.log.Debug("Skipping file, not recognized as CineCanvas subtitles", zap.String("file", s.rel), zap.Error(err))
		return
	}
	b.count++
	if err := processDocument(ctx, s, dst, "", b.log); err != nil {
		b.log.Error("Unable to process file", zap.String("file", s.rel), zap.Error(err))
		b.errs = multierr.Append(b.errs, fmt.Errorf("%s: %w", s.rel, err))
	}
}

func (b *batch) result(from string) error {
	if b.count == 0 {
		b.log.Debug("Nothing to process", zap.String("source", from))
	}
	if b.errs != nil {
		return fmt.Errorf("unable to process %d of %d documents: %w", len(multierr.Errors(b.errs)), b.count, b.errs)
	}
	return nil
}

// processDocument converts single document, "target" when not empty is exact
// output path.
func processDocument(ctx context.Context, s source, dst, target string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var docID, outputName string

	log.Info("Conversion starting", zap.String("from", s.rel))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else if rerr == nil {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("id", docID))
		}
	}(time.Now())

	doc, err := s.parse(log)
	if err != nil {
		return fmt.Errorf("unable to parse subtitles (%s): %w", s.rel, err)
	}
	docID = doc.ID

	c, err := New(doc, OptionsFromConfig(&env.Cfg.Conversion), s.loader, log)
	if err != nil {
		return err
	}
	script, err := c.Convert()
	if err != nil {
		return fmt.Errorf("unable to convert subtitles (%s): %w", s.rel, err)
	}

	outputName = target
	if outputName == "" {
		outputName = buildOutputPath(doc, s.rel, dst, env)
	}
	if err := prepareOutput(outputName, env.Overwrite, log); err != nil {
		return err
	}

	if err := writeOutput(outputName, func(w io.Writer) error {
		return script.Write(w, env.Cfg.Conversion.BOM)
	}); err != nil {
		return err
	}

	// keep input and result for debugging
	if env.Rpt != nil {
		name := strings.TrimPrefix(docID, "urn:uuid:")
		if s.path != "" {
			env.Rpt.Store(fmt.Sprintf("source-%s%s", name, sourceExt), s.path)
		} else if data, err := s.read(); err == nil {
			env.Rpt.StoreData(fmt.Sprintf("source-%s%s", name, sourceExt), data)
		}
		env.Rpt.Store(fmt.Sprintf("result-%s%s", name, AssExt), outputName)
	}
	return nil
}

func (s source) read() ([]byte, error) {
	r, err := s.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// writeOutput writes into temporary file next to name and moves it in place
// on success, so name never holds partial result.
func writeOutput(name string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("unable to create output: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if err := multierr.Append(write(tmp), tmp.Close()); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}

// prepareOutput makes sure output could be written. Existing file is
// allowed only with overwrite, it is replaced once new result is complete.
func prepareOutput(name string, overwrite bool, log *zap.Logger) error {
	_, err := os.Stat(name)
	switch {
	case err == nil:
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}
