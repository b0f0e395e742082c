package exporter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/elliotjreed/idgen/internal/format"
	"github.com/elliotjreed/idgen/internal/generator"
)

const (
	// DefaultFilesPerFormat is used when Options.FilesPerFormat is not positive.
	DefaultFilesPerFormat = 1

	baseName = "test_data"
)

// Options configures an Exporter.
type Options struct {
	OutputDir      string    // Directory artifacts are written to (default: current directory)
	FilesPerFormat int       // Number of files generated per format
	Verbose        bool      // Report every written file
	Log            io.Writer // Progress and warnings (default: os.Stderr)
}

// Stats holds export statistics.
type Stats struct {
	FilesWritten   int
	RecordsWritten int
	FormatsSkipped int
}

// Target is one planned output file. Err is set, and Path empty, when the
// format name is not supported.
type Target struct {
	Format     string
	Tag        format.Tag
	FileNumber int
	Path       string
	Err        error
}

// Exporter generates record sets and writes them in each requested format.
type Exporter struct {
	gen   *generator.Generator
	opts  Options
	log   io.Writer
	stats Stats
}

// New creates a new Exporter.
func New(gen *generator.Generator, opts Options) *Exporter {
	if opts.FilesPerFormat <= 0 {
		opts.FilesPerFormat = DefaultFilesPerFormat
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}

	log := opts.Log
	if log == nil {
		log = os.Stderr
	}

	return &Exporter{
		gen:  gen,
		opts: opts,
		log:  log,
	}
}

// Filename returns the artifact name for a 1-based file number. A numeric
// suffix is only added when more than one file is generated per format.
func Filename(tag format.Tag, fileNumber, filesPerFormat int) string {
	suffix := ""
	if filesPerFormat > 1 {
		suffix = fmt.Sprintf("_%d", fileNumber)
	}
	return baseName + suffix + "." + tag.Extension()
}

// Plan lists the files Export would write, in order. Unsupported formats
// appear once, with Err set.
func (e *Exporter) Plan(formats []string) []Target {
	var targets []Target
	for _, name := range formats {
		tag, err := format.Parse(name)
		if err != nil {
			targets = append(targets, Target{Format: name, Err: err})
			continue
		}

		for n := 1; n <= e.opts.FilesPerFormat; n++ {
			targets = append(targets, Target{
				Format:     name,
				Tag:        tag,
				FileNumber: n,
				Path:       filepath.Join(e.opts.OutputDir, Filename(tag, n, e.opts.FilesPerFormat)),
			})
		}
	}
	return targets
}

// Export writes one file per planned target, each with a freshly generated
// record set. Invalid rows or identifier types fail before anything is
// written. Unsupported formats are reported and skipped. An I/O error stops
// the export.
func (e *Exporter) Export(formats []string, rows int, types []generator.IdentifierType) error {
	if err := generator.Validate(rows, types); err != nil {
		return err
	}

	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, target := range e.Plan(formats) {
		if target.Err != nil {
			var fmtErr *format.UnsupportedFormatError
			if !errors.As(target.Err, &fmtErr) {
				return target.Err
			}
			fmt.Fprintf(e.log, "Warning: Unsupported format: %s\n", fmtErr.Format)
			e.stats.FormatsSkipped++
			continue
		}

		records, err := e.gen.Generate(rows, types)
		if err != nil {
			return err
		}

		if err := Serialize(records, target.Tag, target.Path); err != nil {
			return fmt.Errorf("failed to write %s: %w", target.Path, err)
		}

		e.stats.FilesWritten++
		e.stats.RecordsWritten += len(records)

		if e.opts.Verbose {
			fmt.Fprintf(e.log, "Wrote %s (%d records)\n", target.Path, len(records))
		}
	}

	return nil
}

// GetStats returns the export statistics.
func (e *Exporter) GetStats() Stats {
	return e.stats
}
