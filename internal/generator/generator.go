// Package generator ties sample generation to the COE file and its
// optional companion artifacts.
package generator

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mrsinham/coeforge/internal/coe"
	"github.com/mrsinham/coeforge/internal/dicom"
	"github.com/mrsinham/coeforge/internal/image"
	"github.com/mrsinham/coeforge/internal/samples"
	"github.com/mrsinham/coeforge/internal/util"
)

// Options contains all parameters needed to generate a COE file
type Options struct {
	OutputPath string
	Dimensions util.Dimensions
	Radix      coe.Radix
	Seed       uint64 // 0 = draw a fresh seed from Entropy
	Overwrite  bool   // Truncate existing output and companion files instead of failing

	// Companion artifacts (empty = skip)
	PreviewPath  string
	PreviewScale int
	DICOMPath    string

	// Output control
	Quiet bool
	Out   io.Writer // Progress output (nil = os.Stdout)

	// Entropy is read for the seed when Seed is 0 (nil = crypto/rand).
	Entropy io.Reader
	// Source replaces the seeded sample source when set.
	Source io.Reader
}

// Result describes a completed run
type Result struct {
	OutputPath  string
	Samples     []byte
	Seed        uint64
	SeedDrawn   bool
	Checksum    string
	PreviewPath string
	DICOMPath   string
}

// DefaultOptions returns the options of a run with no flags: 128x128
// radix-16 samples into image_data.coe, overwriting any previous file.
func DefaultOptions() Options {
	return Options{
		OutputPath:   coe.DefaultFilename,
		Dimensions:   util.Dimensions{Width: samples.DefaultWidth, Height: samples.DefaultHeight},
		Radix:        coe.DefaultRadix,
		Overwrite:    true,
		PreviewScale: image.DefaultScale,
	}
}

// Validate checks the options before anything is generated
func (o Options) Validate() error {
	if o.OutputPath == "" {
		return errors.New("output path is required")
	}
	if err := o.Dimensions.Validate(); err != nil {
		return err
	}
	if !o.Radix.Valid() {
		return fmt.Errorf("invalid radix %d (valid: 2, 10, 16)", o.Radix)
	}
	if o.PreviewScale < 0 {
		return fmt.Errorf("preview scale must be >= 0, got %d", o.PreviewScale)
	}
	return nil
}

// Generate draws the samples and writes the COE file, then any requested
// companion artifacts. A random source failure aborts before any file is
// opened.
func Generate(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logf := func(format string, args ...any) {
		if !opts.Quiet {
			fmt.Fprintf(out, format, args...)
		}
	}

	entropy := opts.Entropy
	if entropy == nil {
		entropy = samples.NewCryptoSource()
	}
	seed, drawn, err := util.ResolveSeed(opts.Seed, entropy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", samples.ErrRandomSource, err)
	}
	if drawn {
		logf("Auto-generated seed: %d\n", seed)
	} else {
		logf("Using seed: %d\n", seed)
	}

	src := opts.Source
	if src == nil {
		src = samples.NewSource(seed)
	}
	data, err := samples.Generate(src, opts.Dimensions.Size())
	if err != nil {
		return nil, fmt.Errorf("generate samples: %w", err)
	}
	logf("Generated %d samples (%s)\n", len(data), opts.Dimensions)

	if !opts.Overwrite {
		if err := refuseExisting(opts.PreviewPath, opts.DICOMPath); err != nil {
			return nil, err
		}
	}

	fileOpts := coe.FileOptions{Radix: opts.Radix, Overwrite: opts.Overwrite}
	if err := coe.WriteFile(opts.OutputPath, data, fileOpts); err != nil {
		return nil, err
	}
	logf("Wrote %s (radix %d)\n", opts.OutputPath, opts.Radix)

	result := &Result{
		OutputPath: opts.OutputPath,
		Samples:    data,
		Seed:       seed,
		SeedDrawn:  drawn,
		Checksum:   util.Checksum(data),
	}

	if opts.PreviewPath != "" {
		caption := fmt.Sprintf("%s seed %d", opts.Dimensions, seed)
		preview := image.PreviewOptions{
			Width:     opts.Dimensions.Width,
			Height:    opts.Dimensions.Height,
			Scale:     opts.PreviewScale,
			Caption:   caption,
			Overwrite: opts.Overwrite,
		}
		if err := image.WritePreview(opts.PreviewPath, data, preview); err != nil {
			return nil, fmt.Errorf("write preview: %w", err)
		}
		result.PreviewPath = opts.PreviewPath
		logf("Wrote preview %s\n", opts.PreviewPath)
	}

	if opts.DICOMPath != "" {
		capture := dicom.CaptureOptions{
			Width:     opts.Dimensions.Width,
			Height:    opts.Dimensions.Height,
			Seed:      seed,
			Overwrite: opts.Overwrite,
		}
		if err := dicom.WriteSecondaryCapture(opts.DICOMPath, data, capture); err != nil {
			return nil, fmt.Errorf("write DICOM: %w", err)
		}
		result.DICOMPath = opts.DICOMPath
		logf("Wrote DICOM %s\n", opts.DICOMPath)
	}

	return result, nil
}

// refuseExisting fails with an error wrapping fs.ErrExist when any of the
// companion paths is already present, so a refused run writes nothing.
func refuseExisting(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Lstat(p); err == nil {
			return fmt.Errorf("%s: %w", p, fs.ErrExist)
		}
	}
	return nil
}
