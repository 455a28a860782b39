package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// Format is a supported output encoding for generated variants.
type Format string

const (
	FormatJPG  Format = "jpg"
	FormatWebP Format = "webp"
)

// ParseFormat normalizes a user-supplied format name.
//
// "jpeg" is accepted as an alias for "jpg". Anything outside the supported
// set fails with an error matching ErrEncode.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "jpg", "jpeg":
		return FormatJPG, nil
	case "webp":
		return FormatWebP, nil
	}
	return "", fmt.Errorf(`%w: unsupported format %q ("jpg" and "webp" supported)`, ErrEncode, s)
}

// ResizeOptions control variant generation.
type ResizeOptions struct {
	// Widths are the target pixel widths, one variant per entry.
	// Order is preserved into the returned variants.
	Widths []int

	// Format is the output encoding for every variant.
	Format Format

	// Quality is the encode quality in [0,100] on the user-facing scale:
	// 0 = max compression, 100 = min. Passed to the encoders unchanged.
	Quality int

	// Lowercase converts the filename stem to lowercase.
	Lowercase bool

	// Dashes replaces underscores in the stem with hyphens.
	Dashes bool

	// Sharpen applies a sharpen pass to each scaled raster before encoding.
	Sharpen bool
}

// Variant is one generated image file.
type Variant struct {
	// Name is the bare output filename, e.g. "photo-one-400.webp".
	Name string

	// Width is the raster pixel width the variant was scaled to.
	Width int
}

// OutputName derives the variant filename for one width from the source
// filename: stem, optionally lowercased and with underscores replaced by
// hyphens, then "-{width}.{format}".
func OutputName(source string, width int, format Format, lowercase, dashes bool) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if lowercase {
		stem = strings.ToLower(stem)
	}
	if dashes {
		stem = strings.ReplaceAll(stem, "_", "-")
	}
	return fmt.Sprintf("%s-%d.%s", stem, width, format)
}

// Resize decodes the source image and writes one scaled, re-encoded file
// per requested width into the source's directory.
//
// Returned variants match the order of opts.Widths exactly. Height is
// derived from the source aspect ratio; scaling uses the Lanczos filter.
//
// A failed width aborts the remaining widths. Files written for earlier
// widths are left on disk; nothing is rolled back.
func Resize(sourcePath string, opts ResizeOptions) ([]Variant, error) {
	src, err := Load(sourcePath)
	if err != nil {
		return nil, err
	}
	return ResizeImage(src, sourcePath, opts)
}

// ResizeImage is Resize for an already-decoded source. sourcePath is still
// needed for output naming and placement.
func ResizeImage(src image.Image, sourcePath string, opts ResizeOptions) ([]Variant, error) {
	dir := filepath.Dir(sourcePath)

	variants := make([]Variant, 0, len(opts.Widths))
	for _, width := range opts.Widths {
		scaled := imaging.Resize(src, width, 0, imaging.Lanczos)

		var out image.Image = scaled
		if opts.Sharpen {
			out = effect.Sharpen(scaled)
		}

		name := OutputName(sourcePath, width, opts.Format, opts.Lowercase, opts.Dashes)
		if err := encodeToFile(filepath.Join(dir, name), out, opts.Format, opts.Quality); err != nil {
			return nil, err
		}
		variants = append(variants, Variant{Name: name, Width: width})
	}

	return variants, nil
}

func encodeToFile(path string, img image.Image, format Format, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	switch format {
	case FormatJPG:
		err = imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(quality))
	case FormatWebP:
		var enc *encoder.Options
		enc, err = encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(quality))
		if err == nil {
			err = webp.Encode(f, img, enc)
		}
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}
	return nil
}
