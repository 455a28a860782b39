package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/dwfields/imgset/internal/html"
	"github.com/dwfields/imgset/internal/imaging"
)

// Run executes one resize invocation.
//
// Order matters: every argument is validated before any file is touched,
// the source is decoded once, variants are written, the tag is built, and
// only then — when every requested step succeeded — is the source deleted.
func Run(opts *Options) error {
	widths, err := ParseWidths(opts.Widths)
	if err != nil {
		return err
	}

	format, err := imaging.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	if opts.Quality < 0 || opts.Quality > 100 {
		return fmt.Errorf("%w: quality %d outside 0-100", ErrBadArgument, opts.Quality)
	}

	echoOptions(opts)

	src, err := imaging.Load(opts.Image)
	if err != nil {
		return err
	}

	info, err := imaging.Describe(src, opts.Image)
	if err != nil {
		return err
	}
	fmt.Printf("Source: %dx%d %s, %d bytes\n", info.Width, info.Height, info.Format, info.FileSizeBytes)

	variants, err := imaging.ResizeImage(src, opts.Image, imaging.ResizeOptions{
		Widths:    widths,
		Format:    format,
		Quality:   opts.Quality,
		Lowercase: opts.Lower,
		Dashes:    opts.Dashes,
		Sharpen:   opts.Sharpen,
	})
	if err != nil {
		return err
	}

	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.Name
	}
	fmt.Printf("filenames: %s\n", strings.Join(names, ", "))

	if opts.HTML {
		tagOpts := html.TagOptions{
			Classes:   opts.Classes,
			Sizes:     opts.ImgSizes,
			Alt:       opts.Alt,
			DirPrefix: opts.Dir,
			Lazy:      opts.Lazy,
		}
		if opts.Flask {
			tagOpts.PathStyle = html.PathFlask
		}
		if opts.BGColor {
			tagOpts.Background = imaging.AverageColor(src)
		}

		tag, err := html.BuildTag(variants, tagOpts)
		if err != nil {
			return err
		}
		fmt.Printf("HTML <img> tag:\n\n%s\n", tag)
	}

	// Deletion is gated on overall success: any earlier failure has
	// already returned with the source intact.
	if opts.Delete {
		if err := os.Remove(opts.Image); err != nil {
			return fmt.Errorf("failed to delete original image: %w", err)
		}
		fmt.Printf("Deleted original image: %s\n", opts.Image)
	}

	fmt.Println("\nDone!")
	return nil
}

// echoOptions prints the resolved options, mirroring what the run is
// about to do.
func echoOptions(opts *Options) {
	fmt.Printf("Image: %s\n", opts.Image)
	fmt.Printf("Widths needed: %s\n", opts.Widths)
	fmt.Printf("HTML wanted: %t\n", opts.HTML)
	fmt.Printf("Classes wanted: %s\n", opts.Classes)
	fmt.Printf("Image sizes wanted: %s\n", opts.ImgSizes)
	fmt.Printf("Lazy loading wanted: %t\n", opts.Lazy)
	fmt.Printf("Alt text wanted: %s\n", opts.Alt)
	fmt.Printf("Directory to prepend: %s\n", opts.Dir)
	fmt.Printf("Image format wanted: %s\n", opts.Format)
	fmt.Printf("Quality/compression wanted: %d\n", opts.Quality)
	fmt.Printf("Lowercase filename wanted: %t\n", opts.Lower)
	fmt.Printf("Dashes wanted: %t\n", opts.Dashes)
	fmt.Printf("Flask url_for() wanted: %t\n", opts.Flask)
	fmt.Printf("Sharpen wanted: %t\n", opts.Sharpen)
	fmt.Printf("Background color wanted: %t\n", opts.BGColor)
}
