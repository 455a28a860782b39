// Package cli wires the imgset command line: flag parsing, argument
// validation, and the resize -> tag -> delete run flow.
package cli

import (
	"github.com/spf13/cobra"
)

// defaultImage is the bundled sample used when no image argument is given.
const defaultImage = "testdata/sample.png"

// Options collects every flag of the command. Plain data, no globals;
// a fresh value is bound per New() so commands are independent.
type Options struct {
	Image    string
	Widths   string
	HTML     bool
	Classes  string
	ImgSizes string
	Lazy     bool
	Alt      string
	Dir      string
	Format   string
	Quality  int
	Lower    bool
	Dashes   bool
	Flask    bool
	Delete   bool
	Sharpen  bool
	BGColor  bool
}

// New builds the root command.
func New() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:          "imgset [image]",
		Short:        "Resize an image into responsive width variants and build an <img> tag",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Image = defaultImage
			if len(args) == 1 {
				opts.Image = args[0]
			}
			return Run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Widths, "widths", "600,1000,1400", "widths of new images, in pixels (comma separated)")
	flags.BoolVar(&opts.HTML, "html", true, "generate an HTML <img> tag")
	flags.StringVar(&opts.Classes, "classes", "", `classnames to add to the <img> tag (e.g. class="img-fluid")`)
	flags.StringVar(&opts.ImgSizes, "img-sizes", "100vw", `sizes for the <img> tag (e.g. sizes="100vw")`)
	flags.BoolVar(&opts.Lazy, "lazy", false, `add loading="lazy" to the <img> tag`)
	flags.StringVar(&opts.Alt, "alt", "", `alt text for the <img> tag (e.g. alt="Funny image")`)
	flags.StringVar(&opts.Dir, "dir", "", `images directory to prepend to each src (e.g. src="images/...")`)
	flags.StringVar(&opts.Format, "fmt", "webp", `image format to save as ("jpg" and "webp" supported)`)
	flags.IntVar(&opts.Quality, "qual", 100, "compression to apply (0=max, 100=min)")
	flags.BoolVar(&opts.Lower, "lower", true, "convert the filename to lowercase")
	flags.BoolVar(&opts.Dashes, "dashes", true, "convert underscores to dashes for SEO")
	flags.BoolVar(&opts.Flask, "flask", false, "wrap paths in Flask's url_for('static', ...)")
	flags.BoolVar(&opts.Delete, "delete", true, "delete the original image after resizing")
	flags.BoolVar(&opts.Sharpen, "sharpen", false, "sharpen each variant after downscaling")
	flags.BoolVar(&opts.BGColor, "bg-color", false, "add the source's average color as a background-color style")

	return cmd
}
