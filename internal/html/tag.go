// Package html builds the responsive <img> element for a set of
// generated image variants.
package html

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/dwfields/imgset/internal/imaging"
)

// ErrNoVariants indicates a tag was requested with no generated files to
// point at.
var ErrNoVariants = errors.New("no image variants to build a tag from")

// PathStyle selects how variant filenames are rendered into the src and
// srcset attributes.
type PathStyle int

const (
	// PathPlain joins the directory prefix and filename with "/".
	PathPlain PathStyle = iota

	// PathFlask wraps the joined path in Flask's static-asset helper:
	// {{ url_for('static', filename='...') }}.
	PathFlask
)

// TagOptions control the attributes of the generated <img> element.
type TagOptions struct {
	// Classes is the class attribute, omitted when empty.
	Classes string

	// Sizes is the sizes attribute, inserted verbatim.
	Sizes string

	// Alt is the alt attribute. Always emitted, even when empty: an
	// <img> without alt is an accessibility defect.
	Alt string

	// DirPrefix is a path segment prepended to every src/srcset entry.
	DirPrefix string

	// Background, when non-empty, is a CSS color emitted as
	// style="background-color: ...".
	Background string

	// Lazy adds loading="lazy".
	Lazy bool

	// PathStyle selects plain joining or the Flask helper syntax.
	PathStyle PathStyle
}

// BuildTag renders a single <img> element.
//
// src points at the widest variant. srcset lists every variant with its
// width descriptor, in the order given; callers that pass ascending
// widths get an ascending srcset. The function is pure: no I/O, no
// validation of the files behind the names.
func BuildTag(variants []imaging.Variant, opts TagOptions) (string, error) {
	if len(variants) == 0 {
		return "", ErrNoVariants
	}

	widest := variants[0]
	for _, v := range variants[1:] {
		if v.Width > widest.Width {
			widest = v
		}
	}

	entries := make([]string, len(variants))
	for i, v := range variants {
		entries[i] = fmt.Sprintf("%s %dw", renderPath(v.Name, opts), v.Width)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<img src="%s"`, renderPath(widest.Name, opts))
	if opts.Classes != "" {
		fmt.Fprintf(&b, ` class="%s"`, opts.Classes)
	}
	fmt.Fprintf(&b, ` srcset="%s"`, strings.Join(entries, ", "))
	fmt.Fprintf(&b, ` sizes="%s"`, opts.Sizes)
	if opts.Lazy {
		b.WriteString(` loading="lazy"`)
	}
	if opts.Background != "" {
		fmt.Fprintf(&b, ` style="background-color: %s"`, opts.Background)
	}
	fmt.Fprintf(&b, ` alt="%s">`, opts.Alt)

	return b.String(), nil
}

// renderPath joins the directory prefix with a variant name using forward
// slashes regardless of host OS, since the output is a web path.
func renderPath(name string, opts TagOptions) string {
	joined := name
	if opts.DirPrefix != "" {
		joined = path.Join(opts.DirPrefix, name)
	}
	if opts.PathStyle == PathFlask {
		return fmt.Sprintf("{{ url_for('static', filename='%s') }}", joined)
	}
	return joined
}
