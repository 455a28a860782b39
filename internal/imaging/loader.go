package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load opens and decodes the image at path.
//
// Supported source formats are PNG, JPEG, GIF, and WebP. The concrete
// image.Image type depends on the source format and color model (e.g.
// *image.NRGBA, *image.YCbCr).
//
// A file that cannot be opened or decoded fails with an error matching
// ErrDecode.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return img, nil
}

// SourceInfo contains metadata about a source image file.
type SourceInfo struct {
	// Width is the decoded image width in pixels.
	Width int

	// Height is the decoded image height in pixels.
	Height int

	// Format is the source format guessed from the file extension:
	// "png", "jpeg", "gif", "webp", or "unknown".
	Format string

	// FileSizeBytes is the size of the file on disk.
	FileSizeBytes int64
}

// Describe returns metadata for an already-decoded source image.
//
// The format is determined by file extension, not file contents:
//   - ".png" -> "png"
//   - ".jpg", ".jpeg" -> "jpeg"
//   - ".gif" -> "gif"
//   - ".webp" -> "webp"
//   - anything else -> "unknown"
func Describe(img image.Image, path string) (*SourceInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".webp":
		format = "webp"
	}

	bounds := img.Bounds()
	return &SourceInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
