package cli

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/dwfields/imgset/internal/imaging"
)

// writeSourceJPEG writes a solid-color JPEG source into dir and returns
// its path.
func writeSourceJPEG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{90, 140, 200, 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create source: %v", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("failed to encode source: %v", err)
	}

	return path
}

func testOptions(image string) *Options {
	return &Options{
		Image:    image,
		Widths:   "40,80",
		HTML:     true,
		ImgSizes: "100vw",
		Format:   "jpg",
		Quality:  90,
		Lower:    true,
		Dashes:   true,
	}
}

func TestRun_DeletesSourceAfterSuccess(t *testing.T) {
	dir := t.TempDir()
	src := writeSourceJPEG(t, dir, "photo_one.jpg", 100, 50)

	opts := testOptions(src)
	opts.Delete = true

	if err := Run(opts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source should be deleted after a fully successful run")
	}
	for _, name := range []string{"photo-one-40.jpg", "photo-one-80.jpg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("variant %s missing: %v", name, err)
		}
	}
}

func TestRun_KeepsSourceWithoutDelete(t *testing.T) {
	dir := t.TempDir()
	src := writeSourceJPEG(t, dir, "photo.jpg", 100, 50)

	opts := testOptions(src)
	opts.Delete = false

	if err := Run(opts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source should remain when delete is off: %v", err)
	}
}

func TestRun_BadWidthsBeforeAnyIO(t *testing.T) {
	dir := t.TempDir()
	src := writeSourceJPEG(t, dir, "photo.jpg", 100, 50)

	opts := testOptions(src)
	opts.Widths = "600,abc"
	opts.Delete = true

	err := Run(opts)
	if err == nil {
		t.Fatal("Run should fail for a malformed width list")
	}
	if !errors.Is(err, ErrBadArgument) {
		t.Errorf("error should match ErrBadArgument, got: %v", err)
	}

	// Validation failed before any file I/O: source intact, no variants.
	if _, statErr := os.Stat(src); statErr != nil {
		t.Errorf("source should remain after a validation failure: %v", statErr)
	}
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("failed to read dir: %v", readErr)
	}
	if len(entries) != 1 {
		t.Errorf("no variants should be written, dir has %d entries", len(entries))
	}
}

func TestRun_QualityOutOfRange(t *testing.T) {
	dir := t.TempDir()
	src := writeSourceJPEG(t, dir, "photo.jpg", 50, 50)

	for _, q := range []int{-1, 101} {
		opts := testOptions(src)
		opts.Quality = q

		err := Run(opts)
		if err == nil {
			t.Fatalf("Run should fail for quality %d", q)
		}
		if !errors.Is(err, ErrBadArgument) {
			t.Errorf("quality %d: error should match ErrBadArgument, got: %v", q, err)
		}
	}
}

func TestRun_UnsupportedFormatKeepsSource(t *testing.T) {
	dir := t.TempDir()
	src := writeSourceJPEG(t, dir, "photo.jpg", 50, 50)

	opts := testOptions(src)
	opts.Format = "png"
	opts.Delete = true

	err := Run(opts)
	if err == nil {
		t.Fatal("Run should fail for an unsupported format")
	}
	if !errors.Is(err, imaging.ErrEncode) {
		t.Errorf("error should match imaging.ErrEncode, got: %v", err)
	}
	if _, statErr := os.Stat(src); statErr != nil {
		t.Errorf("source should remain after a failed run: %v", statErr)
	}
}

func TestRun_UndecodableSourceKeepsFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "fake.jpg")
	if err := os.WriteFile(src, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	opts := testOptions(src)
	opts.Delete = true

	err := Run(opts)
	if err == nil {
		t.Fatal("Run should fail for an undecodable source")
	}
	if !errors.Is(err, imaging.ErrDecode) {
		t.Errorf("error should match imaging.ErrDecode, got: %v", err)
	}
	if _, statErr := os.Stat(src); statErr != nil {
		t.Errorf("source should remain after a failed run: %v", statErr)
	}
}
