// Package imaging decodes source images and generates resized,
// re-encoded width variants for responsive <img> srcset use.
//
// The package exposes three concerns:
//
//   - Loading: Load decodes PNG, JPEG, GIF, and WebP sources; Describe
//     reports dimensions, format, and file size for a decoded source.
//   - Resizing: Resize scales a source to each requested pixel width
//     (height follows the source aspect ratio) and writes one encoded
//     file per width next to the source, with deterministic names
//     derived from the source stem.
//   - Color: AverageColor computes a mean-color hex string usable as a
//     loading placeholder.
//
// # Output formats and quality
//
// Variants encode to JPEG or lossy WebP. The quality scale is the
// user-facing one from the CLI: 0 means maximum compression, 100 means
// minimum. The value is handed to the encoders without remapping.
//
// # Error Handling
//
// Failures wrap one of two sentinels so callers can classify them with
// errors.Is: ErrDecode for unreadable sources, ErrEncode for unsupported
// target formats and failed writes. A failure mid-run leaves variants
// already written on disk; there is no rollback.
package imaging
