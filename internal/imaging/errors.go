package imaging

import "errors"

// Sentinel errors for the two ways a resize run can fail. Callers match
// them with errors.Is; every return site wraps them with context.
var (
	// ErrDecode indicates the source file could not be read as an image.
	ErrDecode = errors.New("cannot decode source image")

	// ErrEncode indicates an unsupported target format or a failed write.
	ErrEncode = errors.New("cannot encode image variant")
)
