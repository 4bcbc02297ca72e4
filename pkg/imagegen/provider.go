package imagegen

import "context"

// ImageProvider generates raw image bytes from a text prompt. Implementations
// are expected to be safe for concurrent use.
type ImageProvider interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
