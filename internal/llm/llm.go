package llm

import (
	"context"

	"menu-ocr/internal/fetch"
)

// VisionGenerator is an interface for generating schema-constrained JSON
// from a prompt and an image.
type VisionGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, img fetch.Image) (string, error)
}

// VisionClient is a VisionGenerator backed by a remote service that must be
// closed when the process is done with it.
type VisionClient interface {
	VisionGenerator
	Close() error
}
