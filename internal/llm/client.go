package llm

import (
	"context"
)

type Client interface {
	ExtractLabel(ctx context.Context, imageBase64 string, mimeType string) (string, error)
}
