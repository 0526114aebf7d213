package image

import (
	"context"

	"google.golang.org/genai"
)

// DefaultMimeType is assumed when an upstream image part carries none.
const DefaultMimeType = "image/png"

type Params struct {
	Model    string
	Contents []*genai.Content
	// MimeType, when set, is forwarded as an output-format directive.
	// Empty means the upstream default stands.
	MimeType string
}

type Generator interface {
	Generate(context.Context, Params) (*genai.GenerateContentResponse, error)
}

// Result is one generated image: its mime type and base64 payload,
// exactly as returned in the 200 body.
type Result struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}
