package prompt

import (
	"github.com/jmflorez/lienzo/internal/request"
	"google.golang.org/genai"
)

const negativePrefix = "Evita: "

// Assemble builds the user content sent upstream: the prompt first,
// then exactly one "Evita: ..." part when a negative prompt was
// supplied. Nothing else is added or rewritten.
func Assemble(req *request.Request) []*genai.Content {
	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if req.NegativePrompt != "" {
		parts = append(parts, genai.NewPartFromText(negativePrefix+req.NegativePrompt))
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}
