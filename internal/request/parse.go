package request

import (
	"encoding/json"
	"strings"

	"github.com/samber/lo"
)

// DefaultModel is used when the caller does not name one.
const DefaultModel = "gemini-2.5-flash-image-preview"

// BadRequestError marks a request that was rejected before any
// upstream call. Its message goes verbatim into the 400 body.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

type Request struct {
	Prompt         string
	Model          string
	MimeType       string
	NegativePrompt string
}

// Parse validates the raw invocation event and normalizes it into a
// Request. The event must carry a "body" string holding a JSON object
// with at least a non-blank "prompt". MimeType stays empty unless the
// caller supplied an override; an empty MimeType means no output
// format directive is sent upstream.
func Parse(event map[string]any) (*Request, error) {
	raw, ok := event["body"]
	if !ok {
		return nil, &BadRequestError{Message: "unsupported body format"}
	}
	body, ok := raw.(string)
	if !ok {
		return nil, &BadRequestError{Message: "unsupported body format"}
	}
	if body == "" {
		return nil, &BadRequestError{Message: "body is empty"}
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, &BadRequestError{Message: "body is not valid JSON"}
	}

	prompt := stringField(payload, "prompt")
	if prompt == "" {
		return nil, &BadRequestError{Message: "prompt field is required"}
	}

	return &Request{
		Prompt:         prompt,
		Model:          lo.CoalesceOrEmpty(stringField(payload, "model"), DefaultModel),
		MimeType:       stringField(payload, "mimeType", "mime_type"),
		NegativePrompt: stringField(payload, "negativePrompt", "negative_prompt"),
	}, nil
}

// stringField returns the first key holding a non-blank string,
// trimmed. Non-string values count as absent.
func stringField(payload map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := payload[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
