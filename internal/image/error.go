package image

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"google.golang.org/genai"
)

var errMissingKey = errors.New("gemini API key unavailable")

// leadingCodeRegexp recovers an HTTP status from error text shaped
// like "404 model not found".
var leadingCodeRegexp = regexp.MustCompile(`^\s*(\d{3})\b`)

// UpstreamError is the structured form of a generation failure. The
// generator translates whatever the transport produced into this type
// at the boundary; nothing downstream inspects raw upstream errors.
type UpstreamError struct {
	Status  int
	Message string
	Detail  string
	TraceID string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini: %d %s", e.Status, e.Message)
}

func asUpstreamError(err error) *UpstreamError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		ue := &UpstreamError{
			Status:  http.StatusBadGateway,
			Message: apiErr.Message,
			TraceID: traceID(apiErr.Details),
		}
		if apiErr.Code > 0 {
			ue.Status = apiErr.Code
		}
		if ue.Message == "" {
			ue.Message = err.Error()
		}
		if apiErr.Status != "" && apiErr.Status != ue.Message {
			ue.Detail = apiErr.Status
		}
		return ue
	}

	message := err.Error()
	status := http.StatusBadGateway
	if m := leadingCodeRegexp.FindStringSubmatch(message); m != nil {
		status, _ = strconv.Atoi(m[1])
	}
	return &UpstreamError{Status: status, Message: message}
}

// traceID digs a request correlation id out of the error detail maps,
// when the API attached one.
func traceID(details []map[string]any) string {
	for _, detail := range details {
		for _, key := range []string{"traceId", "requestId"} {
			if v, ok := detail[key].(string); ok && v != "" {
				return v
			}
		}
	}
	return ""
}
