package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/jmflorez/lienzo/internal/credential"
	"github.com/jmflorez/lienzo/internal/image"
	"github.com/jmflorez/lienzo/internal/log"
	"github.com/jmflorez/lienzo/internal/prompt"
	"github.com/jmflorez/lienzo/internal/request"
	"github.com/samber/do"
)

const (
	missingKeyMessage = "missing configuration: GOOGLE_API_KEY"
	noImagesMessage   = "no images generated"
)

type successBody struct {
	Model  string         `json:"model"`
	Images []image.Result `json:"images"`
}

type messageBody struct {
	Message string `json:"message"`
}

type upstreamBody struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	TraceID string `json:"traceId,omitempty"`
}

type Handler struct {
	credentials *credential.Provider
	generator   image.Generator
}

func NewHandler(i *do.Injector) (*Handler, error) {
	return &Handler{
		credentials: do.MustInvoke[*credential.Provider](i),
		generator:   do.MustInvoke[image.Generator](i),
	}, nil
}

// Handle runs one invocation end to end: credential, parse, assemble,
// generate, extract. Every outcome maps to exactly one HTTP-shaped
// envelope; the returned error is always nil so nothing escapes to the
// runtime uncaught.
func (h *Handler) Handle(ctx context.Context, event map[string]any) (events.APIGatewayProxyResponse, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("Handler")
	log.Info("handling lambda invocation")

	if _, ok := h.credentials.Resolve(ctx); !ok {
		log.Error("no API key obtainable")
		return respond(http.StatusInternalServerError, messageBody{Message: missingKeyMessage}), nil
	}

	req, err := request.Parse(event)
	if err != nil {
		log.Warn("rejecting request", "reason", err)
		return respond(http.StatusBadRequest, messageBody{Message: err.Error()}), nil
	}

	resp, err := h.generator.Generate(ctx, image.Params{
		Model:    req.Model,
		Contents: prompt.Assemble(req),
		MimeType: req.MimeType,
	})
	if err != nil {
		var upstream *image.UpstreamError
		if !errors.As(err, &upstream) {
			upstream = &image.UpstreamError{Status: http.StatusBadGateway, Message: err.Error()}
		}
		log.Error("generation failed", "status", upstream.Status, "err", err)
		return respond(upstream.Status, upstreamBody{
			Error:   "GeminiError",
			Status:  upstream.Status,
			Message: upstream.Message,
			Detail:  upstream.Detail,
			TraceID: upstream.TraceID,
		}), nil
	}

	images := image.Extract(resp)
	if len(images) == 0 {
		log.Error("upstream returned no images", "model", req.Model)
		return respond(http.StatusBadGateway, messageBody{Message: noImagesMessage}), nil
	}

	log.Info("generated images", "model", req.Model, "count", len(images))
	return respond(http.StatusOK, successBody{Model: req.Model, Images: images}), nil
}

func respond(status int, body any) events.APIGatewayProxyResponse {
	data, _ := json.Marshal(body)
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(data),
	}
}
