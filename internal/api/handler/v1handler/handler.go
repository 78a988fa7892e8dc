// Package v1handler implements the version 1 REST API: routing, bearer
// authentication, JSON codecs and the mapping of semantic errors to HTTP
// responses.
package v1handler

import (
	"context"
	"errors"
	"ground/internal/collector"
	"ground/pkg/logger"
	"ground/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the handlers call into.
type Deps struct {
	Collector collector.Collector
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code    string
	Message string
}

// Encode writes the response as {"code": ..., "message": ...}.
func (r *ErrorResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(r.Code)
	e.FieldStart("message")
	e.Str(r.Message)
	e.ObjEnd()
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status code.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

// kindStatus maps semantic kinds to status codes and default messages.
var kindStatus = []struct { //nolint: gochecknoglobals
	kind    serrors.Kind
	status  int
	message string
}{
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "request timed out"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
}

// NewError converts err to an error response. Errors without a known
// semantic kind become internal errors and are logged; their details never
// reach the client. Bad request and conflict responses carry the full error
// text so clients can tell what to fix.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	var semantic *serrors.Error
	errors.As(err, &semantic)

	for _, ks := range kindStatus {
		if !errors.Is(err, ks.kind) {
			continue
		}

		message := ks.message
		if semantic != nil && semantic.Message() != "" {
			message = semantic.Message()
			if ks.kind == serrors.ErrBadRequest || ks.kind == serrors.ErrConflict {
				message = semantic.Error()
			}
		}
		logger.Debug(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: ks.status,
			Response:   ErrorResponse{Code: ks.kind.Error(), Message: message},
		}
	}

	logger.Error(ctx, err.Error())

	return &ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
	}
}

// encoder writes a response body.
type encoder interface {
	Encode(e *jx.Encoder)
}

// endpoint handles a request and returns the status code and body of a
// successful response. A nil body sends no content.
type endpoint func(r *http.Request) (int, encoder, error)

// serve adapts an endpoint to net/http, writing errors through NewError.
func (h Handler) serve(fn endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, body, err := fn(r)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		writeJSON(r.Context(), w, status, body)
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, &res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body encoder) {
	if body == nil {
		w.WriteHeader(status)

		return
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	body.Encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}
