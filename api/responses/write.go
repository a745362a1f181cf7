package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/acmelabs/storefront-api/pkg/errors"
	"github.com/acmelabs/storefront-api/pkg/logger"
)

// Envelope is the uniform response wrapper. Count is present only on list
// responses (pointer so count=0 still serializes); Error carries diagnostic
// detail on 5xx responses only.
type Envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteData writes a 200 single-entity envelope.
func WriteData(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// WriteList writes a 200 list envelope with its count.
func WriteList(w http.ResponseWriter, data any, count int) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Count: &count, Data: data})
}

// WriteCreated writes a 201 envelope with a confirmation message.
func WriteCreated(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// WriteError converts any error into the failure envelope for its code.
// Untyped errors are treated as internal. 5xx responses get the cause in
// the error field and a log entry; client errors are returned silently.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	if m := typed.Message(); m != "" {
		msg = m
	}

	payload := Envelope{Success: false, Message: msg}
	if meta.DetailAllowed {
		if cause := typed.Unwrap(); cause != nil {
			payload.Error = cause.Error()
		}
	}

	if logg != nil && meta.HTTPStatus >= http.StatusInternalServerError {
		ctx = logg.WithField(ctx, "error_code", string(typed.Code()))
		logg.Error(ctx, "request.error", err)
	}

	WriteJSON(w, meta.HTTPStatus, payload)
}

// WriteJSON writes any payload with the given status. Handlers with a
// non-envelope shape (health) use it directly.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
