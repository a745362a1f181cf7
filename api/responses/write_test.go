package responses

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/acmelabs/storefront-api/pkg/errors"
	"github.com/acmelabs/storefront-api/pkg/logger"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return body
}

func TestWriteListIncludesZeroCount(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteList(rec, []string{}, 0)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["success"] != true {
		t.Fatalf("expected success=true")
	}
	if count, ok := body["count"].(float64); !ok || count != 0 {
		t.Fatalf("count=0 must be serialized, got %v", body["count"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("empty data list must be present")
	}
}

func TestWriteCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteCreated(rec, "User created successfully", map[string]int{"id": 6})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["message"] != "User created successfully" {
		t.Fatalf("unexpected message %v", body["message"])
	}
}

func TestWriteErrorNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeNotFound, "User not found"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["success"] != false || body["message"] != "User not found" {
		t.Fatalf("unexpected body %v", body)
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("404 must not leak detail")
	}
}

func TestWriteErrorInternalIncludesDetail(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	rec := httptest.NewRecorder()
	cause := errors.New("probe timed out")
	WriteError(context.Background(), logg, rec, pkgerrors.Wrap(pkgerrors.CodeInternal, cause, "Error generating stats"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["message"] != "Error generating stats" {
		t.Fatalf("unexpected message %v", body["message"])
	}
	if body["error"] != "probe timed out" {
		t.Fatalf("expected diagnostic detail, got %v", body["error"])
	}
}

func TestWriteErrorUntyped(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, errors.New("surprise"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("untyped errors map to 500, got %d", rec.Code)
	}
}
