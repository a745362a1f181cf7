package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/acmelabs/storefront-api/internal/store"
	usersvc "github.com/acmelabs/storefront-api/internal/users"
	"github.com/acmelabs/storefront-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func newUsersRouter(users []store.User) chi.Router {
	svc := usersvc.NewService(store.New(users, nil, nil))
	logg := testLogger()
	r := chi.NewRouter()
	r.Get("/api/users", ListUsers(svc, logg))
	r.Post("/api/users", CreateUser(svc, logg))
	r.Get("/api/users/{userId}", GetUser(svc, logg))
	return r
}

func sampleUsers() []store.User {
	return []store.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Role: "admin"},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Role: "user"},
		{ID: 3, Name: "Carol", Email: "carol@example.com", Role: "user"},
		{ID: 5, Name: "Eve", Email: "eve@example.com", Role: "manager"},
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

func TestListUsers(t *testing.T) {
	router := newUsersRouter(sampleUsers())

	t.Run("no filters", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["count"].(float64) != 4 {
			t.Fatalf("expected count 4, got %v", body["count"])
		}
	})

	t.Run("role filter case-insensitive", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users?role=USER", nil))

		body := decodeBody(t, rec)
		if body["count"].(float64) != 2 {
			t.Fatalf("expected count 2, got %v", body["count"])
		}
	})

	t.Run("role with no matches is empty success", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users?role=ghost", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("empty result must be 200, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["count"].(float64) != 0 {
			t.Fatalf("expected count 0, got %v", body["count"])
		}
	})

	t.Run("limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users?limit=2", nil))

		body := decodeBody(t, rec)
		if got := len(body["data"].([]any)); got != 2 {
			t.Fatalf("expected 2 records, got %d", got)
		}
	})

	t.Run("malformed limit ignored", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users?limit=abc", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("malformed limit must not fail, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["count"].(float64) != 4 {
			t.Fatalf("expected full collection, got %v", body["count"])
		}
	})
}

func TestGetUser(t *testing.T) {
	router := newUsersRouter(sampleUsers())

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/2", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		data := body["data"].(map[string]any)
		if data["name"] != "Bob" {
			t.Fatalf("expected Bob, got %v", data["name"])
		}
	})

	t.Run("missing id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/42", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["message"] != "User not found" {
			t.Fatalf("unexpected message %v", body["message"])
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/abc", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["message"] != "Invalid user ID" {
			t.Fatalf("unexpected message %v", body["message"])
		}
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("success assigns next id", func(t *testing.T) {
		router := newUsersRouter(sampleUsers())
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users",
			strings.NewReader(`{"name":"Zoe","email":"zoe@example.com","role":"user"}`))
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		body := decodeBody(t, rec)
		if body["message"] != "User created successfully" {
			t.Fatalf("unexpected message %v", body["message"])
		}
		data := body["data"].(map[string]any)
		if data["id"].(float64) != 6 {
			t.Fatalf("expected id 6 (max existing was 5), got %v", data["id"])
		}
	})

	t.Run("missing fields name the first one", func(t *testing.T) {
		router := newUsersRouter(sampleUsers())
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"name":"Zoe"}`))
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["message"] != "Missing required field: email" {
			t.Fatalf("unexpected message %v", body["message"])
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		router := newUsersRouter(sampleUsers())
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`not json`))
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["message"] != "Invalid JSON data" {
			t.Fatalf("unexpected message %v", body["message"])
		}
	})
}
