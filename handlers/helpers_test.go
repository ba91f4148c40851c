package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/nkalgutkar/sports-management/services"
	"github.com/nkalgutkar/sports-management/storage"
)

func TestMapServiceErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"manager not found", services.ErrManagerNotFound, http.StatusNotFound},
		{"link not found", services.ErrLinkNotFound, http.StatusNotFound},
		{"name required", services.ErrNameRequired, http.StatusBadRequest},
		{"birth date invalid", services.ErrBirthDateInvalid, http.StatusBadRequest},
		{"email conflict", services.ErrManagerEmailConflict, http.StatusBadRequest},
		{"prn conflict", services.ErrStudentPrnConflict, http.StatusBadRequest},
		{"sport in use", services.ErrSportInUse, http.StatusBadRequest},
		{"file type not allowed", storage.ErrFileTypeNotAllowed, http.StatusBadRequest},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"wrapped sentinel", fmt.Errorf("creating manager: %w", services.ErrManagerNotFound), http.StatusNotFound},
		{"unexpected error", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			mapServiceErrorToHTTP(rec, req, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), `"error"`) {
				t.Errorf("body missing error envelope: %s", rec.Body.String())
			}
		})
	}
}

func TestMapServiceErrorToHTTP_ExposesUnderlyingError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	mapServiceErrorToHTTP(rec, req, errors.New("pq: relation does not exist"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "pq: relation does not exist") {
		t.Errorf("body does not carry the raw error: %s", rec.Body.String())
	}
}

func TestReadJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"name": "x"}`, ""},
		{"empty body", ``, "body must not be empty"},
		{"malformed", `{"name":`, "badly-formed JSON"},
		{"unknown field", `{"nope": 1}`, "unknown key"},
		{"trailing value", `{"name": "x"}{"name": "y"}`, "single JSON value"},
		{"wrong type", `{"name": 5}`, `incorrect JSON type for field "name"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst payload
			err := readJSON(rec, req, &dst)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("readJSON: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("readJSON: got %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestGetIDFromURL(t *testing.T) {
	newRequest := func(value string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("managerID", value)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	if id, err := getIDFromURL(newRequest("12"), "managerID"); err != nil || id != 12 {
		t.Errorf("getIDFromURL(12) = %d, %v", id, err)
	}
	for _, bad := range []string{"", "abc", "0", "-4"} {
		if _, err := getIDFromURL(newRequest(bad), "managerID"); err == nil {
			t.Errorf("getIDFromURL(%q) succeeded, want error", bad)
		}
	}
}

func TestManagerIDFilter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/students", nil)
	if id, err := managerIDFilter(req); err != nil || id != nil {
		t.Errorf("absent filter: got %v, %v", id, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/students?managerId=3", nil)
	id, err := managerIDFilter(req)
	if err != nil || id == nil || *id != 3 {
		t.Errorf("managerId=3: got %v, %v", id, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/students?managerId=zero", nil)
	if _, err := managerIDFilter(req); err == nil {
		t.Error("managerId=zero succeeded, want error")
	}
}
