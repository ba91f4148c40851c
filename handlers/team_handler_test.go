package handlers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/nkalgutkar/sports-management/storage"
)

// multipartBody builds a form with text fields plus one optional file part.
func multipartBody(t *testing.T, fields map[string]string, fileField, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			t.Fatalf("writing field %s: %v", name, err)
		}
	}
	if fileField != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, filename))
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		if err != nil {
			t.Fatalf("creating file part: %v", err)
		}
		if _, err := part.Write(payload); err != nil {
			t.Fatalf("writing file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestTeamInputFromForm_Multipart(t *testing.T) {
	body, contentType := multipartBody(t,
		map[string]string{"name": "Falcons", "department": "Computer Science", "color": "#ff0000"},
		"logo", "falcons.png", "image/png", []byte("png bytes"))

	req := httptest.NewRequest(http.MethodPost, "/api/teams", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	input, err := teamInputFromForm(rec, req)
	if err != nil {
		t.Fatalf("teamInputFromForm: %v", err)
	}
	defer closeFormFile(input.Logo)

	if input.Name != "Falcons" || input.Department != "Computer Science" {
		t.Errorf("input = %+v", input)
	}
	if input.Color == nil || *input.Color != "#ff0000" {
		t.Errorf("color = %v", input.Color)
	}
	if input.Logo == nil {
		t.Fatal("logo is nil")
	}
	if input.Logo.Filename != "falcons.png" || input.Logo.ContentType != "image/png" {
		t.Errorf("logo = %+v", input.Logo)
	}
}

func TestTeamInputFromForm_JSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/teams",
		strings.NewReader(`{"name": "Falcons", "department": "Computer Science", "color": "#ff0000"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	input, err := teamInputFromForm(rec, req)
	if err != nil {
		t.Fatalf("teamInputFromForm: %v", err)
	}

	if input.Name != "Falcons" || input.Department != "Computer Science" {
		t.Errorf("input = %+v", input)
	}
	if input.Color == nil || *input.Color != "#ff0000" {
		t.Errorf("color = %v", input.Color)
	}
	if input.Logo != nil {
		t.Errorf("logo = %+v, want nil", input.Logo)
	}
}

func TestTeamInputFromForm_RejectsOversizeBody(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), int(storage.MaxUploadSize+multipartFormOverhead))
	body, contentType := multipartBody(t,
		map[string]string{"name": "Falcons", "department": "Computer Science"},
		"logo", "huge.png", "image/png", payload)

	req := httptest.NewRequest(http.MethodPost, "/api/teams", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	_, err := teamInputFromForm(rec, req)
	if err == nil {
		t.Fatal("oversize body accepted")
	}
	if !strings.Contains(err.Error(), "larger than") {
		t.Errorf("err = %v", err)
	}
}
