package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nkalgutkar/sports-management/services"
	"github.com/nkalgutkar/sports-management/storage"
)

type jsonResponse map[string]interface{}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case err.Error() == "http: request body too large":
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse passes the raw error message through to the client.
func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusInternalServerError, err.Error())
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusNotFound, message)
}

func unauthorizedResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusUnauthorized, message)
}

func getIDFromURL(r *http.Request, param string) (int, error) {
	idStr := chi.URLParam(r, param)
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s parameter: %q", param, idStr)
	}
	return id, nil
}

// managerIDFilter parses the optional ?managerId= query parameter.
func managerIDFilter(r *http.Request) (*int, error) {
	raw := r.URL.Query().Get("managerId")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid managerId query parameter: %q", raw)
	}
	return &id, nil
}

// multipartFormOverhead allows for part boundaries and text fields on top
// of the file payload itself.
const multipartFormOverhead = 1 << 20

// parseUploadForm caps the request body before parsing, so an oversize
// upload is rejected without spooling the whole body to disk first.
func parseUploadForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, storage.MaxUploadSize+multipartFormOverhead)
	if err := r.ParseMultipartForm(storage.MaxUploadSize); err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			return fmt.Errorf("request body must not be larger than %d bytes", maxBytesError.Limit)
		}
		return fmt.Errorf("failed to parse multipart form: %w", err)
	}
	return nil
}

// formFile pulls one optional multipart file into a service input. A missing
// field returns (nil, nil).
func formFile(r *http.Request, field string) (*services.FileInput, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s file from form: %w", field, err)
	}
	return &services.FileInput{
		Reader:      file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}, nil
}

func closeFormFile(f *services.FileInput) {
	if f == nil {
		return
	}
	if closer, ok := f.Reader.(multipart.File); ok {
		closer.Close()
	}
}

// optionalFormValue distinguishes an absent form field from an empty one.
func optionalFormValue(r *http.Request, field string) *string {
	values, ok := r.Form[field]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// mapServiceErrorToHTTP translates service-layer errors into HTTP responses.
// Conflicts deliberately map to 400, matching the API contract clients
// already depend on.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrManagerNotFound),
		errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrSportNotFound),
		errors.Is(err, services.ErrStudentNotFound),
		errors.Is(err, services.ErrCoachNotFound),
		errors.Is(err, services.ErrSelectionNotFound),
		errors.Is(err, services.ErrEventImageNotFound),
		errors.Is(err, services.ErrNoticeNotFound),
		errors.Is(err, services.ErrLinkNotFound):
		notFoundResponse(w, r, err.Error())

	case errors.Is(err, services.ErrValidationFailed),
		errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrDepartmentRequired),
		errors.Is(err, services.ErrSportRequired),
		errors.Is(err, services.ErrContactRequired),
		errors.Is(err, services.ErrEmailInvalid),
		errors.Is(err, services.ErrStudentCountInvalid),
		errors.Is(err, services.ErrPrnUIDRequired),
		errors.Is(err, services.ErrBirthDateInvalid),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrDescriptionRequired),
		errors.Is(err, services.ErrNoticeDateInvalid),
		errors.Is(err, services.ErrDisplayOrderInvalid),
		errors.Is(err, services.ErrImageFileRequired),
		errors.Is(err, services.ErrManagerEmailConflict),
		errors.Is(err, services.ErrTeamNameConflict),
		errors.Is(err, services.ErrSportNameConflict),
		errors.Is(err, services.ErrStudentPrnConflict),
		errors.Is(err, services.ErrSportInUse),
		errors.Is(err, services.ErrUploadTypeNotAllowed),
		errors.Is(err, services.ErrUploadTooLarge),
		errors.Is(err, storage.ErrFileTypeNotAllowed):
		badRequestResponse(w, r, err)

	case errors.Is(err, services.ErrInvalidCredentials):
		unauthorizedResponse(w, r, err.Error())

	default:
		serverErrorResponse(w, r, err)
	}
}
