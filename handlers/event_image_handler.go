package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/nkalgutkar/sports-management/services"
)

type EventImageHandler struct {
	imageService services.EventImageService
}

func NewEventImageHandler(es services.EventImageService) *EventImageHandler {
	return &EventImageHandler{imageService: es}
}

func eventImageInputFromForm(w http.ResponseWriter, r *http.Request) (services.EventImageInput, error) {
	if err := parseUploadForm(w, r); err != nil {
		return services.EventImageInput{}, err
	}

	image, err := formFile(r, "image")
	if err != nil {
		return services.EventImageInput{}, err
	}

	displayOrder := 0
	if raw := r.FormValue("displayOrder"); raw != "" {
		displayOrder, err = strconv.Atoi(raw)
		if err != nil {
			return services.EventImageInput{}, fmt.Errorf("invalid displayOrder value: %q", raw)
		}
	}

	return services.EventImageInput{
		Title:        optionalFormValue(r, "title"),
		Description:  optionalFormValue(r, "description"),
		DisplayOrder: displayOrder,
		Image:        image,
	}, nil
}

func (h *EventImageHandler) CreateEventImage(w http.ResponseWriter, r *http.Request) {
	input, err := eventImageInputFromForm(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer closeFormFile(input.Image)

	image, err := h.imageService.CreateEventImage(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "event_image": image}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventImageHandler) GetEventImageByID(w http.ResponseWriter, r *http.Request) {
	imageID, err := getIDFromURL(r, "imageID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	image, err := h.imageService.GetEventImageByID(r.Context(), imageID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "event_image": image}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventImageHandler) GetAllEventImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.imageService.GetAllEventImages(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "event_images": images}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventImageHandler) UpdateEventImage(w http.ResponseWriter, r *http.Request) {
	imageID, err := getIDFromURL(r, "imageID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input, err := eventImageInputFromForm(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer closeFormFile(input.Image)

	image, err := h.imageService.UpdateEventImage(r.Context(), imageID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "event_image": image}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventImageHandler) DeleteEventImage(w http.ResponseWriter, r *http.Request) {
	imageID, err := getIDFromURL(r, "imageID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.imageService.DeleteEventImage(r.Context(), imageID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "message": "event image deleted"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
