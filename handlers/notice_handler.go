package handlers

import (
	"net/http"

	"github.com/nkalgutkar/sports-management/services"
)

type NoticeHandler struct {
	noticeService services.NoticeService
}

func NewNoticeHandler(ns services.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: ns}
}

func noticeInputFromForm(w http.ResponseWriter, r *http.Request) (services.NoticeInput, error) {
	if err := parseUploadForm(w, r); err != nil {
		return services.NoticeInput{}, err
	}

	document, err := formFile(r, "document")
	if err != nil {
		return services.NoticeInput{}, err
	}
	scheduleImage, err := formFile(r, "scheduleImage")
	if err != nil {
		closeFormFile(document)
		return services.NoticeInput{}, err
	}

	return services.NoticeInput{
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		NoticeDate:    r.FormValue("noticeDate"),
		Document:      document,
		ScheduleImage: scheduleImage,
	}, nil
}

func (h *NoticeHandler) CreateNotice(w http.ResponseWriter, r *http.Request) {
	input, err := noticeInputFromForm(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer closeFormFile(input.Document)
	defer closeFormFile(input.ScheduleImage)

	notice, err := h.noticeService.CreateNotice(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "notice": notice}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NoticeHandler) GetNoticeByID(w http.ResponseWriter, r *http.Request) {
	noticeID, err := getIDFromURL(r, "noticeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	notice, err := h.noticeService.GetNoticeByID(r.Context(), noticeID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "notice": notice}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NoticeHandler) GetAllNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := h.noticeService.GetAllNotices(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "notices": notices}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NoticeHandler) UpdateNotice(w http.ResponseWriter, r *http.Request) {
	noticeID, err := getIDFromURL(r, "noticeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input, err := noticeInputFromForm(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer closeFormFile(input.Document)
	defer closeFormFile(input.ScheduleImage)

	notice, err := h.noticeService.UpdateNotice(r.Context(), noticeID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "notice": notice}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *NoticeHandler) DeleteNotice(w http.ResponseWriter, r *http.Request) {
	noticeID, err := getIDFromURL(r, "noticeID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.noticeService.DeleteNotice(r.Context(), noticeID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "message": "notice deleted"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
