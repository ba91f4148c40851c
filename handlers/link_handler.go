package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nkalgutkar/sports-management/services"
)

type LinkHandler struct {
	linkService services.LinkService
}

func NewLinkHandler(ls services.LinkService) *LinkHandler {
	return &LinkHandler{linkService: ls}
}

func (h *LinkHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ManagerID int `json:"managerId"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	link, err := h.linkService.CreateLink(r.Context(), input.ManagerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "link": link}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LinkHandler) GetAllLinks(w http.ResponseWriter, r *http.Request) {
	managerID, err := managerIDFilter(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	links, err := h.linkService.GetAllLinks(r.Context(), managerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "links": links}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetLinkByToken is the public endpoint a registration page loads to show
// who the submission goes to. Inactive or unknown tokens both 404.
func (h *LinkHandler) GetLinkByToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	link, err := h.linkService.GetLinkByToken(r.Context(), token)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "link": link}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LinkHandler) SetLinkActive(w http.ResponseWriter, r *http.Request) {
	linkID, err := getIDFromURL(r, "linkID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		IsActive bool `json:"isActive"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	link, err := h.linkService.SetLinkActive(r.Context(), linkID, input.IsActive)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "link": link}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LinkHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	linkID, err := getIDFromURL(r, "linkID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.linkService.DeleteLink(r.Context(), linkID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "message": "registration link deleted"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitStudent is the public, token-authenticated registration endpoint.
func (h *LinkHandler) SubmitStudent(w http.ResponseWriter, r *http.Request) {
	var input services.LinkSubmissionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	student, err := h.linkService.SubmitStudent(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "student": student}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
