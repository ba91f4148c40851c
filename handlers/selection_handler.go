package handlers

import (
	"errors"
	"net/http"

	"github.com/nkalgutkar/sports-management/services"
)

type SelectionHandler struct {
	selectionService services.SelectionService
}

func NewSelectionHandler(ss services.SelectionService) *SelectionHandler {
	return &SelectionHandler{selectionService: ss}
}

// ToggleSelection upserts the selection flag for a (student, manager) pair.
func (h *SelectionHandler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	var input services.ToggleSelectionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	selection, err := h.selectionService.Toggle(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "selection": selection}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SelectionHandler) ListSelections(w http.ResponseWriter, r *http.Request) {
	managerID, err := managerIDFilter(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if managerID == nil {
		badRequestResponse(w, r, errors.New("managerId query parameter is required"))
		return
	}

	selections, err := h.selectionService.ListByManager(r.Context(), *managerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "selections": selections}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
