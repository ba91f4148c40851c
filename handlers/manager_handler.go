package handlers

import (
	"net/http"

	"github.com/nkalgutkar/sports-management/services"
)

type ManagerHandler struct {
	managerService services.ManagerService
}

func NewManagerHandler(ms services.ManagerService) *ManagerHandler {
	return &ManagerHandler{managerService: ms}
}

func (h *ManagerHandler) CreateManager(w http.ResponseWriter, r *http.Request) {
	var input services.CreateManagerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	manager, err := h.managerService.CreateManager(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "manager": manager}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ManagerHandler) GetManagerByID(w http.ResponseWriter, r *http.Request) {
	managerID, err := getIDFromURL(r, "managerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	manager, err := h.managerService.GetManagerByID(r.Context(), managerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "manager": manager}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ManagerHandler) GetAllManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.managerService.GetAllManagers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "managers": managers}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ManagerHandler) UpdateManager(w http.ResponseWriter, r *http.Request) {
	managerID, err := getIDFromURL(r, "managerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateManagerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	manager, err := h.managerService.UpdateManager(r.Context(), managerID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "manager": manager}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ManagerHandler) DeleteManager(w http.ResponseWriter, r *http.Request) {
	managerID, err := getIDFromURL(r, "managerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.managerService.DeleteManager(r.Context(), managerID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "message": "manager deleted"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ManagerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	manager, token, err := h.managerService.Login(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "manager": manager, "token": token}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
