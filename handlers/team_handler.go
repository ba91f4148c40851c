package handlers

import (
	"net/http"
	"strings"

	"github.com/nkalgutkar/sports-management/services"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(ts services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: ts}
}

// teamInputFromForm builds the service input from either a multipart form
// (with an optional logo file the caller must close) or a plain JSON body.
func teamInputFromForm(w http.ResponseWriter, r *http.Request) (services.TeamInput, error) {
	if ct := r.Header.Get("Content-Type"); strings.HasPrefix(strings.ToLower(ct), "application/json") {
		var body struct {
			Name       string  `json:"name"`
			Department string  `json:"department"`
			Color      *string `json:"color"`
		}
		if err := readJSON(w, r, &body); err != nil {
			return services.TeamInput{}, err
		}
		return services.TeamInput{
			Name:       body.Name,
			Department: body.Department,
			Color:      body.Color,
		}, nil
	}

	if err := parseUploadForm(w, r); err != nil {
		return services.TeamInput{}, err
	}

	logo, err := formFile(r, "logo")
	if err != nil {
		return services.TeamInput{}, err
	}

	return services.TeamInput{
		Name:       r.FormValue("name"),
		Department: r.FormValue("department"),
		Color:      optionalFormValue(r, "color"),
		Logo:       logo,
	}, nil
}

func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	input, err := teamInputFromForm(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer closeFormFile(input.Logo)

	team, err := h.teamService.CreateTeam(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "team": team}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) GetTeamByID(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.GetTeamByID(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "team": team}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) GetAllTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.GetAllTeams(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "teams": teams}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input, err := teamInputFromForm(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer closeFormFile(input.Logo)

	team, err := h.teamService.UpdateTeam(r.Context(), teamID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "team": team}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), teamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"success": true, "message": "team deleted"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
