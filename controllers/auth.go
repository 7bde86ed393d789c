package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/privops/elevate/logic"
)

func authHandlers(r *mux.Router) {
	r.HandleFunc("/api/v1/token", logic.SecurityCheck(true,
		http.HandlerFunc(createToken))).Methods(http.MethodPost)
}

type tokenRequest struct {
	PrincipalID string `json:"principal_id"`
	IsAdmin     bool   `json:"is_admin"`
}

// createToken - issues a signed API token for a principal; master only
func createToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logic.ReturnErrorResponse(w, r, logic.FormatError(err, "badrequest"))
		return
	}
	if req.PrincipalID == "" {
		logic.ReturnErrorResponse(w, r, logic.FormatError(errors.New("principal_id is required"), "badrequest"))
		return
	}
	token, err := logic.CreateUserJWT(req.PrincipalID, req.IsAdmin)
	if err != nil {
		logic.ReturnErrorResponse(w, r, logic.FormatError(err, "internal"))
		return
	}
	logic.ReturnSuccessResponseWithJson(w, r, map[string]string{"token": token}, "issued token")
}
