package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/privops/elevate/logic"
	"github.com/privops/elevate/logger"
	"github.com/privops/elevate/models"
)

func elevationHandlers(r *mux.Router) {
	r.HandleFunc("/api/v1/elevation", logic.SecurityCheck(false,
		http.HandlerFunc(requestElevation))).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/elevation/extend", logic.SecurityCheck(false,
		http.HandlerFunc(extendElevation))).Methods(http.MethodPost)
	// history must be registered before the {requestid} wildcard
	r.HandleFunc("/api/v1/elevation/history", logic.SecurityCheck(true,
		http.HandlerFunc(getElevationHistory))).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/elevation/{requestid}", logic.SecurityCheck(false,
		http.HandlerFunc(getElevationStatus))).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/elevation", logic.SecurityCheck(false,
		http.HandlerFunc(deactivateElevation))).Methods(http.MethodDelete)
	r.HandleFunc("/api/v1/roles/eligible", logic.SecurityCheck(false,
		http.HandlerFunc(getEligibleRoles))).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/grants/active", logic.SecurityCheck(false,
		http.HandlerFunc(getActiveGrants))).Methods(http.MethodGet)
}

// requestElevation - submits a role activation for the authenticated principal
func requestElevation(w http.ResponseWriter, r *http.Request) {
	var apiReq models.APIActivationRequest
	if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
		logger.Log(0, "error decoding request body:", err.Error())
		logic.ReturnErrorResponse(w, r, logic.FormatError(err, "badrequest"))
		return
	}
	req := apiReq.ConvertToActivationRequest()
	if req.PrincipalID == "" {
		req.PrincipalID = r.Header.Get("user")
	}
	result := engine.Activate(r.Context(), req)
	logic.ReturnSuccessResponseWithJson(w, r, result, "processed elevation request")
}

// extendElevation - submits an extension, which re-validates policy like a
// fresh activation
func extendElevation(w http.ResponseWriter, r *http.Request) {
	var apiReq models.APIActivationRequest
	if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
		logic.ReturnErrorResponse(w, r, logic.FormatError(err, "badrequest"))
		return
	}
	req := apiReq.ConvertToActivationRequest()
	if req.PrincipalID == "" {
		req.PrincipalID = r.Header.Get("user")
	}
	result := engine.Extend(r.Context(), req)
	logic.ReturnSuccessResponseWithJson(w, r, result, "processed elevation extension")
}

// getElevationStatus - current canonical status of a request
func getElevationStatus(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestid"]
	result := engine.GetActivationStatus(r.Context(), requestID)
	logic.ReturnSuccessResponseWithJson(w, r, result, "fetched elevation status")
}

// deactivateElevation - ends an active grant early
func deactivateElevation(w http.ResponseWriter, r *http.Request) {
	principal := r.Header.Get("user")
	roleID := r.URL.Query().Get("role")
	scope := r.URL.Query().Get("scope")
	if roleID == "" {
		logic.ReturnErrorResponse(w, r, logic.FormatError(errors.New("role is required"), "badrequest"))
		return
	}
	ok, err := engine.Deactivate(r.Context(), principal, roleID, scope)
	if err != nil {
		logic.ReturnErrorResponse(w, r, logic.FormatError(err, "internal"))
		return
	}
	if !ok {
		logic.ReturnErrorResponse(w, r, logic.FormatError(errors.New("deactivation was not accepted"), "badrequest"))
		return
	}
	logic.ReturnSuccessResponse(w, r, "deactivated elevation")
}

// getEligibleRoles - roles the principal may activate
func getEligibleRoles(w http.ResponseWriter, r *http.Request) {
	principal := r.Header.Get("user")
	scope := r.URL.Query().Get("scope")
	roles, err := engine.EligibleRoles(r.Context(), principal, scope)
	if err != nil {
		logic.ReturnErrorResponse(w, r, logic.FormatError(err, "internal"))
		return
	}
	logic.ReturnSuccessResponseWithJson(w, r, roles, "fetched eligible roles")
}

// getActiveGrants - currently live grants for the principal
func getActiveGrants(w http.ResponseWriter, r *http.Request) {
	principal := r.Header.Get("user")
	grants, err := engine.ActiveGrants(r.Context(), principal)
	if err != nil {
		logic.ReturnErrorResponse(w, r, logic.FormatError(err, "internal"))
		return
	}
	logic.ReturnSuccessResponseWithJson(w, r, grants, "fetched active grants")
}

// getElevationHistory - admin view of a principal's activation history in a
// bounded window
func getElevationHistory(w http.ResponseWriter, r *http.Request) {
	principal := r.URL.Query().Get("principal")
	if principal == "" {
		logic.ReturnErrorResponse(w, r, logic.FormatError(errors.New("principal is required"), "badrequest"))
		return
	}
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -30)
	if value := r.URL.Query().Get("start"); value != "" {
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			logic.ReturnErrorResponse(w, r, logic.FormatError(errors.New("start must be RFC3339"), "badrequest"))
			return
		}
		start = parsed
	}
	if value := r.URL.Query().Get("end"); value != "" {
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			logic.ReturnErrorResponse(w, r, logic.FormatError(errors.New("end must be RFC3339"), "badrequest"))
			return
		}
		end = parsed
	}
	history, err := engine.ActivationHistory(r.Context(), principal, start, end)
	if err != nil {
		logic.ReturnErrorResponse(w, r, logic.FormatError(err, "internal"))
		return
	}
	logic.ReturnSuccessResponseWithJson(w, r, history, "fetched elevation history")
}
