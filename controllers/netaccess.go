package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/privops/elevate/logic"
	"github.com/privops/elevate/logger"
	"github.com/privops/elevate/models"
)

func networkAccessHandlers(r *mux.Router) {
	r.HandleFunc("/api/v1/netaccess", logic.SecurityCheck(false,
		http.HandlerFunc(requestNetworkAccess))).Methods(http.MethodPost)
}

// requestNetworkAccess - opens a bounded network access window on a resource
func requestNetworkAccess(w http.ResponseWriter, r *http.Request) {
	var apiReq models.APINetworkAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&apiReq); err != nil {
		logger.Log(0, "error decoding request body:", err.Error())
		logic.ReturnErrorResponse(w, r, logic.FormatError(err, "badrequest"))
		return
	}
	result := engine.RequestNetworkAccess(r.Context(), apiReq.ConvertToNetworkAccessRequest())
	logic.ReturnSuccessResponseWithJson(w, r, result, "processed network access request")
}
