package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/privops/elevate/logic"
)

func auditHandlers(r *mux.Router) {
	r.HandleFunc("/api/v1/audit", logic.SecurityCheck(true,
		http.HandlerFunc(getAuditRecords))).Methods(http.MethodGet)
}

// getAuditRecords - admin view of the persisted audit trail, newest first
func getAuditRecords(w http.ResponseWriter, r *http.Request) {
	records, err := logic.FetchAuditRecords()
	if err != nil {
		logic.ReturnErrorResponse(w, r, logic.FormatError(err, "internal"))
		return
	}
	logic.ReturnSuccessResponseWithJson(w, r, records, "fetched audit records")
}
