package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/privops/elevate/logic"
	"github.com/privops/elevate/models"
)

func approvalHandlers(r *mux.Router) {
	r.HandleFunc("/api/v1/approvals", logic.SecurityCheck(false,
		http.HandlerFunc(getPendingApprovals))).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/approvals/{requestid}", logic.SecurityCheck(false,
		http.HandlerFunc(decideApproval))).Methods(http.MethodPost)
}

// getPendingApprovals - requests the authenticated approver may act on
func getPendingApprovals(w http.ResponseWriter, r *http.Request) {
	approver := r.Header.Get("user")
	pending, err := engine.ListPendingApprovals(r.Context(), approver)
	if err != nil {
		logic.ReturnErrorResponse(w, r, logic.FormatError(err, "internal"))
		return
	}
	logic.ReturnSuccessResponseWithJson(w, r, pending, "fetched pending approvals")
}

// decideApproval - approve or deny a pending request
func decideApproval(w http.ResponseWriter, r *http.Request) {
	var decision models.ApprovalDecision
	if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
		logic.ReturnErrorResponse(w, r, logic.FormatError(err, "badrequest"))
		return
	}
	decision.RequestID = mux.Vars(r)["requestid"]
	decision.ActorID = r.Header.Get("user")
	ok, err := engine.DecideApproval(r.Context(), decision)
	if err != nil {
		logic.ReturnErrorResponse(w, r, logic.FormatError(err, "badrequest"))
		return
	}
	if !ok {
		logic.ReturnErrorResponse(w, r, logic.FormatError(logic.Forbidden_Err, "forbidden"))
		return
	}
	logic.ReturnSuccessResponse(w, r, "processed approval decision")
}
