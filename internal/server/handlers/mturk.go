package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/image-ranking-studies/studyfront/internal/apperrors"
	"github.com/image-ranking-studies/studyfront/internal/mturk"
	"github.com/image-ranking-studies/studyfront/internal/server/responses"
)

type mturkSubmitRequest struct {
	AssignmentID string `json:"assignment_id"`
	ErID         string `json:"er_id"`
	Ranking      string `json:"ranking"`
}

type mturkSubmitResponse struct {
	Accepted bool `json:"accepted"`
}

// HandleMTurkSubmit posts an assignment back to Mechanical Turk so the worker
// gets credited. The endpoint (sandbox or production) is fixed by config, not
// by the request, so a worker cannot redirect their own submission.
func (h *HandlerService) HandleMTurkSubmit(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req mturkSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, fmt.Sprintf("could not decode request body: %v", err))
		return
	}

	if req.AssignmentID == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, "assignment_id is required")
		return
	}

	submitURL := mturk.EndpointURL(h.MTurkSandbox) + "/mturk/externalSubmit"
	accepted := h.MTurk.SubmitAssignment(r.Context(), submitURL, req.AssignmentID, req.ErID, req.Ranking)
	if !accepted {
		responses.RespondWithError(w, r, http.StatusBadGateway,
			apperrors.ErrCodeBackendUnavailable, "Mechanical Turk did not accept the assignment")
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, mturkSubmitResponse{Accepted: true})
}
