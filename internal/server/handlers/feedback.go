package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/image-ranking-studies/studyfront/internal/apperrors"
	"github.com/image-ranking-studies/studyfront/internal/server/responses"
	"github.com/image-ranking-studies/studyfront/internal/study"
)

// HandleFeedback forwards a participant's free-text feedback about a sample.
// Works with or without a session; MTurk workers are identified by the
// worker/HIT ids in the payload.
func (h *HandlerService) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var feedback study.Feedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, fmt.Sprintf("could not decode request body: %v", err))
		return
	}

	if feedback.SampleID == "" || feedback.Message == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, "sample_id and message are required")
		return
	}

	var jwt string
	if sess, ok := h.Sessions.FromRequest(r); ok {
		jwt = sess.JWT
	}

	receipt, err := h.ApiClient.SubmitFeedback(r.Context(), feedback, jwt)
	if err != nil {
		respondClientError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, receipt)
}
