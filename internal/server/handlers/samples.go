package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/image-ranking-studies/studyfront/internal/apperrors"
	"github.com/image-ranking-studies/studyfront/internal/server/responses"
	"github.com/image-ranking-studies/studyfront/internal/study"
)

type waitResponse struct {
	// seconds until the next sample is expected to be available
	RetryAfter int `json:"retry_after"`
}

// HandleNextSample serves the next unjudged sample of the study type named in
// the URL. When the backend reports a wait time instead of a sample, the wait
// is forwarded so the page can poll.
func (h *HandlerService) HandleNextSample(w http.ResponseWriter, r *http.Request) {
	studyType, err := study.ParseType(chi.URLParam(r, "studyType"))
	if err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidStudyType, err.Error())
		return
	}

	sample, retryAfter, err := h.ApiClient.NextSample(r.Context(), studyType)
	if err != nil {
		respondClientError(w, r, err)
		return
	}

	if sample == nil {
		responses.RespondWithJSON(w, http.StatusOK, waitResponse{RetryAfter: retryAfter})
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, sample)
}

// HandleLoadSample serves a specific sample by id.
func (h *HandlerService) HandleLoadSample(w http.ResponseWriter, r *http.Request) {
	studyType, err := study.ParseType(chi.URLParam(r, "studyType"))
	if err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidStudyType, err.Error())
		return
	}

	sampleID := chi.URLParam(r, "sampleID")
	if sampleID == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidURLParam, "sample id is required")
		return
	}

	sample, err := h.ApiClient.LoadSample(r.Context(), studyType, sampleID)
	if err != nil {
		respondClientError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, sample)
}
