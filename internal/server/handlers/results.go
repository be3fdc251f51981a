package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/image-ranking-studies/studyfront/internal/apperrors"
	"github.com/image-ranking-studies/studyfront/internal/client"
	"github.com/image-ranking-studies/studyfront/internal/server/responses"
	"github.com/image-ranking-studies/studyfront/internal/study"
)

// submitRequest is the union of the per-type result fields plus the MTurk
// crediting fields. Which fields must be present depends on the study type;
// the client layer's payload validation has the final say.
type submitRequest struct {
	SampleID string `json:"sample_id"`

	// ranking
	Ranking    []string `json:"ranking,omitempty"`
	Irrelevant []string `json:"irrelevant,omitempty"`

	// likert
	ChosenAnswer string `json:"chosen_answer,omitempty"`

	// rating
	Ratings map[string]float64 `json:"ratings,omitempty"`

	// rating_with_focus
	ContextRatings map[string]float64 `json:"context_ratings,omitempty"`
	FocusRatings   map[string]float64 `json:"focus_ratings,omitempty"`

	// MTurk crediting - all three or none
	WorkerID     string `json:"worker_id,omitempty"`
	AssignmentID string `json:"assignment_id,omitempty"`
	HitID        string `json:"hit_id,omitempty"`
}

// HandleSubmitResult accepts a participant's judgment and dispatches it to the
// backend. A logged-in participant submits on the authenticated route; an
// MTurk worker (identified by the crediting fields) submits credential-free.
func (h *HandlerService) HandleSubmitResult(w http.ResponseWriter, r *http.Request) {
	studyType, err := study.ParseType(chi.URLParam(r, "studyType"))
	if err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidStudyType, err.Error())
		return
	}

	defer r.Body.Close()

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, fmt.Sprintf("could not decode request body: %v", err))
		return
	}

	result, err := req.toResult(studyType)
	if err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, err.Error())
		return
	}

	opts := client.SubmitOptions{
		WorkerID:     req.WorkerID,
		AssignmentID: req.AssignmentID,
		HitID:        req.HitID,
	}
	// a session is optional here: MTurk workers submit without one
	if sess, ok := h.Sessions.FromRequest(r); ok {
		opts.UserID = sess.UserID
		opts.JWT = sess.JWT
	}

	receipt, err := h.ApiClient.SubmitResult(r.Context(), result, opts)
	if err != nil {
		respondClientError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, receipt)
}

func (req *submitRequest) toResult(t study.Type) (study.Result, error) {
	switch t {
	case study.Ranking:
		return study.NewRankingResult(req.SampleID, req.Ranking, req.Irrelevant), nil
	case study.Likert:
		return study.NewLikertResult(req.SampleID, req.ChosenAnswer), nil
	case study.Rating:
		return study.NewRatingResult(req.SampleID, req.Ratings), nil
	case study.RatingWithFocus:
		return study.NewRatingWithFocusResult(req.SampleID, req.ContextRatings, req.FocusRatings), nil
	default:
		return nil, fmt.Errorf("unknown study type %q", t)
	}
}
