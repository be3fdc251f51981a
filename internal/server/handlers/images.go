package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/image-ranking-studies/studyfront/internal/apperrors"
	"github.com/image-ranking-studies/studyfront/internal/server/responses"
)

type imageURLResponse struct {
	URL string `json:"url"`
}

// HandleImageURL resolves one image id to its serving URL.
func (h *HandlerService) HandleImageURL(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")
	if imageID == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeInvalidURLParam, "image id is required")
		return
	}

	imageURL, err := h.ApiClient.ImageURL(r.Context(), imageID)
	if err != nil {
		respondClientError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, imageURLResponse{URL: imageURL})
}

// HandleImageURLs resolves a batch of image ids in one round trip.
func (h *HandlerService) HandleImageURLs(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var imageIDs []string
	if err := json.NewDecoder(r.Body).Decode(&imageIDs); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, fmt.Sprintf("could not decode request body: %v", err))
		return
	}

	urls, err := h.ApiClient.ImageURLs(r.Context(), imageIDs)
	if err != nil {
		respondClientError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, urls)
}
