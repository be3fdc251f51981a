package handlers

import (
	"net/http"

	"github.com/image-ranking-studies/studyfront/internal/server/responses"
	"github.com/image-ranking-studies/studyfront/internal/session"
)

// HandleProgress reports the study progress for the logged-in participant.
// Runs behind RequireSession; a backend 403 (e.g. token revoked server-side)
// still passes its body through.
func (h *HandlerService) HandleProgress(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		// RequireSession guarantees a session; reaching this is a routing bug
		http.Error(w, "no session in context", http.StatusInternalServerError)
		return
	}

	progress, err := h.ApiClient.Progress(r.Context(), sess.JWT)
	if err != nil {
		respondClientError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, progress)
}
