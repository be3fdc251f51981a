package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/image-ranking-studies/studyfront/internal/apperrors"
	"github.com/image-ranking-studies/studyfront/internal/logger"
	"github.com/image-ranking-studies/studyfront/internal/server/responses"
	"github.com/image-ranking-studies/studyfront/internal/session"
)

type loginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID string `json:"user_id"`
}

// HandleLogin exchanges participant credentials for a session. The backend's
// 403 bodies (wrong password, study closed) pass through to the page via
// respondClientError.
func (h *HandlerService) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqLogger := logger.ContextRequestLogger(r.Context())

	defer r.Body.Close()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, fmt.Sprintf("could not decode request body: %v", err))
		return
	}

	if req.ID == "" || req.Password == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest,
			apperrors.ErrCodeMalformedBody, "id and password are required")
		return
	}

	auth, err := h.ApiClient.Authenticate(r.Context(), req.ID, req.Password)
	if err != nil {
		respondClientError(w, r, err)
		return
	}

	sess := h.Sessions.Create(req.ID, auth.JWT)
	http.SetCookie(w, session.NewCookie(h.Environment, sess))

	reqLogger.Info("participant logged in", slog.String("user_id", req.ID))
	responses.RespondWithJSON(w, http.StatusOK, loginResponse{UserID: req.ID})
}

// HandleLogout destroys the session regardless of its prior state.
func (h *HandlerService) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.Sessions.FromRequest(r); ok {
		h.Sessions.Delete(sess.ID)
	}
	http.SetCookie(w, session.ExpiredCookie())
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}
