// Package handlers implements the ui-api endpoints of the study front-end.
//
// Each handler is a thin shim: decode the request, call the matching API
// client operation, map the outcome to a JSON response. The client layer owns
// the backend wire contract; handlers own the session lifecycle and the
// error-to-status mapping.
package handlers

import (
	"errors"
	"net/http"

	"github.com/image-ranking-studies/studyfront/internal/apperrors"
	"github.com/image-ranking-studies/studyfront/internal/client"
	"github.com/image-ranking-studies/studyfront/internal/mturk"
	"github.com/image-ranking-studies/studyfront/internal/server/responses"
	"github.com/image-ranking-studies/studyfront/internal/session"
)

type HandlerService struct {
	ApiClient   *client.Client
	Sessions    *session.Store
	MTurk       *mturk.Submitter
	Environment string

	// MTurkSandbox selects the worker sandbox as the default assignment
	// submission target
	MTurkSandbox bool
}

// RequireSession guards endpoints that need a logged-in participant. The
// session cookie must reference a live session whose token has not expired;
// otherwise the participant has to log in again.
func (h *HandlerService) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := h.Sessions.FromRequest(r)
		if !ok {
			responses.RespondWithError(w, r, http.StatusUnauthorized,
				apperrors.ErrCodeNotAuthenticated, "no active session - please log in")
			return
		}

		switch status := session.CheckTokenStatus(sess.JWT); status {
		case session.TokenValid:
			next.ServeHTTP(w, r.WithContext(session.ContextWithSession(r.Context(), sess)))
		case session.TokenExpired:
			h.Sessions.Delete(sess.ID)
			http.SetCookie(w, session.ExpiredCookie())
			responses.RespondWithError(w, r, http.StatusUnauthorized,
				apperrors.ErrCodeNotAuthenticated, "session expired - please log in again")
		default:
			responses.RespondWithError(w, r, http.StatusUnauthorized,
				apperrors.ErrCodeNotAuthenticated, "invalid session token")
		}
	})
}

// respondClientError maps a client-layer failure to a ui-api response. A 403
// from the backend keeps its parsed body so the page can show the reason;
// everything else collapses to the ClientError's user message.
func respondClientError(w http.ResponseWriter, r *http.Request, err error) {
	var forbidden *client.ForbiddenError
	if errors.As(err, &forbidden) {
		responses.RespondWithJSON(w, http.StatusForbidden, forbidden.Body)
		return
	}

	var clientErr *client.ClientError
	if errors.As(err, &clientErr) {
		status := http.StatusBadGateway
		code := apperrors.ErrCodeBackendUnavailable
		if clientErr.StatusCode >= 400 && clientErr.StatusCode < 500 {
			status = clientErr.StatusCode
			code = apperrors.ErrCodeSubmissionRejected
		}
		responses.RespondWithError(w, r, status, code, clientErr.UserError())
		return
	}

	responses.RespondWithError(w, r, http.StatusInternalServerError,
		apperrors.ErrCodeInternalError, err.Error())
}
