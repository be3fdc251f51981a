package handlers

import (
	"net/http"

	"github.com/image-ranking-studies/studyfront/internal/server/responses"
)

type healthResponse struct {
	Status  string `json:"status"`
	Backend *bool  `json:"backend,omitempty"`
}

// HandleLiveness reports that this process is up. Used by container probes,
// so it must not depend on the backend.
func (h *HandlerService) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	responses.RespondWithJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// HandleReadiness reports whether the backend answers its heartbeat. A dead
// backend yields 503 so load balancers stop routing participants here.
func (h *HandlerService) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	alive := h.ApiClient.Heartbeat(r.Context())
	if !alive {
		responses.RespondWithJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded", Backend: &alive})
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, healthResponse{Status: "ok", Backend: &alive})
}
