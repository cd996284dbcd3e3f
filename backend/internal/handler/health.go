package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/utils"
)

const readyTimeout = 2 * time.Second

// Health answers as long as the process serves requests.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, nil)
}

// Ready fails with 503 while the database does not answer a ping.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Log.Warn("readiness check failed", "error", err)
		utils.WriteFail(w, http.StatusServiceUnavailable, api.StatusError, "database unavailable")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil)
}
