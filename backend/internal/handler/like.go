package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
)

// PutLike toggles the caller's like. The response does not say which way.
func (h *Handler) PutLike(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == nil {
		return
	}

	req := domain.LikeRequest{
		ThreadId:  chi.URLParam(r, "threadId"),
		CommentId: chi.URLParam(r, "commentId"),
		Owner:     caller.Id,
	}
	liked, err := h.like.Toggle(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	metrics.RecordLikeToggle(liked)
	logger.Log.Debug("like toggled", "comment_id", req.CommentId, "user_id", caller.Id, "liked", liked)

	writeOK(w)
}
