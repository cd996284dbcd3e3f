package handler

import (
	"context"
	"net/http"

	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/utils"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	thread     service.ThreadService
	comment    service.CommentService
	reply      service.ReplyService
	like       service.LikeService
	translator *Translator
	health     HealthChecker
}

func New(
	thread service.ThreadService,
	comment service.CommentService,
	reply service.ReplyService,
	like service.LikeService,
	translator *Translator,
	health HealthChecker,
) *Handler {
	return &Handler{
		thread:     thread,
		comment:    comment,
		reply:      reply,
		like:       like,
		translator: translator,
		health:     health,
	}
}

// writeError localizes validation errors before writing the response.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	utils.WriteErrorAndStatusCode(w, h.translator.Translate(err))
}

// requireCaller writes 401 and returns nil when the route was mounted
// without the auth middleware.
func requireCaller(w http.ResponseWriter, r *http.Request) *domain.Caller {
	caller := mw.GetCallerFromContext(r)
	if caller == nil {
		utils.WriteErrorAndStatusCode(w, internal_errors.Unauthorized("Missing authentication"))
	}
	return caller
}

// writeDeleteError logs refused deletions of another user's content.
func (h *Handler) writeDeleteError(w http.ResponseWriter, err error, caller *domain.Caller, target string) {
	if internal_errors.IsForbidden(err) {
		logger.Log.Warn("delete refused, caller is not the owner", "caller", caller.Id, "target", target)
	}
	h.writeError(w, err)
}

func writeOK(w http.ResponseWriter) {
	utils.WriteSuccess(w, http.StatusOK, nil)
}
