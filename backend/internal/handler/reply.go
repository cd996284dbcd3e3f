package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) PostReply(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == nil {
		return
	}
	body, err := utils.DecodePayload(r.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.reply.Create(r.Context(), domain.Payload{
		"content":   body["content"],
		"threadId":  chi.URLParam(r, "threadId"),
		"commentId": chi.URLParam(r, "commentId"),
		"owner":     caller.Id,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedReplyData{AddedReply: added})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == nil {
		return
	}

	err := h.reply.Delete(r.Context(), domain.DeleteReplyRequest{
		ThreadId:  chi.URLParam(r, "threadId"),
		CommentId: chi.URLParam(r, "commentId"),
		ReplyId:   chi.URLParam(r, "replyId"),
		Owner:     caller.Id,
	})
	if err != nil {
		h.writeDeleteError(w, err, caller, chi.URLParam(r, "replyId"))
		return
	}

	writeOK(w)
}
