package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) PostComment(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == nil {
		return
	}
	body, err := utils.DecodePayload(r.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.comment.Create(r.Context(), domain.Payload{
		"content":  body["content"],
		"threadId": chi.URLParam(r, "threadId"),
		"owner":    caller.Id,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedCommentData{AddedComment: added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == nil {
		return
	}

	err := h.comment.Delete(r.Context(), domain.DeleteCommentRequest{
		ThreadId:  chi.URLParam(r, "threadId"),
		CommentId: chi.URLParam(r, "commentId"),
		Owner:     caller.Id,
	})
	if err != nil {
		h.writeDeleteError(w, err, caller, chi.URLParam(r, "commentId"))
		return
	}

	writeOK(w)
}
