package api

import "github.com/itchan-dev/forum/shared/domain"

const (
	StatusSuccess = "success"
	StatusFail    = "fail"  // client errors
	StatusError   = "error" // server faults
)

// Response is the envelope of every JSON body the API writes.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type AddedThreadData struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type AddedCommentData struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReplyData struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}

type ThreadData struct {
	Thread domain.ThreadDetail `json:"thread"`
}
