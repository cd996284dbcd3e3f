package domain

import (
	"time"

	"github.com/itchan-dev/forum/shared/errors"
)

type AddReply struct {
	content   string
	commentId CommentId
	owner     UserId
}

func NewAddReply(p Payload) (AddReply, error) {
	var r AddReply
	err := readFields(p, errors.OpAddReply,
		field{"content", &r.content},
		field{"commentId", &r.commentId},
		field{"owner", &r.owner},
	)
	if err != nil {
		return AddReply{}, err
	}
	return r, nil
}

func (r AddReply) Content() string      { return r.content }
func (r AddReply) CommentId() CommentId { return r.commentId }
func (r AddReply) Owner() UserId        { return r.owner }

type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

func NewAddedReply(p Payload) (AddedReply, error) {
	var r AddedReply
	err := readFields(p, errors.OpAddedReply,
		field{"id", &r.Id},
		field{"content", &r.Content},
		field{"owner", &r.Owner},
	)
	if err != nil {
		return AddedReply{}, err
	}
	return r, nil
}

type Reply struct {
	Id        ReplyId
	Owner     UserId
	Content   string
	CommentId CommentId
	IsDelete  bool
	Date      time.Time
}

// ReplyRecord is a reply listed for a whole thread. CommentId is only there
// to attach the reply to its comment.
type ReplyRecord struct {
	Id        ReplyId
	CommentId CommentId
	Content   string
	Date      time.Time
	Username  Username
	IsDelete  bool
}

type DeleteReplyRequest struct {
	ThreadId  ThreadId
	CommentId CommentId
	ReplyId   ReplyId
	Owner     UserId
}
