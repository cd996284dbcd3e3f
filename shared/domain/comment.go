package domain

import (
	"time"

	"github.com/itchan-dev/forum/shared/errors"
)

type AddComment struct {
	content  string
	threadId ThreadId
	owner    UserId
}

func NewAddComment(p Payload) (AddComment, error) {
	var c AddComment
	err := readFields(p, errors.OpAddComment,
		field{"content", &c.content},
		field{"threadId", &c.threadId},
		field{"owner", &c.owner},
	)
	if err != nil {
		return AddComment{}, err
	}
	return c, nil
}

func (c AddComment) Content() string    { return c.content }
func (c AddComment) ThreadId() ThreadId { return c.threadId }
func (c AddComment) Owner() UserId      { return c.owner }

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

func NewAddedComment(p Payload) (AddedComment, error) {
	var c AddedComment
	err := readFields(p, errors.OpAddedComment,
		field{"id", &c.Id},
		field{"content", &c.Content},
		field{"owner", &c.Owner},
	)
	if err != nil {
		return AddedComment{}, err
	}
	return c, nil
}

// Comment is a full comments row.
type Comment struct {
	Id       CommentId
	Owner    UserId
	Content  string
	ThreadId ThreadId
	IsDelete bool
	Date     time.Time
}

// CommentRecord is a comment as listed under a thread, joined with the author's username.
type CommentRecord struct {
	Id       CommentId
	Content  string
	Date     time.Time
	Username Username
	IsDelete bool
}

type DeleteCommentRequest struct {
	ThreadId  ThreadId
	CommentId CommentId
	Owner     UserId
}
