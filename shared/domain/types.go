package domain

type (
	UserId    = string
	Username  = string
	ThreadId  = string
	CommentId = string
	ReplyId   = string
	LikeId    = string
)

// Primary key prefixes, concatenated with a generated suffix.
const (
	ThreadIdPrefix  = "thread-"
	CommentIdPrefix = "comment-"
	ReplyIdPrefix   = "reply-"
	LikeIdPrefix    = "like-"
	UserIdPrefix    = "user-"
)
