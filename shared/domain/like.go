package domain

// LikeRequest toggles Owner's like on CommentId.
type LikeRequest struct {
	ThreadId  ThreadId
	CommentId CommentId
	Owner     UserId
}
