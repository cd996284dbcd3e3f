package domain

import "time"

// ThreadDetail is the denormalized thread view: thread, comments, replies and like counts.
type ThreadDetail struct {
	Id       ThreadId        `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username Username        `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

type CommentDetail struct {
	Id        CommentId     `json:"id"`
	Username  Username      `json:"username"`
	Date      time.Time     `json:"date"`
	Content   string        `json:"content"`
	Replies   []ReplyDetail `json:"replies"`
	LikeCount int           `json:"likeCount"`
}

type ReplyDetail struct {
	Id       ReplyId   `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username Username  `json:"username"`
}

// RedactionMarkers replace the content of soft-deleted comments and replies.
type RedactionMarkers struct {
	Comment string
	Reply   string
}
