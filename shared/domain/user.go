package domain

// User as stored. Password holds the hash, never the plain text.
type User struct {
	Id       UserId
	Username Username
	Password string
	Fullname string
}

// Caller is the authenticated user attached to a request.
type Caller struct {
	Id       UserId
	Username Username
}
