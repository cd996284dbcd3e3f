package domain

import (
	"time"

	"github.com/itchan-dev/forum/shared/errors"
)

// AddThread is a validated request to create a thread.
type AddThread struct {
	title string
	body  string
	owner UserId
}

func NewAddThread(p Payload) (AddThread, error) {
	var t AddThread
	err := readFields(p, errors.OpAddThread,
		field{"title", &t.title},
		field{"body", &t.body},
		field{"owner", &t.owner},
	)
	if err != nil {
		return AddThread{}, err
	}
	return t, nil
}

func (t AddThread) Title() string { return t.title }
func (t AddThread) Body() string  { return t.body }
func (t AddThread) Owner() UserId { return t.owner }

// AddedThread is what the API returns after a thread was persisted.
type AddedThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

func NewAddedThread(p Payload) (AddedThread, error) {
	var t AddedThread
	err := readFields(p, errors.OpAddedThread,
		field{"id", &t.Id},
		field{"title", &t.Title},
		field{"owner", &t.Owner},
	)
	if err != nil {
		return AddedThread{}, err
	}
	return t, nil
}

// ThreadRecord is a thread joined with its author's username.
type ThreadRecord struct {
	Id       ThreadId
	Title    string
	Body     string
	Date     time.Time
	Username Username
}
