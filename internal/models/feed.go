package models

// FeedState is the observable state of a projects feed
type FeedState string

const (
	FeedStateLoading   FeedState = "loading"
	FeedStatePopulated FeedState = "populated"
	FeedStateFailed    FeedState = "failed"
)

// IsTerminal reports whether the feed has resolved
func (s FeedState) IsTerminal() bool {
	return s == FeedStatePopulated || s == FeedStateFailed
}

// FeedResult is the tagged outcome of a single fetch.
// Err is nil on success, in which case Projects may still be empty.
type FeedResult struct {
	Projects []Project
	Err      error
}

// OK reports whether the fetch succeeded
func (r FeedResult) OK() bool {
	return r.Err == nil
}

// FeedSnapshot is what renderers receive
type FeedSnapshot struct {
	State    FeedState `json:"state"`
	Projects []Project `json:"projects"`
	Error    string    `json:"error,omitempty"`
}
