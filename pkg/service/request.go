package service

import "strconv"

// Request is the closed set of operations the consumer runs
type Request int

const (
	ApplyRequest Request = iota
	UpdateRequest
	PullRequest
)

func (r Request) String() string {
	switch r {
	case ApplyRequest:
		return "apply"
	case UpdateRequest:
		return "update"
	case PullRequest:
		return "pull"
	}
	return "Request(" + strconv.Itoa(int(r)) + ")"
}
