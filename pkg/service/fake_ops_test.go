package service

import (
	"context"
	"sync"
	"sync/atomic"
)

// fakeOps records calls and fails the operations listed in fail
type fakeOps struct {
	mu       sync.Mutex
	calls    []Request
	fail     map[Request]error
	inFlight atomic.Int32
	overlap  atomic.Bool
}

func (f *fakeOps) record(req Request) error {
	if f.inFlight.Add(1) > 1 {
		f.overlap.Store(true)
	}
	defer f.inFlight.Add(-1)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	return f.fail[req]
}

func (f *fakeOps) Apply(context.Context) error  { return f.record(ApplyRequest) }
func (f *fakeOps) Update(context.Context) error { return f.record(UpdateRequest) }
func (f *fakeOps) Pull(context.Context) error   { return f.record(PullRequest) }

func (f *fakeOps) Calls() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Request(nil), f.calls...)
}

func (f *fakeOps) count(req Request) int {
	n := 0
	for _, c := range f.Calls() {
		if c == req {
			n++
		}
	}
	return n
}
