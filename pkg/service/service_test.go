package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dotrs/dotrs/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestString(t *testing.T) {
	assert.Equal(t, "apply", ApplyRequest.String())
	assert.Equal(t, "update", UpdateRequest.String())
	assert.Equal(t, "pull", PullRequest.String())
	assert.Equal(t, "Request(9)", Request(9).String())
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		fail map[Request]error
		want []Request
	}{
		{name: "apply", req: ApplyRequest, want: []Request{ApplyRequest}},
		{name: "update", req: UpdateRequest, want: []Request{UpdateRequest}},
		{name: "successful pull is followed by apply", req: PullRequest, want: []Request{PullRequest, ApplyRequest}},
		{
			name: "failed pull skips apply",
			req:  PullRequest,
			fail: map[Request]error{PullRequest: assert.AnError},
			want: []Request{PullRequest},
		},
		{
			name: "failed apply after pull is only logged",
			req:  PullRequest,
			fail: map[Request]error{ApplyRequest: assert.AnError},
			want: []Request{PullRequest, ApplyRequest},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := &fakeOps{fail: tt.fail}
			New(Options{}, ops).handle(context.Background(), tt.req)
			assert.Equal(t, tt.want, ops.Calls())
		})
	}
}

func TestConsumeRunsInOrderAndSequentially(t *testing.T) {
	ops := &fakeOps{fail: map[Request]error{UpdateRequest: assert.AnError}}
	s := New(Options{}, ops)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, req := range []Request{ApplyRequest, UpdateRequest, PullRequest, ApplyRequest} {
		require.NoError(t, s.Enqueue(ctx, req))
	}
	close(s.queue)

	s.consume(ctx)

	assert.Equal(t, []Request{ApplyRequest, UpdateRequest, PullRequest, ApplyRequest, ApplyRequest}, ops.Calls())
	assert.False(t, ops.overlap.Load())
}

func TestRunRejectsInvalidOptions(t *testing.T) {
	s := New(Options{StageDir: t.TempDir(), ApplyDelay: time.Second}, &fakeOps{})
	err := s.Run(context.Background())
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRunFailsWithoutStage(t *testing.T) {
	s := New(Options{
		StageDir:      filepath.Join(t.TempDir(), "missing"),
		ApplyDelay:    time.Second,
		UpdateDelay:   time.Second,
		PullFrequency: time.Hour,
	}, &fakeOps{})

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWatchSetup))
}

func TestRunReactsToStageChanges(t *testing.T) {
	stage := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(stage, ".git"), 0755))

	ops := &fakeOps{}
	s := New(Options{
		StageDir:      stage,
		ApplyDelay:    100 * time.Millisecond,
		UpdateDelay:   300 * time.Millisecond,
		PullFrequency: time.Hour,
	}, ops)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// the first pull fires immediately and is followed by an apply
	require.Eventually(t, func() bool {
		return ops.count(PullRequest) == 1 && ops.count(ApplyRequest) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// a burst of writes yields one apply and one update
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(stage, ".zshrc"), []byte{byte('a' + i)}, 0644))
	}
	require.Eventually(t, func() bool {
		return ops.count(ApplyRequest) == 2 && ops.count(UpdateRequest) == 1
	}, 3*time.Second, 10*time.Millisecond)

	// changes inside .git are ignored
	require.NoError(t, os.WriteFile(filepath.Join(stage, ".git", "index"), []byte("x"), 0644))
	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, 2, ops.count(ApplyRequest))
	assert.Equal(t, 1, ops.count(UpdateRequest))

	// a permission change alone is enough to re-apply
	require.NoError(t, os.Chmod(filepath.Join(stage, ".zshrc"), 0600))
	require.Eventually(t, func() bool {
		return ops.count(ApplyRequest) == 3 && ops.count(UpdateRequest) == 2
	}, 3*time.Second, 10*time.Millisecond)
	assert.False(t, ops.overlap.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("service did not stop")
	}
}
