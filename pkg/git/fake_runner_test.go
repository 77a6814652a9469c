package git

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// scriptedCall is one expected invocation and its canned result
type scriptedCall struct {
	args   string
	result Result
	err    error
}

// fakeRunner replays scripted results in order and records what ran
type fakeRunner struct {
	t     *testing.T
	calls []scriptedCall
	ran   []string
}

func newFakeRunner(t *testing.T, calls ...scriptedCall) *fakeRunner {
	return &fakeRunner{t: t, calls: calls}
}

func (f *fakeRunner) Run(_ context.Context, _ string, args ...string) (Result, error) {
	got := strings.Join(args, " ")
	f.ran = append(f.ran, got)

	if len(f.calls) == 0 {
		f.t.Fatalf("unexpected git call: %s", got)
		return Result{}, fmt.Errorf("unexpected call")
	}
	next := f.calls[0]
	f.calls = f.calls[1:]
	if next.args != got {
		f.t.Fatalf("git call = %q, want %q", got, next.args)
	}
	return next.result, next.err
}

func ok(args, stdout string) scriptedCall {
	return scriptedCall{args: args, result: Result{Stdout: stdout}}
}

func exit(args string, code int, stderr string) scriptedCall {
	return scriptedCall{args: args, result: Result{ExitCode: code, Stderr: stderr}}
}
