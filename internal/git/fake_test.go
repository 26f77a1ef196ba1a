package git

import (
	"context"
	"strings"
)

// fakeRunner answers queries from a table keyed by the joined args
type fakeRunner struct {
	outputs map[string]string
	errors  map[string]error
	calls   []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs: make(map[string]string),
		errors:  make(map[string]error),
	}
}

func (f *fakeRunner) on(out string, args ...string) *fakeRunner {
	f.outputs[strings.Join(args, " ")] = out
	return f
}

func (f *fakeRunner) fail(err error, args ...string) *fakeRunner {
	f.errors[strings.Join(args, " ")] = err
	return f
}

func (f *fakeRunner) Run(_ context.Context, args ...string) (string, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	if err, ok := f.errors[key]; ok {
		return "", err
	}
	if out, ok := f.outputs[key]; ok {
		return out, nil
	}
	return "", &GitError{Kind: KindQueryFailed, Command: args[0], Output: "unexpected call: " + key}
}
