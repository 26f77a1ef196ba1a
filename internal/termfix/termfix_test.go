package termfix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeEnv(vars map[string]string) (func(string) string, func(string, string) error) {
	return func(k string) string { return vars[k] },
		func(k, v string) error { vars[k] = v; return nil }
}

func TestApplyWarp(t *testing.T) {
	vars := map[string]string{"TERM_PROGRAM": "WarpTerminal", "TERM": "xterm-256color"}
	apply(fakeEnv(vars))
	assert.Equal(t, "dumb", vars["TERM"])
	assert.Equal(t, "truecolor", vars["COLORTERM"])
}

func TestApplyWarpNoColor(t *testing.T) {
	vars := map[string]string{"TERM_PROGRAM": "WarpTerminal", "NO_COLOR": "1"}
	apply(fakeEnv(vars))
	assert.Equal(t, "dumb", vars["TERM"])
	assert.Empty(t, vars["COLORTERM"])
}

func TestApplyOtherTerminals(t *testing.T) {
	vars := map[string]string{"TERM_PROGRAM": "iTerm.app", "TERM": "xterm-256color"}
	apply(fakeEnv(vars))
	assert.Equal(t, "xterm-256color", vars["TERM"])
	assert.Empty(t, vars["COLORTERM"])
}
