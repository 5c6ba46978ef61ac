package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viktoryBurm/vfsh"
	"github.com/viktoryBurm/vfsh/config"
)

func newTestSession(t *testing.T, in string) (*Session, *bytes.Buffer) {
	t.Helper()

	root, err := vfsh.Load([]byte(testDoc))
	require.NoError(t, err)

	cfg := &config.Config{Username: "alice", Hostname: "box"}
	var out bytes.Buffer
	return NewSession(vfsh.New(root), cfg, strings.NewReader(in), &out), &out
}

func TestSession_Prompt(t *testing.T) {
	t.Parallel()
	s, _ := newTestSession(t, "")

	assert.Equal(t, "alice@box:/$ ", s.Prompt())

	s.fs.SetCwd("/home/user")
	assert.Equal(t, "alice@box:user$ ", s.Prompt(), "prompt shows the final path segment only")
}

func TestSession_InteractiveUntilEOF(t *testing.T) {
	t.Parallel()
	s, out := newTestSession(t, "cat a.txt\n\npwd\n")

	s.Run()

	got := out.String()
	assert.Contains(t, got, "alice@box:/$ ")
	assert.Contains(t, got, "hi there\n")
	assert.Contains(t, got, "/\n")
}

func TestSession_InteractiveExit(t *testing.T) {
	t.Parallel()
	s, out := newTestSession(t, "exit\ncat a.txt\n")

	s.Run()

	assert.NotContains(t, out.String(), "hi there", "nothing runs after exit")
}

func TestSession_ParseErrorKeepsLoopAlive(t *testing.T) {
	t.Parallel()
	s, out := newTestSession(t, "cat 'a.txt\npwd\n")

	s.Run()

	got := out.String()
	assert.Contains(t, got, "parse error")
	assert.Contains(t, got, "/\n", "loop continues after a parse error")
}

func TestSession_RunScript(t *testing.T) {
	t.Parallel()
	s, out := newTestSession(t, "")

	script := filepath.Join(t.TempDir(), "startup.sh")
	require.NoError(t, os.WriteFile(script, []byte(strings.Join([]string{
		"# startup commands",
		"",
		"cd home/user",
		"pwd",
		"   ",
	}, "\n")), 0o644))

	exit := s.RunScript(script)
	assert.False(t, exit)

	got := out.String()
	// Each executed line is echoed with the prompt of the moment
	assert.Contains(t, got, "alice@box:/$ cd home/user\n")
	assert.Contains(t, got, "alice@box:user$ pwd\n")
	assert.Contains(t, got, "/home/user\n")
	assert.NotContains(t, got, "#", "comment lines are skipped")
	assert.Equal(t, "/home/user", s.fs.Cwd())
}

func TestSession_RunScriptStopsOnExit(t *testing.T) {
	t.Parallel()
	s, out := newTestSession(t, "")

	script := filepath.Join(t.TempDir(), "startup.sh")
	require.NoError(t, os.WriteFile(script, []byte("exit\ncat a.txt\n"), 0o644))

	exit := s.RunScript(script)
	assert.True(t, exit)
	assert.NotContains(t, out.String(), "hi there")
}

func TestSession_RunScriptMissingFile(t *testing.T) {
	t.Parallel()
	s, out := newTestSession(t, "")

	exit := s.RunScript(filepath.Join(t.TempDir(), "missing.sh"))
	assert.False(t, exit, "a missing script never kills the session")
	assert.Empty(t, out.String())
}

func TestSession_QuotedArguments(t *testing.T) {
	t.Parallel()
	s, out := newTestSession(t, "echo 'hello   world' plain\n")

	s.Run()

	assert.Contains(t, out.String(), "hello   world plain\n")
}
