package shell

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viktoryBurm/vfsh"
	"github.com/viktoryBurm/vfsh/internal/util"
)

func TestMain(m *testing.M) {
	util.InitializeLogger(util.ErrorLevel)
	os.Exit(m.Run())
}

const testDoc = `
"/":
  type: directory
  content:
    a.txt:
      type: file
      content: "hi there"
    home:
      type: directory
      content:
        user:
          type: directory
          content:
            notes.txt:
              type: file
              content: "one two\nthree\n"
    other:
      type: directory
`

// newTestDispatcher loads the fixture document and returns a dispatcher
// writing into the returned buffer.
func newTestDispatcher(t *testing.T) (*Dispatcher, *vfsh.FS, *bytes.Buffer) {
	t.Helper()

	root, err := vfsh.Load([]byte(testDoc))
	require.NoError(t, err)

	fs := vfsh.New(root)
	var out bytes.Buffer
	return NewDispatcher(fs, &out), fs, &out
}

func TestDispatcher_Cat(t *testing.T) {
	t.Parallel()
	d, _, out := newTestDispatcher(t)

	exit := d.Execute("cat", []string{"a.txt"})
	assert.False(t, exit)
	assert.Equal(t, "hi there\n", out.String())
}

func TestDispatcher_CatMultipleAndMissing(t *testing.T) {
	t.Parallel()
	d, _, out := newTestDispatcher(t)

	d.Execute("cat", []string{"a.txt", "nope.txt"})
	assert.Equal(t, "hi there\ncat: nope.txt: no such file or directory\n", out.String())
}

func TestDispatcher_CatMissingOperand(t *testing.T) {
	t.Parallel()
	d, _, out := newTestDispatcher(t)

	d.Execute("cat", nil)
	assert.Equal(t, "cat: missing operand\n", out.String())
}

func TestDispatcher_Wc(t *testing.T) {
	t.Parallel()
	d, _, out := newTestDispatcher(t)

	d.Execute("wc", []string{"a.txt"})
	assert.Equal(t, "1 2 8 a.txt\n", out.String())

	out.Reset()
	d.Execute("wc", []string{"home/user/notes.txt", "missing"})
	assert.Equal(t,
		"2 3 14 home/user/notes.txt\n"+
			"wc: missing: no such file or directory\n",
		out.String())
}

func TestDispatcher_CdMissingTarget(t *testing.T) {
	t.Parallel()
	d, fs, out := newTestDispatcher(t)

	d.Execute("cd", []string{"nope"})
	assert.Equal(t, "cd: nope: no such file or directory\n", out.String())
	assert.Equal(t, "/", fs.Cwd(), "current directory must stay unchanged")
}

func TestDispatcher_CdFile(t *testing.T) {
	t.Parallel()
	d, fs, out := newTestDispatcher(t)

	d.Execute("cd", []string{"a.txt"})
	assert.Equal(t, "cd: a.txt: not a directory\n", out.String())
	assert.Equal(t, "/", fs.Cwd())
}

func TestDispatcher_CdAndRelativePaths(t *testing.T) {
	t.Parallel()
	d, fs, out := newTestDispatcher(t)

	d.Execute("cd", []string{"home/user"})
	assert.Equal(t, "/home/user", fs.Cwd())

	// Sibling hop through the parent
	d.Execute("cd", []string{"../../other"})
	assert.Equal(t, "/other", fs.Cwd())

	// No argument returns to the root
	d.Execute("cd", nil)
	assert.Equal(t, "/", fs.Cwd())
	assert.Empty(t, out.String())
}

func TestDispatcher_Ls(t *testing.T) {
	t.Parallel()
	d, fs, out := newTestDispatcher(t)

	d.Execute("ls", nil)
	assert.Equal(t, "a.txt\nhome\nother\n", out.String())

	out.Reset()
	d.Execute("ls", []string{"home/user"})
	assert.Equal(t, "notes.txt\n", out.String())

	out.Reset()
	fs.SetCwd("/home")
	d.Execute("ls", []string{".."})
	assert.Equal(t, "a.txt\nhome\nother\n", out.String())

	out.Reset()
	d.Execute("ls", []string{"nope"})
	assert.Equal(t, "ls: cannot access 'nope': no such file or directory\n", out.String())
}

func TestDispatcher_PwdAndEcho(t *testing.T) {
	t.Parallel()
	d, fs, out := newTestDispatcher(t)

	d.Execute("pwd", nil)
	assert.Equal(t, "/\n", out.String())

	out.Reset()
	fs.SetCwd("/home/user")
	d.Execute("pwd", nil)
	assert.Equal(t, "/home/user\n", out.String())

	out.Reset()
	d.Execute("echo", []string{"hello", "virtual", "world"})
	assert.Equal(t, "hello virtual world\n", out.String())

	out.Reset()
	d.Execute("echo", nil)
	assert.Equal(t, "\n", out.String())
}

func TestDispatcher_Du(t *testing.T) {
	t.Parallel()
	d, fs, out := newTestDispatcher(t)

	d.Execute("du", nil)
	assert.Equal(t, "22\t/\n", out.String())

	out.Reset()
	fs.SetCwd("/home")
	d.Execute("du", []string{"user"})
	assert.Equal(t, "14\t/home/user\n", out.String())

	out.Reset()
	d.Execute("du", []string{"missing"})
	assert.Equal(t, "du: cannot access '/home/missing': no such file or directory\n", out.String())
}

func TestDispatcher_Tree(t *testing.T) {
	t.Parallel()
	d, _, out := newTestDispatcher(t)

	d.Execute("tree", nil)
	assert.Equal(t, "/\n"+
		"├── a.txt\n"+
		"├── home\n"+
		"│   └── user\n"+
		"│       └── notes.txt\n"+
		"└── other\n", out.String())

	out.Reset()
	d.Execute("tree", []string{"a.txt"})
	assert.Equal(t, "tree: /a.txt [error opening directory]\n", out.String())
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	t.Parallel()
	d, _, out := newTestDispatcher(t)

	exit := d.Execute("frobnicate", []string{"x"})
	assert.False(t, exit, "unknown commands never end the session")
	assert.Equal(t, "frobnicate: command not found\n", out.String())
}

func TestDispatcher_Exit(t *testing.T) {
	t.Parallel()
	d, _, _ := newTestDispatcher(t)

	assert.True(t, d.Execute("exit", nil))
}
