package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/viktoryBurm/vfsh"
	"github.com/viktoryBurm/vfsh/internal/util"
)

// Dispatcher maps a verb plus argument list onto VFS operations and writes
// the formatted output. Every failure is converted to a message at the
// point of detection; no command aborts the session.
type Dispatcher struct {
	fs  *vfsh.FS
	out io.Writer
	log util.Logger
}

func NewDispatcher(fs *vfsh.FS, out io.Writer) *Dispatcher {
	return &Dispatcher{
		fs:  fs,
		out: out,
		log: util.GetLogger("dispatch"),
	}
}

// Execute runs a single parsed command. It returns true when the session
// loop should stop.
func (d *Dispatcher) Execute(cmd string, args []string) bool {
	d.log.Debug().Str("cmd", cmd).Strs("args", args).Msg("Executing command")

	switch cmd {
	case "exit":
		d.printf("exiting\n")
		return true
	case "ls":
		d.ls(args)
	case "cd":
		d.cd(args)
	case "cat":
		d.cat(args)
	case "pwd":
		d.printf("%s\n", d.fs.Cwd())
	case "echo":
		d.printf("%s\n", strings.Join(args, " "))
	case "wc":
		d.wc(args)
	case "du":
		d.du(args)
	case "tree":
		d.tree(args)
	default:
		d.printf("%s: command not found\n", cmd)
	}
	return false
}

func (d *Dispatcher) ls(args []string) {
	target, path := d.fs.Cwd(), d.fs.Cwd()
	if len(args) > 0 {
		target = args[0]
		path = vfsh.Resolve(d.fs.Cwd(), target)
	}

	names, ok := d.fs.List(path)
	if !ok {
		d.printf("ls: cannot access '%s': no such file or directory\n", target)
		return
	}
	for _, name := range names {
		d.printf("%s\n", name)
	}
}

func (d *Dispatcher) cd(args []string) {
	if len(args) == 0 {
		d.fs.SetCwd(vfsh.Separator)
		return
	}

	target := args[0]
	path := vfsh.Resolve(d.fs.Cwd(), target)
	node, ok := d.fs.GetNode(path)
	switch {
	case !ok:
		d.printf("cd: %s: no such file or directory\n", target)
	case node.Type() != vfsh.DirNodeType:
		d.printf("cd: %s: not a directory\n", target)
	default:
		d.fs.SetCwd(path)
	}
}

func (d *Dispatcher) cat(args []string) {
	if len(args) == 0 {
		d.printf("cat: missing operand\n")
		return
	}
	for _, target := range args {
		content, ok := d.fs.ReadFile(vfsh.Resolve(d.fs.Cwd(), target))
		if !ok {
			d.printf("cat: %s: no such file or directory\n", target)
			continue
		}
		d.printf("%s\n", content)
	}
}

func (d *Dispatcher) wc(args []string) {
	if len(args) == 0 {
		d.printf("wc: missing operand\n")
		return
	}
	for _, target := range args {
		st, ok := d.fs.FileStats(vfsh.Resolve(d.fs.Cwd(), target))
		if !ok {
			d.printf("wc: %s: no such file or directory\n", target)
			continue
		}
		d.printf("%d %d %d %s\n", st.Lines, st.Words, st.Bytes, target)
	}
}

func (d *Dispatcher) du(args []string) {
	path := d.fs.Cwd()
	if len(args) > 0 {
		path = vfsh.Resolve(d.fs.Cwd(), args[0])
	}

	size, ok := d.fs.DirSize(path)
	if !ok {
		d.printf("du: cannot access '%s': no such file or directory\n", path)
		return
	}
	d.printf("%d\t%s\n", size, path)
}

func (d *Dispatcher) tree(args []string) {
	path := d.fs.Cwd()
	if len(args) > 0 {
		path = vfsh.Resolve(d.fs.Cwd(), args[0])
	}

	rendered, ok := d.fs.RenderTree(path)
	if !ok {
		d.printf("tree: %s [error opening directory]\n", path)
		return
	}
	d.printf("%s", rendered)
}

func (d *Dispatcher) printf(format string, a ...any) {
	fmt.Fprintf(d.out, format, a...)
}
