package vfsh

import (
	"strings"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/viktoryBurm/vfsh/internal/util"
)

// FS owns a VFS tree and the session's current directory. The tree is
// read-only after construction; the current directory is the only mutable
// state. Query operations report absence with a false second return instead
// of errors.
type FS struct {
	root *Dir
	cwd  string

	// Lookup results memoized by absolute path. Safe because the tree
	// never changes after construction.
	cache *xsync.Map[string, Node]
}

// New creates an FS over root with the current directory set to "/".
func New(root *Dir) *FS {
	return &FS{
		root:  root,
		cwd:   Separator,
		cache: xsync.NewMap[string, Node](),
	}
}

// Root returns the root directory node.
func (fs *FS) Root() *Dir { return fs.root }

// Cwd returns the current directory as a normalized absolute path.
func (fs *FS) Cwd() string { return fs.cwd }

// SetCwd updates the current directory. The caller is responsible for
// resolving and validating the path first.
func (fs *FS) SetCwd(path string) {
	fs.cwd = path
}

// Exists reports whether an already-resolved absolute path names a node.
func (fs *FS) Exists(path string) bool {
	_, ok := fs.GetNode(path)
	return ok
}

// GetNode walks the tree from the root along the path's segments. Each
// intermediate node must be a directory holding the next segment as a
// child; any miss returns false. Matching is exact.
func (fs *FS) GetNode(path string) (Node, bool) {
	if path == Separator {
		return fs.root, true
	}
	if n, ok := fs.cache.Load(path); ok {
		return n, true
	}

	var cur Node = fs.root
	for _, seg := range splitSegments(path) {
		dir, ok := cur.(*Dir)
		if !ok {
			return nil, false
		}
		child, ok := dir.Child(seg)
		if !ok {
			return nil, false
		}
		cur = child
	}
	fs.cache.Store(path, cur)
	return cur, true
}

// List returns the child names of the directory at path in declared order.
// False if the path is missing or names a file.
func (fs *FS) List(path string) ([]string, bool) {
	n, ok := fs.GetNode(path)
	if !ok {
		return nil, false
	}
	dir, ok := n.(*Dir)
	if !ok {
		return nil, false
	}
	return dir.Names(), true
}

// ReadFile returns the decoded content of the file at path. False if the
// path is missing or names a directory.
func (fs *FS) ReadFile(path string) (string, bool) {
	n, ok := fs.GetNode(path)
	if !ok {
		return "", false
	}
	file, ok := n.(*File)
	if !ok {
		return "", false
	}
	return Decode(file.Raw()), true
}

// FileSize returns the UTF-8 byte length of the decoded file content.
func (fs *FS) FileSize(path string) (int, bool) {
	content, ok := fs.ReadFile(path)
	if !ok {
		return 0, false
	}
	return len(content), true
}

// FileStats holds the wc-style counters for a single file.
type FileStats struct {
	Lines int
	Words int
	Bytes int
}

// FileStats counts lines, words and bytes of the decoded file content.
// A trailing line without a final newline still counts; an empty file
// yields zero lines. Words are whitespace-delimited tokens summed per line.
func (fs *FS) FileStats(path string) (FileStats, bool) {
	content, ok := fs.ReadFile(path)
	if !ok {
		return FileStats{}, false
	}
	var st FileStats
	st.Bytes = len(content)
	for _, line := range splitLines(content) {
		st.Lines++
		st.Words += len(strings.Fields(line))
	}
	return st, true
}

// splitLines splits on newlines with the trailing empty segment of a
// final-newline-terminated string dropped, so "a\n" is one line and "" is
// zero lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// DirSize returns the total decoded byte size of all files transitively
// under the directory at path. False if the path is missing or names a
// file.
func (fs *FS) DirSize(path string) (int, bool) {
	n, ok := fs.GetNode(path)
	if !ok {
		return 0, false
	}
	dir, ok := n.(*Dir)
	if !ok {
		return 0, false
	}
	logger := util.GetLogger("vfs")
	size := dirBytes(dir)
	logger.Trace().Str("path", path).Int("bytes", size).Msg("Computed directory size")
	return size, true
}

func dirBytes(d *Dir) int {
	total := 0
	for _, name := range d.Names() {
		switch child := d.children[name].(type) {
		case *File:
			total += len(Decode(child.Raw()))
		case *Dir:
			total += dirBytes(child)
		}
	}
	return total
}
