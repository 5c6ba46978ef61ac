// Package vfsh implements an in-memory virtual filesystem built from a
// declarative tree description, plus the query operations a shell session
// needs: path resolution, lookup, listing, file reads, size accounting and
// tree rendering. The tree is constructed once at load time and never
// mutated afterward.
package vfsh

import "fmt"

// NodeType discriminates the two node kinds in a VFS document.
type NodeType string

const (
	DirNodeType  NodeType = "directory"
	FileNodeType NodeType = "file"
)

// Node is a tree element: either a *Dir or a *File. The set of
// implementations is closed.
type Node interface {
	Type() NodeType
}

// Dir is a directory node. Children keep their declared order; names are
// unique among siblings.
type Dir struct {
	names    []string
	children map[string]Node
}

// NewDir returns an empty directory node.
func NewDir() *Dir {
	return &Dir{children: make(map[string]Node)}
}

func (d *Dir) Type() NodeType { return DirNodeType }

// Names returns the child names in declared order. The returned slice is
// shared; callers must not modify it.
func (d *Dir) Names() []string {
	return d.names
}

// Child returns the named child node.
func (d *Dir) Child(name string) (Node, bool) {
	n, ok := d.children[name]
	return n, ok
}

func (d *Dir) addChild(name string, n Node) error {
	if _, ok := d.children[name]; ok {
		return fmt.Errorf("duplicate entry %q", name)
	}
	d.names = append(d.names, name)
	d.children[name] = n
	return nil
}

// File is a file node holding the raw stored content. The content may carry
// the base64 marker prefix; see Decode.
type File struct {
	raw string
}

// NewFile returns a file node with the given raw content.
func NewFile(raw string) *File {
	return &File{raw: raw}
}

func (f *File) Type() NodeType { return FileNodeType }

// Raw returns the stored content without decoding.
func (f *File) Raw() string { return f.raw }
