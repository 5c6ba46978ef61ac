package vfsh

import "strings"

// Connector glyphs for RenderTree.
const (
	treeBranch     = "├── "
	treeLastBranch = "└── "
	treeVertical   = "│   "
	treeBlank      = "    "
)

// RenderTree renders the directory at path as a multi-line tree. The root
// line is the path itself with no connector; each child gets a branch
// connector ("├── ", or "└── " for the last sibling) and directories
// recurse depth-first with the prefix extended by "│   " (more siblings
// follow) or four spaces (last sibling). Children appear in declared
// order, never sorted.
//
// False if the path is missing or names a file.
func (fs *FS) RenderTree(path string) (string, bool) {
	n, ok := fs.GetNode(path)
	if !ok {
		return "", false
	}
	dir, ok := n.(*Dir)
	if !ok {
		return "", false
	}

	var b strings.Builder
	b.WriteString(path)
	b.WriteString("\n")
	renderChildren(&b, dir, "")
	return b.String(), true
}

func renderChildren(b *strings.Builder, d *Dir, prefix string) {
	names := d.Names()
	for i, name := range names {
		connector, extension := treeBranch, treeVertical
		if i == len(names)-1 {
			connector, extension = treeLastBranch, treeBlank
		}
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(name)
		b.WriteString("\n")

		if sub, ok := d.children[name].(*Dir); ok {
			renderChildren(b, sub, prefix+extension)
		}
	}
}
