package vfsh

import "strings"

// Separator is the path separator for VFS paths.
const Separator = "/"

// Resolve converts a user-supplied path into a normalized absolute path.
//
// Absolute input is split on separators with empty segments dropped;
// repeated slashes collapse but "." and ".." are kept verbatim (a later
// lookup simply misses). Relative input is resolved against cwd: "." is a
// no-op and ".." pops segments appended during this call before it starts
// consuming cwd's own segments. ".." at the root has no further effect.
//
// Resolve never fails and never checks existence.
func Resolve(cwd, input string) string {
	if strings.HasPrefix(input, Separator) {
		return joinSegments(splitSegments(input))
	}

	base := splitSegments(cwd)
	var added []string
	for _, seg := range splitSegments(input) {
		switch seg {
		case ".":
			// no-op
		case "..":
			if len(added) > 0 {
				added = added[:len(added)-1]
			} else if len(base) > 0 {
				base = base[:len(base)-1]
			}
		default:
			added = append(added, seg)
		}
	}
	return joinSegments(append(base, added...))
}

// splitSegments splits a path on separators, dropping empty segments so
// repeated slashes and a trailing slash are harmless.
func splitSegments(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, Separator) {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func joinSegments(segs []string) string {
	if len(segs) == 0 {
		return Separator
	}
	return Separator + strings.Join(segs, Separator)
}

// Basename returns the final segment of an absolute path, or "/" for the
// root. Used for prompt display.
func Basename(path string) string {
	segs := splitSegments(path)
	if len(segs) == 0 {
		return Separator
	}
	return segs[len(segs)-1]
}
