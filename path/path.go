// Package path implements the lexical segment routines used to resolve
// URL-like and path-like references.
//
// Paths are always separated by forward slashes. A path is either rooted,
// meaning it hangs below a root that ".." cannot escape, or relative, meaning
// unmatched ".." elements are part of the result:
//
//	path.Normalize("/../foo", true)     // "/foo"
//	path.Normalize("../foo", false)     // "../foo"
//
// Trailing slashes indicate directories and are preserved:
//
//	path.Normalize("foo/bar/", false)   // "foo/bar/"
//
// All operations are purely lexical. They never access the filesystem or the
// network.
package path

import "strings"

// Normalize returns the shortest path equivalent to p by purely lexical
// processing. It walks the elements of p from left to right:
//
//  1. Empty elements (from repeated or edge separators) and . are dropped
//  2. .. removes the preceding real element, if there is one
//  3. An unmatched .. is dropped if rooted and kept otherwise
//
// If rooted, the result starts with "/" and a path that normalizes to nothing
// becomes "/". Otherwise a path that normalizes to nothing becomes "".
//
// If the last element of p is empty, . or a .. that removed an element, the
// result ends with exactly one "/".
func Normalize(p string, rooted bool) string {
	var (
		out []string
		dir bool
	)
	for part := range strings.SplitSeq(p, "/") {
		switch part {
		case "", ".":
			dir = true
		case "..":
			if len(out) > 0 && out[len(out)-1] != ".." {
				out = out[:len(out)-1]
				dir = true
				continue
			}
			dir = false
			if !rooted {
				out = append(out, part)
			}
		default:
			dir = false
			out = append(out, part)
		}
	}

	var b strings.Builder
	if rooted {
		b.WriteByte('/')
	}
	for i, part := range out {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(part)
	}
	if dir && len(out) > 0 {
		b.WriteByte('/')
	}
	return b.String()
}

// Dir returns the directory portion of p: everything up to and including the
// final separator. Returns "" if p has no separator.
//
//	Dir("/dir/file")  // "/dir/"
//	Dir("/dir/")      // "/dir/"
//	Dir("file")       // ""
func Dir(p string) string {
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return ""
	}
	return p[:i+1]
}

// IsLocal reports whether p is explicitly relative to the current location,
// that is, whether it is . or .. or starts with ./ or ../.
func IsLocal(p string) bool {
	switch {
	case p == "." || p == "..":
		return true
	case strings.HasPrefix(p, "./"), strings.HasPrefix(p, "../"):
		return true
	}
	return false
}
