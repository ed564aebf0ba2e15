package uri

import (
	"strconv"
	"strings"

	"lesiw.io/uri/path"
)

// A Kind classifies a reference by the shape of its leading characters.
type Kind int

const (
	// SchemeAbsolute references carry their own scheme, as in
	// "https://example.com/a" or "file:///a".
	SchemeAbsolute Kind = iota + 1

	// ProtocolRelative references carry a host but no scheme, as in
	// "//example.com/a".
	ProtocolRelative

	// PathAbsolute references start with a single slash, as in "/a/b".
	PathAbsolute

	// DotRelative references start with an explicit ./ or ../ marker.
	DotRelative

	// BareRelative references are everything else, as in "a/b" or
	// "node_modules/@scope/pkg/index.js".
	BareRelative
)

func (k Kind) String() string {
	switch k {
	case SchemeAbsolute:
		return "SchemeAbsolute"
	case ProtocolRelative:
		return "ProtocolRelative"
	case PathAbsolute:
		return "PathAbsolute"
	case DotRelative:
		return "DotRelative"
	case BareRelative:
		return "BareRelative"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Rooted reports whether references of kind k hang below a root that ..
// segments cannot escape.
func (k Kind) Rooted() bool {
	return k == SchemeAbsolute || k == ProtocolRelative || k == PathAbsolute
}

// Classify reports the kind of s. Every string has exactly one kind.
func Classify(s string) Kind {
	k, _ := classify(s)
	return k
}

// Split splits s into its prefix and its path remainder, so that
// prefix+rest == s.
//
// The prefix is scheme://host for [SchemeAbsolute] references and //host for
// [ProtocolRelative] references. Other kinds have no prefix.
//
//	Split("https://example.com/a/b")  // "https://example.com", "/a/b"
//	Split("file:///a")                // "file://", "/a"
//	Split("//example.com")            // "//example.com", ""
//	Split("a/b")                      // "", "a/b"
func Split(s string) (prefix, rest string) {
	_, i := classify(s)
	return s[:i], s[i:]
}

// classify returns the kind of s and the index where its path begins.
func classify(s string) (Kind, int) {
	if i := strings.Index(s, "://"); i > 0 && !strings.Contains(s[:i], "/") {
		return SchemeAbsolute, hostEnd(s, i+len("://"))
	}
	switch {
	case strings.HasPrefix(s, "//"):
		return ProtocolRelative, hostEnd(s, len("//"))
	case strings.HasPrefix(s, "/"):
		return PathAbsolute, 0
	case path.IsLocal(s):
		return DotRelative, 0
	}
	return BareRelative, 0
}

// hostEnd returns the index of the first slash in s at or after start, or
// len(s) if there is none.
func hostEnd(s string, start int) int {
	if j := strings.IndexByte(s[start:], '/'); j >= 0 {
		return start + j
	}
	return len(s)
}
