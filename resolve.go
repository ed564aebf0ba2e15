// Package uri resolves URL-like and path-like references against a base.
//
// Resolution follows a simplified subset of URL semantics, applied uniformly
// to real URLs and to bare paths that are not valid URLs:
//
//	uri.Resolve("bar/main.js.map", "https://foo.com/dir/file")
//	// "https://foo.com/dir/bar/main.js.map"
//	uri.Resolve("../lib/index.js", "node_modules/pkg/src/main.js")
//	// "node_modules/pkg/lib/index.js"
//
// A reference is classified by its leading characters into one of five kinds
// (see [Kind]). The kind decides which parts of the base survive:
//
//   - [SchemeAbsolute] references ignore the base entirely.
//   - [ProtocolRelative] references borrow only the base's scheme.
//   - [PathAbsolute] references borrow the base's scheme and host.
//   - Relative references are merged into the base's directory.
//
// The path is then normalized lexically (see [lesiw.io/uri/path]). If the
// result hangs below a root, .. segments cannot climb above it. If it is
// relative, unmatched .. segments are kept:
//
//	uri.Resolve("/../../x", "")                // "/x"
//	uri.Resolve("foo/../../../bar", "")        // "../../bar"
//
// Query strings, fragments, percent-encoding, userinfo and ports get no
// special treatment. All operations are pure and safe for concurrent use.
package uri

import (
	"strings"

	"lesiw.io/uri/path"
)

// Resolve resolves input against base and returns the normalized result.
// An empty base means there is no base.
//
// An empty input refers to the base itself, so Resolve returns base exactly as
// given, without normalization.
//
// Resolve never fails. Malformed input is normalized on a best-effort basis.
func Resolve(input, base string) string {
	if input == "" {
		return base
	}

	kind, i := classify(input)
	switch kind {
	case SchemeAbsolute:
		return input[:i] + path.Normalize(input[i:], true)
	case ProtocolRelative:
		return withScheme(input[:i], base) + path.Normalize(input[i:], true)
	case PathAbsolute:
		prefix, _ := Split(base)
		return prefix + path.Normalize(input, true)
	}

	bkind, j := classify(base)
	rooted := bkind.Rooted()
	out := path.Normalize(path.Dir(base[j:])+input, rooted)
	if !rooted && out != "" && !path.IsLocal(out) {
		ref := base
		if ref == "" {
			ref = input
		}
		if path.IsLocal(ref) {
			out = "./" + out
		}
	}
	return base[:j] + out
}

// withScheme returns the prefix of the protocol-relative //host reference
// host when resolved against base.
//
// Only a scheme-absolute base contributes, and only its scheme. A base with an
// empty authority, as in file:///a, keeps that empty authority.
func withScheme(host, base string) string {
	kind, i := classify(base)
	if kind != SchemeAbsolute {
		return host
	}
	prefix := base[:i]
	if strings.HasSuffix(prefix, "://") {
		return prefix
	}
	return prefix[:strings.Index(prefix, "://")+1] + host
}
