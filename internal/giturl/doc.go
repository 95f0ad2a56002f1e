// Package giturl models git-style remote URLs as a fixed host paired with a
// navigable path.
//
// It exposes Parse for decomposing http, https, and scp-like remote strings,
// along with Pop and Join operations that walk the path component the way a
// directory hierarchy would, in both copying and in-place variants.
package giturl
