// Package navigate implements the pop and join commands that walk the path
// component of a remote URL: pop removes trailing segments, join resolves a
// relative child path including "." and ".." segments.
package navigate
