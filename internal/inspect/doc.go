// Package inspect implements the parse command, decomposing a remote URL into
// its host and path components and rendering the breakdown as text, JSON, or
// YAML.
package inspect
