package giturl

import (
	"fmt"
	"strings"
)

const (
	httpProtocolPrefixConstant      = "http://"
	httpsProtocolPrefixConstant     = "https://"
	hostPathSeparatorConstant       = ":"
	segmentSeparatorConstant        = "/"
	currentDirectorySegmentConstant = "."
	parentDirectorySegmentConstant  = ".."
	parseErrorTemplateConstant      = "%s: %s"
	missingSeparatorMessageConstant = "no recognized host and path separator"
)

// ParseError indicates an input string matched none of the recognized remote URL shapes.
type ParseError struct {
	Input string
}

// Error describes the parse failure including the offending input.
func (parseError ParseError) Error() string {
	return fmt.Sprintf(parseErrorTemplateConstant, parseError.Input, missingSeparatorMessageConstant)
}

// GitURL represents a git-style remote URL decomposed into a fixed host and a navigable path.
//
// The host is set at parse time and never modified afterwards. The path is a
// slash-joined sequence of non-empty segments; an empty path marks the root.
type GitURL struct {
	host string
	path string
}

// Parse converts a textual remote URL into a structured GitURL.
//
// Inputs starting with http:// or https:// split host from path at the first
// slash after the protocol prefix. Any other input splits at the first colon,
// covering scp-like remotes such as git@github.com:owner/repo.git. Inputs
// containing no such separator fail with a ParseError.
func Parse(input string) (GitURL, error) {
	if strings.HasPrefix(input, httpProtocolPrefixConstant) {
		return parsePrefixedRemote(input, httpProtocolPrefixConstant)
	}
	if strings.HasPrefix(input, httpsProtocolPrefixConstant) {
		return parsePrefixedRemote(input, httpsProtocolPrefixConstant)
	}

	separatorIndex := strings.Index(input, hostPathSeparatorConstant)
	if separatorIndex == -1 {
		return GitURL{}, ParseError{Input: input}
	}
	return GitURL{host: input[:separatorIndex], path: input[separatorIndex+1:]}, nil
}

func parsePrefixedRemote(input string, protocolPrefix string) (GitURL, error) {
	separatorIndex := strings.Index(input[len(protocolPrefix):], segmentSeparatorConstant)
	if separatorIndex == -1 {
		return GitURL{}, ParseError{Input: input}
	}
	hostLength := len(protocolPrefix) + separatorIndex
	return GitURL{host: input[:hostLength], path: input[hostLength+1:]}, nil
}

// Host returns the immutable host component.
func (url GitURL) Host() string {
	return url.host
}

// Path returns the current path component; an empty string marks the root.
func (url GitURL) Path() string {
	return url.path
}

// AtRoot reports whether the path component is empty.
func (url GitURL) AtRoot() bool {
	return len(url.path) == 0
}

// Pop returns a copy with the trailing path segment removed.
//
// The second return value is false when the path is already empty, in which
// case the returned value is the zero GitURL.
func (url GitURL) Pop() (GitURL, bool) {
	popped := url
	if !popped.PopInPlace() {
		return GitURL{}, false
	}
	return popped, true
}

// PopInPlace removes the trailing path segment, reporting false without
// mutation when the path is already empty.
func (url *GitURL) PopInPlace() bool {
	return removeTrailingSegment(&url.path)
}

// Join returns a copy with childPath resolved against the current path.
//
// The second return value is false when resolution fails, in which case the
// returned value is the zero GitURL.
func (url GitURL) Join(childPath string) (GitURL, bool) {
	joined := url
	if !joined.JoinInPlace(childPath) {
		return GitURL{}, false
	}
	return joined, true
}

// JoinInPlace resolves childPath against the current path.
//
// The child splits on slashes; "." segments are skipped, ".." segments remove
// the trailing segment of the working path, and any other segment is
// appended. An empty segment — a leading or trailing slash, a doubled slash,
// or an empty child — fails the whole operation, as does a ".." encountered
// at the root. The receiver is only mutated after every segment resolves.
func (url *GitURL) JoinInPlace(childPath string) bool {
	workingPath := url.path
	for _, rawSegment := range strings.Split(childPath, segmentSeparatorConstant) {
		switch {
		case len(rawSegment) == 0:
			return false
		case rawSegment == parentDirectorySegmentConstant:
			if !removeTrailingSegment(&workingPath) {
				return false
			}
		case rawSegment == currentDirectorySegmentConstant:
		default:
			if len(workingPath) > 0 {
				workingPath += segmentSeparatorConstant
			}
			workingPath += rawSegment
		}
	}
	url.path = workingPath
	return true
}

// String renders the URL as host when the path is empty and host:path
// otherwise, regardless of the separator style of the original input.
func (url GitURL) String() string {
	if len(url.path) == 0 {
		return url.host
	}
	return url.host + hostPathSeparatorConstant + url.path
}

func removeTrailingSegment(path *string) bool {
	if len(*path) == 0 {
		return false
	}
	separatorIndex := strings.LastIndex(*path, segmentSeparatorConstant)
	if separatorIndex == -1 {
		*path = ""
		return true
	}
	*path = (*path)[:separatorIndex]
	return true
}
