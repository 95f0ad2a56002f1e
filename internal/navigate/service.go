package navigate

import (
	"errors"
	"fmt"

	"github.com/temirov/giturl/internal/giturl"
)

const (
	popPastRootMessageConstant        = "cannot remove more segments than the remote path contains"
	invalidPopCountTemplateConstant   = "pop count must be at least 1, got %d"
	unresolvableChildTemplateConstant = "cannot resolve child path %q against the remote path"
	popFailureContextTemplateConstant = "%w: removed %d of %d segments from %q, stopped at %q"
)

// ErrPopPastRoot indicates a pop request exceeded the number of path segments.
var ErrPopPastRoot = errors.New(popPastRootMessageConstant)

// UnresolvableChildPathError indicates a child path could not be resolved against the remote.
type UnresolvableChildPathError struct {
	ChildPath string
}

// Error describes the failed resolution.
func (resolutionError UnresolvableChildPathError) Error() string {
	return fmt.Sprintf(unresolvableChildTemplateConstant, resolutionError.ChildPath)
}

// PopOptions configures a pop operation.
type PopOptions struct {
	RemoteURL string
	Count     int
}

// JoinOptions configures a join operation.
type JoinOptions struct {
	RemoteURL string
	ChildPath string
}

// Service applies navigation operations to textual remote URLs.
type Service struct{}

// NewService constructs a navigation service.
func NewService() *Service {
	return &Service{}
}

// Pop parses the remote URL, removes the requested number of trailing
// segments, and returns the canonical rendering of the result.
func (service *Service) Pop(options PopOptions) (string, error) {
	if options.Count < 1 {
		return "", fmt.Errorf(invalidPopCountTemplateConstant, options.Count)
	}

	parsedURL, parseError := giturl.Parse(options.RemoteURL)
	if parseError != nil {
		return "", parseError
	}

	originalPath := parsedURL.Path()
	for removedSegments := 0; removedSegments < options.Count; removedSegments++ {
		if !parsedURL.PopInPlace() {
			return "", fmt.Errorf(popFailureContextTemplateConstant, ErrPopPastRoot, removedSegments, options.Count, originalPath, parsedURL.String())
		}
	}

	return parsedURL.String(), nil
}

// Join parses the remote URL, resolves the child path against it, and returns
// the canonical rendering of the result.
func (service *Service) Join(options JoinOptions) (string, error) {
	parsedURL, parseError := giturl.Parse(options.RemoteURL)
	if parseError != nil {
		return "", parseError
	}

	joinedURL, joined := parsedURL.Join(options.ChildPath)
	if !joined {
		return "", UnresolvableChildPathError{ChildPath: options.ChildPath}
	}

	return joinedURL.String(), nil
}
