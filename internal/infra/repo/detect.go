// Package repo detects the target GitHub repository from the local git checkout.
package repo

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/zabooya/gh-seed/internal/domain"
)

// Detector implements domain.RepoDetector using go-git.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Ensure Detector implements domain.RepoDetector interface.
var _ domain.RepoDetector = (*Detector)(nil)

// Detect returns the owner/name slug of the origin remote of the
// repository containing dir.
func (d *Detector) Detect(dir string) (string, error) {
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRepoNotDetected, err)
	}

	remote, err := r.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("%w: no origin remote", domain.ErrRepoNotDetected)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: origin remote has no URL", domain.ErrRepoNotDetected)
	}

	slug, err := ParseRemoteURL(urls[0])
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRepoNotDetected, err)
	}
	return slug, nil
}

// ParseRemoteURL extracts the owner/name slug from a git remote URL.
// Supported forms:
//
//	git@github.com:owner/name.git
//	ssh://git@github.com/owner/name.git
//	https://github.com/owner/name.git
func ParseRemoteURL(remote string) (string, error) {
	path := remote

	switch {
	case strings.Contains(path, "://"):
		// https:// or ssh:// form: strip scheme and host
		idx := strings.Index(path, "://")
		path = path[idx+3:]
		slash := strings.Index(path, "/")
		if slash < 0 {
			return "", fmt.Errorf("no path in remote URL %q", remote)
		}
		path = path[slash+1:]
	case strings.Contains(path, ":"):
		// scp-like form: git@host:owner/name.git
		idx := strings.Index(path, ":")
		path = path[idx+1:]
	default:
		return "", fmt.Errorf("unrecognized remote URL %q", remote)
	}

	path = strings.TrimSuffix(path, ".git")
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("remote URL %q does not look like owner/name", remote)
	}
	return parts[0] + "/" + parts[1], nil
}
