package remote

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// GitRemote is a parsed git remote reference
type GitRemote struct {
	Owner string
	Repo  string
	Path  string // subpath within the repository
	Ref   string // branch, tag or commit
}

var (
	// owner/repo, owner/repo:path, owner/repo@ref, owner/repo:path@ref
	remoteWithRef   = regexp.MustCompile(`^([a-zA-Z0-9_-]+)/([a-zA-Z0-9_.-]+)(?::([^@]+))?@(.+)$`)
	remoteShorthand = regexp.MustCompile(`^([a-zA-Z0-9_-]+)/([a-zA-Z0-9_.-]+)(?::(.+))?$`)
)

// ParseGitRemote parses a git remote string: a GitHub URL or the
// owner/repo[:path][@ref] shorthand.
func ParseGitRemote(input string) (*GitRemote, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty git remote")
	}

	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return parseRemoteURL(input)
	}

	if m := remoteWithRef.FindStringSubmatch(input); m != nil {
		return &GitRemote{Owner: m[1], Repo: m[2], Path: m[3], Ref: m[4]}, nil
	}
	if m := remoteShorthand.FindStringSubmatch(input); m != nil {
		return &GitRemote{Owner: m[1], Repo: m[2], Path: m[3]}, nil
	}

	return nil, fmt.Errorf("unrecognized git remote: %s", input)
}

// parseRemoteURL handles github.com URLs, including tree links with a
// branch and subpath.
func parseRemoteURL(input string) (*GitRemote, error) {
	u, err := url.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("invalid git remote URL: %w", err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 {
		return nil, fmt.Errorf("git remote URL missing owner/repo: %s", input)
	}

	remote := &GitRemote{
		Owner: parts[0],
		Repo:  strings.TrimSuffix(parts[1], ".git"),
	}

	// https://github.com/owner/repo/tree/<ref>/<sub/path>
	if len(parts) >= 4 && parts[2] == "tree" {
		remote.Ref = parts[3]
		remote.Path = strings.Join(parts[4:], "/")
	}

	return remote, nil
}
