package remote

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-github/v67/github"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/packvault/packvault/internal/artefact"
	"github.com/packvault/packvault/internal/config"
	"github.com/packvault/packvault/internal/engine"
	"github.com/packvault/packvault/internal/strategy"
)

// GitSource serves the artefact-fetch contract from a plain GitHub
// repository instead of the PackVault API. Files pulled this way carry
// no artefact or space ids, so they can be diffed but not submitted.
type GitSource struct {
	gh  *github.Client
	log zerolog.Logger
}

// NewGitSource creates a GitHub-backed source. Token resolution order:
// PACKVAULT_GITHUB_TOKEN, GITHUB_TOKEN, GH_TOKEN, unauthenticated.
func NewGitSource(log zerolog.Logger) *GitSource {
	var httpClient *http.Client
	if token := githubToken(); token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	return &GitSource{
		gh:  github.NewClient(httpClient),
		log: log,
	}
}

func githubToken() string {
	for _, name := range []string{"PACKVAULT_GITHUB_TOKEN", "GITHUB_TOKEN", "GH_TOKEN"} {
		if token := os.Getenv(name); token != "" {
			return token
		}
	}
	return ""
}

// FetchArtefacts lists the repository tree at the requested branch and
// builds file descriptors for every artefact file under the relative
// path. Implements engine.Fetcher.
func (s *GitSource) FetchArtefacts(ctx context.Context, req engine.FetchRequest) (*engine.FetchResult, error) {
	src, err := ParseGitRemote(req.GitRemote)
	if err != nil {
		return nil, err
	}

	branch := req.GitBranch
	if branch == "" {
		branch = src.Ref
	}
	if branch == "" {
		repo, _, err := s.gh.Repositories.Get(ctx, src.Owner, src.Repo)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve default branch: %w", err)
		}
		branch = repo.GetDefaultBranch()
	}

	tree, _, err := s.gh.Git.GetTree(ctx, src.Owner, src.Repo, branch, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list tree for %s/%s@%s: %w", src.Owner, src.Repo, branch, err)
	}

	prefix := strings.Trim(filepath.ToSlash(filepath.Join(src.Path, req.RelativePath)), "/.")
	if prefix != "" {
		prefix += "/"
	}

	// The server applies the agent filter itself; a plain git tree has no
	// such notion, so the agent's directory layout does the filtering.
	var agentLayout *config.AgentConfig
	if req.Agent != "" {
		if a, ok := config.AgentByName(req.Agent); ok {
			agentLayout = &a
		}
	}

	result := &engine.FetchResult{}
	folderSeen := make(map[string]bool)

	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		path := entry.GetPath()
		if prefix != "" && !strings.HasPrefix(path, prefix) {
			continue
		}
		rel := strings.TrimPrefix(path, prefix)
		if agentLayout != nil && !agentLayout.ContainsPath(rel) {
			continue
		}

		artefactType := artefact.DetectType(rel)
		if artefactType == "" {
			continue
		}

		content, isBase64, err := s.blobContent(ctx, src.Owner, src.Repo, rel, entry.GetSHA())
		if err != nil {
			return nil, err
		}

		result.Files = append(result.Files, artefact.FileDescriptor{
			Path:         rel,
			Content:      &content,
			ArtefactType: artefactType,
			ArtefactName: artefact.NameFromPath(rel, artefactType),
			IsBase64:     isBase64,
		})

		if filepath.Base(rel) == artefact.SkillManifestFilename {
			folder := filepath.ToSlash(filepath.Dir(rel))
			if folder != "." && !folderSeen[folder] {
				folderSeen[folder] = true
				result.SkillFolders = append(result.SkillFolders, folder)
			}
		}
	}

	s.log.Debug().
		Str("remote", req.GitRemote).
		Str("branch", branch).
		Int("files", len(result.Files)).
		Msg("fetched git tree")
	return result, nil
}

// blobContent fetches one blob and normalizes it: text content is
// returned decoded, binary content stays base64.
func (s *GitSource) blobContent(ctx context.Context, owner, repo, path, sha string) (string, bool, error) {
	blob, _, err := s.gh.Git.GetBlob(ctx, owner, repo, sha)
	if err != nil {
		return "", false, fmt.Errorf("failed to get blob %s: %w", path, err)
	}

	encoded := strings.ReplaceAll(blob.GetContent(), "\n", "")
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", false, fmt.Errorf("failed to decode blob %s: %w", path, err)
	}

	if strategy.IsBinary(path, raw) {
		return base64.StdEncoding.EncodeToString(raw), true, nil
	}
	return string(raw), false, nil
}
