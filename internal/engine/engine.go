// Package engine orchestrates a diff run: it fetches the server's
// expected file set, dispatches each file to its strategy, and appends
// the results of new-local-file discovery.
package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/packvault/packvault/internal/artefact"
	"github.com/packvault/packvault/internal/strategy"
)

// FetchRequest identifies which packages to pull the expected file set for
type FetchRequest struct {
	Packages         []string `json:"packages"`
	PreviousPackages []string `json:"previousPackages,omitempty"`
	GitRemote        string   `json:"gitRemote,omitempty"`
	GitBranch        string   `json:"gitBranch,omitempty"`
	RelativePath     string   `json:"relativePath,omitempty"`
	Agent            string   `json:"agent,omitempty"`
}

// FetchResult is the server's expected state for the requested packages
type FetchResult struct {
	Files        []artefact.FileDescriptor `json:"files"`
	SkillFolders []string                  `json:"skillFolders"`
}

// Fetcher supplies the expected file set. Implemented by the remote
// PackVault client and by the git source.
type Fetcher interface {
	FetchArtefacts(ctx context.Context, req FetchRequest) (*FetchResult, error)
}

// Engine runs the diff pipeline against one base directory
type Engine struct {
	fetcher    Fetcher
	strategies []strategy.Strategy
	log        zerolog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithStrategies replaces the default strategy list
func WithStrategies(strategies []strategy.Strategy) Option {
	return func(e *Engine) {
		e.strategies = strategies
	}
}

// WithLogger sets the engine's logger
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// New creates an engine with the default strategy dispatch order
func New(fetcher Fetcher, opts ...Option) *Engine {
	e := &Engine{
		fetcher:    fetcher,
		strategies: strategy.Default(),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Diff fetches the expected file set and compares it against baseDir,
// returning the typed change records in file-processing order with
// discovery results appended last. Remote failures are propagated to
// the caller unmodified; the engine has no retry policy of its own.
func (e *Engine) Diff(ctx context.Context, req FetchRequest, baseDir string) ([]artefact.Diff, error) {
	result, err := e.fetcher.FetchArtefacts(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artefacts: %w", err)
	}

	files := diffableFiles(result.Files)
	e.log.Debug().
		Int("declared", len(result.Files)).
		Int("diffable", len(files)).
		Int("skill_folders", len(result.SkillFolders)).
		Msg("fetched expected file set")

	var diffs []artefact.Diff
	for _, f := range files {
		st := e.selectStrategy(f)
		if st == nil {
			continue
		}

		fileDiffs, err := st.Diff(ctx, f, baseDir)
		if err != nil {
			return nil, fmt.Errorf("failed to diff %s: %w", f.Path, err)
		}
		if len(fileDiffs) > 0 {
			e.log.Debug().Str("path", f.Path).Int("diffs", len(fileDiffs)).Msg("file changed")
		}
		diffs = append(diffs, fileDiffs...)
	}

	discovered := strategy.DiscoverNewFiles(ctx, result.Files, result.SkillFolders, baseDir)
	if len(discovered) > 0 {
		e.log.Debug().Int("new_files", len(discovered)).Msg("discovered local-only skill files")
	}
	return append(diffs, discovered...), nil
}

func (e *Engine) selectStrategy(f artefact.FileDescriptor) strategy.Strategy {
	for _, st := range e.strategies {
		if st.Supports(f) {
			return st
		}
	}
	return nil
}

// diffableFiles drops the package manifest, deduplicates by path keeping
// the last occurrence, and filters to files carrying both an artefact
// identity and content. Files with neither, such as composite sections
// files, are non-diffable and silently excluded.
func diffableFiles(files []artefact.FileDescriptor) []artefact.FileDescriptor {
	byPath := make(map[string]int)
	var deduped []artefact.FileDescriptor

	for _, f := range files {
		if filepath.Base(f.Path) == artefact.PackageManifestFilename {
			continue
		}
		if idx, seen := byPath[f.Path]; seen {
			deduped[idx] = f
			continue
		}
		byPath[f.Path] = len(deduped)
		deduped = append(deduped, f)
	}

	var out []artefact.FileDescriptor
	for _, f := range deduped {
		if !f.ArtefactType.IsValid() || f.ArtefactName == "" || f.Content == nil {
			continue
		}
		out = append(out, f)
	}
	return out
}
