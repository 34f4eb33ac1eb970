package strategy

import (
	"context"
	"os"
	"path/filepath"

	"github.com/packvault/packvault/internal/artefact"
	"github.com/packvault/packvault/internal/manifest"
	"github.com/packvault/packvault/internal/similarity"
)

// StandardStrategy diffs structured standards field by field: name,
// description, scope, and the bullet rule list. Rule lists are treated
// as unordered sets; server/local leftovers are paired through the
// similarity matcher so an edited rule becomes one update instead of a
// delete plus an add.
type StandardStrategy struct{}

// Supports matches standards whose server-side content parses in one of
// the structured dialects. Unparseable standards fall through to the
// plain-body strategy as legacy renderings.
func (s *StandardStrategy) Supports(f artefact.FileDescriptor) bool {
	if f.ArtefactType != artefact.TypeStandard || f.Content == nil {
		return false
	}
	return manifest.ParseStandard(f.Path, *f.Content) != nil
}

func (s *StandardStrategy) Diff(ctx context.Context, f artefact.FileDescriptor, baseDir string) ([]artefact.Diff, error) {
	local, err := os.ReadFile(filepath.Join(baseDir, f.Path))
	if err != nil {
		return nil, nil
	}

	server := manifest.ParseStandard(f.Path, *f.Content)
	current := manifest.ParseStandard(f.Path, string(local))
	if server == nil || current == nil {
		// Parse failure on either side is fail-safe, not fail-loud
		return nil, nil
	}

	var diffs []artefact.Diff

	if oldVal, newVal, ok := pickPair(server.FrontmatterName, current.FrontmatterName, server.Name, current.Name); ok && oldVal != newVal {
		diffs = append(diffs, newDiff(f, artefact.DiffUpdateName, artefact.ValueChange{OldValue: oldVal, NewValue: newVal}))
	}
	if oldVal, newVal, ok := pickPair(server.FrontmatterDescription, current.FrontmatterDescription, server.Description, current.Description); ok && oldVal != newVal {
		diffs = append(diffs, newDiff(f, artefact.DiffUpdateDescription, artefact.ValueChange{OldValue: oldVal, NewValue: newVal}))
	}
	if server.Scope != current.Scope {
		diffs = append(diffs, newDiff(f, artefact.DiffUpdateScope, artefact.ValueChange{OldValue: server.Scope, NewValue: current.Scope}))
	}

	diffs = append(diffs, diffRules(f, server.Rules, current.Rules)...)
	return diffs, nil
}

// pickPair chooses which name/description representation to compare:
// the frontmatter pair when both sides populate it, the body pair
// otherwise. Comparing across representations would produce false
// positives, since different render targets store the truth in
// different places.
func pickPair(serverFM, localFM, serverBody, localBody string) (string, string, bool) {
	if serverFM != "" && localFM != "" {
		return serverFM, localFM, true
	}
	if serverBody != "" && localBody != "" {
		return serverBody, localBody, true
	}
	return "", "", false
}

// diffRules reconciles the two rule sets. A rule appearing verbatim on
// both sides produces no diff; the remainders go through the bipartite
// similarity matcher.
func diffRules(f artefact.FileDescriptor, serverRules, localRules []string) []artefact.Diff {
	serverSet := ruleSet(serverRules)
	localSet := ruleSet(localRules)

	var deleted, added []string
	for _, rule := range serverRules {
		if !localSet[rule] {
			deleted = append(deleted, rule)
		}
	}
	for _, rule := range localRules {
		if !serverSet[rule] {
			added = append(added, rule)
		}
	}

	match := similarity.MatchPairs(deleted, added)

	var diffs []artefact.Diff
	for _, pair := range match.Pairs {
		diffs = append(diffs, newDiff(f, artefact.DiffUpdateRule, artefact.RuleUpdate{
			TargetID: artefact.PlaceholderTargetID,
			OldValue: deleted[pair.Deleted],
			NewValue: added[pair.Added],
		}))
	}
	for _, di := range match.UnmatchedDeleted {
		diffs = append(diffs, newDiff(f, artefact.DiffDeleteRule, artefact.RuleChange{
			TargetID: artefact.PlaceholderTargetID,
			Item:     deleted[di],
		}))
	}
	for _, ai := range match.UnmatchedAdded {
		diffs = append(diffs, newDiff(f, artefact.DiffAddRule, artefact.RuleChange{
			TargetID: artefact.PlaceholderTargetID,
			Item:     added[ai],
		}))
	}
	return diffs
}

// ruleSet deduplicates rules by exact string content
func ruleSet(rules []string) map[string]bool {
	set := make(map[string]bool, len(rules))
	for _, rule := range rules {
		set[rule] = true
	}
	return set
}
