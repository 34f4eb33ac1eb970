package strategy

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/packvault/packvault/internal/artefact"
	"github.com/packvault/packvault/internal/frontmatter"
)

// PlainStrategy diffs single-body artefacts: commands, and standards in
// legacy renderings that the structured parser cannot read. Frontmatter
// is stripped from both sides and the bodies are compared line by line;
// any added or removed line yields exactly one whole-body update record.
type PlainStrategy struct{}

func (s *PlainStrategy) Supports(f artefact.FileDescriptor) bool {
	return f.ArtefactType == artefact.TypeCommand || f.ArtefactType == artefact.TypeStandard
}

func (s *PlainStrategy) Diff(ctx context.Context, f artefact.FileDescriptor, baseDir string) ([]artefact.Diff, error) {
	local, err := os.ReadFile(filepath.Join(baseDir, f.Path))
	if err != nil {
		// Local file absent means nothing to compare yet
		return nil, nil
	}

	oldBody := frontmatter.Strip(*f.Content)
	newBody := frontmatter.Strip(string(local))
	if !sameLines(oldBody, newBody) {
		return []artefact.Diff{
			newDiff(f, artefact.DiffUpdateDescription, artefact.ValueChange{OldValue: oldBody, NewValue: newBody}),
		}, nil
	}
	return nil, nil
}

// sameLines reports whether two bodies contain the same lines in the
// same order, ignoring trailing newlines. Partial-line diffs are never
// surfaced; a changed line counts as one removed plus one added.
func sameLines(a, b string) bool {
	al := strings.Split(strings.TrimRight(a, "\n"), "\n")
	bl := strings.Split(strings.TrimRight(b, "\n"), "\n")
	if len(al) != len(bl) {
		return false
	}
	for i := range al {
		if al[i] != bl[i] {
			return false
		}
	}
	return true
}
