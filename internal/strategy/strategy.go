// Package strategy implements the per-file diff strategies. Each
// strategy is state-free: given one server-side file descriptor and the
// local base directory, it yields zero or more typed diff records.
//
// Local read failures are never errors here. A missing or unreadable
// file means "nothing to compare yet" and contributes no diffs, except
// for skill attachments where absence is itself the diff.
package strategy

import (
	"context"

	"github.com/packvault/packvault/internal/artefact"
)

// Strategy diffs one server-side file description against local state
type Strategy interface {
	// Supports reports whether this strategy applies to the file
	Supports(f artefact.FileDescriptor) bool

	// Diff compares the server state against baseDir and returns the
	// typed change records. It is pure given filesystem state.
	Diff(ctx context.Context, f artefact.FileDescriptor, baseDir string) ([]artefact.Diff, error)
}

// Default returns the strategy list in dispatch order. A file goes to
// the first strategy whose Supports predicate matches, so the
// structured-standard strategy must come before the plain-body one:
// standards that fail structured parsing fall through to plain-body
// treatment as legacy standards.
func Default() []Strategy {
	return []Strategy{
		&StandardStrategy{},
		&SkillStrategy{},
		&PlainStrategy{},
	}
}

// newDiff carries the descriptor's identifying metadata onto a record
func newDiff(f artefact.FileDescriptor, t artefact.DiffType, payload artefact.Payload) artefact.Diff {
	return artefact.Diff{
		Path:         f.Path,
		Type:         t,
		Payload:      payload,
		ArtefactName: f.ArtefactName,
		ArtefactType: f.ArtefactType,
		ArtefactID:   f.ArtefactID,
		SpaceID:      f.SpaceID,
	}
}
