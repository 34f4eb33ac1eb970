package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/packvault/packvault/internal/artefact"
)

// CheckedDiff is one diff annotated with its server-side existence state
type CheckedDiff struct {
	Diff      artefact.Diff
	Exists    bool
	CreatedAt *time.Time
	Message   string
}

// Check asks the server whether each diff's change proposal already
// exists. Diffs lacking an artefact id, space id, or carrying an
// unsupported artefact type are marked exists:false without a remote
// call. The output order equals the input order regardless of how items
// were grouped internally; callers render this list directly.
func Check(ctx context.Context, checker Checker, diffs []artefact.Diff) ([]CheckedDiff, error) {
	results := make([]CheckedDiff, len(diffs))
	var remote []int
	for i, d := range diffs {
		results[i] = CheckedDiff{Diff: d}
		if addressable(d) {
			remote = append(remote, i)
		}
	}

	order, groups := spaceGroups(diffs, remote)
	for _, space := range order {
		indices := groups[space]
		proposals := make([]Proposal, len(indices))
		for k, i := range indices {
			proposals[k] = Proposal{
				Type:       diffs[i].Type,
				ArtefactID: diffs[i].ArtefactID,
				Payload:    diffs[i].Payload,
			}
		}

		checked, err := checker.CheckProposals(ctx, space, proposals)
		if err != nil {
			return nil, fmt.Errorf("failed to check proposals for space %s: %w", space, err)
		}

		for k, i := range indices {
			if k >= len(checked) {
				break
			}
			results[i].Exists = checked[k].Exists
			results[i].CreatedAt = checked[k].CreatedAt
			results[i].Message = checked[k].Message
		}
	}

	return results, nil
}
