// Package reconcile groups diff records by space, batches them into the
// remote existence-check and submission calls, and merges the per-item
// responses back onto the original, order-preserving diff list.
package reconcile

import (
	"context"
	"time"

	"github.com/packvault/packvault/internal/artefact"
)

// Proposal is one change proposal addressed to the server
type Proposal struct {
	Type        artefact.DiffType `json:"type"`
	ArtefactID  string            `json:"artefactId"`
	Payload     artefact.Payload  `json:"payload"`
	CaptureMode string            `json:"captureMode,omitempty"`
}

// CheckResult is the server's answer for one checked proposal
type CheckResult struct {
	Exists    bool       `json:"exists"`
	CreatedAt *time.Time `json:"createdAt"`
	Message   string     `json:"message,omitempty"`
}

// SubmitError maps a batch-local index to a failure message
type SubmitError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// SubmitResponse is the server's answer for one submitted batch
type SubmitResponse struct {
	Created int           `json:"created"`
	Skipped int           `json:"skipped"`
	Errors  []SubmitError `json:"errors"`
}

// Checker is the change-proposal existence-check collaborator
type Checker interface {
	CheckProposals(ctx context.Context, spaceID string, proposals []Proposal) ([]CheckResult, error)
}

// Submitter is the change-proposal batch-submit collaborator
type Submitter interface {
	SubmitProposals(ctx context.Context, spaceID string, proposals []Proposal) (*SubmitResponse, error)
}

// addressable reports whether a diff carries the identifying metadata
// needed to address it server-side.
func addressable(d artefact.Diff) bool {
	return d.ArtefactID != "" && d.SpaceID != "" && d.ArtefactType.IsValid()
}

// spaceGroups collects indices per space id, preserving the order spaces
// first appear and, within each space, the input order of items.
func spaceGroups(diffs []artefact.Diff, indices []int) (order []string, groups map[string][]int) {
	groups = make(map[string][]int)
	for _, i := range indices {
		space := diffs[i].SpaceID
		if _, seen := groups[space]; !seen {
			order = append(order, space)
		}
		groups[space] = append(groups[space], i)
	}
	return order, groups
}
