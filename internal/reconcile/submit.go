package reconcile

import (
	"context"
	"fmt"

	"github.com/packvault/packvault/internal/artefact"
)

// SubmitStatus is the per-item outcome of a submission run
type SubmitStatus string

const (
	StatusSubmitted SubmitStatus = "submitted"
	StatusSkipped   SubmitStatus = "skipped"
	StatusError     SubmitStatus = "error"
)

// SubmitItem is one diff annotated with its submission outcome. Reason
// carries the human-readable skip reason or the server's error message.
type SubmitItem struct {
	Diff   artefact.Diff
	Status SubmitStatus
	Reason string
}

// SubmitSummary aggregates a submission run. Items preserves the input
// order of the diff list.
type SubmitSummary struct {
	Submitted        int
	Skipped          int
	AlreadySubmitted int
	Errors           int
	Items            []SubmitItem
}

// Submit batches the diffs into one creation call per space and merges
// the responses back in input order. Diffs are grouped by artefact;
// groups whose first member carries an unsupported type are wholly
// skipped, and individual diffs missing their artefact or space id are
// skipped with their own reason while the rest of the group proceeds.
// One malformed item never blocks the batch.
func Submit(ctx context.Context, submitter Submitter, diffs []artefact.Diff, captureMode string) (*SubmitSummary, error) {
	summary := &SubmitSummary{Items: make([]SubmitItem, len(diffs))}
	for i, d := range diffs {
		summary.Items[i] = SubmitItem{Diff: d, Status: StatusSubmitted}
	}

	valid := collectSubmittable(diffs, summary)

	order, groups := spaceGroups(diffs, valid)
	for _, space := range order {
		indices := groups[space]
		proposals := make([]Proposal, len(indices))
		for k, i := range indices {
			proposals[k] = Proposal{
				Type:        diffs[i].Type,
				ArtefactID:  diffs[i].ArtefactID,
				Payload:     diffs[i].Payload,
				CaptureMode: captureMode,
			}
		}

		resp, err := submitter.SubmitProposals(ctx, space, proposals)
		if err != nil {
			return nil, fmt.Errorf("failed to submit proposals for space %s: %w", space, err)
		}

		summary.Submitted += resp.Created
		summary.AlreadySubmitted += resp.Skipped
		summary.Errors += len(resp.Errors)

		// Per-item errors come back keyed by batch-local index; map them
		// to the originating diff and its artefact name.
		for _, submitErr := range resp.Errors {
			if submitErr.Index < 0 || submitErr.Index >= len(indices) {
				continue
			}
			i := indices[submitErr.Index]
			summary.Items[i].Status = StatusError
			summary.Items[i].Reason = fmt.Sprintf("%s: %s", diffs[i].ArtefactName, submitErr.Message)
		}
	}

	return summary, nil
}

// collectSubmittable walks the artefact groups, marks skipped items with
// their reasons, and returns the indices that proceed to submission.
func collectSubmittable(diffs []artefact.Diff, summary *SubmitSummary) []int {
	groupOrder, groupIndices := artefactGroups(diffs)

	var valid []int
	for _, key := range groupOrder {
		indices := groupIndices[key]
		first := diffs[indices[0]]

		if !first.ArtefactType.IsValid() {
			reason := fmt.Sprintf("unsupported artefact type %q for %s", first.ArtefactType, first.ArtefactName)
			for _, i := range indices {
				summary.Items[i].Status = StatusSkipped
				summary.Items[i].Reason = reason
				summary.Skipped++
			}
			continue
		}

		for _, i := range indices {
			switch {
			case diffs[i].ArtefactID == "":
				summary.Items[i].Status = StatusSkipped
				summary.Items[i].Reason = fmt.Sprintf("%s: missing artefact id", diffs[i].ArtefactName)
				summary.Skipped++
			case diffs[i].SpaceID == "":
				summary.Items[i].Status = StatusSkipped
				summary.Items[i].Reason = fmt.Sprintf("%s: missing space id", diffs[i].ArtefactName)
				summary.Skipped++
			default:
				valid = append(valid, i)
			}
		}
	}
	return valid
}

// artefactGroups collects indices per artefact, preserving first
// appearance order.
func artefactGroups(diffs []artefact.Diff) (order []string, groups map[string][]int) {
	groups = make(map[string][]int)
	for i, d := range diffs {
		key := string(d.ArtefactType) + "/" + d.ArtefactName
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}
	return order, groups
}
