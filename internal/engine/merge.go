package engine

import (
	"github.com/vloureiro/garagem/internal/checklist"
)

// mergeItemEdit integrates the response to an item write. The server's
// checklist scalars, status counts and the single touched item are
// authoritative; every other item stays exactly as held locally. The
// estimated total is recomputed from the merged sequence instead of trusting
// the server's number, so the derived-field invariant holds even when the
// server rounds differently.
func mergeItemEdit(local, resp *checklist.Checklist, index int) {
	adoptScalars(local, resp)

	if index >= 0 && index < len(local.Items) && index < len(resp.Items) {
		id := local.Items[index].ID
		local.Items[index] = resp.Items[index]
		local.Items[index].ID = id
	}

	local.EstimatedTotal = checklist.Recompute(local.Items).EstimatedTotal
}

// mergeTransition integrates the response to a checklist-status write. The
// scalar fields and counts are trusted; the response's item list is never
// adopted even when present. The estimated total is recomputed from the
// retained local items, falling back to the server's total only when no
// local items exist.
func mergeTransition(local, resp *checklist.Checklist) {
	adoptScalars(local, resp)

	if len(local.Items) > 0 {
		local.EstimatedTotal = checklist.Recompute(local.Items).EstimatedTotal
	} else {
		local.EstimatedTotal = resp.EstimatedTotal
	}
}

// adoptScalars copies the authoritative checklist-level fields: the
// finalized/paid/actual-cost scalars and the four status counts. The
// estimated total is a derived field and is settled by the caller.
func adoptScalars(local, resp *checklist.Checklist) {
	local.Finalized = resp.Finalized
	local.Paid = resp.Paid
	if resp.ActualCost != nil {
		v := *resp.ActualCost
		local.ActualCost = &v
	}
	local.Completed = resp.Completed
	local.Pending = resp.Pending
	local.NeedsReplacement = resp.NeedsReplacement
	local.Ignored = resp.Ignored
}
