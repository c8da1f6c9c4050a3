package engine

import (
	"github.com/vloureiro/garagem/internal/checklist"
)

// backup holds the last confirmed-good checklist for rollback. It always
// stores its own deep copy; nothing aliases the live instance.
type backup struct {
	saved *checklist.Checklist
}

// Capture replaces the stored state with a deep copy of c.
func (b *backup) Capture(c *checklist.Checklist) {
	b.saved = c.Clone()
}

// Restore returns an independent copy of the captured state, or nil when
// nothing was ever captured.
func (b *backup) Restore() *checklist.Checklist {
	return b.saved.Clone()
}

// Empty reports whether a snapshot has been captured yet.
func (b *backup) Empty() bool {
	return b.saved == nil
}
