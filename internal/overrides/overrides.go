// Package overrides holds user edits to computed transactions. Transactions
// are rebuilt wholesale on every ingestion, so edits live in a sparse patch
// layer keyed by stable transaction id and are merged on at read time; the
// computed transaction itself is never mutated in place.
package overrides

import "github.com/holdback-dev/holdback/internal/model"

// Patch is one user edit. Nil fields leave the computed value alone.
type Patch struct {
	Category    *model.Category `yaml:"category,omitempty"`
	IsRecurring *bool           `yaml:"is_recurring,omitempty"`
}

// Set maps transaction id to its patch.
type Set map[string]Patch

// Apply returns a copy of txns with patches merged on. Patches whose id
// matches no transaction are ignored; they belong to content that was
// re-ingested differently or removed.
func Apply(txns []model.Transaction, set Set) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	if len(set) == 0 {
		return out
	}
	for i := range out {
		patch, ok := set[out[i].ID]
		if !ok {
			continue
		}
		if patch.Category != nil {
			out[i].Category = *patch.Category
		}
		if patch.IsRecurring != nil {
			out[i].IsRecurring = *patch.IsRecurring
		}
	}
	return out
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Category == nil && p.IsRecurring == nil
}
