// Package admin holds the reconciliation state behind the admin tooling: a
// local working copy of each collection kept consistent with user actions
// through optimistic merges, without a full refetch after every mutation.
//
// Editors assume a single operator per session and are not safe for
// concurrent use.
package admin

// Mode is the editor's position in its drafting lifecycle.
type Mode int

const (
	// ModeBrowsing means no draft exists; the list reflects the last
	// successful fetch or merge.
	ModeBrowsing Mode = iota
	// ModeDraftingNew means a fresh draft with a generated id exists but has
	// not been persisted.
	ModeDraftingNew
	// ModeEditingExisting means the draft was populated from a selected list
	// entry.
	ModeEditingExisting
	// ModeSaving means a save request is in flight.
	ModeSaving
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeDraftingNew:
		return "drafting-new"
	case ModeEditingExisting:
		return "editing-existing"
	case ModeSaving:
		return "saving"
	default:
		return "unknown"
	}
}
