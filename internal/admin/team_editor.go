package admin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cenit-labs.backend/internal/domain/entities"
	"cenit-labs.backend/pkg/apiclient"
)

// TeamAPI is the slice of the content API the team editor drives.
// *apiclient.Client satisfies it.
type TeamAPI interface {
	ListTeamMembers(ctx context.Context) ([]*entities.TeamMember, error)
	CreateTeamMember(ctx context.Context, member *entities.TeamMember) (*entities.TeamMember, error)
	UpdateTeamMember(ctx context.Context, member *entities.TeamMember) (*entities.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) error
	ReorderTeamMembers(ctx context.Context, updates []entities.OrderUpdate) error
	UploadImage(ctx context.Context, dataURL, filename string) (*apiclient.UploadResult, error)
}

var errNoDraft = errors.New("no draft in progress")

// TeamEditor mirrors the remote team collection. Mutations merge the
// server's returned representation into the local copy instead of
// refetching; delete and reorder apply optimistically and roll back to a
// snapshot on failure.
type TeamEditor struct {
	api     TeamAPI
	mode    Mode
	members []*entities.TeamMember
	draft   *entities.TeamMember
}

func NewTeamEditor(api TeamAPI) *TeamEditor {
	return &TeamEditor{api: api, mode: ModeBrowsing}
}

func (e *TeamEditor) Mode() Mode { return e.mode }

// Members returns the local working copy in display order.
func (e *TeamEditor) Members() []*entities.TeamMember { return e.members }

// Draft returns the in-progress draft, or nil while browsing.
func (e *TeamEditor) Draft() *entities.TeamMember { return e.draft }

// Load replaces the working copy with a fresh fetch. On failure the
// previous copy and any draft are kept so the operator can retry.
func (e *TeamEditor) Load(ctx context.Context) error {
	members, err := e.api.ListTeamMembers(ctx)
	if err != nil {
		return fmt.Errorf("load team members: %w", err)
	}
	e.members = members
	return nil
}

// StartNew begins a fresh draft, discarding any draft in progress.
func (e *TeamEditor) StartNew() *entities.TeamMember {
	e.draft = &entities.TeamMember{
		ID:           fmt.Sprintf("member-%d", time.Now().UnixMilli()),
		DisplayOrder: entities.EndOfListOrder,
	}
	e.mode = ModeDraftingNew
	return e.draft
}

// StartEdit populates the draft from a list entry. Selecting a different
// entry while drafting silently replaces the draft.
func (e *TeamEditor) StartEdit(id string) (*entities.TeamMember, error) {
	for _, m := range e.members {
		if m.ID == id {
			draft := *m
			e.draft = &draft
			e.mode = ModeEditingExisting
			return e.draft, nil
		}
	}
	return nil, fmt.Errorf("team member %q not in local collection", id)
}

// Cancel discards the draft and returns to browsing.
func (e *TeamEditor) Cancel() {
	e.draft = nil
	e.mode = ModeBrowsing
}

// SetDraftImage uploads an image and writes the resulting URL onto the
// draft. If the draft was replaced while the upload was in flight the
// result is discarded rather than applied to the wrong record. The guard
// compares draft identity, not the record id: two generated drafts can
// share a millisecond-resolution id.
func (e *TeamEditor) SetDraftImage(ctx context.Context, dataURL, filename string) (string, error) {
	draft := e.draft
	if draft == nil {
		return "", errNoDraft
	}

	result, err := e.api.UploadImage(ctx, dataURL, filename)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	if e.draft == draft {
		draft.ImageURL = result.ImageURL
	}
	return result.ImageURL, nil
}

// Save persists the draft. On success the server's representation is merged
// into the collection (append for create, replace-by-id for update) and the
// editor returns to browsing. On failure the draft and mode are preserved
// for retry; no optimistic change was applied, so nothing rolls back.
func (e *TeamEditor) Save(ctx context.Context) (*entities.TeamMember, error) {
	if e.draft == nil {
		return nil, errNoDraft
	}
	prevMode := e.mode
	e.mode = ModeSaving

	var (
		stored *entities.TeamMember
		err    error
	)
	if prevMode == ModeDraftingNew {
		stored, err = e.api.CreateTeamMember(ctx, e.draft)
	} else {
		stored, err = e.api.UpdateTeamMember(ctx, e.draft)
	}
	if err != nil {
		e.mode = prevMode
		return nil, fmt.Errorf("save team member: %w", err)
	}

	if prevMode == ModeDraftingNew {
		e.members = append(e.members, stored)
	} else {
		for i, m := range e.members {
			if m.ID == stored.ID {
				e.members[i] = stored
			}
		}
	}
	e.draft = nil
	e.mode = ModeBrowsing
	return stored, nil
}

// Delete removes a member optimistically and rolls the collection back if
// the server rejects the delete.
func (e *TeamEditor) Delete(ctx context.Context, id string) error {
	snapshot := e.members
	kept := make([]*entities.TeamMember, 0, len(e.members))
	for _, m := range e.members {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	e.members = kept

	if err := e.api.DeleteTeamMember(ctx, id); err != nil {
		e.members = snapshot
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}

// Reorder applies a display-order batch optimistically, resorts the local
// copy, and rolls everything back if the server rejects the batch.
func (e *TeamEditor) Reorder(ctx context.Context, updates []entities.OrderUpdate) error {
	snapshot := make([]*entities.TeamMember, len(e.members))
	for i, m := range e.members {
		copied := *m
		snapshot[i] = &copied
	}

	byID := make(map[string]int, len(updates))
	for _, u := range updates {
		byID[u.ID] = u.DisplayOrder
	}
	for _, m := range e.members {
		if order, ok := byID[m.ID]; ok {
			m.DisplayOrder = order
		}
	}
	sort.SliceStable(e.members, func(i, j int) bool {
		return e.members[i].DisplayOrder < e.members[j].DisplayOrder
	})

	if err := e.api.ReorderTeamMembers(ctx, updates); err != nil {
		e.members = snapshot
		return fmt.Errorf("reorder team members: %w", err)
	}
	return nil
}

// Group is one display section of the team page.
type Group struct {
	Name    string
	Members []*entities.TeamMember
}

// Groups partitions the working copy by group value, preserving first-seen
// group order and each group's existing relative member order.
func (e *TeamEditor) Groups() []Group {
	index := make(map[string]int)
	var groups []Group
	for _, m := range e.members {
		i, ok := index[m.Group]
		if !ok {
			i = len(groups)
			index[m.Group] = i
			groups = append(groups, Group{Name: m.Group})
		}
		groups[i].Members = append(groups[i].Members, m)
	}
	return groups
}
