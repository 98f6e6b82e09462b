package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cenit-labs.backend/internal/domain/entities"
)

// JobAPI is the slice of the content API the job editor drives.
// *apiclient.Client satisfies it.
type JobAPI interface {
	ListJobs(ctx context.Context) ([]*entities.Job, error)
	CreateJob(ctx context.Context, job *entities.Job) (*entities.Job, error)
	UpdateJob(ctx context.Context, job *entities.Job) (*entities.Job, error)
	DeleteJob(ctx context.Context, id string) error
}

// JobEditor mirrors the remote job collection, following the same drafting
// lifecycle as TeamEditor.
type JobEditor struct {
	api   JobAPI
	mode  Mode
	jobs  []*entities.Job
	draft *entities.Job
}

func NewJobEditor(api JobAPI) *JobEditor {
	return &JobEditor{api: api, mode: ModeBrowsing}
}

func (e *JobEditor) Mode() Mode { return e.mode }

func (e *JobEditor) Jobs() []*entities.Job { return e.jobs }

func (e *JobEditor) Draft() *entities.Job { return e.draft }

func (e *JobEditor) Load(ctx context.Context) error {
	jobs, err := e.api.ListJobs(ctx)
	if err != nil {
		return fmt.Errorf("load jobs: %w", err)
	}
	e.jobs = jobs
	return nil
}

func (e *JobEditor) StartNew() *entities.Job {
	e.draft = &entities.Job{ID: fmt.Sprintf("job-%d", time.Now().UnixMilli())}
	e.mode = ModeDraftingNew
	return e.draft
}

func (e *JobEditor) StartEdit(id string) (*entities.Job, error) {
	for _, j := range e.jobs {
		if j.ID == id {
			draft := *j
			e.draft = &draft
			e.mode = ModeEditingExisting
			return e.draft, nil
		}
	}
	return nil, fmt.Errorf("job %q not in local collection", id)
}

func (e *JobEditor) Cancel() {
	e.draft = nil
	e.mode = ModeBrowsing
}

// ValidateDraft enforces the form-level policy on the draft. The
// application URL requirement lives here, above the API: the storage schema
// keeps the column nullable, but the admin form refuses to submit without
// one.
func (e *JobEditor) ValidateDraft() error {
	if e.draft == nil {
		return errNoDraft
	}
	switch {
	case e.draft.Title == "":
		return errors.New("title is required")
	case e.draft.Department == "":
		return errors.New("department is required")
	case e.draft.Location == "":
		return errors.New("location is required")
	case e.draft.Type == "":
		return errors.New("type is required")
	case e.draft.ApplicationURL.String == "":
		return errors.New("application URL is required")
	}
	return nil
}

// Save validates and persists the draft, merging the server's
// representation into the collection on success. Validation failures are
// rejected before any network call.
func (e *JobEditor) Save(ctx context.Context) (*entities.Job, error) {
	if err := e.ValidateDraft(); err != nil {
		return nil, err
	}
	prevMode := e.mode
	e.mode = ModeSaving

	var (
		stored *entities.Job
		err    error
	)
	if prevMode == ModeDraftingNew {
		stored, err = e.api.CreateJob(ctx, e.draft)
	} else {
		stored, err = e.api.UpdateJob(ctx, e.draft)
	}
	if err != nil {
		e.mode = prevMode
		return nil, fmt.Errorf("save job: %w", err)
	}

	if prevMode == ModeDraftingNew {
		e.jobs = append(e.jobs, stored)
	} else {
		for i, j := range e.jobs {
			if j.ID == stored.ID {
				e.jobs[i] = stored
			}
		}
	}
	e.draft = nil
	e.mode = ModeBrowsing
	return stored, nil
}

// Delete removes a posting optimistically and rolls back on failure.
func (e *JobEditor) Delete(ctx context.Context, id string) error {
	snapshot := e.jobs
	kept := make([]*entities.Job, 0, len(e.jobs))
	for _, j := range e.jobs {
		if j.ID != id {
			kept = append(kept, j)
		}
	}
	e.jobs = kept

	if err := e.api.DeleteJob(ctx, id); err != nil {
		e.jobs = snapshot
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}
