package collab

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"devforge/internal/domain"
	"devforge/internal/domain/models"
	collabSvc "devforge/internal/domain/services/collab"
)

type fakeRequirementRepo struct {
	byID map[string]*models.Requirement
}

func newFakeRequirementRepo() *fakeRequirementRepo {
	return &fakeRequirementRepo{byID: make(map[string]*models.Requirement)}
}

func (f *fakeRequirementRepo) Create(_ context.Context, r *models.Requirement) error {
	copied := *r
	f.byID[r.ID] = &copied
	return nil
}

func (f *fakeRequirementRepo) List(_ context.Context) ([]models.Requirement, error) {
	out := []models.Requirement{}
	for _, r := range f.byID {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRequirementRepo) GetByID(_ context.Context, id string) (*models.Requirement, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("requirement %s: %w", id, domain.ErrNotFound)
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRequirementRepo) Update(_ context.Context, r *models.Requirement) error {
	if _, ok := f.byID[r.ID]; !ok {
		return fmt.Errorf("requirement %s: %w", r.ID, domain.ErrNotFound)
	}
	copied := *r
	f.byID[r.ID] = &copied
	return nil
}

func newTestRequirementService(repo *fakeRequirementRepo) collabSvc.RequirementService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRequirementService(repo, logger)
}

func strPtr(s string) *string { return &s }

func TestCreateRequirementDefaults(t *testing.T) {
	svc := newTestRequirementService(newFakeRequirementRepo())

	req, err := svc.CreateRequirement(context.Background(), &collabSvc.CreateRequirementRequest{
		Title:     "  login module  ",
		Content:   "users must be able to log in",
		CreatorID: "u1",
	})
	if err != nil {
		t.Fatalf("CreateRequirement failed: %v", err)
	}

	if req.Title != "login module" {
		t.Errorf("title not trimmed: %q", req.Title)
	}
	if req.Priority != models.PriorityMedium {
		t.Errorf("expected medium priority default, got %s", req.Priority)
	}
	if req.Status != models.StatusDraft {
		t.Errorf("expected draft status, got %s", req.Status)
	}
	if req.Version != 1 {
		t.Errorf("expected version 1, got %d", req.Version)
	}
}

func TestCreateRequirementRejectsBadPriority(t *testing.T) {
	svc := newTestRequirementService(newFakeRequirementRepo())

	_, err := svc.CreateRequirement(context.Background(), &collabSvc.CreateRequirementRequest{
		Title:     "t",
		Content:   "c",
		Priority:  "urgent",
		CreatorID: "u1",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateContentBumpsVersion(t *testing.T) {
	repo := newFakeRequirementRepo()
	svc := newTestRequirementService(repo)

	created, err := svc.CreateRequirement(context.Background(), &collabSvc.CreateRequirementRequest{
		Title:     "t",
		Content:   "v1 content",
		CreatorID: "u1",
	})
	if err != nil {
		t.Fatalf("CreateRequirement failed: %v", err)
	}

	updated, err := svc.UpdateRequirement(context.Background(), created.ID, &collabSvc.UpdateRequirementRequest{
		Content: strPtr("v2 content"),
	})
	if err != nil {
		t.Fatalf("UpdateRequirement failed: %v", err)
	}
	if updated.Version != 2 {
		t.Errorf("content change must bump version: got %d", updated.Version)
	}
}

func TestStatusOnlyUpdateKeepsVersion(t *testing.T) {
	repo := newFakeRequirementRepo()
	svc := newTestRequirementService(repo)

	created, err := svc.CreateRequirement(context.Background(), &collabSvc.CreateRequirementRequest{
		Title:     "t",
		Content:   "c",
		CreatorID: "u1",
	})
	if err != nil {
		t.Fatalf("CreateRequirement failed: %v", err)
	}

	updated, err := svc.UpdateRequirement(context.Background(), created.ID, &collabSvc.UpdateRequirementRequest{
		Status: strPtr("confirmed"),
	})
	if err != nil {
		t.Fatalf("UpdateRequirement failed: %v", err)
	}
	if updated.Version != 1 {
		t.Errorf("status change must not bump version: got %d", updated.Version)
	}
	if updated.Status != models.StatusConfirmed {
		t.Errorf("status not applied: %s", updated.Status)
	}
}

func TestFrozenRequirementRejectsContentChange(t *testing.T) {
	repo := newFakeRequirementRepo()
	svc := newTestRequirementService(repo)

	created, err := svc.CreateRequirement(context.Background(), &collabSvc.CreateRequirementRequest{
		Title:     "t",
		Content:   "c",
		CreatorID: "u1",
	})
	if err != nil {
		t.Fatalf("CreateRequirement failed: %v", err)
	}
	if _, err := svc.UpdateRequirement(context.Background(), created.ID, &collabSvc.UpdateRequirementRequest{
		Status: strPtr("frozen"),
	}); err != nil {
		t.Fatalf("freeze failed: %v", err)
	}

	_, err = svc.UpdateRequirement(context.Background(), created.ID, &collabSvc.UpdateRequirementRequest{
		Content: strPtr("new content"),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("frozen requirement accepted a content change: %v", err)
	}
}

func TestUpdateWithoutFieldsRejected(t *testing.T) {
	svc := newTestRequirementService(newFakeRequirementRepo())

	_, err := svc.UpdateRequirement(context.Background(), "any", &collabSvc.UpdateRequirementRequest{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for empty update, got %v", err)
	}
}
