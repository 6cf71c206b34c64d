package service

import (
	"errors"
	"testing"

	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/ManishJangid007/hirely-sub000/internal/dto"
)

func TestJobDescriptionLifecycle(t *testing.T) {
	f := newFakeStore()
	sched := &fakeScheduler{}
	svc := NewJobDescriptionService(f.JobDescriptions(), sched)

	created, err := svc.CreateJobDescription(dto.JobDescriptionRequest{
		Title:       "Backend Engineer",
		Description: "Build and run Go services.",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("blank id should be generated")
	}

	updated, err := svc.UpdateJobDescription(created.ID, dto.JobDescriptionRequest{
		Title:       "Senior Backend Engineer",
		Description: "Build and run Go services. Mentor the team.",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Senior Backend Engineer" {
		t.Fatalf("updated = %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("update must keep the creation time")
	}

	all, err := svc.GetAllJobDescriptions()
	if err != nil || len(all) != 1 {
		t.Fatalf("list = %+v %v", all, err)
	}

	if err := svc.DeleteJobDescription(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := svc.GetJobDescription(created.ID)
	if err != nil || got != nil {
		t.Fatalf("after delete: %+v %v", got, err)
	}
	if _, err := f.JobDescriptions().FindByID(created.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatal("record still present")
	}
	if sched.calls() != 3 {
		t.Fatalf("schedule calls = %d, want 3", sched.calls())
	}
}

func TestUpdateJobDescriptionInsertsUnknownID(t *testing.T) {
	f := newFakeStore()
	svc := NewJobDescriptionService(f.JobDescriptions(), &fakeScheduler{})

	resp, err := svc.UpdateJobDescription("fresh-jd", dto.JobDescriptionRequest{Title: "QA Engineer"})
	if err != nil {
		t.Fatalf("update-as-insert: %v", err)
	}
	if resp.ID != "fresh-jd" || resp.Title != "QA Engineer" {
		t.Fatalf("resp = %+v", resp)
	}
}
