package service

import (
	"errors"
	"testing"

	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/ManishJangid007/hirely-sub000/internal/dto"
	"github.com/ManishJangid007/hirely-sub000/internal/model"
)

func newResultService(f *fakeStore, sched *fakeScheduler) InterviewResultService {
	return NewInterviewResultService(f.Results(), f.Candidates(), sched)
}

func TestSaveResultSnapshotsCandidateQuestions(t *testing.T) {
	f := newFakeStore()
	seedStore(t, f)
	svc := newResultService(f, &fakeScheduler{})

	resp, err := svc.SaveResult(dto.InterviewResultRequest{
		CandidateID: "cand-1",
		Description: "Solid round",
		Result:      "Passed",
	})
	if err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	if len(resp.Questions) != 2 {
		t.Fatalf("questions = %d, want the candidate's 2", len(resp.Questions))
	}
	if resp.Questions[0].IsCorrect == nil || !*resp.Questions[0].IsCorrect {
		t.Fatal("judgements must be frozen into the result")
	}
}

func TestSaveResultReplacesUnderTheSameRecordID(t *testing.T) {
	f := newFakeStore()
	seedStore(t, f)
	sched := &fakeScheduler{}
	svc := newResultService(f, sched)

	first, err := svc.SaveResult(dto.InterviewResultRequest{
		CandidateID: "cand-1", Description: "First impression", Result: "Maybe",
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := svc.SaveResult(dto.InterviewResultRequest{
		CandidateID: "cand-1", Description: "After debrief", Result: "Passed",
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("record id changed on re-save: %q -> %q", first.ID, second.ID)
	}
	if !second.CreatedAt.After(first.CreatedAt) {
		t.Fatal("re-save should carry a fresh timestamp")
	}

	all, err := svc.GetAllResults()
	if err != nil {
		t.Fatalf("GetAllResults: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("results = %d, want 1 per candidate", len(all))
	}
	if all[0].Result != "Passed" || all[0].Description != "After debrief" {
		t.Fatalf("stored result = %+v", all[0])
	}
	if sched.calls() != 2 {
		t.Fatalf("schedule calls = %d", sched.calls())
	}
}

func TestSaveResultValidation(t *testing.T) {
	f := newFakeStore()
	seedStore(t, f)
	svc := newResultService(f, &fakeScheduler{})

	if _, err := svc.SaveResult(dto.InterviewResultRequest{
		CandidateID: "cand-1", Result: "Hired",
	}); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("unknown verdict: err = %v", err)
	}
	if _, err := svc.SaveResult(dto.InterviewResultRequest{
		CandidateID: "phantom", Result: "Passed",
	}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("unknown candidate: err = %v", err)
	}
}

func TestSaveResultKeepsAnExplicitQuestionList(t *testing.T) {
	f := newFakeStore()
	seedStore(t, f)
	svc := newResultService(f, &fakeScheduler{})

	resp, err := svc.SaveResult(dto.InterviewResultRequest{
		CandidateID: "cand-1",
		Result:      "Rejected",
		Questions: []dto.QuestionDTO{
			{ID: "manual-1", Question: "Whiteboard exercise", Section: "Practical", IsAnswered: true},
		},
	})
	if err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	if len(resp.Questions) != 1 || resp.Questions[0].ID != "manual-1" {
		t.Fatalf("questions = %+v, want the submitted list verbatim", resp.Questions)
	}
}

func TestDeleteResult(t *testing.T) {
	f := newFakeStore()
	seedStore(t, f)
	sched := &fakeScheduler{}
	svc := newResultService(f, sched)

	if err := svc.DeleteResult("res-1"); err != nil {
		t.Fatalf("DeleteResult: %v", err)
	}
	if _, err := f.Results().FindByCandidateID("cand-1"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatal("result still present")
	}
	if sched.calls() != 1 {
		t.Fatalf("schedule calls = %d", sched.calls())
	}

	res := model.InterviewResult{ID: "res-2", CandidateID: "cand-9", Result: model.VerdictMaybe}
	if err := f.Results().Create(&res); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := svc.DeleteResult("never-existed"); err != nil {
		t.Fatalf("deleting an unknown id must succeed quietly: %v", err)
	}
}
