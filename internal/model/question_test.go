package model

import (
	"errors"
	"testing"
)

func TestQuestionJudgementLifecycle(t *testing.T) {
	q := Question{ID: "q1", Question: "Explain slices vs arrays", Section: "Go"}

	if q.IsAnswered || q.IsCorrect != nil {
		t.Fatalf("new question should start unanswered, got %+v", q)
	}

	if err := q.MarkCorrect(); err != nil {
		t.Fatalf("MarkCorrect: %v", err)
	}
	if !q.IsAnswered || q.IsCorrect == nil || !*q.IsCorrect {
		t.Fatalf("after MarkCorrect want answered+true, got answered=%v correct=%v", q.IsAnswered, q.IsCorrect)
	}

	if err := q.UndoAnswer(); err != nil {
		t.Fatalf("UndoAnswer: %v", err)
	}
	if q.IsAnswered || q.IsCorrect != nil {
		t.Fatalf("after undo want unanswered, got answered=%v correct=%v", q.IsAnswered, q.IsCorrect)
	}

	if err := q.MarkWrong(); err != nil {
		t.Fatalf("MarkWrong after undo: %v", err)
	}
	if !q.IsAnswered || q.IsCorrect == nil || *q.IsCorrect {
		t.Fatalf("after MarkWrong want answered+false, got answered=%v correct=%v", q.IsAnswered, q.IsCorrect)
	}
}

func TestQuestionRejectsDoubleJudgement(t *testing.T) {
	q := Question{ID: "q1"}
	if err := q.MarkWrong(); err != nil {
		t.Fatalf("MarkWrong: %v", err)
	}
	if err := q.MarkCorrect(); !errors.Is(err, ErrQuestionAnswered) {
		t.Fatalf("MarkCorrect on judged question: want ErrQuestionAnswered, got %v", err)
	}
	if q.IsCorrect == nil || *q.IsCorrect {
		t.Fatalf("failed re-mark must not change the verdict, got %v", q.IsCorrect)
	}
}

func TestUndoRequiresJudgement(t *testing.T) {
	q := Question{ID: "q1"}
	if err := q.UndoAnswer(); !errors.Is(err, ErrQuestionNotAnswered) {
		t.Fatalf("UndoAnswer on fresh question: want ErrQuestionNotAnswered, got %v", err)
	}
}

func TestCloneQuestionsDoesNotAlias(t *testing.T) {
	yes := true
	src := []Question{
		{ID: "a", IsAnswered: true, IsCorrect: &yes},
		{ID: "b"},
	}
	dst := CloneQuestions(src)

	if len(dst) != 2 {
		t.Fatalf("clone length = %d, want 2", len(dst))
	}
	*dst[0].IsCorrect = false
	dst[1].Question = "edited"

	if !*src[0].IsCorrect {
		t.Fatal("mutating the clone changed the source judgement")
	}
	if src[1].Question != "" {
		t.Fatal("mutating the clone changed the source text")
	}
	if CloneQuestions(nil) != nil {
		t.Fatal("clone of nil should stay nil")
	}
}

func TestCandidateQuestionByID(t *testing.T) {
	c := Candidate{Questions: []Question{{ID: "a"}, {ID: "b"}}}

	q := c.QuestionByID("b")
	if q == nil || q.ID != "b" {
		t.Fatalf("QuestionByID(b) = %+v", q)
	}
	// The pointer must reach the stored list, not a copy.
	q.Question = "updated"
	if c.Questions[1].Question != "updated" {
		t.Fatal("QuestionByID returned a detached copy")
	}
	if c.QuestionByID("zzz") != nil {
		t.Fatal("unknown id should return nil")
	}
}

func TestCandidateRemoveQuestion(t *testing.T) {
	c := Candidate{Questions: []Question{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	if !c.RemoveQuestion("b") {
		t.Fatal("RemoveQuestion(b) = false, want true")
	}
	if len(c.Questions) != 2 || c.Questions[0].ID != "a" || c.Questions[1].ID != "c" {
		t.Fatalf("after removal got %+v", c.Questions)
	}
	if c.RemoveQuestion("b") {
		t.Fatal("removing a missing id should report false")
	}
}

func TestExperienceValid(t *testing.T) {
	cases := []struct {
		exp  Experience
		want bool
	}{
		{Experience{Years: 0, Months: 0}, true},
		{Experience{Years: 12, Months: 11}, true},
		{Experience{Years: -1, Months: 0}, false},
		{Experience{Years: 1, Months: 12}, false},
		{Experience{Years: 1, Months: -3}, false},
	}
	for _, c := range cases {
		if got := c.exp.Valid(); got != c.want {
			t.Errorf("Valid(%+v) = %v, want %v", c.exp, got, c.want)
		}
	}
}

func TestStatusAndVerdictValid(t *testing.T) {
	for _, s := range []CandidateStatus{StatusNotInterviewed, StatusPassed, StatusRejected, StatusMaybe} {
		if !s.Valid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	if CandidateStatus("Hired").Valid() {
		t.Error("unknown status accepted")
	}
	for _, v := range []Verdict{VerdictPassed, VerdictRejected, VerdictMaybe} {
		if !v.Valid() {
			t.Errorf("verdict %q should be valid", v)
		}
	}
	if Verdict("Not Interviewed").Valid() {
		t.Error("pipeline state accepted as interview verdict")
	}
}

func TestPositionsFromNamesDedupes(t *testing.T) {
	got := PositionsFromNames([]string{"Backend", "Frontend", "Backend", "SRE"})
	want := []Position{{ID: 1, Name: "Backend"}, {ID: 2, Name: "Frontend"}, {ID: 3, Name: "SRE"}}

	if len(got) != len(want) {
		t.Fatalf("got %d positions, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if names := PositionNames(got); len(names) != 3 || names[0] != "Backend" {
		t.Errorf("PositionNames = %v", names)
	}
}
