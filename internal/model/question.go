package model

import "errors"

var (
	// ErrQuestionAnswered is returned by MarkCorrect/MarkWrong when the
	// question already holds a judgement. Undo first, then re-mark.
	ErrQuestionAnswered = errors.New("question already answered")

	// ErrQuestionNotAnswered is returned by UndoAnswer when there is no
	// judgement to withdraw.
	ErrQuestionNotAnswered = errors.New("question not answered yet")
)

// Question is a single interview question owned by a candidate or a
// template section. Judgement state lives in IsCorrect and IsAnswered:
// unanswered means IsAnswered false and IsCorrect nil, judged means
// IsAnswered true and IsCorrect pointing at the verdict. Questions are
// stored inline as jsonb on their owner, never as their own table.
type Question struct {
	ID             string `json:"id"`
	Question       string `json:"question"`
	Section        string `json:"section"`
	ExpectedAnswer string `json:"expectedAnswer,omitempty"`
	IsCorrect      *bool  `json:"isCorrect,omitempty"`
	IsAnswered     bool   `json:"isAnswered"`
}

// MarkCorrect records a correct judgement on an unanswered question.
func (q *Question) MarkCorrect() error {
	return q.mark(true)
}

// MarkWrong records a wrong judgement on an unanswered question.
func (q *Question) MarkWrong() error {
	return q.mark(false)
}

func (q *Question) mark(correct bool) error {
	if q.IsAnswered {
		return ErrQuestionAnswered
	}
	q.IsCorrect = &correct
	q.IsAnswered = true
	return nil
}

// UndoAnswer withdraws a judgement and returns the question to the
// unanswered state. This is the only transition out of correct/wrong.
func (q *Question) UndoAnswer() error {
	if !q.IsAnswered {
		return ErrQuestionNotAnswered
	}
	q.IsCorrect = nil
	q.IsAnswered = false
	return nil
}

// CloneQuestions deep-copies a question list, including the judgement
// pointer, so result snapshots never alias live candidate state.
func CloneQuestions(qs []Question) []Question {
	if qs == nil {
		return nil
	}
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q
		if q.IsCorrect != nil {
			v := *q.IsCorrect
			out[i].IsCorrect = &v
		}
	}
	return out
}
