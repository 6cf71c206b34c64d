package repository

import (
	"errors"

	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"gorm.io/gorm"
)

// Conn supplies the live database handle. The application database
// satisfies it once opened; transaction-scoped stores satisfy it with
// the transaction itself. Repositories resolve the handle per call, so
// an operation issued before the store is ready fails with
// ErrNotInitialized instead of a nil dereference.
type Conn interface {
	Gorm() (*gorm.DB, error)
}

// txConn pins every repository call inside fn to one transaction.
type txConn struct {
	tx *gorm.DB
}

func (c txConn) Gorm() (*gorm.DB, error) {
	return c.tx, nil
}

// Store bundles one repository per collection plus the flat key/value
// side store. InTransaction hands the callback a Store whose
// repositories all share a single transaction; returning an error rolls
// back every write made through it.
type Store interface {
	Candidates() CandidateRepository
	Templates() QuestionTemplateRepository
	Positions() PositionRepository
	JobDescriptions() JobDescriptionRepository
	Results() InterviewResultRepository
	Settings() SettingsRepository
	Flat() FlatRepository
	InTransaction(fn func(Store) error) error
}

type store struct {
	conn Conn
}

func NewStore(conn Conn) Store {
	return &store{conn: conn}
}

func (s *store) Candidates() CandidateRepository           { return NewCandidateRepository(s.conn) }
func (s *store) Templates() QuestionTemplateRepository     { return NewQuestionTemplateRepository(s.conn) }
func (s *store) Positions() PositionRepository             { return NewPositionRepository(s.conn) }
func (s *store) JobDescriptions() JobDescriptionRepository { return NewJobDescriptionRepository(s.conn) }
func (s *store) Results() InterviewResultRepository        { return NewInterviewResultRepository(s.conn) }
func (s *store) Settings() SettingsRepository              { return NewSettingsRepository(s.conn) }
func (s *store) Flat() FlatRepository                      { return NewFlatRepository(s.conn) }

func (s *store) InTransaction(fn func(Store) error) error {
	db, err := s.conn.Gorm()
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return fn(&store{conn: txConn{tx: tx}})
	})
}

// translate maps driver-level failures onto the application error
// vocabulary. Unknown errors pass through untouched.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.ErrDuplicateID
	}
	return err
}
