package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"github.com/ManishJangid007/hirely-sub000/internal/repository"
)

// fakeStore is an in-memory stand-in for the GORM-backed store. It
// honors the same contracts the repositories promise: duplicate ids on
// Create, ErrNotFound on lookups, no-op deletes, and transactional
// rollback through InTransaction. Individual operations can be made to
// fail by name via failWith.
type fakeStore struct {
	mu   sync.Mutex
	data fakeData
	fail map[string]error
}

type fakeData struct {
	Candidates map[string]model.Candidate
	Templates  map[string]model.QuestionTemplate
	Positions  []model.Position
	JDs        map[string]model.JobDescription
	Results    map[string]model.InterviewResult
	Settings   *model.AppSettings
	Flat       map[string]string
	Seq        int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		data: fakeData{
			Candidates: map[string]model.Candidate{},
			Templates:  map[string]model.QuestionTemplate{},
			JDs:        map[string]model.JobDescription{},
			Results:    map[string]model.InterviewResult{},
			Flat:       map[string]string{},
		},
		fail: map[string]error{},
	}
}

func (f *fakeStore) failWith(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[op] = err
}

func (f *fakeStore) errFor(op string) error {
	return f.fail[op]
}

// stamp gives fresh records strictly increasing creation times so
// ordering assertions are deterministic.
func (f *fakeStore) stamp(at *time.Time) {
	f.data.Seq++
	if at.IsZero() {
		*at = time.Unix(0, f.data.Seq*int64(time.Millisecond))
	}
}

func cloneJSON[T any](v T) T {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("fake store clone: %v", err))
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("fake store clone: %v", err))
	}
	return out
}

func (f *fakeStore) Candidates() repository.CandidateRepository           { return &fakeCandidateRepo{f} }
func (f *fakeStore) Templates() repository.QuestionTemplateRepository     { return &fakeTemplateRepo{f} }
func (f *fakeStore) Positions() repository.PositionRepository             { return &fakePositionRepo{f} }
func (f *fakeStore) JobDescriptions() repository.JobDescriptionRepository { return &fakeJDRepo{f} }
func (f *fakeStore) Results() repository.InterviewResultRepository        { return &fakeResultRepo{f} }
func (f *fakeStore) Settings() repository.SettingsRepository              { return &fakeSettingsRepo{f} }
func (f *fakeStore) Flat() repository.FlatRepository                      { return &fakeFlatRepo{f} }

func (f *fakeStore) InTransaction(fn func(repository.Store) error) error {
	f.mu.Lock()
	snapshot := cloneJSON(f.data)
	f.mu.Unlock()

	if err := fn(f); err != nil {
		f.mu.Lock()
		f.data = snapshot
		f.mu.Unlock()
		return err
	}
	return nil
}

// --- candidates ---

type fakeCandidateRepo struct{ f *fakeStore }

func (r *fakeCandidateRepo) Create(c *model.Candidate) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("candidates.Create"); err != nil {
		return err
	}
	if _, dup := r.f.data.Candidates[c.ID]; dup {
		return apperr.ErrDuplicateID
	}
	r.f.stamp(&c.CreatedAt)
	c.UpdatedAt = c.CreatedAt
	r.f.data.Candidates[c.ID] = cloneJSON(*c)
	return nil
}

func (r *fakeCandidateRepo) Save(c *model.Candidate) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("candidates.Save"); err != nil {
		return err
	}
	if existing, ok := r.f.data.Candidates[c.ID]; ok && c.CreatedAt.IsZero() {
		c.CreatedAt = existing.CreatedAt
	}
	r.f.stamp(&c.CreatedAt)
	c.UpdatedAt = time.Unix(0, r.f.data.Seq*int64(time.Millisecond))
	r.f.data.Candidates[c.ID] = cloneJSON(*c)
	return nil
}

func (r *fakeCandidateRepo) FindByID(id string) (*model.Candidate, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("candidates.FindByID"); err != nil {
		return nil, err
	}
	c, ok := r.f.data.Candidates[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := cloneJSON(c)
	return &out, nil
}

func (r *fakeCandidateRepo) FindAll() ([]model.Candidate, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("candidates.FindAll"); err != nil {
		return nil, err
	}
	out := make([]model.Candidate, 0, len(r.f.data.Candidates))
	for _, c := range r.f.data.Candidates {
		out = append(out, cloneJSON(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeCandidateRepo) Delete(id string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("candidates.Delete"); err != nil {
		return err
	}
	delete(r.f.data.Candidates, id)
	return nil
}

func (r *fakeCandidateRepo) DeleteAll() error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("candidates.DeleteAll"); err != nil {
		return err
	}
	r.f.data.Candidates = map[string]model.Candidate{}
	return nil
}

// --- question templates ---

type fakeTemplateRepo struct{ f *fakeStore }

func (r *fakeTemplateRepo) Create(t *model.QuestionTemplate) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("templates.Create"); err != nil {
		return err
	}
	if _, dup := r.f.data.Templates[t.ID]; dup {
		return apperr.ErrDuplicateID
	}
	r.f.stamp(&t.CreatedAt)
	t.UpdatedAt = t.CreatedAt
	r.f.data.Templates[t.ID] = cloneJSON(*t)
	return nil
}

func (r *fakeTemplateRepo) Save(t *model.QuestionTemplate) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("templates.Save"); err != nil {
		return err
	}
	if existing, ok := r.f.data.Templates[t.ID]; ok && t.CreatedAt.IsZero() {
		t.CreatedAt = existing.CreatedAt
	}
	r.f.stamp(&t.CreatedAt)
	r.f.data.Templates[t.ID] = cloneJSON(*t)
	return nil
}

func (r *fakeTemplateRepo) FindByID(id string) (*model.QuestionTemplate, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("templates.FindByID"); err != nil {
		return nil, err
	}
	t, ok := r.f.data.Templates[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := cloneJSON(t)
	return &out, nil
}

func (r *fakeTemplateRepo) FindAll() ([]model.QuestionTemplate, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("templates.FindAll"); err != nil {
		return nil, err
	}
	out := make([]model.QuestionTemplate, 0, len(r.f.data.Templates))
	for _, t := range r.f.data.Templates {
		out = append(out, cloneJSON(t))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeTemplateRepo) Delete(id string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("templates.Delete"); err != nil {
		return err
	}
	delete(r.f.data.Templates, id)
	return nil
}

func (r *fakeTemplateRepo) DeleteAll() error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	r.f.data.Templates = map[string]model.QuestionTemplate{}
	return nil
}

// --- positions ---

type fakePositionRepo struct{ f *fakeStore }

func (r *fakePositionRepo) FindAll() ([]model.Position, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("positions.FindAll"); err != nil {
		return nil, err
	}
	out := cloneJSON(r.f.data.Positions)
	if out == nil {
		out = []model.Position{}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePositionRepo) Create(p *model.Position) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("positions.Create"); err != nil {
		return err
	}
	for _, existing := range r.f.data.Positions {
		if existing.ID == p.ID {
			return apperr.ErrDuplicateID
		}
	}
	r.f.data.Positions = append(r.f.data.Positions, *p)
	return nil
}

func (r *fakePositionRepo) ReplaceAll(positions []model.Position) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("positions.ReplaceAll"); err != nil {
		return err
	}
	r.f.data.Positions = cloneJSON(positions)
	return nil
}

func (r *fakePositionRepo) DeleteAll() error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	r.f.data.Positions = nil
	return nil
}

// --- job descriptions ---

type fakeJDRepo struct{ f *fakeStore }

func (r *fakeJDRepo) Create(jd *model.JobDescription) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("jds.Create"); err != nil {
		return err
	}
	if _, dup := r.f.data.JDs[jd.ID]; dup {
		return apperr.ErrDuplicateID
	}
	r.f.stamp(&jd.CreatedAt)
	jd.UpdatedAt = jd.CreatedAt
	r.f.data.JDs[jd.ID] = cloneJSON(*jd)
	return nil
}

func (r *fakeJDRepo) Save(jd *model.JobDescription) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("jds.Save"); err != nil {
		return err
	}
	if existing, ok := r.f.data.JDs[jd.ID]; ok && jd.CreatedAt.IsZero() {
		jd.CreatedAt = existing.CreatedAt
	}
	r.f.stamp(&jd.CreatedAt)
	r.f.data.JDs[jd.ID] = cloneJSON(*jd)
	return nil
}

func (r *fakeJDRepo) FindByID(id string) (*model.JobDescription, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("jds.FindByID"); err != nil {
		return nil, err
	}
	jd, ok := r.f.data.JDs[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := cloneJSON(jd)
	return &out, nil
}

func (r *fakeJDRepo) FindAll() ([]model.JobDescription, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("jds.FindAll"); err != nil {
		return nil, err
	}
	out := make([]model.JobDescription, 0, len(r.f.data.JDs))
	for _, jd := range r.f.data.JDs {
		out = append(out, cloneJSON(jd))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeJDRepo) Delete(id string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	delete(r.f.data.JDs, id)
	return nil
}

func (r *fakeJDRepo) DeleteAll() error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	r.f.data.JDs = map[string]model.JobDescription{}
	return nil
}

// --- interview results ---

type fakeResultRepo struct{ f *fakeStore }

func (r *fakeResultRepo) Create(result *model.InterviewResult) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("results.Create"); err != nil {
		return err
	}
	if _, dup := r.f.data.Results[result.ID]; dup {
		return apperr.ErrDuplicateID
	}
	r.f.stamp(&result.CreatedAt)
	r.f.data.Results[result.ID] = cloneJSON(*result)
	return nil
}

func (r *fakeResultRepo) Save(result *model.InterviewResult) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("results.Save"); err != nil {
		return err
	}
	r.f.stamp(&result.CreatedAt)
	r.f.data.Results[result.ID] = cloneJSON(*result)
	return nil
}

func (r *fakeResultRepo) FindByID(id string) (*model.InterviewResult, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	result, ok := r.f.data.Results[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := cloneJSON(result)
	return &out, nil
}

func (r *fakeResultRepo) FindByCandidateID(candidateID string) (*model.InterviewResult, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("results.FindByCandidateID"); err != nil {
		return nil, err
	}
	for _, result := range r.f.data.Results {
		if result.CandidateID == candidateID {
			out := cloneJSON(result)
			return &out, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakeResultRepo) FindAll() ([]model.InterviewResult, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("results.FindAll"); err != nil {
		return nil, err
	}
	out := make([]model.InterviewResult, 0, len(r.f.data.Results))
	for _, result := range r.f.data.Results {
		out = append(out, cloneJSON(result))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeResultRepo) Delete(id string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	delete(r.f.data.Results, id)
	return nil
}

func (r *fakeResultRepo) DeleteByCandidateID(candidateID string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for id, result := range r.f.data.Results {
		if result.CandidateID == candidateID {
			delete(r.f.data.Results, id)
		}
	}
	return nil
}

func (r *fakeResultRepo) DeleteAll() error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	r.f.data.Results = map[string]model.InterviewResult{}
	return nil
}

// --- settings ---

type fakeSettingsRepo struct{ f *fakeStore }

func (r *fakeSettingsRepo) Get() (*model.AppSettings, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("settings.Get"); err != nil {
		return nil, err
	}
	if r.f.data.Settings == nil {
		return nil, apperr.ErrNotFound
	}
	out := cloneJSON(*r.f.data.Settings)
	return &out, nil
}

func (r *fakeSettingsRepo) Save(settings *model.AppSettings) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("settings.Save"); err != nil {
		return err
	}
	settings.ID = model.SettingsID
	saved := cloneJSON(*settings)
	r.f.data.Settings = &saved
	return nil
}

func (r *fakeSettingsRepo) Delete() error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	r.f.data.Settings = nil
	return nil
}

// --- flat key/value store ---

type fakeFlatRepo struct{ f *fakeStore }

func (r *fakeFlatRepo) Get(key string) (string, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("flat.Get"); err != nil {
		return "", err
	}
	value, ok := r.f.data.Flat[key]
	if !ok {
		return "", apperr.ErrNotFound
	}
	return value, nil
}

func (r *fakeFlatRepo) Set(key, value string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("flat.Set"); err != nil {
		return err
	}
	r.f.data.Flat[key] = value
	return nil
}

func (r *fakeFlatRepo) Delete(key string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("flat.Delete"); err != nil {
		return err
	}
	delete(r.f.data.Flat, key)
	return nil
}

func (r *fakeFlatRepo) Keys() ([]string, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("flat.Keys"); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(r.f.data.Flat))
	for key := range r.f.data.Flat {
		if key == model.BackupKey {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (r *fakeFlatRepo) DeleteAllExcept(keep ...string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if err := r.f.errFor("flat.DeleteAllExcept"); err != nil {
		return err
	}
	keepSet := make(map[string]bool, len(keep))
	for _, key := range keep {
		keepSet[key] = true
	}
	for key := range r.f.data.Flat {
		if !keepSet[key] {
			delete(r.f.data.Flat, key)
		}
	}
	return nil
}

// fakeScheduler records Schedule calls so tests can assert mutations
// request an automatic backup without waiting on timers.
type fakeScheduler struct {
	mu    sync.Mutex
	count int
}

func (s *fakeScheduler) Schedule() {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()
}

func (s *fakeScheduler) Close() {}

func (s *fakeScheduler) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
