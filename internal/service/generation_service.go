package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ManishJangid007/hirely-sub000/config"
	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/ManishJangid007/hirely-sub000/internal/dto"
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"github.com/ManishJangid007/hirely-sub000/internal/repository"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

const (
	generativeModelName = "gemini-1.5-flash"
	defaultGenTimeout   = 30 * time.Second
)

// GenerationService fronts the Gemini API for every AI-assisted
// feature. The API key is read per call, settings first and environment
// as fallback, so a key saved through the settings screen takes effect
// without a restart.
type GenerationService interface {
	GenerateContent(ctx context.Context, req dto.GenerateRequest) (*dto.GenerateResponse, error)
	DraftQuestions(ctx context.Context, req dto.DraftQuestionsRequest) (*dto.DraftQuestionsResponse, error)
	DraftJobDescription(ctx context.Context, req dto.DraftJobDescriptionRequest) (*dto.DraftTextResponse, error)
	DraftSummary(ctx context.Context, req dto.DraftSummaryRequest) (*dto.DraftTextResponse, error)
	// MatchScore rates a candidate against a stored job description,
	// returning a whole-number fit from 0 to 100.
	MatchScore(ctx context.Context, candidateID, jobDescriptionID string) (int, error)
	// TestConnection probes the API and records the outcome on the
	// settings record. An unreachable API is a negative result, not an
	// error.
	TestConnection(ctx context.Context) (*dto.TestConnectionResponse, error)
}

type generationService struct {
	cfg           *config.Config
	settingsRepo  repository.SettingsRepository
	candidateRepo repository.CandidateRepository
	resultRepo    repository.InterviewResultRepository
	jdRepo        repository.JobDescriptionRepository
	limiter       *rate.Limiter

	mu        sync.Mutex
	client    *genai.Client
	clientKey string
}

func NewGenerationService(
	cfg *config.Config,
	settingsRepo repository.SettingsRepository,
	candidateRepo repository.CandidateRepository,
	resultRepo repository.InterviewResultRepository,
	jdRepo repository.JobDescriptionRepository,
) GenerationService {
	return &generationService{
		cfg:           cfg,
		settingsRepo:  settingsRepo,
		candidateRepo: candidateRepo,
		resultRepo:    resultRepo,
		jdRepo:        jdRepo,
		limiter:       rate.NewLimiter(rate.Limit(2), 4),
	}
}

// apiKey resolves the key to use right now: the settings record wins,
// the environment fallback covers fresh installs.
func (s *generationService) apiKey() string {
	settings, err := s.settingsRepo.Get()
	if err == nil && settings.GeminiAPIKey != "" {
		return settings.GeminiAPIKey
	}
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		log.Warn().Err(err).Msg("Could not read settings for API key, using environment fallback")
	}
	return s.cfg.GeminiApiKey
}

// resolveModel returns a model bound to the current key, rebuilding the
// cached client only when the key changed.
func (s *generationService) resolveModel(ctx context.Context) (*genai.GenerativeModel, error) {
	key := s.apiKey()
	if key == "" {
		return nil, fmt.Errorf("%w: no Gemini API key configured", apperr.ErrGenerationUnavailable)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil || s.clientKey != key {
		if s.client != nil {
			s.client.Close()
		}
		client, err := genai.NewClient(ctx, option.WithAPIKey(key))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to initialize Gemini client: %v", apperr.ErrGenerationUnavailable, err)
		}
		s.client = client
		s.clientKey = key
	}
	return s.client.GenerativeModel(generativeModelName), nil
}

// generate runs one prompt through the model and returns the
// concatenated text parts of the first candidate.
func (s *generationService) generate(ctx context.Context, prompt string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = defaultGenTimeout
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrGenerationUnavailable, err)
	}
	genModel, err := s.resolveModel(ctx)
	if err != nil {
		return "", err
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := genModel.GenerateContent(callCtx, genai.Text(prompt))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() != nil {
			log.Error().Err(err).Dur("timeout", timeout).Msg("Gemini request timed out")
			return "", fmt.Errorf("%w: request timed out after %s", apperr.ErrGenerationUnavailable, timeout)
		}
		log.Error().Err(err).Msg("Gemini API error")
		return "", fmt.Errorf("%w: %v", apperr.ErrGenerationUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response")
		return "", fmt.Errorf("%w: empty response", apperr.ErrGenerationUnavailable)
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: response carried no text", apperr.ErrGenerationUnavailable)
	}
	return sb.String(), nil
}

func (s *generationService) GenerateContent(ctx context.Context, req dto.GenerateRequest) (*dto.GenerateResponse, error) {
	timeout := time.Duration(req.TimeoutMs) * time.Millisecond
	text, err := s.generate(ctx, req.Prompt, timeout)
	if err != nil {
		return nil, err
	}
	return &dto.GenerateResponse{
		Candidates: []dto.GenerateCandidate{
			{Content: dto.GenerateContent{Parts: []dto.GeneratePart{{Text: text}}}},
		},
	}, nil
}

func (s *generationService) DraftQuestions(ctx context.Context, req dto.DraftQuestionsRequest) (*dto.DraftQuestionsResponse, error) {
	count := req.Count
	if count <= 0 {
		count = 5
	}

	var sb strings.Builder
	sb.WriteString("You are an experienced technical interviewer.\n")
	fmt.Fprintf(&sb, "Write %d concise interview questions for a candidate applying to a %q position.\n", count, req.Position)
	if req.Section != "" {
		fmt.Fprintf(&sb, "All questions must belong to the topic %q.\n", req.Section)
	}
	sb.WriteString("Output exactly one question per line with no numbering, no bullets and no commentary.\n")

	text, err := s.generate(ctx, sb.String(), defaultGenTimeout)
	if err != nil {
		return nil, err
	}

	questions := make([]string, 0, count)
	for _, line := range strings.Split(text, "\n") {
		line = stripListMarker(line)
		if line == "" {
			continue
		}
		questions = append(questions, line)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: response contained no questions", apperr.ErrGenerationUnavailable)
	}
	return &dto.DraftQuestionsResponse{Questions: questions}, nil
}

func (s *generationService) DraftJobDescription(ctx context.Context, req dto.DraftJobDescriptionRequest) (*dto.DraftTextResponse, error) {
	var sb strings.Builder
	sb.WriteString("You are a recruiter writing a job posting.\n")
	fmt.Fprintf(&sb, "Write a complete job description for the role %q.\n", req.Title)
	if len(req.Skills) > 0 {
		fmt.Fprintf(&sb, "Required skills: %s.\n", strings.Join(req.Skills, ", "))
	}
	if req.ExperienceYears != nil {
		fmt.Fprintf(&sb, "Expected experience: about %d years.\n", *req.ExperienceYears)
	}
	sb.WriteString("Structure it with a short role summary, responsibilities and requirements. Plain text only.\n")

	text, err := s.generate(ctx, sb.String(), defaultGenTimeout)
	if err != nil {
		return nil, err
	}
	return &dto.DraftTextResponse{Text: strings.TrimSpace(text)}, nil
}

func (s *generationService) DraftSummary(ctx context.Context, req dto.DraftSummaryRequest) (*dto.DraftTextResponse, error) {
	candidate, err := s.candidateRepo.FindByID(req.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("candidate %s: %w", req.CandidateID, err)
	}

	var sb strings.Builder
	sb.WriteString("You are assisting a hiring committee.\n")
	sb.WriteString("Write a short hiring summary (3-5 sentences) of this interview.\n\n")
	fmt.Fprintf(&sb, "Candidate: %s\n", candidate.FullName)
	fmt.Fprintf(&sb, "Position: %s\n", candidate.Position)
	fmt.Fprintf(&sb, "Experience: %d years %d months\n", candidate.Experience.Years, candidate.Experience.Months)
	fmt.Fprintf(&sb, "Pipeline status: %s\n", candidate.Status)

	answered, correct := 0, 0
	for _, q := range candidate.Questions {
		if q.IsAnswered {
			answered++
			if q.IsCorrect != nil && *q.IsCorrect {
				correct++
			}
		}
	}
	fmt.Fprintf(&sb, "Questions asked: %d, judged: %d, judged correct: %d\n", len(candidate.Questions), answered, correct)

	if len(candidate.Questions) > 0 {
		sb.WriteString("\nQuestion record:\n")
		for _, q := range candidate.Questions {
			verdict := "unanswered"
			if q.IsAnswered {
				verdict = "wrong"
				if q.IsCorrect != nil && *q.IsCorrect {
					verdict = "correct"
				}
			}
			fmt.Fprintf(&sb, "- [%s] (%s) %s\n", verdict, q.Section, q.Question)
		}
	}
	if result, err := s.resultRepo.FindByCandidateID(req.CandidateID); err == nil {
		fmt.Fprintf(&sb, "\nRecorded outcome: %s\nInterviewer notes: %s\n", result.Result, result.Description)
	}
	sb.WriteString("\nBe factual and base the summary only on the record above.\n")

	text, err := s.generate(ctx, sb.String(), defaultGenTimeout)
	if err != nil {
		return nil, err
	}
	return &dto.DraftTextResponse{Text: strings.TrimSpace(text)}, nil
}

func (s *generationService) MatchScore(ctx context.Context, candidateID, jobDescriptionID string) (int, error) {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return 0, fmt.Errorf("candidate %s: %w", candidateID, err)
	}
	jd, err := s.jdRepo.FindByID(jobDescriptionID)
	if err != nil {
		return 0, fmt.Errorf("job description %s: %w", jobDescriptionID, err)
	}

	var sb strings.Builder
	sb.WriteString("You are screening a candidate against a job description.\n")
	sb.WriteString("Rate the overall fit as a whole number from 0 (no fit) to 100 (perfect fit).\n\n")
	fmt.Fprintf(&sb, "Candidate: %s\nApplied position: %s\nExperience: %d years %d months\n\n",
		candidate.FullName, candidate.Position, candidate.Experience.Years, candidate.Experience.Months)
	fmt.Fprintf(&sb, "Job title: %s\nJob description:\n%s\n\n", jd.Title, jd.Description)
	sb.WriteString("Respond with exactly one line in the format:\nScore: <number>\n")

	text, err := s.generate(ctx, sb.String(), defaultGenTimeout)
	if err != nil {
		return 0, err
	}
	score, err := parseMatchScore(text)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", text).Msg("Could not parse match score from Gemini response")
		return 0, fmt.Errorf("%w: %v", apperr.ErrGenerationUnavailable, err)
	}
	return score, nil
}

func (s *generationService) TestConnection(ctx context.Context) (*dto.TestConnectionResponse, error) {
	_, genErr := s.generate(ctx, "Reply with the single word OK.", 15*time.Second)
	connected := genErr == nil

	settings, err := s.settingsRepo.Get()
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		defaults := model.DefaultSettings()
		settings = &defaults
	}
	settings.GeminiConnected = connected
	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, err
	}

	resp := &dto.TestConnectionResponse{GeminiConnected: connected}
	if genErr != nil {
		resp.Message = genErr.Error()
		log.Warn().Err(genErr).Msg("Gemini connection test failed")
	}
	return resp, nil
}

// stripListMarker removes leading bullets or "1." / "2)" numbering the
// model adds despite instructions.
func stripListMarker(line string) string {
	line = strings.TrimSpace(line)
	for _, marker := range []string{"-", "*", "•"} {
		line = strings.TrimSpace(strings.TrimPrefix(line, marker))
	}
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		line = strings.TrimSpace(line[i+1:])
	}
	return line
}

// parseMatchScore extracts the number after the "Score:" prefix,
// falling back to the response's leading token, and clamps it into
// 0..100.
func parseMatchScore(raw string) (int, error) {
	text := raw
	if idx := strings.Index(raw, "Score:"); idx >= 0 {
		text = raw[idx+len("Score:"):]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, fmt.Errorf("response does not contain a score. Raw: %s", raw)
	}

	token := strings.Trim(fields[0], ".,%")
	// Tolerate "85/100".
	if idx := strings.Index(token, "/"); idx > 0 {
		token = token[:idx]
	}
	score, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("could not parse score value (%q) from response", fields[0])
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, nil
}
