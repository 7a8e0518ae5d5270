package service

import (
	"errors"
	"fmt"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/model"
	"github.com/gcertilab/certilab-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	// ExamQuestionCount is the number of questions drawn per attempt. Banks
	// smaller than this yield an exam over the whole pool.
	ExamQuestionCount = 10

	// PassingScore is the fixed approval threshold on the scale defined by
	// the per-question point values.
	PassingScore = 12.0
)

// ExamService runs the randomized exam lifecycle: starting or resuming an
// attempt, grading it once, and reading the latest attempt of an enrollment.
type ExamService interface {
	StartOrContinueAttempt(enrollmentID uint) (*dto.ExamAttemptDTO, error)
	GradeAttempt(req dto.SolveExamRequest) (*dto.ExamAttemptDTO, error)
	LatestAttempt(enrollmentID uint) (*dto.ExamAttemptDTO, error)
	MarkCertificateDownloaded(attemptID uint) error
}

type examService struct {
	enrollmentRepo repository.EnrollmentRepository
	bankRepo       repository.QuestionBankRepository
	questionRepo   repository.QuestionRepository
	answerRepo     repository.AnswerRepository
	attemptRepo    repository.ExamAttemptRepository
	issuer         CertificateIssuer
	clock          Clock
	sampler        Sampler
}

func NewExamService(
	enrollmentRepo repository.EnrollmentRepository,
	bankRepo repository.QuestionBankRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	attemptRepo repository.ExamAttemptRepository,
	issuer CertificateIssuer,
	clock Clock,
	sampler Sampler,
) ExamService {
	return &examService{
		enrollmentRepo: enrollmentRepo,
		bankRepo:       bankRepo,
		questionRepo:   questionRepo,
		answerRepo:     answerRepo,
		attemptRepo:    attemptRepo,
		issuer:         issuer,
		clock:          clock,
		sampler:        sampler,
	}
}

// StartOrContinueAttempt hands back the enrollment's pending attempt when
// one exists, otherwise creates the next one with a fresh random question
// set. Repeated calls while an attempt is unsubmitted never consume an
// attempt slot or reselect questions.
func (s *examService) StartOrContinueAttempt(enrollmentID uint) (*dto.ExamAttemptDTO, error) {
	enrollment, err := s.enrollmentRepo.FindByIDWithClassAndWorker(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("enrollment %d: %w", enrollmentID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading enrollment %d: %w", enrollmentID, err)
	}

	bank, err := s.bankRepo.FindByClassIDWithQuestions(enrollment.ClassID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no question bank for this class: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("loading question bank for class %d: %w", enrollment.ClassID, err)
	}

	latest, err := s.attemptRepo.FindLatestByEnrollment(enrollmentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("loading latest attempt for enrollment %d: %w", enrollmentID, err)
	}
	if latest != nil && latest.Outcome == model.OutcomePending {
		return s.resumeAttempt(latest.ID, enrollment.Class.Type)
	}

	count, err := s.attemptRepo.CountByEnrollment(enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("counting attempts for enrollment %d: %w", enrollmentID, err)
	}
	if count >= enrollment.MaxAttempts {
		return nil, fmt.Errorf("enrollment %d used %d of %d attempts: %w",
			enrollmentID, count, enrollment.MaxAttempts, ErrAttemptsExhausted)
	}

	selected := s.selectQuestions(bank.Questions)

	attempt := model.ExamAttempt{
		EnrollmentID:  enrollmentID,
		AttemptNumber: count + 1,
		TakenAt:       s.clock.Now(),
		Outcome:       model.OutcomePending,
	}
	for _, q := range selected {
		attempt.Questions = append(attempt.Questions, model.ExamAttemptQuestion{QuestionID: q.ID})
	}

	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("enrollmentID", enrollmentID).Msg("StartOrContinueAttempt: failed to persist attempt")
		return nil, fmt.Errorf("creating attempt for enrollment %d: %w", enrollmentID, err)
	}

	log.Info().
		Uint("enrollmentID", enrollmentID).
		Uint("attemptID", attempt.ID).
		Int("attemptNumber", attempt.AttemptNumber).
		Int("questionCount", len(selected)).
		Msg("Exam attempt created")

	return buildAttemptDTO(&attempt, enrollment.Class.Type, selected), nil
}

// resumeAttempt rebuilds the question list from the frozen rows of a still
// pending attempt. Pure read; selection order is preserved.
func (s *examService) resumeAttempt(attemptID uint, classType string) (*dto.ExamAttemptDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithQuestions(attemptID)
	if err != nil {
		return nil, fmt.Errorf("reloading pending attempt %d: %w", attemptID, err)
	}

	ids := make([]uint, 0, len(attempt.Questions))
	for _, aq := range attempt.Questions {
		ids = append(ids, aq.QuestionID)
	}
	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("loading questions of attempt %d: %w", attemptID, err)
	}
	byID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	ordered := make([]model.Question, 0, len(attempt.Questions))
	for _, aq := range attempt.Questions {
		if q, ok := byID[aq.QuestionID]; ok {
			ordered = append(ordered, q)
		}
	}

	log.Info().Uint("attemptID", attempt.ID).Msg("Resuming pending exam attempt")
	return buildAttemptDTO(attempt, classType, ordered), nil
}

// selectQuestions draws min(ExamQuestionCount, pool) distinct questions by
// sampling ordinal positions of the pool without replacement.
func (s *examService) selectQuestions(pool []model.Question) []model.Question {
	positions := s.sampler.Sample(len(pool), ExamQuestionCount)
	selected := make([]model.Question, 0, len(positions))
	for _, pos := range positions {
		selected = append(selected, pool[pos])
	}
	return selected
}

// GradeAttempt scores the attempt against the stored correctness flags and
// moves it to its terminal outcome. Strictly one-shot: a terminal attempt
// is never regraded.
func (s *examService) GradeAttempt(req dto.SolveExamRequest) (*dto.ExamAttemptDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithQuestions(req.ExamAttemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("attempt %d: %w", req.ExamAttemptID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading attempt %d: %w", req.ExamAttemptID, err)
	}
	if attempt.Outcome.Terminal() {
		return nil, fmt.Errorf("attempt %d is %s: %w", attempt.ID, attempt.Outcome, ErrAlreadyGraded)
	}

	enrollment, err := s.enrollmentRepo.FindByIDWithClassAndWorker(attempt.EnrollmentID)
	if err != nil {
		return nil, fmt.Errorf("loading enrollment %d: %w", attempt.EnrollmentID, err)
	}

	ids := make([]uint, 0, len(attempt.Questions))
	for _, aq := range attempt.Questions {
		ids = append(ids, aq.QuestionID)
	}
	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("loading questions of attempt %d: %w", attempt.ID, err)
	}
	pointsByQuestion := make(map[uint]float64, len(questions))
	for _, q := range questions {
		pointsByQuestion[q.ID] = q.Points
	}

	var correct, incorrect int
	var score float64

	// First match wins per frozen question; submissions for question IDs
	// outside the frozen set are ignored.
	for i := range attempt.Questions {
		aq := &attempt.Questions[i]

		var chosen *uint
		for _, pair := range req.Answers {
			if pair.QuestionID == aq.QuestionID {
				answerID := pair.AnswerID
				chosen = &answerID
				break
			}
		}

		if chosen == nil {
			incorrect++
			continue
		}

		aq.ChosenAnswerID = chosen
		if err := s.attemptRepo.SaveQuestion(aq); err != nil {
			return nil, fmt.Errorf("recording answer for attempt %d question %d: %w", attempt.ID, aq.QuestionID, err)
		}

		answer, err := s.answerRepo.FindByID(*chosen)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				incorrect++
				continue
			}
			return nil, fmt.Errorf("loading answer %d: %w", *chosen, err)
		}
		if answer.Correct {
			correct++
			score += pointsByQuestion[aq.QuestionID]
		} else {
			incorrect++
		}
	}

	attempt.CorrectCount = correct
	attempt.IncorrectCount = incorrect
	attempt.Score = score
	if score >= PassingScore {
		attempt.Outcome = model.OutcomeApproved
	} else {
		attempt.Outcome = model.OutcomeRejected
	}

	// The grade is authoritative on its own; it is committed before any
	// certificate work so a render failure cannot roll it back.
	if err := s.attemptRepo.Update(attempt); err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("GradeAttempt: failed to persist graded attempt")
		return nil, fmt.Errorf("persisting graded attempt %d: %w", attempt.ID, err)
	}

	log.Info().
		Uint("attemptID", attempt.ID).
		Str("outcome", attempt.Outcome.String()).
		Int("correct", correct).
		Int("incorrect", incorrect).
		Float64("score", score).
		Msg("Exam attempt graded")

	if attempt.Outcome == model.OutcomeApproved {
		url, renderErr := s.issuer.Render(enrollment.Worker.FullName(), enrollment.Worker.DNI, enrollment.Class.Title, enrollment.ClassID, s.clock.Now())
		if renderErr != nil {
			// The missing certificate is retried by the background job;
			// the grade stands either way.
			log.Error().Err(renderErr).Uint("attemptID", attempt.ID).Msg("GradeAttempt: certificate rendering failed")
		} else {
			attempt.CertificateURL = &url
			if err := s.attemptRepo.Update(attempt); err != nil {
				log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("GradeAttempt: failed to record certificate reference")
			}
		}
	}

	return buildAttemptDTO(attempt, enrollment.Class.Type, nil), nil
}

// LatestAttempt returns the newest attempt of an enrollment with its class
// type tag, or ErrNotFound when the worker has never started one.
func (s *examService) LatestAttempt(enrollmentID uint) (*dto.ExamAttemptDTO, error) {
	enrollment, err := s.enrollmentRepo.FindByIDWithClassAndWorker(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("enrollment %d: %w", enrollmentID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading enrollment %d: %w", enrollmentID, err)
	}

	attempt, err := s.attemptRepo.FindLatestByEnrollment(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no attempts for enrollment %d: %w", enrollmentID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading latest attempt for enrollment %d: %w", enrollmentID, err)
	}

	return buildAttemptDTO(attempt, enrollment.Class.Type, nil), nil
}

// MarkCertificateDownloaded records that the worker fetched the certificate
// of an approved attempt.
func (s *examService) MarkCertificateDownloaded(attemptID uint) error {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("attempt %d: %w", attemptID, ErrNotFound)
		}
		return fmt.Errorf("loading attempt %d: %w", attemptID, err)
	}
	if attempt.Outcome != model.OutcomeApproved || attempt.CertificateURL == nil {
		return fmt.Errorf("attempt %d has no certificate: %w", attemptID, ErrNotFound)
	}
	attempt.CertificateDownloaded = true
	if err := s.attemptRepo.Update(attempt); err != nil {
		return fmt.Errorf("marking certificate of attempt %d downloaded: %w", attemptID, err)
	}
	return nil
}

// buildAttemptDTO assembles the response shape shared by create, resume and
// grade. Candidate answers are copied without their correctness flag.
func buildAttemptDTO(attempt *model.ExamAttempt, classType string, questions []model.Question) *dto.ExamAttemptDTO {
	resp := dto.ExamAttemptDTO{
		ID:                    attempt.ID,
		EnrollmentID:          attempt.EnrollmentID,
		AttemptNumber:         attempt.AttemptNumber,
		TakenAt:               attempt.TakenAt,
		Outcome:               attempt.Outcome.String(),
		CorrectCount:          attempt.CorrectCount,
		IncorrectCount:        attempt.IncorrectCount,
		Score:                 attempt.Score,
		CertificateURL:        attempt.CertificateURL,
		CertificateDownloaded: attempt.CertificateDownloaded,
		ClassType:             classType,
	}

	for _, q := range questions {
		qDTO := dto.ExamQuestionDTO{
			ID:     q.ID,
			Text:   q.Text,
			Points: q.Points,
		}
		for _, a := range q.Answers {
			qDTO.Answers = append(qDTO.Answers, dto.ExamAnswerDTO{ID: a.ID, Text: a.Text})
		}
		resp.Questions = append(resp.Questions, qDTO)
	}

	return &resp
}
