package service

import (
	"errors"
	"fmt"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/model"
	"github.com/gcertilab/certilab-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrInvalidQuestion is returned when an authored question does not carry
// exactly one correct answer.
var ErrInvalidQuestion = errors.New("a question must have exactly one correct answer")

// BankService authors question banks and their questions. Each class owns at
// most one bank; the exam engine only reads what this service writes.
type BankService interface {
	CreateBank(req dto.QuestionBankRequest) (*model.QuestionBank, error)
	GetBank(id uint) (*model.QuestionBank, error)
	GetBankByClass(classID uint) (*model.QuestionBank, error)
	DeleteBank(id uint) error

	CreateQuestion(req dto.QuestionRequest) (*model.Question, error)
	UpdateQuestion(id uint, req dto.QuestionRequest) (*model.Question, error)
	DeleteQuestion(id uint) error
}

type bankService struct {
	bankRepo     repository.QuestionBankRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	classRepo    repository.ClassRepository
}

func NewBankService(
	bankRepo repository.QuestionBankRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	classRepo repository.ClassRepository,
) BankService {
	return &bankService{
		bankRepo:     bankRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		classRepo:    classRepo,
	}
}

func (s *bankService) CreateBank(req dto.QuestionBankRequest) (*model.QuestionBank, error) {
	if _, err := s.classRepo.FindByID(req.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("class %d: %w", req.ClassID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading class %d: %w", req.ClassID, err)
	}

	var bank model.QuestionBank
	if err := copier.Copy(&bank, &req); err != nil {
		return nil, fmt.Errorf("mapping bank request: %w", err)
	}
	if err := s.bankRepo.Create(&bank); err != nil {
		return nil, fmt.Errorf("creating question bank for class %d: %w", req.ClassID, err)
	}

	log.Info().Uint("bankID", bank.ID).Uint("classID", req.ClassID).Msg("Question bank created")
	return &bank, nil
}

func (s *bankService) GetBank(id uint) (*model.QuestionBank, error) {
	bank, err := s.bankRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question bank %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading question bank %d: %w", id, err)
	}
	return bank, nil
}

func (s *bankService) GetBankByClass(classID uint) (*model.QuestionBank, error) {
	bank, err := s.bankRepo.FindByClassID(classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question bank of class %d: %w", classID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading question bank of class %d: %w", classID, err)
	}
	return bank, nil
}

func (s *bankService) DeleteBank(id uint) error {
	if _, err := s.GetBank(id); err != nil {
		return err
	}
	if err := s.bankRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting question bank %d: %w", id, err)
	}
	return nil
}

func (s *bankService) CreateQuestion(req dto.QuestionRequest) (*model.Question, error) {
	if err := validateAnswers(req.Answers); err != nil {
		return nil, err
	}
	if _, err := s.GetBank(req.QuestionBankID); err != nil {
		return nil, err
	}

	question := model.Question{
		QuestionBankID: req.QuestionBankID,
		Text:           req.Text,
		Comment:        req.Comment,
		Points:         req.Points,
	}
	for _, a := range req.Answers {
		question.Answers = append(question.Answers, model.Answer{Text: a.Text, Correct: a.Correct})
	}

	if err := s.questionRepo.Create(&question); err != nil {
		return nil, fmt.Errorf("creating question in bank %d: %w", req.QuestionBankID, err)
	}
	return &question, nil
}

// UpdateQuestion rewrites the question text and answers in place. Frozen
// attempt rows reference questions by ID, so grading always sees the current
// wording but the selection made at start time is preserved.
func (s *bankService) UpdateQuestion(id uint, req dto.QuestionRequest) (*model.Question, error) {
	if err := validateAnswers(req.Answers); err != nil {
		return nil, err
	}

	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading question %d: %w", id, err)
	}

	question.Text = req.Text
	question.Comment = req.Comment
	question.Points = req.Points
	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("updating question %d: %w", id, err)
	}

	for i, existing := range question.Answers {
		if i >= len(req.Answers) {
			break
		}
		existing.Text = req.Answers[i].Text
		existing.Correct = req.Answers[i].Correct
		if err := s.answerRepo.Update(&existing); err != nil {
			return nil, fmt.Errorf("updating answer %d of question %d: %w", existing.ID, id, err)
		}
		question.Answers[i] = existing
	}
	return question, nil
}

func (s *bankService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("loading question %d: %w", id, err)
	}
	if err := s.questionRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting question %d: %w", id, err)
	}
	return nil
}

func validateAnswers(answers []dto.AnswerAuthoringDTO) error {
	if len(answers) != model.AnswersPerQuestion {
		return fmt.Errorf("expected %d answers, got %d: %w", model.AnswersPerQuestion, len(answers), ErrInvalidQuestion)
	}
	correct := 0
	for _, a := range answers {
		if a.Correct {
			correct++
		}
	}
	if correct != 1 {
		return ErrInvalidQuestion
	}
	return nil
}
