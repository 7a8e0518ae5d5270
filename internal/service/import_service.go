package service

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gcertilab/certilab-api/internal/model"
	"github.com/gcertilab/certilab-api/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// importedQuestionPoints is the point value assigned to every question
// loaded from a spreadsheet. With ten questions per exam and a passing
// score of 12, a worker needs at least six correct answers.
const importedQuestionPoints = 2

// ImportService loads question banks and worker rosters from XLSX files.
//
// Bank sheet columns: question text, correct answer index (1-4), then the
// four answer texts. Worker sheet columns: first name, last name, DNI,
// area, position, site, birth date. The first row of each sheet is a
// header.
type ImportService interface {
	ImportQuestionBank(bankID uint, r io.Reader) (*model.QuestionBank, error)
	ImportWorkers(companyID uint, r io.Reader) ([]model.Worker, error)
}

type importService struct {
	bankRepo     repository.QuestionBankRepository
	questionRepo repository.QuestionRepository
	workerRepo   repository.WorkerRepository
	userRepo     repository.UserRepository
}

func NewImportService(
	bankRepo repository.QuestionBankRepository,
	questionRepo repository.QuestionRepository,
	workerRepo repository.WorkerRepository,
	userRepo repository.UserRepository,
) ImportService {
	return &importService{
		bankRepo:     bankRepo,
		questionRepo: questionRepo,
		workerRepo:   workerRepo,
		userRepo:     userRepo,
	}
}

func (s *importService) ImportQuestionBank(bankID uint, r io.Reader) (*model.QuestionBank, error) {
	bank, err := s.bankRepo.FindByID(bankID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question bank %d: %w", bankID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading question bank %d: %w", bankID, err)
	}

	rows, err := readSheetRows(r)
	if err != nil {
		return nil, err
	}

	imported := 0
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 6 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		correctIndex := strings.TrimSpace(row[1])
		question := model.Question{
			QuestionBankID: bank.ID,
			Text:           strings.TrimSpace(row[0]),
			Points:         importedQuestionPoints,
		}
		for n := 0; n < model.AnswersPerQuestion; n++ {
			question.Answers = append(question.Answers, model.Answer{
				Text:    strings.TrimSpace(row[2+n]),
				Correct: correctIndex == fmt.Sprintf("%d", n+1),
			})
		}

		if err := s.questionRepo.Create(&question); err != nil {
			return nil, fmt.Errorf("importing question at row %d: %w", i+1, err)
		}
		imported++
	}

	log.Info().Uint("bankID", bank.ID).Int("questions", imported).Msg("Question bank imported")
	return s.bankRepo.FindByID(bank.ID)
}

func (s *importService) ImportWorkers(companyID uint, r io.Reader) ([]model.Worker, error) {
	rows, err := readSheetRows(r)
	if err != nil {
		return nil, err
	}

	var workers []model.Worker
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 7 || hasEmptyCell(row[:7]) {
			continue
		}

		worker := model.Worker{
			CompanyID: companyID,
			FirstName: strings.TrimSpace(row[0]),
			LastName:  strings.TrimSpace(row[1]),
			DNI:       strings.TrimSpace(row[2]),
			Area:      strings.TrimSpace(row[3]),
			Position:  strings.TrimSpace(row[4]),
			Site:      strings.TrimSpace(row[5]),
		}
		if birth, err := time.Parse("2006-01-02", strings.TrimSpace(row[6])); err == nil {
			worker.BirthDate = &birth
		}

		if err := s.workerRepo.Create(&worker); err != nil {
			return nil, fmt.Errorf("importing worker at row %d: %w", i+1, err)
		}

		// Every imported worker gets a login; the DNI doubles as the
		// initial password, changed on first use.
		hash, err := bcrypt.GenerateFromPassword([]byte(worker.DNI), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing initial password for %s: %w", worker.DNI, err)
		}
		user := model.User{
			WorkerID:     &worker.ID,
			FirstName:    worker.FirstName,
			LastName:     worker.LastName,
			Username:     worker.DNI,
			PasswordHash: string(hash),
			Role:         model.RoleWorker,
			Active:       true,
		}
		if err := s.userRepo.Create(&user); err != nil {
			return nil, fmt.Errorf("creating user for worker %s: %w", worker.DNI, err)
		}

		workers = append(workers, worker)
	}

	log.Info().Uint("companyID", companyID).Int("workers", len(workers)).Msg("Worker roster imported")
	return workers, nil
}

func readSheetRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func hasEmptyCell(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) == "" {
			return true
		}
	}
	return false
}
