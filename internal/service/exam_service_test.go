package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/model"
	"github.com/gcertilab/certilab-api/internal/service"
)

type examFixture struct {
	enrollments *fakeEnrollmentRepo
	banks       *fakeBankRepo
	questions   *fakeQuestionRepo
	answers     *fakeAnswerRepo
	attempts    *fakeAttemptRepo
	issuer      *fakeIssuer
	svc         service.ExamService
}

// newExamFixture wires the exam engine against in-memory repositories: one
// enrollment (ID 1) in a training class (ID 1) whose bank holds questionCount
// questions worth 2 points each, the first of the four answers being correct.
func newExamFixture(t *testing.T, questionCount, maxAttempts int) *examFixture {
	t.Helper()

	f := &examFixture{
		enrollments: newFakeEnrollmentRepo(),
		banks:       newFakeBankRepo(),
		questions:   newFakeQuestionRepo(),
		answers:     newFakeAnswerRepo(),
		attempts:    newFakeAttemptRepo(),
		issuer:      &fakeIssuer{url: "http://localhost:8080/certificates/12345678-1.pdf"},
	}

	enrollment := &model.Enrollment{
		ClassID: 1,
		Class: model.Class{
			ID:    1,
			Title: "Work at Height Safety",
			Type:  model.ClassTypeTraining,
		},
		WorkerID: 1,
		Worker: model.Worker{
			ID:        1,
			FirstName: "Rosa",
			LastName:  "Quispe",
			DNI:       "12345678",
		},
		MaxAttempts: maxAttempts,
	}
	if err := f.enrollments.Create(enrollment); err != nil {
		t.Fatalf("seeding enrollment: %v", err)
	}

	bank := &model.QuestionBank{ClassID: 1, Name: "Safety bank"}
	for i := 0; i < questionCount; i++ {
		q := &model.Question{
			QuestionBankID: 1,
			Text:           "question",
			Points:         2,
		}
		for n := 0; n < model.AnswersPerQuestion; n++ {
			q.Answers = append(q.Answers, model.Answer{Text: "answer", Correct: n == 0})
		}
		if err := f.questions.Create(q); err != nil {
			t.Fatalf("seeding question: %v", err)
		}
		for _, a := range q.Answers {
			f.answers.answers[a.ID] = a
		}
		bank.Questions = append(bank.Questions, *q)
	}
	if err := f.banks.Create(bank); err != nil {
		t.Fatalf("seeding bank: %v", err)
	}

	f.svc = service.NewExamService(
		f.enrollments, f.banks, f.questions, f.answers, f.attempts,
		f.issuer,
		fixedClock{t: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)},
		firstKSampler{},
	)
	return f
}

// correctAnswerID matches the ID scheme of fakeQuestionRepo.Create.
func correctAnswerID(questionID uint) uint { return questionID*10 + 1 }
func wrongAnswerID(questionID uint) uint   { return questionID*10 + 2 }

// solveRequest answers the first correctCount frozen questions correctly and
// the rest incorrectly.
func solveRequest(attempt *dto.ExamAttemptDTO, correctCount int) dto.SolveExamRequest {
	req := dto.SolveExamRequest{ExamAttemptID: attempt.ID}
	for i, q := range attempt.Questions {
		answerID := wrongAnswerID(q.ID)
		if i < correctCount {
			answerID = correctAnswerID(q.ID)
		}
		req.Answers = append(req.Answers, dto.ChosenAnswerDTO{QuestionID: q.ID, AnswerID: answerID})
	}
	return req
}

func TestStartOrContinueAttemptDrawsTenDistinctQuestions(t *testing.T) {
	f := newExamFixture(t, 15, 3)

	attempt, err := f.svc.StartOrContinueAttempt(1)
	if err != nil {
		t.Fatalf("StartOrContinueAttempt: %v", err)
	}

	if attempt.AttemptNumber != 1 {
		t.Errorf("attempt number = %d, want 1", attempt.AttemptNumber)
	}
	if attempt.Outcome != "pending" {
		t.Errorf("outcome = %q, want pending", attempt.Outcome)
	}
	if attempt.ClassType != model.ClassTypeTraining {
		t.Errorf("class type = %q, want %q", attempt.ClassType, model.ClassTypeTraining)
	}
	if len(attempt.Questions) != service.ExamQuestionCount {
		t.Fatalf("question count = %d, want %d", len(attempt.Questions), service.ExamQuestionCount)
	}

	seen := map[uint]bool{}
	for _, q := range attempt.Questions {
		if seen[q.ID] {
			t.Errorf("question %d selected twice", q.ID)
		}
		seen[q.ID] = true
		if _, err := f.questions.FindByID(q.ID); err != nil {
			t.Errorf("question %d is not in the bank", q.ID)
		}
		if len(q.Answers) != model.AnswersPerQuestion {
			t.Errorf("question %d has %d answers, want %d", q.ID, len(q.Answers), model.AnswersPerQuestion)
		}
	}
}

func TestStartOrContinueAttemptResumesPending(t *testing.T) {
	f := newExamFixture(t, 15, 3)

	first, err := f.svc.StartOrContinueAttempt(1)
	if err != nil {
		t.Fatalf("first start: %v", err)
	}
	second, err := f.svc.StartOrContinueAttempt(1)
	if err != nil {
		t.Fatalf("second start: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("resume returned a different attempt: %d vs %d", first.ID, second.ID)
	}
	if len(first.Questions) != len(second.Questions) {
		t.Fatalf("resumed question count = %d, want %d", len(second.Questions), len(first.Questions))
	}
	for i := range first.Questions {
		if first.Questions[i].ID != second.Questions[i].ID {
			t.Errorf("question %d reselected: %d vs %d", i, first.Questions[i].ID, second.Questions[i].ID)
		}
	}

	count, _ := f.attempts.CountByEnrollment(1)
	if count != 1 {
		t.Errorf("resume consumed an attempt slot: count = %d, want 1", count)
	}
}

func TestStartOrContinueAttemptClampsToSmallPool(t *testing.T) {
	f := newExamFixture(t, 4, 3)

	attempt, err := f.svc.StartOrContinueAttempt(1)
	if err != nil {
		t.Fatalf("StartOrContinueAttempt: %v", err)
	}
	if len(attempt.Questions) != 4 {
		t.Errorf("question count = %d, want the whole pool of 4", len(attempt.Questions))
	}
}

func TestStartOrContinueAttemptExhaustsAllowance(t *testing.T) {
	f := newExamFixture(t, 15, 1)

	attempt, err := f.svc.StartOrContinueAttempt(1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.svc.GradeAttempt(solveRequest(attempt, 0)); err != nil {
		t.Fatalf("grade: %v", err)
	}

	_, err = f.svc.StartOrContinueAttempt(1)
	if !errors.Is(err, service.ErrAttemptsExhausted) {
		t.Fatalf("err = %v, want ErrAttemptsExhausted", err)
	}
}

func TestStartOrContinueAttemptWithoutBank(t *testing.T) {
	f := newExamFixture(t, 15, 3)

	bankless := &model.Enrollment{
		ClassID:     2,
		Class:       model.Class{ID: 2, Title: "Orphan class", Type: model.ClassTypeInduction},
		WorkerID:    1,
		MaxAttempts: 3,
	}
	if err := f.enrollments.Create(bankless); err != nil {
		t.Fatalf("seeding enrollment: %v", err)
	}

	_, err := f.svc.StartOrContinueAttempt(bankless.ID)
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStartOrContinueAttemptUnknownEnrollment(t *testing.T) {
	f := newExamFixture(t, 15, 3)

	_, err := f.svc.StartOrContinueAttempt(99)
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGradeAttemptApprovesAtThreshold(t *testing.T) {
	f := newExamFixture(t, 15, 3)

	attempt, err := f.svc.StartOrContinueAttempt(1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Six correct answers at two points each lands exactly on the passing
	// score of twelve.
	graded, err := f.svc.GradeAttempt(solveRequest(attempt, 6))
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	if graded.Outcome != "approved" {
		t.Errorf("outcome = %q, want approved", graded.Outcome)
	}
	if graded.Score != 12 {
		t.Errorf("score = %v, want 12", graded.Score)
	}
	if graded.CorrectCount != 6 || graded.IncorrectCount != 4 {
		t.Errorf("counts = %d/%d, want 6/4", graded.CorrectCount, graded.IncorrectCount)
	}
	if f.issuer.calls != 1 {
		t.Errorf("issuer calls = %d, want 1", f.issuer.calls)
	}
	if graded.CertificateURL == nil || *graded.CertificateURL != f.issuer.url {
		t.Errorf("certificate URL = %v, want %q", graded.CertificateURL, f.issuer.url)
	}
}

func TestGradeAttemptRejectsBelowThreshold(t *testing.T) {
	f := newExamFixture(t, 15, 3)

	attempt, err := f.svc.StartOrContinueAttempt(1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	graded, err := f.svc.GradeAttempt(solveRequest(attempt, 5))
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	if graded.Outcome != "rejected" {
		t.Errorf("outcome = %q, want rejected", graded.Outcome)
	}
	if graded.Score != 10 {
		t.Errorf("score = %v, want 10", graded.Score)
	}
	if f.issuer.calls != 0 {
		t.Errorf("issuer calls = %d, want 0 for a rejected attempt", f.issuer.calls)
	}
	if graded.CertificateURL != nil {
		t.Errorf("certificate URL = %q, want none", *graded.CertificateURL)
	}
}

func TestGradeAttemptIsOneShot(t *testing.T) {
	f := newExamFixture(t, 15, 3)

	attempt, err := f.svc.StartOrContinueAttempt(1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.svc.GradeAttempt(solveRequest(attempt, 6)); err != nil {
		t.Fatalf("first grade: %v", err)
	}

	_, err = f.svc.GradeAttempt(solveRequest(attempt, 10))
	if !errors.Is(err, service.ErrAlreadyGraded) {
		t.Fatalf("err = %v, want ErrAlreadyGraded", err)
	}
}

func TestGradeAttemptIgnoresForeignQuestions(t *testing.T) {
	f := newExamFixture(t, 15, 3)

	attempt, err := f.svc.StartOrContinueAttempt(1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Answer six frozen questions correctly, leave four unanswered, and
	// smuggle in a question that was never part of the attempt.
	req := solveRequest(attempt, 6)
	req.Answers = req.Answers[:6]
	req.Answers = append(req.Answers, dto.ChosenAnswerDTO{QuestionID: 9999, AnswerID: 1})

	graded, err := f.svc.GradeAttempt(req)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	if graded.CorrectCount != 6 {
		t.Errorf("correct = %d, want 6", graded.CorrectCount)
	}
	if graded.IncorrectCount != 4 {
		t.Errorf("incorrect = %d, want 4 (unanswered count against the worker)", graded.IncorrectCount)
	}
	if graded.Outcome != "approved" {
		t.Errorf("outcome = %q, want approved", graded.Outcome)
	}
}

func TestGradeAttemptSurvivesCertificateFailure(t *testing.T) {
	f := newExamFixture(t, 15, 3)
	f.issuer.err = errRenderFailed

	attempt, err := f.svc.StartOrContinueAttempt(1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	graded, err := f.svc.GradeAttempt(solveRequest(attempt, 6))
	if err != nil {
		t.Fatalf("grade must not fail on a render error: %v", err)
	}
	if graded.Outcome != "approved" {
		t.Errorf("outcome = %q, want approved", graded.Outcome)
	}
	if graded.CertificateURL != nil {
		t.Errorf("certificate URL = %q, want none after render failure", *graded.CertificateURL)
	}

	stored, err := f.attempts.FindByID(attempt.ID)
	if err != nil {
		t.Fatalf("reloading attempt: %v", err)
	}
	if stored.Outcome != model.OutcomeApproved {
		t.Errorf("stored outcome = %v, want approved", stored.Outcome)
	}
	if stored.CertificateURL != nil {
		t.Errorf("stored certificate URL = %q, want none", *stored.CertificateURL)
	}
}

func TestLatestAttempt(t *testing.T) {
	f := newExamFixture(t, 15, 3)

	if _, err := f.svc.LatestAttempt(1); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound before any attempt", err)
	}

	started, err := f.svc.StartOrContinueAttempt(1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	latest, err := f.svc.LatestAttempt(1)
	if err != nil {
		t.Fatalf("LatestAttempt: %v", err)
	}
	if latest.ID != started.ID {
		t.Errorf("latest ID = %d, want %d", latest.ID, started.ID)
	}
	if latest.ClassType != model.ClassTypeTraining {
		t.Errorf("class type = %q, want %q", latest.ClassType, model.ClassTypeTraining)
	}
}

func TestMarkCertificateDownloaded(t *testing.T) {
	f := newExamFixture(t, 15, 3)

	attempt, err := f.svc.StartOrContinueAttempt(1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Not graded yet: there is no certificate to download.
	if err := f.svc.MarkCertificateDownloaded(attempt.ID); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for ungraded attempt", err)
	}

	if _, err := f.svc.GradeAttempt(solveRequest(attempt, 6)); err != nil {
		t.Fatalf("grade: %v", err)
	}
	if err := f.svc.MarkCertificateDownloaded(attempt.ID); err != nil {
		t.Fatalf("MarkCertificateDownloaded: %v", err)
	}

	stored, err := f.attempts.FindByID(attempt.ID)
	if err != nil {
		t.Fatalf("reloading attempt: %v", err)
	}
	if !stored.CertificateDownloaded {
		t.Error("certificate downloaded flag not set")
	}
}
