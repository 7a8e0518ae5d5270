package jobs_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gcertilab/certilab-api/internal/jobs"
	"github.com/gcertilab/certilab-api/internal/model"
	"gorm.io/gorm"
)

type fakeAttemptRepo struct {
	attempts map[uint]*model.ExamAttempt
}

func (r *fakeAttemptRepo) Create(attempt *model.ExamAttempt) error { return nil }

func (r *fakeAttemptRepo) Update(attempt *model.ExamAttempt) error {
	if _, ok := r.attempts[attempt.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *attempt
	r.attempts[attempt.ID] = &clone
	return nil
}

func (r *fakeAttemptRepo) SaveQuestion(question *model.ExamAttemptQuestion) error { return nil }

func (r *fakeAttemptRepo) FindByID(id uint) (*model.ExamAttempt, error) {
	a, ok := r.attempts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *fakeAttemptRepo) FindByIDWithQuestions(id uint) (*model.ExamAttempt, error) {
	return r.FindByID(id)
}

func (r *fakeAttemptRepo) FindLatestByEnrollment(enrollmentID uint) (*model.ExamAttempt, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAttemptRepo) CountByEnrollment(enrollmentID uint) (int, error) { return 0, nil }

func (r *fakeAttemptRepo) FindAll() ([]model.ExamAttempt, error) { return nil, nil }

func (r *fakeAttemptRepo) FindApprovedWithoutCertificate() ([]model.ExamAttempt, error) {
	var out []model.ExamAttempt
	for _, a := range r.attempts {
		if a.Outcome == model.OutcomeApproved && a.CertificateURL == nil {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAttemptRepo) Delete(id uint) error { return nil }

type fakeIssuer struct {
	url   string
	err   error
	calls int
}

func (f *fakeIssuer) Render(workerFullName, workerDNI, classTitle string, classID uint, issueDate time.Time) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func seedAttempt(repo *fakeAttemptRepo, id uint, outcome model.Outcome, certURL *string) {
	repo.attempts[id] = &model.ExamAttempt{
		ID:             id,
		EnrollmentID:   id,
		Outcome:        outcome,
		CertificateURL: certURL,
		Enrollment: model.Enrollment{
			Worker: model.Worker{FirstName: "Rosa", LastName: "Quispe", DNI: "12345678"},
			Class:  model.Class{ID: 1, Title: "Safety"},
		},
	}
}

func TestRunRendersMissingCertificates(t *testing.T) {
	repo := &fakeAttemptRepo{attempts: map[uint]*model.ExamAttempt{}}
	existing := "http://localhost:8080/certificates/11111111-1.pdf"
	seedAttempt(repo, 1, model.OutcomeApproved, nil)       // needs a certificate
	seedAttempt(repo, 2, model.OutcomeApproved, &existing) // already has one
	seedAttempt(repo, 3, model.OutcomeRejected, nil)       // never gets one

	issuer := &fakeIssuer{url: "http://localhost:8080/certificates/12345678-1.pdf"}
	job := jobs.NewCertificateRetryJob(repo, issuer, fixedClock{t: time.Now()})
	job.Run()

	if issuer.calls != 1 {
		t.Fatalf("issuer calls = %d, want 1", issuer.calls)
	}
	fixed, _ := repo.FindByID(1)
	if fixed.CertificateURL == nil || *fixed.CertificateURL != issuer.url {
		t.Errorf("certificate URL = %v, want %q", fixed.CertificateURL, issuer.url)
	}
	untouched, _ := repo.FindByID(2)
	if *untouched.CertificateURL != existing {
		t.Errorf("existing certificate overwritten: %q", *untouched.CertificateURL)
	}
}

func TestRunKeepsGoingAfterRenderFailure(t *testing.T) {
	repo := &fakeAttemptRepo{attempts: map[uint]*model.ExamAttempt{}}
	seedAttempt(repo, 1, model.OutcomeApproved, nil)

	issuer := &fakeIssuer{err: errors.New("browser unavailable")}
	job := jobs.NewCertificateRetryJob(repo, issuer, fixedClock{t: time.Now()})
	job.Run()

	attempt, _ := repo.FindByID(1)
	if attempt.CertificateURL != nil {
		t.Errorf("certificate URL = %q, want none after failure", *attempt.CertificateURL)
	}

	// Next tick picks it up again.
	issuer.err = nil
	issuer.url = "http://localhost:8080/certificates/12345678-1.pdf"
	job.Run()
	attempt, _ = repo.FindByID(1)
	if attempt.CertificateURL == nil {
		t.Error("certificate still missing after successful retry")
	}
}
